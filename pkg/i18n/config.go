package i18n

import (
	"context"

	"github.com/dmitrymomot/constrain/pkg/config"
)

// Config holds the environment driven translator settings.
type Config struct {
	DefaultLanguage   string `env:"CONSTRAIN_DEFAULT_LANGUAGE" envDefault:"en"`
	FallbackToMessage bool   `env:"CONSTRAIN_FALLBACK_TO_MESSAGE" envDefault:"true"`
}

// LoadConfig reads Config from the environment and an optional .env file.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig builds a translator over the built-in catalog. Options are
// applied after the config values.
func NewFromConfig(ctx context.Context, cfg Config, options ...Option) (*Translator, error) {
	opts := append([]Option{
		WithDefaultLanguage(cfg.DefaultLanguage),
		WithFallbackToMessage(cfg.FallbackToMessage),
	}, options...)
	return NewTranslator(ctx, NewBuiltinAdapter(), opts...)
}
