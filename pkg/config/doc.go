// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv for .env files and
// github.com/caarlos0/env/v11 for struct tag parsing. Each configuration type
// is parsed once and cached for the life of the process; ResetCache clears
// the cache between tests.
//
//	type Config struct {
//	    DefaultLanguage string `env:"CONSTRAIN_DEFAULT_LANGUAGE" envDefault:"en"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    // errors.Is(err, config.ErrParsingConfig)
//	}
package config
