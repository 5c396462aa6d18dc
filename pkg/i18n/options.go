package i18n

import "log/slog"

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when no preference matches.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToMessage controls what Error returns for a key missing from the
// catalog: the error's own English text (default) or the bare key.
func WithFallbackToMessage(fallback bool) Option {
	return func(t *Translator) {
		t.fallbackToMessage = fallback
	}
}

// WithLogger sets the logger used for missing translations. Nil is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}
