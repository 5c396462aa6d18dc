package i18n

import "errors"

var (
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")
	ErrNoTranslations       = errors.New("no translations found")

	ErrLoadingCancelled = errors.New("loading translations cancelled")
	ErrFailedToReadFile = errors.New("failed to read translation file")
	ErrNilAdapter       = errors.New("translation adapter is nil")
	ErrEmptyLanguage    = errors.New("empty language code")

	// ErrDefaultLanguageMissing is returned when the configured default
	// language has no translations.
	ErrDefaultLanguageMissing = errors.New("default language has no translations")
)
