package i18n

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrymomot/constrain/pkg/validator"
)

// DefaultLanguage is used when no option or config overrides it.
const DefaultLanguage = "en"

// Translator renders validation errors in the caller's language. It is
// read-only after construction and safe for concurrent use.
type Translator struct {
	translations      map[string]map[string]any
	langs             []string
	tags              []language.Tag
	tagLangs          []string
	matcher           language.Matcher
	defaultLang       string
	fallbackToMessage bool
	logger            *slog.Logger
}

// NewTranslator loads translations from adapter. The default language must be
// among the loaded languages.
func NewTranslator(ctx context.Context, adapter TranslationAdapter, options ...Option) (*Translator, error) {
	if adapter == nil {
		return nil, ErrNilAdapter
	}

	t := &Translator{
		defaultLang:       DefaultLanguage,
		fallbackToMessage: true,
		logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, option := range options {
		option(t)
	}

	translations, err := adapter.Load(ctx)
	if err != nil {
		return nil, err
	}
	for lang, m := range translations {
		if lang == "" {
			return nil, ErrEmptyLanguage
		}
		if m == nil {
			return nil, fmt.Errorf("nil translations map for language: %s", lang)
		}
	}
	if _, ok := translations[t.defaultLang]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrDefaultLanguageMissing, t.defaultLang)
	}

	t.translations = translations
	t.langs = make([]string, 0, len(translations))
	for lang := range translations {
		t.langs = append(t.langs, lang)
	}
	sort.Strings(t.langs)

	// The default language goes first so the matcher falls back to it.
	t.tagLangs = []string{t.defaultLang}
	for _, lang := range t.langs {
		if lang != t.defaultLang {
			t.tagLangs = append(t.tagLangs, lang)
		}
	}
	t.tags = make([]language.Tag, len(t.tagLangs))
	for i, lang := range t.tagLangs {
		t.tags[i] = language.Make(lang)
	}
	t.matcher = language.NewMatcher(t.tags)

	t.logger.DebugContext(ctx, "translations loaded", "languages", t.langs)
	return t, nil
}

// SupportedLanguages returns the loaded language codes, sorted.
func (t *Translator) SupportedLanguages() []string {
	return append([]string(nil), t.langs...)
}

// Match picks the best supported language for the given preferences. Each
// preference may be a plain tag ("de-AT") or an Accept-Language header value.
func (t *Translator) Match(preferences ...string) string {
	_, index := language.MatchStrings(t.matcher, preferences...)
	return t.tagLangs[index]
}

// T translates key for lang, substituting %{name} placeholders from args
// given as name, value pairs. It returns the key when nothing is found.
func (t *Translator) T(lang, key string, args ...string) string {
	if tmpl, ok := t.lookup(t.Match(lang), key); ok {
		return namedSprintf(tmpl, pairs(args))
	}
	return key
}

// Error renders a single validation error.
func (t *Translator) Error(lang string, e validator.ValidationError) string {
	lang = t.Match(lang)

	tmpl, ok := t.lookup(lang, e.TranslationKey)
	if !ok {
		t.logger.Debug("translation not found", "lang", lang, "key", e.TranslationKey)
		if t.fallbackToMessage {
			return e.Error()
		}
		return e.TranslationKey
	}

	printer := message.NewPrinter(language.Make(lang))
	params := make(map[string]string, len(e.TranslationValues))
	for name, v := range e.TranslationValues {
		if v == nil {
			params[name] = "<nil>"
			continue
		}
		params[name] = printer.Sprint(v)
	}
	return namedSprintf(tmpl, params)
}

// Errors renders every validation error in err grouped by field. It returns
// nil when err carries no validator.ValidationErrors.
func (t *Translator) Errors(lang string, err error) map[string][]string {
	verrs := validator.ExtractValidationErrors(err)
	if verrs == nil {
		var single validator.ValidationError
		if !errors.As(err, &single) {
			return nil
		}
		verrs = validator.ValidationErrors{single}
	}

	out := make(map[string][]string, len(verrs))
	for _, e := range verrs {
		out[e.Field] = append(out[e.Field], t.Error(lang, e))
	}
	return out
}

func (t *Translator) lookup(lang, key string) (string, bool) {
	m, ok := t.translations[lang]
	if !ok {
		return "", false
	}
	val, ok := traverse(m, key)
	if !ok {
		return "", false
	}
	switch v := val.(type) {
	case string:
		return v, true
	case fmt.Stringer:
		return v.String(), true
	default:
		return "", false
	}
}

// traverse follows dot-separated keys through nested maps.
func traverse(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		next, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

func pairs(args []string) map[string]string {
	params := make(map[string]string, len(args)/2)
	for i := 0; i < len(args)-1; i += 2 {
		params[args[i]] = args[i+1]
	}
	return params
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// namedSprintf replaces %{name} placeholders; unknown names are kept.
func namedSprintf(tmpl string, params map[string]string) string {
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}
