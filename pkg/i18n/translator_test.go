package i18n_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math/big"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/constrain/pkg/constrain"
	"github.com/dmitrymomot/constrain/pkg/i18n"
	"github.com/dmitrymomot/constrain/pkg/logger"
	"github.com/dmitrymomot/constrain/pkg/validator"
)

func newBuiltin(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()
	tr, err := i18n.NewTranslator(context.Background(), i18n.NewBuiltinAdapter(), opts...)
	require.NoError(t, err)
	return tr
}

func TestNewTranslator(t *testing.T) {
	t.Parallel()

	t.Run("loads builtin catalog", func(t *testing.T) {
		tr := newBuiltin(t)
		assert.Equal(t, []string{"de", "en", "es", "fr"}, tr.SupportedLanguages())
	})

	t.Run("nil adapter", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), nil)
		assert.ErrorIs(t, err, i18n.ErrNilAdapter)
	})

	t.Run("default language must be loaded", func(t *testing.T) {
		_, err := i18n.NewTranslator(context.Background(), i18n.NewBuiltinAdapter(), i18n.WithDefaultLanguage("ja"))
		assert.ErrorIs(t, err, i18n.ErrDefaultLanguageMissing)
	})

	t.Run("empty language code", func(t *testing.T) {
		adapter := &i18n.MapAdapter{Data: map[string]map[string]any{"": {}, "en": {}}}
		_, err := i18n.NewTranslator(context.Background(), adapter)
		assert.ErrorIs(t, err, i18n.ErrEmptyLanguage)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := i18n.NewTranslator(ctx, i18n.NewBuiltinAdapter())
		assert.ErrorIs(t, err, i18n.ErrLoadingCancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestTranslator_Match(t *testing.T) {
	t.Parallel()

	tr := newBuiltin(t)

	assert.Equal(t, "de", tr.Match("de"))
	assert.Equal(t, "de", tr.Match("de-AT"))
	assert.Equal(t, "fr", tr.Match("fr-CA,fr;q=0.9,en;q=0.5"))
	assert.Equal(t, "es", tr.Match("ja", "es-MX"))
	assert.Equal(t, "en", tr.Match("ja"))
	assert.Equal(t, "en", tr.Match())
	assert.Equal(t, "en", tr.Match(""))
}

func TestTranslator_Error(t *testing.T) {
	t.Parallel()

	tr := newBuiltin(t)

	t.Run("renders positive in english", func(t *testing.T) {
		_, err := constrain.Int.Positive(0, "amount")
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "amount must be positive, got 0", tr.Error("en", verrs[0]))
	})

	t.Run("renders in matched language", func(t *testing.T) {
		_, err := constrain.Int.Zero(5, "offset")
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "offset muss null sein, erhalten: 5", tr.Error("de-CH", verrs[0]))
		assert.Equal(t, "offset doit être nul, reçu 5", tr.Error("fr", verrs[0]))
		assert.Equal(t, "offset debe ser cero, se recibió 5", tr.Error("es", verrs[0]))
	})

	t.Run("groups digits for the language", func(t *testing.T) {
		_, err := constrain.Int64.Negative(1234567, "delta")
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "delta must be negative, got 1,234,567", tr.Error("en", verrs[0]))
	})

	t.Run("arbitrary precision values are rendered verbatim", func(t *testing.T) {
		huge, ok := new(big.Int).SetString("-99999999999999999999", 10)
		require.True(t, ok)
		_, err := constrain.BigInt.Positive(huge, "supply")
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "supply must be positive, got -99999999999999999999", tr.Error("en", verrs[0]))
	})

	t.Run("missing value", func(t *testing.T) {
		_, err := constrain.BigInt.Zero(nil, "supply")
		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "supply ist erforderlich", tr.Error("de", verrs[0]))
	})

	t.Run("unknown key falls back to message", func(t *testing.T) {
		e := validator.ValidationError{Field: "amount", Message: "is odd", TranslationKey: "validation.odd"}
		assert.Equal(t, "amount: is odd", tr.Error("en", e))
	})

	t.Run("unknown key without message fallback returns key", func(t *testing.T) {
		strict := newBuiltin(t, i18n.WithFallbackToMessage(false))
		e := validator.ValidationError{Field: "amount", Message: "is odd", TranslationKey: "validation.odd"}
		assert.Equal(t, "validation.odd", strict.Error("en", e))
	})
}

func TestTranslator_Errors(t *testing.T) {
	t.Parallel()

	tr := newBuiltin(t)

	t.Run("groups by field", func(t *testing.T) {
		_, err := constrain.Int.Negative(3, "")
		msgs := tr.Errors("es", err)
		assert.Equal(t, map[string][]string{
			"name": {"el nombre del argumento no puede estar vacío"},
			"":     {" debe ser negativo, se recibió 3"},
		}, msgs)
	})

	t.Run("single validation error", func(t *testing.T) {
		e := validator.Zero("offset", 2).Error
		msgs := tr.Errors("en", e)
		assert.Equal(t, map[string][]string{"offset": {"offset must be zero, got 2"}}, msgs)
	})

	t.Run("other errors", func(t *testing.T) {
		assert.Nil(t, tr.Errors("en", errors.New("boom")))
		assert.Nil(t, tr.Errors("en", nil))
	})
}

func TestTranslator_T(t *testing.T) {
	t.Parallel()

	tr := newBuiltin(t)

	assert.Equal(t, "amount must be positive, got 7", tr.T("en", "validation.positive", "field", "amount", "value", "7"))
	assert.Equal(t, "amount must be positive, got %{value}", tr.T("en", "validation.positive", "field", "amount"))
	assert.Equal(t, "validation.missing", tr.T("en", "validation.missing"))
	assert.Equal(t, "validation", tr.T("en", "validation"))
}

func TestTranslator_LogsMissingTranslations(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tr := newBuiltin(t, i18n.WithLogger(logger.New(
		logger.WithOutput(&buf),
		logger.WithFormat(logger.FormatText),
		logger.WithLevel(slog.LevelDebug),
	)))

	tr.Error("en", validator.ValidationError{Field: "amount", TranslationKey: "validation.odd"})
	assert.Contains(t, buf.String(), "translation not found")
	assert.Contains(t, buf.String(), "key=validation.odd")
}

func TestFSAdapter(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"catalog/base.yaml": {Data: []byte("en:\n  validation:\n    positive: \"%{field} > 0\"\n")},
		"catalog/pt.yml":    {Data: []byte("pt:\n  validation:\n    positive: \"%{field} deve ser positivo\"\n")},
		"catalog/notes.txt": {Data: []byte("ignored")},
	}

	tr, err := i18n.NewTranslator(context.Background(), i18n.NewFSAdapter(fsys, "catalog"))
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "pt"}, tr.SupportedLanguages())

	e := validator.Positive("amount", -1).Error
	assert.Equal(t, "amount > 0", tr.Error("en", e))
	assert.Equal(t, "amount deve ser positivo", tr.Error("pt-BR", e))

	t.Run("empty directory", func(t *testing.T) {
		_, err := i18n.NewFSAdapter(fstest.MapFS{"catalog/readme.md": {}}, "catalog").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNoTranslations)
	})

	t.Run("broken file", func(t *testing.T) {
		broken := fstest.MapFS{"catalog/bad.yaml": {Data: []byte("en: [unterminated")}}
		_, err := i18n.NewFSAdapter(broken, "catalog").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})
}

func TestParseYAML(t *testing.T) {
	t.Parallel()

	t.Run("rejects non-map languages", func(t *testing.T) {
		_, err := i18n.ParseYAML(context.Background(), []byte("en: hello\n"))
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("rejects empty content", func(t *testing.T) {
		_, err := i18n.ParseYAML(context.Background(), []byte(""))
		assert.ErrorIs(t, err, i18n.ErrNoTranslations)
	})
}
