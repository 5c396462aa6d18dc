package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/constrain/pkg/constrain"
	"github.com/dmitrymomot/constrain/pkg/logger"
	"github.com/dmitrymomot/constrain/pkg/validator"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "2", g[1].Key)

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestViolations(t *testing.T) {
	t.Run("groups messages by field", func(t *testing.T) {
		_, err := constrain.Int.Negative(3, " ")
		require.Error(t, err)

		attr := logger.Violations(err)
		require.Equal(t, "violations", attr.Key)
		g := attr.Value.Group()
		require.Len(t, g, 2)
		assert.Equal(t, "name", g[0].Key)
		assert.Equal(t, []string{"must not be blank"}, g[0].Value.Any())
		assert.Equal(t, " ", g[1].Key)
		assert.Equal(t, []string{"must be negative"}, g[1].Value.Any())
	})

	t.Run("falls back to error attr", func(t *testing.T) {
		err := errors.New("boom")
		attr := logger.Violations(err)
		assert.Equal(t, "error", attr.Key)
	})

	t.Run("nil yields empty attr", func(t *testing.T) {
		assert.True(t, logger.Violations(nil).Equal(slog.Attr{}))
	})
}

func TestConstraint(t *testing.T) {
	attr := logger.Constraint("amount", constrain.CategoryZeroOrPositive)
	require.Equal(t, "constraint", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "amount", g[0].Value.String())
	assert.Equal(t, "zero or positive", g[1].Value.String())
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithLevel(slog.LevelDebug),
		logger.WithAttr(slog.String("component", "constrain")),
	)

	_, err := constrain.Int64.Positive(0, "amount")
	log.Debug("rejected", logger.Violations(err))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "rejected", record["msg"])
	assert.Equal(t, "constrain", record["component"])
	assert.Equal(t, map[string]any{"amount": []any{"must be positive"}}, record["violations"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf), logger.WithFormat(logger.FormatText))

	log.Debug("hidden")
	log.Info("shown", slog.Any("violation", validator.ValidationError{Field: "offset", Message: "must be zero"}))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "violation.field=offset")
}

func TestWithFormat_Invalid(t *testing.T) {
	assert.Panics(t, func() {
		logger.New(logger.WithFormat("xml"))
	})
}
