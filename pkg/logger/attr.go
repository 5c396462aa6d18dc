package logger

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/dmitrymomot/constrain/pkg/validator"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Violations groups the messages of a validation failure by field under the
// key "violations". Errors that are not validation errors are logged under
// "error" instead; nil yields an empty Attr.
func Violations(err error) slog.Attr {
	verrs := validator.ExtractValidationErrors(err)
	if verrs == nil {
		return Error(err)
	}

	fields := verrs.Fields()
	as := make([]slog.Attr, 0, len(fields))
	for _, field := range fields {
		key := field
		if key == "" {
			key = "_"
		}
		as = append(as, slog.Any(key, verrs.Get(field)))
	}
	return slog.Attr{Key: "violations", Value: slog.GroupValue(as...)}
}

// Constraint records which argument was checked against which sign category.
func Constraint(name string, category fmt.Stringer) slog.Attr {
	return Group("constraint",
		slog.String("name", name),
		slog.String("category", category.String()),
	)
}
