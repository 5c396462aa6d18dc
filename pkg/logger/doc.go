// Package logger holds slog helpers shared by the constraint packages.
//
// attr.go offers attribute constructors with stable key names; Violations
// turns a validator.ValidationErrors into a group of per-field messages:
//
//	if _, err := constrain.Int64.Positive(v, "amount"); err != nil {
//	    log.Warn("rejected transfer", logger.Violations(err))
//	    // violations.amount="[must be positive]"
//	}
//
// New builds a *slog.Logger from functional options (format, level, output,
// static attributes).
package logger
