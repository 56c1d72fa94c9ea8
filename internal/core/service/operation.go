package service

import (
	"log/slog"
	"somon-ai/internal/core/domain"
	"time"
)

// Operation logs the lifecycle of a single service call
type Operation struct {
	logger *slog.Logger
	name   string
	start  time.Time
}

// Start logs the beginning of the named operation
func Start(logger *slog.Logger, name string, args ...any) *Operation {
	op := &Operation{logger: logger, name: name, start: time.Now()}
	logger.Debug("operation started", op.attrs(args)...)
	return op
}

func (o *Operation) attrs(args []any) []any {
	return append([]any{"operation", o.name}, args...)
}

func (o *Operation) elapsed() []any {
	return []any{"elapsed_ms", time.Since(o.start).Milliseconds()}
}

// Info logs an intermediate step
func (o *Operation) Info(msg string, args ...any) {
	o.logger.Info(msg, o.attrs(args)...)
}

// Warn logs a recoverable problem
func (o *Operation) Warn(msg string, args ...any) {
	o.logger.Warn(msg, o.attrs(args)...)
}

// Done logs the successful end of the operation
func (o *Operation) Done(args ...any) {
	o.logger.Info("operation completed", o.attrs(append(args, o.elapsed()...))...)
}

// Fail logs the failure of the operation and returns resErr.
// A non nil cause is logged at error level.
func (o *Operation) Fail(resErr domain.ResultError, cause error) domain.ResultError {
	args := o.attrs(append([]any{"kind", resErr.Kind.String(), "message", resErr.Message}, o.elapsed()...))
	if cause != nil {
		o.logger.Error("operation failed", append(args, "error", cause)...)
		return resErr
	}
	o.logger.Warn("operation failed", args...)
	return resErr
}
