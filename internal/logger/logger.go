package logger

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

// Logger is a thin chainable wrapper around slog that carries the
// package/function context as structured attributes.
type Logger struct {
	log *slog.Logger
}

func New(name string) Logger {
	return Logger{
		log: slog.New(slog.NewTextHandler(os.Stdout, nil)).With("package", name),
	}
}

func (l Logger) Function(name string) Logger {
	return Logger{log: l.log.With("function", name)}
}

func (l Logger) File(name string) Logger {
	return Logger{log: l.log.With("file", name)}
}

func (l Logger) With(args ...any) Logger {
	return Logger{log: l.log.With(args...)}
}

func (l Logger) Debug(msg string, args ...any) {
	l.log.Debug(msg, args...)
}

func (l Logger) Info(msg string, args ...any) {
	l.log.Info(msg, args...)
}

func (l Logger) Warn(msg string, args ...any) {
	l.log.Warn(msg, args...)
}

// Er logs an error without creating a new one.
func (l Logger) Er(msg string, err error, args ...any) {
	l.log.Error(msg, append(args, "error", err)...)
}

// ErMsg logs an error message without creating an error value.
func (l Logger) ErMsg(msg string, args ...any) {
	l.log.Error(msg, args...)
}

// Err logs the failure and returns it wrapped with the message, so call
// sites can `return log.Err(...)` in one line.
func (l Logger) Err(msg string, err error, args ...any) error {
	l.log.Error(msg, append(args, "error", err)...)
	return fmt.Errorf("%s: %w", msg, err)
}

// Error logs and returns a new error built from the message.
func (l Logger) Error(msg string, args ...any) error {
	l.log.Error(msg, args...)
	return errors.New(msg)
}

func (l Logger) ErrMsg(msg string) error {
	l.log.Error(msg)
	return errors.New(msg)
}
