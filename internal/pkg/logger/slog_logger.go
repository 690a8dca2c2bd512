package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/natefinch/lumberjack"
)

// SlogLogger adapts a *slog.Logger to the Logger interface. Arguments are
// joined with fmt.Sprint semantics into the record message.
type SlogLogger struct {
	logger *slog.Logger
	exit   func(code int)
}

// NewConsoleLogger creates a text logger writing to stdout.
func NewConsoleLogger(level string) Logger {
	return NewWriterLogger(os.Stdout, level)
}

// NewWriterLogger creates a text logger writing to w.
func NewWriterLogger(w io.Writer, level string) Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	return &SlogLogger{logger: slog.New(handler), exit: os.Exit}
}

// NewFileLogger creates a JSON logger writing to a size-rotated file.
func NewFileLogger(level string, filePath string, maxSize int, maxBackups int, maxAge int) Logger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}
	handler := slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: parseLevel(level)})
	return &SlogLogger{logger: slog.New(handler), exit: os.Exit}
}

// Debug logs a debug message.
func (l *SlogLogger) Debug(args ...interface{}) {
	l.logger.Debug(formatArgs(args...))
}

// Info logs an informational message.
func (l *SlogLogger) Info(args ...interface{}) {
	l.logger.Info(formatArgs(args...))
}

// Warn logs a warning message.
func (l *SlogLogger) Warn(args ...interface{}) {
	l.logger.Warn(formatArgs(args...))
}

// Error logs an error message.
func (l *SlogLogger) Error(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
}

// Fatal logs at error level and exits with status 1.
func (l *SlogLogger) Fatal(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
	l.exit(1)
}

// Panic logs at error level and panics with the message.
func (l *SlogLogger) Panic(args ...interface{}) {
	msg := formatArgs(args...)
	l.logger.Error(msg)
	panic(msg)
}
