package log

import (
	"context"
	"fmt"
	"io"
	"os"

	"voxplorer/internal/errors"

	"github.com/sirupsen/logrus"
)

var (
	isDebug = false
	logger  = NewLogger()
)

// Field is a single structured key/value pair attached to a log line
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger wraps a logrus logger with the package's field and option helpers
type Logger struct {
	lr   *logrus.Logger
	file *os.File
}

// Option configures a Logger
type Option func(*Logger)

// WithOutput sends log lines to w
func WithOutput(w io.Writer) Option {
	return func(l *Logger) {
		l.lr.SetOutput(w)
	}
}

// WithJSON switches to JSON lines
func WithJSON() Option {
	return func(l *Logger) {
		l.lr.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	}
}

// WithFile appends log lines to path in addition to the current output
func WithFile(path string) Option {
	return func(l *Logger) {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log: cannot open %s: %v\n", path, err)
			return
		}
		l.file = f
		l.lr.SetOutput(io.MultiWriter(l.lr.Out, f))
	}
}

// NewLogger creates a logger writing text lines to stdout unless overridden
func NewLogger(opts ...Option) *Logger {
	lr := logrus.New()
	lr.SetOutput(os.Stdout)
	lr.SetLevel(logrus.DebugLevel)
	lr.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
		DisableColors:   true,
	})

	l := &Logger{lr: lr}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Configure replaces the package logger
func Configure(opts ...Option) {
	logger = NewLogger(opts...)
}

// Close releases the log file, if any
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func SetDebug(debug bool) {
	isDebug = debug
}

// IsDebug reports whether debug lines are emitted
func IsDebug() bool {
	return isDebug
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.lr.Infof(format, args...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.lr.Infof(format, args...)
}

func (l *Logger) Debug(format string, args ...interface{}) {
	if isDebug {
		l.lr.Debugf(format, args...)
	}
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Debug(format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.lr.Warnf(format, args...)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.lr.Warnf(format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.lr.Errorf(format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.lr.Errorf(format, args...)
}

// With returns an entry carrying the given fields
func (l *Logger) With(fields ...Field) *Entry {
	return (&Entry{e: logrus.NewEntry(l.lr)}).With(fields...)
}

// WithContext returns an entry bound to ctx
func (l *Logger) WithContext(ctx context.Context) *Entry {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Entry{e: logrus.NewEntry(l.lr).WithContext(ctx)}
}

// Entry is a log line under construction
type Entry struct {
	e *logrus.Entry
}

// With adds more fields
func (e *Entry) With(fields ...Field) *Entry {
	lf := make(logrus.Fields, len(fields))
	for _, f := range fields {
		lf[f.Key] = f.Value
	}
	return &Entry{e: e.e.WithFields(lf)}
}

func (e *Entry) Debug(msg string) {
	if isDebug {
		e.e.Debug(msg)
	}
}

func (e *Entry) Info(msg string) {
	e.e.Info(msg)
}

func (e *Entry) Warn(msg string) {
	e.e.Warn(msg)
}

func (e *Entry) Error(msg string) {
	e.e.Error(msg)
}

// Package-level helpers use the configured logger

func Info(format string, args ...interface{}) {
	logger.Info(format, args...)
}

func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Debug logs only when debug output is enabled
func Debug(format string, args ...interface{}) {
	logger.Debug(format, args...)
}

// Debugf logs a formatted message
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Warn logs a warning
func Warn(format string, args ...interface{}) {
	logger.Warn(format, args...)
}

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Error logs an error message
func Error(format string, args ...interface{}) {
	logger.Error(format, args...)
}

// Errorf logs a formatted error message
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

// LogWithFields starts an entry on the package logger
func LogWithFields(fields ...Field) *Entry {
	return logger.With(fields...)
}

// LogWithError starts an entry describing err, including its kind and
// the path/param/stage carried by typed application errors
func LogWithError(err error) *Entry {
	if err == nil {
		return logger.With(F("error", "<nil>"))
	}

	fields := []Field{
		F("error", err.Error()),
		F("error_kind", int(errors.KindOf(err))),
	}

	var fileErr *errors.FileError
	var configErr *errors.ConfigError
	var voiceErr *errors.VoiceError
	switch {
	case errors.As(err, &fileErr):
		fields = append(fields, F("path", fileErr.Path()))
	case errors.As(err, &configErr):
		fields = append(fields, F("param", configErr.Param()))
	case errors.As(err, &voiceErr):
		fields = append(fields, F("stage", voiceErr.Stage()))
	}
	return logger.With(fields...)
}

// LogError is shorthand for LogWithError(err).Error(msg)
func LogError(err error, msg string) {
	LogWithError(err).Error(msg)
}
