package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var Logger = newLogger(os.Stdout)

func newLogger(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	return l
}

// Configure задаёт уровень (debug|info|warn|error) и формат (text|json).
// Пустые значения оставляют настройки по умолчанию.
func Configure(level, format string) error {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "":
	case "debug":
		Logger.SetLevel(logrus.DebugLevel)
	case "info":
		Logger.SetLevel(logrus.InfoLevel)
	case "warn":
		Logger.SetLevel(logrus.WarnLevel)
	case "error":
		Logger.SetLevel(logrus.ErrorLevel)
	default:
		return fmt.Errorf("invalid LOG_LEVEL: %q", level)
	}

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
	case "json":
		Logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	default:
		return fmt.Errorf("invalid LOG_FORMAT: %q", format)
	}

	return nil
}

// SetOutput перенаправляет вывод логов
func SetOutput(w io.Writer) {
	Logger.SetOutput(w)
}

// WithFields запись с набором полей
func WithFields(fields logrus.Fields) *logrus.Entry {
	return Logger.WithFields(fields)
}

// WithField запись с одним полем
func WithField(key string, value interface{}) *logrus.Entry {
	return Logger.WithField(key, value)
}

// WithError запись с полем error
func WithError(err error) *logrus.Entry {
	return Logger.WithError(err)
}
