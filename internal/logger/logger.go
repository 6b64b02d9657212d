package logger

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// New собирает логгер сервиса: JSON с RFC3339-метками в продакшене,
// текстовый формат и debug-уровень в остальных окружениях.
func New(output io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)

	if os.Getenv("GIN_MODE") == "release" {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
		l.SetLevel(logrus.InfoLevel)
		return l
	}

	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	l.SetLevel(logrus.DebugLevel)
	return l
}
