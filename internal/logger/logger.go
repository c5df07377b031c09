package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New создает логгер с текстовым форматом и полными метками времени.
// Неизвестный уровень заменяется на info.
func New(level string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	return log
}
