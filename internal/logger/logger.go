package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log — общий логгер сервиса.
var Log = logrus.New()

// Init настраивает JSON-формат и уровень логирования.
// NEWSDESK_DEBUG=true включает отладочный уровень.
func Init() {
	Log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime:  "timestamp",
			logrus.FieldKeyLevel: "level",
			logrus.FieldKeyMsg:   "message",
		},
	})

	Log.SetOutput(os.Stdout)

	if os.Getenv("NEWSDESK_DEBUG") == "true" {
		Log.SetLevel(logrus.DebugLevel)
	} else {
		Log.SetLevel(logrus.InfoLevel)
	}
}
