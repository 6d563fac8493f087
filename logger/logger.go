package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Fields type alias for logrus.Fields to keep call sites short
type Fields = logrus.Fields

// Log wraps logrus.Logger so the rest of the module does not import logrus
// directly.
type Log struct {
	*logrus.Logger
}

var globalLogger *Log

func init() {
	globalLogger = New()
}

// New builds a logger configured from the environment. LOG_LEVEL selects the
// level (default info), LOG_FORMAT=text switches off the JSON formatter.
func New() *Log {
	logger := logrus.New()

	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		levelStr = "info"
	}
	if lvl, err := logrus.ParseLevel(strings.ToLower(levelStr)); err == nil {
		logger.SetLevel(lvl)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "text" {
		logger.SetFormatter(&logrus.TextFormatter{
			TimestampFormat: time.RFC3339,
			FullTimestamp:   true,
		})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339Nano,
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime:  "timestamp",
				logrus.FieldKeyLevel: "level",
				logrus.FieldKeyMsg:   "message",
			},
		})
	}

	return &Log{Logger: logger}
}

// GetLogger returns the process-wide logger.
func GetLogger() *Log {
	return globalLogger
}

// SetOutputFile routes log output to a size-rotated file in addition to
// stderr. MaxSize is in megabytes.
func (l *Log) SetOutputFile(path string, maxSizeMB, maxBackups int) {
	rotated := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		Compress:   true,
	}
	l.SetOutput(io.MultiWriter(os.Stderr, rotated))
}
