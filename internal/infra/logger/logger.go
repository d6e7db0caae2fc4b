// internal/infra/logger/logger.go
package logger

import (
	"io"
	"os"
	"strings"

	"homework_status_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the global logger instance
var Log = logrus.New()

const (
	maxLogSizeMB  = 10
	maxLogBackups = 3
)

// Init initializes the global logger based on application configuration.
// The returned closer flushes and closes the log file, if one is used.
func Init(cfg *config.AppConfig) io.Closer {
	var file io.WriteCloser = nopCloser{}
	if cfg.LogFile != "" && cfg.LogFile != config.LogFileDisabled {
		rotating := &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    maxLogSizeMB,
			MaxBackups: maxLogBackups,
		}
		file = rotating
		Log.SetOutput(io.MultiWriter(os.Stdout, rotating))
	} else {
		Log.SetOutput(os.Stdout)
	}

	if cfg.LogFormat == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00", // ISO8601
		})
	} else {
		Log.SetFormatter(&LineFormatter{})
	}

	level, err := logrus.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		Log.Warnf("Invalid log level '%s', defaulting to 'info'. Error: %v", cfg.LogLevel, err)
		Log.SetLevel(logrus.InfoLevel)
	} else {
		Log.SetLevel(level)
	}

	Log.Debugf("Log level set to: %s", Log.GetLevel().String())
	return file
}

// Get returns the configured global logger.
func Get() *logrus.Logger {
	return Log
}

type nopCloser struct{}

func (nopCloser) Write(p []byte) (int, error) { return len(p), nil }
func (nopCloser) Close() error                { return nil }
