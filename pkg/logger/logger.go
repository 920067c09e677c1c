package logger

import (
	"fmt"
	"path"
	"runtime"

	log "github.com/sirupsen/logrus"
)

const timestampFormat = "2006-01-02 15:04:05"

// SetupLogger configures the global logrus logger. format is "json" (default)
// or "text"; an unknown level falls back to INFO.
func SetupLogger(level, format string) {
	log.SetReportCaller(true)

	prettyfier := func(frame *runtime.Frame) (function string, file string) {
		return "", fmt.Sprintf("%s:%d", path.Base(frame.File), frame.Line)
	}

	if format == "text" {
		log.SetFormatter(&log.TextFormatter{
			FullTimestamp:    true,
			TimestampFormat:  timestampFormat,
			CallerPrettyfier: prettyfier,
		})
	} else {
		log.SetFormatter(&log.JSONFormatter{
			CallerPrettyfier: prettyfier,
			TimestampFormat:  timestampFormat,
		})
	}

	loggerLevel, err := log.ParseLevel(level)
	if err != nil {
		log.Infof("Level setup default INFO, err: %v", err)
		log.SetLevel(log.InfoLevel)
		return
	}
	log.SetLevel(loggerLevel)
}
