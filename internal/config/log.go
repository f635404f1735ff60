package config

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Log formats accepted by ConfigureLogger.
var LogFormats = []string{"json", "text", "color-text"}

// ConfigureLogger sets the level and formatter of the standard logrus logger.
// Timestamps are printed in UTC.
func ConfigureLogger(level, format string) error {
	time.Local = time.FixedZone("UTC", 0)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logrus.SetLevel(lvl)

	switch strings.ToLower(format) {
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
		})
	case "", "color-text":
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableColors: false,
			ForceColors:   true,
		})
	default:
		return unknownLogFormat(format)
	}
	return nil
}

// CheckLogFormat reports an error when format is not one of LogFormats. The
// empty format selects color-text.
func CheckLogFormat(format string) error {
	if format == "" || slices.Contains(LogFormats, strings.ToLower(format)) {
		return nil
	}
	return unknownLogFormat(format)
}

func unknownLogFormat(format string) error {
	return fmt.Errorf("unknown log format %q: options are %s", format, strings.Join(LogFormats, ", "))
}

// VerbosityLevel raises base by the number of -v flags given.
func VerbosityLevel(base string, verbose int) string {
	switch {
	case verbose >= 2:
		return "trace"
	case verbose == 1:
		return "debug"
	default:
		return base
	}
}
