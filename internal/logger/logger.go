// Package logger builds the logrus loggers used by the command line tools.
package logger

import (
	"bytes"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// Config selects the destination and verbosity of a logger.
type Config struct {
	Output io.Writer
	Level  string
}

// Formatter renders entries as
// `[time] [LEVL] message key=value ...`.
type Formatter struct {
	TimestampFormat string
}

const defaultTimestampFormat = "15:04:05.000"

// New returns a logger configured by config.
// An unrecognized level falls back to info.
func New(config Config) *logrus.Logger {
	log := logrus.New()
	if config.Output != nil {
		log.SetOutput(config.Output)
	}
	log.SetLevel(ParseLevel(config.Level))
	log.SetFormatter(&Formatter{TimestampFormat: defaultTimestampFormat})
	return log
}

// ParseLevel maps a level name to a logrus level.
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "panic":
		return logrus.PanicLevel
	default:
		return logrus.InfoLevel
	}
}

// Format implements [logrus.Formatter].
func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	format := f.TimestampFormat
	if format == "" {
		format = defaultTimestampFormat
	}
	level := strings.ToUpper(entry.Level.String())
	if len(level) > 4 {
		level = level[:4]
	}
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "[%s] [%s] %s",
		entry.Time.Format(format), level, entry.Message)
	keys := make([]string, 0, len(entry.Data))
	for key := range entry.Data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(&buf, " %s=%v", key, entry.Data[key])
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
