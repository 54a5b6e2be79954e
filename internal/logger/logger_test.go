package logger

import (
	"bytes"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, logrus.WarnLevel, ParseLevel(" WARNING "))
	assert.Equal(t, logrus.TraceLevel, ParseLevel("trace"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel(""))
	assert.Equal(t, logrus.InfoLevel, ParseLevel("verbose"))
}

func TestFormatter(t *testing.T) {
	entry := &logrus.Entry{
		Time:    time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "sweep",
		Data:    logrus.Fields{"policy": "Clock", "faults": 3},
	}
	out, err := (&Formatter{}).Format(entry)
	require.NoError(t, err)
	assert.Equal(t, "[03:04:05.006] [WARN] sweep faults=3 policy=Clock\n", string(out))
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Output: &buf, Level: "error"})
	log.Info("dropped")
	assert.Zero(t, buf.Len())
	log.WithField("step", 1).Error("kept")
	assert.Contains(t, buf.String(), "[ERRO] kept step=1")
}
