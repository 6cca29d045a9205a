package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutput_WritesJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithOutput("debug", buf)

	log.WithField("service", "importer").Debug("Feed parsed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Feed parsed", entry["msg"])
	assert.Equal(t, "importer", entry["service"])
	assert.Equal(t, "debug", entry["level"])
}

func TestNewWithOutput_InvalidLevelFallsBackToInfo(t *testing.T) {
	log := NewWithOutput("chatty", &bytes.Buffer{})

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}
