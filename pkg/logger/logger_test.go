package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithOutput_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("debug", &buf)

	log.WithField("service", "IncidentService").Debug("Incident created")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Incident created", entry["message"])
	assert.Equal(t, "IncidentService", entry["service"])
	assert.Equal(t, "debug", entry["level"])
}

func TestNewWithOutput_InvalidLevel(t *testing.T) {
	log := NewWithOutput("loud", &bytes.Buffer{})

	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}
