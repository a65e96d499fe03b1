package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureReleaseWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	Configure("release", &buf)
	t.Cleanup(func() { Configure("debug", nil) })

	Log.Info().Str("vendor", "acme").Msg("hello")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["message"])
	assert.Equal(t, "acme", line["vendor"])
}

func TestSetLevelInvalidFallsBackToInfo(t *testing.T) {
	SetLevel("nonsense")
	t.Cleanup(func() { SetLevel("info") })
	assert.Equal(t, zerolog.InfoLevel, Log.GetLevel())
}
