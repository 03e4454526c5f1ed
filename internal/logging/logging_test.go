package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":      zerolog.InfoLevel,
		"info":  zerolog.InfoLevel,
		"Debug": zerolog.DebugLevel,
		"WARN":  zerolog.WarnLevel,
		"error": zerolog.ErrorLevel,
		"trace": zerolog.TraceLevel,
		"off":   zerolog.Disabled,
	}
	for name, want := range cases {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestNewJSONFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "warn"}, &buf)
	require.NoError(t, err)

	log.Info().Msg("hidden")
	log.Warn().Float64("distance", 12.5).Msg("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "shown", entry["message"])
	assert.Equal(t, 12.5, entry["distance"])
	assert.Contains(t, entry, "time")
}

func TestNewPretty(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "debug", Pretty: true}, &buf)
	require.NoError(t, err)

	log.Debug().Str("rule", "pads").Msg("run started")
	out := buf.String()
	assert.Contains(t, out, "run started")
	assert.Contains(t, out, "rule=")
	assert.False(t, strings.HasPrefix(out, "{"), "console output is not JSON")
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Config{Level: "chatty"}, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestSampledBurst(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "debug"}, &buf)
	require.NoError(t, err)

	s := Sampled(log, 3, time.Hour, 1000)
	for i := 0; i < 50; i++ {
		s.Debug().Int("tick", i).Msg("tick")
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.GreaterOrEqual(t, len(lines), 3, "burst passes through")
	assert.LessOrEqual(t, len(lines), 4, "then one in a thousand")
	assert.Contains(t, lines[0], `"sampled":true`)
}
