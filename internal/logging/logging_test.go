package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"DEBUG":   zerolog.DebugLevel,
		"debug":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"ERROR":   zerolog.ErrorLevel,
		"trace":   zerolog.TraceLevel,
		"INFO":    zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestSetupFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	Setup("WARN", &buf, true)

	Logger.Info().Msg("hidden message")
	Logger.Warn().Str("scene", "shooter").Msg("visible message")

	out := buf.String()
	assert.NotContains(t, out, "hidden message")
	assert.Contains(t, out, "visible message")
	assert.Contains(t, out, "scene=shooter")
}

func TestFrameSampleLimitsBurst(t *testing.T) {
	var buf bytes.Buffer
	Setup("INFO", &buf, true)

	for i := 0; i < 50; i++ {
		FrameSample.Info().Msg("tick")
	}

	n := bytes.Count(buf.Bytes(), []byte("tick"))
	assert.GreaterOrEqual(t, n, 5)
	assert.Less(t, n, 50)
}
