package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	l.Debug().Msg("hidden")
	l.Info().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	l = New(&buf, true)
	l.Debug().Msg("detail")
	assert.Contains(t, buf.String(), "detail")
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, false)
	c := l.Component("report")
	c.Info().Msg("written")
	assert.Contains(t, buf.String(), `"component":"report"`)
}

func TestOpen_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "audit.log")

	for _, msg := range []string{"first", "second"} {
		l, err := Open(path, false)
		require.NoError(t, err)
		l.LogRunStart("/usr/local/bin/cellareas", "1.2.3")
		l.Info().Msg(msg)
		require.NoError(t, l.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `"script":"cellareas"`)
	assert.Contains(t, text, `"version":"1.2.3"`)
	assert.Equal(t, 1, strings.Count(text, `"message":"first"`))
	assert.Equal(t, 1, strings.Count(text, `"message":"second"`))
}

func TestOpen_MissingDirectory(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope", "audit.log"), false)
	assert.Error(t, err)
}

func TestMinLevel(t *testing.T) {
	var buf bytes.Buffer
	w := minLevel{w: &buf, level: zerolog.WarnLevel}

	n, err := w.WriteLevel(zerolog.InfoLevel, []byte("info"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Empty(t, buf.String())

	_, err = w.WriteLevel(zerolog.ErrorLevel, []byte("error"))
	require.NoError(t, err)
	assert.Equal(t, "error", buf.String())
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error().Msg("discarded")
	assert.NoError(t, l.Close())
}

func TestNew_LeavesPackageSettings(t *testing.T) {
	format, durations := zerolog.TimeFieldFormat, zerolog.DurationFieldInteger

	var buf bytes.Buffer
	New(&buf, false).Info().Msg("stamped")

	assert.Equal(t, format, zerolog.TimeFieldFormat)
	assert.Equal(t, durations, zerolog.DurationFieldInteger)
	assert.Contains(t, buf.String(), `"time":"`)
}
