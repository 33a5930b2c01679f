package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate_PlainTags(t *testing.T) {
	want := map[Level]string{
		EmergLevel:  "[EMRG]",
		AlertLevel:  "[ALRT]",
		CritLevel:   "[CRIT]",
		ErrorLevel:  "[ ERR]",
		WarnLevel:   "[WARN]",
		NoticeLevel: "[NOTI]",
		InfoLevel:   "[INFO]",
		DebugLevel:  "[ DBG]",
	}

	seen := make(map[string]Level)
	for level, tag := range want {
		got := Translate(false, level)
		assert.Equal(t, tag, got, "level %v", level)
		assert.Len(t, got, 6)
		if prev, dup := seen[got]; dup {
			t.Errorf("tag %q shared by %v and %v", got, prev, level)
		}
		seen[got] = level
	}
}

func TestTranslate_InteractiveWrapsInColor(t *testing.T) {
	for level := EmergLevel; level <= DebugLevel; level++ {
		plain := Translate(false, level)
		colored := Translate(true, level)

		require.True(t, strings.HasPrefix(colored, "\033["), "level %v: %q", level, colored)
		assert.True(t, strings.HasSuffix(colored, plain+colorReset), "level %v: %q", level, colored)
		assert.Greater(t, len(colored), len(plain+colorReset), "level %v needs a color prefix", level)
	}
}

func TestTranslate_Unknown(t *testing.T) {
	for _, level := range []Level{-1, 8, 42} {
		assert.Equal(t, "[UNKN]", Translate(false, level))
		assert.Equal(t, "[UNKN]", Translate(true, level), "unknown tags are never colored")
	}
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "emerg", EmergLevel.String())
	assert.Equal(t, "warning", WarnLevel.String())
	assert.Equal(t, "debug", DebugLevel.String())
	assert.Equal(t, "unknown", Level(99).String())
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"emerg":     EmergLevel,
		"EMERGENCY": EmergLevel,
		"alert":     AlertLevel,
		"crit":      CritLevel,
		"Critical":  CritLevel,
		"err":       ErrorLevel,
		"error":     ErrorLevel,
		"warn":      WarnLevel,
		" warning ": WarnLevel,
		"notice":    NoticeLevel,
		"info":      InfoLevel,
		"debug":     DebugLevel,
	}
	for in, want := range cases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("verbose")
	require.ErrorIs(t, err, ErrUnknownLevel)
}

func TestIsTTY_NonTerminals(t *testing.T) {
	assert.False(t, isTTY(nil))
	assert.False(t, isTTY(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "tty")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, isTTY(f), "a regular file is not a terminal")
}

func TestColorize_NoColor(t *testing.T) {
	l := &Logger{noColor: true}
	assert.False(t, l.colorize(os.Stderr))

	t.Setenv("NO_COLOR", "1")
	l = &Logger{}
	assert.False(t, l.colorize(os.Stderr))
}
