package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Level is a syslog priority. Lower values are more urgent.
type Level int

const (
	// EmergLevel means the system is unusable.
	EmergLevel Level = iota
	// AlertLevel means action must be taken immediately.
	AlertLevel
	// CritLevel reports critical conditions. Fatal logs at this level.
	CritLevel
	// ErrorLevel reports error conditions.
	ErrorLevel
	// WarnLevel reports warning conditions.
	WarnLevel
	// NoticeLevel reports normal but significant conditions.
	NoticeLevel
	// InfoLevel reports informational messages.
	InfoLevel
	// DebugLevel reports debug-level messages.
	DebugLevel
)

// ErrUnknownLevel is returned by ParseLevel for unrecognized names.
var ErrUnknownLevel = errors.New("unknown level")

const colorReset = "\033[0m"

// tags holds the fixed-width tag and terminal color for every known level.
var tags = [...]struct {
	tag   string
	color string
}{
	EmergLevel:  {"[EMRG]", "\033[1;37;41m"},
	AlertLevel:  {"[ALRT]", "\033[1;37;41m"},
	CritLevel:   {"[CRIT]", "\033[1;37;41m"},
	ErrorLevel:  {"[ ERR]", "\033[1;31m"},
	WarnLevel:   {"[WARN]", "\033[1;33m"},
	NoticeLevel: {"[NOTI]", "\033[1;34m"},
	InfoLevel:   {"[INFO]", "\033[1;34m"},
	DebugLevel:  {"[ DBG]", "\033[1;30m"},
}

var names = [...]string{
	EmergLevel:  "emerg",
	AlertLevel:  "alert",
	CritLevel:   "crit",
	ErrorLevel:  "err",
	WarnLevel:   "warning",
	NoticeLevel: "notice",
	InfoLevel:   "info",
	DebugLevel:  "debug",
}

func (s Level) valid() bool {
	return s >= EmergLevel && s <= DebugLevel
}

// String returns the syslog name of the level.
func (s Level) String() string {
	if !s.valid() {
		return "unknown"
	}
	return names[s]
}

// ParseLevel parses a syslog level name. Matching is case-insensitive
// and accepts the usual long forms ("emergency", "critical", "error", "warn").
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "emerg", "emergency":
		return EmergLevel, nil
	case "alert":
		return AlertLevel, nil
	case "crit", "critical":
		return CritLevel, nil
	case "err", "error":
		return ErrorLevel, nil
	case "warning", "warn":
		return WarnLevel, nil
	case "notice":
		return NoticeLevel, nil
	case "info":
		return InfoLevel, nil
	case "debug":
		return DebugLevel, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// Translate returns the bracketed tag for level. When interactive is true the
// tag is wrapped in ANSI color codes. Out of range values yield "[UNKN]",
// which is never colored.
func Translate(interactive bool, level Level) string {
	if !level.valid() {
		return "[UNKN]"
	}
	t := tags[level]
	if !interactive {
		return t.tag
	}
	return t.color + t.tag + colorReset
}

// isTTY reports whether w is a file attached to a terminal.
func isTTY(w io.Writer) bool {
	if w == nil {
		return false
	}
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

func noColorEnv() bool {
	_, exists := os.LookupEnv("NO_COLOR")
	return exists
}
