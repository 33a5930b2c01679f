package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/coreos/go-systemd/v22/journal"
)

// SystemLog is the system log facility reached in daemon mode.
type SystemLog interface {
	Log(level Level, msg string) error
	Close() error
}

// Backend names a SystemLog implementation.
type Backend string

const (
	// BackendAuto picks journal under systemd, then syslog, then stream.
	BackendAuto Backend = "auto"
	// BackendSyslog uses the local syslog daemon with facility LOG_DAEMON.
	BackendSyslog Backend = "syslog"
	// BackendJournal sends entries to the systemd journal.
	BackendJournal Backend = "journal"
	// BackendStream writes "<N>" priority-prefixed lines to the destination.
	BackendStream Backend = "stream"
)

// ErrUnknownBackend is returned for a Backend name that is not recognized.
var ErrUnknownBackend = errors.New("unknown system log backend")

// ParseBackend parses a backend name. The empty string means BackendAuto.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case "", BackendAuto:
		return BackendAuto, nil
	case BackendSyslog, BackendJournal, BackendStream:
		return b, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
}

// Connection hooks, replaced in tests.
var (
	openSyslog     = newSyslog
	journalEnabled = journal.Enabled
)

// openSystemLog connects to the backend b tagged with name. Stream output
// goes to out, resolved at write time.
func openSystemLog(b Backend, name string, out func() io.Writer) (SystemLog, error) {
	switch b {
	case "", BackendAuto:
		if shouldUseJournal() {
			return newJournalLog(name), nil
		}
		if sl, err := openSyslog(name); err == nil {
			return sl, nil
		}
		return &streamLog{out: out}, nil
	case BackendSyslog:
		sl, err := openSyslog(name)
		if err != nil {
			return nil, fmt.Errorf("open syslog: %w", err)
		}
		return sl, nil
	case BackendJournal:
		if !journalEnabled() {
			return nil, errors.New("open journal: socket not available")
		}
		return newJournalLog(name), nil
	case BackendStream:
		return &streamLog{out: out}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, string(b))
}

func shouldUseJournal() bool {
	return os.Getenv("JOURNAL_STREAM") != "" && journalEnabled()
}

// journalLog sends entries to the systemd journal.
type journalLog struct {
	vars map[string]string
}

func newJournalLog(name string) *journalLog {
	return &journalLog{vars: map[string]string{
		"SYSLOG_IDENTIFIER": name,
		"SYSLOG_PID":        fmt.Sprintf("%d", os.Getpid()),
	}}
}

func (j *journalLog) Log(level Level, msg string) error {
	return journal.Send(msg, journalPriority(level), j.vars)
}

func (j *journalLog) Close() error { return nil }

func journalPriority(level Level) journal.Priority {
	if !level.valid() {
		return journal.PriInfo
	}
	return journal.Priority(level)
}

// streamLog writes each message as one line prefixed with its syslog
// priority, the form journald parses from a service's stderr.
type streamLog struct {
	out func() io.Writer
}

func (s *streamLog) Log(level Level, msg string) error {
	w := s.out()
	_, err := io.WriteString(w, syslogPrefix(level)+msg+"\n")
	flush(w)
	return err
}

func (s *streamLog) Close() error { return nil }

func syslogPrefix(level Level) string {
	if !level.valid() {
		return "<6>"
	}
	return fmt.Sprintf("<%d>", int(level))
}
