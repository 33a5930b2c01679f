package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
)

// Config defines options for New and Init.
type Config struct {
	// Debug selects where messages go. 0 is daemon mode: messages are sent to
	// the system log. Any other value writes them to the destination stream.
	// Info messages need Debug > 1 and debug messages need Debug > 2.
	// Default: 0
	Debug int
	// ProgramName tags system log entries.
	// Default: base name of os.Args[0]
	ProgramName string
	// Backend selects the system log implementation used when Debug is 0.
	// Default: BackendAuto
	Backend Backend
	// FilePath makes this file (created/appended) the destination stream
	// instead of stderr; empty keeps stderr.
	// Default: ""
	FilePath string
	// NoColor disables ANSI colors even when the destination is a terminal.
	// The NO_COLOR environment variable has the same effect.
	// Default: false
	NoColor bool
	// IncludeCallerTag adds the [package.Function:line] tag in log messages.
	// Default: false
	IncludeCallerTag bool
	// SystemLog overrides Backend with a caller supplied implementation.
	// Default: nil
	SystemLog SystemLog
}

// Logger routes messages to a handler, the destination stream or the system
// log. The zero value is not usable; use New.
type Logger struct {
	mu      sync.RWMutex
	debug   int
	handler Handler

	// writeMu serializes writes to the destination stream.
	writeMu   sync.Mutex
	out       io.Writer // nil means outStderr
	file      *os.File
	syslog    SystemLog
	noColor   bool
	callerTag bool
}

// Dependency injection points for testing outputs and termination.
var (
	outStderr io.Writer = os.Stderr
	osExit              = os.Exit
)

// std is the process default used by the package-level functions. Until
// Init runs it writes to stderr, as if initialized with Debug 1.
var std atomic.Pointer[Logger]

func init() {
	std.Store(&Logger{debug: 1})
}

// New builds a Logger from config. In daemon mode (Debug 0) the system log
// connection is opened immediately. New also pins the time zone used by Now.
func New(config Config) (*Logger, error) {
	l := &Logger{
		debug:     config.Debug,
		noColor:   config.NoColor,
		callerTag: config.IncludeCallerTag,
	}

	if config.FilePath != "" {
		f, err := os.OpenFile(config.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(outStderr, "failed to open log file %s: %v\n", config.FilePath, err)
		} else {
			l.file = f
			l.out = f
		}
	}

	if config.Debug == 0 {
		sl := config.SystemLog
		if sl == nil {
			var err error
			sl, err = openSystemLog(config.Backend, programName(config.ProgramName), l.dest)
			if err != nil {
				l.closeFile()
				return nil, err
			}
		}
		l.syslog = sl
	}

	resetLocation()
	return l, nil
}

// Init builds a Logger with New and makes it the process default. The
// previous default is closed.
// Call Close() to release the log file and system log connection on shutdown.
func Init(config Config) error {
	l, err := New(config)
	if err != nil {
		return err
	}
	if old := std.Swap(l); old != nil {
		_ = old.Close()
	}
	return nil
}

// Default returns the Logger used by the package-level functions.
func Default() *Logger {
	return std.Load()
}

// Close closes the default Logger.
func Close() error {
	return Default().Close()
}

// Register installs h on the default Logger.
func Register(h Handler) {
	Default().Register(h)
}

// Register installs h as the handler, replacing any previous one. A nil h
// clears it. The change applies to every call that starts afterwards.
func (l *Logger) Register(h Handler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handler = h
}

// DebugLevel returns the debug level the Logger was created with.
func (l *Logger) DebugLevel() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.debug
}

// Close closes the log file and the system log connection, if any.
func (l *Logger) Close() error {
	var errs []error
	if l.syslog != nil {
		errs = append(errs, l.syslog.Close())
	}
	errs = append(errs, l.closeFile())
	return errors.Join(errs...)
}

func (l *Logger) closeFile() error {
	l.writeMu.Lock()
	defer l.writeMu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.out = nil
	return err
}

// dest returns the destination stream.
func (l *Logger) dest() io.Writer {
	if l.out != nil {
		return l.out
	}
	return outStderr
}

func programName(name string) string {
	if name != "" {
		return name
	}
	if len(os.Args) > 0 {
		return filepath.Base(os.Args[0])
	}
	return "daemon"
}
