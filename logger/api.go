package logger

import "fmt"

// state is the handler and debug level seen by one logging call. The gate
// and the dispatch of a call must use the same state.
type state struct {
	handler Handler
	debug   int
}

func (l *Logger) state() state {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return state{handler: l.handler, debug: l.debug}
}

// enabled reports whether messages at level pass the debug-level gate.
// A registered handler opens every gate.
func (s state) enabled(level Level) bool {
	if s.handler != nil {
		return true
	}
	switch level {
	case InfoLevel:
		return s.debug > 1
	case DebugLevel:
		return s.debug > 2
	}
	return true
}

func render(format string, v []any) string {
	if format == "" {
		return ""
	}
	return fmt.Sprintf(format, v...)
}

// withError appends ": err" to msg. An empty msg yields the error text alone.
func withError(msg string, err error) string {
	switch {
	case err == nil:
		return msg
	case msg == "":
		return err.Error()
	}
	return msg + ": " + err.Error()
}

func fatalMessage(msg string, err error) string {
	if s := withError(msg, err); s != "" {
		return "fatal: " + s
	}
	return "fatal"
}

// Warn logs a warning formatted with fmt.Sprintf followed by ": " and err.
// With an empty format only err is logged; with a nil err it acts as Warnx.
// A call with neither a format nor an error logs nothing.
func (l *Logger) Warn(err error, format string, v ...any) {
	msg := withError(render(format, v), err)
	if msg == "" {
		return
	}
	l.output(2, l.state(), WarnLevel, msg)
}

// Warnx logs a warning formatted with fmt.Sprintf.
func (l *Logger) Warnx(format string, v ...any) {
	l.output(2, l.state(), WarnLevel, render(format, v))
}

// Info logs an informational message when the debug level is above 1 or a
// handler is registered. Arguments are not formatted otherwise.
func (l *Logger) Info(format string, v ...any) {
	st := l.state()
	if !st.enabled(InfoLevel) {
		return
	}
	l.output(2, st, InfoLevel, render(format, v))
}

// Debug logs a debug message when the debug level is above 2 or a handler is
// registered. Arguments are not formatted otherwise.
func (l *Logger) Debug(format string, v ...any) {
	st := l.state()
	if !st.enabled(DebugLevel) {
		return
	}
	l.output(2, st, DebugLevel, render(format, v))
}

// Fatal logs "fatal: msg: err" at CritLevel and exits with status 1.
// The error suffix is omitted when err is nil.
func (l *Logger) Fatal(err error, msg string) {
	l.output(2, l.state(), CritLevel, fatalMessage(msg, err))
	osExit(1)
}

// Fatalx logs "fatal: msg" at CritLevel and exits with status 1.
func (l *Logger) Fatalx(msg string) {
	l.output(2, l.state(), CritLevel, fatalMessage(msg, nil))
	osExit(1)
}

// --- Package-level functions on the default Logger ---

// Warn logs a warning with an error suffix on the default Logger.
func Warn(err error, format string, v ...any) {
	msg := withError(render(format, v), err)
	if msg == "" {
		return
	}
	l := Default()
	l.output(2, l.state(), WarnLevel, msg)
}

// Warnx logs a warning on the default Logger.
func Warnx(format string, v ...any) {
	l := Default()
	l.output(2, l.state(), WarnLevel, render(format, v))
}

// Info logs an informational message on the default Logger.
func Info(format string, v ...any) {
	l := Default()
	st := l.state()
	if !st.enabled(InfoLevel) {
		return
	}
	l.output(2, st, InfoLevel, render(format, v))
}

// Debug logs a debug message on the default Logger.
func Debug(format string, v ...any) {
	l := Default()
	st := l.state()
	if !st.enabled(DebugLevel) {
		return
	}
	l.output(2, st, DebugLevel, render(format, v))
}

// Fatal logs on the default Logger and exits with status 1.
func Fatal(err error, msg string) {
	l := Default()
	l.output(2, l.state(), CritLevel, fatalMessage(msg, err))
	osExit(1)
}

// Fatalx logs on the default Logger and exits with status 1.
func Fatalx(msg string) {
	l := Default()
	l.output(2, l.state(), CritLevel, fatalMessage(msg, nil))
	osExit(1)
}
