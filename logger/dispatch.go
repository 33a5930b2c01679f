package logger

import (
	"fmt"
	"io"
	"runtime"
	"strings"
)

// output delivers msg to exactly one destination: the handler when one is
// registered, else the destination stream in debug mode, else the system log.
// calldepth is the number of frames between output and the user's call site.
func (l *Logger) output(calldepth int, st state, level Level, msg string) {
	if l.callerTag {
		msg = formatWithCaller(calldepth+1, msg)
	}

	if st.handler != nil {
		st.handler.Emit(level, msg)
		return
	}

	l.writeMu.Lock()
	defer l.writeMu.Unlock()

	if st.debug != 0 || l.syslog == nil {
		l.writeLine(level, msg)
		return
	}
	if err := l.syslog.Log(level, msg); err != nil {
		// Keep the message even if the system log is gone.
		l.writeRaw(msg)
	}
}

// writeLine writes "<timestamp> <tag> <msg>\n" in a single write.
// Callers must hold writeMu.
func (l *Logger) writeLine(level Level, msg string) {
	w := l.dest()
	tag := Translate(l.colorize(w), level)

	var b strings.Builder
	b.Grow(len(TimestampLayout) + len(tag) + len(msg) + 3)
	b.WriteString(Now())
	b.WriteByte(' ')
	b.WriteString(tag)
	b.WriteByte(' ')
	b.WriteString(msg)
	b.WriteByte('\n')

	_, _ = io.WriteString(w, b.String())
	flush(w)
}

// writeRaw writes msg undecorated. Callers must hold writeMu.
func (l *Logger) writeRaw(msg string) {
	w := l.dest()
	_, _ = io.WriteString(w, msg+"\n")
	flush(w)
}

func (l *Logger) colorize(w io.Writer) bool {
	if l.noColor || noColorEnv() {
		return false
	}
	return isTTY(w)
}

type flusher interface {
	Flush() error
}

func flush(w io.Writer) {
	if f, ok := w.(flusher); ok {
		_ = f.Flush()
	}
}

// getCallerInfo returns formatted caller information at the specified stack depth.
// Returns "package.Function:line" format.
func getCallerInfo(depth int) string {
	pc, _, line, ok := runtime.Caller(depth)
	if !ok {
		return "unknown"
	}
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "unknown"
	}
	full := fn.Name()
	if lastSlash := strings.LastIndex(full, "/"); lastSlash >= 0 && lastSlash+1 < len(full) {
		full = full[lastSlash+1:]
	}
	return fmt.Sprintf("%s:%d", full, line)
}

func formatWithCaller(depth int, msg string) string {
	return fmt.Sprintf("[%s] %s", getCallerInfo(depth+1), msg)
}
