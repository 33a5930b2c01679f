package logger

import (
	"bytes"
	"sync"
	"testing"
)

// captureStderr swaps the destination stream for a buffer until the test ends.
func captureStderr(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := outStderr
	outStderr = &buf
	t.Cleanup(func() { outStderr = old })
	return &buf
}

// captureExit replaces os.Exit and returns a pointer to the last exit code.
func captureExit(t *testing.T) *int {
	t.Helper()
	code := -1
	old := osExit
	osExit = func(c int) { code = c }
	t.Cleanup(func() { osExit = old })
	return &code
}

// keepDefault restores the process default Logger after the test.
func keepDefault(t *testing.T) {
	t.Helper()
	old := std.Load()
	t.Cleanup(func() { std.Store(old) })
}

type entry struct {
	level Level
	msg   string
}

// recorder is both a Handler and a SystemLog that remembers what it got.
type recorder struct {
	mu      sync.Mutex
	entries []entry
	err     error
	closed  bool
}

func (r *recorder) Emit(level Level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, entry{level, msg})
}

func (r *recorder) Log(level Level, msg string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.entries = append(r.entries, entry{level, msg})
	return nil
}

func (r *recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

func (r *recorder) all() []entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entry(nil), r.entries...)
}
