//go:build !windows && !plan9

package logger

import (
	"fmt"
	"log/syslog"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listenSyslog points syslogDial at a unixgram socket owned by the test and
// returns the receiving end.
func listenSyslog(t *testing.T) net.PacketConn {
	t.Helper()
	// Unix socket paths are length limited; keep this one short.
	dir, err := os.MkdirTemp("", "sl")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	path := filepath.Join(dir, "log.sock")
	conn, err := net.ListenPacket("unixgram", path)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	old := syslogDial
	syslogDial = func(name string) (*syslog.Writer, error) {
		return syslog.Dial("unixgram", path, syslog.LOG_DAEMON|syslog.LOG_INFO, name)
	}
	t.Cleanup(func() { syslogDial = old })
	return conn
}

func readDatagram(t *testing.T, conn net.PacketConn) string {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	buf := make([]byte, 2048)
	n, _, err := conn.ReadFrom(buf)
	require.NoError(t, err)
	return string(buf[:n])
}

func TestSyslogBackend_PriorityPerLevel(t *testing.T) {
	conn := listenSyslog(t)

	sl, err := newSyslog("testd")
	require.NoError(t, err)
	defer sl.Close()

	const daemon = 3 << 3
	cases := []struct {
		level Level
		pri   int
	}{
		{EmergLevel, daemon | 0},
		{AlertLevel, daemon | 1},
		{CritLevel, daemon | 2},
		{ErrorLevel, daemon | 3},
		{WarnLevel, daemon | 4},
		{NoticeLevel, daemon | 5},
		{InfoLevel, daemon | 6},
		{DebugLevel, daemon | 7},
		{Level(11), daemon | 6},
	}
	for _, tc := range cases {
		msg := fmt.Sprintf("level %d", int(tc.level))
		require.NoError(t, sl.Log(tc.level, msg))

		got := readDatagram(t, conn)
		assert.True(t, strings.HasPrefix(got, fmt.Sprintf("<%d>", tc.pri)), "level %d: %q", int(tc.level), got)
		assert.Contains(t, got, fmt.Sprintf("testd[%d]: ", os.Getpid()))
		assert.True(t, strings.HasSuffix(strings.TrimSuffix(got, "\n"), msg), "level %d: %q", int(tc.level), got)
	}
}

func TestSyslogBackend_DaemonMode(t *testing.T) {
	conn := listenSyslog(t)
	stderr := captureStderr(t)

	l, err := New(Config{Debug: 0, Backend: BackendSyslog, ProgramName: "testd"})
	require.NoError(t, err)
	defer l.Close()

	l.Info("gated")
	l.Warn(nil, "disk %s", "slow")

	got := readDatagram(t, conn)
	assert.True(t, strings.HasPrefix(got, "<28>"), "warning should use LOG_DAEMON|LOG_WARNING: %q", got)
	assert.True(t, strings.HasSuffix(strings.TrimSuffix(got, "\n"), "disk slow"), "got %q", got)
	assert.Empty(t, stderr.String())
}
