//go:build !windows && !plan9

package logger

import (
	"log/syslog"
)

// syslogLog forwards to the local syslog daemon. log/syslog dials on New and
// stamps every message with the PID.
type syslogLog struct {
	w *syslog.Writer
}

// syslogDial connects to the local syslog daemon.
var syslogDial = func(name string) (*syslog.Writer, error) {
	return syslog.New(syslog.LOG_DAEMON|syslog.LOG_INFO, name)
}

func newSyslog(name string) (SystemLog, error) {
	w, err := syslogDial(name)
	if err != nil {
		return nil, err
	}
	return &syslogLog{w: w}, nil
}

func (s *syslogLog) Log(level Level, msg string) error {
	switch level {
	case EmergLevel:
		return s.w.Emerg(msg)
	case AlertLevel:
		return s.w.Alert(msg)
	case CritLevel:
		return s.w.Crit(msg)
	case ErrorLevel:
		return s.w.Err(msg)
	case WarnLevel:
		return s.w.Warning(msg)
	case NoticeLevel:
		return s.w.Notice(msg)
	case DebugLevel:
		return s.w.Debug(msg)
	default:
		return s.w.Info(msg)
	}
}

func (s *syslogLog) Close() error {
	return s.w.Close()
}
