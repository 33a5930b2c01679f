//go:build windows || plan9

package logger

import "errors"

func newSyslog(string) (SystemLog, error) {
	return nil, errors.New("syslog is not supported on this platform")
}
