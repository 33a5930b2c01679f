// Package logger provides process-wide logging for daemons.
//
// Every message goes to exactly one destination:
//
//   - a registered Handler, when one is installed;
//   - otherwise, in foreground mode (Config.Debug != 0), the destination
//     stream (stderr or Config.FilePath) as "2012-12-12T16:13:30 [WARN] msg";
//   - otherwise the system log (syslog, the systemd journal, or "<N>"
//     prefixed lines on stderr, see Backend).
//
// # Levels
//
// Levels follow syslog numbering, EmergLevel (0) to DebugLevel (7). On a
// terminal the level tag is colored; NO_COLOR or Config.NoColor turn colors
// off. Info messages need Debug > 1 and debug messages need Debug > 2 unless a
// handler is registered, in which case nothing is gated.
//
// # Usage
//
// Initialize once at startup:
//
//	if err := logger.Init(logger.Config{Debug: debug, ProgramName: "bgpd"}); err != nil {
//	    ...
//	}
//	defer logger.Close()
//
// Log:
//
//	logger.Info("listening on %s", addr)
//	logger.Warn(err, "cannot open %s", path)   // "cannot open /x: no such file or directory"
//	logger.Warnx("peer %s flapping", peer)
//	logger.Fatalx("no usable interfaces")      // logs "fatal: ..." and exits 1
//
// A *Logger from New can be passed around explicitly instead of using the
// package-level functions.
package logger
