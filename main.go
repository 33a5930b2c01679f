// Command go-daemonlog exercises the logger the way a daemon would.
//
// Usage:
//
//	go-daemonlog [flags]
//
// Flags:
//
//	-d, --debug          Stay in the foreground and log to stderr; repeat for more detail
//	-c, --config string  TOML config file with a [log] table
//	    --name string    Program name used in system log entries
//	    --backend string System log backend: auto, syslog, journal or stream
//	    --file string    Write foreground output to this file instead of stderr
//	    --no-color       Disable colored level tags
//	    --handler        Route every message through a handler printing to stdout
//	    --fatal string   Finish with a fatal error carrying this message
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mordilloSan/go-daemonlog/internal/config"
	"github.com/mordilloSan/go-daemonlog/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		opts       config.Options
		useHandler bool
		fatalMsg   string
	)

	cmd := &cobra.Command{
		Use:   "go-daemonlog",
		Short: "Demonstrate daemon logging to stderr, syslog or a handler",
		Long: `Emit a few sample messages through the logger.

Without -d messages go to the system log and only warnings are kept.
-d logs warnings to stderr, -dd adds info messages and -ddd debug messages.

Settings are read from flags, then LOGGER_* environment variables, then
the [log] table of the file given with --config.

Examples:
  go-daemonlog -dd                 # foreground, info and above
  go-daemonlog --backend stream    # "<N>message" lines on stderr
  go-daemonlog --handler           # every level through a handler
  go-daemonlog -d --fatal "boom"   # fatal path, exits with status 1`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Load(&opts, cmd); err != nil {
				return err
			}
			return run(opts, useHandler, fatalMsg)
		},
	}

	cmd.Flags().CountVarP(&opts.Debug, "debug", "d", "Stay in the foreground and log to stderr; repeat for more detail")
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "TOML config file with a [log] table")
	cmd.Flags().StringVar(&opts.Name, "name", "", "Program name used in system log entries")
	cmd.Flags().StringVar(&opts.Backend, "backend", "", "System log backend: auto, syslog, journal or stream")
	cmd.Flags().StringVar(&opts.File, "file", "", "Write foreground output to this file instead of stderr")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false, "Disable colored level tags")
	cmd.Flags().BoolVar(&useHandler, "handler", false, "Route every message through a handler printing to stdout")
	cmd.Flags().StringVar(&fatalMsg, "fatal", "", "Finish with a fatal error carrying this message")

	return cmd
}

func run(opts config.Options, useHandler bool, fatalMsg string) error {
	cfg, err := opts.LoggerConfig()
	if err != nil {
		return err
	}
	if err := logger.Init(cfg); err != nil {
		return err
	}
	defer logger.Close()

	if useHandler {
		logger.Register(logger.HandlerFunc(func(level logger.Level, msg string) {
			fmt.Printf("%-7s %s\n", level, msg)
		}))
	}

	logger.Info("starting (pid %d, debug level %d)", os.Getpid(), logger.Default().DebugLevel())
	logger.Debug("arguments: %q", os.Args[1:])

	if _, err := os.Stat("/nonexistent/go-daemonlog.conf"); err != nil {
		logger.Warn(err, "")
	}
	logger.Warnx("sample warning from %s", "go-daemonlog")

	if fatalMsg != "" {
		logger.Fatalx(fatalMsg)
	}
	logger.Info("exiting")
	return nil
}
