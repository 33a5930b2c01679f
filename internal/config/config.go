// Package config resolves the daemon's logging options from the command
// line, the environment and an optional TOML file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/mordilloSan/go-daemonlog/logger"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "LOGGER_"

// Options are the settings of the demo daemon. Flag names match the field
// names in kebab case.
type Options struct {
	Config  string
	Debug   int
	Name    string
	Backend string
	File    string
	NoColor bool
}

// fileOptions mirrors the [log] table of the config file. Pointers tell
// unset keys apart from zero values.
type fileOptions struct {
	Log struct {
		Debug   *int    `toml:"debug"`
		Name    *string `toml:"name"`
		Backend *string `toml:"backend"`
		File    *string `toml:"file"`
		NoColor *bool   `toml:"no_color"`
	} `toml:"log"`
}

// Load fills opts with proper precedence: CLI args > env vars > config file.
// If cmd is provided, flags explicitly set via CLI are not overwritten.
func Load(opts *Options, cmd *cobra.Command) error {
	changed := make(map[string]bool)
	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if f.Changed {
				changed[f.Name] = true
			}
		})
	}

	if opts.Config != "" {
		data, err := os.ReadFile(opts.Config)
		if err != nil {
			return fmt.Errorf("read config: %w", err)
		}
		var fo fileOptions
		if err := toml.Unmarshal(data, &fo); err != nil {
			return fmt.Errorf("failed to parse TOML config: %w", err)
		}
		applyFile(opts, &fo, changed)
	}

	return applyEnv(opts, changed)
}

func applyFile(opts *Options, fo *fileOptions, changed map[string]bool) {
	if v := fo.Log.Debug; v != nil && !changed["debug"] {
		opts.Debug = *v
	}
	if v := fo.Log.Name; v != nil && !changed["name"] {
		opts.Name = *v
	}
	if v := fo.Log.Backend; v != nil && !changed["backend"] {
		opts.Backend = *v
	}
	if v := fo.Log.File; v != nil && !changed["file"] {
		opts.File = *v
	}
	if v := fo.Log.NoColor; v != nil && !changed["no-color"] {
		opts.NoColor = *v
	}
}

func applyEnv(opts *Options, changed map[string]bool) error {
	if v := os.Getenv(EnvPrefix + "DEBUG"); v != "" && !changed["debug"] {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid %sDEBUG %q: want a non-negative integer", EnvPrefix, v)
		}
		opts.Debug = n
	}
	if v := os.Getenv(EnvPrefix + "NAME"); v != "" && !changed["name"] {
		opts.Name = v
	}
	if v := os.Getenv(EnvPrefix + "BACKEND"); v != "" && !changed["backend"] {
		opts.Backend = v
	}
	if v := os.Getenv(EnvPrefix + "FILE"); v != "" && !changed["file"] {
		opts.File = v
	}
	if v := os.Getenv(EnvPrefix + "NO_COLOR"); v != "" && !changed["no-color"] {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %sNO_COLOR %q: %w", EnvPrefix, v, err)
		}
		opts.NoColor = b
	}
	return nil
}

// LoggerConfig converts opts into a logger.Config.
func (o Options) LoggerConfig() (logger.Config, error) {
	backend, err := logger.ParseBackend(o.Backend)
	if err != nil {
		return logger.Config{}, err
	}
	if o.Debug < 0 {
		return logger.Config{}, fmt.Errorf("invalid debug level %d", o.Debug)
	}
	return logger.Config{
		Debug:       o.Debug,
		ProgramName: o.Name,
		Backend:     backend,
		FilePath:    o.File,
		NoColor:     o.NoColor,
	}, nil
}
