package console

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/Aman-CERP/constream/internal/config"
	"github.com/Aman-CERP/constream/internal/errors"
	"github.com/Aman-CERP/constream/internal/severity"
	"github.com/Aman-CERP/constream/internal/stream"
)

var (
	defaultOnce sync.Once
	defaultSet  *Set
)

// OptionsFromConfig translates loaded configuration into Options. The sink
// is stdout or stderr as cfg.Sink names it; nil writers mean the process
// streams. The threshold starts at cfg.Level.
func OptionsFromConfig(cfg *config.Config, stdout, stderr io.Writer) (Options, error) {
	mode, err := ParseColorMode(cfg.Color)
	if err != nil {
		return Options{}, errors.ConfigError(err.Error(), err).WithDetail("color", cfg.Color)
	}

	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return Options{
		Sink:      cfg.SinkWriterFor(stdout, stderr),
		Threshold: severity.New(cfg.Level),
		Color:     mode,
	}, nil
}

// FromConfig builds a Set writing to the process streams. A non-nil th is
// shared by the set and seeded with cfg.Level, which leaves a level already
// chosen with Set untouched.
func FromConfig(cfg *config.Config, th *severity.Threshold) (*Set, error) {
	opts, err := OptionsFromConfig(cfg, nil, nil)
	if err != nil {
		return nil, err
	}
	if th != nil {
		th.Seed(cfg.Level)
		opts.Threshold = th
	}
	return New(opts), nil
}

// Default returns the process-wide Set. It is built on first use from the
// configuration of the working directory and shares severity.Default().
// A broken configuration falls back to the built-in defaults.
func Default() *Set {
	defaultOnce.Do(func() {
		defaultSet = buildDefault(severity.Default())
	})
	return defaultSet
}

func buildDefault(th *severity.Threshold) *Set {
	cfg, err := config.Load(".")
	if err == nil {
		var set *Set
		if set, err = FromConfig(cfg, th); err == nil {
			return set
		}
	}
	slog.Warn("console configuration ignored", errors.LogAttrs(err)...)
	set, _ := FromConfig(config.NewConfig(), th)
	return set
}

// Debug returns the default diagnostic stream (minimum level 3).
func Debug() *stream.Stream { return Default().Debug }

// Info returns the default informational stream (minimum level 2).
func Info() *stream.Stream { return Default().Info }

// Error returns the default error stream (minimum level 1).
func Error() *stream.Stream { return Default().Error }

// Red returns the default red stream.
func Red() *stream.Stream { return Default().Red }

// Green returns the default green stream.
func Green() *stream.Stream { return Default().Green }

// Yellow returns the default yellow stream.
func Yellow() *stream.Stream { return Default().Yellow }

// Blue returns the default blue stream.
func Blue() *stream.Stream { return Default().Blue }

// Magenta returns the default magenta stream.
func Magenta() *stream.Stream { return Default().Magenta }

// Cyan returns the default cyan stream.
func Cyan() *stream.Stream { return Default().Cyan }

// White returns the default white stream.
func White() *stream.Stream { return Default().White }

// SetThreshold changes the threshold of the default set.
func SetThreshold(level severity.Level) {
	Default().SetThreshold(level)
}

// Threshold returns the threshold of the default set.
func Threshold() severity.Level {
	return Default().Threshold()
}
