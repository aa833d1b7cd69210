// Package cmd provides the CLI commands for constream.
package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/constream/internal/config"
	"github.com/Aman-CERP/constream/internal/console"
	"github.com/Aman-CERP/constream/internal/errors"
	"github.com/Aman-CERP/constream/internal/logging"
	"github.com/Aman-CERP/constream/internal/severity"
	"github.com/Aman-CERP/constream/internal/stream"
	"github.com/Aman-CERP/constream/pkg/version"
)

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configPath string
	level      string
	color      string
	debug      bool
	logFormat  string
}

// NewRootCmd creates the root command for the constream CLI.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "constream",
		Short: "Timestamped, colored, level-filtered console streams",
		Long: `constream decorates console output: every flushed line gets a
timestamp and a colored severity prefix, multi-line messages are indented
under the first line, and a shared severity threshold decides which
streams are shown.

Levels: debug=3, info=2, error=1, color streams=0. A stream is shown
while the threshold is at least its level (default threshold 3).`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetVersionTemplate("constream version {{.Version}}\n")

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a config file (default: .constream.yaml, then user config)")
	cmd.PersistentFlags().StringVarP(&opts.level, "level", "l", "", "Severity threshold: off, raw, error, info, debug or an integer")
	cmd.PersistentFlags().StringVar(&opts.color, "color", "", "Color mode: auto, always or never")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Print diagnostic logs to stderr")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "Diagnostic log format: text or json")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		cfg := logging.DefaultConfig()
		if opts.debug {
			cfg = logging.DebugConfig()
		}
		switch strings.ToLower(opts.logFormat) {
		case "text", "json":
			cfg.Format = strings.ToLower(opts.logFormat)
		default:
			return errors.ValidationError(
				fmt.Sprintf("invalid log format %q: want text or json", opts.logFormat), nil)
		}
		cfg.Output = cmd.ErrOrStderr()
		logging.SetupDefault(cfg)
		return nil
	}

	cmd.AddCommand(newDemoCmd(opts))
	cmd.AddCommand(newEmitCmd(opts))
	cmd.AddCommand(newPipeCmd(opts))
	cmd.AddCommand(newLevelsCmd(opts))
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}

// Exit codes follow sysexits.h.
const (
	exitFailure = 1
	exitUsage   = 64
	exitIOErr   = 74
	exitConfig  = 78
)

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if errors.IsFatal(err) {
		return exitIOErr
	}
	switch errors.GetCategory(err) {
	case errors.CategoryConfig:
		return exitConfig
	case errors.CategoryValidation:
		return exitUsage
	default:
		return exitFailure
	}
}

// loadConfig resolves configuration files, the environment and flags.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFile(o.configPath)
	} else {
		cfg, err = config.Load(".")
	}
	if err != nil {
		return nil, err
	}

	if o.level != "" {
		level, err := severity.ParseLevel(o.level)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidLevel, err.Error(), err)
		}
		cfg.Level = level
	}
	if o.color != "" {
		mode, err := console.ParseColorMode(o.color)
		if err != nil {
			return nil, errors.ValidationError(err.Error(), err)
		}
		cfg.Color = string(mode)
	}

	slog.Debug("effective configuration", slog.String("config", cfg.String()))
	return cfg, nil
}

// buildSet creates the console streams for a command. Output goes to the
// command's stdout or stderr so tests can capture it.
func (o *rootOptions) buildSet(cmd *cobra.Command) (*console.Set, *config.Config, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, nil, err
	}

	setOpts, err := console.OptionsFromConfig(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return nil, nil, err
	}
	set := console.New(setOpts)
	return set, cfg, nil
}

// lookupStream resolves a stream name or returns a validation error.
func lookupStream(set *console.Set, name string) (*stream.Stream, error) {
	st, ok := set.Lookup(name)
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownStream, fmt.Sprintf("unknown stream %q", name), nil).
			WithDetail("stream", name).
			WithSuggestion("run 'constream levels' to list the available streams")
	}
	return st, nil
}
