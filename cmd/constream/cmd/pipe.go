package cmd

import (
	"bufio"
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Aman-CERP/constream/internal/config"
	"github.com/Aman-CERP/constream/internal/console"
	"github.com/Aman-CERP/constream/internal/errors"
	"github.com/Aman-CERP/constream/internal/stream"
)

func newPipeCmd(opts *rootOptions) *cobra.Command {
	var (
		streamName string
		watchPath  string
	)

	cmd := &cobra.Command{
		Use:   "pipe",
		Short: "Decorate every line read from stdin",
		Long: `Read stdin line by line and write each line through one stream.

With --watch, the given config file is watched and its level is applied
to the running pipe whenever the file changes, so output can be muted or
unmuted without restarting the producer.

Examples:
  make 2>&1 | constream pipe --stream error
  ./server | constream pipe --watch .constream.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, _, err := opts.buildSet(cmd)
			if err != nil {
				return err
			}
			st, err := lookupStream(set, streamName)
			if err != nil {
				return err
			}
			return runPipe(cmd.Context(), cmd.InOrStdin(), set, st, watchPath)
		},
	}

	cmd.Flags().StringVarP(&streamName, "stream", "s", "info", "Stream to write to")
	cmd.Flags().StringVarP(&watchPath, "watch", "w", "", "Config file to watch for level changes")

	return cmd
}

// runPipe copies lines from in to st. The optional watcher runs next to
// the reader and stops once input is exhausted.
func runPipe(ctx context.Context, in io.Reader, set *console.Set, st *stream.Stream, watchPath string) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	if watchPath != "" {
		g.Go(func() error {
			return config.Watch(gctx, watchPath, func(cfg *config.Config) {
				set.SetThreshold(cfg.Level)
				slog.Info("threshold changed", slog.String("level", cfg.Level.String()))
			})
		})
	}

	g.Go(func() error {
		defer cancel()
		return pipeLines(gctx, in, st)
	})

	return g.Wait()
}

// pipeLines writes every line of in through st, one flush per line.
func pipeLines(ctx context.Context, in io.Reader, st *stream.Stream) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		if _, err := st.Write(scanner.Bytes()); err != nil {
			return err
		}
		if err := st.Flush(); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.New(errors.ErrCodeSinkInput, "failed to read input", err)
	}
	return nil
}
