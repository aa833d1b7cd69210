package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newLevelsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List the streams and whether they are shown at the current level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, cfg, err := opts.buildSet(cmd)
			if err != nil {
				return err
			}

			var sb strings.Builder
			sb.WriteString(render(set, labelStyle, fmt.Sprintf("threshold: %s (%d)", cfg.Level, int(cfg.Level))))
			sb.WriteString("\n\n")
			sb.WriteString(render(set, labelStyle, fmt.Sprintf("%-10s%-6s%s", "STREAM", "MIN", "STATUS")))
			sb.WriteString("\n")

			for _, n := range set.Streams() {
				status := render(set, hiddenStyle, "suppressed")
				if n.Stream.Enabled() {
					status = render(set, shownStyle, "shown")
				}
				fmt.Fprintf(&sb, "%-10s%-6d%s\n", n.Name, int(n.Stream.MinLevel()), status)
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), sb.String())
			return err
		},
	}
}
