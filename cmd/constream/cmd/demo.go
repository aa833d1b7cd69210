package cmd

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/constream/internal/console"
	"github.com/Aman-CERP/constream/internal/severity"
)

func newDemoCmd(opts *rootOptions) *cobra.Command {
	var from, to int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Write sample output through every stream at each level",
		Long: `Walk the severity threshold from --from to --to and, at every level,
write a sample message through the debug, info and error streams and
through each color stream, so the filtering can be seen at a glance.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			set, _, err := opts.buildSet(cmd)
			if err != nil {
				return err
			}
			for level := from; level <= to; level++ {
				header := fmt.Sprintf("==== Log level %d %s", level, strings.Repeat("=", 39))
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), render(set, headerStyle, header)); err != nil {
					return err
				}
				if err := runDemoRound(set, severity.Level(level)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&from, "from", int(severity.Off), "First threshold to show")
	cmd.Flags().IntVar(&to, "to", int(severity.Debug), "Last threshold to show")

	return cmd
}

// runDemoRound sets the threshold and writes one sample per stream.
func runDemoRound(set *console.Set, level severity.Level) error {
	set.SetThreshold(level)

	steps := []func() error{
		func() error { return set.Debug.Println("Hello") },
		func() error { return set.Info.Println("these are some") },
		func() error { return set.Error.Println("fancy output streams.\nwith a nice\nlinebreak.") },
	}
	for _, n := range set.Streams()[3:] {
		st, name := n.Stream, n.Name
		steps = append(steps, func() error { return st.Println(name + "_stream") })
	}
	steps = append(steps,
		func() error { return set.Info.Logf("%s: Ooopsie, something went wrong.", caller()) },
		func() error { return set.Info.Println("and another line") },
		func() error { return set.Info.Println("and another line") },
	)

	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

// caller renders the location of its caller as file:line::func(). Function
// literals are reported as the function enclosing them.
func caller() string {
	pcs := make([]uintptr, 1)
	if runtime.Callers(2, pcs) == 0 {
		return "unknown"
	}
	frame, _ := runtime.CallersFrames(pcs).Next()
	return fmt.Sprintf("%s:%d::%s()", filepath.Base(frame.File), frame.Line, funcName(frame.Function))
}

// funcName trims the package path and closure suffixes from a qualified
// function name: "example.com/p.outer.func2.1" becomes "outer".
func funcName(qualified string) string {
	name := qualified
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, ".func"); i >= 0 {
		name = name[:i]
	}
	return name
}
