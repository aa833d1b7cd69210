package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/constream/internal/errors"
)

func newEmitCmd(opts *rootOptions) *cobra.Command {
	var (
		streamName string
		escapes    bool
	)

	cmd := &cobra.Command{
		Use:   "emit [text...]",
		Short: "Write one message through a stream",
		Long: `Write the arguments, joined by spaces, through one stream and flush it.
Nothing is printed when the threshold suppresses the stream.

Examples:
  constream emit --stream error "disk almost full"
  constream emit -e -s error 'fancy output streams.\nwith a nice\nlinebreak.'
  constream emit --level 1 -s debug "never shown at level 1"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, _, err := opts.buildSet(cmd)
			if err != nil {
				return err
			}
			st, err := lookupStream(set, streamName)
			if err != nil {
				return err
			}

			text := strings.Join(args, " ")
			if escapes {
				text, err = unescape(text)
				if err != nil {
					return err
				}
			}
			return st.Println(text)
		},
	}

	cmd.Flags().StringVarP(&streamName, "stream", "s", "info", "Stream to write to (debug, info, error, red, green, ...)")
	cmd.Flags().BoolVarP(&escapes, "escapes", "e", false, `Interpret backslash escapes such as \n and \t`)

	return cmd
}

// unescape interprets Go string escapes in s.
func unescape(s string) (string, error) {
	quoted := `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
	out, err := strconv.Unquote(quoted)
	if err != nil {
		return "", errors.ValidationError("invalid escape sequence in message", err)
	}
	return out, nil
}
