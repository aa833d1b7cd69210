package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Aman-CERP/constream/configs"
	"github.com/Aman-CERP/constream/internal/config"
	"github.com/Aman-CERP/constream/internal/errors"
)

func newInitCmd() *cobra.Command {
	var (
		user  bool
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write an example configuration file",
		Long: `Write the commented example configuration to .constream.yaml in the
current directory, or with --user to the user config location.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := ".constream.yaml"
			if user {
				path = config.GetUserConfigPath()
			}
			if err := writeTemplate(path, force); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return err
		},
	}

	cmd.Flags().BoolVar(&user, "user", false, "Write the user config instead of the project config")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}

// writeTemplate writes the embedded template to path. Existing files are
// kept unless force is set.
func writeTemplate(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.New(errors.ErrCodeConfigPermission, fmt.Sprintf("%s already exists", path), nil).
			WithSuggestion("use --force to overwrite it")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.New(errors.ErrCodeConfigPermission, "failed to create config directory", err)
	}
	if err := os.WriteFile(path, []byte(configs.ConfigTemplate), 0o644); err != nil {
		return errors.New(errors.ErrCodeConfigPermission, fmt.Sprintf("failed to write %s", path), err)
	}
	return nil
}
