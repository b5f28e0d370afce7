package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall <item-id>...",
	Short: "Remove installed items",
	Long: `Remove installed item files from the target directory.

Items are resolved the same way as for install, so "command:" and "theme:"
prefixes work here too.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUninstall,
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
}

func runUninstall(cmd *cobra.Command, args []string) error {
	cat, err := resolveCatalog()
	if err != nil {
		return err
	}

	layout, err := resolveLayout()
	if err != nil {
		return err
	}

	for _, token := range args {
		it := cat.ResolveToken(token)
		dest := layout.PathFor(it)

		if _, err := os.Stat(dest); err != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s is not installed\n", it.ID)
			continue
		}
		if err := os.Remove(dest); err != nil {
			return fmt.Errorf("removing %s: %w", dest, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", dest)
	}
	return nil
}
