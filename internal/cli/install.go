package cli

import (
	"bufio"
	"fmt"

	"github.com/promptkit-dev/promptkit/internal/catalog"
	"github.com/promptkit-dev/promptkit/internal/config"
	"github.com/promptkit-dev/promptkit/internal/detect"
	"github.com/promptkit-dev/promptkit/internal/fetch"
	"github.com/promptkit-dev/promptkit/internal/install"
	"github.com/promptkit-dev/promptkit/internal/logging"
	"github.com/spf13/cobra"
)

var (
	installBundle string
	installYes    bool
	installForce  bool
)

var installCmd = &cobra.Command{
	Use:   "install [item-id...]",
	Short: "Install agents, commands, and themes",
	Long: `Install catalog items into the assistant config directory (~/.claude).

With no arguments, an interactive menu offers the preset bundles, a custom
free-text mode, and a skip option. Items whose file already exists at the
destination are skipped; use --force to overwrite them. A failed download
is a warning, not an abort.`,
	RunE: runInstallCmd,
}

func init() {
	installCmd.Flags().StringVar(&installBundle, "bundle", "", "Install a preset bundle without the menu")
	installCmd.Flags().BoolVarP(&installYes, "yes", "y", false, "Skip confirmation prompt")
	installCmd.Flags().BoolVar(&installForce, "force", false, "Overwrite files that already exist")
	rootCmd.AddCommand(installCmd)
}

func runInstallCmd(cmd *cobra.Command, args []string) error {
	cat, err := resolveCatalog()
	if err != nil {
		return err
	}

	// Environment report. Display only: selection and install below never
	// consult these results.
	detect.Print(cmd.OutOrStdout(), detect.Check(detect.Known()))
	fmt.Fprintln(cmd.OutOrStdout())

	// One buffered reader for every prompt in this run. A second reader over
	// stdin would miss input the first one buffered ahead, dropping a piped
	// confirmation line.
	stdin := bufio.NewReader(cmd.InOrStdin())

	items, err := selectItems(cmd, cat, args, stdin)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing selected — nothing to install.")
		return nil
	}

	layout, err := resolveLayout()
	if err != nil {
		return err
	}

	plan := install.BuildPlan(items, layout, installForce)
	install.PrintPlan(cmd.OutOrStdout(), plan)

	if plan.Pending() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to install — all items are already installed.")
		return nil
	}

	if !installYes {
		if !confirm(stdin, cmd.OutOrStdout(), "Proceed with installation?") {
			fmt.Fprintln(cmd.OutOrStdout(), "Installation cancelled.")
			return nil
		}
	}

	if err := layout.EnsureDirs(); err != nil {
		return fmt.Errorf("preparing target layout: %w", err)
	}

	client := fetch.New(config.BaseURL(), fetch.WithLogger(logging.Sub(log, "fetch")))

	fmt.Fprintln(cmd.OutOrStdout(), "Installing...")
	summary := install.Run(cmd.OutOrStdout(), client, plan, logging.Sub(log, "install"))
	install.PrintSummary(cmd.OutOrStdout(), summary)

	return nil
}

// selectItems resolves the item list from, in order of precedence: positional
// args (custom tokens), the --bundle flag, or the interactive menu.
func selectItems(cmd *cobra.Command, cat *catalog.Catalog, args []string, stdin *bufio.Reader) ([]catalog.Item, error) {
	if len(args) > 0 {
		items := make([]catalog.Item, 0, len(args))
		for _, token := range args {
			items = append(items, cat.ResolveToken(token))
		}
		return items, nil
	}

	// A configured default bundle bypasses the menu, same as --bundle.
	bundle := installBundle
	if bundle == "" {
		bundle = config.Get(config.KeyDefaultBundle)
	}
	if bundle != "" {
		items, err := cat.ItemsForBundle(bundle)
		if err != nil {
			return nil, err
		}
		return items, nil
	}

	choice, err := runBundleMenu(cat, stdin, cmd.OutOrStdout())
	if err != nil {
		return nil, err
	}
	if choice.Skipped {
		return nil, nil
	}
	return choice.Items, nil
}
