package cli

import (
	"fmt"
	"os"

	"github.com/promptkit-dev/promptkit/internal/branding"
	"github.com/promptkit-dev/promptkit/internal/catalog"
	"github.com/promptkit-dev/promptkit/internal/config"
	"github.com/promptkit-dev/promptkit/internal/install"
	"github.com/promptkit-dev/promptkit/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	logLevel string
	log      zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` installs Markdown agent and command definitions
(plus CSS themes) for AI coding assistants into ~/.claude, from a catalog of
named bundles. Files already present are never overwritten.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		log = logging.New(nil, logLevel)

		// Staleness nudge, skipped for commands that manage the catalog.
		name := cmd.Name()
		if name == "update" || name == "status" || name == "version" {
			return
		}
		if _, err := os.Stat(catalog.CachedIndexPath(config.Dir())); err == nil {
			if catalog.IsStale(config.Dir(), catalog.DefaultMaxAge) {
				fmt.Fprintf(os.Stderr, "Catalog index is more than 7 days old. Run '%s catalog update'.\n", branding.CLIName())
			}
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (trace, debug, info, warn, error, silent)")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// resolveLayout returns the install target layout, honoring the config
// override and the PROMPTKIT_TARGET environment variable.
func resolveLayout() (install.Layout, error) {
	root, err := install.DefaultRoot()
	if err != nil {
		return install.Layout{}, fmt.Errorf("resolving target directory: %w", err)
	}
	if v := config.Get(config.KeyTargetDir); v != "" {
		root = v
	}
	return install.NewLayout(root), nil
}

// resolveCatalog loads the active catalog (cached remote index or built-in)
// and applies the installer version gate.
func resolveCatalog() (*catalog.Catalog, error) {
	cat, err := catalog.Resolve(config.Dir())
	if err != nil {
		// Corrupt cache falls back to the built-in catalog; tell the user.
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	if err := catalog.CheckCompat(cat, buildVersion); err != nil {
		return nil, err
	}
	return cat, nil
}
