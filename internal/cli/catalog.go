package cli

import (
	"fmt"
	"time"

	"github.com/promptkit-dev/promptkit/internal/branding"
	"github.com/promptkit-dev/promptkit/internal/catalog"
	"github.com/promptkit-dev/promptkit/internal/config"
	"github.com/promptkit-dev/promptkit/internal/fetch"
	"github.com/promptkit-dev/promptkit/internal/logging"
	"github.com/spf13/cobra"
)

// indexPath is the catalog index location relative to the base URL.
const indexPath = "catalog.yaml"

func init() {
	catalogCmd.AddCommand(catalogUpdateCmd)
	catalogCmd.AddCommand(catalogStatusCmd)
	rootCmd.AddCommand(catalogCmd)
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the PromptKit catalog index",
	Long: `Manage the cached catalog index.

A built-in catalog ships with the binary. 'catalog update' downloads the
published index, validates it, and caches it at ~/.promptkit/catalog.yaml;
subsequent installs use the cached index.`,
}

var catalogUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Download and cache the latest catalog index",
	RunE: func(cmd *cobra.Command, args []string) error {
		client := fetch.New(config.BaseURL(), fetch.WithLogger(logging.Sub(log, "catalog")))

		fmt.Fprintf(cmd.OutOrStdout(), "Fetching %s/%s...\n", client.BaseURL(), indexPath)

		data, err := client.FetchBytes(indexPath)
		if err != nil {
			return fmt.Errorf("downloading catalog index: %w", err)
		}

		// Validate before caching; a bad index must not replace a good one.
		cat, err := catalog.Parse(data)
		if err != nil {
			return err
		}
		if err := catalog.CheckCompat(cat, buildVersion); err != nil {
			return err
		}

		if err := catalog.SaveCached(config.Dir(), data); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Catalog updated: %d items, %d bundles (index version %s).\n",
			len(cat.Items), len(cat.Bundles), cat.Version)
		return nil
	},
}

var catalogStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show catalog cache status",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "Base URL:     %s\n", config.BaseURL())
		fmt.Fprintf(out, "Cache path:   %s\n", catalog.CachedIndexPath(config.Dir()))

		cached, err := catalog.LoadCached(config.Dir())
		if err != nil {
			fmt.Fprintf(out, "Status:       cache invalid (%v)\n", err)
			fmt.Fprintf(out, "\nRun '%s catalog update' to replace it.\n", branding.CLIName())
			return nil
		}
		if cached == nil {
			fmt.Fprintln(out, "Status:       no cache, using built-in catalog")
			return nil
		}

		fmt.Fprintf(out, "Index:        version %s, %d items, %d bundles\n",
			cached.Version, len(cached.Items), len(cached.Bundles))

		lastUpdated := catalog.ReadFreshnessMarker(config.Dir())
		if lastUpdated.IsZero() {
			fmt.Fprintln(out, "Last updated: unknown")
		} else {
			age := time.Since(lastUpdated).Truncate(time.Minute)
			fmt.Fprintf(out, "Last updated: %s (%s ago)\n", lastUpdated.Format(time.RFC3339), age)
		}

		if catalog.IsStale(config.Dir(), catalog.DefaultMaxAge) {
			fmt.Fprintf(out, "Status:       stale (run '%s catalog update')\n", branding.CLIName())
		} else {
			fmt.Fprintln(out, "Status:       up to date")
		}
		return nil
	},
}
