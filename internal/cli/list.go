package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	listKindFilter string
	listInstalled  bool
	listJSON       bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog items and bundles",
	Long: `List the items and bundles in the active catalog.

With --installed, only items whose file already exists in the target
directory are shown.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listKindFilter, "kind", "", "Filter by kind (agent, command, theme)")
	listCmd.Flags().BoolVar(&listInstalled, "installed", false, "Show only installed items")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents a catalog item for display.
type listEntry struct {
	Kind        string `json:"kind"`
	ID          string `json:"id"`
	Description string `json:"description,omitempty"`
	Installed   bool   `json:"installed"`
}

func runList(cmd *cobra.Command, args []string) error {
	cat, err := resolveCatalog()
	if err != nil {
		return err
	}

	layout, err := resolveLayout()
	if err != nil {
		return err
	}

	var entries []listEntry
	for _, it := range cat.Items {
		if listKindFilter != "" && string(it.Kind) != listKindFilter {
			continue
		}

		_, statErr := os.Stat(layout.PathFor(it))
		installed := statErr == nil
		if listInstalled && !installed {
			continue
		}

		entries = append(entries, listEntry{
			Kind:        string(it.Kind),
			ID:          it.ID,
			Description: it.Description,
			Installed:   installed,
		})
	}

	if len(entries) == 0 {
		if listInstalled {
			fmt.Fprintln(cmd.OutOrStdout(), "No items installed yet.")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "Catalog is empty.")
		}
		return nil
	}

	if listJSON {
		return printListJSON(cmd, entries)
	}
	if err := printListTable(cmd, entries); err != nil {
		return err
	}

	if !listInstalled {
		fmt.Fprintln(cmd.OutOrStdout())
		fmt.Fprintln(cmd.OutOrStdout(), "Bundles:")
		for _, b := range cat.Bundles {
			fmt.Fprintf(cmd.OutOrStdout(), "  %-10s %s (%d items)\n", b.Name, b.Description, len(b.Items))
		}
	}
	return nil
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "KIND\tID\tINSTALLED\tDESCRIPTION")
	for _, e := range entries {
		installed := "-"
		if e.Installed {
			installed = "yes"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Kind, e.ID, installed, e.Description)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
