package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/promptkit-dev/promptkit/internal/catalog"
	"github.com/spf13/cobra"
)

var (
	searchKind string
	searchTags []string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the catalog",
	Long: `Search catalog items by free-text query, kind, and tags.

The query matches against item ID, description, and path. Multiple --tag
flags match if any tag overlaps.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchKind, "kind", "", "Filter by kind (agent, command, theme)")
	searchCmd.Flags().StringArrayVar(&searchTags, "tag", nil, "Filter by tag (repeatable)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	cat, err := resolveCatalog()
	if err != nil {
		return err
	}

	query := ""
	if len(args) > 0 {
		query = args[0]
	}

	var matches []catalog.Item
	for _, it := range cat.Items {
		if matchesSearch(it, query, searchKind, searchTags) {
			matches = append(matches, it)
		}
	}

	if len(matches) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No matching items.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "KIND\tID\tTAGS\tDESCRIPTION")
	for _, it := range matches {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", it.Kind, it.ID, strings.Join(it.Tags, ","), it.Description)
	}
	return w.Flush()
}

// matchesSearch applies all active filters to an item. An empty query or
// filter matches everything.
func matchesSearch(it catalog.Item, query, kindFilter string, tagFilter []string) bool {
	if query != "" {
		q := strings.ToLower(query)
		if !strings.Contains(strings.ToLower(it.ID), q) &&
			!strings.Contains(strings.ToLower(it.Description), q) &&
			!strings.Contains(strings.ToLower(it.Path), q) {
			return false
		}
	}

	if kindFilter != "" && string(it.Kind) != kindFilter {
		return false
	}

	if len(tagFilter) > 0 && !matchesAnyTag(it.Tags, tagFilter) {
		return false
	}

	return true
}

// matchesAnyTag reports whether any filter tag appears in the item's tags,
// case-insensitively.
func matchesAnyTag(itemTags, filterTags []string) bool {
	for _, ft := range filterTags {
		for _, it := range itemTags {
			if strings.EqualFold(it, ft) {
				return true
			}
		}
	}
	return false
}
