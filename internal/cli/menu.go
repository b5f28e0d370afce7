package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/promptkit-dev/promptkit/internal/catalog"
)

// menuChoice is the outcome of the interactive bundle menu.
type menuChoice struct {
	Skipped bool
	Items   []catalog.Item
	Label   string // bundle name or "custom"
}

// runBundleMenu presents the numbered bundle menu: every catalog bundle,
// a custom free-text mode, and a skip option. Custom tokens are resolved
// without validation, so a typo still results in an attempted fetch. The
// reader must be the same buffered reader later prompts use, or typed-ahead
// input buffered here is lost to them.
func runBundleMenu(cat *catalog.Catalog, reader *bufio.Reader, w io.Writer) (*menuChoice, error) {
	fmt.Fprintln(w, "\nSelect a bundle to install:")
	for i, b := range cat.Bundles {
		fmt.Fprintf(w, "  %d) %-10s %s\n", i+1, b.Name, b.Description)
	}
	customOpt := len(cat.Bundles) + 1
	skipOpt := len(cat.Bundles) + 2
	fmt.Fprintf(w, "  %d) %-10s Type item IDs yourself\n", customOpt, "custom")
	fmt.Fprintf(w, "  %d) %-10s Install nothing\n", skipOpt, "skip")
	fmt.Fprintf(w, "Enter number [1-%d]: ", skipOpt)

	line, err := reader.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("reading selection: %w", err)
	}

	num, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || num < 1 || num > skipOpt {
		return nil, fmt.Errorf("invalid selection %q: choose 1-%d", strings.TrimSpace(line), skipOpt)
	}

	switch num {
	case skipOpt:
		return &menuChoice{Skipped: true}, nil
	case customOpt:
		return readCustomItems(cat, reader, w)
	default:
		bundle := cat.Bundles[num-1]
		items, err := cat.ItemsForBundle(bundle.Name)
		if err != nil {
			return nil, err
		}
		return &menuChoice{Items: items, Label: bundle.Name}, nil
	}
}

// readCustomItems reads a whitespace-separated list of item IDs. Unknown IDs
// are passed through as synthesized agent items (use "command:" or "theme:"
// prefixes to change the kind).
func readCustomItems(cat *catalog.Catalog, reader *bufio.Reader, w io.Writer) (*menuChoice, error) {
	fmt.Fprint(w, "\nEnter item IDs separated by spaces (e.g., debugger command:verify): ")
	line, err := reader.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("reading item list: %w", err)
	}

	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return &menuChoice{Skipped: true}, nil
	}

	items := make([]catalog.Item, 0, len(tokens))
	for _, token := range tokens {
		items = append(items, cat.ResolveToken(token))
	}
	return &menuChoice{Items: items, Label: "custom"}, nil
}

// confirm asks a Y/n question on the given reader. Empty input means yes,
// EOF means no.
func confirm(reader *bufio.Reader, w io.Writer, prompt string) bool {
	fmt.Fprintf(w, "? %s (Y/n) ", prompt)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.TrimSpace(strings.ToLower(line))
	return answer == "" || answer == "y" || answer == "yes"
}
