package install

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/promptkit-dev/promptkit/internal/catalog"
)

// PlannedItem is a single catalog item with its resolved destination and
// skip decision.
type PlannedItem struct {
	Item catalog.Item
	Dest string
	Skip bool // a same-named file already exists at Dest
}

// Plan is the ordered list of items an install run will process.
type Plan struct {
	Items     []PlannedItem
	SkipCount int
}

// BuildPlan resolves each item against the layout and records whether a file
// already exists at the destination. Duplicate IDs are collapsed, keeping
// first occurrence order. With force set, existing files are planned for
// overwrite instead of skipped.
func BuildPlan(items []catalog.Item, layout Layout, force bool) *Plan {
	plan := &Plan{}
	seen := make(map[string]bool)

	for _, it := range items {
		dest := layout.PathFor(it)
		if seen[dest] {
			continue
		}
		seen[dest] = true

		skip := false
		if !force {
			if _, err := os.Stat(dest); err == nil {
				skip = true
				plan.SkipCount++
			}
		}

		plan.Items = append(plan.Items, PlannedItem{Item: it, Dest: dest, Skip: skip})
	}

	return plan
}

// Pending returns the number of items that will actually be fetched.
func (p *Plan) Pending() int {
	return len(p.Items) - p.SkipCount
}

// PrintPlan prints the install plan with per-kind counts.
func PrintPlan(w io.Writer, p *Plan) {
	counts := make(map[catalog.Kind]int)
	for _, pi := range p.Items {
		label := fmt.Sprintf("%s: %s", pi.Item.Kind, pi.Item.ID)
		if pi.Skip {
			label += " (already installed)"
		} else {
			counts[pi.Item.Kind]++
		}
		fmt.Fprintf(w, "  %s\n", label)
	}
	fmt.Fprintln(w)

	var parts []string
	total := 0
	for _, kind := range []catalog.Kind{catalog.KindAgent, catalog.KindCommand, catalog.KindTheme} {
		if count := counts[kind]; count > 0 {
			noun := string(kind)
			if count != 1 {
				noun += "s"
			}
			parts = append(parts, fmt.Sprintf("%d %s", count, noun))
			total += count
		}
	}
	if len(parts) > 0 {
		fmt.Fprintf(w, "  Install: %s (%d items)\n", strings.Join(parts, ", "), total)
	}
	if p.SkipCount > 0 {
		fmt.Fprintf(w, "  (%d items already installed, will be skipped)\n", p.SkipCount)
	}
	fmt.Fprintln(w)
}
