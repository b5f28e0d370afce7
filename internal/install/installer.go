// Package install turns a list of catalog items into files on disk. Runs
// are best effort: a failed download is a per-item warning, never an abort.
package install

import (
	"fmt"
	"io"

	"github.com/promptkit-dev/promptkit/internal/branding"
	"github.com/rs/zerolog"
)

// Fetcher downloads a catalog-relative path into a destination file.
type Fetcher interface {
	Fetch(relPath, destPath string) error
}

// ItemError records a failed item for the summary.
type ItemError struct {
	ID  string
	Err error
}

// Summary tallies the outcome of an install run.
type Summary struct {
	Installed int
	Skipped   int
	Failed    int
	Failures  []ItemError
}

// Run executes the plan sequentially: existing files are counted as skipped
// and left untouched, absent files are fetched one at a time. Fetch failures
// are logged and counted but do not stop the run.
func Run(w io.Writer, f Fetcher, plan *Plan, log zerolog.Logger) Summary {
	var s Summary

	for _, pi := range plan.Items {
		if pi.Skip {
			s.Skipped++
			log.Debug().Str("id", pi.Item.ID).Str("dest", pi.Dest).Msg("already installed")
			continue
		}

		if err := f.Fetch(pi.Item.Path, pi.Dest); err != nil {
			fmt.Fprintf(w, "  ✗ %s: %s (%v)\n", pi.Item.Kind, pi.Item.ID, err)
			log.Warn().Str("id", pi.Item.ID).Err(err).Msg("fetch failed")
			s.Failed++
			s.Failures = append(s.Failures, ItemError{ID: pi.Item.ID, Err: err})
			continue
		}

		fmt.Fprintf(w, "  ✓ %s: %s\n", pi.Item.Kind, pi.Item.ID)
		s.Installed++
	}

	return s
}

// PrintSummary prints the final counts and the next-steps message.
func PrintSummary(w io.Writer, s Summary) {
	fmt.Fprintln(w)
	fmt.Fprintf(w, "✓ %d installed, %d skipped", s.Installed, s.Skipped)
	if s.Failed > 0 {
		fmt.Fprintf(w, ", %d failed", s.Failed)
	}
	fmt.Fprintln(w)

	if s.Failed > 0 {
		fmt.Fprintf(w, "  Failed items can be retried by running `%s install` again.\n", branding.CLIName())
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Next steps:")
	fmt.Fprintln(w, "  1. Restart your assistant so it picks up the new files")
	fmt.Fprintf(w, "  2. Run `%s list --installed` to see what's available\n", branding.CLIName())
	fmt.Fprintf(w, "  3. Run `%s doctor` if anything looks off\n", branding.CLIName())
}
