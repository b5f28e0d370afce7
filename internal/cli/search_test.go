package cli

import (
	"testing"

	"github.com/promptkit-dev/promptkit/internal/catalog"
)

func TestMatchesSearchByQuery(t *testing.T) {
	it := catalog.Item{
		ID:          "code-reviewer",
		Kind:        catalog.KindAgent,
		Path:        "agents/code-reviewer.md",
		Description: "Reviews diffs for correctness",
		Tags:        []string{"quality", "review"},
	}

	tests := []struct {
		name     string
		query    string
		expected bool
	}{
		{"empty query matches all", "", true},
		{"exact id match", "code-reviewer", true},
		{"partial id match", "reviewer", true},
		{"case insensitive id", "CODE", true},
		{"description match", "correctness", true},
		{"path match", "agents/code", true},
		{"no match", "nonexistent-thing", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchesSearch(it, tt.query, "", nil)
			if got != tt.expected {
				t.Errorf("matchesSearch(query=%q) = %v, want %v", tt.query, got, tt.expected)
			}
		})
	}
}

func TestMatchesSearchByKind(t *testing.T) {
	it := catalog.Item{ID: "verify", Kind: catalog.KindCommand, Path: "commands/verify.md"}

	tests := []struct {
		name       string
		kindFilter string
		expected   bool
	}{
		{"no kind filter", "", true},
		{"matching kind", "command", true},
		{"non-matching kind", "agent", false},
		{"non-matching kind theme", "theme", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchesSearch(it, "", tt.kindFilter, nil)
			if got != tt.expected {
				t.Errorf("matchesSearch(kind=%q) = %v, want %v", tt.kindFilter, got, tt.expected)
			}
		})
	}
}

func TestMatchesSearchByTag(t *testing.T) {
	it := catalog.Item{
		ID:   "debugger",
		Kind: catalog.KindAgent,
		Path: "agents/debugger.md",
		Tags: []string{"quality", "debugging"},
	}

	tests := []struct {
		name       string
		filterTags []string
		expected   bool
	}{
		{"no tag filter", nil, true},
		{"empty tag filter", []string{}, true},
		{"matching single tag", []string{"quality"}, true},
		{"case insensitive tag", []string{"QUALITY"}, true},
		{"one of multiple tags matches", []string{"nonexistent", "debugging"}, true},
		{"no matching tag", []string{"frontend", "react"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchesSearch(it, "", "", tt.filterTags)
			if got != tt.expected {
				t.Errorf("matchesSearch(tags=%v) = %v, want %v", tt.filterTags, got, tt.expected)
			}
		})
	}
}

func TestMatchesSearchNoTags(t *testing.T) {
	it := catalog.Item{ID: "handoff", Kind: catalog.KindCommand, Path: "commands/handoff.md"}

	// An item with no tags should not match a tag filter.
	if matchesSearch(it, "", "", []string{"quality"}) {
		t.Error("item with no tags should not match a tag filter")
	}

	// But it should match when there's no tag filter.
	if !matchesSearch(it, "", "", nil) {
		t.Error("item with no tags should match when no tag filter is set")
	}
}

func TestMatchesSearchCombined(t *testing.T) {
	it := catalog.Item{
		ID:          "code-reviewer",
		Kind:        catalog.KindAgent,
		Path:        "agents/code-reviewer.md",
		Description: "Reviews diffs",
		Tags:        []string{"quality"},
	}

	if !matchesSearch(it, "review", "agent", []string{"quality"}) {
		t.Error("expected match when all filters match")
	}
	if matchesSearch(it, "review", "command", []string{"quality"}) {
		t.Error("expected no match when kind filter doesn't match")
	}
	if matchesSearch(it, "review", "agent", []string{"frontend"}) {
		t.Error("expected no match when tag filter doesn't match")
	}
	if matchesSearch(it, "nonexistent", "agent", []string{"quality"}) {
		t.Error("expected no match when query doesn't match")
	}
}

func TestMatchesAnyTag(t *testing.T) {
	tests := []struct {
		name       string
		itemTags   []string
		filterTags []string
		expected   bool
	}{
		{"both empty", nil, nil, false},
		{"no item tags", nil, []string{"quality"}, false},
		{"no filter tags", []string{"quality"}, nil, false},
		{"single match", []string{"quality"}, []string{"quality"}, true},
		{"case insensitive", []string{"Quality"}, []string{"quality"}, true},
		{"partial overlap", []string{"quality", "review"}, []string{"frontend", "review"}, true},
		{"no overlap", []string{"quality", "review"}, []string{"frontend", "react"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matchesAnyTag(tt.itemTags, tt.filterTags)
			if got != tt.expected {
				t.Errorf("matchesAnyTag(%v, %v) = %v, want %v", tt.itemTags, tt.filterTags, got, tt.expected)
			}
		})
	}
}
