package install

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/promptkit-dev/promptkit/internal/catalog"
)

func testItems() []catalog.Item {
	return []catalog.Item{
		{ID: "code-reviewer", Kind: catalog.KindAgent, Path: "agents/code-reviewer.md"},
		{ID: "debugger", Kind: catalog.KindAgent, Path: "agents/debugger.md"},
		{ID: "verify", Kind: catalog.KindCommand, Path: "commands/verify.md"},
	}
}

func TestBuildPlanMarksExistingAsSkipped(t *testing.T) {
	layout := NewLayout(t.TempDir())
	if err := layout.EnsureDirs(); err != nil {
		t.Fatal(err)
	}

	// Pre-install debugger.
	existing := layout.PathFor(catalog.Item{ID: "debugger", Kind: catalog.KindAgent})
	if err := os.WriteFile(existing, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	plan := BuildPlan(testItems(), layout, false)

	if plan.SkipCount != 1 {
		t.Errorf("SkipCount = %d, want 1", plan.SkipCount)
	}
	if plan.Pending() != 2 {
		t.Errorf("Pending = %d, want 2", plan.Pending())
	}
	for _, pi := range plan.Items {
		wantSkip := pi.Item.ID == "debugger"
		if pi.Skip != wantSkip {
			t.Errorf("item %s Skip = %v, want %v", pi.Item.ID, pi.Skip, wantSkip)
		}
	}
}

func TestBuildPlanForceIgnoresExisting(t *testing.T) {
	layout := NewLayout(t.TempDir())
	if err := layout.EnsureDirs(); err != nil {
		t.Fatal(err)
	}
	existing := layout.PathFor(catalog.Item{ID: "debugger", Kind: catalog.KindAgent})
	if err := os.WriteFile(existing, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	plan := BuildPlan(testItems(), layout, true)

	if plan.SkipCount != 0 {
		t.Errorf("SkipCount = %d, want 0 with force", plan.SkipCount)
	}
	if plan.Pending() != 3 {
		t.Errorf("Pending = %d, want 3", plan.Pending())
	}
}

func TestBuildPlanDedupes(t *testing.T) {
	layout := NewLayout(t.TempDir())
	items := append(testItems(), testItems()...)

	plan := BuildPlan(items, layout, false)

	if len(plan.Items) != 3 {
		t.Errorf("len(Items) = %d, want 3 after dedupe", len(plan.Items))
	}
}

func TestPrintPlanSummarizesCounts(t *testing.T) {
	layout := NewLayout(t.TempDir())
	plan := BuildPlan(testItems(), layout, false)

	var buf bytes.Buffer
	PrintPlan(&buf, plan)

	out := buf.String()
	if !strings.Contains(out, "2 agents") {
		t.Errorf("plan output missing agent count: %q", out)
	}
	if !strings.Contains(out, "1 command") {
		t.Errorf("plan output missing command count: %q", out)
	}
	if !strings.Contains(out, "(3 items)") {
		t.Errorf("plan output missing total: %q", out)
	}
}
