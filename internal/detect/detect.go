// Package detect reports which external tools are present on PATH. The
// results are informational only: installation never branches on them.
package detect

import (
	"fmt"
	"io"
	"os/exec"
)

// Tool is an external binary worth reporting on before an install.
type Tool struct {
	Name   string
	Reason string
}

// Status is the detection result for a single tool.
type Status struct {
	Tool
	Available bool
	Path      string
}

// Known returns the fixed set of tools the installer reports on.
func Known() []Tool {
	return []Tool{
		{Name: "claude", Reason: "the assistant that loads installed agents"},
		{Name: "node", Reason: "required by several agent workflows"},
		{Name: "npm", Reason: "package manager for agent tooling"},
		{Name: "git", Reason: "used by review and ship commands"},
		{Name: "python3", Reason: "used by data-oriented agents"},
	}
}

// Check resolves each tool against PATH via exec.LookPath.
func Check(tools []Tool) []Status {
	statuses := make([]Status, 0, len(tools))
	for _, tool := range tools {
		path, err := exec.LookPath(tool.Name)
		statuses = append(statuses, Status{
			Tool:      tool,
			Available: err == nil,
			Path:      path,
		})
	}
	return statuses
}

// Print writes a doctor-style report of tool availability.
func Print(w io.Writer, statuses []Status) {
	fmt.Fprintln(w, "Environment check:")
	for _, s := range statuses {
		if s.Available {
			fmt.Fprintf(w, "  [ OK ] %s found at %s\n", s.Name, s.Path)
		} else {
			fmt.Fprintf(w, "  [MISS] %s not found (%s)\n", s.Name, s.Reason)
		}
	}
}
