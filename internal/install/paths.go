package install

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/promptkit-dev/promptkit/internal/branding"
	"github.com/promptkit-dev/promptkit/internal/catalog"
)

// Subdirectory names under the target root.
const (
	AgentsDir   = "agents"
	CommandsDir = "commands"
	ThemesDir   = "templates/themes"
)

// Layout holds the resolved install destination directories.
type Layout struct {
	Root     string // ~/.claude
	Agents   string // ~/.claude/agents
	Commands string // ~/.claude/commands
	Themes   string // ~/.claude/templates/themes
}

// DefaultRoot returns the install target root. It checks the
// PROMPTKIT_TARGET environment variable first, then falls back to the
// assistant dot-directory under $HOME (~/.claude).
func DefaultRoot() (string, error) {
	if v := os.Getenv(branding.EnvVar("TARGET")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.TargetDir()), nil
}

// NewLayout builds the directory layout under the given root.
func NewLayout(root string) Layout {
	return Layout{
		Root:     root,
		Agents:   filepath.Join(root, AgentsDir),
		Commands: filepath.Join(root, filepath.FromSlash(CommandsDir)),
		Themes:   filepath.Join(root, filepath.FromSlash(ThemesDir)),
	}
}

// DirFor returns the destination directory for a catalog kind.
func (l Layout) DirFor(kind catalog.Kind) string {
	switch kind {
	case catalog.KindCommand:
		return l.Commands
	case catalog.KindTheme:
		return l.Themes
	default:
		return l.Agents
	}
}

// PathFor returns the destination file path for an item.
func (l Layout) PathFor(it catalog.Item) string {
	return filepath.Join(l.DirFor(it.Kind), it.FileName())
}

// EnsureDirs creates all layout directories if they don't exist.
func (l Layout) EnsureDirs() error {
	for _, dir := range []string{l.Agents, l.Commands, l.Themes} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
	}
	return nil
}
