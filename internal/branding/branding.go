// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml at the repo root, then run `make build`.
// The Makefile syncs branding.yaml into this package before compilation,
// and Go's //go:embed bakes it into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName        string `yaml:"cli_name"`
	DisplayName    string `yaml:"display_name"`
	Description    string `yaml:"description"`
	HomeDir        string `yaml:"home_dir"`
	TargetDir      string `yaml:"target_dir"`
	EnvPrefix      string `yaml:"env_prefix"`
	GoModule       string `yaml:"go_module"`
	GitHubRepo     string `yaml:"github_repo"`
	CatalogBaseURL string `yaml:"catalog_base_url"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:        "promptkit",
			DisplayName:    "PromptKit",
			Description:    "Installer for AI assistant agents, commands, and themes",
			HomeDir:        ".promptkit",
			TargetDir:      ".claude",
			EnvPrefix:      "PROMPTKIT",
			GoModule:       "github.com/promptkit-dev/promptkit",
			GitHubRepo:     "promptkit-dev/promptkit",
			CatalogBaseURL: "https://raw.githubusercontent.com/promptkit-dev/catalog/main",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "promptkit").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "PromptKit").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the tool's own dot-directory name under $HOME (e.g., ".promptkit").
func HomeDir() string { load(); return defaults.HomeDir }

// TargetDir returns the assistant config dot-directory name under $HOME
// (e.g., ".claude") that installed files are written into.
func TargetDir() string { load(); return defaults.TargetDir }

// EnvPrefix returns the environment variable prefix (e.g., "PROMPTKIT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Used by scripts/rebrand.sh — not
// consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string (e.g., "promptkit-dev/promptkit").
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// CatalogBaseURL returns the default base URL that item paths are resolved
// against when downloading.
func CatalogBaseURL() string { load(); return defaults.CatalogBaseURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "PROMPTKIT_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
