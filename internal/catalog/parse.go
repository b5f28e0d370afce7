package catalog

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

// Parse validates and unmarshals a catalog index from YAML bytes.
func Parse(data []byte) (*Catalog, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating catalog index: %w", err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("catalog index has %d validation issue(s): %s",
			len(result.Issues), summarizeIssues(result.Issues))
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog index: %w", err)
	}
	return &c, nil
}

// CheckCompat verifies that the installer version satisfies the catalog's
// min_installer_version. Dev builds (unparseable versions) always pass.
func CheckCompat(c *Catalog, installerVersion string) error {
	if c.MinInstallerVersion == "" {
		return nil
	}

	minVer, err := parseSemver(c.MinInstallerVersion)
	if err != nil {
		return fmt.Errorf("parsing min_installer_version %q: %w", c.MinInstallerVersion, err)
	}

	cur, err := parseSemver(installerVersion)
	if err != nil {
		// "dev" and other non-semver builds skip the gate.
		return nil
	}

	if cur.LessThan(minVer) {
		return fmt.Errorf("catalog requires installer >= %s (current %s); run the self-install script to upgrade",
			c.MinInstallerVersion, installerVersion)
	}
	return nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}

func summarizeIssues(issues []ValidationIssue) string {
	parts := make([]string, 0, len(issues))
	for _, issue := range issues {
		if issue.Path != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", issue.Path, issue.Message))
		} else {
			parts = append(parts, issue.Message)
		}
	}
	return strings.Join(parts, "; ")
}
