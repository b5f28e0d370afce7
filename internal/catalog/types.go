package catalog

import (
	"fmt"
	"strings"
)

// Kind classifies an installable item.
type Kind string

// Item kinds. The kind determines the target subdirectory and file extension.
const (
	KindAgent   Kind = "agent"
	KindCommand Kind = "command"
	KindTheme   Kind = "theme"
)

// Ext returns the file extension for items of this kind.
func (k Kind) Ext() string {
	if k == KindTheme {
		return ".css"
	}
	return ".md"
}

// Item is a single installable catalog entry.
type Item struct {
	ID          string   `yaml:"id" json:"id"`
	Kind        Kind     `yaml:"kind" json:"kind"`
	Path        string   `yaml:"path" json:"path"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Tags        []string `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// FileName returns the installed file name for the item (e.g., "debugger.md").
func (it Item) FileName() string {
	return it.ID + it.Kind.Ext()
}

// Bundle is a named, fixed list of item identifiers offered together in the
// installer's menu.
type Bundle struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	Items       []string `yaml:"items" json:"items"`
}

// Catalog is the full index of items and bundles.
type Catalog struct {
	Version             string   `yaml:"version" json:"version"`
	MinInstallerVersion string   `yaml:"min_installer_version,omitempty" json:"min_installer_version,omitempty"`
	Items               []Item   `yaml:"items" json:"items"`
	Bundles             []Bundle `yaml:"bundles" json:"bundles"`
}

// Lookup returns the item with the given ID.
func (c *Catalog) Lookup(id string) (Item, bool) {
	for _, it := range c.Items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// BundleByName returns the bundle with the given name.
func (c *Catalog) BundleByName(name string) (Bundle, bool) {
	for _, b := range c.Bundles {
		if b.Name == name {
			return b, true
		}
	}
	return Bundle{}, false
}

// ItemsForBundle expands a bundle name to its item list. Bundle expansion is
// purely a catalog lookup; it never consults the environment. An item ID
// listed in a bundle but missing from the catalog is an index defect and
// returns an error.
func (c *Catalog) ItemsForBundle(name string) ([]Item, error) {
	b, ok := c.BundleByName(name)
	if !ok {
		return nil, fmt.Errorf("unknown bundle %q", name)
	}

	items := make([]Item, 0, len(b.Items))
	for _, id := range b.Items {
		it, ok := c.Lookup(id)
		if !ok {
			return nil, fmt.Errorf("bundle %q references unknown item %q", name, id)
		}
		items = append(items, it)
	}
	return items, nil
}

// ResolveToken maps a user-typed token to an item. Tokens from custom mode
// are not validated against the catalog: an unknown token is synthesized as
// an item of the inferred kind so the fetch is still attempted. Kind can be
// forced with a "command:" or "theme:" prefix; the default is agent. The
// prefix never ends up in the ID, so a token with an unrecognized prefix
// cannot produce a destination filename containing a colon.
func (c *Catalog) ResolveToken(token string) Item {
	kind := KindAgent
	id := token
	if k, rest, found := strings.Cut(token, ":"); found {
		id = rest
		switch Kind(k) {
		case KindAgent, KindCommand, KindTheme:
			kind = Kind(k)
		}
	}

	if it, ok := c.Lookup(id); ok {
		return it
	}
	return SynthesizeItem(id, kind)
}

// SynthesizeItem builds an item for an ID that is not in the catalog,
// pointing at the conventional path for its kind.
func SynthesizeItem(id string, kind Kind) Item {
	return Item{
		ID:   id,
		Kind: kind,
		Path: DirForKind(kind) + "/" + id + kind.Ext(),
	}
}

// DirForKind returns the catalog-relative directory for a kind.
func DirForKind(kind Kind) string {
	switch kind {
	case KindCommand:
		return "commands"
	case KindTheme:
		return "templates/themes"
	default:
		return "agents"
	}
}
