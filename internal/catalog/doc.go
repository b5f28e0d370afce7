// Package catalog defines the PromptKit catalog: the installable agent,
// command, and theme items, and the named bundles that group them.
//
// A built-in catalog is compiled into the binary so the installer works
// offline. A remote index (validated against an embedded JSON Schema) can
// replace it via `promptkit catalog update`.
package catalog
