// Package cli wires the cobra command tree for the promptkit binary.
package cli
