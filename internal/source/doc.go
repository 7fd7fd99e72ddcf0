// Package source resolves and loads the text to be inspected: files given
// directly, directories walked recursively, or a path asked for on stdin.
package source
