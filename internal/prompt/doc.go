// Package prompt loads and assembles the named prompt catalog.
//
// A catalog is a YAML file listing prompts, each a (system, user) instruction
// pair. When no file is configured, a built-in set of security-review prompts
// is used. [BuildUser] produces the final user message for one chunk by
// appending the chunk text in a quoted block.
package prompt
