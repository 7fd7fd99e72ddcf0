package prompt

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Prompt is a named system/user instruction pair driving one category of
// analysis. Prompts are immutable during a run.
type Prompt struct {
	Name   string `yaml:"name"`
	System string `yaml:"system"`
	User   string `yaml:"user"`
}

type promptFile struct {
	Prompts []Prompt `yaml:"prompts"`
}

// Load reads a prompt catalog from a YAML file. An empty path returns the
// built-in catalog.
func Load(path string) ([]Prompt, error) {
	if path == "" {
		return Defaults(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading prompt config: %w", err)
	}

	var pf promptFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parsing prompt config: %w", err)
	}
	if len(pf.Prompts) == 0 {
		return nil, fmt.Errorf("prompt config %s defines no prompts", path)
	}

	seen := make(map[string]bool, len(pf.Prompts))
	for i, p := range pf.Prompts {
		if p.Name == "" {
			return nil, fmt.Errorf("prompt %d in %s has no name", i+1, path)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("duplicate prompt name %q in %s", p.Name, path)
		}
		seen[p.Name] = true
		if strings.TrimSpace(p.User) == "" {
			return nil, fmt.Errorf("prompt %q has an empty user instruction", p.Name)
		}
	}

	return pf.Prompts, nil
}

// BuildUser assembles the user prompt for one chunk by appending the chunk
// text to the prompt's user instruction in a quoted block.
func BuildUser(p Prompt, chunkText string) string {
	var b strings.Builder
	b.WriteString(p.User)
	b.WriteString("\n\nSource Code Chunk:\n\"\"\"\n")
	b.WriteString(chunkText)
	b.WriteString("\n\"\"\"")
	return b.String()
}

// Names returns the prompt names in catalog order.
func Names(prompts []Prompt) []string {
	names := make([]string, len(prompts))
	for i, p := range prompts {
		names[i] = p.Name
	}
	return names
}
