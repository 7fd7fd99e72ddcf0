package inspect

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// decodeContent parses a model response as YAML. Code fences are stripped
// first; models add them despite instructions not to.
func decodeContent(content string) (any, error) {
	content = strings.TrimSpace(content)

	if strings.HasPrefix(content, "```") {
		lines := strings.Split(content, "\n")
		if len(lines) >= 2 {
			start := 1
			end := len(lines)
			if strings.TrimSpace(lines[end-1]) == "```" {
				end--
			}
			content = strings.Join(lines[start:end], "\n")
		}
	}

	var parsed any
	if err := yaml.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	return parsed, nil
}
