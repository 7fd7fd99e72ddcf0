package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flawscan/flawscan/internal/config"
	"github.com/flawscan/flawscan/internal/prompt"
)

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "List the effective prompt catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig, buildOverrides())
		if err != nil {
			return err
		}
		prompts, err := prompt.Load(cfg.PromptConfig)
		if err != nil {
			return err
		}

		if cfg.PromptConfig == "" {
			fmt.Fprintln(os.Stdout, "Built-in prompt catalog:")
		} else {
			fmt.Fprintf(os.Stdout, "Prompt catalog from %s:\n", cfg.PromptConfig)
		}
		for _, p := range prompts {
			fmt.Fprintf(os.Stdout, "  %-20s %s\n", p.Name, firstLine(p.User))
		}
		return nil
	},
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	const max = 80
	if len(s) > max {
		return s[:max-3] + "..."
	}
	return s
}
