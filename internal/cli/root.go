package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes.
const (
	ExitSuccess      = 0
	ExitErrors       = 1
	ExitUsageError   = 2
	ExitAuthError    = 3
	ExitRuntimeError = 4
)

var rootCmd = &cobra.Command{
	Use:   "flawscan",
	Short: "LLM-assisted source code security review",
	Long: "Flawscan chunks source files under a word budget, runs each chunk through a set of\n" +
		"named review prompts against an LLM provider, and writes per-chunk YAML results\n" +
		"plus one combined report.",
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: flawscan.yaml)")
}

// Run executes the root command and returns an exit code.
func Run() int {
	exitCode = ExitSuccess

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(promptsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print flawscan version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "flawscan version %s\n", version)
	},
}
