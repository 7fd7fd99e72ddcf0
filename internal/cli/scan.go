package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flawscan/flawscan/internal/config"
	"github.com/flawscan/flawscan/internal/inspect"
	"github.com/flawscan/flawscan/internal/output"
	"github.com/flawscan/flawscan/internal/prompt"
	"github.com/flawscan/flawscan/internal/providers"
	"github.com/flawscan/flawscan/internal/source"
)

var (
	flagConfig        string
	flagProvider      string
	flagModel         string
	flagBaseURL       string
	flagMaxChunkWords int
	flagOutputDir     string
	flagPromptConfig  string
	flagNoRedact      bool
)

func init() {
	scanCmd.Flags().StringVar(&flagProvider, "provider", "", "LLM provider (openai, anthropic, ollama)")
	scanCmd.Flags().StringVar(&flagModel, "model", "", "Model name")
	scanCmd.Flags().StringVar(&flagBaseURL, "base-url", "", "Override the provider API base URL")
	scanCmd.Flags().IntVar(&flagMaxChunkWords, "max-chunk-words", 0, "Maximum words per chunk")
	scanCmd.Flags().StringVar(&flagOutputDir, "out", "", "Base directory for run artifacts")
	scanCmd.Flags().StringVar(&flagPromptConfig, "prompts", "", "Prompt catalog YAML file (default: built-in catalog)")
	scanCmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Disable secret redaction (use with caution)")
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagProvider != "" {
		m["provider"] = flagProvider
	}
	if flagModel != "" {
		m["model"] = flagModel
	}
	if flagBaseURL != "" {
		m["baseURL"] = flagBaseURL
	}
	if flagMaxChunkWords > 0 {
		m["maxChunkWords"] = fmt.Sprintf("%d", flagMaxChunkWords)
	}
	if flagOutputDir != "" {
		m["outputDir"] = flagOutputDir
	}
	if flagPromptConfig != "" {
		m["promptConfig"] = flagPromptConfig
	}
	if flagNoRedact {
		m["redactSecrets"] = "false"
	}
	return m
}

var scanCmd = &cobra.Command{
	Use:   "scan [path...]",
	Short: "Inspect source files with the configured prompt catalog",
	Long: "Scan chunks each source file, evaluates every configured prompt against every\n" +
		"chunk, and writes individual YAML results plus a combined report. Paths may be\n" +
		"files or directories; with no paths the configured inputSources are used, and\n" +
		"failing that the path is asked for interactively.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(flagConfig, buildOverrides())
		if err != nil {
			return err
		}
		runScan(cmd.Context(), cfg, args)
		return nil
	},
}

func runScan(ctx context.Context, cfg config.Config, args []string) {
	if ctx == nil {
		ctx = context.Background()
	}
	if flagNoRedact {
		fmt.Fprintln(os.Stderr, "WARNING: secret redaction is disabled")
	}

	paths := args
	if len(paths) == 0 {
		paths = cfg.InputSources
	}
	if len(paths) == 0 {
		path, err := source.AskPath(os.Stdin, os.Stderr)
		if err != nil {
			fail(ExitUsageError, err)
			return
		}
		paths = []string{path}
	}

	files, err := source.Resolve(paths)
	if err != nil {
		fail(ExitUsageError, err)
		return
	}
	if len(files) == 0 {
		fail(ExitUsageError, fmt.Errorf("no source files found under %v", paths))
		return
	}

	prompts, err := prompt.Load(cfg.PromptConfig)
	if err != nil {
		fail(ExitUsageError, err)
		return
	}

	provider, err := providers.New(cfg.Provider, providers.Options{
		Model:   cfg.Model,
		APIKey:  cfg.APIKey(),
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		fail(ExitAuthError, err)
		return
	}

	writer, err := output.NewWriter(cfg.OutputDir)
	if err != nil {
		fail(ExitRuntimeError, err)
		return
	}

	engine, err := inspect.New(inspect.Options{
		Provider:      provider,
		Prompts:       prompts,
		Writer:        writer,
		Model:         cfg.Model,
		MaxChunkWords: cfg.MaxChunkWords,
		RedactSecrets: cfg.RedactSecrets,
	})
	if err != nil {
		fail(ExitRuntimeError, err)
		return
	}

	for _, file := range files {
		text, err := source.Load(file)
		if err != nil {
			fail(ExitRuntimeError, err)
			return
		}
		fmt.Fprintf(os.Stderr, "Inspecting %s\n", file)
		if _, err := engine.InspectFile(ctx, file, text); err != nil {
			if providers.IsAuthError(err) {
				// Save what completed before giving up.
				_ = engine.Finish()
				fail(ExitAuthError, err)
				return
			}
			fail(ExitRuntimeError, err)
			return
		}
	}

	if err := engine.Finish(); err != nil {
		fail(ExitRuntimeError, err)
		return
	}

	report := engine.Report()
	if err := output.WriteSummary(os.Stdout, report); err != nil {
		fail(ExitRuntimeError, err)
		return
	}
	fmt.Fprintf(os.Stdout, "Results saved in %s\n", writer.OutputDir())

	if report.TotalErrors() > 0 {
		exitCode = ExitErrors
	}
}

func fail(code int, err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	exitCode = code
}
