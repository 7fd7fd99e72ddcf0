package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/flawscan/flawscan/internal/inspect"
)

// WriteSummary renders a human-readable run summary to w.
func WriteSummary(w io.Writer, report *inspect.Report) error {
	ew := &errWriter{w: w}

	ew.printf("flawscan security review — run %s\n", report.RunID)
	ew.printf("Provider: %s (%s)\n", report.Provider, report.Model)
	ew.println(strings.Repeat("─", 60))

	for _, fr := range report.Files {
		ew.printf("\n%s — %d chunk(s)\n", fr.Path, fr.Chunks)

		names := make([]string, 0, len(fr.Results))
		for name := range fr.Results {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			results := fr.Results[name]
			errs := 0
			for _, r := range results {
				if r.Err != "" {
					errs++
				}
			}
			ew.printf("  %-20s %d result(s)", name, len(results))
			if errs > 0 {
				ew.printf(", %d error(s)", errs)
			}
			switch {
			case len(results) == 0 && fr.Chunks > 0:
				ew.printf("  [skipped]")
			case len(results) < fr.Chunks:
				ew.printf("  [aborted after chunk %d]", len(results)-1)
			}
			ew.println("")
		}
	}

	ew.println("")
	ew.println(strings.Repeat("─", 60))
	ew.printf("Results: %d total", report.TotalResults())
	if n := report.TotalErrors(); n > 0 {
		ew.printf(" (%d with errors)", n)
	}
	ew.println("")
	ew.printf("Tokens used: %d\n", report.TokensUsed)
	ew.printf("Completed in %dms (LLM: %dms)\n", report.Timing.TotalMs, report.Timing.LLMMs)

	return ew.err
}

// errWriter accumulates the first write error so callers check once.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
