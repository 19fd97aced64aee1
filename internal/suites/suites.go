// Package suites holds the console assertion suites and the table used to
// look them up by name.
package suites

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/mrops-br/storefront/internal/harness"
)

// Suite runs assertions against h
type Suite func(h *harness.Harness)

// Registry maps a suite name to its function
var Registry = map[string]Suite{
	"ErrorHandling":     ErrorHandling,
	"InterfaceContract": InterfaceContract,
	"ModernInterface":   ModernInterface,
	"Cart":              Cart,
}

// Names returns the registered suite names in sorted order
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup finds a suite by name. A trailing "Test" is ignored so the
// historical class names keep working.
func Lookup(name string) (Suite, bool) {
	suite, ok := Registry[strings.TrimSuffix(name, "Test")]
	return suite, ok
}

// Run executes the named suites in order and returns the combined counts.
// Unknown names are reported and skipped.
func Run(out io.Writer, names []string, logger *slog.Logger) harness.Counts {
	fmt.Fprintln(out, "=== Storefront Suite Runner ===")
	fmt.Fprintf(out, "Running suites: %s\n\n", strings.Join(names, ", "))

	h := harness.New(out)
	var total harness.Counts

	for _, name := range names {
		suite, ok := Lookup(name)
		if !ok {
			logger.Warn("Unknown suite", slog.String("suite", name))
			fmt.Fprintf(out, "Error running %s: unknown suite (available: %s)\n\n",
				name, strings.Join(Names(), ", "))
			continue
		}

		fmt.Fprintf(out, "Running %s...\n", name)
		h.Reset()
		suite(h)
		h.PrintSummary()
		fmt.Fprintln(out)

		c := h.Counts()
		total.Run += c.Run
		total.Passed += c.Passed
		total.Failed += c.Failed

		logger.Info("Suite finished",
			slog.String("suite", name),
			slog.Int("run", c.Run),
			slog.Int("passed", c.Passed),
			slog.Int("failed", c.Failed),
		)
	}

	return total
}
