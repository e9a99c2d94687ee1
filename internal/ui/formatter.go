package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"mockcheck/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	out     io.Writer
	verbose bool

	cyan   *color.Color
	green  *color.Color
	red    *color.Color
	yellow *color.Color
	faint  *color.Color
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(out io.Writer, verbose bool) *Formatter {
	return &Formatter{
		out:     out,
		verbose: verbose,
		cyan:    color.New(color.FgCyan),
		green:   color.New(color.FgGreen),
		red:     color.New(color.FgRed),
		yellow:  color.New(color.FgYellow),
		faint:   color.New(color.Faint),
	}
}

// PrintHeader prints the banner shown before the probe
func (f *Formatter) PrintHeader(baseURL string, caseCount int) {
	fmt.Fprintln(f.out)
	f.cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	f.cyan.Fprintln(f.out, "║                    Mock API Contract Check                    ║")
	f.cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")
	fmt.Fprintf(f.out, "Target: %s\n", baseURL)
	fmt.Fprintf(f.out, "Cases:  %d\n\n", caseCount)
}

// PrintProbeOK reports a reachable mock server
func (f *Formatter) PrintProbeOK(healthURL string, status int) {
	f.green.Fprintf(f.out, "✓ Mock server reachable")
	fmt.Fprintf(f.out, " (%s → %d)\n\n", healthURL, status)
}

// PrintUnreachable prints the fatal probe failure and how to fix it
func (f *Formatter) PrintUnreachable(baseURL string, err error) {
	f.red.Fprintf(f.out, "✗ %v\n\n", err)
	f.yellow.Fprintln(f.out, "The mock server must be running before the checks can start:")
	fmt.Fprintln(f.out, "  1. Start the mock server, e.g.")
	fmt.Fprintln(f.out, "       prism mock openapi.yaml --port 4010")
	fmt.Fprintln(f.out, "     or a WireMock instance loaded with the contacts stub mappings")
	fmt.Fprintf(f.out, "  2. Check that it answers on %s\n", baseURL)
	fmt.Fprintln(f.out, "  3. To use another address pass it as the first argument:")
	fmt.Fprintln(f.out, "       mockcheck http://localhost:8080")
}

// PrintResult prints one case verdict as soon as it is known
func (f *Formatter) PrintResult(index, total int, result domain.TestResult) {
	width := len(fmt.Sprint(total))
	prefix := fmt.Sprintf("[%*d/%d]", width, index, total)

	if result.Passed {
		fmt.Fprintf(f.out, "%s ", prefix)
		f.green.Fprint(f.out, "✓ PASS")
		fmt.Fprintf(f.out, " %s", result.Name)
		f.faint.Fprintf(f.out, " (%s %d)\n", result.Method, result.Status)
	} else {
		fmt.Fprintf(f.out, "%s ", prefix)
		f.red.Fprint(f.out, "✗ FAIL")
		fmt.Fprintf(f.out, " %s\n", result.Name)
		f.printFailureDetail(strings.Repeat(" ", len(prefix)+1), result)
	}

	if f.verbose && result.Curl != "" {
		f.faint.Fprintf(f.out, "%s  %s\n", strings.Repeat(" ", len(prefix)), result.Curl)
	}
}

func (f *Formatter) printFailureDetail(indent string, result domain.TestResult) {
	fmt.Fprintf(f.out, "%s  expected: ", indent)
	f.green.Fprintln(f.out, result.Expected)
	fmt.Fprintf(f.out, "%s  actual:   ", indent)
	f.red.Fprintln(f.out, result.Actual)
}

// PrintFailures lists failed cases after a run shown with a progress bar
func (f *Formatter) PrintFailures(failures []domain.TestResult) {
	if len(failures) == 0 {
		return
	}
	fmt.Fprintln(f.out)
	f.red.Fprintf(f.out, "Failed cases (%d):\n", len(failures))
	for _, result := range failures {
		fmt.Fprintf(f.out, "  ✗ %s ", result.Name)
		f.faint.Fprintf(f.out, "%s %s\n", result.Method, result.URL)
		f.printFailureDetail("  ", result)
		if f.verbose && result.Curl != "" {
			f.faint.Fprintf(f.out, "    %s\n", result.Curl)
		}
	}
}

// PrintSummary prints the aggregate counts and the final verdict line
func (f *Formatter) PrintSummary(summary *domain.RunSummary) {
	t := table.NewWriter()
	t.SetTitle("Run Summary")
	t.AppendRows([]table.Row{
		{"Total", summary.Total()},
		{"Passed", summary.Passed},
		{"Failed", summary.Failed},
		{"Duration", fmt.Sprintf("%.2fs", summary.Duration.Seconds())},
	})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 12},
		{Number: 2, Align: text.AlignRight, WidthMin: 10},
	})

	switch {
	case color.NoColor:
		t.SetStyle(table.StyleLight)
	case summary.Failed > 0:
		t.SetStyle(table.StyleColoredBlackOnRedWhite)
	default:
		t.SetStyle(table.StyleColoredBlackOnGreenWhite)
	}

	fmt.Fprintln(f.out)
	fmt.Fprintln(f.out, t.Render())
	fmt.Fprintln(f.out)

	if summary.Success() {
		f.green.Fprintf(f.out, "✓ All %d case(s) passed!\n", summary.Total())
	} else {
		f.red.Fprintf(f.out, "✗ %d of %d case(s) failed\n", summary.Failed, summary.Total())
	}
}

// PrintCaseList prints test cases as a tree, optionally with request details
func (f *Formatter) PrintCaseList(cases []domain.TestCase, showDetails bool) {
	f.green.Fprintf(f.out, "Found %d test case(s):\n\n", len(cases))

	for i, tc := range cases {
		isLast := i == len(cases)-1
		branch, stem := "├── ", "│   "
		if isLast {
			branch, stem = "└── ", "    "
		}

		f.cyan.Fprintf(f.out, "%s%s\n", branch, tc.Name)
		if !showDetails {
			continue
		}

		lines := []string{fmt.Sprintf("%s %s", tc.Request.Method, tc.Request.Path)}
		if len(tc.Request.PathParams) > 0 {
			lines = append(lines, "params: "+formatParams(tc.Request.PathParams))
		}
		if len(tc.Request.Query) > 0 {
			lines = append(lines, "query:  "+formatParams(tc.Request.Query))
		}
		lines = append(lines, "expect: "+describe(tc.Expect))

		for j, line := range lines {
			prefix := "├── "
			if j == len(lines)-1 {
				prefix = "└── "
			}
			fmt.Fprintf(f.out, "%s%s%s\n", stem, prefix, f.yellow.Sprint(line))
		}
	}
}

func describe(e domain.Expectation) string {
	markers := e.Markers()
	if len(markers) == 0 {
		return fmt.Sprintf("%d", e.Status)
	}
	return fmt.Sprintf("%d %s", e.Status, strings.Join(markers, " "))
}
