package ui

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"mockcheck/internal/domain"
	"mockcheck/internal/storage"
)

// maxBodyLines caps how much of a response body the details pane shows
const maxBodyLines = 40

// ErrorViewer displays failed cases in an interactive TUI
type ErrorViewer struct {
	storage storage.Storage
}

// NewErrorViewer creates a new ErrorViewer
func NewErrorViewer(st storage.Storage) *ErrorViewer {
	return &ErrorViewer{storage: st}
}

// failedIndexes returns the positions of failed results within output.Results
func failedIndexes(output *domain.TestResultsOutput) []int {
	var idx []int
	for i, r := range output.Results {
		if !r.Passed {
			idx = append(idx, i)
		}
	}
	return idx
}

// View displays the failures of a saved run in an interactive TUI
func (ev *ErrorViewer) View(output *domain.TestResultsOutput) error {
	failed := failedIndexes(output)
	if len(failed) == 0 {
		color.Green("✓ No failed cases in the last saved run!")
		return nil
	}

	// Resolved marks are written back to the saved report
	saveResolvedStatus := func() error {
		return ev.storage.Save(output)
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	getListItemText := func(n int) string {
		result := output.Results[failed[n]]
		if result.Resolved {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", n+1, result.Name)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", n+1, result.Name)
	}

	for n := range failed {
		list.AddItem(getListItemText(n), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		unresolved := 0
		for _, i := range failed {
			if !output.Results[i].Resolved {
				unresolved++
			}
		}
		headerView.SetText(fmt.Sprintf(" Failed cases (%d total, %d unresolved) | ↑↓ navigate, [yellow]R[white] mark resolved, → details, ← back, Ctrl+C exit ", len(failed), unresolved))
	}
	updateHeader()

	updateDetails := func() {
		n := list.GetCurrentItem()
		if n < 0 || n >= len(failed) {
			return
		}
		result := output.Results[failed[n]]
		statsView.SetText(formatFailureStats(result, output.Meta))
		detailsView.SetText(formatFailureDetails(result))
		detailsView.ScrollToBeginning()
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				n := list.GetCurrentItem()
				if n >= 0 && n < len(failed) {
					i := failed[n]
					output.Results[i].Resolved = !output.Results[i].Resolved
					list.SetItemText(n, getListItemText(n), "")
					updateHeader()
					updateDetails()
					// the viewer has no place to show a write error
					_ = saveResolvedStatus()
				}
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})
	updateDetails()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// formatFailureDetails formats a failed case using tview color tags
func formatFailureDetails(result domain.TestResult) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "[red]✗ %s[white]\n\n", tview.Escape(result.Name))
	fmt.Fprintf(w, "[cyan]Request:[white]\t%s %s\n", result.Method, tview.Escape(result.URL))
	fmt.Fprintf(w, "[green]Expected:[white]\t%s\n", tview.Escape(result.Expected))
	fmt.Fprintf(w, "[red]Actual:[white]\t%s\n", tview.Escape(result.Actual))
	if result.Error != "" {
		fmt.Fprintf(w, "[red]Error:[white]\t%s\n", tview.Escape(result.Error))
	}
	w.Flush()

	if result.Curl != "" {
		fmt.Fprintf(&builder, "\n[yellow]Reproduce:[white]\n%s\n", tview.Escape(result.Curl))
	}

	if result.Body != "" {
		lines := strings.Split(strings.TrimRight(result.Body, "\n"), "\n")
		fmt.Fprintf(&builder, "\n[yellow]Response body:[white]\n")
		for i, line := range lines {
			if i == maxBodyLines {
				fmt.Fprintf(&builder, "[gray]... and %d more lines[white]\n", len(lines)-maxBodyLines)
				break
			}
			builder.WriteString(tview.Escape(line))
			builder.WriteString("\n")
		}
	}

	return builder.String()
}

// formatFailureStats formats the stats header for a failed case
func formatFailureStats(result domain.TestResult, meta domain.TestResultsMeta) string {
	status := "no response"
	if result.Status > 0 {
		status = fmt.Sprintf("%d", result.Status)
	}
	return fmt.Sprintf("[cyan]target:[white] [yellow]%s[white]  [cyan]status:[white] [yellow]%s[white]  [cyan]run:[white] %s\n",
		tview.Escape(meta.BaseURL), status, meta.Timestamp)
}
