package ui

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"gvcheck/internal/config"
	"gvcheck/internal/domain"
	"gvcheck/internal/storage"
)

// FailsViewer displays failed checks in an interactive TUI
type FailsViewer struct {
	config  *config.Config
	storage storage.Storage
}

// NewFailsViewer creates a new FailsViewer
func NewFailsViewer(cfg *config.Config, st storage.Storage) *FailsViewer {
	return &FailsViewer{
		config:  cfg,
		storage: st,
	}
}

// View displays failed checks in an interactive TUI
func (fv *FailsViewer) View(results *domain.RunOutput) error {
	if len(results.Failures) == 0 {
		color.Green("✓ No failed checks!")
		return nil
	}

	// Track reviewed failures (by index), loaded from the saved results
	reviewed := make(map[int]bool)
	for i, failure := range results.Failures {
		if failure.Resolved {
			reviewed[i] = true
		}
	}

	saveReviewed := func() error {
		for i := range results.Failures {
			results.Failures[i].Resolved = reviewed[i]
		}
		return fv.storage.SaveOutput(results)
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	getListItemText := func(index int) string {
		failure := results.Failures[index]
		label := fmt.Sprintf("%s [gray](%s)[white]", failure.Name, failure.Kind)
		if reviewed[index] {
			return fmt.Sprintf("[gray]✓ [yellow]%d.[gray] %s[white]", index+1, label)
		}
		return fmt.Sprintf("[yellow]%d.[white] %s", index+1, label)
	}

	updateListItem := func(index int) {
		if index < 0 || index >= list.GetItemCount() {
			return
		}
		list.SetItemText(index, getListItemText(index), "")
	}

	for i := range results.Failures {
		list.AddItem(getListItemText(i), "", 0, nil)
	}

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan).
		SetSecondaryTextColor(tview.Styles.SecondaryTextColor)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false).
		SetWordWrap(false)

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

	countUnreviewed := func() int {
		count := 0
		for i := range results.Failures {
			if !reviewed[i] {
				count++
			}
		}
		return count
	}

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		headerView.SetText(fmt.Sprintf(
			" Failed Checks (%d total, %d unreviewed) | Use ↑↓ to navigate, [yellow]R[white] to mark reviewed, → to view details, ← to go back, Ctrl+C to exit ",
			len(results.Failures), countUnreviewed()))
	}
	updateHeader()

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(results.Failures) {
			failure := results.Failures[index]
			statsView.SetText(fv.formatFailureStats(failure, index+1))
			detailsView.SetText(fv.formatFailureDetails(failure))
		}
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyUp, tcell.KeyDown:
			return event
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				index := list.GetCurrentItem()
				if index >= 0 && index < len(results.Failures) {
					reviewed[index] = !reviewed[index]
					updateListItem(index)
					updateHeader()
					updateDetails()
					if err := saveReviewed(); err != nil {
						_ = err
					}
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

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
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

// formatFailureDetails formats a failed check for display using tview color tags
func (fv *FailsViewer) formatFailureDetails(failure domain.CheckFailure) string {
	var builder strings.Builder
	w := tabwriter.NewWriter(&builder, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "[red]✗ %s check: %s[white]\n\n", failure.Kind, failure.Name)
	fmt.Fprintf(w, "[cyan]Example: %s[white]\n", failure.Path)
	fmt.Fprintf(w, "[yellow]Exit code: %d[white]\n\n", failure.ExitCode)

	if failure.Message != "" {
		fmt.Fprintf(w, "[yellow]Message:[white]\n%s\n\n", failure.Message)
	}

	if failure.Output != "" {
		fmt.Fprintf(w, "[yellow]Captured output:[white]\n")
		lines := strings.Split(failure.Output, "\n")
		for i, line := range lines {
			if i < 40 {
				fmt.Fprintf(w, "  %s\n", line)
			}
		}
		if len(lines) > 40 {
			fmt.Fprintf(w, "  [gray]... and %d more lines[white]\n", len(lines)-40)
		}
	}

	w.Flush()
	return builder.String()
}

// formatFailureStats formats the stats header for a failed check
func (fv *FailsViewer) formatFailureStats(failure domain.CheckFailure, number int) string {
	name := failure.Name
	if name == "" {
		name = fmt.Sprintf("Check %d", number)
	}
	return fmt.Sprintf("[cyan]path:[white] [yellow]%s[white] ([yellow]%s[white])\n", failure.Path, name)
}
