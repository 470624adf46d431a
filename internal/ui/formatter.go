package ui

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"gvcheck/internal/config"
	"gvcheck/internal/domain"
	"gvcheck/internal/toolchain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{config: cfg}
}

// PrintRunStats displays the summary of a validation run.
func (f *Formatter) PrintRunStats(output *domain.RunOutput) error {
	meta := output.Meta

	fmt.Print("\n")
	color.Cyan("╔═══════════════════════════════════════════════════════════════╗")
	color.Cyan("║                  Example Validation Summary                   ║")
	color.Cyan("╚═══════════════════════════════════════════════════════════════╝\n")

	fmt.Println("┌─────────────────────────────────┬─────────────────────────────┐")

	fmt.Printf("│ %-31s │ ", "Total Checks")
	color.White("%-27d │\n", meta.TotalChecks)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Passed")
	color.Green("%-27d │\n", meta.PassedChecks)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Failed")
	color.Red("%-27d │\n", meta.FailedChecks)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Skipped")
	color.Yellow("%-27d │\n", meta.SkippedChecks)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Duration")
	color.White("%-27s │\n", fmt.Sprintf("%.2fs", meta.DurationSeconds))
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Jobs")
	color.White("%-27d │\n", meta.Jobs)
	fmt.Println("├─────────────────────────────────┼─────────────────────────────┤")

	fmt.Printf("│ %-31s │ ", "Timestamp")
	color.White("%-27s │\n", meta.Timestamp)

	fmt.Println("└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Println()
	if meta.FailedChecks == 0 {
		color.Green("✓ All examples valid!")
	} else {
		color.Red("✗ %d check(s) failed", meta.FailedChecks)
		fmt.Println()
		f.printFailures(output.Failures)
	}

	if len(output.Skips) > 0 {
		fmt.Println()
		f.printSkips(output.Skips)
	}

	return nil
}

// printFailures lists failed checks grouped by kind.
func (f *Formatter) printFailures(failures []domain.CheckFailure) {
	byKind := map[string][]domain.CheckFailure{}
	for _, failure := range failures {
		byKind[failure.Kind] = append(byKind[failure.Kind], failure)
	}

	for _, kind := range []string{"compile", "parse", "output"} {
		group := byKind[kind]
		if len(group) == 0 {
			continue
		}
		color.Red("%s checks:", kind)
		for _, failure := range group {
			fmt.Printf("  ✗ %s (%s, exit %d)\n", color.RedString(failure.Name), failure.Path, failure.ExitCode)
			if failure.Message != "" {
				for _, line := range strings.Split(failure.Message, "\n") {
					fmt.Printf("      %s\n", line)
				}
			}
		}
	}
}

// printSkips lists skipped checks with their rationale.
func (f *Formatter) printSkips(skips []domain.CheckSkip) {
	color.Yellow("Skipped:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, skip := range skips {
		fmt.Fprintf(w, "  - %s\t(%s)\t%s\n", skip.Name, skip.Kind, skip.Reason)
	}
	w.Flush()
}

// PrintCheckList lists cataloged checks without executing them.
func (f *Formatter) PrintCheckList(examples []domain.Example) error {
	if len(examples) == 0 {
		color.Yellow("No checks match")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tPATH")
	for _, ex := range examples {
		fmt.Fprintf(w, "%s\t%s\t%s\n", ex.Name, ex.Kind, ex.RelPath)
	}
	w.Flush()

	fmt.Println()
	color.Cyan("%d check(s) in catalog", len(examples))
	return nil
}

// PrintProbe reports toolchain availability.
func (f *Formatter) PrintProbe(caps toolchain.Capabilities) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "TOOL\tSTATUS\tPATH\n")
	fmt.Fprintf(w, "%s\t%s\t%s\n", f.config.CompilerPath, colorAvailability(caps.Compiler), caps.CompilerPath)
	fmt.Fprintf(w, "%s\t%s\t%s\n", config.InterpreterName, colorAvailability(caps.Interpreter), caps.InterpreterPath)
	w.Flush()
	return nil
}

func colorAvailability(a toolchain.Availability) string {
	switch a {
	case toolchain.Available:
		return color.GreenString(a.String())
	case toolchain.Unavailable:
		return color.RedString(a.String())
	default:
		return color.YellowString(a.String())
	}
}

// PrintHistory lists recent runs from the history store.
func (f *Formatter) PrintHistory(runs []domain.RunMeta) error {
	if len(runs) == 0 {
		color.Yellow("No recorded runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIMESTAMP\tTOTAL\tPASSED\tFAILED\tSKIPPED\tDURATION\tJOBS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%.2fs\t%d\n",
			run.Timestamp,
			run.TotalChecks,
			color.GreenString("%d", run.PassedChecks),
			color.RedString("%d", run.FailedChecks),
			color.YellowString("%d", run.SkippedChecks),
			run.DurationSeconds,
			run.Jobs,
		)
	}
	w.Flush()
	return nil
}
