package presentation

import (
	"fmt"
	"io"
	"strings"
	"time"

	units "github.com/docker/go-units"

	"shotcopy/internal/domain"
	appErrors "shotcopy/internal/errors"
)

const title = "MultiMC Screenshot Copier"

type Printer struct {
	Writer  io.Writer
	Verbose bool

	st *styles
}

func NewPrinter(w io.Writer, verbose bool) Printer {
	st := newStyles(w)
	return Printer{Writer: w, Verbose: verbose, st: &st}
}

func (p Printer) theme() styles {
	if p.st == nil {
		return newStyles(p.Writer)
	}
	return *p.st
}

func (p Printer) PrintBanner(version string) {
	st := p.theme()
	line := fmt.Sprintf("%s %s", title, version)
	fmt.Fprintln(p.Writer, st.title.Render(line))
	fmt.Fprintln(p.Writer, st.rule.Render(strings.Repeat("=", len(line))))
}

func (p Printer) PrintUsage(program string) {
	st := p.theme()
	fmt.Fprintf(p.Writer, "Typical command prompt Usage: %s %s\n",
		st.notice.Render(program),
		st.notice.Render("<MultiMC folder path> <output folder path>"))
	fmt.Fprintln(p.Writer, st.err.Render("Not enough arguments provided, prompting for folder paths..."))
}

// PromptStyle decorates prompt labels.
func (p Printer) PromptStyle() func(string) string {
	st := p.theme()
	return func(label string) string {
		return st.prompt.Render(label)
	}
}

// PrintConfirmSpacing separates the confirmation question from what came before.
func (p Printer) PrintConfirmSpacing() {
	fmt.Fprintln(p.Writer)
}

func (p Printer) ConfirmLabel(source, destination string) string {
	st := p.theme()
	return fmt.Sprintf("Copy screenshots from %s to %s (yes/no): ",
		st.path.Render(source), st.path.Render(destination))
}

func (p Printer) PrintError(err error) {
	fmt.Fprintf(p.Writer, "Error: %s\n", p.theme().err.Render(appErrors.UserMessage(err)))
}

func (p Printer) PrintCreated(path string) {
	fmt.Fprintf(p.Writer, "Created output folder: %s\n", p.theme().notice.Render(path))
}

func (p Printer) PrintCancelled() {
	fmt.Fprintln(p.Writer, "Operation cancelled!")
}

func (p Printer) PrintCopied(shot domain.Screenshot) {
	st := p.theme()
	fmt.Fprintf(p.Writer, "%s %s\n", st.copied.Render("Copied:"), st.path.Render(shot.SourcePath))
}

func (p Printer) PrintWouldCopy(shot domain.Screenshot) {
	st := p.theme()
	fmt.Fprintf(p.Writer, "%s %s\n", st.copied.Render("Would copy:"), st.path.Render(shot.SourcePath))
}

func (p Printer) PrintSummary(report domain.Report) {
	st := p.theme()
	fmt.Fprintln(p.Writer)

	copiedLabel := "Total screenshots copied"
	if report.DryRun {
		fmt.Fprintln(p.Writer, st.warning.Render("Dry run: no files were copied."))
		copiedLabel = "Total screenshots that would be copied"
	}
	fmt.Fprintf(p.Writer, "%s: %s\n", copiedLabel, st.value.Render(fmt.Sprint(report.Copied)))
	fmt.Fprintf(p.Writer, "Total screenshots not copied (already exist): %s\n", st.value.Render(fmt.Sprint(report.Skipped)))
	if report.Failed > 0 {
		fmt.Fprintf(p.Writer, "Total screenshots failed: %s\n", st.err.Render(fmt.Sprint(report.Failed)))
	}

	if report.Copied > 0 {
		volume := units.HumanSize(float64(report.Bytes))
		start, end := formatDate(report.RangeStart), formatDate(report.RangeEnd)
		if start == "" || end == "" {
			fmt.Fprintln(p.Writer, st.dim.Render(fmt.Sprintf("%s from %d instances.", volume, report.InstancesWithMedia)))
		} else {
			fmt.Fprintln(p.Writer, st.dim.Render(fmt.Sprintf("%s from %d instances, taken %s until %s.", volume, report.InstancesWithMedia, start, end)))
		}
	}

	if report.Failed > 0 && !p.Verbose {
		fmt.Fprintln(p.Writer, st.dim.Render("Run with --verbose to list the failed files."))
	}
	if p.Verbose && len(report.Failures) > 0 {
		fmt.Fprintln(p.Writer)
		fmt.Fprintln(p.Writer, st.warning.Render("Failures:"))
		for _, failure := range report.Failures {
			fmt.Fprintf(p.Writer, "- %s: %v\n", failure.Path, failure.Err)
		}
	}
}

func (p Printer) PrintExitHint() {
	fmt.Fprintln(p.Writer)
	fmt.Fprintln(p.Writer, p.theme().notice.Render("Press Return to exit..."))
}

func formatDate(value *time.Time) string {
	if value == nil {
		return ""
	}
	return value.Format("2006-01-02")
}
