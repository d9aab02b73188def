package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/pkrhistory/internal/pipeline"
)

// maxListedFailures caps the failures printed in a report.
const maxListedFailures = 10

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Width(11).
			Foreground(lipgloss.Color("12"))

	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	skipStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)

func renderReport(r pipeline.Report) string {
	row := func(label string, style lipgloss.Style, value string) string {
		return labelStyle.Render(label) + style.Render(value)
	}

	lines := []string{
		titleStyle.Render("Batch " + r.RunID),
		"",
		row("Hands", lipgloss.NewStyle(), fmt.Sprint(r.Keys)),
		row("Processed", okStyle, fmt.Sprint(r.Processed)),
		row("Skipped", skipStyle, fmt.Sprint(r.Skipped)),
		row("Failed", failStyle, fmt.Sprint(len(r.Failures))),
		row("Duration", dimStyle, r.Duration.Round(time.Millisecond).String()),
	}

	if len(r.Failures) > 0 {
		lines = append(lines, "")
		for i, f := range r.Failures {
			if i == maxListedFailures {
				lines = append(lines, dimStyle.Render(fmt.Sprintf("… and %d more", len(r.Failures)-i)))
				break
			}
			lines = append(lines, failStyle.Render("✗ ")+f.Key+dimStyle.Render(": "+f.Err.Error()))
		}
	}

	return boxStyle.Render(strings.Join(lines, "\n"))
}
