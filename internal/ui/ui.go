// Package ui provides styled terminal output for the rediscalc CLI.
// It uses lipgloss for styling with automatic fallback to plain text for
// non-TTY environments.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/sjakati98/RedisEstimator/calc"
)

// UI holds the terminal state and provides styled output methods.
type UI struct {
	IsTTY   bool
	Width   int
	NoColor bool
}

// noColorEnv is the standard environment variable to disable colors.
var noColorEnv = os.Getenv("NO_COLOR") != ""

// New creates a UI instance with TTY detection.
func New() *UI {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	width := 80
	if isTTY {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	return &UI{
		IsTTY:   isTTY,
		Width:   width,
		NoColor: noColorEnv,
	}
}

// shouldStyle returns true if we should use styled output.
func (u *UI) shouldStyle() bool {
	return u.IsTTY && !u.NoColor
}

// Header renders a section title.
func (u *UI) Header(title string) string {
	if !u.shouldStyle() {
		return fmt.Sprintf("== %s ==", title)
	}
	return StyleHeader.Render(title)
}

// MetricCards renders the three estimate figures as side-by-side cards, or
// plain label/value lines without a TTY.
func (u *UI) MetricCards(estimate calc.ResourceEstimate) string {
	labels := []string{"Memory Required", "Estimated Latency", "CPU Cores"}
	values := []string{
		calc.FormatMemorySize(estimate.MemoryBytes),
		fmt.Sprintf("%.2f ms", estimate.LatencyMs),
		fmt.Sprintf("%d", estimate.CPUCores),
	}

	if !u.shouldStyle() {
		var b strings.Builder
		for i := range labels {
			fmt.Fprintf(&b, "%-18s: %s\n", labels[i], values[i])
		}
		return strings.TrimRight(b.String(), "\n")
	}

	cards := make([]string, len(labels))
	for i := range labels {
		cards[i] = StyleCard.Render(
			StyleCardLabel.Render(labels[i]) + "\n" + StyleCardValue.Render(values[i]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// Warnings renders configuration recommendations, one per line. Returns ""
// when there are none.
func (u *UI) Warnings(warnings []calc.Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	var b strings.Builder
	for _, w := range warnings {
		line := fmt.Sprintf("! %s", w.Message)
		if u.shouldStyle() {
			line = StyleWarning.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// Chart renders a memory projection as a one-line sparkline with an axis
// and a min/max legend, sized to the terminal width.
func (u *UI) Chart(series calc.MemoryTimeSeries) string {
	n := len(series.Samples)
	if n == 0 {
		return ""
	}

	width := u.Width - 4
	if width > n {
		width = n
	}
	if width < 10 {
		width = 10
	}

	lo, hi := series.Samples[0].MemoryBytes, series.Samples[0].MemoryBytes
	for _, s := range series.Samples {
		if s.MemoryBytes < lo {
			lo = s.MemoryBytes
		}
		if s.MemoryBytes > hi {
			hi = s.MemoryBytes
		}
	}

	runes := make([]rune, width)
	for col := range runes {
		idx := col * (n - 1) / (width - 1)
		level := 0
		if hi > lo {
			level = int((series.Samples[idx].MemoryBytes - lo) / (hi - lo) * float64(len(sparkLevels)-1))
		}
		runes[col] = sparkLevels[level]
	}
	spark := string(runes)

	left := "0h"
	right := fmt.Sprintf("%gh", series.DurationHours)
	pad := width - len(left) - len(right)
	if pad < 1 {
		pad = 1
	}
	axis := left + strings.Repeat(" ", pad) + right
	legend := fmt.Sprintf("min %s  max %s",
		calc.FormatMemorySize(lo), calc.FormatMemorySize(hi))

	if u.shouldStyle() {
		spark = StyleCardValue.Render(spark)
		axis = StyleMuted.Render(axis)
		legend = StyleMuted.Render(legend)
	}
	return spark + "\n" + axis + "\n" + legend
}

// TrendLine renders the trend classification with its percent change and
// fitted growth rate.
func (u *UI) TrendLine(report calc.TrendReport) string {
	slope, sign := report.SlopeBytesPerHour, "+"
	if slope < 0 {
		slope, sign = -slope, "-"
	}
	line := fmt.Sprintf("Trend: %s (%+.1f%%, %s%s/h)",
		report.Trend, report.PercentChange, sign, calc.FormatMemorySize(slope))
	if u.shouldStyle() {
		return StyleHeader.Render(line)
	}
	return line
}
