package sweep

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true).MarginBottom(1)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(32)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(10).Align(lipgloss.Right)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Padding(1, 0)
)

var columns = []string{"balls", "height", "±", "temp", "speed", "max"}

// Report renders a summary table followed by a plot of the mean height of
// every scenario over time.
func Report(results []Result) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Lava sweep: %d scenarios", len(results))))
	b.WriteString("\n")

	header := labelStyle.Render("scenario")
	for _, c := range columns {
		header += valueStyle.Render(c)
	}
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	for _, r := range results {
		row := labelStyle.Render(r.Scenario.Label()) +
			valueStyle.Render(fmt.Sprint(r.Balls)) +
			valueStyle.Render(fmt.Sprintf("%.3f", r.MeanHeight)) +
			valueStyle.Render(fmt.Sprintf("%.3f", r.StdHeight)) +
			valueStyle.Render(fmt.Sprintf("%.3f", r.MeanTemp)) +
			valueStyle.Render(fmt.Sprintf("%.2f", r.MeanSpeed)) +
			valueStyle.Render(fmt.Sprintf("%.2f", r.MaxSpeed))
		if r.Escaped > 0 {
			row += " " + warnStyle.Render(fmt.Sprintf("%d escaped", r.Escaped))
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	if plot := plotHeights(results); plot != "" {
		b.WriteString(graphStyle.Render(plot))
		b.WriteString("\n")
	}
	return b.String()
}

func plotHeights(results []Result) string {
	var series [][]float64
	for _, r := range results {
		if len(r.HeightTrace) > 1 {
			series = append(series, r.HeightTrace)
		}
	}
	if len(series) == 0 {
		return ""
	}
	colors := []asciigraph.AnsiColor{asciigraph.Red, asciigraph.Yellow, asciigraph.Green, asciigraph.Blue, asciigraph.Magenta, asciigraph.Cyan}
	seriesColors := make([]asciigraph.AnsiColor, len(series))
	for i := range series {
		seriesColors[i] = colors[i%len(colors)]
	}
	return asciigraph.PlotMany(series,
		asciigraph.Height(10),
		asciigraph.Width(72),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(seriesColors...),
		asciigraph.Caption("mean height over time (0 floor, 1 ceiling)"))
}
