package main

import (
	"fmt"
	"strings"
	"time"

	"kobis-search/internal/loader"
	"kobis-search/internal/models"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Background(lipgloss.Color("235")).
			Padding(0, 1).
			Margin(0, 0, 1, 0)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(22)

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			Align(lipgloss.Right).
			Width(12)

	blockStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	metaStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

func formatCounts(title string, counts *models.TableCounts) string {
	rows := []struct {
		label string
		value int64
	}{
		{"movies", counts.Movies},
		{"directors", counts.Directors},
		{"production companies", counts.ProductionCompanies},
		{"genres", counts.Genres},
		{"countries", counts.Countries},
		{"movie genres", counts.MovieGenres},
		{"movie countries", counts.MovieCountries},
	}

	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(r.label), valueStyle.Render(formatNumber(r.value)))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		blockStyle.Render(strings.Join(lines, "\n")),
	)
}

func formatSummary(s *loader.Summary) string {
	meta := fmt.Sprintf("run %s · %s · %d rows read, %d skipped · %s",
		s.RunID, s.Source, s.Rows, s.Skipped, s.Duration.Round(time.Millisecond))

	return lipgloss.JoinVertical(lipgloss.Left,
		formatCounts("Import Complete", &s.Counts),
		metaStyle.Render(meta),
	)
}

// formatNumber groups thousands with commas.
func formatNumber(n int64) string {
	if n < 0 {
		return "-" + formatNumber(-n)
	}
	s := fmt.Sprintf("%d", n)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return s
}
