package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-better-config/internal/override"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true)
	envStyle      = lipgloss.NewStyle().Bold(true)
	excludedStyle = lipgloss.NewStyle().Faint(true)
)

// Source names where the value of a key came from.
func Source(d override.Decision) string {
	switch {
	case d.Excluded:
		return "excluded"
	case d.Overridden:
		return "env"
	default:
		return "file"
	}
}

// ExplainTable writes one row per override decision: the key, the variable
// consulted, the source of the final value and the value itself.
func ExplainTable(w io.Writer, decisions []override.Decision) error {
	headers := []string{"KEY", "VARIABLE", "SOURCE", "VALUE"}
	rows := make([][]string, 0, len(decisions))
	for _, d := range decisions {
		variable := d.LookupKey
		if d.Excluded {
			variable = "-"
		}
		rows = append(rows, []string{d.Key, variable, Source(d), d.Value})
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := lipgloss.Width(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	var b strings.Builder
	writeRow(&b, headers, widths, headerStyle)

	for i, width := range widths {
		if i > 0 {
			b.WriteString("─┼─")
		}
		b.WriteString(strings.Repeat("─", width))
	}
	b.WriteString("\n")

	for i, row := range rows {
		style := lipgloss.NewStyle()
		switch {
		case decisions[i].Excluded:
			style = excludedStyle
		case decisions[i].Overridden:
			style = envStyle
		}
		writeRow(&b, row, widths, style)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeRow(b *strings.Builder, cells []string, widths []int, style lipgloss.Style) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(" │ ")
		}
		padded := cell
		if i < len(cells)-1 {
			padded = fmt.Sprintf("%-*s", widths[i], cell)
		}
		b.WriteString(style.Render(padded))
	}
	b.WriteString("\n")
}
