package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Edem2000/ledgerly/internal/tui/theme"
)

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	peak := values[0]
	for _, v := range values[1:] {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	style := lipgloss.NewStyle().Foreground(color)

	var buf strings.Builder
	buf.Grow(len(values) * 4) // UTF-8 block chars are up to 3 bytes
	for _, v := range values {
		idx := int(v / peak * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		buf.WriteRune(blocks[idx])
	}

	return style.Render(buf.String())
}

// DailyBars renders a column chart of one value per day of the month.
// Each day gets one column; partial rows use eighth-block characters.
// A row of day-number labels runs underneath (1, 6, 11, ...).
func DailyBars(values []float64, color lipgloss.Color, height int) string {
	n := len(values)
	if n == 0 {
		return ""
	}
	if height < 2 {
		return Sparkline(values, color)
	}

	t := theme.Active

	peak := 0.0
	for _, v := range values {
		if v > peak {
			peak = v
		}
	}
	if peak == 0 {
		peak = 1
	}

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	barStyle := lipgloss.NewStyle().Foreground(color)
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim)

	var b strings.Builder
	for row := height; row >= 1; row-- {
		rowTop := peak * float64(row) / float64(height)
		rowBottom := peak * float64(row-1) / float64(height)

		var line strings.Builder
		for _, v := range values {
			switch {
			case v >= rowTop:
				line.WriteRune('█')
			case v > rowBottom:
				frac := (v - rowBottom) / (rowTop - rowBottom)
				idx := int(frac * 8)
				if idx > 8 {
					idx = 8
				}
				if idx < 1 {
					idx = 1
				}
				line.WriteRune(blocks[idx])
			default:
				line.WriteRune(' ')
			}
		}
		b.WriteString(barStyle.Render(line.String()))
		b.WriteString("\n")
	}

	// Axis and day labels
	b.WriteString(axisStyle.Render(strings.Repeat("─", n)))
	b.WriteString("\n")

	labels := make([]byte, n)
	for i := range labels {
		labels[i] = ' '
	}
	for day := 1; day <= n; day += 5 {
		lbl := fmt.Sprintf("%d", day)
		pos := day - 1
		if pos+len(lbl) <= n {
			copy(labels[pos:], lbl)
		}
	}
	b.WriteString(axisStyle.Render(string(labels)))

	return b.String()
}
