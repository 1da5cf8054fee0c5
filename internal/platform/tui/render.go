package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/starcatch/internal/core"
)

// ansiCodes are the terminal colors for each core.Color.
var ansiCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
}

// Palette styles screen cells for one output. SSH sessions get their own
// palette so colors follow the client's terminal, not the server's.
type Palette struct {
	plain  lipgloss.Style
	styles map[core.Color]lipgloss.Style
	footer lipgloss.Style
}

// NewPalette builds a palette on r. A nil renderer uses lipgloss' default.
func NewPalette(r *lipgloss.Renderer) *Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := &Palette{
		plain:  r.NewStyle(),
		styles: make(map[core.Color]lipgloss.Style, len(ansiCodes)),
		footer: r.NewStyle().Foreground(lipgloss.Color("241")),
	}
	for c, code := range ansiCodes {
		p.styles[c] = r.NewStyle().Foreground(lipgloss.Color(code))
	}
	return p
}

func (p *Palette) style(c core.Color) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	return p.plain
}

// Footer renders the help line under the play field.
func (p *Palette) Footer(s string) string {
	return p.footer.Render(s)
}

// Render draws the screen row by row, one style run per stretch of
// same-colored cells.
func (p *Palette) Render(s *core.Screen) string {
	w, h := s.Width(), s.Height()

	var sb strings.Builder
	sb.Grow(w*h*2 + h)
	run := make([]rune, 0, w)

	for y := range h {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < w; {
			color := s.GetCell(x, y).Color
			run = run[:0]
			for ; x < w; x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run = append(run, cell.Rune)
			}
			sb.WriteString(p.style(color).Render(string(run)))
		}
	}
	return sb.String()
}
