package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Span is a run of text with one style. An empty Color and no Bold means unstyled.
type Span struct {
	Text  string
	Color string // color name from the config, e.g. "blue" or "bright_black"
	Bold  bool
}

// Line is one output line as a sequence of spans.
type Line []Span

// Text returns the line without any styling.
func (l Line) Text() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

var ansiColors = map[string]string{
	"black":          "0",
	"red":            "1",
	"green":          "2",
	"yellow":         "3",
	"blue":           "4",
	"magenta":        "5",
	"purple":         "5",
	"cyan":           "6",
	"white":          "7",
	"bright_black":   "8",
	"bright_red":     "9",
	"bright_green":   "10",
	"bright_yellow":  "11",
	"bright_blue":    "12",
	"bright_magenta": "13",
	"bright_cyan":    "14",
	"bright_white":   "15",
}

// ParseColor maps a color name to an ANSI palette color. Both "bright_red"
// and "brightred" are accepted; unknown names are white.
func ParseColor(name string) lipgloss.Color {
	key := strings.ToLower(strings.TrimSpace(name))
	if strings.HasPrefix(key, "bright") && !strings.HasPrefix(key, "bright_") {
		key = "bright_" + strings.TrimPrefix(key, "bright")
	}
	if code, ok := ansiColors[key]; ok {
		return lipgloss.Color(code)
	}
	return lipgloss.Color(ansiColors["white"])
}

// Painter turns lines into text, either with ANSI styling or plain.
type Painter struct {
	renderer *lipgloss.Renderer
	styles   map[Span]lipgloss.Style
}

// NewPainter returns a painter. A plain painter emits no escape sequences.
func NewPainter(plain bool) *Painter {
	r := lipgloss.NewRenderer(io.Discard)
	if plain {
		r.SetColorProfile(termenv.Ascii)
	} else {
		r.SetColorProfile(termenv.ANSI)
	}
	return &Painter{renderer: r, styles: make(map[Span]lipgloss.Style)}
}

// Paint renders lines, each terminated by a newline.
func (p *Painter) Paint(lines []Line) string {
	var b strings.Builder
	for _, line := range lines {
		for _, span := range line {
			b.WriteString(p.span(span))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (p *Painter) span(s Span) string {
	if s.Text == "" || (s.Color == "" && !s.Bold) {
		return s.Text
	}
	key := Span{Color: s.Color, Bold: s.Bold}
	style, ok := p.styles[key]
	if !ok {
		style = p.renderer.NewStyle().TabWidth(lipgloss.NoTabConversion).Bold(s.Bold)
		if s.Color != "" {
			style = style.Foreground(ParseColor(s.Color))
		}
		p.styles[key] = style
	}
	return style.Render(s.Text)
}

// Paint is a convenience for NewPainter(plain).Paint(lines).
func Paint(lines []Line, plain bool) string {
	return NewPainter(plain).Paint(lines)
}
