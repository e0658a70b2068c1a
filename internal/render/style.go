package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styler colours a composed diagram: the title row in bold and each pip
// in red. A disabled Styler returns the diagram unchanged.
type Styler struct {
	enabled bool
	title   lipgloss.Style
	pip     lipgloss.Style
}

// NewStyler creates a Styler that renders for w. When enabled is true the
// renderer is forced to the ANSI256 profile, so colour is emitted even when
// w is not a terminal; the caller decides whether colour is wanted.
func NewStyler(w io.Writer, enabled bool) *Styler {
	r := lipgloss.NewRenderer(w)
	if enabled {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Styler{
		enabled: enabled,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		pip:     r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// Enabled reports whether the styler emits colour.
func (s *Styler) Enabled() bool {
	return s.enabled
}

// Apply styles a diagram produced by Compose.
func (s *Styler) Apply(diagram string) string {
	if !s.enabled {
		return diagram
	}

	lines := strings.Split(diagram, "\n")
	for i, line := range lines {
		if i == 0 {
			lines[i] = s.title.Render(line)
			continue
		}
		lines[i] = strings.ReplaceAll(line, Pip, s.pip.Render(Pip))
	}
	return strings.Join(lines, "\n")
}
