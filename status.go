package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ANSI clear-and-home, so a redraw replaces the previous block instead of
// scrolling.
const clearScreen = "\x1b[2J\x1b[H"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	onStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	offStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	legendStyle = lipgloss.NewStyle().Faint(true)
)

// presenter redraws the console status block, skipping the write when
// nothing changed so the screen doesn't flicker at poll rate.
type presenter struct {
	w    io.Writer
	last string
}

func newPresenter(w io.Writer) *presenter {
	return &presenter{w: w}
}

func statusText(enabled bool, gamma float64, mode colorMode) string {
	state := offStyle.Render("OFF")
	if enabled {
		state = onStyle.Render("ON")
	}
	channels := "all colors"
	if mode == modeBlue {
		channels = "blue only"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("GammaKey"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "  Status:    %s\n", state)
	fmt.Fprintf(&b, "  Gamma:     %.1f\n", gamma)
	fmt.Fprintf(&b, "  Channels:  %s\n", channels)
	b.WriteString("\n")
	b.WriteString(legendStyle.Render(strings.Join([]string{
		"  F2  on/off",
		"  F3  gamma +",
		"  F4  gamma -",
		"  F5  cycle color",
		"",
		"  Ctrl+C to quit",
	}, "\n")))
	b.WriteString("\n")
	return b.String()
}

// render recomputes the block and redraws only if it differs from the last
// rendered text.
func (p *presenter) render(enabled bool, gamma float64, mode colorMode) {
	text := statusText(enabled, gamma, mode)
	if text == p.last {
		return
	}
	fmt.Fprint(p.w, clearScreen+text)
	p.last = text
}
