package cli

import (
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/rook-computer/starfield/internal/starfield"
)

var (
	colorCyan = lipgloss.Color("36")
	colorDim  = lipgloss.Color("240")

	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleNumber = lipgloss.NewStyle().Foreground(colorCyan)
)

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// swatch is a block of background color, blank on terminals without color.
func swatch(c color.RGBA) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hexColor(c))).Render("    ")
}

func printRenderSummary(w io.Writer, path string, width, height int, seed uint64, sum starfield.Summary) {
	fmt.Fprintf(w, "%s %s\n", styleTitle.Render("wrote"), path)
	fmt.Fprintf(w, "  %s %s\n", styleDim.Render("size "), styleNumber.Render(fmt.Sprintf("%dx%d", width, height)))
	fmt.Fprintf(w, "  %s %s\n", styleDim.Render("seed "), styleNumber.Render(fmt.Sprint(seed)))
	fmt.Fprintf(w, "  %s %s\n", styleDim.Render("stars"), styleNumber.Render(fmt.Sprint(sum.Stars)))
	fmt.Fprintf(w, "  %s (%.0f,%.0f) -> (%.0f,%.0f)\n", styleDim.Render("line "), sum.Line.P1.X, sum.Line.P1.Y, sum.Line.P2.X, sum.Line.P2.Y)
	if sum.GlowBand {
		fmt.Fprintf(w, "  %s on\n", styleDim.Render("glow "))
	}
}
