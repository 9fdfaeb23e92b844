package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/mesh-intelligence/wardrobe/pkg/wardrobe"
)

// headerColor is the ANSI color used for section headers with --color.
const headerColor = lipgloss.Color("12")

// headerFunc returns the header decorator for w. Without color, headers are
// written unchanged. With color, lipgloss still falls back to plain text
// when w is not a color-capable terminal.
func headerFunc(w io.Writer, color bool) wardrobe.HeaderFunc {
	if !color {
		return wardrobe.PlainHeader
	}
	style := lipgloss.NewRenderer(w).NewStyle().Bold(true).Foreground(headerColor)
	return func(s string) string {
		return style.Render(s)
	}
}

// writeJSON writes v as indented JSON followed by a newline.
func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
