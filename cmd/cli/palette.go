package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/sevigo/themeforge/internal/core"
	"github.com/sevigo/themeforge/internal/palette"
)

var (
	scaleNameStyle = lipgloss.NewStyle().Bold(true).Width(10)
	swatchStyle    = lipgloss.NewStyle().Width(7).Align(lipgloss.Center)
	missingStyle   = lipgloss.NewStyle().Width(7).Align(lipgloss.Center).Foreground(lipgloss.Color("#6b7280"))
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Shows every colour scale of the resolved theme as swatches",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, rc, err := resolve(cmd.Context())
		if err != nil {
			return err
		}

		scales := palette.Scales(rc.Theme())
		if len(scales) == 0 {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "The theme defines no colour scales.")
			return err
		}

		header := []string{scaleNameStyle.Render("")}
		for _, w := range core.ScaleWeights {
			header = append(header, swatchStyle.Render(strconv.Itoa(w)))
		}
		lines := []string{lipgloss.JoinHorizontal(lipgloss.Top, header...)}

		for _, name := range palette.SortedNames(scales) {
			lines = append(lines, swatchRow(name, scales[name]))
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
		return err
	},
}

func swatchRow(name string, scale core.ColorScale) string {
	cells := []string{scaleNameStyle.Render(name)}
	for _, w := range core.ScaleWeights {
		hex, ok := scale[w]
		if !ok {
			cells = append(cells, missingStyle.Render("·"))
			continue
		}
		cells = append(cells, swatch(hex))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// swatch paints a cell in the given colour with readable text on top.
func swatch(hex string) string {
	c, err := colorful.Hex(strings.TrimSpace(hex))
	if err != nil {
		return missingStyle.Render("?")
	}
	fg := "#000000"
	if l, _, _ := c.Lab(); l < 0.6 {
		fg = "#ffffff"
	}
	return swatchStyle.
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(fg)).
		Render(strings.TrimPrefix(c.Hex(), "#"))
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	rootCmd.AddCommand(paletteCmd)
}
