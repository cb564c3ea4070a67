// Package plot renders a machine record's radial build as a proportional
// stacked bar for the terminal, one colored block per layer, with a legend
// mapping colors to component names.
package plot

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fusionkit/torus/pkg/report"
)

// =============================================================================
// Color Palette
// =============================================================================

// Layer colors keyed by component symbol. Symbols not listed render in the
// gap color. The palette mirrors the conventional radial-build coloring:
// coils blue, solenoid green, shields violet, blanket gold, plasma red.
var layerColors = map[string]lipgloss.Color{
	"dr_bore":                   lipgloss.Color("250"),
	"dr_cs":                     lipgloss.Color("35"),
	"dr_cs_precomp":             lipgloss.Color("220"),
	"dr_tf_inboard":             lipgloss.Color("75"),
	"dr_tf_outboard":            lipgloss.Color("75"),
	"dr_shld_thermal_inboard":   lipgloss.Color("40"),
	"dr_shld_thermal_outboard":  lipgloss.Color("40"),
	"dr_vv_inboard":             lipgloss.Color("240"),
	"dr_vv_outboard":            lipgloss.Color("240"),
	"dr_shld_inboard":           lipgloss.Color("170"),
	"dr_shld_outboard":          lipgloss.Color("170"),
	"dr_blkt_inboard":           lipgloss.Color("178"),
	"dr_blkt_outboard":          lipgloss.Color("178"),
	"dr_fw_inboard":             lipgloss.Color("67"),
	"dr_fw_outboard":            lipgloss.Color("67"),
	"dr_fw_plasma_gap_inboard":  lipgloss.Color("214"),
	"dr_fw_plasma_gap_outboard": lipgloss.Color("214"),
	"rminor":                    lipgloss.Color("167"),
}

var colorGap = lipgloss.Color("237")

var styleLegendWidth = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// =============================================================================
// Options
// =============================================================================

// Options controls the rendering.
type Options struct {
	// Width is the bar width in cells. Zero means 72.
	Width int

	// InboardOnly cuts the bar at the plasma centre.
	InboardOnly bool

	// ShowWidths appends each layer thickness to its legend entry.
	ShowWidths bool
}

// =============================================================================
// Rendering
// =============================================================================

// RadialBuild renders the radial build section of rec. It returns an error
// if the record has no radial build section or the stack has zero extent.
func RadialBuild(rec *report.Record, opts Options) (string, error) {
	layers := radialLayers(rec)
	if len(layers) == 0 {
		return "", fmt.Errorf("record has no radial build section")
	}
	if opts.InboardOnly {
		layers = layers[:inboardEnd(layers)]
	}

	total := 0.0
	for _, l := range layers {
		total += l.Thickness
	}
	if total <= 0 {
		return "", fmt.Errorf("radial build has zero extent")
	}

	width := opts.Width
	if width <= 0 {
		width = 72
	}

	var bar strings.Builder
	var legend strings.Builder
	for _, l := range layers {
		// Zero-thickness layers are dropped, matching the treatment of
		// disabled components; everything else gets at least one cell so
		// thin layers stay visible.
		if l.Thickness == 0 {
			continue
		}
		cells := int(float64(width) * l.Thickness / total)
		if cells < 1 {
			cells = 1
		}
		style := lipgloss.NewStyle().Foreground(colorFor(l.Symbol))
		bar.WriteString(style.Render(strings.Repeat("█", cells)))

		legend.WriteString("  ")
		legend.WriteString(style.Render("■"))
		legend.WriteString(" ")
		legend.WriteString(l.Desc)
		if opts.ShowWidths {
			legend.WriteString(styleLegendWidth.Render(fmt.Sprintf("  %.3f m", l.Thickness)))
		}
		legend.WriteString("\n")
	}

	var out strings.Builder
	out.WriteString(bar.String())
	out.WriteString("\n")
	out.WriteString(axis(width, total))
	out.WriteString("\n\n")
	out.WriteString(legend.String())
	return out.String(), nil
}

// radialLayers returns the named layers of the radial build section.
func radialLayers(rec *report.Record) []report.LayerEntry {
	for _, s := range rec.Sections {
		if s.Title != "Radial Build" {
			continue
		}
		var out []report.LayerEntry
		for _, l := range s.Layers {
			if l.Symbol == "" {
				continue
			}
			out = append(out, l)
		}
		return out
	}
	return nil
}

// inboardEnd returns the slice end covering the stack up to and including
// the plasma centre.
func inboardEnd(layers []report.LayerEntry) int {
	for i, l := range layers {
		if l.Symbol == "rminor" {
			return i + 1
		}
	}
	return len(layers)
}

func colorFor(symbol string) lipgloss.Color {
	if c, ok := layerColors[symbol]; ok {
		return c
	}
	return colorGap
}

// axis renders the radius scale line under the bar.
func axis(width int, total float64) string {
	left := "0 m"
	right := fmt.Sprintf("%.2f m", total)
	pad := width - len(left) - len(right)
	if pad < 1 {
		pad = 1
	}
	return styleLegendWidth.Render(left + strings.Repeat(" ", pad) + right)
}
