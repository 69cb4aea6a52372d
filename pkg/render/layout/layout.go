// Package layout holds the deterministic layout math shared by the table
// document renderer and the dashboard artifact builders: text centering,
// row banding and column-width resolution.
package layout

import (
	"github.com/de-tools/report-forge/pkg/models/domain"
)

// Inch is one inch expressed in points, the unit every page geometry
// constant in this module is written in.
const Inch = 72.0

// TextMeasurer reports the rendered width of a string in the measurer's
// current font. The PDF and raster backends both satisfy it.
type TextMeasurer interface {
	TextWidth(s string) float64
}

// MeasureFunc adapts a plain function to the TextMeasurer interface.
type MeasureFunc func(s string) float64

func (f MeasureFunc) TextWidth(s string) float64 { return f(s) }

// CenterX returns the x coordinate at which a string of the given width must
// start so that it is centered on a page of the given width. It has to be
// recomputed per string since widths differ.
func CenterX(pageWidth, textWidth float64) float64 {
	return (pageWidth - textWidth) / 2
}

// BandColor resolves the background color of a data row. Rows are 1-indexed
// within the data rows; the header row never takes part in banding.
func BandColor(rowIndex int, scheme domain.ColorScheme) domain.Color {
	if rowIndex%2 == 0 {
		return scheme.EvenRow
	}
	return scheme.OddRow
}

// CycleColor resolves the i-th color of a repeating palette, the banding mode
// used by the dashboard table images.
func CycleColor(i int, palette []domain.Color) domain.Color {
	return palette[i%len(palette)]
}

// columnPadding is added to the widest cell of a column before widths are
// scaled, so text never touches the grid lines.
const columnPadding = 12.0

// ResolveColumnWidths distributes total horizontally across the dataset's
// columns in proportion to each column's widest cell, header included.
func ResolveColumnWidths(m TextMeasurer, ds domain.Dataset, total float64) []float64 {
	widths := make([]float64, len(ds.Columns))
	for i, name := range ds.Columns {
		widths[i] = m.TextWidth(name) + columnPadding
	}
	for _, row := range ds.Rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := m.TextWidth(cell) + columnPadding; w > widths[i] {
				widths[i] = w
			}
		}
	}

	var sum float64
	for _, w := range widths {
		sum += w
	}
	if sum <= 0 {
		// Degenerate measurer; fall back to equal columns.
		for i := range widths {
			widths[i] = total / float64(len(widths))
		}
		return widths
	}

	scale := total / sum
	for i := range widths {
		widths[i] *= scale
	}
	return widths
}
