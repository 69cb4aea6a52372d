package chart

import (
	"fmt"

	"github.com/de-tools/report-forge/pkg/models/domain"
	"github.com/de-tools/report-forge/pkg/render/layout"
)

// tableImage describes one styled table artifact: an optional header row,
// data rows, a cycling band palette and white cell edges.
type tableImage struct {
	header   []string
	rows     [][]string
	palette  []domain.Color
	fontSize float64
}

const tableImageMargin = 20.0

// drawTableImage lays the table out centered on the surface. Band colors
// cycle over all rendered rows, header included, matching the dashboard's
// established look.
func drawTableImage(s *Surface, spec tableImage) error {
	dc, err := s.context()
	if err != nil {
		return err
	}

	face, err := regularFace(spec.fontSize)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)

	all := make([][]string, 0, len(spec.rows)+1)
	if len(spec.header) > 0 {
		all = append(all, spec.header)
	}
	all = append(all, spec.rows...)
	if len(all) == 0 || len(all[0]) == 0 {
		return fmt.Errorf("table image has no cells")
	}
	cols := len(all[0])

	// Column widths follow the widest cell per column, scaled to fill the
	// drawable width; the same resolution the document tables use.
	ds := domain.Dataset{Columns: all[0], Rows: all[1:]}
	width := float64(dc.Width()) - 2*tableImageMargin
	widths := layout.ResolveColumnWidths(layout.MeasureFunc(func(t string) float64 {
		w, _ := dc.MeasureString(t)
		return w
	}), ds, width)

	rowH := spec.fontSize * 2.5
	tableH := rowH * float64(len(all))
	if max := float64(dc.Height()) - 2*tableImageMargin; tableH > max {
		rowH = max / float64(len(all))
		tableH = max
	}
	top := (float64(dc.Height()) - tableH) / 2

	for i, row := range all {
		band := layout.CycleColor(i, spec.palette)
		y := top + float64(i)*rowH
		x := tableImageMargin
		for c := 0; c < cols; c++ {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}

			dc.SetRGB255(band.RGB())
			dc.DrawRectangle(x, y, widths[c], rowH)
			dc.FillPreserve()
			dc.SetRGB(1, 1, 1)
			dc.SetLineWidth(1)
			dc.Stroke()

			dc.SetRGB(0, 0, 0)
			dc.DrawStringAnchored(cell, x+widths[c]/2, y+rowH/2, 0.5, 0.35)

			x += widths[c]
		}
	}

	return nil
}
