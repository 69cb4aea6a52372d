package chart

import (
	"context"
	"fmt"
	"strconv"

	"github.com/de-tools/report-forge/pkg/models/domain"
	"github.com/fogleman/gg"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
)

// Chart axis constants. The y axis runs to a fixed ceiling with major
// gridlines every 10 units and minor gridlines every 2.
const (
	chartCeiling    = 80.0
	chartMajorStep  = 10.0
	chartMinorStep  = 2.0
	chartBarFrac    = 0.3 // bar width as a fraction of one month slot
	chartLeftInset  = 60.0
	chartRightInset = 20.0
	chartTopInset   = 70.0
	chartBotInset   = 40.0
)

// CycleTimesChart draws the grouped bar chart of monthly cycle times: three
// bars per month, twelve months in fixed Jan-Dec order, value labels above
// each bar, a frameless axis and a centered legend above the plot.
// It returns the path of the saved PNG artifact.
func (b *Builder) CycleTimesChart(ctx context.Context, series []domain.ChartSeries) (string, error) {
	logger := zerolog.Ctx(ctx)

	if len(series) != domain.ChartSeriesCount {
		return "", &ChartBuildError{
			Reason: fmt.Sprintf("want exactly %d series, got %d", domain.ChartSeriesCount, len(series)),
		}
	}

	s := NewSurface(b.settings.ChartWidth, b.settings.ChartHeight)
	defer s.Close()

	if err := b.drawCycleTimes(s, series); err != nil {
		return "", &ChartBuildError{Reason: "drawing failed", Err: err}
	}

	path, err := tempArtifact(fmt.Sprintf("*_%s_CycleTimesGraph.png", b.tenant))
	if err != nil {
		return "", &ChartBuildError{Reason: "artifact file", Err: err}
	}
	if err := s.Save(path); err != nil {
		return "", &ChartBuildError{Reason: "figure save", Err: err}
	}

	logger.Debug().Str("path", path).Msg("cycle times chart rendered")
	return path, nil
}

func (b *Builder) drawCycleTimes(s *Surface, series []domain.ChartSeries) error {
	dc, err := s.context()
	if err != nil {
		return err
	}

	small, err := regularFace(11)
	if err != nil {
		return err
	}
	tiny, err := regularFace(9)
	if err != nil {
		return err
	}
	title, err := boldFace(16)
	if err != nil {
		return err
	}

	width := float64(dc.Width())
	height := float64(dc.Height())
	plotLeft := chartLeftInset
	plotRight := width - chartRightInset
	plotTop := chartTopInset
	plotBottom := height - chartBotInset
	plotW := plotRight - plotLeft
	plotH := plotBottom - plotTop

	yAt := func(v float64) float64 {
		return plotBottom - v/chartCeiling*plotH
	}

	dc.SetFontFace(title)
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored("Cycle Times", plotLeft+plotW/2, 18, 0.5, 0.5)

	b.drawLegend(dc, series, small, plotLeft+plotW/2, 42)

	// Gridlines first so bars paint over them the way a zorder-2 bar would.
	for v := chartMinorStep; v <= chartCeiling; v += chartMinorStep {
		y := yAt(v)
		if isMajorTick(v) {
			dc.SetRGBA(0, 0, 0, 0.2)
			dc.SetLineWidth(1)
		} else {
			dc.SetRGBA(0, 0, 0, 0.1)
			dc.SetLineWidth(0.5)
		}
		dc.DrawLine(plotLeft, y, plotRight, y)
		dc.Stroke()
	}

	dc.SetFontFace(small)
	dc.SetRGB(0, 0, 0)
	for v := 0.0; v <= chartCeiling; v += chartMajorStep {
		dc.DrawStringAnchored(strconv.FormatFloat(v, 'f', -1, 64), plotLeft-8, yAt(v), 1, 0.35)
	}

	// Rotated y-axis label.
	dc.Push()
	dc.RotateAbout(gg.Radians(-90), 16, plotTop+plotH/2)
	dc.DrawStringAnchored("Days", 16, plotTop+plotH/2, 0.5, 0.35)
	dc.Pop()

	slot := plotW / domain.MonthCount
	barW := slot * chartBarFrac

	for m := 0; m < domain.MonthCount; m++ {
		slotX := plotLeft + slot*float64(m)

		for i, sr := range series {
			v := sr.Values[m]
			drawV := v
			if drawV > chartCeiling {
				drawV = chartCeiling
			}
			if drawV < 0 {
				drawV = 0
			}

			x := slotX + barW*float64(i)
			top := yAt(drawV)

			c := seriesPalette[i]
			dc.SetRGB255(c.RGB())
			dc.DrawRectangle(x, top, barW, plotBottom-top)
			dc.Fill()

			dc.SetFontFace(tiny)
			dc.SetRGB(0, 0, 0)
			dc.DrawStringAnchored(formatValue(v), x+barW/2, top-3, 0.5, 0)
		}

		// Month tick centered under the middle bar of the group.
		dc.SetFontFace(small)
		dc.DrawStringAnchored(domain.MonthAbbreviations[m], slotX+barW*1.5, plotBottom+14, 0.5, 0.35)
	}

	return nil
}

func (b *Builder) drawLegend(dc *gg.Context, series []domain.ChartSeries, face font.Face, cx, cy float64) {
	const swatch = 12.0
	const gap = 5.0
	const spacing = 22.0

	dc.SetFontFace(face)

	var total float64
	for _, sr := range series {
		w, _ := dc.MeasureString(sr.Label)
		total += swatch + gap + w + spacing
	}
	total -= spacing

	x := cx - total/2
	for i, sr := range series {
		c := seriesPalette[i]
		dc.SetRGB255(c.RGB())
		dc.DrawRectangle(x, cy-swatch/2, swatch, swatch)
		dc.Fill()
		x += swatch + gap

		dc.SetRGB(0, 0, 0)
		w, _ := dc.MeasureString(sr.Label)
		dc.DrawStringAnchored(sr.Label, x+w/2, cy, 0.5, 0.35)
		x += w + spacing
	}
}

func isMajorTick(v float64) bool {
	q := v / chartMajorStep
	return q == float64(int(q))
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
