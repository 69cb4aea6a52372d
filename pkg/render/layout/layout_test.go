package layout

import (
	"testing"

	"github.com/de-tools/report-forge/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCenterX_Exact(t *testing.T) {
	pageWidth := 1080.0
	for _, w := range []float64{0, 1, 17.5, 320.25, 1080, 2000} {
		x := CenterX(pageWidth, w)
		assert.InDelta(t, pageWidth/2, x+w/2, 1e-9, "width %v", w)
	}
}

func TestBandColor_Parity(t *testing.T) {
	scheme := domain.ColorScheme{
		OddRow:  domain.MustHexColor("#D9E1F2"),
		EvenRow: domain.MustHexColor("#FFFFFF"),
	}

	expected := map[int]domain.Color{
		1: scheme.OddRow,
		2: scheme.EvenRow,
		3: scheme.OddRow,
		4: scheme.EvenRow,
		5: scheme.OddRow,
	}
	for i, want := range expected {
		assert.Equal(t, want, BandColor(i, scheme), "row %d", i)
	}
}

func TestCycleColor(t *testing.T) {
	palette := []domain.Color{
		domain.MustHexColor("#CCCDD0"),
		domain.MustHexColor("#E7E8E9"),
		domain.MustHexColor("#CCCDD0"),
	}
	assert.Equal(t, palette[0], CycleColor(0, palette))
	assert.Equal(t, palette[1], CycleColor(1, palette))
	assert.Equal(t, palette[2], CycleColor(2, palette))
	assert.Equal(t, palette[0], CycleColor(3, palette))
}

func TestResolveColumnWidths(t *testing.T) {
	// One point per rune keeps the proportions easy to reason about.
	measure := MeasureFunc(func(s string) float64 { return float64(len(s)) })

	ds := domain.Dataset{
		Columns: []string{"ID", "Name"},
		Rows: [][]string{
			{"1", "a very long name indeed"},
			{"2", "short"},
		},
	}

	widths := ResolveColumnWidths(measure, ds, 1080)
	require.Len(t, widths, 2)

	var sum float64
	for _, w := range widths {
		sum += w
	}
	assert.InDelta(t, 1080, sum, 1e-6)
	assert.Greater(t, widths[1], widths[0], "wider content should win more width")
}

func TestResolveColumnWidths_DegenerateMeasurer(t *testing.T) {
	measure := MeasureFunc(func(string) float64 { return -columnPadding })
	ds := domain.Dataset{Columns: []string{"A", "B"}, Rows: [][]string{{"", ""}}}

	widths := ResolveColumnWidths(measure, ds, 100)
	require.Len(t, widths, 2)
	assert.InDelta(t, 50, widths[0], 1e-9)
	assert.InDelta(t, 50, widths[1], 1e-9)
}

func TestParseHexColor(t *testing.T) {
	c, err := domain.ParseHexColor("#4472C4")
	require.NoError(t, err)
	assert.Equal(t, domain.Color{R: 0x44, G: 0x72, B: 0xC4}, c)

	_, err = domain.ParseHexColor("#FFF")
	assert.Error(t, err)

	_, err = domain.ParseHexColor("not-a-color")
	assert.Error(t, err)
}
