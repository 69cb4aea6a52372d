// Package chart builds the four raster artifacts a dashboard is composed of:
// a grouped bar chart of monthly cycle times and three styled table images.
// Each builder acquires its own drawing surface, saves the figure to an
// ephemeral PNG file and releases the surface on every exit path.
package chart

import "github.com/de-tools/report-forge/pkg/models/domain"

// seriesPalette colors the three transfer-type series, in series order.
var seriesPalette = []domain.Color{
	domain.MustHexColor("#A6C6EF"),
	domain.MustHexColor("#FEE699"),
	domain.MustHexColor("#F4B183"),
}

// neutralPalette is the three-color band cycle of the peers and users tables.
var neutralPalette = []domain.Color{
	domain.MustHexColor("#CCCDD0"),
	domain.MustHexColor("#E7E8E9"),
	domain.MustHexColor("#CCCDD0"),
}

// Settings holds the artifact raster dimensions in pixels.
type Settings struct {
	ChartWidth  int
	ChartHeight int
	// StripWidth/StripHeight size the peers and transfer-type tables,
	// which render as wide single-band strips.
	StripWidth  int
	StripHeight int
	UsersWidth  int
	UsersHeight int
}

func DefaultSettings() Settings {
	return Settings{
		ChartWidth:  1000,
		ChartHeight: 500,
		StripWidth:  1000,
		StripHeight: 200,
		UsersWidth:  800,
		UsersHeight: 800,
	}
}

// Builder produces dashboard artifacts for one tenant. Builders hold no
// mutable state; each build call is independent.
type Builder struct {
	tenant   string
	settings Settings
}

func NewBuilder(tenant string) *Builder {
	return &Builder{
		tenant:   tenant,
		settings: DefaultSettings(),
	}
}
