// Package dashboard composites the four independently rendered artifacts of
// one tenant dashboard onto a single fixed-size PDF canvas.
package dashboard

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/de-tools/report-forge/pkg/models/domain"
	"github.com/jung-kurt/gofpdf"
	"github.com/rs/zerolog"
)

// Canvas dimensions in points.
const (
	CanvasWidth  = 900.0
	CanvasHeight = 600.0
)

// Tile names, in the order tiles are placed on the canvas.
const (
	TilePeers    = "peers"
	TileTransfer = "transfer"
	TileChart    = "chart"
	TileUsers    = "users"
)

// tileRects are the hand-placed tile rectangles, top-left origin. They are
// fixed layout constants, never derived from the artifact dimensions;
// artifacts with incompatible aspect ratios render distorted, not rejected.
var tileRects = map[string]domain.Rect{
	TilePeers:    {X: 50, Y: 375, W: 550, H: 100},
	TileTransfer: {X: 50, Y: 455, W: 550, H: 100},
	TileChart:    {X: 20, Y: 95, W: 600, H: 300},
	TileUsers:    {X: 600, Y: 70, W: 300, H: 280},
}

var tileOrder = []string{TilePeers, TileTransfer, TileChart, TileUsers}

// TileRect exposes the placement rectangle of a named tile.
func TileRect(name string) (domain.Rect, bool) {
	r, ok := tileRects[name]
	return r, ok
}

// TileDrawError reports a failure placing one tile; the whole composition is
// aborted and no output is written.
type TileDrawError struct {
	Canvas string
	Tile   string
	Err    error
}

func (e *TileDrawError) Error() string {
	return fmt.Sprintf("failed to draw tile %q on canvas %q: %v", e.Tile, e.Canvas, e.Err)
}

func (e *TileDrawError) Unwrap() error { return e.Err }

// DashboardBuildError wraps any other failure assembling the dashboard.
type DashboardBuildError struct {
	Err error
}

func (e *DashboardBuildError) Error() string {
	return fmt.Sprintf("failed to build dashboard: %v", e.Err)
}

func (e *DashboardBuildError) Unwrap() error { return e.Err }

// Composer places rendered artifacts onto one dashboard canvas per tenant.
type Composer struct {
	tenant string
	loc    *time.Location
	now    func() time.Time
}

func NewComposer(tenant string) *Composer {
	// The output name carries the build date in the reporting team's zone.
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		loc = time.FixedZone("EST", -5*60*60)
	}
	return &Composer{
		tenant: tenant,
		loc:    loc,
		now:    time.Now,
	}
}

// Compose draws the four artifacts at their fixed rectangles and writes the
// canvas to an ephemeral PDF file, returning its path. If any tile fails the
// composition aborts and no output file is left behind.
func (c *Composer) Compose(ctx context.Context, chartPath, peersPath, transferPath, usersPath string) (string, error) {
	logger := zerolog.Ctx(ctx)

	paths := map[string]string{
		TileChart:    chartPath,
		TilePeers:    peersPath,
		TileTransfer: transferPath,
		TileUsers:    usersPath,
	}

	canvasName := fmt.Sprintf("%s_QBR", c.tenant)
	date := c.now().In(c.loc).Format("Jan-02-2006")

	// Size is taken as portrait dims; landscape orientation would swap them.
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: CanvasWidth, Ht: CanvasHeight},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	for _, name := range tileOrder {
		rect := tileRects[name]
		path := paths[name]

		if _, err := os.Stat(path); err != nil {
			return "", &TileDrawError{Canvas: canvasName, Tile: name, Err: err}
		}

		pdf.ImageOptions(path, rect.X, rect.Y, rect.W, rect.H,
			false, gofpdf.ImageOptions{}, 0, "")
		if pdf.Err() {
			return "", &TileDrawError{Canvas: canvasName, Tile: name, Err: pdf.Error()}
		}
	}

	out, err := os.CreateTemp("", fmt.Sprintf("*_%s_%s.pdf", canvasName, date))
	if err != nil {
		return "", &DashboardBuildError{Err: fmt.Errorf("failed to create output file: %w", err)}
	}
	if err := out.Close(); err != nil {
		return "", &DashboardBuildError{Err: err}
	}

	if err := pdf.OutputFileAndClose(out.Name()); err != nil {
		_ = os.Remove(out.Name())
		return "", &DashboardBuildError{Err: err}
	}

	logger.Debug().
		Str("tenant", c.tenant).
		Str("path", out.Name()).
		Msg("dashboard composed")

	return out.Name(), nil
}
