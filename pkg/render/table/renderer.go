// Package table renders a tabular dataset into a paginated PDF document:
// a styled header row repeated on every page, banded data rows, a full cell
// grid and constant header/footer chrome on each page.
package table

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/de-tools/report-forge/pkg/models/domain"
	"github.com/de-tools/report-forge/pkg/render/layout"
	"github.com/jung-kurt/gofpdf"
	"github.com/rs/zerolog"
)

// headerInk is the fixed color of the two chrome header lines.
var headerInk = domain.MustHexColor("#002060")

// Settings contains the fixed page geometry of a table document.
// The page is deliberately oversized for wide tabular data and carries no
// margins; the chrome supplies its own positioning.
type Settings struct {
	// PageWidth and PageHeight are the page dimensions in points.
	PageWidth  float64
	PageHeight float64
	// RowHeight is the uniform height of every table row, header included.
	RowHeight float64
	// ChromeHeight is the vertical band at the top of each page reserved
	// for the header lines and the logo.
	ChromeHeight float64
	// BottomMargin keeps the last row of a page clear of the footer line.
	BottomMargin float64
	// FontFamily is one of the PDF core font families.
	FontFamily     string
	HeaderFontSize float64
	BodyFontSize   float64

	// noCompress leaves content streams uncompressed so tests can assert
	// on the drawn text.
	noCompress bool
}

// DefaultSettings returns the geometry every production table document uses:
// a 15in x 20in page, 20pt rows and a 1.25in chrome band.
func DefaultSettings() Settings {
	return Settings{
		PageWidth:      15 * layout.Inch,
		PageHeight:     20 * layout.Inch,
		RowHeight:      20,
		ChromeHeight:   1.25 * layout.Inch,
		BottomMargin:   0.25 * layout.Inch,
		FontFamily:     "Helvetica",
		HeaderFontSize: 12,
		BodyFontSize:   10,
	}
}

// rowsPerPage is the number of data rows that fit below the repeated header
// row on one page.
func (s Settings) rowsPerPage() int {
	usable := s.PageHeight - s.ChromeHeight - s.BottomMargin - s.RowHeight
	n := int(usable / s.RowHeight)
	if n < 1 {
		n = 1
	}
	return n
}

// PageCount returns the number of pages a document with the given data-row
// count occupies.
func (s Settings) PageCount(rowCount int) int {
	if rowCount <= 0 {
		return 1
	}
	return int(math.Ceil(float64(rowCount) / float64(s.rowsPerPage())))
}

// Renderer builds paginated table documents. It holds no state between
// invocations; each Render call produces a fresh ephemeral file whose
// ownership passes to the caller.
type Renderer struct {
	settings Settings
}

func NewRenderer(settings Settings) *Renderer {
	return &Renderer{settings: settings}
}

// Render lays out the dataset as a banded table with the given color scheme
// and per-page chrome and writes it to an ephemeral PDF file, returning the
// file path. No file is left behind on failure.
func (r *Renderer) Render(
	ctx context.Context,
	ds domain.Dataset,
	scheme domain.ColorScheme,
	chrome domain.PageChrome,
) (string, error) {
	logger := zerolog.Ctx(ctx)
	s := r.settings

	if ds.Empty() {
		return "", &InvalidDatasetError{Reason: "dataset has no columns or no rows"}
	}
	if !ds.WellFormed() {
		return "", &InvalidDatasetError{Reason: "row length does not match column count"}
	}
	if _, err := os.Stat(chrome.LogoPath); err != nil {
		return "", &MissingResourceError{Path: chrome.LogoPath, Err: err}
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: s.PageWidth, Ht: s.PageHeight},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCellMargin(4)
	if s.noCompress {
		pdf.SetCompression(false)
	}

	// Chrome callbacks must not panic past the renderer; the first drawing
	// failure is captured here with the element that caused it.
	var chromeErr error
	pdf.SetHeaderFunc(func() {
		r.drawHeaderChrome(pdf, chrome)
		if pdf.Err() && chromeErr == nil {
			chromeErr = &ChromeRenderError{Element: "header", Err: pdf.Error()}
		}
	})
	pdf.SetFooterFunc(func() {
		r.drawFooterChrome(pdf, chrome)
		if pdf.Err() && chromeErr == nil {
			chromeErr = &ChromeRenderError{Element: "footer", Err: pdf.Error()}
		}
	})

	// Column widths follow the widest cell per column. Widths are measured
	// with the bold header face so no body cell can overflow its column.
	pdf.SetFont(s.FontFamily, "B", s.HeaderFontSize)
	widths := layout.ResolveColumnWidths(
		layout.MeasureFunc(pdf.GetStringWidth), ds, s.PageWidth)

	pdf.SetDrawColor(0, 0, 0)
	pdf.AddPage()
	r.drawHeaderRow(pdf, ds.Columns, widths, scheme)

	bottom := s.PageHeight - s.BottomMargin
	for i, row := range ds.Rows {
		if pdf.GetY()+s.RowHeight > bottom {
			pdf.AddPage()
			r.drawHeaderRow(pdf, ds.Columns, widths, scheme)
		}
		r.drawDataRow(pdf, row, widths, layout.BandColor(i+1, scheme))
	}

	out, err := os.CreateTemp("", "report_*.pdf")
	if err != nil {
		return "", &DocumentBuildError{Err: fmt.Errorf("failed to create output file: %w", err)}
	}
	if err := out.Close(); err != nil {
		return "", &DocumentBuildError{Err: err}
	}

	if err := pdf.OutputFileAndClose(out.Name()); err != nil {
		_ = os.Remove(out.Name())
		if chromeErr != nil {
			return "", chromeErr
		}
		return "", &DocumentBuildError{Err: err}
	}
	if chromeErr != nil {
		_ = os.Remove(out.Name())
		return "", chromeErr
	}

	logger.Debug().
		Str("path", out.Name()).
		Int("rows", len(ds.Rows)).
		Int("pages", s.PageCount(len(ds.Rows))).
		Msg("table document rendered")

	return out.Name(), nil
}

func (r *Renderer) drawHeaderChrome(pdf *gofpdf.Fpdf, chrome domain.PageChrome) {
	s := r.settings

	pdf.SetFont(s.FontFamily, "B", 18)
	pdf.SetTextColor(headerInk.RGB())

	w1 := pdf.GetStringWidth(chrome.Header1)
	pdf.Text(layout.CenterX(s.PageWidth, w1), 0.70*layout.Inch, chrome.Header1)

	w2 := pdf.GetStringWidth(chrome.Header2)
	pdf.Text(layout.CenterX(s.PageWidth, w2), 1.05*layout.Inch, chrome.Header2)

	pdf.ImageOptions(chrome.LogoPath,
		1.25*layout.Inch, 0.30*layout.Inch, 2.0*layout.Inch, 1.0*layout.Inch,
		false, gofpdf.ImageOptions{}, 0, "")

	// The table frame starts below the chrome band on every page.
	pdf.SetY(s.ChromeHeight)
}

func (r *Renderer) drawFooterChrome(pdf *gofpdf.Fpdf, chrome domain.PageChrome) {
	s := r.settings

	pdf.SetFont(s.FontFamily, "B", 10)
	pdf.SetTextColor(0, 0, 0)

	w := pdf.GetStringWidth(chrome.Footer)
	pdf.Text(layout.CenterX(s.PageWidth, w), s.PageHeight-0.10*layout.Inch, chrome.Footer)
}

func (r *Renderer) drawHeaderRow(
	pdf *gofpdf.Fpdf,
	columns []string,
	widths []float64,
	scheme domain.ColorScheme,
) {
	s := r.settings

	pdf.SetFont(s.FontFamily, "B", s.HeaderFontSize)
	pdf.SetFillColor(scheme.HeaderBackground.RGB())
	pdf.SetTextColor(scheme.HeaderText.RGB())

	pdf.SetX(0)
	for i, name := range columns {
		pdf.CellFormat(widths[i], s.RowHeight, name, "1", 0, "CM", true, 0, "")
	}
	pdf.Ln(s.RowHeight)
}

func (r *Renderer) drawDataRow(
	pdf *gofpdf.Fpdf,
	row []string,
	widths []float64,
	band domain.Color,
) {
	s := r.settings

	pdf.SetFont(s.FontFamily, "", s.BodyFontSize)
	pdf.SetFillColor(band.RGB())
	pdf.SetTextColor(0, 0, 0)

	pdf.SetX(0)
	for i, cell := range row {
		pdf.CellFormat(widths[i], s.RowHeight, cell, "1", 0, "LM", true, 0, "")
	}
	pdf.Ln(s.RowHeight)
}
