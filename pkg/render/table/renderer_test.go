package table

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/de-tools/report-forge/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScheme() domain.ColorScheme {
	return domain.ColorScheme{
		HeaderBackground: domain.MustHexColor("#4472C4"),
		HeaderText:       domain.MustHexColor("#FFFFFF"),
		OddRow:           domain.MustHexColor("#D9E1F2"),
		EvenRow:          domain.MustHexColor("#FFFFFF"),
	}
}

func writeTestLogo(t *testing.T) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 40; x++ {
			img.Set(x, y, color.RGBA{R: 0x00, G: 0x20, B: 0x60, A: 0xFF})
		}
	}

	path := filepath.Join(t.TempDir(), "logo.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func testChrome(t *testing.T) domain.PageChrome {
	return domain.PageChrome{
		Header1:  "Sample Report",
		Header2:  "Generated on July 18, 2023",
		Footer:   "This is the footer.",
		LogoPath: writeTestLogo(t),
	}
}

func datasetWithRows(n int) domain.Dataset {
	ds := domain.Dataset{Columns: []string{"Name", "Age", "City"}}
	for i := 0; i < n; i++ {
		ds.Rows = append(ds.Rows, []string{
			fmt.Sprintf("Person %d", i+1),
			fmt.Sprintf("%d", 20+i%50),
			"Springfield",
		})
	}
	return ds
}

// pageObjects counts the page objects in a rendered PDF. Every page carries
// one "/Type /Page" entry; the page tree root adds one "/Type /Pages".
func pageObjects(t *testing.T, path string) int {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return bytes.Count(data, []byte("/Type /Page")) - bytes.Count(data, []byte("/Type /Pages"))
}

func TestRender_SinglePage(t *testing.T) {
	r := NewRenderer(DefaultSettings())

	path, err := r.Render(context.Background(), datasetWithRows(3), testScheme(), testChrome(t))
	require.NoError(t, err)
	defer func() { _ = os.Remove(path) }()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output should be a PDF")
	assert.Equal(t, 1, pageObjects(t, path))
}

func TestRender_PaginationMonotonic(t *testing.T) {
	r := NewRenderer(DefaultSettings())
	capacity := DefaultSettings().rowsPerPage()

	cases := []struct {
		rows      int
		wantPages int
	}{
		{rows: 1, wantPages: 1},
		{rows: capacity, wantPages: 1},
		{rows: capacity + 1, wantPages: 2},
		{rows: 3*capacity + 1, wantPages: 4},
	}

	prevPages := 0
	for _, tc := range cases {
		path, err := r.Render(context.Background(), datasetWithRows(tc.rows), testScheme(), testChrome(t))
		require.NoError(t, err, "rows=%d", tc.rows)

		pages := pageObjects(t, path)
		_ = os.Remove(path)

		assert.Equal(t, tc.wantPages, pages, "rows=%d", tc.rows)
		assert.Equal(t, DefaultSettings().PageCount(tc.rows), pages, "rows=%d", tc.rows)
		assert.GreaterOrEqual(t, pages, prevPages, "page count must grow with row count")
		prevPages = pages
	}
}

func TestRender_HeaderRowOnEveryPage(t *testing.T) {
	s := DefaultSettings()
	s.noCompress = true
	r := NewRenderer(s)

	rows := 2*s.rowsPerPage() + 1
	path, err := r.Render(context.Background(), datasetWithRows(rows), testScheme(), testChrome(t))
	require.NoError(t, err)
	defer func() { _ = os.Remove(path) }()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	pages := pageObjects(t, path)
	require.Equal(t, 3, pages)

	// With uncompressed content streams every drawn string is visible as a
	// literal; each page must re-draw the header cells once.
	for _, col := range []string{"Name", "Age", "City"} {
		assert.Equal(t, pages, bytes.Count(data, []byte("("+col+")")),
			"header cell %q must appear once per page", col)
	}
}

func TestRender_EmptyDataset(t *testing.T) {
	r := NewRenderer(DefaultSettings())

	_, err := r.Render(context.Background(), domain.Dataset{}, testScheme(), testChrome(t))

	var invalid *InvalidDatasetError
	require.ErrorAs(t, err, &invalid)
}

func TestRender_MalformedRow(t *testing.T) {
	r := NewRenderer(DefaultSettings())
	ds := domain.Dataset{
		Columns: []string{"A", "B"},
		Rows:    [][]string{{"only one cell"}},
	}

	_, err := r.Render(context.Background(), ds, testScheme(), testChrome(t))

	var invalid *InvalidDatasetError
	require.ErrorAs(t, err, &invalid)
	assert.Contains(t, invalid.Reason, "column count")
}

func TestRender_MissingLogo(t *testing.T) {
	r := NewRenderer(DefaultSettings())
	chrome := domain.PageChrome{
		Header1:  "h1",
		Header2:  "h2",
		Footer:   "f",
		LogoPath: filepath.Join(t.TempDir(), "nope.png"),
	}

	_, err := r.Render(context.Background(), datasetWithRows(2), testScheme(), chrome)

	var missing *MissingResourceError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, chrome.LogoPath, missing.Path)
}

func TestRender_CorruptLogoIsChromeError(t *testing.T) {
	// A file that exists but is not an image fails inside the header
	// callback, which must surface as a chrome error without leaving a
	// partial document behind.
	logo := filepath.Join(t.TempDir(), "logo.png")
	require.NoError(t, os.WriteFile(logo, []byte("not a png"), 0o600))

	r := NewRenderer(DefaultSettings())
	chrome := domain.PageChrome{Header1: "h1", Header2: "h2", Footer: "f", LogoPath: logo}

	path, err := r.Render(context.Background(), datasetWithRows(2), testScheme(), chrome)

	var chromeErr *ChromeRenderError
	require.ErrorAs(t, err, &chromeErr)
	assert.Equal(t, "header", chromeErr.Element)
	assert.Empty(t, path)
}

func TestSettings_PageCount(t *testing.T) {
	s := DefaultSettings()
	capacity := s.rowsPerPage()

	assert.Equal(t, 1, s.PageCount(0))
	assert.Equal(t, 1, s.PageCount(capacity))
	assert.Equal(t, 2, s.PageCount(capacity+1))
	assert.Equal(t, 3, s.PageCount(2*capacity+1))
}
