package domain

// Dataset represents one tabular data source: an ordered set of named columns
// and the rows beneath them. The renderer treats it as read-only.
type Dataset struct {
	Columns []string
	Rows    [][]string
}

// Empty reports whether the dataset has no columns or no rows.
func (d Dataset) Empty() bool {
	return len(d.Columns) == 0 || len(d.Rows) == 0
}

// WellFormed reports whether every row has exactly one cell per column.
func (d Dataset) WellFormed() bool {
	for _, row := range d.Rows {
		if len(row) != len(d.Columns) {
			return false
		}
	}
	return true
}

// PageChrome describes the constant per-page decoration of a table document:
// two header lines, a logo and a footer line.
type PageChrome struct {
	Header1  string
	Header2  string
	Footer   string
	LogoPath string
}

// MonthCount is the fixed number of calendar-month categories used by every
// monthly series and table in a dashboard.
const MonthCount = 12

// MonthAbbreviations holds the fixed Jan-Dec category ordering.
var MonthAbbreviations = [MonthCount]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthKeys holds the two-digit month column keys used by peer records.
var MonthKeys = [MonthCount]string{
	"01", "02", "03", "04", "05", "06",
	"07", "08", "09", "10", "11", "12",
}

// ChartSeries is one labelled series of twelve monthly values, ordered Jan-Dec.
type ChartSeries struct {
	Label  string
	Values [MonthCount]float64
}

// ChartSeriesCount is the fixed number of series combined into one grouped
// bar chart, matching the transfer-type classification.
const ChartSeriesCount = 3

// PeerRecord holds one peer's monthly figures keyed by MonthKeys entries.
// Months missing from the map are rendered as a zero placeholder.
type PeerRecord struct {
	Peer   string
	Months map[string]string
}

// CreatedYTDColumn is the users-dataset column consulted when filtering out
// inactive rows before rendering the users table.
const CreatedYTDColumn = "# Created YTD"

// Rect is a placement rectangle on a composite canvas. The origin is the
// top-left corner of the canvas, in points.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// DashboardInput bundles the data sources for one dashboard build.
type DashboardInput struct {
	Tenant     string
	CycleTimes []ChartSeries
	Peers      []PeerRecord
	Users      Dataset
}
