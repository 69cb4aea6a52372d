package api

// Dataset is the wire form of one tabular data source.
type Dataset struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// ColorScheme carries the table colors as hex strings.
type ColorScheme struct {
	HeaderBackground string `json:"header_background"`
	HeaderText       string `json:"header_text"`
	OddRow           string `json:"odd_row"`
	EvenRow          string `json:"even_row"`
}

type PageChrome struct {
	Header1  string `json:"header1"`
	Header2  string `json:"header2"`
	Footer   string `json:"footer"`
	LogoPath string `json:"logo_path"`
}

// TableReportRequest asks for one paginated table document.
type TableReportRequest struct {
	Dataset Dataset     `json:"dataset"`
	Scheme  ColorScheme `json:"scheme"`
	Chrome  PageChrome  `json:"chrome"`
}

// ChartSeries is one labelled monthly series keyed by month abbreviation
// ("Jan".."Dec").
type ChartSeries struct {
	Label  string             `json:"label"`
	Months map[string]float64 `json:"months"`
}

// PeerRecord holds one peer's figures keyed by two-digit month ("01".."12").
type PeerRecord struct {
	Peer   string            `json:"peer"`
	Months map[string]string `json:"months"`
}

// DashboardRequest asks for one composite dashboard document.
type DashboardRequest struct {
	Tenant     string        `json:"tenant"`
	CycleTimes []ChartSeries `json:"cycle_times"`
	Peers      []PeerRecord  `json:"peers"`
	Users      Dataset       `json:"users"`
}
