package adapters

import (
	"fmt"
	"maps"

	"github.com/de-tools/report-forge/pkg/models/api"
	"github.com/de-tools/report-forge/pkg/models/domain"
)

func MapApiDatasetToDomain(ds api.Dataset) domain.Dataset {
	return domain.Dataset{
		Columns: ds.Columns,
		Rows:    ds.Rows,
	}
}

func MapApiSchemeToDomain(s api.ColorScheme) (domain.ColorScheme, error) {
	var scheme domain.ColorScheme
	var err error

	if scheme.HeaderBackground, err = domain.ParseHexColor(s.HeaderBackground); err != nil {
		return domain.ColorScheme{}, fmt.Errorf("header_background: %w", err)
	}
	if scheme.HeaderText, err = domain.ParseHexColor(s.HeaderText); err != nil {
		return domain.ColorScheme{}, fmt.Errorf("header_text: %w", err)
	}
	if scheme.OddRow, err = domain.ParseHexColor(s.OddRow); err != nil {
		return domain.ColorScheme{}, fmt.Errorf("odd_row: %w", err)
	}
	if scheme.EvenRow, err = domain.ParseHexColor(s.EvenRow); err != nil {
		return domain.ColorScheme{}, fmt.Errorf("even_row: %w", err)
	}
	return scheme, nil
}

func MapApiChromeToDomain(c api.PageChrome) domain.PageChrome {
	return domain.PageChrome{
		Header1:  c.Header1,
		Header2:  c.Header2,
		Footer:   c.Footer,
		LogoPath: c.LogoPath,
	}
}

// MapApiChartSeriesToDomain resolves a month-keyed series into the fixed
// Jan-Dec ordering. Every month must be present; a series that does not
// decompose into twelve numeric values cannot be charted.
func MapApiChartSeriesToDomain(s api.ChartSeries) (domain.ChartSeries, error) {
	out := domain.ChartSeries{Label: s.Label}
	for i, month := range domain.MonthAbbreviations {
		v, ok := s.Months[month]
		if !ok {
			return domain.ChartSeries{}, fmt.Errorf("series %q is missing month %q", s.Label, month)
		}
		out.Values[i] = v
	}
	return out, nil
}

func MapApiPeerRecordToDomain(r api.PeerRecord) domain.PeerRecord {
	return domain.PeerRecord{
		Peer:   r.Peer,
		Months: maps.Clone(r.Months),
	}
}

func MapApiDashboardRequestToDomain(req api.DashboardRequest) (domain.DashboardInput, error) {
	in := domain.DashboardInput{
		Tenant: req.Tenant,
		Users:  MapApiDatasetToDomain(req.Users),
	}

	for _, s := range req.CycleTimes {
		series, err := MapApiChartSeriesToDomain(s)
		if err != nil {
			return domain.DashboardInput{}, err
		}
		in.CycleTimes = append(in.CycleTimes, series)
	}
	for _, p := range req.Peers {
		in.Peers = append(in.Peers, MapApiPeerRecordToDomain(p))
	}

	return in, nil
}
