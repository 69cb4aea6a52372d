package adapters

import (
	"testing"

	"github.com/de-tools/report-forge/pkg/models/api"
	"github.com/de-tools/report-forge/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullMonths(base float64) map[string]float64 {
	m := make(map[string]float64, domain.MonthCount)
	for i, name := range domain.MonthAbbreviations {
		m[name] = base + float64(i)
	}
	return m
}

func TestMapApiChartSeriesToDomain(t *testing.T) {
	s, err := MapApiChartSeriesToDomain(api.ChartSeries{Label: "Clear", Months: fullMonths(5)})
	require.NoError(t, err)

	assert.Equal(t, "Clear", s.Label)
	assert.Equal(t, 5.0, s.Values[0])
	assert.Equal(t, 16.0, s.Values[11])
}

func TestMapApiChartSeriesToDomain_MissingMonth(t *testing.T) {
	months := fullMonths(1)
	delete(months, "Sep")

	_, err := MapApiChartSeriesToDomain(api.ChartSeries{Label: "Clear", Months: months})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Sep")
}

func TestMapApiSchemeToDomain(t *testing.T) {
	scheme, err := MapApiSchemeToDomain(api.ColorScheme{
		HeaderBackground: "#4472C4",
		HeaderText:       "#FFFFFF",
		OddRow:           "#D9E1F2",
		EvenRow:          "#FFFFFF",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.MustHexColor("#4472C4"), scheme.HeaderBackground)

	_, err = MapApiSchemeToDomain(api.ColorScheme{HeaderBackground: "blue"})
	assert.Error(t, err)
}

func TestMapApiDashboardRequestToDomain(t *testing.T) {
	req := api.DashboardRequest{
		Tenant: "acme",
		CycleTimes: []api.ChartSeries{
			{Label: "Clear", Months: fullMonths(1)},
			{Label: "Elien", Months: fullMonths(2)},
			{Label: "Paper Lien", Months: fullMonths(3)},
		},
		Peers: []api.PeerRecord{
			{Peer: "peer-a", Months: map[string]string{"01": "1.0"}},
		},
		Users: api.Dataset{
			Columns: []string{"User", domain.CreatedYTDColumn},
			Rows:    [][]string{{"alice", "2"}},
		},
	}

	in, err := MapApiDashboardRequestToDomain(req)
	require.NoError(t, err)
	assert.Equal(t, "acme", in.Tenant)
	require.Len(t, in.CycleTimes, 3)
	assert.Equal(t, "Paper Lien", in.CycleTimes[2].Label)
	require.Len(t, in.Peers, 1)
	assert.Equal(t, "1.0", in.Peers[0].Months["01"])
}
