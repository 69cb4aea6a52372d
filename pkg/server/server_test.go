package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/de-tools/report-forge/pkg/models/api"
	"github.com/de-tools/report-forge/pkg/models/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) GenerateTableReport(
	ctx context.Context,
	ds domain.Dataset,
	scheme domain.ColorScheme,
	chrome domain.PageChrome,
) (string, error) {
	args := m.Called(ctx, ds, scheme, chrome)
	return args.String(0), args.Error(1)
}

func (m *mockGenerator) GenerateDashboard(ctx context.Context, in domain.DashboardInput) (string, error) {
	args := m.Called(ctx, in)
	return args.String(0), args.Error(1)
}

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	doc := filepath.Join(t.TempDir(), "out.pdf")
	require.NoError(t, os.WriteFile(doc, []byte("%PDF-fake"), 0o600))

	gen := new(mockGenerator)
	gen.On("GenerateTableReport", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(doc, nil)

	webAPI := NewWebAPI(logger, Config{
		Addr:            ":8080",
		ShutdownTimeout: time.Second,
		Dependencies:    Dependencies{Generator: gen},
	})

	body := api.TableReportRequest{
		Dataset: api.Dataset{Columns: []string{"A"}, Rows: [][]string{{"1"}}},
		Scheme: api.ColorScheme{
			HeaderBackground: "#4472C4",
			HeaderText:       "#FFFFFF",
			OddRow:           "#D9E1F2",
			EvenRow:          "#FFFFFF",
		},
	}
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reports/table", &buf)
	rec := httptest.NewRecorder()
	webAPI.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF-fake", rec.Body.String())
	gen.AssertExpectations(t)
}

func TestWebAPI_UnknownRoute(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	webAPI := NewWebAPI(logger, Config{Dependencies: Dependencies{Generator: new(mockGenerator)}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reports", nil)
	rec := httptest.NewRecorder()
	webAPI.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
