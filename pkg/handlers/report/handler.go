package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/de-tools/report-forge/pkg/adapters"
	"github.com/de-tools/report-forge/pkg/models/api"
	"github.com/de-tools/report-forge/pkg/render/chart"
	"github.com/de-tools/report-forge/pkg/render/table"
	"github.com/de-tools/report-forge/pkg/services/report"
	"github.com/rs/zerolog"
)

type Handler struct {
	generator report.Generator
}

func NewHandler(generator report.Generator) *Handler {
	return &Handler{generator: generator}
}

// RenderTable generates a paginated table document and streams it back.
func (h *Handler) RenderTable(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.TableReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	scheme, err := adapters.MapApiSchemeToDomain(req.Scheme)
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid color scheme: %v", err), http.StatusBadRequest)
		return
	}

	path, err := h.generator.GenerateTableReport(ctx,
		adapters.MapApiDatasetToDomain(req.Dataset), scheme,
		adapters.MapApiChromeToDomain(req.Chrome))
	if err != nil {
		logger.Error().Err(err).Msg("failed to render table report")
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	h.serveDocument(w, logger, path, "report.pdf")
}

// RenderDashboard generates a composite dashboard document and streams it back.
func (h *Handler) RenderDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.DashboardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	in, err := adapters.MapApiDashboardRequestToDomain(req)
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid dashboard input: %v", err), http.StatusBadRequest)
		return
	}

	path, err := h.generator.GenerateDashboard(ctx, in)
	if err != nil {
		logger.Error().Err(err).Str("tenant", req.Tenant).Msg("failed to render dashboard")
		http.Error(w, err.Error(), statusForError(err))
		return
	}

	h.serveDocument(w, logger, path, "dashboard.pdf")
}

// serveDocument streams a generated document and removes the ephemeral file.
func (h *Handler) serveDocument(w http.ResponseWriter, logger *zerolog.Logger, path, name string) {
	defer func() {
		if err := os.Remove(path); err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("failed to remove document")
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("failed to read generated document")
		http.Error(w, "failed to read generated document", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	if _, err := w.Write(data); err != nil {
		logger.Error().Err(err).Msg("failed to write response")
	}
}

// statusForError maps input validation failures to 400; build failures stay 500.
func statusForError(err error) int {
	var (
		invalidDataset *table.InvalidDatasetError
		missingLogo    *table.MissingResourceError
		badChart       *chart.ChartBuildError
		badPivot       *chart.PivotError
		badList        *chart.ListBuildError
		badTransfer    *chart.TransferTableBuildError
		badUsers       *chart.UsersTableBuildError
	)
	switch {
	case errors.As(err, &invalidDataset),
		errors.As(err, &missingLogo),
		errors.As(err, &badChart),
		errors.As(err, &badPivot),
		errors.As(err, &badList),
		errors.As(err, &badTransfer),
		errors.As(err, &badUsers):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
