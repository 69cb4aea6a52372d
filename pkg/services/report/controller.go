// Package report orchestrates the two rendering pipelines: paginated table
// documents and composite tenant dashboards.
package report

import (
	"context"
	"fmt"
	"os"

	"github.com/de-tools/report-forge/pkg/models/domain"
	"github.com/de-tools/report-forge/pkg/render/chart"
	"github.com/de-tools/report-forge/pkg/render/dashboard"
	"github.com/de-tools/report-forge/pkg/render/table"
	"github.com/rs/zerolog"
)

// Generator is the service surface the transport layers depend on. Each call
// returns the path of a freshly generated document; ownership of the file
// passes to the caller.
type Generator interface {
	GenerateTableReport(
		ctx context.Context,
		ds domain.Dataset,
		scheme domain.ColorScheme,
		chrome domain.PageChrome,
	) (string, error)
	GenerateDashboard(ctx context.Context, in domain.DashboardInput) (string, error)
}

type Controller struct {
	renderer *table.Renderer
}

func NewController() *Controller {
	return &Controller{
		renderer: table.NewRenderer(table.DefaultSettings()),
	}
}

func (c *Controller) GenerateTableReport(
	ctx context.Context,
	ds domain.Dataset,
	scheme domain.ColorScheme,
	chrome domain.PageChrome,
) (string, error) {
	return c.renderer.Render(ctx, ds, scheme, chrome)
}

// GenerateDashboard builds the four artifacts and composes them onto one
// canvas. Intermediate artifacts are ephemeral and removed once the
// composition is done; the returned document is not.
func (c *Controller) GenerateDashboard(ctx context.Context, in domain.DashboardInput) (string, error) {
	logger := zerolog.Ctx(ctx)

	if in.Tenant == "" {
		return "", fmt.Errorf("dashboard input has no tenant")
	}

	builder := chart.NewBuilder(in.Tenant)

	chartPath, err := builder.CycleTimesChart(ctx, in.CycleTimes)
	if err != nil {
		return "", err
	}
	defer removeArtifact(logger, chartPath)

	peersPath, err := builder.PeersTable(ctx, in.Peers)
	if err != nil {
		return "", err
	}
	defer removeArtifact(logger, peersPath)

	transferPath, err := builder.TransferTypeTable(ctx, in.CycleTimes)
	if err != nil {
		return "", err
	}
	defer removeArtifact(logger, transferPath)

	usersPath, err := builder.UsersTable(ctx, in.Users)
	if err != nil {
		return "", err
	}
	defer removeArtifact(logger, usersPath)

	composer := dashboard.NewComposer(in.Tenant)
	return composer.Compose(ctx, chartPath, peersPath, transferPath, usersPath)
}

func removeArtifact(logger *zerolog.Logger, path string) {
	if err := os.Remove(path); err != nil {
		logger.Warn().Err(err).Str("path", path).Msg("failed to remove artifact")
	}
}
