package chart

import (
	"context"
	"fmt"

	"github.com/de-tools/report-forge/pkg/models/domain"
	"github.com/rs/zerolog"
)

// TransferTypeTable renders the same three-series-by-twelve-month matrix the
// chart draws, as a banded table image instead of bars. It returns the path
// of the saved PNG artifact.
func (b *Builder) TransferTypeTable(ctx context.Context, series []domain.ChartSeries) (string, error) {
	logger := zerolog.Ctx(ctx)

	if len(series) != domain.ChartSeriesCount {
		return "", &TransferTableBuildError{
			Reason: fmt.Sprintf("want exactly %d series, got %d", domain.ChartSeriesCount, len(series)),
		}
	}

	rows := make([][]string, 0, len(series))
	for _, sr := range series {
		row := make([]string, 0, domain.MonthCount)
		for _, v := range sr.Values {
			row = append(row, formatValue(v))
		}
		rows = append(rows, row)
	}

	s := NewSurface(b.settings.StripWidth, b.settings.StripHeight)
	defer s.Close()

	err := drawTableImage(s, tableImage{
		rows:     rows,
		palette:  seriesPalette,
		fontSize: 10,
	})
	if err != nil {
		return "", &TransferTableBuildError{Reason: "drawing failed", Err: err}
	}

	path, err := tempArtifact(fmt.Sprintf("*_%s_TransferTypeTable.png", b.tenant))
	if err != nil {
		return "", &TransferTableBuildError{Reason: "artifact file", Err: err}
	}
	if err := s.Save(path); err != nil {
		return "", &TransferTableBuildError{Reason: "figure save", Err: err}
	}

	logger.Debug().Str("path", path).Msg("transfer type table rendered")
	return path, nil
}
