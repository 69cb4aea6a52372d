package chart

import (
	"context"
	"fmt"

	"github.com/de-tools/report-forge/pkg/models/domain"
	"github.com/rs/zerolog"
)

// zeroPlaceholder fills month columns missing from a peer record. The
// gap-fill is silent, never an error.
const zeroPlaceholder = "0.0"

// PeersTable pivots the peer comparison records into one row per peer with
// one column per month and renders them as a banded table image without a
// header row. It returns the path of the saved PNG artifact.
func (b *Builder) PeersTable(ctx context.Context, records []domain.PeerRecord) (string, error) {
	logger := zerolog.Ctx(ctx)

	rows, err := pivotPeers(records)
	if err != nil {
		return "", err
	}

	s := NewSurface(b.settings.StripWidth, b.settings.StripHeight)
	defer s.Close()

	err = drawTableImage(s, tableImage{
		rows:     rows,
		palette:  neutralPalette,
		fontSize: 10,
	})
	if err != nil {
		return "", &ListBuildError{Reason: err.Error()}
	}

	path, err := tempArtifact(fmt.Sprintf("*_%s_PeersTable.png", b.tenant))
	if err != nil {
		return "", &ListBuildError{Reason: err.Error()}
	}
	if err := s.Save(path); err != nil {
		return "", &ListBuildError{Reason: err.Error()}
	}

	logger.Debug().Str("path", path).Int("peers", len(rows)).Msg("peers table rendered")
	return path, nil
}

// pivotPeers flattens records into table rows in the fixed month-key column
// ordering. Missing months are gap-filled with a zero placeholder and month
// keys outside the fixed set are ignored; only a duplicate peer makes the
// records impossible to pivot.
func pivotPeers(records []domain.PeerRecord) ([][]string, error) {
	if len(records) == 0 {
		return nil, &ListBuildError{Reason: "no peer records"}
	}

	seen := make(map[string]struct{}, len(records))

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		if _, ok := seen[rec.Peer]; ok {
			return nil, &PivotError{Reason: fmt.Sprintf("duplicate peer %q", rec.Peer)}
		}
		seen[rec.Peer] = struct{}{}

		row := make([]string, 0, domain.MonthCount)
		for _, k := range domain.MonthKeys {
			v, ok := rec.Months[k]
			if !ok || v == "" {
				v = zeroPlaceholder
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	return rows, nil
}
