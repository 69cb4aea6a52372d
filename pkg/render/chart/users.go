package chart

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/de-tools/report-forge/pkg/models/domain"
	"github.com/rs/zerolog"
)

// UsersTable filters out user rows whose created-year-to-date figure is zero
// and renders the remaining rows, header included, as a banded table image.
// It returns the path of the saved PNG artifact.
func (b *Builder) UsersTable(ctx context.Context, users domain.Dataset) (string, error) {
	logger := zerolog.Ctx(ctx)

	if users.Empty() || !users.WellFormed() {
		return "", &UsersTableBuildError{Reason: "users dataset is empty or malformed"}
	}

	ytdCol := -1
	for i, name := range users.Columns {
		if name == domain.CreatedYTDColumn {
			ytdCol = i
			break
		}
	}
	if ytdCol < 0 {
		return "", &UsersTableBuildError{
			Reason: fmt.Sprintf("users dataset has no %q column", domain.CreatedYTDColumn),
		}
	}

	rows := make([][]string, 0, len(users.Rows))
	for _, row := range users.Rows {
		if isZeroValue(row[ytdCol]) {
			continue
		}
		rows = append(rows, row)
	}

	s := NewSurface(b.settings.UsersWidth, b.settings.UsersHeight)
	defer s.Close()

	err := drawTableImage(s, tableImage{
		header:   users.Columns,
		rows:     rows,
		palette:  neutralPalette,
		fontSize: 8,
	})
	if err != nil {
		return "", &UsersTableBuildError{Reason: "drawing failed", Err: err}
	}

	path, err := tempArtifact(fmt.Sprintf("*_%s_UserTable.png", b.tenant))
	if err != nil {
		return "", &UsersTableBuildError{Reason: "artifact file", Err: err}
	}
	if err := s.Save(path); err != nil {
		return "", &UsersTableBuildError{Reason: "figure save", Err: err}
	}

	logger.Debug().
		Str("path", path).
		Int("rows", len(rows)).
		Msg("users table rendered")
	return path, nil
}

// isZeroValue reports whether a cell holds a numeric zero. Non-numeric cells
// are kept, mirroring how the source data treats them as active.
func isZeroValue(s string) bool {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return false
	}
	return v == 0
}
