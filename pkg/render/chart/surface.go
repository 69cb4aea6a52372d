package chart

import (
	"errors"
	"fmt"
	"os"

	"github.com/fogleman/gg"
)

// ErrSurfaceReleased is returned when a surface is used after Close.
var ErrSurfaceReleased = errors.New("drawing surface already released")

// Surface is the scoped drawing resource behind one artifact. Every builder
// acquires a fresh surface and must release it on every exit path; a released
// surface refuses further use.
type Surface struct {
	dc     *gg.Context
	closed bool
}

// NewSurface returns a white-cleared raster surface of the given size.
func NewSurface(width, height int) *Surface {
	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	return &Surface{dc: dc}
}

// Save encodes the surface to the given path as PNG.
func (s *Surface) Save(path string) error {
	if s.closed {
		return ErrSurfaceReleased
	}
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save figure to %q: %w", path, err)
	}
	return nil
}

// Close releases the surface. Safe to call more than once.
func (s *Surface) Close() {
	s.dc = nil
	s.closed = true
}

// context returns the underlying drawing context for internal use.
func (s *Surface) context() (*gg.Context, error) {
	if s.closed {
		return nil, ErrSurfaceReleased
	}
	return s.dc, nil
}

// tempArtifact creates the ephemeral output file for one artifact and returns
// its path. The file itself is written later by Surface.Save.
func tempArtifact(pattern string) (string, error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("failed to create artifact file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return f.Name(), nil
}
