package grid

import (
	"errors"
	"fmt"
	"math"
)

// Default spacing and the tolerance used when matching stack columns.
const (
	DefaultSize    = 1.0
	DefaultEpsilon = 0.001
)

// ErrInvalidConfiguration is returned for non-positive grid parameters.
var ErrInvalidConfiguration = errors.New("invalid grid configuration")

// Snap returns the multiple of gridSize nearest to v.
// Ties resolve half-away-from-zero: Snap(0.5, 1) == 1, Snap(-0.5, 1) == -1.
// gridSize must be positive; use NewParams for validated configuration.
func Snap(v, gridSize float32) float32 {
	return float32(math.Round(float64(v/gridSize))) * gridSize
}

// Params holds the validated grid configuration shared by snapping and
// stack planning.
type Params struct {
	Size    float32
	Epsilon float32
}

// NewParams validates the grid spacing and column-matching tolerance.
func NewParams(size, epsilon float32) (Params, error) {
	if size <= 0 {
		return Params{}, fmt.Errorf("%w: grid size %v must be positive", ErrInvalidConfiguration, size)
	}
	if epsilon <= 0 {
		return Params{}, fmt.Errorf("%w: epsilon %v must be positive", ErrInvalidConfiguration, epsilon)
	}
	return Params{Size: size, Epsilon: epsilon}, nil
}

// DefaultParams returns the standard 1.0 grid.
func DefaultParams() Params {
	return Params{Size: DefaultSize, Epsilon: DefaultEpsilon}
}

// Snap quantizes v onto this grid.
func (p Params) Snap(v float32) float32 {
	return Snap(v, p.Size)
}
