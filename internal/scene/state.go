package scene

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotFound is returned when an operation references a block identifier
// that is not in the registry.
var ErrNotFound = errors.New("block not found")

// SceneState owns the block registry and the shared style flag. All mutation
// happens synchronously inside input-event handlers on the main thread; the
// render loop reads the registry once per frame and never writes it, so no
// locking is involved.
type SceneState struct {
	blocks []*Block
	nextID int
	style  BlockStyle
}

// NewSceneState returns an empty scene starting in the transparent preset.
func NewSceneState() *SceneState {
	return &SceneState{style: StyleTransparent}
}

// Append creates a block at the given center with a fresh identifier and the
// scene's current style, and inserts it at the end of the registry.
// Identifiers are monotonically assigned by a counter owned by the registry,
// independent of storage layout.
func (s *SceneState) Append(x, y, z float32) *Block {
	b := &Block{
		ID:    s.nextID,
		X:     x,
		Y:     y,
		Z:     z,
		Style: s.style,
	}
	if s.style == StyleOpaque {
		b.Hue = hueFor(b.ID)
	}
	s.nextID++
	s.blocks = append(s.blocks, b)
	return b
}

// ByID returns the block with the given identifier.
func (s *SceneState) ByID(id int) (*Block, error) {
	for _, b := range s.blocks {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
}

// Blocks returns the ordered block sequence. Callers must treat it as
// read-only; the slice is the registry's own storage.
func (s *SceneState) Blocks() []*Block {
	return s.blocks
}

// Len reports how many blocks have been placed.
func (s *SceneState) Len() int {
	return len(s.blocks)
}

// Style returns the current shared style flag.
func (s *SceneState) Style() BlockStyle {
	return s.style
}

// CountInColumn reports how many blocks occupy the column at (x, z),
// matching each coordinate within epsilon. Implements grid.ColumnCounter.
func (s *SceneState) CountInColumn(x, z, epsilon float32) int {
	count := 0
	for _, b := range s.blocks {
		if abs32(b.X-x) <= epsilon && abs32(b.Z-z) <= epsilon {
			count++
		}
	}
	return count
}

// ToggleStyle flips the shared style flag and retags every block. The opaque
// preset also assigns each block its deterministic per-identifier hue; the
// transparent preset has no per-block variation, so hue resets to zero.
// Toggling twice restores the original tag and hue assignment exactly.
func (s *SceneState) ToggleStyle() {
	if s.style == StyleTransparent {
		s.style = StyleOpaque
	} else {
		s.style = StyleTransparent
	}
	for _, b := range s.blocks {
		b.Style = s.style
		if s.style == StyleOpaque {
			b.Hue = hueFor(b.ID)
		} else {
			b.Hue = 0
		}
	}
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
