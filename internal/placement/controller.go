package placement

import (
	"errors"
	"fmt"

	"blockdrop/internal/grid"
	"blockdrop/internal/scene"
)

// Drag state machine errors. Both are recoverable: the caller drops the
// offending input event and the scene is left unchanged.
var (
	ErrAlreadyDragging = errors.New("a drag session is already active")
	ErrStaleSession    = errors.New("drag session is not active")
)

// Controller resolves raw (x, z) placement requests into grid-aligned block
// positions and owns the Idle/Dragging state machine. At most one drag
// session is active at a time; a second BeginDrag is rejected explicitly
// rather than relying on the picker to miss during a drag.
type Controller struct {
	scene  *scene.SceneState
	params grid.Params
	active *DragSession
}

// NewController wires the controller to a scene using validated grid
// parameters.
func NewController(s *scene.SceneState, params grid.Params) *Controller {
	return &Controller{scene: s, params: params}
}

// Params returns the grid configuration the controller places against.
func (c *Controller) Params() grid.Params {
	return c.params
}

// Dragging reports whether a drag session is active.
func (c *Controller) Dragging() bool {
	return c.active != nil
}

// PlaceNew snaps the raw coordinates onto the grid, plans the stack height
// over the current registry, and appends a new block at the resolved
// position. The Nth block placed in a column always lands exactly atop the
// (N-1)th.
func (c *Controller) PlaceNew(rawX, rawZ float32) *scene.Block {
	x := c.params.Snap(rawX)
	z := c.params.Snap(rawZ)
	y := c.params.NextStackHeight(c.scene, x, z)
	return c.scene.Append(x, y, z)
}

// BeginDrag starts a drag session for the identified block. pointX/pointZ is
// the pick-plane intersection at press time; the offset to the block center
// is captured so the block does not jump to the cursor on pickup. The
// block's current height is fixed for the whole session.
func (c *Controller) BeginDrag(blockID int, pointX, pointZ float32) (*DragSession, error) {
	if c.active != nil {
		return nil, fmt.Errorf("%w: block %d", ErrAlreadyDragging, c.active.block.ID)
	}
	b, err := c.scene.ByID(blockID)
	if err != nil {
		return nil, err
	}
	c.active = &DragSession{
		block:   b,
		fixedY:  b.Y,
		offsetX: pointX - b.X,
		offsetZ: pointZ - b.Z,
	}
	return c.active, nil
}

// UpdateDrag moves the session's block to the grid cell under the incoming
// raw point, after subtracting the captured pick offset. Height never
// changes mid-drag; dragging does not re-stack or fall.
func (c *Controller) UpdateDrag(s *DragSession, rawX, rawZ float32) error {
	if s == nil || s != c.active {
		return ErrStaleSession
	}
	s.block.X = c.params.Snap(rawX - s.offsetX)
	s.block.Z = c.params.Snap(rawZ - s.offsetZ)
	s.block.Y = s.fixedY
	return nil
}

// EndDrag releases the session and returns the controller to idle. The stack
// planner is not re-run on release; a block dropped onto an occupied column
// keeps its captured height and may visually intersect the stack.
func (c *Controller) EndDrag(s *DragSession) error {
	if s == nil || s != c.active {
		return ErrStaleSession
	}
	c.active = nil
	return nil
}
