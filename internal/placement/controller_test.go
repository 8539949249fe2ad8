package placement

import (
	"errors"
	"testing"

	"blockdrop/internal/grid"
	"blockdrop/internal/scene"
)

func newTestController(t *testing.T) (*Controller, *scene.SceneState) {
	t.Helper()
	params, err := grid.NewParams(1, 0.001)
	if err != nil {
		t.Fatalf("grid params: %v", err)
	}
	s := scene.NewSceneState()
	return NewController(s, params), s
}

func TestPlaceNewSnapsToGrid(t *testing.T) {
	c, _ := newTestController(t)

	// Empty registry: the first block in a column lands at half height.
	b := c.PlaceNew(0.3, -0.4)
	if b.X != 0 || b.Y != 0.5 || b.Z != 0 {
		t.Errorf("PlaceNew(0.3, -0.4) = (%v, %v, %v), want (0, 0.5, 0)", b.X, b.Y, b.Z)
	}
	if b.ID != 0 {
		t.Errorf("first block ID = %d, want 0", b.ID)
	}
}

func TestPlaceNewStacksOnOccupiedColumn(t *testing.T) {
	c, _ := newTestController(t)

	c.PlaceNew(0, 0)
	b := c.PlaceNew(0.1, 0.1)
	if b.X != 0 || b.Y != 1.5 || b.Z != 0 {
		t.Errorf("second block = (%v, %v, %v), want (0, 1.5, 0)", b.X, b.Y, b.Z)
	}
}

func TestStackingDeterminism(t *testing.T) {
	c, _ := newTestController(t)

	const n = 6
	for i := 0; i < n; i++ {
		b := c.PlaceNew(2, 3)
		want := float32(i) + 0.5
		if b.Y != want {
			t.Errorf("block %d in column: y = %v, want %v", i, b.Y, want)
		}
	}
}

func TestColumnIsolation(t *testing.T) {
	c, _ := newTestController(t)

	c.PlaceNew(0, 0)
	c.PlaceNew(0, 0)
	c.PlaceNew(5, 5)

	// The distant column is unaffected by the stack at the origin.
	b := c.PlaceNew(5, 5)
	if b.Y != 1.5 {
		t.Errorf("second block at (5,5): y = %v, want 1.5", b.Y)
	}
	// And vice versa.
	b = c.PlaceNew(0, 0)
	if b.Y != 2.5 {
		t.Errorf("third block at origin: y = %v, want 2.5", b.Y)
	}
}

func TestDragMovesAtFixedHeight(t *testing.T) {
	c, _ := newTestController(t)
	placed := c.PlaceNew(0, 0) // (0, 0.5, 0)

	sess, err := c.BeginDrag(placed.ID, 0, 0)
	if err != nil {
		t.Fatalf("BeginDrag: %v", err)
	}

	if err := c.UpdateDrag(sess, 1.6, 2.4); err != nil {
		t.Fatalf("UpdateDrag: %v", err)
	}
	if placed.X != 2 || placed.Y != 0.5 || placed.Z != 2 {
		t.Errorf("dragged block = (%v, %v, %v), want (2, 0.5, 2)", placed.X, placed.Y, placed.Z)
	}

	if err := c.EndDrag(sess); err != nil {
		t.Fatalf("EndDrag: %v", err)
	}
	if c.Dragging() {
		t.Errorf("controller still dragging after EndDrag")
	}
}

func TestDragOffsetPreventsJump(t *testing.T) {
	c, _ := newTestController(t)
	placed := c.PlaceNew(0, 0)

	// Picked up slightly off-center: moving the pointer back to the pick
	// point leaves the block where it was.
	sess, err := c.BeginDrag(placed.ID, 0.2, -0.1)
	if err != nil {
		t.Fatalf("BeginDrag: %v", err)
	}
	if err := c.UpdateDrag(sess, 0.2, -0.1); err != nil {
		t.Fatalf("UpdateDrag: %v", err)
	}
	if placed.X != 0 || placed.Z != 0 {
		t.Errorf("block jumped to (%v, %v) on pickup", placed.X, placed.Z)
	}
}

func TestBeginDragUnknownID(t *testing.T) {
	c, _ := newTestController(t)

	if _, err := c.BeginDrag(42, 0, 0); !errors.Is(err, scene.ErrNotFound) {
		t.Errorf("BeginDrag(42) err = %v, want ErrNotFound", err)
	}
	if c.Dragging() {
		t.Errorf("failed BeginDrag left controller dragging")
	}
}

func TestBeginDragWhileDragging(t *testing.T) {
	c, _ := newTestController(t)
	a := c.PlaceNew(0, 0)
	b := c.PlaceNew(3, 3)

	sess, err := c.BeginDrag(a.ID, 0, 0)
	if err != nil {
		t.Fatalf("first BeginDrag: %v", err)
	}

	if _, err := c.BeginDrag(b.ID, 3, 3); !errors.Is(err, ErrAlreadyDragging) {
		t.Errorf("second BeginDrag err = %v, want ErrAlreadyDragging", err)
	}

	// The original session is still the active one.
	if err := c.UpdateDrag(sess, 1, 1); err != nil {
		t.Errorf("UpdateDrag on original session failed: %v", err)
	}
}

func TestStaleSessionRejected(t *testing.T) {
	c, _ := newTestController(t)
	placed := c.PlaceNew(0, 0)

	sess, err := c.BeginDrag(placed.ID, 0, 0)
	if err != nil {
		t.Fatalf("BeginDrag: %v", err)
	}
	if err := c.EndDrag(sess); err != nil {
		t.Fatalf("EndDrag: %v", err)
	}

	if err := c.UpdateDrag(sess, 1, 1); !errors.Is(err, ErrStaleSession) {
		t.Errorf("UpdateDrag on ended session err = %v, want ErrStaleSession", err)
	}
	if err := c.EndDrag(sess); !errors.Is(err, ErrStaleSession) {
		t.Errorf("double EndDrag err = %v, want ErrStaleSession", err)
	}
	if err := c.UpdateDrag(nil, 1, 1); !errors.Is(err, ErrStaleSession) {
		t.Errorf("UpdateDrag(nil) err = %v, want ErrStaleSession", err)
	}
}

func TestEndDragDoesNotRestack(t *testing.T) {
	c, _ := newTestController(t)
	c.PlaceNew(2, 2) // occupies the target column at y 0.5
	moved := c.PlaceNew(0, 0)

	sess, err := c.BeginDrag(moved.ID, 0, 0)
	if err != nil {
		t.Fatalf("BeginDrag: %v", err)
	}
	if err := c.UpdateDrag(sess, 2, 2); err != nil {
		t.Fatalf("UpdateDrag: %v", err)
	}
	if err := c.EndDrag(sess); err != nil {
		t.Fatalf("EndDrag: %v", err)
	}

	// Release keeps the captured height even though the column is occupied.
	if moved.X != 2 || moved.Y != 0.5 || moved.Z != 2 {
		t.Errorf("released block = (%v, %v, %v), want (2, 0.5, 2)", moved.X, moved.Y, moved.Z)
	}
}

func TestDraggedBlockKeepsColumnMembership(t *testing.T) {
	c, s := newTestController(t)
	moved := c.PlaceNew(0, 0)

	sess, _ := c.BeginDrag(moved.ID, 0, 0)
	_ = c.UpdateDrag(sess, 4, 4)
	_ = c.EndDrag(sess)

	// Placement over the vacated column starts from the ground again, and
	// the new column counts the moved block.
	if b := c.PlaceNew(0, 0); b.Y != 0.5 {
		t.Errorf("vacated column height = %v, want 0.5", b.Y)
	}
	if got := s.CountInColumn(4, 4, 0.001); got != 1 {
		t.Errorf("destination column count = %d, want 1", got)
	}
}
