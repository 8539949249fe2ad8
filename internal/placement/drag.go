package placement

import "blockdrop/internal/scene"

// DragSession is the transient state of one pointer drag: the block being
// moved, its height captured at pickup, and the offset between the initial
// pick-plane intersection and the block center.
type DragSession struct {
	block   *scene.Block
	fixedY  float32
	offsetX float32
	offsetZ float32
}

// Block returns the block this session is moving.
func (s *DragSession) Block() *scene.Block {
	return s.block
}

// PlaneHeight is the height of the horizontal plane drag motion is resolved
// against: the block's center height at pickup.
func (s *DragSession) PlaneHeight() float32 {
	return s.fixedY
}
