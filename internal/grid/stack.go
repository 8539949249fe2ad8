package grid

// ColumnCounter is the registry contract the stack planner reads through:
// how many blocks already occupy the column at (x, z), matching coordinates
// within epsilon to absorb float drift from repeated snapping.
type ColumnCounter interface {
	CountInColumn(x, z, epsilon float32) int
}

// NextStackHeight returns the center height for the next block placed in the
// column at (x, z): count*gridSize + gridSize/2, so centers land at 0.5, 1.5,
// 2.5... on a unit grid. Read-only over the registry; the caller inserts the
// block afterward. An empty column yields gridSize/2.
func NextStackHeight(reg ColumnCounter, x, z, gridSize, epsilon float32) float32 {
	count := reg.CountInColumn(x, z, epsilon)
	return float32(count)*gridSize + gridSize/2
}

// NextStackHeight plans against this grid's size and epsilon.
func (p Params) NextStackHeight(reg ColumnCounter, x, z float32) float32 {
	return NextStackHeight(reg, x, z, p.Size, p.Epsilon)
}
