package picking

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"blockdrop/internal/scene"
)

// BlockHit is the nearest block struck by a ray.
type BlockHit struct {
	Block    *scene.Block
	Point    mgl32.Vec3
	Distance float32
}

// NearestBlock tests the ray against the axis-aligned cube of every block
// (edge length size, centered on the block position) and returns the nearest
// hit. Returns false when the ray misses all blocks.
func NearestBlock(r Ray, blocks []*scene.Block, size float32) (BlockHit, bool) {
	best := BlockHit{Distance: float32(math.Inf(1))}
	half := size / 2

	for _, b := range blocks {
		min := mgl32.Vec3{b.X - half, b.Y - half, b.Z - half}
		max := mgl32.Vec3{b.X + half, b.Y + half, b.Z + half}
		if t, ok := rayAABB(r, min, max); ok && t < best.Distance {
			best = BlockHit{
				Block:    b,
				Point:    r.Origin.Add(r.Dir.Mul(t)),
				Distance: t,
			}
		}
	}

	if best.Block == nil {
		return BlockHit{}, false
	}
	return best, true
}

// rayAABB is the slab test: the entry distance along the ray into the box,
// or false if the ray misses or starts past it.
func rayAABB(r Ray, min, max mgl32.Vec3) (float32, bool) {
	tMin := float32(math.Inf(-1))
	tMax := float32(math.Inf(1))

	for axis := 0; axis < 3; axis++ {
		origin := r.Origin[axis]
		dir := r.Dir[axis]

		if dir == 0 {
			if origin < min[axis] || origin > max[axis] {
				return 0, false
			}
			continue
		}

		t1 := (min[axis] - origin) / dir
		t2 := (max[axis] - origin) / dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, false
		}
	}

	if tMax < 0 {
		return 0, false
	}
	if tMin < 0 {
		// Ray starts inside the box.
		return 0, true
	}
	return tMin, true
}
