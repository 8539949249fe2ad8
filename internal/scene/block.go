package scene

import "github.com/go-gl/mathgl/mgl32"

// BlockStyle selects one of the two material presets. The renderer translates
// a style tag plus hue into actual material parameters; the scene never
// touches GL state.
type BlockStyle int

const (
	StyleTransparent BlockStyle = iota
	StyleOpaque
)

// HueStep spaces the per-block hues assigned under the opaque preset so that
// stacked and adjacent blocks stay visually distinguishable.
const HueStep = 0.05

func (s BlockStyle) String() string {
	switch s {
	case StyleTransparent:
		return "transparent"
	case StyleOpaque:
		return "opaque"
	default:
		return "unknown"
	}
}

// Block is a placed cube. Position is the cube center; X and Z are always
// grid-aligned after any placement or drag completes, Y is derived from
// column occupancy at placement time. Blocks are never destroyed.
type Block struct {
	ID    int
	X     float32
	Y     float32
	Z     float32
	Style BlockStyle
	Hue   float32
}

// hueFor is the deterministic per-identifier hue used by the opaque preset.
func hueFor(id int) float32 {
	h := float32(id) * HueStep
	return h - float32(int(h))
}

// Color resolves the block's style tag and hue to an RGBA display color.
// Transparent blocks share one translucent tint; opaque blocks rotate hue.
func (b *Block) Color() mgl32.Vec4 {
	if b.Style == StyleTransparent {
		return mgl32.Vec4{0.55, 0.75, 0.95, 0.45}
	}
	rgb := hsvToRGB(b.Hue, 0.55, 0.95)
	return mgl32.Vec4{rgb[0], rgb[1], rgb[2], 1.0}
}

// hsvToRGB converts h, s, v in [0,1] to RGB.
func hsvToRGB(h, s, v float32) mgl32.Vec3 {
	if s == 0 {
		return mgl32.Vec3{v, v, v}
	}
	h = h - float32(int(h))
	sector := int(h * 6)
	f := h*6 - float32(sector)
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	switch sector % 6 {
	case 0:
		return mgl32.Vec3{v, t, p}
	case 1:
		return mgl32.Vec3{q, v, p}
	case 2:
		return mgl32.Vec3{p, v, t}
	case 3:
		return mgl32.Vec3{p, q, v}
	case 4:
		return mgl32.Vec3{t, p, v}
	default:
		return mgl32.Vec3{v, p, q}
	}
}
