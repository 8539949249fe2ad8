package blocks

import (
	_ "embed"
	"sort"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"blockdrop/internal/graphics"
	renderer "blockdrop/internal/graphics/renderer"
	"blockdrop/internal/profiling"
	"blockdrop/internal/scene"
)

//go:embed block.vert
var vertShaderSrc string

//go:embed block.frag
var fragShaderSrc string

// Blocks renders every block in the scene from a single shared cube mesh,
// one draw call per block with its own model matrix and resolved color.
type Blocks struct {
	shader    *graphics.Shader
	vao       uint32
	vbo       uint32
	vertCount int32

	// scratch for depth sorting translucent cubes, reused across frames
	order []*scene.Block
}

// NewBlocks creates the block renderable.
func NewBlocks() *Blocks {
	return &Blocks{}
}

// Init compiles the shader and uploads the unit cube mesh.
func (bl *Blocks) Init() error {
	var err error
	bl.shader, err = graphics.NewShaderFromSource(vertShaderSrc, fragShaderSrc)
	if err != nil {
		return err
	}

	verts := buildCubeMesh()
	bl.vertCount = int32(len(verts) / 6)

	gl.GenVertexArrays(1, &bl.vao)
	gl.GenBuffers(1, &bl.vbo)
	gl.BindVertexArray(bl.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, bl.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*4, gl.PtrOffset(3*4))
	gl.BindVertexArray(0)

	return nil
}

// Render draws the ordered block sequence. Translucent blocks are drawn
// back-to-front with depth writes off so stacked cubes show through each
// other.
func (bl *Blocks) Render(ctx renderer.RenderContext) {
	defer profiling.Track("blocks.Render")()

	list := ctx.Scene.Blocks()
	if len(list) == 0 {
		return
	}

	bl.shader.Use()
	view := ctx.View
	proj := ctx.Proj
	bl.shader.SetMatrix4("uView", &view[0])
	bl.shader.SetMatrix4("uProj", &proj[0])

	translucent := ctx.Scene.Style() == scene.StyleTransparent
	if translucent {
		list = bl.sortBackToFront(list, ctx.Camera.Position())
		gl.Enable(gl.BLEND)
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
		gl.DepthMask(false)
	}

	gl.BindVertexArray(bl.vao)
	for _, b := range list {
		model := mgl32.Translate3D(b.X, b.Y, b.Z).
			Mul4(mgl32.Scale3D(ctx.GridSize, ctx.GridSize, ctx.GridSize))
		bl.shader.SetMatrix4("uModel", &model[0])

		c := b.Color()
		bl.shader.SetVector4("uColor", c.X(), c.Y(), c.Z(), c.W())
		gl.DrawArrays(gl.TRIANGLES, 0, bl.vertCount)
	}
	gl.BindVertexArray(0)

	if translucent {
		gl.DepthMask(true)
		gl.Disable(gl.BLEND)
	}
}

func (bl *Blocks) sortBackToFront(list []*scene.Block, eye mgl32.Vec3) []*scene.Block {
	bl.order = append(bl.order[:0], list...)
	sort.SliceStable(bl.order, func(i, j int) bool {
		return distSq(bl.order[i], eye) > distSq(bl.order[j], eye)
	})
	return bl.order
}

func distSq(b *scene.Block, eye mgl32.Vec3) float32 {
	dx := b.X - eye.X()
	dy := b.Y - eye.Y()
	dz := b.Z - eye.Z()
	return dx*dx + dy*dy + dz*dz
}

// SetViewport is a no-op; blocks carry no screen-space state.
func (bl *Blocks) SetViewport(width, height int) {}

// Dispose releases GL resources.
func (bl *Blocks) Dispose() {
	gl.DeleteVertexArrays(1, &bl.vao)
	gl.DeleteBuffers(1, &bl.vbo)
	if bl.shader != nil {
		bl.shader.Dispose()
	}
}

// buildCubeMesh returns a unit cube centered at the origin as position+normal
// triangles, two per face.
func buildCubeMesh() []float32 {
	const h = 0.5
	type face struct {
		normal  [3]float32
		corners [4][3]float32
	}

	faces := []face{
		{[3]float32{0, 0, 1}, [4][3]float32{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}},
	}

	verts := make([]float32, 0, 36*6)
	for _, f := range faces {
		quad := [6][3]float32{
			f.corners[0], f.corners[1], f.corners[2],
			f.corners[2], f.corners[3], f.corners[0],
		}
		for _, p := range quad {
			verts = append(verts, p[0], p[1], p[2], f.normal[0], f.normal[1], f.normal[2])
		}
	}
	return verts
}
