package ground

import (
	_ "embed"

	"github.com/go-gl/gl/v4.1-core/gl"

	"blockdrop/internal/graphics"
	renderer "blockdrop/internal/graphics/renderer"
)

//go:embed ground.vert
var vertShaderSrc string

//go:embed ground.frag
var fragShaderSrc string

// Ground renders the placement plane and its grid lines.
type Ground struct {
	shader *graphics.Shader

	quadVAO   uint32
	quadVBO   uint32
	lineVAO   uint32
	lineVBO   uint32
	lineVerts int32

	radius   int
	gridSize float32
}

// NewGround creates the ground renderable covering radius cells in each
// direction from the origin.
func NewGround(radius int, gridSize float32) *Ground {
	return &Ground{radius: radius, gridSize: gridSize}
}

// Init compiles the shader and uploads the plane and grid-line meshes.
func (g *Ground) Init() error {
	var err error
	g.shader, err = graphics.NewShaderFromSource(vertShaderSrc, fragShaderSrc)
	if err != nil {
		return err
	}

	g.setupQuad()
	g.setupLines()
	return nil
}

// extent returns the half-width of the plane: radius whole cells plus the
// half cell that lets edge-centered cubes sit fully on the plane.
func (g *Ground) extent() float32 {
	return (float32(g.radius) + 0.5) * g.gridSize
}

func (g *Ground) setupQuad() {
	e := g.extent()
	up := []float32{0, 1, 0}
	corners := [][]float32{
		{-e, 0, -e}, {-e, 0, e}, {e, 0, e},
		{e, 0, e}, {e, 0, -e}, {-e, 0, -e},
	}
	verts := make([]float32, 0, len(corners)*6)
	for _, c := range corners {
		verts = append(verts, c...)
		verts = append(verts, up...)
	}

	gl.GenVertexArrays(1, &g.quadVAO)
	gl.GenBuffers(1, &g.quadVBO)
	gl.BindVertexArray(g.quadVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.quadVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
	configureAttribs()
	gl.BindVertexArray(0)
}

func (g *Ground) setupLines() {
	e := g.extent()
	// Slightly above the plane to avoid z-fighting.
	const lift = 0.002

	var verts []float32
	appendLine := func(x0, z0, x1, z1 float32) {
		verts = append(verts,
			x0, lift, z0, 0, 1, 0,
			x1, lift, z1, 0, 1, 0,
		)
	}

	// Cell boundaries sit at half-cell offsets: block centers are on grid
	// multiples, so cube edges land at (n + 0.5) * gridSize.
	for i := -g.radius - 1; i <= g.radius; i++ {
		v := (float32(i) + 0.5) * g.gridSize
		appendLine(v, -e, v, e)
		appendLine(-e, v, e, v)
	}
	g.lineVerts = int32(len(verts) / 6)

	gl.GenVertexArrays(1, &g.lineVAO)
	gl.GenBuffers(1, &g.lineVBO)
	gl.BindVertexArray(g.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.lineVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
	configureAttribs()
	gl.BindVertexArray(0)
}

func configureAttribs() {
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*4, gl.PtrOffset(3*4))
}

// Render draws the plane, then the grid lines over it.
func (g *Ground) Render(ctx renderer.RenderContext) {
	g.shader.Use()
	view := ctx.View
	proj := ctx.Proj
	g.shader.SetMatrix4("uView", &view[0])
	g.shader.SetMatrix4("uProj", &proj[0])

	g.shader.SetVector4("uColor", 0.42, 0.58, 0.36, 1.0)
	gl.BindVertexArray(g.quadVAO)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	g.shader.SetVector4("uColor", 0.22, 0.30, 0.20, 1.0)
	gl.BindVertexArray(g.lineVAO)
	gl.DrawArrays(gl.LINES, 0, g.lineVerts)
	gl.BindVertexArray(0)
}

// SetViewport is a no-op; the ground has no screen-space state.
func (g *Ground) SetViewport(width, height int) {}

// Dispose releases GL resources.
func (g *Ground) Dispose() {
	gl.DeleteVertexArrays(1, &g.quadVAO)
	gl.DeleteBuffers(1, &g.quadVBO)
	gl.DeleteVertexArrays(1, &g.lineVAO)
	gl.DeleteBuffers(1, &g.lineVBO)
	if g.shader != nil {
		g.shader.Dispose()
	}
}
