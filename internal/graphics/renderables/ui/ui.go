package ui

import (
	_ "embed"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"blockdrop/internal/graphics"
)

//go:embed ui.vert
var vertShaderSrc string

//go:embed ui.frag
var fragShaderSrc string

// UI draws the 2D overlay: filled rectangles and bitmap text in window
// coordinates with the origin at the top-left. Draw calls go through one
// dynamic quad buffer; the overlay is tiny, so no batching.
type UI struct {
	shader  *graphics.Shader
	vao     uint32
	vbo     uint32
	fontTex uint32

	atlasW int
	width  int
	height int
}

// NewUI creates the overlay renderer.
func NewUI() *UI {
	return &UI{}
}

// Init compiles the shader, allocates the quad buffer, and uploads the glyph
// atlas.
func (u *UI) Init() error {
	var err error
	u.shader, err = graphics.NewShaderFromSource(vertShaderSrc, fragShaderSrc)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &u.vao)
	gl.GenBuffers(1, &u.vbo)
	gl.BindVertexArray(u.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 6*4*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))
	gl.BindVertexArray(0)

	atlas := buildFontAtlas()
	u.atlasW = atlas.Bounds().Dx()
	gl.GenTextures(1, &u.fontTex)
	gl.BindTexture(gl.TEXTURE_2D, u.fontTex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(u.atlasW), glyphHeight, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Pix))
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return nil
}

// SetViewport updates the ortho projection after a window resize.
func (u *UI) SetViewport(width, height int) {
	u.width = width
	u.height = height
}

// BeginFrame switches GL into overlay mode (no depth, alpha blending).
func (u *UI) BeginFrame() {
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	u.shader.Use()
	proj := mgl32.Ortho2D(0, float32(u.width), float32(u.height), 0)
	u.shader.SetMatrix4("uProj", &proj[0])
}

// EndFrame restores 3D GL state.
func (u *UI) EndFrame() {
	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
}

// DrawFilledRect draws a solid rectangle. Call between BeginFrame/EndFrame.
func (u *UI) DrawFilledRect(x, y, w, h float32, color mgl32.Vec3, alpha float32) {
	u.shader.SetBool("uUseTexture", false)
	u.shader.SetVector4("uColor", color.X(), color.Y(), color.Z(), alpha)
	u.drawQuad(x, y, w, h, 0, 0, 0, 0)
}

// DrawText draws text with its top-left corner at (x, y).
func (u *UI) DrawText(text string, x, y, scale float32, color mgl32.Vec3) {
	u.shader.SetBool("uUseTexture", true)
	u.shader.SetVector4("uColor", color.X(), color.Y(), color.Z(), 1.0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, u.fontTex)
	u.shader.SetInt("uTexture", 0)

	cw := float32(glyphWidth) * scale
	ch := float32(glyphHeight) * scale
	du := float32(glyphWidth) / float32(u.atlasW)

	for i, r := range text {
		u0 := float32(glyphCell(r)) * du
		u.drawQuad(x+float32(i)*cw, y, cw, ch, u0, 0, du, 1)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// MeasureText returns the rendered size of text at the given scale.
func (u *UI) MeasureText(text string, scale float32) (float32, float32) {
	return float32(len(text)*glyphWidth) * scale, float32(glyphHeight) * scale
}

func (u *UI) drawQuad(x, y, w, h, u0, v0, du, dv float32) {
	verts := []float32{
		x, y, u0, v0,
		x, y + h, u0, v0 + dv,
		x + w, y + h, u0 + du, v0 + dv,
		x + w, y + h, u0 + du, v0 + dv,
		x + w, y, u0 + du, v0,
		x, y, u0, v0,
	}
	gl.BindVertexArray(u.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(verts))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
	gl.BindVertexArray(0)
}

// Dispose releases GL resources.
func (u *UI) Dispose() {
	gl.DeleteVertexArrays(1, &u.vao)
	gl.DeleteBuffers(1, &u.vbo)
	gl.DeleteTextures(1, &u.fontTex)
	if u.shader != nil {
		u.shader.Dispose()
	}
}
