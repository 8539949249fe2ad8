package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"blockdrop/internal/graphics"
	"blockdrop/internal/profiling"
	"blockdrop/internal/scene"
)

// Renderer orchestrates the 3D renderables. The 2D UI overlay is drawn by
// the session after Render, outside the depth-tested pass.
type Renderer struct {
	renderables []Renderable
	camera      *graphics.Camera
	gridSize    float32
}

// NewRenderer configures global GL state and initializes all renderables.
func NewRenderer(camera *graphics.Camera, gridSize float32, rs ...Renderable) (*Renderer, error) {
	gl.Enable(gl.DEPTH_TEST)

	r := &Renderer{
		renderables: rs,
		camera:      camera,
		gridSize:    gridSize,
	}

	for _, renderable := range rs {
		if err := renderable.Init(); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Camera exposes the camera for input handling and picking.
func (r *Renderer) Camera() *graphics.Camera {
	return r.camera
}

// Render draws one frame of the scene.
func (r *Renderer) Render(s *scene.SceneState, dt float64) {
	defer profiling.Track("renderer.Render")()

	gl.ClearColor(0.53, 0.81, 0.92, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	ctx := RenderContext{
		Camera:   r.camera,
		Scene:    s,
		GridSize: r.gridSize,
		DT:       dt,
		View:     r.camera.ViewMatrix(),
		Proj:     r.camera.ProjectionMatrix(),
	}

	for _, renderable := range r.renderables {
		renderable.Render(ctx)
	}
}

// UpdateViewport propagates a window resize.
func (r *Renderer) UpdateViewport(width, height int) {
	r.camera.SetViewport(width, height)
	for _, renderable := range r.renderables {
		renderable.SetViewport(width, height)
	}
}

// Dispose releases GL resources held by all renderables.
func (r *Renderer) Dispose() {
	for _, renderable := range r.renderables {
		renderable.Dispose()
	}
}
