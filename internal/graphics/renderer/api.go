package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"blockdrop/internal/graphics"
	"blockdrop/internal/scene"
)

// RenderContext provides shared per-frame context for all renderables. The
// scene is read once per frame and never mutated here.
type RenderContext struct {
	Camera   *graphics.Camera
	Scene    *scene.SceneState
	GridSize float32
	DT       float64
	View     mgl32.Mat4
	Proj     mgl32.Mat4
}

// Renderable defines the lifecycle of a renderable feature.
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
