package app

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"blockdrop/internal/config"
	"blockdrop/internal/graphics"
	"blockdrop/internal/graphics/renderables/blocks"
	"blockdrop/internal/graphics/renderables/ground"
	"blockdrop/internal/graphics/renderables/ui"
	renderer "blockdrop/internal/graphics/renderer"
	"blockdrop/internal/input"
	"blockdrop/internal/placement"
	"blockdrop/internal/scene"
	"blockdrop/internal/ui/widget"
)

// Session wires the placement core to the window, input manager, and
// renderer, and runs the frame loop. All scene mutation happens here, inside
// input-event handling on the main thread.
type Session struct {
	window   *glfw.Window
	settings config.Settings

	state      *scene.SceneState
	controller *placement.Controller
	drag       *placement.DragSession

	renderer *renderer.Renderer
	overlay  *ui.UI
	widgets  []widget.Component

	input *input.Manager
	rng   *rand.Rand

	fpsLimiter *FPSLimiter

	width  int
	height int

	// cursor tracking for orbit deltas
	mouseX, mouseY float64
	firstMouse     bool

	frames           int
	lastFPSCheckTime time.Time
	lastTime         time.Time
}

// NewSession builds the scene, controller, renderer, and overlay widgets.
func NewSession(window *glfw.Window, settings config.Settings, im *input.Manager) (*Session, error) {
	params, err := settings.GridParams()
	if err != nil {
		return nil, err
	}

	state := scene.NewSceneState()
	controller := placement.NewController(state, params)

	width, height := window.GetSize()
	camera := graphics.NewCamera(width, height)

	r, err := renderer.NewRenderer(camera, settings.GridSize,
		ground.NewGround(settings.GroundRadius, settings.GridSize),
		blocks.NewBlocks(),
	)
	if err != nil {
		return nil, err
	}

	overlay := ui.NewUI()
	if err := overlay.Init(); err != nil {
		r.Dispose()
		return nil, err
	}
	overlay.SetViewport(width, height)

	s := &Session{
		window:           window,
		settings:         settings,
		state:            state,
		controller:       controller,
		renderer:         r,
		overlay:          overlay,
		input:            im,
		rng:              rand.New(rand.NewSource(time.Now().UnixNano())),
		fpsLimiter:       NewFPSLimiter(),
		width:            width,
		height:           height,
		firstMouse:       true,
		lastFPSCheckTime: time.Now(),
		lastTime:         time.Now(),
	}

	s.widgets = []widget.Component{
		widget.NewButton("Add Block", 16, 16, 150, 40, s.AddRandomBlock),
		widget.NewButton("Toggle Style", 16, 64, 150, 40, s.ToggleStyle),
	}

	return s, nil
}

// AddRandomBlock places a block at a random grid cell near the origin, as if
// the raw point had come from a pointer event.
func (s *Session) AddRandomBlock() {
	r := s.settings.SpawnRadius
	cells := 2*r + 1
	x := float32(s.rng.Intn(cells)-r) * s.settings.GridSize
	z := float32(s.rng.Intn(cells)-r) * s.settings.GridSize

	b := s.controller.PlaceNew(x, z)
	log.Printf("placed block %d at (%.1f, %.1f, %.1f)", b.ID, b.X, b.Y, b.Z)
}

// ToggleStyle flips every block between the transparent and opaque presets.
func (s *Session) ToggleStyle() {
	s.state.ToggleStyle()
	log.Printf("style now %s (%d blocks)", s.state.Style(), s.state.Len())
}

// UpdateViewport propagates a window resize to the renderer and overlay.
func (s *Session) UpdateViewport(width, height int) {
	s.width = width
	s.height = height
	s.renderer.UpdateViewport(width, height)
	s.overlay.SetViewport(width, height)
}

// Camera exposes the orbit camera for input wiring.
func (s *Session) Camera() *graphics.Camera {
	return s.renderer.Camera()
}

func (s *Session) renderOverlay() {
	s.overlay.BeginFrame()
	for _, w := range s.widgets {
		w.Render(s.overlay, s.window)
	}

	status := statusLine(s.state)
	_, th := s.overlay.MeasureText(status, overlayTextScale)
	s.overlay.DrawText(status, 16, float32(s.height)-th-10, overlayTextScale, mgl32.Vec3{1, 1, 1})
	s.overlay.EndFrame()
}

const overlayTextScale = 1.5

func statusLine(st *scene.SceneState) string {
	return fmt.Sprintf("blocks: %d  style: %s", st.Len(), st.Style())
}

// Dispose releases GL resources owned by the session.
func (s *Session) Dispose() {
	s.renderer.Dispose()
	s.overlay.Dispose()
}
