package app

import (
	"fmt"
	"log"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"blockdrop/internal/input"
	"blockdrop/internal/profiling"
)

// Run drives the frame loop until the window closes.
func (s *Session) Run() {
	for !s.window.ShouldClose() {
		s.tick()
	}
}

func (s *Session) tick() {
	profiling.ResetFrame()
	now := time.Now()
	dt := now.Sub(s.lastTime).Seconds()
	s.lastTime = now

	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	s.handleInputActions()

	s.renderer.Render(s.state, dt)
	s.renderOverlay()

	func() { defer profiling.Track("glfw.SwapBuffers")(); s.window.SwapBuffers() }()

	s.frames++
	if time.Since(s.lastFPSCheckTime) >= time.Second {
		s.window.SetTitle(fmt.Sprintf("blockdrop | %d fps", s.frames))
		s.frames = 0
		s.lastFPSCheckTime = time.Now()
	}

	// Clear edge flags after all input checks
	s.input.PostUpdate()

	if processing := time.Since(now); processing > 16*time.Millisecond {
		log.Printf("slow frame: %v. Top tasks: %s", processing, profiling.TopN(5))
	}

	s.fpsLimiter.Wait(s.settings.FPSLimit)
}

// handleInputActions runs the edge-triggered action handlers. Every scene
// mutation starts here or in a GLFW callback; the render pass only reads.
func (s *Session) handleInputActions() {
	if s.input.JustPressed(input.ActionQuit) {
		s.window.SetShouldClose(true)
		return
	}

	if s.input.JustPressed(input.ActionAddBlock) {
		s.AddRandomBlock()
	}
	if s.input.JustPressed(input.ActionToggleStyle) {
		s.ToggleStyle()
	}
	if s.input.JustPressed(input.ActionResetView) {
		s.Camera().Reset()
	}

	if s.input.JustPressed(input.ActionPointerPrimary) {
		s.handlePointerPress()
	}
	if s.input.JustReleased(input.ActionPointerPrimary) {
		s.handlePointerRelease()
	}
}
