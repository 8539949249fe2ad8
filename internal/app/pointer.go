package app

import (
	"errors"
	"log"

	"blockdrop/internal/input"
	"blockdrop/internal/picking"
	"blockdrop/internal/placement"
	"blockdrop/internal/profiling"
)

const orbitSensitivity = 0.005

// screenRay builds the world-space ray under the current cursor position.
func (s *Session) screenRay() picking.Ray {
	cam := s.Camera()
	return picking.ScreenRay(s.mouseX, s.mouseY, s.width, s.height,
		cam.ViewMatrix(), cam.ProjectionMatrix())
}

// handlePointerPress resolves a primary-button press: overlay widgets first,
// then block pickup, then ground placement.
func (s *Session) handlePointerPress() {
	for _, w := range s.widgets {
		if w.HandleInput(s.window, true) {
			return
		}
	}

	defer profiling.Track("picking.PointerPress")()
	ray := s.screenRay()

	if hit, ok := picking.NearestBlock(ray, s.state.Blocks(), s.settings.GridSize); ok {
		// The drag plane passes through the block center, so the pick
		// offset and all drag motion resolve on the same plane.
		point, planeOK := ray.IntersectPlaneY(hit.Block.Y)
		if !planeOK {
			return
		}
		sess, err := s.controller.BeginDrag(hit.Block.ID, point.X(), point.Z())
		if err != nil {
			// AlreadyDragging / NotFound: drop the event, scene unchanged.
			if !errors.Is(err, placement.ErrAlreadyDragging) {
				log.Printf("drag rejected: %v", err)
			}
			return
		}
		s.drag = sess
		return
	}

	if point, ok := ray.IntersectPlaneY(0); ok && s.onGround(point.X(), point.Z()) {
		b := s.controller.PlaceNew(point.X(), point.Z())
		log.Printf("placed block %d at (%.1f, %.1f, %.1f)", b.ID, b.X, b.Y, b.Z)
	}
}

// HandlePointerMove tracks the cursor, orbits the camera while the secondary
// button is held, and feeds drag updates while a session is active.
func (s *Session) HandlePointerMove(x, y float64) {
	if s.firstMouse {
		s.mouseX, s.mouseY = x, y
		s.firstMouse = false
	}
	dx := x - s.mouseX
	dy := y - s.mouseY
	s.mouseX, s.mouseY = x, y

	if s.input.IsActive(input.ActionPointerSecondary) {
		s.Camera().Orbit(float32(-dx)*orbitSensitivity, float32(dy)*orbitSensitivity)
	}

	if s.drag != nil {
		ray := s.screenRay()
		if point, ok := ray.IntersectPlaneY(s.drag.PlaneHeight()); ok {
			if err := s.controller.UpdateDrag(s.drag, point.X(), point.Z()); err != nil {
				log.Printf("drag update rejected: %v", err)
			}
		}
	}
}

// handlePointerRelease ends the active drag session, if any.
func (s *Session) handlePointerRelease() {
	if s.drag == nil {
		return
	}
	if err := s.controller.EndDrag(s.drag); err != nil {
		log.Printf("drag release rejected: %v", err)
	}
	s.drag = nil
}

// HandleScroll zooms the orbit camera.
func (s *Session) HandleScroll(yoff float64) {
	s.Camera().Zoom(float32(-yoff) * 1.5)
}

// onGround reports whether the point lies on the rendered ground plane;
// clicks on the sky place nothing.
func (s *Session) onGround(x, z float32) bool {
	e := (float32(s.settings.GroundRadius) + 0.5) * s.settings.GridSize
	return x >= -e && x <= e && z >= -e && z <= e
}
