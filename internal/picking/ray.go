// Package picking converts 2D pointer coordinates into 3D rays and
// intersects them against the ground plane and the displayed blocks.
// It touches no GL state.
package picking

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a world-space ray with a normalized direction.
type Ray struct {
	Origin mgl32.Vec3
	Dir    mgl32.Vec3
}

// ScreenRay projects the cursor position through the inverse of the camera
// matrices into a world-space ray. cursorX/cursorY are in window coordinates
// with the origin at the top-left, as GLFW reports them.
func ScreenRay(cursorX, cursorY float64, width, height int, view, proj mgl32.Mat4) Ray {
	// UnProject expects window coordinates with a bottom-left origin.
	winX := float32(cursorX)
	winY := float32(height) - float32(cursorY)

	near, errNear := mgl32.UnProject(mgl32.Vec3{winX, winY, 0}, view, proj, 0, 0, width, height)
	far, errFar := mgl32.UnProject(mgl32.Vec3{winX, winY, 1}, view, proj, 0, 0, width, height)
	if errNear != nil || errFar != nil {
		// Singular camera matrices only occur with a degenerate setup;
		// return a ray that cannot hit anything.
		return Ray{Origin: near, Dir: mgl32.Vec3{0, 0, 0}}
	}

	return Ray{Origin: near, Dir: far.Sub(near).Normalize()}
}

// IntersectPlaneY intersects the ray with the horizontal plane y = height.
// Returns false when the ray is parallel to the plane or points away from it.
func (r Ray) IntersectPlaneY(height float32) (mgl32.Vec3, bool) {
	const parallelEps = 1e-6
	if r.Dir.Y() > -parallelEps && r.Dir.Y() < parallelEps {
		return mgl32.Vec3{}, false
	}
	t := (height - r.Origin.Y()) / r.Dir.Y()
	if t < 0 {
		return mgl32.Vec3{}, false
	}
	return r.Origin.Add(r.Dir.Mul(t)), true
}
