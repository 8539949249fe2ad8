package main

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"blockdrop/internal/app"
	"blockdrop/internal/input"
)

func setupCallbacks(window *glfw.Window, session *app.Session, im *input.Manager) {
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		session.HandlePointerMove(xpos, ypos)
	})

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		session.HandleScroll(yoff)
	})

	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
	})

	window.SetSizeCallback(func(w *glfw.Window, width, height int) {
		session.UpdateViewport(width, height)
	})
}
