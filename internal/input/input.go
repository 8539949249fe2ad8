package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Action is a logical editor action, decoupled from physical keys.
type Action int

const (
	ActionPointerPrimary Action = iota
	ActionPointerSecondary
	ActionAddBlock
	ActionToggleStyle
	ActionResetView
	ActionQuit
	ActionCount // sentinel for array sizing
)

// Manager maps physical keys and mouse buttons to logical actions and keeps
// per-frame edge state (just pressed / just released). GLFW delivers events
// on the main thread, but the mutex keeps the manager safe if a caller polls
// from elsewhere.
type Manager struct {
	mu sync.RWMutex

	keyToActions    map[glfw.Key][]Action
	buttonToActions map[glfw.MouseButton][]Action

	currentState [ActionCount]bool
	justPressed  [ActionCount]bool
	justReleased [ActionCount]bool
}

// NewManager returns a Manager with the default bindings for the demo.
func NewManager() *Manager {
	m := &Manager{
		keyToActions:    make(map[glfw.Key][]Action),
		buttonToActions: make(map[glfw.MouseButton][]Action),
	}

	m.BindKey(glfw.KeyB, ActionAddBlock)
	m.BindKey(glfw.KeyT, ActionToggleStyle)
	m.BindKey(glfw.KeyR, ActionResetView)
	m.BindKey(glfw.KeyEscape, ActionQuit)

	m.BindMouseButton(glfw.MouseButtonLeft, ActionPointerPrimary)
	m.BindMouseButton(glfw.MouseButtonRight, ActionPointerSecondary)

	return m
}

// BindKey binds a physical key to a logical action. Multiple keys may map to
// the same action.
func (m *Manager) BindKey(key glfw.Key, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	m.mu.Lock()
	m.keyToActions[key] = append(m.keyToActions[key], action)
	m.mu.Unlock()
}

// BindMouseButton binds a mouse button to a logical action.
func (m *Manager) BindMouseButton(button glfw.MouseButton, action Action) {
	if action < 0 || action >= ActionCount {
		return
	}
	m.mu.Lock()
	m.buttonToActions[button] = append(m.buttonToActions[button], action)
	m.mu.Unlock()
}

// HandleKeyEvent updates action state from a GLFW key callback.
func (m *Manager) HandleKeyEvent(key glfw.Key, state glfw.Action) {
	m.mu.RLock()
	actions, ok := m.keyToActions[key]
	m.mu.RUnlock()
	if !ok {
		return
	}
	m.apply(actions, state == glfw.Press || state == glfw.Repeat)
}

// HandleMouseButtonEvent updates action state from a GLFW mouse callback.
func (m *Manager) HandleMouseButtonEvent(button glfw.MouseButton, state glfw.Action) {
	m.mu.RLock()
	actions, ok := m.buttonToActions[button]
	m.mu.RUnlock()
	if !ok {
		return
	}
	m.apply(actions, state == glfw.Press)
}

func (m *Manager) apply(actions []Action, pressed bool) {
	m.mu.Lock()
	for _, a := range actions {
		if pressed && !m.currentState[a] {
			m.justPressed[a] = true
		}
		if !pressed && m.currentState[a] {
			m.justReleased[a] = true
		}
		m.currentState[a] = pressed
	}
	m.mu.Unlock()
}

// PostUpdate clears edge flags; call once at the end of each frame after all
// input checks are done.
func (m *Manager) PostUpdate() {
	m.mu.Lock()
	for i := range ActionCount {
		m.justPressed[i] = false
		m.justReleased[i] = false
	}
	m.mu.Unlock()
}

// IsActive reports whether the action is currently held.
func (m *Manager) IsActive(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentState[action]
}

// JustPressed reports whether the action was pressed this frame.
func (m *Manager) JustPressed(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justPressed[action]
}

// JustReleased reports whether the action was released this frame.
func (m *Manager) JustReleased(action Action) bool {
	if action < 0 || action >= ActionCount {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.justReleased[action]
}
