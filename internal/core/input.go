package core

// Key identifies a logical key, abstracted from physical key presses.
type Key int

const (
	KeyNone  Key = iota
	KeyLeft      // Left arrow, A - move basket left
	KeyRight     // Right arrow, D - move basket right
	KeyStart     // Space, Enter - start a game from the title screen
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyStart:
		return "Start"
	default:
		return "Unknown"
	}
}

// KeyState answers whether a key is currently held.
// Unknown keys report false.
type KeyState interface {
	IsKeyDown(k Key) bool
}

// KeyFrame is a plain set of held keys. It is the simplest KeyState and
// is handy for scripted input.
type KeyFrame struct {
	held map[Key]bool
}

// NewKeyFrame creates an empty key frame.
func NewKeyFrame() *KeyFrame {
	return &KeyFrame{held: make(map[Key]bool)}
}

// Press marks a key as held.
func (f *KeyFrame) Press(k Key) {
	if f.held == nil {
		f.held = make(map[Key]bool)
	}
	f.held[k] = true
}

// Release marks a key as not held.
func (f *KeyFrame) Release(k Key) {
	delete(f.held, k)
}

// IsKeyDown returns true if the key is held.
func (f *KeyFrame) IsKeyDown(k Key) bool {
	if f == nil || f.held == nil {
		return false
	}
	return f.held[k]
}

// Clear releases all keys.
func (f *KeyFrame) Clear() {
	for k := range f.held {
		delete(f.held, k)
	}
}
