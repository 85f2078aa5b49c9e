package core

// Key represents a semantic engine key, abstracted from physical key presses.
// Hosts translate their own key codes into these.
type Key int

const (
	KeyNone      Key = iota
	KeyLeft          // Left arrow, h - step left, arms DAS
	KeyRight         // Right arrow, l - step right, arms DAS
	KeySoftDrop      // Down arrow, j - one gravity step
	KeyHardDrop      // Space - drop and lock
	KeyRotateCW      // Up arrow, x - rotate clockwise
	KeyRotateCCW     // z - rotate counterclockwise
	KeyHold          // c, shift - swap with the hold slot
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
	case KeySoftDrop:
		return "SoftDrop"
	case KeyHardDrop:
		return "HardDrop"
	case KeyRotateCW:
		return "RotateCW"
	case KeyRotateCCW:
		return "RotateCCW"
	case KeyHold:
		return "Hold"
	default:
		return "Unknown"
	}
}

// KeyEvent is a single key transition delivered by a host.
type KeyEvent struct {
	Key     Key
	Pressed bool // true for key-down, false for key-up
	Repeat  bool // key-down generated by autorepeat while held
}

// Down builds a key-down event.
func Down(k Key, repeat bool) KeyEvent {
	return KeyEvent{Key: k, Pressed: true, Repeat: repeat}
}

// Up builds a key-up event.
func Up(k Key) KeyEvent {
	return KeyEvent{Key: k}
}
