package magnifier

// Key identifies a keyboard key. Only the modifier matters to the controller.
type Key int

const (
	KeyOther    Key = iota
	KeyModifier     // the key that must be held to show the overlay
)

func (k Key) String() string {
	if k == KeyModifier {
		return "modifier"
	}
	return "other"
}

// Event is one input delivered by an InputSource.
type Event interface {
	event()
}

// PointerMove reports the pointer at display coordinate (X, Y).
type PointerMove struct {
	X, Y         int
	ModifierHeld bool
}

// KeyReleased reports that Key went up.
type KeyReleased struct {
	Key Key
}

// Expose asks for a repaint without changing any pixels, e.g. after a resize.
type Expose struct{}

func (PointerMove) event() {}
func (KeyReleased) event() {}
func (Expose) event()      {}
