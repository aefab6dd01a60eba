package input

// EventKind discriminates the variants of Event.
type EventKind uint8

const (
	EventKey EventKind = iota + 1
	EventButton
	EventWheel
	EventMotion
	EventMotionImpulse
)

// Event is one raw physical input event as delivered by the host windowing
// layer. Events are immutable values, buffered by a Tracker and consumed
// within a single frame. Only the fields belonging to the Kind are set.
type Event struct {
	Kind    EventKind
	Key     Key
	Button  MouseButton
	Pressed bool
	// Delta is the wheel delta or impulse magnitude.
	Delta float32
	// DX, DY are pointer-motion deltas.
	DX, DY float32
	// Dir is the impulse direction for EventMotionImpulse.
	Dir MotionDirection
	// Mods are the keyboard modifiers held when the event fired. Only key
	// and button events carry them into binding lookup.
	Mods Modifiers
}

// WithModifiers returns the event tagged with the held-modifier set.
func (e Event) WithModifiers(m Modifiers) Event {
	e.Mods = m
	return e
}

// KeyEvent is a key press (pressed=true) or release.
func KeyEvent(k Key, pressed bool) Event {
	return Event{Kind: EventKey, Key: k, Pressed: pressed}
}

// ButtonEvent is a mouse button press or release.
func ButtonEvent(b MouseButton, pressed bool) Event {
	return Event{Kind: EventButton, Button: b, Pressed: pressed}
}

// WheelEvent is one scroll-wheel tick with the given delta.
func WheelEvent(delta float32) Event {
	return Event{Kind: EventWheel, Delta: delta}
}

// MotionEvent is raw pointer movement by (dx, dy).
func MotionEvent(dx, dy float32) Event {
	return Event{Kind: EventMotion, DX: dx, DY: dy}
}

// MotionImpulseEvent is a dominant-axis pointer-motion impulse with the given
// magnitude. The runtime synthesizes these from large pointer movements.
func MotionImpulseEvent(d MotionDirection, magnitude float32) Event {
	return Event{Kind: EventMotionImpulse, Dir: d, Delta: magnitude}
}

// Source gives the physical descriptor this event belongs to, for map lookup.
func (e Event) Source() Source {
	switch e.Kind {
	case EventKey:
		return KeySource(e.Key).WithModifiers(e.Mods)
	case EventButton:
		return ButtonSource(e.Button).WithModifiers(e.Mods)
	case EventWheel:
		return WheelSource()
	case EventMotion:
		return MotionSource()
	case EventMotionImpulse:
		return MotionImpulseSource(e.Dir)
	}
	return Source{}
}

// stateful reports whether the event carries pressed/released state that the
// tracker must remember across frames (keys and mouse buttons do; wheel and
// motion are transient).
func (e Event) stateful() bool {
	return e.Kind == EventKey || e.Kind == EventButton
}
