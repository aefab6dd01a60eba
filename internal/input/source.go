package input

import (
	"fmt"
	"strconv"
	"strings"
)

// Key identifies a physical keyboard key. Values are numerically equal to GLFW
// key codes (ASCII for printable keys), so the desktop event source can convert
// with a plain cast; the browser event source maps KeyboardEvent codes onto the
// same space.
type Key int

const (
	KeyUnknown Key = -1

	KeySpace      Key = 32
	KeyApostrophe Key = 39
	KeyComma      Key = 44
	KeyMinus      Key = 45
	KeyPeriod     Key = 46
	KeySlash      Key = 47

	Key0 Key = 48
	Key1 Key = 49
	Key2 Key = 50
	Key3 Key = 51
	Key4 Key = 52
	Key5 Key = 53
	Key6 Key = 54
	Key7 Key = 55
	Key8 Key = 56
	Key9 Key = 57

	KeyA Key = 65
	KeyB Key = 66
	KeyC Key = 67
	KeyD Key = 68
	KeyE Key = 69
	KeyF Key = 70
	KeyG Key = 71
	KeyH Key = 72
	KeyI Key = 73
	KeyJ Key = 74
	KeyK Key = 75
	KeyL Key = 76
	KeyM Key = 77
	KeyN Key = 78
	KeyO Key = 79
	KeyP Key = 80
	KeyQ Key = 81
	KeyR Key = 82
	KeyS Key = 83
	KeyT Key = 84
	KeyU Key = 85
	KeyV Key = 86
	KeyW Key = 87
	KeyX Key = 88
	KeyY Key = 89
	KeyZ Key = 90

	KeyEscape    Key = 256
	KeyEnter     Key = 257
	KeyTab       Key = 258
	KeyBackspace Key = 259

	KeyRight Key = 262
	KeyLeft  Key = 263
	KeyDown  Key = 264
	KeyUp    Key = 265

	KeyLeftShift    Key = 340
	KeyLeftControl  Key = 341
	KeyLeftAlt      Key = 342
	KeyRightShift   Key = 344
	KeyRightControl Key = 345
	KeyRightAlt     Key = 346
)

// MouseButton identifies a mouse button, GLFW numbering.
type MouseButton int

const (
	MouseLeft   MouseButton = 0
	MouseRight  MouseButton = 1
	MouseMiddle MouseButton = 2
)

// MotionDirection names one of the four directional pointer-motion impulses.
// These are linear-channel sources: a large pointer movement fires a single
// impulse on the dominant axis, letting games bind "mouse moved left" like a
// key press (the full 2-D delta stays on the vector channel).
type MotionDirection uint8

const (
	MotionLeft MotionDirection = iota
	MotionRight
	MotionUp
	MotionDown
)

func (d MotionDirection) String() string {
	switch d {
	case MotionLeft:
		return "left"
	case MotionRight:
		return "right"
	case MotionUp:
		return "up"
	case MotionDown:
		return "down"
	}
	return "invalid"
}

// Modifiers is a bitmask of the keyboard modifiers held when an input
// occurred. Modifiers are part of a binding's identity: shift+W can be bound
// separately from plain W. The zero value means unmodified.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	// ModLogo is the "windows" key on PC and "command" key on Mac.
	ModLogo
)

func (m Modifiers) String() string {
	if m == 0 {
		return ""
	}
	var parts []string
	if m&ModShift != 0 {
		parts = append(parts, "shift")
	}
	if m&ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if m&ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if m&ModLogo != 0 {
		parts = append(parts, "logo")
	}
	return strings.Join(parts, "+")
}

func parseModifier(name string) (Modifiers, error) {
	switch name {
	case "shift":
		return ModShift, nil
	case "ctrl":
		return ModCtrl, nil
	case "alt":
		return ModAlt, nil
	case "logo":
		return ModLogo, nil
	}
	return 0, fmt.Errorf("input: unknown modifier %q", name)
}

type sourceKind uint8

const (
	kindNone sourceKind = iota
	kindKey
	kindButton
	kindWheel
	kindMotion
	kindMotionImpulse
)

// Source is a physical-input descriptor: one key, mouse button, the scroll
// wheel, pointer motion (vector channel), or a directional pointer-motion
// impulse (linear channel), together with the modifiers held when it fires.
// Sources are comparable and usable as map keys. The zero value matches no
// event.
type Source struct {
	kind   sourceKind
	key    Key
	button MouseButton
	dir    MotionDirection
	mods   Modifiers
}

// KeySource is the source for the given keyboard key.
func KeySource(k Key) Source { return Source{kind: kindKey, key: k} }

// ButtonSource is the source for the given mouse button.
func ButtonSource(b MouseButton) Source { return Source{kind: kindButton, button: b} }

// WheelSource is the scroll wheel. Wheel events are linear impulses: each
// scroll yields one Started activation whose magnitude reflects the delta.
func WheelSource() Source { return Source{kind: kindWheel} }

// MotionSource is raw pointer movement, the canonical vector-channel source.
func MotionSource() Source { return Source{kind: kindMotion} }

// MotionImpulseSource is the linear-channel impulse for a dominant-axis
// pointer movement in the given direction.
func MotionImpulseSource(d MotionDirection) Source {
	return Source{kind: kindMotionImpulse, dir: d}
}

// WithModifiers returns the source bound to the given held-modifier set. The
// plain constructors produce unmodified sources.
func (s Source) WithModifiers(m Modifiers) Source {
	s.mods = m
	return s
}

// base strips the modifier component: the physical identity shared by every
// modified variant of the same source.
func (s Source) base() Source {
	s.mods = 0
	return s
}

func (s Source) String() string {
	var str string
	switch s.kind {
	case kindKey:
		str = "key:" + strconv.Itoa(int(s.key))
	case kindButton:
		str = "button:" + strconv.Itoa(int(s.button))
	case kindWheel:
		str = "wheel"
	case kindMotion:
		str = "motion"
	case kindMotionImpulse:
		str = "motion:" + s.dir.String()
	default:
		return "none"
	}
	if s.mods != 0 {
		str += "+" + s.mods.String()
	}
	return str
}

// MarshalText lets a Source key a JSON object, so input maps serialize
// directly for keybind persistence.
func (s Source) MarshalText() ([]byte, error) {
	if s.kind == kindNone {
		return nil, fmt.Errorf("input: cannot marshal zero Source")
	}
	return []byte(s.String()), nil
}

// UnmarshalText parses the representation produced by MarshalText.
func (s *Source) UnmarshalText(text []byte) error {
	parts := strings.Split(string(text), "+")
	str := parts[0]
	var mods Modifiers
	for _, name := range parts[1:] {
		m, err := parseModifier(name)
		if err != nil {
			return err
		}
		mods |= m
	}
	switch {
	case strings.HasPrefix(str, "key:"):
		n, err := strconv.Atoi(str[len("key:"):])
		if err != nil {
			return fmt.Errorf("input: bad key source %q: %w", str, err)
		}
		*s = KeySource(Key(n))
	case strings.HasPrefix(str, "button:"):
		n, err := strconv.Atoi(str[len("button:"):])
		if err != nil {
			return fmt.Errorf("input: bad button source %q: %w", str, err)
		}
		*s = ButtonSource(MouseButton(n))
	case str == "wheel":
		*s = WheelSource()
	case str == "motion":
		*s = MotionSource()
	case strings.HasPrefix(str, "motion:"):
		switch str[len("motion:"):] {
		case "left":
			*s = MotionImpulseSource(MotionLeft)
		case "right":
			*s = MotionImpulseSource(MotionRight)
		case "up":
			*s = MotionImpulseSource(MotionUp)
		case "down":
			*s = MotionImpulseSource(MotionDown)
		default:
			return fmt.Errorf("input: unknown motion direction in %q", str)
		}
	default:
		return fmt.Errorf("input: unknown source %q", str)
	}
	s.mods = mods
	return nil
}
