package input

// domCodes maps browser KeyboardEvent.code values onto the shared key space,
// so the same stored keybinds work on both hosts.
var domCodes = map[string]Key{
	"Space":        KeySpace,
	"Quote":        KeyApostrophe,
	"Comma":        KeyComma,
	"Minus":        KeyMinus,
	"Period":       KeyPeriod,
	"Slash":        KeySlash,
	"Digit0":       Key0,
	"Digit1":       Key1,
	"Digit2":       Key2,
	"Digit3":       Key3,
	"Digit4":       Key4,
	"Digit5":       Key5,
	"Digit6":       Key6,
	"Digit7":       Key7,
	"Digit8":       Key8,
	"Digit9":       Key9,
	"KeyA":         KeyA,
	"KeyB":         KeyB,
	"KeyC":         KeyC,
	"KeyD":         KeyD,
	"KeyE":         KeyE,
	"KeyF":         KeyF,
	"KeyG":         KeyG,
	"KeyH":         KeyH,
	"KeyI":         KeyI,
	"KeyJ":         KeyJ,
	"KeyK":         KeyK,
	"KeyL":         KeyL,
	"KeyM":         KeyM,
	"KeyN":         KeyN,
	"KeyO":         KeyO,
	"KeyP":         KeyP,
	"KeyQ":         KeyQ,
	"KeyR":         KeyR,
	"KeyS":         KeyS,
	"KeyT":         KeyT,
	"KeyU":         KeyU,
	"KeyV":         KeyV,
	"KeyW":         KeyW,
	"KeyX":         KeyX,
	"KeyY":         KeyY,
	"KeyZ":         KeyZ,
	"Escape":       KeyEscape,
	"Enter":        KeyEnter,
	"Tab":          KeyTab,
	"Backspace":    KeyBackspace,
	"ArrowRight":   KeyRight,
	"ArrowLeft":    KeyLeft,
	"ArrowDown":    KeyDown,
	"ArrowUp":      KeyUp,
	"ShiftLeft":    KeyLeftShift,
	"ControlLeft":  KeyLeftControl,
	"AltLeft":      KeyLeftAlt,
	"ShiftRight":   KeyRightShift,
	"ControlRight": KeyRightControl,
	"AltRight":     KeyRightAlt,
}

// KeyFromCode translates a browser KeyboardEvent.code. Unknown codes report
// false and are dropped by callers.
func KeyFromCode(code string) (Key, bool) {
	k, ok := domCodes[code]
	return k, ok
}
