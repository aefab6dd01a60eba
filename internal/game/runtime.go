package game

import (
	"encoding/json"
	"fmt"

	"github.com/chewxy/math32"

	"gamekit/internal/gpu"
	"gamekit/internal/input"
	"gamekit/internal/logger"
	"gamekit/internal/storage"
)

const (
	// DefaultMouseSensitivity scales raw pixel deltas into vector activations.
	DefaultMouseSensitivity = 0.01

	// keybindsKey is the storage key user bindings persist under.
	keybindsKey = "keybinds"

	// bigMotionPixels is the raw per-event delta above which pointer motion
	// also fires a directional impulse on its dominant axis.
	bigMotionPixels = 2.0

	defaultWidth  = 1280
	defaultHeight = 720
)

// Options configures a run. The zero value is usable; empty fields fall back
// to the game's own values or built-in defaults.
type Options struct {
	// Width and Height are the initial window size. Zero means 1280x720.
	Width  uint32
	Height uint32

	// Title overrides the game's Title when non-empty.
	Title string

	// Backends restricts adapter selection. Empty means any backend.
	Backends []gpu.Backend

	// ForceAdapterType restricts selection to one hardware tier.
	ForceAdapterType *gpu.DeviceType

	// Blacklist excludes known-bad adapters from selection.
	Blacklist []gpu.AdapterKey

	// MouseSensitivity overrides DefaultMouseSensitivity when positive.
	MouseSensitivity float32

	// LogFrameStats periodically logs FPS and heap use.
	LogFrameStats bool

	// Log receives runtime events. Nil means a fresh logger.New().
	Log *logger.Logger
}

func (o Options) size() Size {
	s := Size{Width: o.Width, Height: o.Height}
	if s.Width == 0 {
		s.Width = defaultWidth
	}
	if s.Height == 0 {
		s.Height = defaultHeight
	}
	return s
}

func (o Options) title(g interface{ Title() string }) string {
	if o.Title != "" {
		return o.Title
	}
	return g.Title()
}

func (o Options) query() gpu.AdapterQuery {
	return gpu.AdapterQuery{
		Backends:  o.Backends,
		Blacklist: o.Blacklist,
		ForceType: o.ForceAdapterType,
	}
}

// loop is the host-independent half of the frame loop. Both the GLFW runner
// and the browser runner own exactly one and feed it events; it owns the
// tracker, the bindings and the dispatch order. Single-threaded, no locks.
type loop[L, V comparable] struct {
	game    Game[L, V]
	data    *Data
	tracker *input.Tracker[L, V]
	binds   *input.Map[L, V]

	mode        InputMode
	modeChanged bool
	sensitivity float32

	pendingResize *Size
}

func newLoop[L, V comparable](g Game[L, V], data *Data, opts Options) *loop[L, V] {
	sens := opts.MouseSensitivity
	if sens <= 0 {
		sens = DefaultMouseSensitivity
	}
	return &loop[L, V]{
		game:        g,
		data:        data,
		tracker:     input.NewTracker[L, V](),
		mode:        InputModeExclusive,
		sensitivity: sens,
	}
}

// loadKeybinds merges stored user bindings over the game's defaults, stored
// winning per source, and writes the merged set back so new defaults appear
// in storage on first run.
func (l *loop[L, V]) loadKeybinds() {
	binds := l.game.DefaultInputs()
	if binds == nil {
		binds = input.Empty[L, V]()
	}
	if raw, ok := storage.Load(keybindsKey); ok {
		stored := input.Empty[L, V]()
		if err := json.Unmarshal([]byte(raw), stored); err != nil {
			l.data.Log.Logf("keybinds: ignoring stored bindings: %v", err)
		} else {
			binds.Union(stored)
		}
	}
	if out, err := json.Marshal(binds); err == nil {
		if err := storage.Store(keybindsKey, string(out)); err != nil {
			l.data.Log.Logf("keybinds: store failed: %v", err)
			alertUser(fmt.Sprintf("failed to access storage: %v", err))
		}
	}
	l.binds = binds
}

// pushEvent feeds one raw event into the tracker. Events are always recorded
// so physical pressed state stays accurate across mode switches; the mode is
// honored at dispatch time instead.
func (l *loop[L, V]) pushEvent(ev input.Event) {
	l.tracker.Record(ev)
}

// pushMotion records a pointer motion delta in raw pixels. The delta is
// scaled by the mouse sensitivity; a delta over bigMotionPixels additionally
// fires a directional impulse on the dominant axis.
func (l *loop[L, V]) pushMotion(dx, dy float32) {
	l.tracker.Record(input.MotionEvent(dx*l.sensitivity, dy*l.sensitivity))

	ax, ay := math32.Abs(dx), math32.Abs(dy)
	if ax <= bigMotionPixels && ay <= bigMotionPixels {
		return
	}
	var dir input.MotionDirection
	var mag float32
	if ax >= ay {
		mag = ax
		dir = input.MotionRight
		if dx < 0 {
			dir = input.MotionLeft
		}
	} else {
		mag = ay
		dir = input.MotionDown
		if dy < 0 {
			dir = input.MotionUp
		}
	}
	l.tracker.Record(input.MotionImpulseEvent(dir, mag*l.sensitivity))
}

// resize defers a size change to the next dispatchFrame. A zero dimension
// means the window is minimized and is skipped.
func (l *loop[L, V]) resize(size Size) {
	if size.Width == 0 || size.Height == 0 {
		return
	}
	l.pendingResize = &size
}

// takeModeChange reports and clears the pending cursor-mode change so the
// host can apply it to the window.
func (l *loop[L, V]) takeModeChange() (InputMode, bool) {
	if !l.modeChanged {
		return l.mode, false
	}
	l.modeChanged = false
	return l.mode, true
}

// dispatchFrame runs the per-frame core in order: drain queued commands,
// reduce the tracker against the bindings, dispatch linear then vector hits,
// then any deferred resize. The host renders after this returns.
func (l *loop[L, V]) dispatchFrame() {
	for _, cmd := range l.data.drainCommands() {
		switch cmd.kind {
		case cmdExit:
			l.data.ExitFlag.Set()
		case cmdSetInputMode:
			if cmd.mode != l.mode {
				l.mode = cmd.mode
				l.modeChanged = true
			}
		case cmdSetMouseSensitivity:
			if cmd.sensitivity > 0 {
				l.sensitivity = cmd.sensitivity
			}
		}
	}

	linear, vector := l.tracker.Reduce(l.binds)
	if l.mode.DispatchesInput() {
		for _, h := range linear {
			l.game.HandleLinearInput(l.data, h.ID, h.Activation)
		}
		for _, h := range vector {
			l.game.HandleVectorInput(l.data, h.ID, h.Activation)
		}
	}

	if l.pendingResize != nil {
		size := *l.pendingResize
		l.pendingResize = nil
		l.data.Size = size
		l.game.WindowResize(l.data, size)
	}
}
