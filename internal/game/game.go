package game

import (
	"sync/atomic"

	"github.com/cogentcore/webgpu/wgpu"

	"gamekit/internal/input"
	"gamekit/internal/logger"
)

// Size is a window size in framebuffer pixels.
type Size struct {
	Width  uint32
	Height uint32
}

// InputMode controls cursor capture and whether mapped input reaches the game.
type InputMode int

const (
	// InputModeExclusive captures the cursor and routes all input to the game.
	InputModeExclusive InputMode = iota
	// InputModeUI frees the cursor for UI interaction and suppresses mapped
	// game input. Physical state is still tracked so holds survive the switch.
	InputModeUI
	// InputModeUnified frees the cursor but keeps dispatching game input.
	InputModeUnified
)

// CapturesCursor reports whether the host should hide and lock the cursor.
func (m InputMode) CapturesCursor() bool { return m == InputModeExclusive }

// DispatchesInput reports whether mapped activations reach the game's handlers.
func (m InputMode) DispatchesInput() bool { return m != InputModeUI }

func (m InputMode) String() string {
	switch m {
	case InputModeExclusive:
		return "exclusive"
	case InputModeUI:
		return "ui"
	case InputModeUnified:
		return "unified"
	}
	return "invalid"
}

// ExitFlag is a shared shutdown flag. Copies refer to the same underlying
// value, so a game can hand one to a worker goroutine which polls IsSet while
// the loop keeps the original.
type ExitFlag struct {
	v *atomic.Bool
}

// NewExitFlag returns an unset flag.
func NewExitFlag() ExitFlag {
	return ExitFlag{v: new(atomic.Bool)}
}

// Set raises the flag. It cannot be lowered again.
func (f ExitFlag) Set() { f.v.Store(true) }

// IsSet reports whether the flag has been raised.
func (f ExitFlag) IsSet() bool { return f.v.Load() }

type commandKind int

const (
	cmdExit commandKind = iota
	cmdSetInputMode
	cmdSetMouseSensitivity
)

type command struct {
	kind        commandKind
	mode        InputMode
	sensitivity float32
}

// Data is the per-run state handed to every game callback. The runtime owns
// it; games read the GPU handles and queue commands through the methods below.
// Commands take effect at the start of the next frame, never mid-callback.
type Data struct {
	Device        *wgpu.Device
	Queue         *wgpu.Queue
	SurfaceFormat wgpu.TextureFormat
	// Limits is what the device was actually granted, the intersection of the
	// adapter's limits and the game's TargetLimits.
	Limits wgpu.Limits
	Size   Size
	// ExitFlag mirrors the Exit command and may be shared with goroutines.
	ExitFlag ExitFlag
	Log      *logger.Logger

	commands []command
}

// Exit requests a clean shutdown after the current frame.
func (d *Data) Exit() {
	d.commands = append(d.commands, command{kind: cmdExit})
	d.ExitFlag.Set()
}

// SetInputMode changes cursor capture and input dispatch from the next frame.
func (d *Data) SetInputMode(m InputMode) {
	d.commands = append(d.commands, command{kind: cmdSetInputMode, mode: m})
}

// SetMouseSensitivity scales pointer motion deltas from the next frame.
func (d *Data) SetMouseSensitivity(s float32) {
	d.commands = append(d.commands, command{kind: cmdSetMouseSensitivity, sensitivity: s})
}

func (d *Data) drainCommands() []command {
	c := d.commands
	d.commands = nil
	return c
}

// Game is what an application implements to run under the runtime. L and V
// are the game's own semantic identifiers for linear and vector inputs,
// usually small enum types.
type Game[L, V comparable] interface {
	// Title is the window title.
	Title() string

	// TargetLimits is the device limits the game would like. The granted
	// device clamps these to what the adapter supports.
	TargetLimits() wgpu.Limits

	// DefaultInputs is the factory-default binding set. Stored user keybinds
	// are merged over it at startup.
	DefaultInputs() *input.Map[L, V]

	// Init runs once after the device and surface exist, before the first
	// frame. A non-nil error aborts the run.
	Init(d *Data) error

	// WindowResize runs when the framebuffer size changes, before the next
	// render.
	WindowResize(d *Data, size Size)

	// HandleLinearInput receives one activation of a bound linear input.
	HandleLinearInput(d *Data, id L, a input.LinearActivation)

	// HandleVectorInput receives the frame's accumulated delta for a bound
	// vector input.
	HandleVectorInput(d *Data, id V, a input.VectorActivation)

	// RenderTo draws the frame into view. A non-nil error aborts the run.
	RenderTo(d *Data, view *wgpu.TextureView) error

	// Finished runs once after the loop exits, before GPU teardown.
	Finished(d *Data)
}
