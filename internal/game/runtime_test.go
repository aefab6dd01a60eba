package game

import (
	"fmt"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gamekit/internal/input"
	"gamekit/internal/logger"
	"gamekit/internal/storage"
)

// stubGame records callback invocations in order.
type stubGame struct {
	calls []string
	binds *input.Map[string, string]
}

func (g *stubGame) Title() string             { return "stub" }
func (g *stubGame) TargetLimits() wgpu.Limits { return wgpu.Limits{} }
func (g *stubGame) DefaultInputs() *input.Map[string, string] {
	return g.binds
}
func (g *stubGame) Init(d *Data) error { return nil }
func (g *stubGame) WindowResize(d *Data, size Size) {
	g.calls = append(g.calls, fmt.Sprintf("resize:%dx%d", size.Width, size.Height))
}
func (g *stubGame) HandleLinearInput(d *Data, id string, a input.LinearActivation) {
	g.calls = append(g.calls, fmt.Sprintf("linear:%s:%s", id, a.Transition))
}
func (g *stubGame) HandleVectorInput(d *Data, id string, a input.VectorActivation) {
	g.calls = append(g.calls, fmt.Sprintf("vector:%s:%.2f,%.2f", id, a.X, a.Y))
}
func (g *stubGame) RenderTo(d *Data, view *wgpu.TextureView) error { return nil }
func (g *stubGame) Finished(d *Data)                               { g.calls = append(g.calls, "finished") }

func stubBinds() *input.Map[string, string] {
	m := input.Empty[string, string]()
	m.AssignLinear(input.KeySource(input.KeyW), "forward")
	m.AssignLinear(input.KeySource(input.KeyEscape), "quit")
	m.AssignLinear(input.MotionImpulseSource(input.MotionRight), "nudge")
	m.AssignVector(input.MotionSource(), "look")
	return m
}

func newTestLoop(t *testing.T, opts Options) (*stubGame, *loop[string, string], *Data) {
	t.Helper()
	t.Chdir(t.TempDir())
	g := &stubGame{binds: stubBinds()}
	data := &Data{ExitFlag: NewExitFlag(), Log: logger.New()}
	l := newLoop(g, data, opts)
	l.binds = g.binds
	return g, l, data
}

func TestDispatchLinearBeforeVector(t *testing.T) {
	g, l, _ := newTestLoop(t, Options{})

	l.pushEvent(input.MotionEvent(1, 2))
	l.pushEvent(input.KeyEvent(input.KeyW, true))
	l.dispatchFrame()

	require.Equal(t, []string{"linear:forward:started", "vector:look:1.00,2.00"}, g.calls)
}

func TestDispatchResizeAfterInput(t *testing.T) {
	g, l, data := newTestLoop(t, Options{})

	l.resize(Size{Width: 800, Height: 600})
	l.pushEvent(input.KeyEvent(input.KeyW, true))
	l.dispatchFrame()

	require.Equal(t, []string{"linear:forward:started", "resize:800x600"}, g.calls)
	assert.Equal(t, Size{Width: 800, Height: 600}, data.Size)
}

func TestZeroSizeResizeSkipped(t *testing.T) {
	g, l, _ := newTestLoop(t, Options{})

	l.resize(Size{Width: 0, Height: 600})
	l.dispatchFrame()

	assert.Empty(t, g.calls)
}

func TestUIModeSuppressesDispatchKeepsState(t *testing.T) {
	g, l, data := newTestLoop(t, Options{})

	l.pushEvent(input.KeyEvent(input.KeyW, true))
	l.dispatchFrame()
	require.Equal(t, []string{"linear:forward:started"}, g.calls)

	data.SetInputMode(InputModeUI)
	g.calls = nil
	l.dispatchFrame()
	assert.Empty(t, g.calls, "UI mode suppresses dispatch")
	mode, changed := l.takeModeChange()
	assert.True(t, changed)
	assert.Equal(t, InputModeUI, mode)

	data.SetInputMode(InputModeExclusive)
	l.dispatchFrame()
	require.Equal(t, []string{"linear:forward:held"}, g.calls,
		"hold survives the mode round trip")
}

func TestExitCommandRaisesFlag(t *testing.T) {
	_, l, data := newTestLoop(t, Options{})

	data.Exit()
	assert.True(t, data.ExitFlag.IsSet(), "flag raised immediately for pollers")
	l.dispatchFrame()
	assert.True(t, data.ExitFlag.IsSet())
}

func TestMotionScaledAndImpulseOnDominantAxis(t *testing.T) {
	g, l, _ := newTestLoop(t, Options{})

	l.pushMotion(5, 1)
	l.dispatchFrame()

	require.Equal(t, []string{"linear:nudge:started", "vector:look:0.05,0.01"}, g.calls)
}

func TestSmallMotionFiresNoImpulse(t *testing.T) {
	g, l, _ := newTestLoop(t, Options{})

	l.pushMotion(2, 1)
	l.dispatchFrame()

	require.Equal(t, []string{"vector:look:0.02,0.01"}, g.calls)
}

func TestSetMouseSensitivityCommand(t *testing.T) {
	g, l, data := newTestLoop(t, Options{})

	data.SetMouseSensitivity(0.1)
	l.dispatchFrame()
	g.calls = nil

	l.pushMotion(1, 1)
	l.dispatchFrame()
	require.Equal(t, []string{"vector:look:0.10,0.10"}, g.calls)
}

func TestLoadKeybindsMergesStoredOverDefaults(t *testing.T) {
	_, l, _ := newTestLoop(t, Options{})

	stored := input.Empty[string, string]()
	stored.AssignLinear(input.KeySource(input.KeyW), "back")
	data, err := stored.MarshalJSON()
	require.NoError(t, err)
	seedKeybinds(t, string(data))

	l.loadKeybinds()
	id, ok := l.binds.LookupLinear(input.KeySource(input.KeyW))
	require.True(t, ok)
	assert.Equal(t, "back", id, "stored binding wins")
	id, ok = l.binds.LookupLinear(input.KeySource(input.KeyEscape))
	require.True(t, ok)
	assert.Equal(t, "quit", id, "unconflicted default kept")
}

func seedKeybinds(t *testing.T, data string) {
	t.Helper()
	require.NoError(t, storage.Store("keybinds", data))
}

func TestOptionsDefaults(t *testing.T) {
	assert.Equal(t, Size{Width: 1280, Height: 720}, Options{}.size())
	assert.Equal(t, Size{Width: 640, Height: 480}, Options{Width: 640, Height: 480}.size())

	g := &stubGame{}
	assert.Equal(t, "stub", Options{}.title(g))
	assert.Equal(t, "override", Options{Title: "override"}.title(g))
}
