//go:build !js

package game

import (
	"context"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"

	"gamekit/internal/debug"
	"gamekit/internal/gpu"
	"gamekit/internal/input"
	"gamekit/internal/logger"
)

// Run opens a window, selects an adapter, creates a device and drives the
// game's frame loop until the window closes or the game requests exit.
// Must be called on the main thread; GLFW requires it.
func Run[L, V comparable](g Game[L, V], opts Options) error {
	log := opts.Log
	if log == nil {
		log = logger.New()
	}

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("window init: %w", err)
	}
	defer glfw.Terminate()

	size := opts.size()
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(int(size.Width), int(size.Height), opts.title(g), nil, nil)
	if err != nil {
		return fmt.Errorf("window create: %w", err)
	}
	defer window.Destroy()

	inst := wgpu.CreateInstance(nil)
	defer inst.Release()

	surface := inst.CreateSurface(wgpuglfw.GetSurfaceDescriptor(window))
	defer surface.Release()

	adapter, err := gpu.RequestPowerfulAdapter(context.Background(), gpu.NewNativeInstance(inst), opts.query())
	if err != nil {
		alertUser(fmt.Sprintf("failed to initialise: %v", err))
		return err
	}
	info := adapter.Info()
	log.Logf("adapter: %s", info)

	device, queue, granted, err := gpu.NewDevice(adapter, g.TargetLimits(), opts.title(g))
	if err != nil {
		alertUser(fmt.Sprintf("failed to initialise: %v", err))
		return err
	}
	defer device.Release()

	raw, ok := adapter.(interface{ Raw() *wgpu.Adapter })
	if !ok {
		return fmt.Errorf("adapter %q has no native handle", info.Name)
	}

	// Surface size follows the framebuffer, not the requested window size.
	fbw, fbh := window.GetFramebufferSize()
	size = Size{Width: uint32(fbw), Height: uint32(fbh)}

	caps := surface.GetCapabilities(raw.Raw())
	config := &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      preferredFormat(caps.Formats),
		Width:       size.Width,
		Height:      size.Height,
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   preferredAlphaMode(caps.AlphaModes),
	}
	surface.Configure(raw.Raw(), device, config)

	data := &Data{
		Device:        device,
		Queue:         queue,
		SurfaceFormat: config.Format,
		Limits:        granted,
		Size:          size,
		ExitFlag:      NewExitFlag(),
		Log:           log,
	}

	l := newLoop(g, data, opts)
	l.loadKeybinds()
	if err := g.Init(data); err != nil {
		alertUser(fmt.Sprintf("failed to initialise: %v", err))
		return fmt.Errorf("game init: %w", err)
	}

	stats := debug.New(log)
	stats.SetShowFPS(opts.LogFrameStats)
	stats.SetShowMemAlloc(opts.LogFrameStats)

	applyCursorMode(window, l.mode)
	hookInput(window, l)

	needsConfigure := false
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		if width == 0 || height == 0 {
			return
		}
		l.resize(Size{Width: uint32(width), Height: uint32(height)})
		needsConfigure = true
	})

	for !window.ShouldClose() && !data.ExitFlag.IsSet() {
		glfw.PollEvents()

		if needsConfigure && l.pendingResize != nil {
			config.Width = l.pendingResize.Width
			config.Height = l.pendingResize.Height
			surface.Configure(raw.Raw(), device, config)
			needsConfigure = false
			log.Logf("resize: %dx%d", config.Width, config.Height)
		}

		l.dispatchFrame()
		if mode, changed := l.takeModeChange(); changed {
			applyCursorMode(window, mode)
		}
		if data.ExitFlag.IsSet() || window.ShouldClose() {
			break
		}

		frame, err := surface.GetCurrentTexture()
		if err != nil {
			log.Logf("surface: %v", err)
			surface.Configure(raw.Raw(), device, config)
			continue
		}
		view, err := frame.CreateView(nil)
		if err != nil {
			log.Logf("surface view: %v", err)
			continue
		}
		renderErr := g.RenderTo(data, view)
		view.Release()
		if renderErr != nil {
			return fmt.Errorf("render: %w", renderErr)
		}
		surface.Present()
		stats.Frame()
	}

	log.Log("shutting down")
	g.Finished(data)
	return nil
}

// hookInput routes window callbacks into the loop's tracker. Repeats are
// dropped; the tracker synthesizes held activations from retained state.
func hookInput[L, V comparable](window *glfw.Window, l *loop[L, V]) {
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}
		// Key codes are numerically GLFW's already.
		l.pushEvent(input.KeyEvent(input.Key(key), action == glfw.Press).WithModifiers(glfwModifiers(mods)))
	})
	window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		l.pushEvent(input.ButtonEvent(input.MouseButton(button), action == glfw.Press).WithModifiers(glfwModifiers(mods)))
	})
	window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		l.pushEvent(input.WheelEvent(float32(yoff)))
	})

	var lastX, lastY float64
	tracking := false
	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		if !tracking {
			lastX, lastY = x, y
			tracking = true
			return
		}
		dx, dy := x-lastX, y-lastY
		lastX, lastY = x, y
		l.pushMotion(float32(dx), float32(dy))
	})
}

func glfwModifiers(mod glfw.ModifierKey) input.Modifiers {
	var out input.Modifiers
	if mod&glfw.ModShift != 0 {
		out |= input.ModShift
	}
	if mod&glfw.ModControl != 0 {
		out |= input.ModCtrl
	}
	if mod&glfw.ModAlt != 0 {
		out |= input.ModAlt
	}
	if mod&glfw.ModSuper != 0 {
		out |= input.ModLogo
	}
	return out
}

func applyCursorMode(window *glfw.Window, mode InputMode) {
	if mode.CapturesCursor() {
		window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
		return
	}
	window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
}

// preferredFormat picks an sRGB surface format when the adapter offers one,
// otherwise the adapter's first preference.
func preferredFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	for _, f := range formats {
		if f == wgpu.TextureFormatBGRA8UnormSrgb || f == wgpu.TextureFormatRGBA8UnormSrgb {
			return f
		}
	}
	if len(formats) > 0 {
		return formats[0]
	}
	return wgpu.TextureFormatBGRA8Unorm
}

func preferredAlphaMode(modes []wgpu.CompositeAlphaMode) wgpu.CompositeAlphaMode {
	if len(modes) > 0 {
		return modes[0]
	}
	return wgpu.CompositeAlphaModeAuto
}
