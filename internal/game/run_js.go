//go:build js

package game

import (
	"context"
	"fmt"
	"syscall/js"

	"github.com/cogentcore/webgpu/wgpu"

	"gamekit/internal/debug"
	"gamekit/internal/gpu"
	"gamekit/internal/input"
	"gamekit/internal/logger"
)

// canvasID is the id of the canvas element the game renders into.
const canvasID = "app"

// wheelDetent normalizes DOM wheel deltaY pixels into scroll detents so wheel
// bindings see comparable magnitudes on both hosts.
const wheelDetent = 100

// Run acquires the browser's WebGPU adapter, configures the canvas surface
// and drives the game's frame loop on requestAnimationFrame until the game
// requests exit.
func Run[L, V comparable](g Game[L, V], opts Options) error {
	log := opts.Log
	if log == nil {
		log = logger.New()
	}

	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", canvasID)
	if canvas.IsNull() || canvas.IsUndefined() {
		return fmt.Errorf("canvas %q not found", canvasID)
	}
	size := opts.size()
	canvas.Set("width", int(size.Width))
	canvas.Set("height", int(size.Height))
	doc.Set("title", opts.title(g))

	inst := wgpu.CreateInstance(nil)
	defer inst.Release()

	surface := inst.CreateSurface(&wgpu.SurfaceDescriptor{})
	defer surface.Release()

	adapter, err := gpu.RequestPowerfulAdapter(context.Background(), gpu.NewBrowserInstance(inst), opts.query())
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

	caps := surface.GetCapabilities(raw.Raw())
	config := &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      browserFormat(caps.Formats),
		Width:       size.Width,
		Height:      size.Height,
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   browserAlphaMode(caps.AlphaModes),
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

	listeners := hookDOMInput(canvas, l)
	defer func() {
		for _, f := range listeners {
			f.Release()
		}
	}()
	applyPointerLock(canvas, l.mode)

	done := make(chan error, 1)
	var tick js.Func
	tick = js.FuncOf(func(this js.Value, args []js.Value) any {
		if data.ExitFlag.IsSet() {
			done <- nil
			return nil
		}

		// The page may resize the canvas between frames.
		w := uint32(canvas.Get("width").Int())
		h := uint32(canvas.Get("height").Int())
		if w != 0 && h != 0 && (w != config.Width || h != config.Height) {
			config.Width, config.Height = w, h
			surface.Configure(raw.Raw(), device, config)
			l.resize(Size{Width: w, Height: h})
			log.Logf("resize: %dx%d", w, h)
		}

		l.dispatchFrame()
		if mode, changed := l.takeModeChange(); changed {
			applyPointerLock(canvas, mode)
		}
		if data.ExitFlag.IsSet() {
			done <- nil
			return nil
		}

		frame, err := surface.GetCurrentTexture()
		if err != nil {
			log.Logf("surface: %v", err)
			surface.Configure(raw.Raw(), device, config)
			js.Global().Call("requestAnimationFrame", tick)
			return nil
		}
		view, err := frame.CreateView(nil)
		if err != nil {
			log.Logf("surface view: %v", err)
			js.Global().Call("requestAnimationFrame", tick)
			return nil
		}
		renderErr := g.RenderTo(data, view)
		view.Release()
		if renderErr != nil {
			done <- fmt.Errorf("render: %w", renderErr)
			return nil
		}
		surface.Present()
		stats.Frame()

		js.Global().Call("requestAnimationFrame", tick)
		return nil
	})
	js.Global().Call("requestAnimationFrame", tick)

	err = <-done
	tick.Release()
	log.Log("shutting down")
	g.Finished(data)
	return err
}

// hookDOMInput attaches key listeners to the document and pointer listeners
// to the canvas, all feeding the loop's tracker. The returned funcs must be
// released when the run ends.
func hookDOMInput[L, V comparable](canvas js.Value, l *loop[L, V]) []js.Func {
	doc := js.Global().Get("document")

	keydown := js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := args[0]
		if ev.Get("repeat").Bool() {
			return nil
		}
		if k, ok := input.KeyFromCode(ev.Get("code").String()); ok {
			l.pushEvent(input.KeyEvent(k, true).WithModifiers(domModifiers(ev)))
			ev.Call("preventDefault")
		}
		return nil
	})
	keyup := js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := args[0]
		if k, ok := input.KeyFromCode(ev.Get("code").String()); ok {
			l.pushEvent(input.KeyEvent(k, false).WithModifiers(domModifiers(ev)))
		}
		return nil
	})
	mousedown := js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := args[0]
		l.pushEvent(input.ButtonEvent(domButton(ev.Get("button").Int()), true).WithModifiers(domModifiers(ev)))
		return nil
	})
	mouseup := js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := args[0]
		l.pushEvent(input.ButtonEvent(domButton(ev.Get("button").Int()), false).WithModifiers(domModifiers(ev)))
		return nil
	})
	wheel := js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := args[0]
		// DOM wheel Y grows scrolling down; wheel sources use up-positive.
		l.pushEvent(input.WheelEvent(float32(-ev.Get("deltaY").Float() / wheelDetent)))
		ev.Call("preventDefault")
		return nil
	})
	mousemove := js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := args[0]
		l.pushMotion(float32(ev.Get("movementX").Float()), float32(ev.Get("movementY").Float()))
		return nil
	})

	doc.Call("addEventListener", "keydown", keydown)
	doc.Call("addEventListener", "keyup", keyup)
	canvas.Call("addEventListener", "mousedown", mousedown)
	canvas.Call("addEventListener", "mouseup", mouseup)
	canvas.Call("addEventListener", "wheel", wheel)
	canvas.Call("addEventListener", "mousemove", mousemove)

	return []js.Func{keydown, keyup, mousedown, mouseup, wheel, mousemove}
}

func domModifiers(ev js.Value) input.Modifiers {
	var out input.Modifiers
	if ev.Get("shiftKey").Bool() {
		out |= input.ModShift
	}
	if ev.Get("ctrlKey").Bool() {
		out |= input.ModCtrl
	}
	if ev.Get("altKey").Bool() {
		out |= input.ModAlt
	}
	if ev.Get("metaKey").Bool() {
		out |= input.ModLogo
	}
	return out
}

func applyPointerLock(canvas js.Value, mode InputMode) {
	if mode.CapturesCursor() {
		canvas.Call("requestPointerLock")
		return
	}
	js.Global().Get("document").Call("exitPointerLock")
}

// domButton maps DOM button numbering onto the shared numbering, which keeps
// GLFW's order (right before middle).
func domButton(b int) input.MouseButton {
	switch b {
	case 1:
		return input.MouseMiddle
	case 2:
		return input.MouseRight
	default:
		return input.MouseLeft
	}
}

// browserFormat prefers the sRGB surface format when offered.
func browserFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
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

func browserAlphaMode(modes []wgpu.CompositeAlphaMode) wgpu.CompositeAlphaMode {
	if len(modes) > 0 {
		return modes[0]
	}
	return wgpu.CompositeAlphaModeAuto
}
