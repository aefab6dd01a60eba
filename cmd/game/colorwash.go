package main

import (
	"encoding/binary"
	"math"

	"github.com/cogentcore/webgpu/wgpu"

	"gamekit/internal/fragtools"
	"gamekit/internal/game"
	"gamekit/internal/input"
)

// Action is the demo's linear input vocabulary.
type Action int

const (
	ActionForward Action = iota
	ActionBack
	ActionLeft
	ActionRight
	ActionZoom
	ActionToggleUI
	ActionQuit
)

// Axis is the demo's vector input vocabulary.
type Axis int

const (
	AxisLook Axis = iota
)

// ColorWash paints a full-frame color field that drifts with WASD movement,
// swirls with pointer look and scales with the wheel. It exists to exercise
// the whole runtime: every input channel feeds a visible parameter.
type ColorWash struct {
	pipeline  *fragtools.Pipeline
	uniforms  *wgpu.Buffer
	bindGroup *wgpu.BindGroup

	time    float32
	offsetX float32
	offsetY float32
	lookX   float32
	lookY   float32
	zoom    float32

	moveX float32
	moveY float32

	uiMode bool
}

const washFragmentWGSL = `
struct Params {
    time: f32,
    zoom: f32,
    offset: vec2<f32>,
    look: vec2<f32>,
    pad: vec2<f32>,
}

@group(0) @binding(0) var<uniform> params: Params;

@fragment
fn fs_main(@location(0) uv: vec2<f32>) -> @location(0) vec4<f32> {
    let p = uv * params.zoom + params.offset;
    let hue = params.time * 0.3 + p.x * 0.7 + params.look.x;
    let r = 0.5 + 0.5 * sin(hue);
    let g = 0.5 + 0.5 * sin(hue + 2.094);
    let b = 0.5 + 0.5 * sin(hue + 4.188 + p.y * 0.7 + params.look.y);
    return vec4<f32>(r, g, b, 1.0);
}
`

// uniformSize is the Params struct above: 8 floats.
const uniformSize = 8 * 4

func NewColorWash() *ColorWash {
	return &ColorWash{zoom: 1}
}

func (c *ColorWash) Title() string { return "color wash" }

func (c *ColorWash) TargetLimits() wgpu.Limits {
	return wgpu.DefaultLimits()
}

func (c *ColorWash) DefaultInputs() *input.Map[Action, Axis] {
	m := input.Empty[Action, Axis]()
	m.AssignLinear(input.KeySource(input.KeyW), ActionForward)
	m.AssignLinear(input.KeySource(input.KeyS), ActionBack)
	m.AssignLinear(input.KeySource(input.KeyA), ActionLeft)
	m.AssignLinear(input.KeySource(input.KeyD), ActionRight)
	m.AssignLinear(input.KeySource(input.KeyEscape), ActionQuit)
	m.AssignLinear(input.KeySource(input.KeyTab), ActionToggleUI)
	m.AssignLinear(input.WheelSource(), ActionZoom)
	// A hard pointer flick nudges the wash sideways even with look idle.
	m.AssignLinear(input.MotionImpulseSource(input.MotionLeft), ActionLeft)
	m.AssignLinear(input.MotionImpulseSource(input.MotionRight), ActionRight)
	m.AssignVector(input.MotionSource(), AxisLook)
	return m
}

func (c *ColorWash) Init(d *game.Data) error {
	layout, err := d.Device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "wash params",
		Entries: []wgpu.BindGroupLayoutEntry{{
			Binding:    0,
			Visibility: wgpu.ShaderStageFragment,
			Buffer: wgpu.BufferBindingLayout{
				Type: wgpu.BufferBindingTypeUniform,
			},
		}},
	})
	if err != nil {
		return err
	}
	defer layout.Release()

	pipelineLayout, err := d.Device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "wash",
		BindGroupLayouts: []*wgpu.BindGroupLayout{layout},
	})
	if err != nil {
		return err
	}
	defer pipelineLayout.Release()

	module, err := d.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "wash fragment",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: washFragmentWGSL},
	})
	if err != nil {
		return err
	}
	defer module.Release()

	c.pipeline, err = fragtools.NewPipeline(d.Device, &fragtools.PipelineDescriptor{
		Label:  "wash",
		Layout: pipelineLayout,
		Fragment: wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{{
				Format:    d.SurfaceFormat,
				Blend:     &wgpu.BlendStateReplace,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
	})
	if err != nil {
		return err
	}

	c.uniforms, err = d.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "wash params",
		Size:  uniformSize,
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return err
	}

	c.bindGroup, err = d.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "wash params",
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{{
			Binding: 0,
			Buffer:  c.uniforms,
			Offset:  0,
			Size:    wgpu.WholeSize,
		}},
	})
	return err
}

func (c *ColorWash) WindowResize(d *game.Data, size game.Size) {
	d.Log.Logf("wash: viewport %dx%d", size.Width, size.Height)
}

func (c *ColorWash) HandleLinearInput(d *game.Data, id Action, a input.LinearActivation) {
	switch id {
	case ActionQuit:
		if a.Transition == input.Started {
			d.Exit()
		}
	case ActionToggleUI:
		if a.Transition == input.Started {
			c.uiMode = !c.uiMode
			if c.uiMode {
				d.SetInputMode(game.InputModeUnified)
			} else {
				d.SetInputMode(game.InputModeExclusive)
			}
		}
	case ActionZoom:
		// Wheel impulses arrive as Started with clamp(|delta|) magnitude.
		c.zoom += a.Magnitude * 0.2
		if c.zoom > 4 {
			c.zoom = 0.25
		}
	case ActionForward, ActionBack:
		v := float32(0)
		if a.Transition != input.Stopped {
			v = a.Magnitude
		}
		if id == ActionForward {
			c.moveY = -v
		} else {
			c.moveY = v
		}
	case ActionLeft, ActionRight:
		v := float32(0)
		if a.Transition != input.Stopped {
			v = a.Magnitude
		}
		if id == ActionLeft {
			c.moveX = -v
		} else {
			c.moveX = v
		}
	}
}

func (c *ColorWash) HandleVectorInput(d *game.Data, id Axis, a input.VectorActivation) {
	if id == AxisLook {
		c.lookX += a.X
		c.lookY += a.Y
	}
}

func (c *ColorWash) RenderTo(d *game.Data, view *wgpu.TextureView) error {
	const step = 1.0 / 60

	c.time += step
	c.offsetX += c.moveX * step
	c.offsetY += c.moveY * step

	if err := d.Queue.WriteBuffer(c.uniforms, 0, c.uniformBytes()); err != nil {
		return err
	}

	encoder, err := d.Device.CreateCommandEncoder(nil)
	if err != nil {
		return err
	}
	defer encoder.Release()

	pass := fragtools.BeginPass(encoder, &fragtools.PassDescriptor{
		Label: "wash",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: wgpu.Color{R: 0, G: 0, B: 0, A: 1},
		}},
	})
	pass.SetPipeline(c.pipeline)
	pass.SetBindGroup(0, c.bindGroup, nil)
	pass.Draw()
	pass.End()

	cmd, err := encoder.Finish(nil)
	if err != nil {
		return err
	}
	defer cmd.Release()
	d.Queue.Submit(cmd)
	return nil
}

func (c *ColorWash) Finished(d *game.Data) {
	if c.bindGroup != nil {
		c.bindGroup.Release()
	}
	if c.uniforms != nil {
		c.uniforms.Release()
	}
	if c.pipeline != nil {
		c.pipeline.Release()
	}
	d.Log.Log("wash: finished")
}

func (c *ColorWash) uniformBytes() []byte {
	vals := [8]float32{c.time, c.zoom, c.offsetX, c.offsetY, c.lookX, c.lookY, 0, 0}
	out := make([]byte, 0, uniformSize)
	for _, f := range vals {
		out = binary.LittleEndian.AppendUint32(out, math.Float32bits(f))
	}
	return out
}
