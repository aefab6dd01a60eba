// Package fragtools builds fragment-only render pipelines. A built-in
// fullscreen-triangle vertex stage covers the whole target, so games supply
// nothing but a fragment shader and its bindings to do full-frame work.
package fragtools

import (
	"encoding/binary"
	"math"

	"github.com/cogentcore/webgpu/wgpu"
)

// vertexWGSL is the shared vertex stage. The triangle overshoots the clip
// volume so its clipped interior covers the frame exactly; uv equals the
// clip-space xy of each fragment.
const vertexWGSL = `
struct VertexOutput {
    @builtin(position) position: vec4<f32>,
    @location(0) uv: vec2<f32>,
}

@vertex
fn vs_main(@location(0) position: vec4<f32>, @location(1) uv: vec2<f32>) -> VertexOutput {
    var out: VertexOutput;
    out.position = position;
    out.uv = uv;
    return out;
}
`

// vertexStride: vec4 position + vec2 uv, float32 each.
const vertexStride = 6 * 4

// triangleVertices is the oversized triangle. Positions extend past clip
// bounds on every side; uv carries the position xy through to the fragment.
var triangleVertices = [3][6]float32{
	{-2, -1, 0.5, 1 /* uv */, -2, -1},
	{2, -1, 0.5, 1 /* uv */, 2, -1},
	{0, 2, 0.5, 1 /* uv */, 0, 2},
}

// PipelineDescriptor configures a fragment-only pipeline. Only the fragment
// stage and its layout are caller-supplied.
type PipelineDescriptor struct {
	Label string

	// Layout carries the fragment shader's bind group layouts. Nil means
	// no bindings.
	Layout *wgpu.PipelineLayout

	// Fragment is the caller's fragment stage: module, entry point and
	// color targets.
	Fragment wgpu.FragmentState

	// Multisample overrides the default single-sample state when Count > 0.
	Multisample wgpu.MultisampleState
}

// Pipeline is a render pipeline with its fullscreen-triangle vertex buffer.
type Pipeline struct {
	pipeline *wgpu.RenderPipeline
	vertices *wgpu.Buffer
}

// NewPipeline builds a fragment-only pipeline on device. The caller owns the
// result and releases it when done.
func NewPipeline(device *wgpu.Device, desc *PipelineDescriptor) (*Pipeline, error) {
	module, err := device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          "fullscreen triangle",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: vertexWGSL},
	})
	if err != nil {
		return nil, err
	}
	defer module.Release()

	multisample := desc.Multisample
	if multisample.Count == 0 {
		multisample = wgpu.MultisampleState{Count: 1, Mask: 0xFFFFFFFF}
	}

	pipeline, err := device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  desc.Label,
		Layout: desc.Layout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{{
				ArrayStride: vertexStride,
				StepMode:    wgpu.VertexStepModeVertex,
				Attributes: []wgpu.VertexAttribute{
					{Format: wgpu.VertexFormatFloat32x4, Offset: 0, ShaderLocation: 0},
					{Format: wgpu.VertexFormatFloat32x2, Offset: 16, ShaderLocation: 1},
				},
			}},
		},
		Fragment: &desc.Fragment,
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeNone,
		},
		Multisample: multisample,
	})
	if err != nil {
		return nil, err
	}

	vertices, err := device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    "fullscreen triangle vertices",
		Contents: vertexBytes(),
		Usage:    wgpu.BufferUsageVertex,
	})
	if err != nil {
		pipeline.Release()
		return nil, err
	}

	return &Pipeline{pipeline: pipeline, vertices: vertices}, nil
}

// Release frees the pipeline and its vertex buffer.
func (p *Pipeline) Release() {
	p.pipeline.Release()
	p.vertices.Release()
}

func vertexBytes() []byte {
	out := make([]byte, 0, len(triangleVertices)*vertexStride)
	for _, v := range triangleVertices {
		for _, f := range v {
			out = binary.LittleEndian.AppendUint32(out, math.Float32bits(f))
		}
	}
	return out
}

// PassDescriptor configures a color-attachments-only render pass.
type PassDescriptor struct {
	Label            string
	ColorAttachments []wgpu.RenderPassColorAttachment
}

// Pass wraps a render pass restricted to fullscreen-triangle draws.
type Pass struct {
	rp *wgpu.RenderPassEncoder
}

// BeginPass opens a render pass on encoder.
func BeginPass(encoder *wgpu.CommandEncoder, desc *PassDescriptor) *Pass {
	rp := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label:            desc.Label,
		ColorAttachments: desc.ColorAttachments,
	})
	return &Pass{rp: rp}
}

// SetPipeline binds p's pipeline together with its vertex buffer.
func (ps *Pass) SetPipeline(p *Pipeline) {
	ps.rp.SetPipeline(p.pipeline)
	ps.rp.SetVertexBuffer(0, p.vertices, 0, wgpu.WholeSize)
}

// SetBindGroup binds the caller's fragment resources.
func (ps *Pass) SetBindGroup(index uint32, group *wgpu.BindGroup, dynamicOffsets []uint32) {
	ps.rp.SetBindGroup(index, group, dynamicOffsets)
}

// Draw issues the fixed three-vertex fullscreen draw.
func (ps *Pass) Draw() {
	ps.rp.Draw(3, 1, 0, 0)
}

// End closes the pass.
func (ps *Pass) End() {
	ps.rp.End()
}
