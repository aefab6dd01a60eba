//go:build !js

package gpu

import (
	"context"

	"github.com/cogentcore/webgpu/wgpu"
)

// NativeInstance adapts a wgpu instance to the Instance interface using
// native adapter enumeration.
type NativeInstance struct {
	inst *wgpu.Instance
}

// NewNativeInstance wraps an existing wgpu instance. The caller keeps
// ownership and is responsible for releasing it.
func NewNativeInstance(inst *wgpu.Instance) *NativeInstance {
	return &NativeInstance{inst: inst}
}

// Adapters enumerates every adapter the instance can see across all backends.
func (n *NativeInstance) Adapters(ctx context.Context) ([]Adapter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := n.inst.EnumerateAdapters(nil)
	out := make([]Adapter, 0, len(raw))
	for _, a := range raw {
		out = append(out, &nativeAdapter{adapter: a})
	}
	return out, nil
}

// nativeAdapter wraps a wgpu adapter handle.
type nativeAdapter struct {
	adapter *wgpu.Adapter
}

func (a *nativeAdapter) Info() AdapterInfo {
	info := a.adapter.GetInfo()
	return AdapterInfo{
		Name:       info.Name,
		DeviceType: deviceTypeFromWGPU(info.AdapterType),
		Backend:    backendFromWGPU(info.BackendType),
		VendorID:   info.VendorId,
		DeviceID:   info.DeviceId,
	}
}

func (a *nativeAdapter) Limits() wgpu.Limits {
	return a.adapter.GetLimits().Limits
}

func (a *nativeAdapter) RequestDevice(label string, limits wgpu.Limits) (*wgpu.Device, error) {
	return a.adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label:          label,
		RequiredLimits: &wgpu.RequiredLimits{Limits: limits},
	})
}

// Raw exposes the underlying handle for surface capability queries.
func (a *nativeAdapter) Raw() *wgpu.Adapter {
	return a.adapter
}

func deviceTypeFromWGPU(t wgpu.AdapterType) DeviceType {
	switch t {
	case wgpu.AdapterTypeDiscreteGPU:
		return DeviceTypeDiscrete
	case wgpu.AdapterTypeIntegratedGPU:
		return DeviceTypeIntegrated
	case wgpu.AdapterTypeCPU:
		return DeviceTypeCPU
	default:
		return DeviceTypeOther
	}
}

func backendFromWGPU(b wgpu.BackendType) Backend {
	switch b {
	case wgpu.BackendTypeVulkan:
		return BackendVulkan
	case wgpu.BackendTypeMetal:
		return BackendMetal
	case wgpu.BackendTypeD3D12:
		return BackendD3D12
	case wgpu.BackendTypeD3D11:
		return BackendD3D11
	case wgpu.BackendTypeOpenGL:
		return BackendOpenGL
	case wgpu.BackendTypeOpenGLES:
		return BackendOpenGLES
	default:
		return BackendWebGPU
	}
}
