//go:build js

package gpu

import (
	"context"

	"github.com/cogentcore/webgpu/wgpu"
)

// BrowserInstance adapts a wgpu instance to the Instance interface. Browsers
// expose a single adapter chosen by the user agent, so Adapters returns a
// pool of at most one.
type BrowserInstance struct {
	inst *wgpu.Instance
}

// NewBrowserInstance wraps an existing wgpu instance.
func NewBrowserInstance(inst *wgpu.Instance) *BrowserInstance {
	return &BrowserInstance{inst: inst}
}

// Adapters requests the browser's adapter. A browser that does not support
// WebGPU yields an empty pool rather than an error, so selection reports
// the same condition as an exhausted native pool.
func (b *BrowserInstance) Adapters(ctx context.Context) ([]Adapter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a, err := b.inst.RequestAdapter(&wgpu.RequestAdapterOptions{})
	if err != nil || a == nil {
		return nil, nil
	}
	return []Adapter{&browserAdapter{adapter: a}}, nil
}

type browserAdapter struct {
	adapter *wgpu.Adapter
}

// Info reports what the browser is willing to disclose. Identity fields are
// typically zero, which keeps blacklisting a no-op here.
func (a *browserAdapter) Info() AdapterInfo {
	info := a.adapter.GetInfo()
	return AdapterInfo{
		Name:       info.Name,
		DeviceType: deviceTypeFromWGPU(info.AdapterType),
		Backend:    BackendWebGPU,
		VendorID:   info.VendorId,
		DeviceID:   info.DeviceId,
	}
}

func (a *browserAdapter) Limits() wgpu.Limits {
	return a.adapter.GetLimits().Limits
}

func (a *browserAdapter) RequestDevice(label string, limits wgpu.Limits) (*wgpu.Device, error) {
	return a.adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label:          label,
		RequiredLimits: &wgpu.RequiredLimits{Limits: limits},
	})
}

// Raw exposes the underlying handle for surface capability queries.
func (a *browserAdapter) Raw() *wgpu.Adapter {
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
