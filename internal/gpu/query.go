package gpu

import (
	"fmt"
	"strings"
)

// DeviceType is the hardware tier of an adapter. Ranking prefers discrete
// GPUs, then integrated, then virtual; anything that can run graphics at all
// still outranks a plain CPU fallback.
type DeviceType int

const (
	DeviceTypeDiscrete DeviceType = iota
	DeviceTypeIntegrated
	DeviceTypeVirtual
	DeviceTypeOther
	DeviceTypeCPU
)

// Rank returns the selection tier: higher is better.
func (t DeviceType) Rank() int {
	switch t {
	case DeviceTypeDiscrete:
		return 4
	case DeviceTypeIntegrated:
		return 3
	case DeviceTypeVirtual:
		return 2
	case DeviceTypeOther:
		return 1
	case DeviceTypeCPU:
		return 0
	}
	return -1
}

func (t DeviceType) String() string {
	switch t {
	case DeviceTypeDiscrete:
		return "discrete"
	case DeviceTypeIntegrated:
		return "integrated"
	case DeviceTypeVirtual:
		return "virtual"
	case DeviceTypeOther:
		return "other"
	case DeviceTypeCPU:
		return "cpu"
	}
	return "unknown"
}

// ParseDeviceType parses a config string like "discrete" into a DeviceType.
func ParseDeviceType(s string) (DeviceType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "discrete":
		return DeviceTypeDiscrete, nil
	case "integrated":
		return DeviceTypeIntegrated, nil
	case "virtual":
		return DeviceTypeVirtual, nil
	case "other":
		return DeviceTypeOther, nil
	case "cpu":
		return DeviceTypeCPU, nil
	}
	return 0, fmt.Errorf("gpu: unknown device type %q", s)
}

// Backend is the graphics API an adapter is exposed through.
type Backend int

const (
	BackendVulkan Backend = iota
	BackendMetal
	BackendD3D12
	BackendD3D11
	BackendOpenGL
	BackendOpenGLES
	BackendWebGPU
)

func (b Backend) String() string {
	switch b {
	case BackendVulkan:
		return "vulkan"
	case BackendMetal:
		return "metal"
	case BackendD3D12:
		return "d3d12"
	case BackendD3D11:
		return "d3d11"
	case BackendOpenGL:
		return "opengl"
	case BackendOpenGLES:
		return "opengles"
	case BackendWebGPU:
		return "webgpu"
	}
	return "unknown"
}

// ParseBackend parses a config string like "vulkan" into a Backend.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vulkan":
		return BackendVulkan, nil
	case "metal":
		return BackendMetal, nil
	case "d3d12", "dx12":
		return BackendD3D12, nil
	case "d3d11", "dx11":
		return BackendD3D11, nil
	case "opengl", "gl":
		return BackendOpenGL, nil
	case "opengles", "gles":
		return BackendOpenGLES, nil
	case "webgpu":
		return BackendWebGPU, nil
	}
	return 0, fmt.Errorf("gpu: unknown backend %q", s)
}

// ParseBackends parses a list of backend names, e.g. from engine preferences.
func ParseBackends(names []string) ([]Backend, error) {
	out := make([]Backend, 0, len(names))
	for _, n := range names {
		b, err := ParseBackend(n)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// AdapterKey identifies one physical adapter for blacklisting. Two handles to
// the same hardware over the same API compare equal.
type AdapterKey struct {
	VendorID uint32
	DeviceID uint32
	Backend  Backend
}

// AdapterInfo is the metadata the selection algorithm ranks on.
type AdapterInfo struct {
	Name       string
	DeviceType DeviceType
	Backend    Backend
	VendorID   uint32
	DeviceID   uint32
}

// Key returns the blacklist identity of this adapter.
func (i AdapterInfo) Key() AdapterKey {
	return AdapterKey{VendorID: i.VendorID, DeviceID: i.DeviceID, Backend: i.Backend}
}

func (i AdapterInfo) String() string {
	return fmt.Sprintf("%s (%s, %s, vendor 0x%04X, device 0x%04X)",
		i.Name, i.DeviceType, i.Backend, i.VendorID, i.DeviceID)
}

// AdapterQuery narrows and steers adapter selection. The zero value accepts
// every adapter. Consumed once per selection; never persisted.
type AdapterQuery struct {
	// Backends restricts acceptable APIs; empty means all.
	Backends []Backend
	// Blacklist removes previously rejected adapters by identity. Callers
	// retrying after a failure extend this and query again; the selector
	// itself never retries.
	Blacklist []AdapterKey
	// ForceType, when set, accepts only adapters of exactly this tier.
	ForceType *DeviceType
}

// Allows reports whether the query admits an adapter with this metadata.
func (q AdapterQuery) Allows(info AdapterInfo) bool {
	if q.ForceType != nil && *q.ForceType != info.DeviceType {
		return false
	}
	if len(q.Backends) > 0 {
		found := false
		for _, b := range q.Backends {
			if b == info.Backend {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	key := info.Key()
	for _, blocked := range q.Blacklist {
		if blocked == key {
			return false
		}
	}
	return true
}
