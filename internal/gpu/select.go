package gpu

import (
	"context"
	"errors"

	"github.com/cogentcore/webgpu/wgpu"
)

// ErrNoAdapterAvailable means no adapter survived the query's filters. This
// is fatal for the caller: no rendering can proceed, and the selector never
// retries on its own.
var ErrNoAdapterAvailable = errors.New("gpu: no adapter matches the query")

// Adapter is one physical or virtual GPU exposed by an Instance.
// Implementations wrap the webgpu binding's adapter on real hosts.
type Adapter interface {
	Info() AdapterInfo
	Limits() wgpu.Limits
	// RequestDevice creates a logical device/queue pair. The limits are
	// required, not advisory; the collaborator rejects requests it cannot
	// satisfy with a descriptive error, surfaced verbatim by NewDevice.
	RequestDevice(label string, limits wgpu.Limits) (*wgpu.Device, error)
}

// Instance enumerates the adapters available to the process. This is the
// single acquisition seam between hosts: the desktop implementation resolves
// synchronously, while the browser implementation genuinely suspends on the
// context. The ranking done on the result is identical either way.
type Instance interface {
	Adapters(ctx context.Context) ([]Adapter, error)
}

// RequestPowerfulAdapter picks the strongest adapter the instance exposes,
// honoring the query: filter by backend, forced type, and blacklist; keep
// only the best device-type tier present; then prefer the roomiest limits,
// compared lexicographically. Remaining ties go to enumeration order (first
// listed wins) so the choice is deterministic.
func RequestPowerfulAdapter(ctx context.Context, inst Instance, query AdapterQuery) (Adapter, error) {
	all, err := inst.Adapters(ctx)
	if err != nil {
		return nil, err
	}

	allowed := make([]Adapter, 0, len(all))
	for _, a := range all {
		if query.Allows(a.Info()) {
			allowed = append(allowed, a)
		}
	}
	if len(allowed) == 0 {
		return nil, ErrNoAdapterAvailable
	}

	bestRank := -1
	for _, a := range allowed {
		if r := a.Info().DeviceType.Rank(); r > bestRank {
			bestRank = r
		}
	}

	var best Adapter
	for _, a := range allowed {
		if a.Info().DeviceType.Rank() != bestRank {
			continue
		}
		if best == nil || compareLimits(a.Limits(), best.Limits()) > 0 {
			best = a
		}
	}
	return best, nil
}

// compareLimits orders two limit sets lexicographically by the fields that
// best predict real rendering headroom: buffer size first, then compute
// workgroup storage, then 2D/1D/3D texture dimensions. Returns >0 when a is
// strictly roomier. Strict inequality keeps enumeration-order tie-breaking
// intact (an equal candidate never displaces the earlier one).
func compareLimits(a, b wgpu.Limits) int {
	if c := cmpU64(a.MaxBufferSize, b.MaxBufferSize); c != 0 {
		return c
	}
	if c := cmpU32(a.MaxComputeWorkgroupStorageSize, b.MaxComputeWorkgroupStorageSize); c != 0 {
		return c
	}
	if c := cmpU32(a.MaxTextureDimension2D, b.MaxTextureDimension2D); c != 0 {
		return c
	}
	if c := cmpU32(a.MaxTextureDimension1D, b.MaxTextureDimension1D); c != 0 {
		return c
	}
	return cmpU32(a.MaxTextureDimension3D, b.MaxTextureDimension3D)
}

func cmpU32(a, b uint32) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpU64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
