package gpu

import (
	"errors"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// ErrDeviceCreationFailed means an adapter was found but the logical device
// request was rejected. Fatal; the collaborator's message is wrapped verbatim.
var ErrDeviceCreationFailed = errors.New("gpu: device creation failed")

// NewDevice creates a logical device/queue pair on the adapter. The granted
// limits are the intersection of what the adapter supports and what the
// caller targets, so a game tuned for weak hosts never over-requests on a
// strong one. The granted limits are returned for the caller to record.
func NewDevice(a Adapter, target wgpu.Limits, label string) (*wgpu.Device, *wgpu.Queue, wgpu.Limits, error) {
	granted := LimitsIntersection(a.Limits(), target)
	device, err := a.RequestDevice(label, granted)
	if err != nil {
		return nil, nil, wgpu.Limits{}, fmt.Errorf("%w: %s: %v", ErrDeviceCreationFailed, a.Info().Name, err)
	}
	return device, device.GetQueue(), granted, nil
}
