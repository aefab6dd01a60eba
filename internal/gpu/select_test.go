package gpu

import (
	"context"
	"errors"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdapter struct {
	info      AdapterInfo
	limits    wgpu.Limits
	deviceErr error
}

func (a *fakeAdapter) Info() AdapterInfo   { return a.info }
func (a *fakeAdapter) Limits() wgpu.Limits { return a.limits }
func (a *fakeAdapter) RequestDevice(label string, limits wgpu.Limits) (*wgpu.Device, error) {
	if a.deviceErr != nil {
		return nil, a.deviceErr
	}
	return nil, nil
}

type fakeInstance struct {
	adapters []Adapter
	err      error
}

func (i *fakeInstance) Adapters(ctx context.Context) ([]Adapter, error) {
	return i.adapters, i.err
}

func adapterOf(name string, t DeviceType, b Backend) *fakeAdapter {
	return &fakeAdapter{info: AdapterInfo{Name: name, DeviceType: t, Backend: b}}
}

func pick(t *testing.T, adapters []Adapter, q AdapterQuery) Adapter {
	t.Helper()
	a, err := RequestPowerfulAdapter(context.Background(), &fakeInstance{adapters: adapters}, q)
	require.NoError(t, err)
	return a
}

func TestRequestPowerfulAdapterPrefersDiscrete(t *testing.T) {
	cpu := adapterOf("llvmpipe", DeviceTypeCPU, BackendVulkan)
	integrated := adapterOf("iris", DeviceTypeIntegrated, BackendVulkan)
	discrete := adapterOf("radeon", DeviceTypeDiscrete, BackendVulkan)

	got := pick(t, []Adapter{cpu, integrated, discrete}, AdapterQuery{})
	assert.Equal(t, "radeon", got.Info().Name)
}

func TestRequestPowerfulAdapterOtherOutranksCPU(t *testing.T) {
	cpu := adapterOf("llvmpipe", DeviceTypeCPU, BackendVulkan)
	other := adapterOf("mystery", DeviceTypeOther, BackendVulkan)

	got := pick(t, []Adapter{cpu, other}, AdapterQuery{})
	assert.Equal(t, "mystery", got.Info().Name)
}

func TestRequestPowerfulAdapterLimitsBreakTies(t *testing.T) {
	small := adapterOf("small", DeviceTypeDiscrete, BackendVulkan)
	small.limits.MaxBufferSize = 1 << 20
	big := adapterOf("big", DeviceTypeDiscrete, BackendVulkan)
	big.limits.MaxBufferSize = 1 << 30

	got := pick(t, []Adapter{small, big}, AdapterQuery{})
	assert.Equal(t, "big", got.Info().Name)
}

func TestRequestPowerfulAdapterLexicographicLimits(t *testing.T) {
	// Equal buffer size; the later field decides.
	a := adapterOf("a", DeviceTypeDiscrete, BackendVulkan)
	a.limits.MaxBufferSize = 1 << 28
	a.limits.MaxComputeWorkgroupStorageSize = 16384
	b := adapterOf("b", DeviceTypeDiscrete, BackendVulkan)
	b.limits.MaxBufferSize = 1 << 28
	b.limits.MaxComputeWorkgroupStorageSize = 32768

	got := pick(t, []Adapter{a, b}, AdapterQuery{})
	assert.Equal(t, "b", got.Info().Name)
}

func TestRequestPowerfulAdapterEnumerationOrderWinsFullTie(t *testing.T) {
	first := adapterOf("first", DeviceTypeDiscrete, BackendVulkan)
	second := adapterOf("second", DeviceTypeDiscrete, BackendVulkan)

	got := pick(t, []Adapter{first, second}, AdapterQuery{})
	assert.Equal(t, "first", got.Info().Name)
}

func TestRequestPowerfulAdapterLowerTierNeverBeatsHigher(t *testing.T) {
	integrated := adapterOf("iris", DeviceTypeIntegrated, BackendVulkan)
	integrated.limits.MaxBufferSize = 1 << 40
	discrete := adapterOf("radeon", DeviceTypeDiscrete, BackendVulkan)
	discrete.limits.MaxBufferSize = 1 << 20

	got := pick(t, []Adapter{integrated, discrete}, AdapterQuery{})
	assert.Equal(t, "radeon", got.Info().Name)
}

func TestRequestPowerfulAdapterBackendFilter(t *testing.T) {
	vulkan := adapterOf("radeon-vk", DeviceTypeDiscrete, BackendVulkan)
	gl := adapterOf("radeon-gl", DeviceTypeDiscrete, BackendOpenGL)

	got := pick(t, []Adapter{vulkan, gl}, AdapterQuery{Backends: []Backend{BackendOpenGL}})
	assert.Equal(t, "radeon-gl", got.Info().Name)
}

func TestRequestPowerfulAdapterForceType(t *testing.T) {
	discrete := adapterOf("radeon", DeviceTypeDiscrete, BackendVulkan)
	cpu := adapterOf("llvmpipe", DeviceTypeCPU, BackendVulkan)

	force := DeviceTypeCPU
	got := pick(t, []Adapter{discrete, cpu}, AdapterQuery{ForceType: &force})
	assert.Equal(t, "llvmpipe", got.Info().Name)
}

func TestRequestPowerfulAdapterBlacklist(t *testing.T) {
	bad := &fakeAdapter{info: AdapterInfo{
		Name: "flaky", DeviceType: DeviceTypeDiscrete, Backend: BackendVulkan,
		VendorID: 0x1002, DeviceID: 0x731f,
	}}
	good := adapterOf("iris", DeviceTypeIntegrated, BackendVulkan)

	q := AdapterQuery{Blacklist: []AdapterKey{bad.info.Key()}}
	got := pick(t, []Adapter{bad, good}, q)
	assert.Equal(t, "iris", got.Info().Name)
}

func TestRequestPowerfulAdapterBlacklistIsPerBackend(t *testing.T) {
	vk := &fakeAdapter{info: AdapterInfo{
		Name: "radeon-vk", DeviceType: DeviceTypeDiscrete, Backend: BackendVulkan,
		VendorID: 0x1002, DeviceID: 0x731f,
	}}
	gl := &fakeAdapter{info: AdapterInfo{
		Name: "radeon-gl", DeviceType: DeviceTypeDiscrete, Backend: BackendOpenGL,
		VendorID: 0x1002, DeviceID: 0x731f,
	}}

	q := AdapterQuery{Blacklist: []AdapterKey{vk.info.Key()}}
	got := pick(t, []Adapter{vk, gl}, q)
	assert.Equal(t, "radeon-gl", got.Info().Name)
}

func TestRequestPowerfulAdapterEmptyPool(t *testing.T) {
	_, err := RequestPowerfulAdapter(context.Background(), &fakeInstance{}, AdapterQuery{})
	assert.ErrorIs(t, err, ErrNoAdapterAvailable)
}

func TestRequestPowerfulAdapterAllFilteredOut(t *testing.T) {
	gl := adapterOf("radeon-gl", DeviceTypeDiscrete, BackendOpenGL)
	_, err := RequestPowerfulAdapter(context.Background(), &fakeInstance{adapters: []Adapter{gl}},
		AdapterQuery{Backends: []Backend{BackendMetal}})
	assert.ErrorIs(t, err, ErrNoAdapterAvailable)
}

func TestRequestPowerfulAdapterInstanceError(t *testing.T) {
	boom := errors.New("boom")
	_, err := RequestPowerfulAdapter(context.Background(), &fakeInstance{err: boom}, AdapterQuery{})
	assert.ErrorIs(t, err, boom)
}

func TestNewDeviceWrapsFailure(t *testing.T) {
	bad := adapterOf("flaky", DeviceTypeDiscrete, BackendVulkan)
	bad.deviceErr = errors.New("out of memory")

	_, _, _, err := NewDevice(bad, wgpu.Limits{}, "test")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDeviceCreationFailed)
	assert.Contains(t, err.Error(), "flaky")
	assert.Contains(t, err.Error(), "out of memory")
}
