package gpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceTypeRank(t *testing.T) {
	assert.Equal(t, 4, DeviceTypeDiscrete.Rank())
	assert.Equal(t, 3, DeviceTypeIntegrated.Rank())
	assert.Equal(t, 2, DeviceTypeVirtual.Rank())
	assert.Equal(t, 1, DeviceTypeOther.Rank())
	assert.Equal(t, 0, DeviceTypeCPU.Rank())
}

func TestParseDeviceType(t *testing.T) {
	got, err := ParseDeviceType(" Discrete ")
	require.NoError(t, err)
	assert.Equal(t, DeviceTypeDiscrete, got)

	_, err = ParseDeviceType("quantum")
	assert.Error(t, err)
}

func TestParseBackendAliases(t *testing.T) {
	for in, want := range map[string]Backend{
		"vulkan": BackendVulkan,
		"dx12":   BackendD3D12,
		"d3d12":  BackendD3D12,
		"gl":     BackendOpenGL,
		"gles":   BackendOpenGLES,
		"metal":  BackendMetal,
	} {
		got, err := ParseBackend(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseBackendsRejectsUnknown(t *testing.T) {
	_, err := ParseBackends([]string{"vulkan", "glide"})
	assert.Error(t, err)
}

func TestQueryAllows(t *testing.T) {
	info := AdapterInfo{
		Name:       "radeon",
		DeviceType: DeviceTypeDiscrete,
		Backend:    BackendVulkan,
		VendorID:   0x1002,
		DeviceID:   0x731f,
	}

	assert.True(t, AdapterQuery{}.Allows(info), "zero query allows everything")
	assert.False(t, AdapterQuery{Backends: []Backend{BackendMetal}}.Allows(info))
	assert.True(t, AdapterQuery{Backends: []Backend{BackendMetal, BackendVulkan}}.Allows(info))

	force := DeviceTypeCPU
	assert.False(t, AdapterQuery{ForceType: &force}.Allows(info))

	assert.False(t, AdapterQuery{Blacklist: []AdapterKey{info.Key()}}.Allows(info))

	otherBackend := info.Key()
	otherBackend.Backend = BackendOpenGL
	assert.True(t, AdapterQuery{Blacklist: []AdapterKey{otherBackend}}.Allows(info),
		"identity includes the backend")
}
