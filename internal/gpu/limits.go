package gpu

import "github.com/cogentcore/webgpu/wgpu"

// LimitsIntersection returns the limits supported by both a and b: the
// element-wise minimum of every Max* field. The two Min*OffsetAlignment
// fields invert — a larger required alignment is the stricter constraint, so
// intersection takes the maximum of those.
func LimitsIntersection(a, b wgpu.Limits) wgpu.Limits {
	out := a
	out.MaxTextureDimension1D = min(a.MaxTextureDimension1D, b.MaxTextureDimension1D)
	out.MaxTextureDimension2D = min(a.MaxTextureDimension2D, b.MaxTextureDimension2D)
	out.MaxTextureDimension3D = min(a.MaxTextureDimension3D, b.MaxTextureDimension3D)
	out.MaxTextureArrayLayers = min(a.MaxTextureArrayLayers, b.MaxTextureArrayLayers)
	out.MaxBindGroups = min(a.MaxBindGroups, b.MaxBindGroups)
	out.MaxBindingsPerBindGroup = min(a.MaxBindingsPerBindGroup, b.MaxBindingsPerBindGroup)
	out.MaxDynamicUniformBuffersPerPipelineLayout = min(a.MaxDynamicUniformBuffersPerPipelineLayout, b.MaxDynamicUniformBuffersPerPipelineLayout)
	out.MaxDynamicStorageBuffersPerPipelineLayout = min(a.MaxDynamicStorageBuffersPerPipelineLayout, b.MaxDynamicStorageBuffersPerPipelineLayout)
	out.MaxSampledTexturesPerShaderStage = min(a.MaxSampledTexturesPerShaderStage, b.MaxSampledTexturesPerShaderStage)
	out.MaxSamplersPerShaderStage = min(a.MaxSamplersPerShaderStage, b.MaxSamplersPerShaderStage)
	out.MaxStorageBuffersPerShaderStage = min(a.MaxStorageBuffersPerShaderStage, b.MaxStorageBuffersPerShaderStage)
	out.MaxStorageTexturesPerShaderStage = min(a.MaxStorageTexturesPerShaderStage, b.MaxStorageTexturesPerShaderStage)
	out.MaxUniformBuffersPerShaderStage = min(a.MaxUniformBuffersPerShaderStage, b.MaxUniformBuffersPerShaderStage)
	out.MaxUniformBufferBindingSize = min(a.MaxUniformBufferBindingSize, b.MaxUniformBufferBindingSize)
	out.MaxStorageBufferBindingSize = min(a.MaxStorageBufferBindingSize, b.MaxStorageBufferBindingSize)
	out.MaxVertexBuffers = min(a.MaxVertexBuffers, b.MaxVertexBuffers)
	out.MaxBufferSize = min(a.MaxBufferSize, b.MaxBufferSize)
	out.MaxVertexAttributes = min(a.MaxVertexAttributes, b.MaxVertexAttributes)
	out.MaxVertexBufferArrayStride = min(a.MaxVertexBufferArrayStride, b.MaxVertexBufferArrayStride)
	out.MaxComputeWorkgroupStorageSize = min(a.MaxComputeWorkgroupStorageSize, b.MaxComputeWorkgroupStorageSize)
	out.MaxComputeInvocationsPerWorkgroup = min(a.MaxComputeInvocationsPerWorkgroup, b.MaxComputeInvocationsPerWorkgroup)
	out.MaxComputeWorkgroupSizeX = min(a.MaxComputeWorkgroupSizeX, b.MaxComputeWorkgroupSizeX)
	out.MaxComputeWorkgroupSizeY = min(a.MaxComputeWorkgroupSizeY, b.MaxComputeWorkgroupSizeY)
	out.MaxComputeWorkgroupSizeZ = min(a.MaxComputeWorkgroupSizeZ, b.MaxComputeWorkgroupSizeZ)
	out.MaxComputeWorkgroupsPerDimension = min(a.MaxComputeWorkgroupsPerDimension, b.MaxComputeWorkgroupsPerDimension)
	out.MinUniformBufferOffsetAlignment = max(a.MinUniformBufferOffsetAlignment, b.MinUniformBufferOffsetAlignment)
	out.MinStorageBufferOffsetAlignment = max(a.MinStorageBufferOffsetAlignment, b.MinStorageBufferOffsetAlignment)
	return out
}

// LimitsUnion returns the limits supported by either a or b: element-wise
// maximum of the Max* fields, minimum of the Min*OffsetAlignment fields.
func LimitsUnion(a, b wgpu.Limits) wgpu.Limits {
	out := a
	out.MaxTextureDimension1D = max(a.MaxTextureDimension1D, b.MaxTextureDimension1D)
	out.MaxTextureDimension2D = max(a.MaxTextureDimension2D, b.MaxTextureDimension2D)
	out.MaxTextureDimension3D = max(a.MaxTextureDimension3D, b.MaxTextureDimension3D)
	out.MaxTextureArrayLayers = max(a.MaxTextureArrayLayers, b.MaxTextureArrayLayers)
	out.MaxBindGroups = max(a.MaxBindGroups, b.MaxBindGroups)
	out.MaxBindingsPerBindGroup = max(a.MaxBindingsPerBindGroup, b.MaxBindingsPerBindGroup)
	out.MaxDynamicUniformBuffersPerPipelineLayout = max(a.MaxDynamicUniformBuffersPerPipelineLayout, b.MaxDynamicUniformBuffersPerPipelineLayout)
	out.MaxDynamicStorageBuffersPerPipelineLayout = max(a.MaxDynamicStorageBuffersPerPipelineLayout, b.MaxDynamicStorageBuffersPerPipelineLayout)
	out.MaxSampledTexturesPerShaderStage = max(a.MaxSampledTexturesPerShaderStage, b.MaxSampledTexturesPerShaderStage)
	out.MaxSamplersPerShaderStage = max(a.MaxSamplersPerShaderStage, b.MaxSamplersPerShaderStage)
	out.MaxStorageBuffersPerShaderStage = max(a.MaxStorageBuffersPerShaderStage, b.MaxStorageBuffersPerShaderStage)
	out.MaxStorageTexturesPerShaderStage = max(a.MaxStorageTexturesPerShaderStage, b.MaxStorageTexturesPerShaderStage)
	out.MaxUniformBuffersPerShaderStage = max(a.MaxUniformBuffersPerShaderStage, b.MaxUniformBuffersPerShaderStage)
	out.MaxUniformBufferBindingSize = max(a.MaxUniformBufferBindingSize, b.MaxUniformBufferBindingSize)
	out.MaxStorageBufferBindingSize = max(a.MaxStorageBufferBindingSize, b.MaxStorageBufferBindingSize)
	out.MaxVertexBuffers = max(a.MaxVertexBuffers, b.MaxVertexBuffers)
	out.MaxBufferSize = max(a.MaxBufferSize, b.MaxBufferSize)
	out.MaxVertexAttributes = max(a.MaxVertexAttributes, b.MaxVertexAttributes)
	out.MaxVertexBufferArrayStride = max(a.MaxVertexBufferArrayStride, b.MaxVertexBufferArrayStride)
	out.MaxComputeWorkgroupStorageSize = max(a.MaxComputeWorkgroupStorageSize, b.MaxComputeWorkgroupStorageSize)
	out.MaxComputeInvocationsPerWorkgroup = max(a.MaxComputeInvocationsPerWorkgroup, b.MaxComputeInvocationsPerWorkgroup)
	out.MaxComputeWorkgroupSizeX = max(a.MaxComputeWorkgroupSizeX, b.MaxComputeWorkgroupSizeX)
	out.MaxComputeWorkgroupSizeY = max(a.MaxComputeWorkgroupSizeY, b.MaxComputeWorkgroupSizeY)
	out.MaxComputeWorkgroupSizeZ = max(a.MaxComputeWorkgroupSizeZ, b.MaxComputeWorkgroupSizeZ)
	out.MaxComputeWorkgroupsPerDimension = max(a.MaxComputeWorkgroupsPerDimension, b.MaxComputeWorkgroupsPerDimension)
	out.MinUniformBufferOffsetAlignment = min(a.MinUniformBufferOffsetAlignment, b.MinUniformBufferOffsetAlignment)
	out.MinStorageBufferOffsetAlignment = min(a.MinStorageBufferOffsetAlignment, b.MinStorageBufferOffsetAlignment)
	return out
}
