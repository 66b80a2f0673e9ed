package core

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

// MaterialBlock is uploaded verbatim into a std140 uniform buffer; its Go
// layout has to match the shader block byte for byte.
func TestMaterialBlockMatchesStd140Layout(t *testing.T) {
	var b MaterialBlock

	assert.Equal(t, uintptr(48), unsafe.Sizeof(b))
	assert.Equal(t, uintptr(0), unsafe.Offsetof(b.BaseColor))
	assert.Equal(t, uintptr(16), unsafe.Offsetof(b.Emissive))
	assert.Equal(t, uintptr(28), unsafe.Offsetof(b.Metallic))
	assert.Equal(t, uintptr(32), unsafe.Offsetof(b.Roughness))
	assert.Equal(t, uintptr(36), unsafe.Offsetof(b.HasBaseColorTex))
	assert.Equal(t, uintptr(40), unsafe.Offsetof(b.HasNormalTex))
	assert.Equal(t, uintptr(44), unsafe.Offsetof(b.HasMetallicRoughnessTex))
}

func TestDrawUniformsAreTightlyPacked(t *testing.T) {
	var u DrawUniforms
	assert.Equal(t, uintptr(192), unsafe.Sizeof(u), "three column-major 4x4 float matrices")
}
