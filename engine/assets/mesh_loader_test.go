package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The interleaved layout is a contract shared by generated geometry, the
// glTF loader, and the GL backend's attribute setup.
func TestMeshVertexLayout(t *testing.T) {
	l := MeshVertexLayout()
	assert.Equal(t, 32, l.Stride)
	require.Len(t, l.Attributes, 3)

	assert.Equal(t, 0, l.Attributes[0].Location)
	assert.Equal(t, 3, l.Attributes[0].Size)
	assert.Equal(t, 0, l.Attributes[0].Offset)

	assert.Equal(t, 1, l.Attributes[1].Location)
	assert.Equal(t, 3, l.Attributes[1].Size)
	assert.Equal(t, 12, l.Attributes[1].Offset)

	assert.Equal(t, 2, l.Attributes[2].Location)
	assert.Equal(t, 2, l.Attributes[2].Size)
	assert.Equal(t, 24, l.Attributes[2].Offset)
}

func TestLoadGLTFMissingFile(t *testing.T) {
	_, err := LoadGLTF("does/not/exist.gltf")
	assert.Error(t, err)
}
