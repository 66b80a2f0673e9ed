package renderer3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullyPopulatedGroup() (*LODGroup, [NumLODLevels]*fakeMesh) {
	g := NewLODGroup()
	var meshes [NumLODLevels]*fakeMesh
	for i := range meshes {
		meshes[i] = &fakeMesh{indices: 3 * (i + 1)}
		g.SetMesh(i, meshes[i])
	}
	return g, meshes
}

func TestLODSelectionBands(t *testing.T) {
	g, meshes := fullyPopulatedGroup()

	cases := []struct {
		distance float32
		level    int
	}{
		{0, 0},
		{19.9, 0},
		{20, 1},
		{25, 1},
		{50, 2},
		{99.9, 2},
		{100, 3},
		{150, 3},
	}
	for _, tc := range cases {
		mesh, level := g.Select(tc.distance)
		assert.Equal(t, tc.level, level, "distance %v", tc.distance)
		assert.Same(t, meshes[tc.level], mesh, "distance %v", tc.distance)
	}
}

func TestLODNegativeDistanceClampsToLevelZero(t *testing.T) {
	g, meshes := fullyPopulatedGroup()
	mesh, level := g.Select(-1)
	assert.Equal(t, 0, level)
	assert.Same(t, meshes[0], mesh)
}

func TestLODNegativeDistanceWithEmptyLevelZero(t *testing.T) {
	g := NewLODGroup()
	g.SetMesh(3, &fakeMesh{indices: 3})
	mesh, level := g.Select(-1)
	assert.Equal(t, 0, level)
	assert.Nil(t, mesh)
}

// A sparse table yields no mesh for an empty band even though a farther,
// coarser band has one. Deliberately preserved behavior; revisit if product
// requirements ever want fallback-to-coarser instead.
func TestLODSparseBandYieldsNoMesh(t *testing.T) {
	g := NewLODGroup()
	g.SetMesh(0, &fakeMesh{indices: 3})
	g.SetMesh(3, &fakeMesh{indices: 3})

	mesh, level := g.Select(30) // band 1 is empty
	assert.Equal(t, 1, level)
	assert.Nil(t, mesh)
}

func TestLODCustomThresholds(t *testing.T) {
	g, meshes := fullyPopulatedGroup()
	g.SetThresholds([NumLODLevels]float32{0, 5, 10, 15})

	mesh, level := g.Select(7)
	require.Equal(t, 1, level)
	assert.Same(t, meshes[1], mesh)
}

func TestLODSetMeshOutOfRangeIgnored(t *testing.T) {
	g := NewLODGroup()
	g.SetMesh(-1, &fakeMesh{indices: 3})
	g.SetMesh(NumLODLevels, &fakeMesh{indices: 3})
	for i := 0; i < NumLODLevels; i++ {
		assert.Nil(t, g.Mesh(i))
	}
}
