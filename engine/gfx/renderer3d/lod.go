package renderer3d

import "github.com/hollowmoss/briar/engine/core"

// NumLODLevels is the number of distance bands in a LOD group.
const NumLODLevels = 4

// LODGroup maps ascending distance thresholds to mesh variants. Bands may
// be left empty: selecting an empty band yields no mesh, it is not
// substituted with a coarser one.
type LODGroup struct {
	thresholds [NumLODLevels]float32
	meshes     [NumLODLevels]core.Mesh
}

// NewLODGroup uses the default bands 0/20/50/100.
func NewLODGroup() *LODGroup {
	return &LODGroup{thresholds: [NumLODLevels]float32{0, 20, 50, 100}}
}

// SetThresholds replaces the distance bands; values must ascend.
func (g *LODGroup) SetThresholds(t [NumLODLevels]float32) { g.thresholds = t }

func (g *LODGroup) SetMesh(level int, m core.Mesh) {
	if level < 0 || level >= NumLODLevels {
		return
	}
	g.meshes[level] = m
}

func (g *LODGroup) Mesh(level int) core.Mesh {
	if level < 0 || level >= NumLODLevels {
		return nil
	}
	return g.meshes[level]
}

// Select scans bands from farthest to nearest; the first threshold the
// distance meets or exceeds wins. Distances below the first band clamp to
// level 0. The selected band's mesh may be nil.
func (g *LODGroup) Select(distance float32) (core.Mesh, int) {
	for i := NumLODLevels - 1; i >= 0; i-- {
		if distance >= g.thresholds[i] {
			return g.meshes[i], i
		}
	}
	return g.meshes[0], 0
}
