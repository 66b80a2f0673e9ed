package renderer3d

import (
	"sync/atomic"

	"github.com/hollowmoss/briar/engine/core"
	"github.com/hollowmoss/briar/engine/scene"
)

// MeshSource resolves the mesh to draw for a given camera distance, and
// reports which detail level it picked. A single node type with a swappable
// source covers both static and distance-banded meshes without subclassing.
type MeshSource interface {
	MeshFor(distance float32) (core.Mesh, int)
}

// StaticMesh always resolves to the same mesh, at level 0.
type StaticMesh struct{ Mesh core.Mesh }

func (s StaticMesh) MeshFor(float32) (core.Mesh, int) { return s.Mesh, 0 }

// LODMesh resolves through a LOD group.
type LODMesh struct{ Group *LODGroup }

func (l LODMesh) MeshFor(distance float32) (core.Mesh, int) {
	if l.Group == nil {
		return nil, 0
	}
	return l.Group.Select(distance)
}

var nextRenderNodeID atomic.Uint64

// RenderNode is one drawable scene object: a transform, a material, a
// bounding sphere and a mesh source. Owned by the render engine's registry.
type RenderNode struct {
	id   uint64
	Name string

	Transform      scene.Transform
	Material       *Material
	Visible        bool
	BoundingRadius float32
	Source         MeshSource
}

func NewRenderNode(name string, source MeshSource) *RenderNode {
	return &RenderNode{
		id:             nextRenderNodeID.Add(1),
		Name:           name,
		Transform:      scene.NewTransform(),
		Visible:        true,
		BoundingRadius: 1,
		Source:         source,
	}
}

func (n *RenderNode) ID() uint64 { return n.id }

func (n *RenderNode) pipeline() core.Pipeline {
	if n.Material == nil {
		return nil
	}
	return n.Material.Pipeline
}
