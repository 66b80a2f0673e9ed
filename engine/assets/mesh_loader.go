package assets

import (
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/hollowmoss/briar/engine/core"
)

// MeshVertexLayout is the interleaved layout every engine mesh uses:
// position (vec3), normal (vec3), uv (vec2).
func MeshVertexLayout() core.VertexLayout {
	return core.VertexLayout{
		Stride: 8 * 4,
		Attributes: []core.VertexAttrib{
			{Location: 0, Size: 3, Type: core.AttribFloat32, Offset: 0},
			{Location: 1, Size: 3, Type: core.AttribFloat32, Offset: 3 * 4},
			{Location: 2, Size: 2, Type: core.AttribFloat32, Offset: 6 * 4},
		},
	}
}

// LoadGLTF reads the first primitive of the first mesh in a glTF file and
// interleaves it into the engine vertex layout. Missing normals or UVs are
// zero-filled.
func LoadGLTF(path string) (core.MeshData, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return core.MeshData{}, errors.Wrapf(err, "open gltf %q", path)
	}
	if len(doc.Meshes) == 0 || len(doc.Meshes[0].Primitives) == 0 {
		return core.MeshData{}, errors.Errorf("gltf %q: no mesh primitives", path)
	}
	prim := doc.Meshes[0].Primitives[0]

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return core.MeshData{}, errors.Errorf("gltf %q: primitive has no positions", path)
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return core.MeshData{}, errors.Wrapf(err, "gltf %q: positions", path)
	}

	var normals [][3]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		normals, err = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
		if err != nil {
			return core.MeshData{}, errors.Wrapf(err, "gltf %q: normals", path)
		}
	}

	var uvs [][2]float32
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
		if err != nil {
			return core.MeshData{}, errors.Wrapf(err, "gltf %q: uvs", path)
		}
	}

	if prim.Indices == nil {
		return core.MeshData{}, errors.Errorf("gltf %q: primitive has no indices", path)
	}
	indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
	if err != nil {
		return core.MeshData{}, errors.Wrapf(err, "gltf %q: indices", path)
	}

	verts := make([]float32, 0, len(positions)*8)
	for i, p := range positions {
		verts = append(verts, p[0], p[1], p[2])
		if i < len(normals) {
			verts = append(verts, normals[i][0], normals[i][1], normals[i][2])
		} else {
			verts = append(verts, 0, 0, 0)
		}
		if i < len(uvs) {
			verts = append(verts, uvs[i][0], uvs[i][1])
		} else {
			verts = append(verts, 0, 0)
		}
	}

	return core.MeshData{
		Vertices: verts,
		Indices:  indices,
		Layout:   MeshVertexLayout(),
	}, nil
}
