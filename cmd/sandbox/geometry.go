package main

import (
	"github.com/chewxy/math32"

	"github.com/hollowmoss/briar/engine/assets"
	"github.com/hollowmoss/briar/engine/core"
)

// cubeData builds a unit cube with per-face normals, in the engine vertex
// layout (pos3 normal3 uv2).
func cubeData(size float32) core.MeshData {
	s := size / 2
	faces := []struct {
		normal  [3]float32
		corners [4][3]float32
	}{
		{[3]float32{0, 0, 1}, [4][3]float32{{-s, -s, s}, {s, -s, s}, {s, s, s}, {-s, s, s}}},
		{[3]float32{0, 0, -1}, [4][3]float32{{s, -s, -s}, {-s, -s, -s}, {-s, s, -s}, {s, s, -s}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{s, -s, s}, {s, -s, -s}, {s, s, -s}, {s, s, s}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{-s, -s, -s}, {-s, -s, s}, {-s, s, s}, {-s, s, -s}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{-s, s, s}, {s, s, s}, {s, s, -s}, {-s, s, -s}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{-s, -s, -s}, {s, -s, -s}, {s, -s, s}, {-s, -s, s}}},
	}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	var verts []float32
	var inds []uint32
	for _, f := range faces {
		base := uint32(len(verts) / 8)
		for i, c := range f.corners {
			verts = append(verts, c[0], c[1], c[2])
			verts = append(verts, f.normal[0], f.normal[1], f.normal[2])
			verts = append(verts, uvs[i][0], uvs[i][1])
		}
		inds = append(inds, base, base+1, base+2, base, base+2, base+3)
	}
	return core.MeshData{Vertices: verts, Indices: inds, Layout: assets.MeshVertexLayout()}
}

// sphereData builds a UV sphere; segment count drives the detail level.
func sphereData(radius float32, segments int) core.MeshData {
	if segments < 3 {
		segments = 3
	}
	rings := segments / 2

	var verts []float32
	var inds []uint32
	for r := 0; r <= rings; r++ {
		phi := math32.Pi * float32(r) / float32(rings)
		y := radius * math32.Cos(phi)
		rr := radius * math32.Sin(phi)
		for s := 0; s <= segments; s++ {
			theta := 2 * math32.Pi * float32(s) / float32(segments)
			x := rr * math32.Cos(theta)
			z := rr * math32.Sin(theta)
			nx, ny, nz := x/radius, y/radius, z/radius
			verts = append(verts, x, y, z, nx, ny, nz,
				float32(s)/float32(segments), float32(r)/float32(rings))
		}
	}
	stride := uint32(segments + 1)
	for r := 0; r < rings; r++ {
		for s := 0; s < segments; s++ {
			a := uint32(r)*stride + uint32(s)
			b := a + stride
			inds = append(inds, a, b, a+1, a+1, b, b+1)
		}
	}
	return core.MeshData{Vertices: verts, Indices: inds, Layout: assets.MeshVertexLayout()}
}
