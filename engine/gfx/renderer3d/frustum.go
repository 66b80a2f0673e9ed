package renderer3d

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

type plane struct {
	normal mgl32.Vec3
	d      float32
}

// distance is the signed distance from the plane to p; negative means p is
// on the culled side.
func (pl plane) distance(p mgl32.Vec3) float32 {
	return pl.normal.Dot(p) + pl.d
}

// Frustum holds the six clip planes (left, right, bottom, top, near, far)
// of a camera, normals pointing inward.
type Frustum struct {
	planes [6]plane
}

// FrustumFromMatrix extracts the planes from a combined view-projection
// matrix by summing/differencing its rows, then normalizes each plane by
// its 3D normal length.
func FrustumFromMatrix(vp mgl32.Mat4) Frustum {
	r0, r1, r2, r3 := vp.Row(0), vp.Row(1), vp.Row(2), vp.Row(3)

	var f Frustum
	f.planes[0] = planeFromVec4(r3.Add(r0)) // left
	f.planes[1] = planeFromVec4(r3.Sub(r0)) // right
	f.planes[2] = planeFromVec4(r3.Add(r1)) // bottom
	f.planes[3] = planeFromVec4(r3.Sub(r1)) // top
	f.planes[4] = planeFromVec4(r3.Add(r2)) // near
	f.planes[5] = planeFromVec4(r3.Sub(r2)) // far
	return f
}

func planeFromVec4(v mgl32.Vec4) plane {
	n := mgl32.Vec3{v.X(), v.Y(), v.Z()}
	length := math32.Sqrt(n.X()*n.X() + n.Y()*n.Y() + n.Z()*n.Z())
	if length == 0 {
		return plane{}
	}
	return plane{normal: n.Mul(1 / length), d: v.W() / length}
}

// ContainsSphere reports whether the sphere is at least partially inside
// the frustum: not entirely on the negative side of any plane.
func (f Frustum) ContainsSphere(center mgl32.Vec3, radius float32) bool {
	for _, pl := range f.planes {
		if pl.distance(center) < -radius {
			return false
		}
	}
	return true
}
