package renderer3d

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/hollowmoss/briar/engine/scene"
)

func axisFrustum() Frustum {
	cam := scene.NewCamera(60, 1, 0.1, 1000)
	cam.SetPosition(mgl32.Vec3{0, 0, 0})
	cam.SetTarget(mgl32.Vec3{0, 0, -1})
	return FrustumFromMatrix(cam.ViewProjection())
}

func TestOnAxisObjectsNeverCulled(t *testing.T) {
	f := axisFrustum()
	for _, d := range []float32{1, 10, 100, 500, 999} {
		assert.True(t, f.ContainsSphere(mgl32.Vec3{0, 0, -d}, 0.5), "distance %v", d)
	}
}

func TestObjectBehindCameraCulled(t *testing.T) {
	f := axisFrustum()
	assert.False(t, f.ContainsSphere(mgl32.Vec3{0, 0, 5}, 0.5))
	assert.False(t, f.ContainsSphere(mgl32.Vec3{0, 0, 2000}, 0.5))
}

func TestObjectFarOffAxisCulled(t *testing.T) {
	f := axisFrustum()
	// 60° vertical fov: at z=-10 the frustum is ~±5.8 units tall.
	assert.False(t, f.ContainsSphere(mgl32.Vec3{0, 50, -10}, 0.5))
	assert.False(t, f.ContainsSphere(mgl32.Vec3{-50, 0, -10}, 0.5))
}

func TestSphereStraddlingPlaneVisible(t *testing.T) {
	f := axisFrustum()
	// Center outside the top plane, but the sphere pokes through.
	assert.True(t, f.ContainsSphere(mgl32.Vec3{0, 6.2, -10}, 2))
}

func TestBeyondFarPlaneCulled(t *testing.T) {
	f := axisFrustum()
	assert.False(t, f.ContainsSphere(mgl32.Vec3{0, 0, -1500}, 0.5))
}
