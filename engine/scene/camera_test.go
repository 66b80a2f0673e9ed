package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestCameraViewProjectionProduct(t *testing.T) {
	c := NewCamera(60, 16.0/9.0, 0.1, 1000)
	c.SetPosition(mgl32.Vec3{0, 2, 5})
	c.SetTarget(mgl32.Vec3{0, 0, 0})

	want := c.Projection().Mul4(c.View())
	assert.True(t, c.ViewProjection().ApproxEqual(want))
}

func TestCameraCenteredTargetProjectsToOrigin(t *testing.T) {
	c := NewCamera(60, 1, 0.1, 1000)
	c.SetPosition(mgl32.Vec3{0, 0, 5})
	c.SetTarget(mgl32.Vec3{0, 0, 0})

	clip := c.ViewProjection().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	ndc := clip.Vec3().Mul(1 / clip.W())
	assert.InDelta(t, 0, ndc.X(), 1e-5)
	assert.InDelta(t, 0, ndc.Y(), 1e-5)
}

func TestCameraSettersInvalidateCache(t *testing.T) {
	c := NewCamera(60, 1, 0.1, 1000)
	before := c.ViewProjection()

	c.SetPosition(mgl32.Vec3{10, 0, 5})
	after := c.ViewProjection()
	assert.False(t, after.ApproxEqual(before), "moving the camera must change the cached matrix")

	c.SetAspect(2)
	assert.False(t, c.ViewProjection().ApproxEqual(after))
}

func TestCameraRepeatedReadsAreStable(t *testing.T) {
	c := NewCamera(45, 4.0/3.0, 0.5, 200)
	first := c.ViewProjection()
	assert.True(t, c.ViewProjection().ApproxEqual(first))
	assert.True(t, c.View().ApproxEqual(c.View()))
}
