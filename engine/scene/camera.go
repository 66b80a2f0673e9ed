package scene

import "github.com/go-gl/mathgl/mgl32"

// Camera derives view, projection and view-projection matrices from a
// look-at pose plus perspective parameters. Matrices are cached behind a
// dirty flag and recomputed lazily.
type Camera struct {
	position mgl32.Vec3
	target   mgl32.Vec3
	up       mgl32.Vec3

	fovYDeg float32
	aspect  float32
	near    float32
	far     float32

	view  mgl32.Mat4
	proj  mgl32.Mat4
	vp    mgl32.Mat4
	dirty bool
}

func NewCamera(fovYDeg, aspect, near, far float32) *Camera {
	return &Camera{
		position: mgl32.Vec3{0, 0, 5},
		target:   mgl32.Vec3{0, 0, 0},
		up:       mgl32.Vec3{0, 1, 0},
		fovYDeg:  fovYDeg,
		aspect:   aspect,
		near:     near,
		far:      far,
		dirty:    true,
	}
}

func (c *Camera) Position() mgl32.Vec3 { return c.position }
func (c *Camera) Target() mgl32.Vec3   { return c.target }
func (c *Camera) Near() float32        { return c.near }
func (c *Camera) Far() float32         { return c.far }

func (c *Camera) SetPosition(p mgl32.Vec3) { c.position = p; c.dirty = true }
func (c *Camera) SetTarget(t mgl32.Vec3)   { c.target = t; c.dirty = true }
func (c *Camera) SetUp(u mgl32.Vec3)       { c.up = u; c.dirty = true }
func (c *Camera) SetFOV(deg float32)       { c.fovYDeg = deg; c.dirty = true }
func (c *Camera) SetAspect(a float32)      { c.aspect = a; c.dirty = true }
func (c *Camera) SetClip(near, far float32) {
	c.near, c.far = near, far
	c.dirty = true
}

func (c *Camera) View() mgl32.Mat4 {
	c.recalculateIfDirty()
	return c.view
}

func (c *Camera) Projection() mgl32.Mat4 {
	c.recalculateIfDirty()
	return c.proj
}

// ViewProjection = projection * view.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	c.recalculateIfDirty()
	return c.vp
}

func (c *Camera) recalculateIfDirty() {
	if !c.dirty {
		return
	}
	c.view = mgl32.LookAtV(c.position, c.target, c.up)
	c.proj = mgl32.Perspective(mgl32.DegToRad(c.fovYDeg), c.aspect, c.near, c.far)
	c.vp = c.proj.Mul4(c.view)
	c.dirty = false
}
