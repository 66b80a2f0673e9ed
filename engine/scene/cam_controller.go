package scene

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/hollowmoss/briar/engine/core"
)

// OrbitController steers a Camera around a target point with yaw/pitch and
// a zoom distance. WASD pans the target on the XZ plane, Q/E orbits, the
// scroll wheel zooms.
type OrbitController struct {
	Cam      *Camera
	Target   mgl32.Vec3
	Distance float32
	YawDeg   float32
	PitchDeg float32

	PanSpeed   float32 // units/sec
	OrbitSpeed float32 // degrees/sec
	ZoomSpeed  float32 // units per scroll notch
}

func NewOrbitController(cam *Camera, target mgl32.Vec3, distance float32) *OrbitController {
	c := &OrbitController{
		Cam:      cam,
		Target:   target,
		Distance: distance,
		PitchDeg: 25,

		PanSpeed:   8,
		OrbitSpeed: 90,
		ZoomSpeed:  1.5,
	}
	c.apply()
	return c
}

func (c *OrbitController) Update(dt float64, in *core.Input) {
	step := c.PanSpeed * float32(dt)
	if in.IsKeyDown(core.KeyW) {
		c.Target = c.Target.Add(mgl32.Vec3{0, 0, -step})
	}
	if in.IsKeyDown(core.KeyS) {
		c.Target = c.Target.Add(mgl32.Vec3{0, 0, step})
	}
	if in.IsKeyDown(core.KeyA) {
		c.Target = c.Target.Add(mgl32.Vec3{-step, 0, 0})
	}
	if in.IsKeyDown(core.KeyD) {
		c.Target = c.Target.Add(mgl32.Vec3{step, 0, 0})
	}
	if in.IsKeyDown(core.KeyQ) {
		c.YawDeg -= c.OrbitSpeed * float32(dt)
	}
	if in.IsKeyDown(core.KeyE) {
		c.YawDeg += c.OrbitSpeed * float32(dt)
	}
	if s := in.ConsumeScroll(); s != 0 {
		c.Distance -= float32(s) * c.ZoomSpeed
		if c.Distance < 1 {
			c.Distance = 1
		}
	}
	c.apply()
}

func (c *OrbitController) apply() {
	yaw := mgl32.DegToRad(c.YawDeg)
	pitch := mgl32.DegToRad(c.PitchDeg)
	offset := mgl32.Vec3{
		c.Distance * math32.Cos(pitch) * math32.Sin(yaw),
		c.Distance * math32.Sin(pitch),
		c.Distance * math32.Cos(pitch) * math32.Cos(yaw),
	}
	c.Cam.SetPosition(c.Target.Add(offset))
	c.Cam.SetTarget(c.Target)
}
