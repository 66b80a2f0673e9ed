package main

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/hollowmoss/briar/engine/colors"
	"github.com/hollowmoss/briar/engine/core"
	"github.com/hollowmoss/briar/engine/gfx/renderer3d"
	"github.com/hollowmoss/briar/engine/scene"
)

// LayerScene populates a field of LOD spheres plus a few static cubes and
// drives an orbit camera.
type LayerScene struct {
	r3d  *renderer3d.Engine
	pipe core.Pipeline

	orbit    *scene.OrbitController
	spinners []*renderer3d.RenderNode
	angle    float32
}

func (l *LayerScene) Build(e *core.Engine) error {
	lods := renderer3d.NewLODGroup()
	for level, segments := range []int{32, 16, 8, 5} {
		mesh, err := e.Device.CreateMesh(sphereData(1, segments))
		if err != nil {
			return err
		}
		lods.SetMesh(level, mesh)
	}
	cube, err := e.Device.CreateMesh(cubeData(2))
	if err != nil {
		return err
	}

	matA := renderer3d.NewMaterial("clay")
	matA.BaseColor = colors.Color{0.85, 0.45, 0.3, 1}
	matA.Roughness = 0.8
	matA.Pipeline = l.pipe

	matB := renderer3d.NewMaterial("steel")
	matB.BaseColor = colors.Color{0.6, 0.65, 0.7, 1}
	matB.Metallic = 1
	matB.Roughness = 0.3
	matB.Pipeline = l.pipe

	// 10x10 sphere grid; distance from camera exercises every LOD band.
	for x := 0; x < 10; x++ {
		for z := 0; z < 10; z++ {
			n := renderer3d.NewRenderNode("sphere", renderer3d.LODMesh{Group: lods})
			n.Transform.Position = mgl32.Vec3{float32(x-5) * 6, 0, float32(z-5) * 6}
			n.BoundingRadius = 1
			if (x+z)%2 == 0 {
				n.Material = matA
			} else {
				n.Material = matB
			}
			l.r3d.AddNode(n)
		}
	}

	for i := 0; i < 4; i++ {
		n := renderer3d.NewRenderNode("cube", renderer3d.StaticMesh{Mesh: cube})
		n.Transform.Position = mgl32.Vec3{float32(i-2) * 10, 4, 0}
		n.BoundingRadius = 1.8
		n.Material = matB
		l.r3d.AddNode(n)
		l.spinners = append(l.spinners, n)
	}

	l.orbit = scene.NewOrbitController(l.r3d.Camera(), mgl32.Vec3{}, 30)
	return nil
}

func (l *LayerScene) OnAttach(e *core.Engine) {}
func (l *LayerScene) OnDetach(e *core.Engine) {}

func (l *LayerScene) OnUpdate(e *core.Engine, dt float64) {
	l.orbit.Update(dt, e.Input)

	l.angle += float32(dt)
	rot := mgl32.QuatRotate(l.angle, mgl32.Vec3{0, 1, 0})
	for _, n := range l.spinners {
		n.Transform.Rotation = rot
	}
}

func (l *LayerScene) OnRender(e *core.Engine, alpha float64) {}

func (l *LayerScene) OnEvent(e *core.Engine, ev core.Event) bool {
	if k, ok := ev.(core.EventKey); ok && k.Down && k.Key == core.KeyF1 {
		l.r3d.SetWireframe(!l.r3d.Settings().Wireframe)
		return true
	}
	return false
}
