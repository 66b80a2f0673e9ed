package renderer3d

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/hollowmoss/briar/engine/colors"
	"github.com/hollowmoss/briar/engine/core"
	"github.com/hollowmoss/briar/engine/profiler"
	"github.com/hollowmoss/briar/engine/scene"
)

// Settings are the runtime toggles of the render engine.
type Settings struct {
	FrustumCulling    bool
	OcclusionCulling  bool // declared; the core pipeline does not implement it yet
	LODEnabled        bool
	MaxRenderDistance float32
	TargetFPS         int
	Wireframe         bool
	ClearColor        colors.Color
	SampleCount       int
}

func DefaultSettings() Settings {
	return Settings{
		FrustumCulling:    true,
		LODEnabled:        true,
		MaxRenderDistance: 500,
		TargetFPS:         60,
		ClearColor:        colors.NightBlue,
		SampleCount:       1,
	}
}

// Engine owns the render-node registry, the camera and the per-frame
// pipeline: cull, sort, submit, present. Single-threaded: registry
// mutations and RenderFrame must happen on the same goroutine.
type Engine struct {
	dev    core.Device
	camera *scene.Camera

	nodes map[uint64]*RenderNode
	order []uint64 // registration order; drives culling traversal

	settings Settings
	state    *StateMachine
	frames   *FrameRateController
	stats    Statistics

	visible       []visibleNode // reused across frames
	boundPipeline core.Pipeline

	clock func() float64 // monotonic seconds; swappable in tests
}

// New constructs the engine on a backend device. A nil device is the one
// unrecoverable failure: without a GPU there is nothing to construct.
func New(dev core.Device, settings Settings, camera *scene.Camera) (*Engine, error) {
	if dev == nil {
		return nil, errors.New("renderer3d: no backend device available")
	}
	if camera == nil {
		camera = scene.NewCamera(60, 16.0/9.0, 0.1, 1000)
	}
	start := time.Now()
	e := &Engine{
		dev:      dev,
		camera:   camera,
		nodes:    map[uint64]*RenderNode{},
		settings: settings,
		state:    NewStateMachine(),
		frames:   NewFrameRateController(settings.TargetFPS),
		clock:    func() float64 { return time.Since(start).Seconds() },
	}
	dev.SetWireframe(settings.Wireframe)
	return e, nil
}

func (e *Engine) Camera() *scene.Camera { return e.camera }

// AddNode registers n and returns its id.
func (e *Engine) AddNode(n *RenderNode) uint64 {
	e.nodes[n.ID()] = n
	e.order = append(e.order, n.ID())
	return n.ID()
}

// RemoveNode unregisters the node with the given id.
func (e *Engine) RemoveNode(id uint64) bool {
	if _, ok := e.nodes[id]; !ok {
		return false
	}
	delete(e.nodes, id)
	for i, nid := range e.order {
		if nid == id {
			e.order = append(e.order[:i], e.order[i+1:]...)
			break
		}
	}
	return true
}

func (e *Engine) Node(id uint64) (*RenderNode, bool) {
	n, ok := e.nodes[id]
	return n, ok
}

func (e *Engine) NodeCount() int { return len(e.nodes) }

// SetCameraPose updates the camera position and target in one call.
func (e *Engine) SetCameraPose(position, target mgl32.Vec3) {
	e.camera.SetPosition(position)
	e.camera.SetTarget(target)
}

func (e *Engine) Settings() Settings { return e.settings }

func (e *Engine) SetFrustumCulling(v bool) { e.settings.FrustumCulling = v }

// SetOcclusionCulling records the toggle; cull() ignores it until an
// occlusion pass exists.
func (e *Engine) SetOcclusionCulling(v bool) { e.settings.OcclusionCulling = v }

func (e *Engine) SetLODEnabled(v bool) { e.settings.LODEnabled = v }

func (e *Engine) SetMaxRenderDistance(d float32) { e.settings.MaxRenderDistance = d }

func (e *Engine) SetClearColor(c colors.Color) { e.settings.ClearColor = c }

func (e *Engine) SetTargetFPS(fps int) {
	e.frames.SetTargetFPS(fps)
	e.settings.TargetFPS = e.frames.TargetFPS()
}

func (e *Engine) SetWireframe(v bool) {
	e.settings.Wireframe = v
	e.dev.SetWireframe(v)
}

// Stats returns the last completed frame's counters.
func (e *Engine) Stats() Statistics { return e.stats }

// PhaseTimings returns the accumulated per-phase durations in seconds.
func (e *Engine) PhaseTimings() map[RenderPhase]float64 { return e.state.Durations() }

func (e *Engine) FPS() float64 { return e.frames.FPS() }

// RenderFrame runs one full preparing→culling→sorting→rendering→presenting
// pass against the target. Returns false when the frame gate skipped it;
// skipped frames do no work and record no transitions. now is a timestamp
// in seconds on the caller's monotonic clock.
func (e *Engine) RenderFrame(target core.Drawable, now float64) bool {
	if !e.frames.ShouldRenderFrame(now) {
		return false
	}
	e.frames.UpdateFrameTiming(now)

	e.state.Transition(PhasePreparing, e.clock())
	e.stats.reset()
	e.stats.FPS = e.frames.FPS()
	e.stats.DeltaTime = e.frames.DeltaTime()
	e.stats.TotalNodes = len(e.nodes)

	e.state.Transition(PhaseCulling, e.clock())
	endCull := profiler.Start("cull")
	e.cull()
	endCull()

	e.state.Transition(PhaseSorting, e.clock())
	endSort := profiler.Start("sort")
	sortVisible(e.visible)
	endSort()

	e.state.Transition(PhaseRendering, e.clock())
	endDraw := profiler.Start("draw")
	ok := e.submit(target)
	endDraw()

	if ok {
		e.state.Transition(PhasePresenting, e.clock())
		e.dev.Present(target)
	}

	e.state.Transition(PhaseIdle, e.clock())
	return true
}

// cull rebuilds the visible set: individually visible, within max render
// distance, and (when enabled) intersecting the camera frustum.
func (e *Engine) cull() {
	e.visible = e.visible[:0]
	camPos := e.camera.Position()

	var frustum Frustum
	if e.settings.FrustumCulling {
		frustum = FrustumFromMatrix(e.camera.ViewProjection())
	}

	for _, id := range e.order {
		n := e.nodes[id]
		if !n.Visible {
			e.stats.CulledNodes++
			continue
		}
		dist := n.Transform.Position.Sub(camPos).Len()
		if dist > e.settings.MaxRenderDistance {
			e.stats.CulledNodes++
			continue
		}
		if e.settings.FrustumCulling && !frustum.ContainsSphere(n.Transform.Position, n.BoundingRadius) {
			e.stats.CulledNodes++
			continue
		}
		e.visible = append(e.visible, visibleNode{node: n, distance: dist})
	}
	e.stats.VisibleNodes = len(e.visible)
}

// submit encodes the sorted visible set. Pipeline binds are coalesced:
// a node's pipeline is bound only when it differs from the one currently
// bound. Returns false when no render pass could be begun; the frame is
// skipped, not retried.
func (e *Engine) submit(target core.Drawable) bool {
	pass, err := e.dev.BeginPass(target, [4]float32(e.settings.ClearColor))
	if err != nil {
		logrus.WithError(err).Debug("render: no pass available, skipping frame")
		return false
	}

	vp := e.camera.ViewProjection()
	e.boundPipeline = nil

	for _, v := range e.visible {
		dist := v.distance
		if !e.settings.LODEnabled {
			dist = 0
		}
		mesh, level := v.node.Source.MeshFor(dist)
		if mesh == nil {
			// Sparse LOD band or missing mesh: the node is dropped from
			// the frame without counting as a draw.
			continue
		}

		mat := v.node.Material
		if p := v.node.pipeline(); p != nil && p != e.boundPipeline {
			pass.BindPipeline(p)
			e.boundPipeline = p
			e.stats.PipelineSwitches++
		}

		model := v.node.Transform.ModelMatrix()
		pass.SetDrawUniforms(core.DrawUniforms{
			Model:          model,
			ViewProjection: vp,
			Normal:         model.Inv().Transpose(),
		})

		if mat != nil {
			pass.SetMaterial(mat.Block())
			if mat.BaseColorTex != nil {
				pass.BindTexture(core.SlotBaseColor, mat.BaseColorTex)
			}
			if mat.NormalTex != nil {
				pass.BindTexture(core.SlotNormal, mat.NormalTex)
			}
			if mat.MetallicRoughnessTex != nil {
				pass.BindTexture(core.SlotMetallicRoughness, mat.MetallicRoughnessTex)
			}
		}

		pass.DrawIndexed(mesh)
		e.stats.DrawCalls++
		e.stats.Triangles += mesh.IndexCount() / 3
		if level >= 0 && level < NumLODLevels {
			e.stats.LODCounts[level]++
		}
	}

	pass.End()
	return true
}
