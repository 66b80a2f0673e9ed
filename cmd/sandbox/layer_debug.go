package main

import (
	"github.com/hollowmoss/briar/engine/core"
	"github.com/hollowmoss/briar/engine/gfx/renderer3d"
	"github.com/hollowmoss/briar/engine/scratch"
)

// LayerDebug mirrors frame statistics into the window title twice a second.
type LayerDebug struct {
	r3d   *renderer3d.Engine
	accum float64
}

func (l *LayerDebug) OnAttach(e *core.Engine) {}
func (l *LayerDebug) OnDetach(e *core.Engine) {}

func (l *LayerDebug) OnUpdate(e *core.Engine, dt float64) {
	l.accum += dt
	if l.accum < 0.5 {
		return
	}
	l.accum = 0

	s := l.r3d.Stats()
	scratch.Reset()
	scratch.F().
		S("briar  fps ").F64(s.FPS, 1).
		S("  draws ").I(s.DrawCalls).
		S("  tris ").I(s.Triangles).
		S("  visible ").I(s.VisibleNodes).C('/').I(s.TotalNodes)
	e.Window.SetTitle(scratch.String())
}

func (l *LayerDebug) OnRender(e *core.Engine, alpha float64) {}

func (l *LayerDebug) OnEvent(e *core.Engine, ev core.Event) bool { return false }
