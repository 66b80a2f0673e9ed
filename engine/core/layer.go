package core

// Layer is one slice of the running application. The sandbox stacks a scene
// layer (render nodes, orbit camera) under a debug layer (stats readout);
// updates and rendering walk the stack bottom-up, events walk it top-down so
// an overlay can shadow whatever sits beneath it.
type Layer interface {
	OnAttach(e *Engine)
	OnDetach(e *Engine)
	OnUpdate(e *Engine, dt float64)
	OnRender(e *Engine, alpha float64)

	// OnEvent reports whether the layer consumed the event. A consumed
	// event is not offered to layers further down or to the app.
	OnEvent(e *Engine, ev Event) bool
}

// LayerStack holds layers bottom-to-top in push order.
type LayerStack struct{ layers []Layer }

func (ls *LayerStack) Push(l Layer) { ls.layers = append(ls.layers, l) }

// Pop removes and returns the topmost layer.
func (ls *LayerStack) Pop() (Layer, bool) {
	if len(ls.layers) == 0 {
		return nil, false
	}
	top := ls.layers[len(ls.layers)-1]
	ls.layers = ls.layers[:len(ls.layers)-1]
	return top, true
}

func (ls *LayerStack) Len() int { return len(ls.layers) }

// Update ticks every layer bottom-up at the fixed timestep.
func (ls *LayerStack) Update(e *Engine, dt float64) {
	for _, l := range ls.layers {
		l.OnUpdate(e, dt)
	}
}

// Render draws every layer bottom-up.
func (ls *LayerStack) Render(e *Engine, alpha float64) {
	for _, l := range ls.layers {
		l.OnRender(e, alpha)
	}
}

// Dispatch offers ev to layers top-down, stopping at the first consumer,
// and reports whether any layer consumed it.
func (ls *LayerStack) Dispatch(e *Engine, ev Event) bool {
	for i := len(ls.layers) - 1; i >= 0; i-- {
		if ls.layers[i].OnEvent(e, ev) {
			return true
		}
	}
	return false
}
