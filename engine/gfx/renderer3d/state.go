package renderer3d

// RenderPhase names one step of the per-frame sequence.
type RenderPhase int

const (
	PhaseIdle RenderPhase = iota
	PhasePreparing
	PhaseCulling
	PhaseSorting
	PhaseRendering
	PhasePresenting
)

func (p RenderPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePreparing:
		return "preparing"
	case PhaseCulling:
		return "culling"
	case PhaseSorting:
		return "sorting"
	case PhaseRendering:
		return "rendering"
	case PhasePresenting:
		return "presenting"
	default:
		return "unknown"
	}
}

// StateMachine tracks the current render phase and accumulates how long
// each phase ran. Transitions are unconditional; the orchestrator is
// responsible for sequencing them correctly every frame.
type StateMachine struct {
	current   RenderPhase
	since     float64
	durations map[RenderPhase]float64
}

func NewStateMachine() *StateMachine {
	return &StateMachine{current: PhaseIdle, durations: map[RenderPhase]float64{}}
}

func (s *StateMachine) Current() RenderPhase { return s.current }

// Transition moves to the next phase at the given timestamp (seconds),
// crediting the elapsed time to the phase being left. Time spent idle is
// waiting, not work, and is never recorded.
func (s *StateMachine) Transition(to RenderPhase, at float64) {
	if s.current != PhaseIdle {
		s.durations[s.current] += at - s.since
	}
	s.current = to
	s.since = at
}

// Durations returns a snapshot of the accumulated per-phase timings.
func (s *StateMachine) Durations() map[RenderPhase]float64 {
	out := make(map[RenderPhase]float64, len(s.durations))
	for k, v := range s.durations {
		out[k] = v
	}
	return out
}
