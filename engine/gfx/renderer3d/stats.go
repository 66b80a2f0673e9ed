package renderer3d

// Statistics captures the counts generated during one rendered frame.
// Written once per frame by the engine; callers read snapshots.
type Statistics struct {
	TotalNodes   int
	VisibleNodes int
	CulledNodes  int

	DrawCalls        int
	Triangles        int
	PipelineSwitches int

	// LODCounts tallies drawn nodes per detail level; static meshes count
	// as level 0.
	LODCounts [NumLODLevels]int

	FPS       float64
	DeltaTime float64
}

// reset clears the per-frame counters at the start of the rendering phase.
// FPS/DeltaTime carry the frame controller's latest values instead.
func (s *Statistics) reset() {
	*s = Statistics{FPS: s.FPS, DeltaTime: s.DeltaTime}
}
