package renderer3d

const (
	minTargetFPS = 1
	maxTargetFPS = 120
)

// FrameRateController gates frame execution at a target rate and reports a
// smoothed FPS over a one-second window. Timestamps are seconds on any
// monotonic clock.
type FrameRateController struct {
	targetFPS int
	interval  float64

	lastAccepted float64
	hasFrame     bool

	prevTime    float64
	hasPrev     bool
	delta       float64
	windowStart float64
	frames      int
	fps         float64
}

func NewFrameRateController(targetFPS int) *FrameRateController {
	c := &FrameRateController{}
	c.SetTargetFPS(targetFPS)
	return c
}

// SetTargetFPS clamps the target to [1, 120].
func (c *FrameRateController) SetTargetFPS(fps int) {
	if fps < minTargetFPS {
		fps = minTargetFPS
	}
	if fps > maxTargetFPS {
		fps = maxTargetFPS
	}
	c.targetFPS = fps
	c.interval = 1 / float64(fps)
}

func (c *FrameRateController) TargetFPS() int { return c.targetFPS }

// ShouldRenderFrame reports whether a frame starting at now may run, and if
// so records it as the last accepted frame. Frames arriving before the
// target interval has elapsed are skipped entirely.
func (c *FrameRateController) ShouldRenderFrame(now float64) bool {
	if c.hasFrame && now-c.lastAccepted < c.interval {
		return false
	}
	c.lastAccepted = now
	c.hasFrame = true
	return true
}

// UpdateFrameTiming records the frame delta and advances the windowed FPS
// average. Call once per accepted frame.
func (c *FrameRateController) UpdateFrameTiming(now float64) {
	if c.hasPrev {
		c.delta = now - c.prevTime
	} else {
		c.windowStart = now
	}
	c.prevTime = now
	c.hasPrev = true

	c.frames++
	if elapsed := now - c.windowStart; elapsed >= 1 {
		c.fps = float64(c.frames) / elapsed
		c.windowStart = now
		c.frames = 0
	}
}

// DeltaTime is the seconds between the two most recent accepted frames.
func (c *FrameRateController) DeltaTime() float64 { return c.delta }

// FPS is the most recently completed one-second-window average.
func (c *FrameRateController) FPS() float64 { return c.fps }
