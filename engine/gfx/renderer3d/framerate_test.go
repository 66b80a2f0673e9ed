package renderer3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetFPSClamped(t *testing.T) {
	c := NewFrameRateController(60)
	assert.Equal(t, 60, c.TargetFPS())

	c.SetTargetFPS(0)
	assert.Equal(t, 1, c.TargetFPS())

	c.SetTargetFPS(-5)
	assert.Equal(t, 1, c.TargetFPS())

	c.SetTargetFPS(500)
	assert.Equal(t, 120, c.TargetFPS())
}

func TestFrameGateAt30FPS(t *testing.T) {
	c := NewFrameRateController(30)

	assert.True(t, c.ShouldRenderFrame(0))
	assert.False(t, c.ShouldRenderFrame(0.010), "10ms apart: second frame skipped")

	c = NewFrameRateController(30)
	assert.True(t, c.ShouldRenderFrame(0))
	assert.True(t, c.ShouldRenderFrame(0.040), "40ms apart: both frames run")
}

func TestFrameGateMeasuresFromLastAcceptedFrame(t *testing.T) {
	c := NewFrameRateController(30)
	assert.True(t, c.ShouldRenderFrame(0))
	assert.False(t, c.ShouldRenderFrame(0.020))
	assert.False(t, c.ShouldRenderFrame(0.030))
	// 34ms since the accepted frame at t=0, not since the rejected ones.
	assert.True(t, c.ShouldRenderFrame(0.034))
}

func TestDeltaTimeBetweenAcceptedFrames(t *testing.T) {
	c := NewFrameRateController(120)
	c.UpdateFrameTiming(0)
	assert.Equal(t, float64(0), c.DeltaTime())
	c.UpdateFrameTiming(0.016)
	assert.InDelta(t, 0.016, c.DeltaTime(), 1e-9)
}

func TestWindowedFPS(t *testing.T) {
	c := NewFrameRateController(120)

	// 60 frames over exactly one second.
	for i := 0; i <= 60; i++ {
		c.UpdateFrameTiming(float64(i) / 60)
	}
	assert.InDelta(t, 60, c.FPS(), 1.0)
}

func TestFPSZeroBeforeFirstWindowCompletes(t *testing.T) {
	c := NewFrameRateController(120)
	c.UpdateFrameTiming(0)
	c.UpdateFrameTiming(0.1)
	assert.Equal(t, float64(0), c.FPS())
}
