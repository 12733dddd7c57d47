package anim

import "github.com/matzehuels/monadviz/pkg/errors"

// Clock is the animation frame counter.
//
// The frame index stays inside [0, NumStages*framesPerStage) for the whole
// run. Advance saturates at the final frame instead of walking past it, so
// Stage and Progress never leave their valid ranges. The clock is not
// restartable: there is no reset, matching the single-run design of the
// animation.
type Clock struct {
	framesPerStage int
	frame          int
	done           bool
}

// NewClock creates a clock with the given frames per stage.
// Fails with INVALID_CONFIGURATION for framesPerStage <= 0.
func NewClock(framesPerStage int) (*Clock, error) {
	if framesPerStage <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration,
			"frames per stage must be > 0, got %d", framesPerStage)
	}
	return &Clock{framesPerStage: framesPerStage}, nil
}

// Frame returns the current global frame index.
func (c *Clock) Frame() int { return c.frame }

// FramesPerStage returns the configured stage length.
func (c *Clock) FramesPerStage() int { return c.framesPerStage }

// TotalFrames returns the length of the full run.
func (c *Clock) TotalFrames() int { return NumStages * c.framesPerStage }

// Stage returns the stage the current frame belongs to.
func (c *Clock) Stage() Stage { return Stage(c.frame / c.framesPerStage) }

// StageFrame returns the frame index within the current stage.
func (c *Clock) StageFrame() int { return c.frame % c.framesPerStage }

// Progress returns the normalized position within the current stage,
// in [0,1). It is exactly 0 on the first frame of each stage.
func (c *Clock) Progress() float64 {
	return float64(c.StageFrame()) / float64(c.framesPerStage)
}

// Done reports whether the clock has reached the final frame.
func (c *Clock) Done() bool { return c.done }

// Advance moves to the next frame and reports whether it moved.
// Once the final frame is reached, further calls are no-ops.
func (c *Clock) Advance() bool {
	if c.frame+1 >= c.TotalFrames() {
		c.done = true
		return false
	}
	c.frame++
	return true
}
