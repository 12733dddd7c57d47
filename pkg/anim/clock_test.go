package anim

import (
	"testing"

	"github.com/matzehuels/monadviz/pkg/errors"
)

func TestNewClockRejectsBadFramesPerStage(t *testing.T) {
	for _, fps := range []int{-1, 0} {
		if _, err := NewClock(fps); !errors.Is(err, errors.ErrCodeInvalidConfiguration) {
			t.Errorf("NewClock(%d): err = %v, want INVALID_CONFIGURATION", fps, err)
		}
	}
}

func TestClockStageAndProgress(t *testing.T) {
	const fps = 150
	c, err := NewClock(fps)
	if err != nil {
		t.Fatalf("NewClock: %v", err)
	}
	if got, want := c.TotalFrames(), 750; got != want {
		t.Fatalf("TotalFrames() = %d, want %d", got, want)
	}

	for {
		f := c.Frame()
		wantStage := Stage(f / fps)
		if got := c.Stage(); got != wantStage {
			t.Fatalf("frame %d: Stage() = %v, want %v", f, got, wantStage)
		}
		if got := c.Progress(); got < 0 || got >= 1 {
			t.Fatalf("frame %d: Progress() = %v, want [0,1)", f, got)
		}
		if f%fps == 0 && c.Progress() != 0 {
			t.Fatalf("frame %d: Progress() = %v at stage boundary, want 0", f, c.Progress())
		}
		if f%fps != 0 && c.Progress() == 0 {
			t.Fatalf("frame %d: Progress() = 0 off the stage boundary", f)
		}
		if !c.Advance() {
			break
		}
	}
}

// TestClockSaturates drives the clock through a full run and past it:
// the stage must stay at 4 and no out-of-range frame may ever appear.
func TestClockSaturates(t *testing.T) {
	const fps = 150
	c, err := NewClock(fps)
	if err != nil {
		t.Fatalf("NewClock: %v", err)
	}

	for i := 0; i < c.TotalFrames(); i++ {
		c.Advance()
	}
	if !c.Done() {
		t.Error("Done() = false after a full run")
	}

	// One more advance past the end must be a no-op.
	if c.Advance() {
		t.Error("Advance() moved past the final frame")
	}
	if got := c.Stage(); got != StageSteadyState {
		t.Errorf("Stage() = %v after saturation, want %v", got, StageSteadyState)
	}
	if got, want := c.Frame(), c.TotalFrames()-1; got != want {
		t.Errorf("Frame() = %d after saturation, want %d", got, want)
	}
	if got, want := c.Progress(), float64(fps-1)/float64(fps); got != want {
		t.Errorf("Progress() = %v after saturation, want %v", got, want)
	}
}

func TestClockShortStages(t *testing.T) {
	c, err := NewClock(1)
	if err != nil {
		t.Fatalf("NewClock: %v", err)
	}

	want := []Stage{StageInfiniteField, StageSingularity, StageEmergence, StageInternalStructure, StageSteadyState}
	for i, ws := range want {
		if got := c.Stage(); got != ws {
			t.Errorf("frame %d: Stage() = %v, want %v", i, got, ws)
		}
		if got := c.Progress(); got != 0 {
			t.Errorf("frame %d: Progress() = %v, want 0", i, got)
		}
		c.Advance()
	}
}
