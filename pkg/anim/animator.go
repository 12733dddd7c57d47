// Package anim implements the five-stage animation state machine.
//
// # Overview
//
// The animation is a parametrized rendering state machine driven by a
// frame counter. A [Clock] maps the global frame index to a (stage,
// progress) pair; the [Animator] dispatches each frame to the renderer
// for its stage; renderers issue primitive draw operations against a
// [canvas.Canvas] and nothing else.
//
// # Stages
//
//	0  infinite-field      boundary circle and ∞ label fade out
//	1  singularity         point marker grows at the origin
//	2  emergence           nodes scale out from the origin to the layout
//	3  internal-structure  concentric rings with orbiting markers
//	4  steady-state        full ring network with traveling edge waves
//
// # Failure policy
//
// A renderer failure is fatal for the run: the animator records it, wraps
// it with the offending stage and frame, and refuses further advancement.
// There are no retries and no frame skipping, so stages are always
// observed in order or not at all.
package anim

import (
	"context"
	"time"

	"github.com/matzehuels/monadviz/pkg/canvas"
	"github.com/matzehuels/monadviz/pkg/errors"
	"github.com/matzehuels/monadviz/pkg/layout"
	"github.com/matzehuels/monadviz/pkg/observability"
)

// Animator owns the animation clock and dispatches frames to the
// per-stage renderers. It is not safe for concurrent use; the intended
// driver is a single timer loop.
type Animator struct {
	clock     *Clock
	model     *layout.Model
	renderers [NumStages]Renderer
	failed    error
}

// New creates an animator over the given layout model.
// Fails with INVALID_CONFIGURATION for framesPerStage <= 0 or a nil model,
// and with INTERNAL_ERROR if the renderer table has a gap (exhaustiveness
// is checked here so a missing stage can never surface mid-run).
func New(model *layout.Model, framesPerStage int) (*Animator, error) {
	if model == nil {
		return nil, errors.New(errors.ErrCodeInvalidConfiguration, "layout model is required")
	}
	clock, err := NewClock(framesPerStage)
	if err != nil {
		return nil, err
	}

	renderers := stageRenderers()
	for s, r := range renderers {
		if r == nil {
			return nil, errors.New(errors.ErrCodeInternal, "no renderer for stage %s", Stage(s))
		}
	}

	return &Animator{
		clock:     clock,
		model:     model,
		renderers: renderers,
	}, nil
}

// Clock exposes the animation clock (read-only use intended).
func (a *Animator) Clock() *Clock { return a.clock }

// Model returns the layout model shared by all renderers.
func (a *Animator) Model() *layout.Model { return a.model }

// CurrentFrame returns the frame descriptor for the clock's position.
func (a *Animator) CurrentFrame() Frame {
	return Frame{
		Stage:      a.clock.Stage(),
		Index:      a.clock.Frame(),
		StageFrame: a.clock.StageFrame(),
		Progress:   a.clock.Progress(),
		Layout:     a.model,
	}
}

// Err returns the recorded fatal rendering failure, if any.
func (a *Animator) Err() error { return a.failed }

// RenderFrame renders the current frame onto the canvas.
//
// On the first frame of a stage it emits an OnStageEnter event. A renderer
// failure is wrapped with the stage and frame index, recorded, and
// returned; every subsequent call returns the same recorded failure.
func (a *Animator) RenderFrame(ctx context.Context, c canvas.Canvas) error {
	if a.failed != nil {
		return a.failed
	}

	f := a.CurrentFrame()
	if f.StageFrame == 0 {
		observability.Animation().OnStageEnter(ctx, f.Stage.String(), f.Index)
	}

	start := time.Now()
	c.Clear()
	err := a.renderers[f.Stage](f, c)
	observability.Animation().OnFrameRendered(ctx, f.Index, f.Stage.String(), time.Since(start), err)

	if err != nil {
		code := errors.GetCode(err)
		if code == "" {
			code = errors.ErrCodeRenderingFailure
		}
		a.failed = errors.Wrap(code, err, "render stage %s, frame %d", f.Stage, f.Index)
		return a.failed
	}
	return nil
}

// Advance moves the clock to the next frame and reports whether it moved.
// After a rendering failure the animator halts: Advance always returns
// false.
func (a *Animator) Advance() bool {
	if a.failed != nil {
		return false
	}
	return a.clock.Advance()
}

// Done reports whether the run has ended, either by reaching the final
// frame or through a fatal rendering failure.
func (a *Animator) Done() bool {
	return a.failed != nil || a.clock.Done()
}
