package anim

import (
	"fmt"

	"github.com/matzehuels/monadviz/pkg/canvas"
	"github.com/matzehuels/monadviz/pkg/layout"
)

// Stage identifies one of the five ordered animation phases.
type Stage int

// The five stages, in playback order.
const (
	StageInfiniteField Stage = iota
	StageSingularity
	StageEmergence
	StageInternalStructure
	StageSteadyState
)

// NumStages is the fixed number of animation stages.
const NumStages = 5

// String returns the stage's short identifier, used in logs and errors.
func (s Stage) String() string {
	switch s {
	case StageInfiniteField:
		return "infinite-field"
	case StageSingularity:
		return "singularity"
	case StageEmergence:
		return "emergence"
	case StageInternalStructure:
		return "internal-structure"
	case StageSteadyState:
		return "steady-state"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Title returns the caption drawn above the frame during this stage.
func (s Stage) Title() string {
	switch s {
	case StageInfiniteField:
		return "Stage 1: The Infinite Frequency Domain (Pure Being)"
	case StageSingularity:
		return "Stage 2: The Singularity - The Point of Origin"
	case StageEmergence:
		return "Stage 3: Emergence of the Monadic Hive Mind"
	case StageInternalStructure:
		return "Stage 4: Monads as Individual Frequency Domains"
	case StageSteadyState:
		return "Stage 5: The Physical Domain (Pure Becoming)"
	default:
		return ""
	}
}

// Bounds returns the world window used while this stage is on screen.
// The first two stages zoom out to frame the collapse; the network stages
// zoom in on the unit-box layout.
func (s Stage) Bounds() (x, y canvas.Range) {
	switch s {
	case StageInfiniteField, StageSingularity:
		r := canvas.Range{Min: -2, Max: 2}
		return r, r
	default:
		r := canvas.Range{Min: -1.5, Max: 1.5}
		return r, r
	}
}

// Frame carries everything a stage renderer needs for one frame.
type Frame struct {
	Stage      Stage
	Index      int     // global frame index
	StageFrame int     // frame index within the stage
	Progress   float64 // in [0,1)
	Layout     *layout.Model
}

// Renderer draws one frame of a stage onto the canvas.
// Renderers are pure: all state they consume arrives in the Frame.
type Renderer func(Frame, canvas.Canvas) error
