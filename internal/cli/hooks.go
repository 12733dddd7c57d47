package cli

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
)

// logHooks emits animation pipeline events through the CLI logger.
// Stage transitions surface at info level; per-frame timing is debug-only
// so a default run stays quiet at 750 frames.
type logHooks struct {
	logger *log.Logger
}

func newLogHooks(l *log.Logger) *logHooks {
	return &logHooks{logger: l}
}

func (h *logHooks) OnLayoutStart(_ context.Context, nodeCount int, seed uint64) {
	h.logger.Debugf("Computing spring layout: %d nodes, seed %d", nodeCount, seed)
}

func (h *logHooks) OnLayoutComplete(_ context.Context, nodeCount int, d time.Duration, err error) {
	if err != nil {
		h.logger.Errorf("Layout failed after %s: %v", d.Round(time.Millisecond), err)
		return
	}
	h.logger.Debugf("Layout ready: %d nodes (%s)", nodeCount, d.Round(time.Millisecond))
}

func (h *logHooks) OnStageEnter(_ context.Context, stage string, frame int) {
	h.logger.Infof("Entering stage %s at frame %d", stage, frame)
}

func (h *logHooks) OnFrameRendered(_ context.Context, frame int, stage string, d time.Duration, err error) {
	if err != nil {
		h.logger.Errorf("Frame %d (%s) failed: %v", frame, stage, err)
		return
	}
	h.logger.Debugf("Frame %d (%s) rendered in %s", frame, stage, d)
}

func (h *logHooks) OnEncodeComplete(_ context.Context, format string, frames int, d time.Duration, err error) {
	if err != nil {
		h.logger.Errorf("Encoding %s failed: %v", format, err)
		return
	}
	h.logger.Debugf("Encoded %d %s frames (%s)", frames, format, d.Round(time.Millisecond))
}
