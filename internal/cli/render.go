package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/monadviz/pkg/anim"
	"github.com/matzehuels/monadviz/pkg/canvas"
	"github.com/matzehuels/monadviz/pkg/errors"
	"github.com/matzehuels/monadviz/pkg/layout"
	"github.com/matzehuels/monadviz/pkg/observability"
	"github.com/matzehuels/monadviz/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	configPath string // optional TOML config file
	output     string // output directory for frame files
	formats    []string
	stage      string  // restrict output to a single stage (name or index)
	frame      int     // restrict output to a single global frame, -1 for all
	scale      float64 // PNG zoom factor
}

// validFormats is the set of supported frame output formats.
var validFormats = map[string]bool{"svg": true, "png": true, "pdf": true, "json": true}

// renderCommand creates the render command for writing animation frames
// to disk.
//
// Every run gets a fresh UUID that is logged and embedded as a metadata
// comment in each SVG frame, so a directory of frames can be traced back
// to a single invocation.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		output: "frames",
		frame:  -1,
		scale:  2.0,
	}
	flagCfg := defaultConfig()

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the animation frames to files",
		Long: `Render the five-stage monad animation to a directory of frame files.

By default all frames are written as SVG. Additional formats can be
requested with --format; png and pdf require librsvg (rsvg-convert),
and json writes the raw draw operations of every frame to a single
file for downstream tooling.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := validateFormats(opts.formats); err != nil {
				return err
			}
			cfg, err := resolveConfig(cmd, opts.configPath, flagCfg)
			if err != nil {
				return err
			}
			return runRender(cmd.Context(), cfg, &opts)
		},
	}

	addConfigFlags(cmd, &flagCfg)
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output directory")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json (comma-separated)")
	cmd.Flags().StringVar(&opts.stage, "stage", "", "render only this stage (name or index 0-4)")
	cmd.Flags().IntVar(&opts.frame, "frame", opts.frame, "render only this global frame index")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG zoom factor")

	return cmd
}

// parseFormats parses the --format flag into a slice of output formats.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{"svg"}
	}
	return strings.Split(s, ",")
}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return errors.New(errors.ErrCodeInvalidFormat,
				"invalid format: %s (must be 'svg', 'png', 'pdf', or 'json')", f)
		}
	}
	return nil
}

// parseStage resolves a --stage value to a stage. Accepts the stage name
// (e.g. "singularity") or its index.
func parseStage(s string) (anim.Stage, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n >= anim.NumStages {
			return 0, errors.New(errors.ErrCodeInvalidConfiguration, "stage index out of range: %d", n)
		}
		return anim.Stage(n), nil
	}
	for st := anim.Stage(0); st < anim.NumStages; st++ {
		if st.String() == s {
			return st, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidConfiguration, "unknown stage: %s", s)
}

// frameRecord is one frame of the JSON export: the stage, clock position,
// and the raw draw operations issued by its renderer.
type frameRecord struct {
	Frame    int         `json:"frame"`
	Stage    string      `json:"stage"`
	Progress float64     `json:"progress"`
	Ops      []canvas.Op `json:"ops"`
}

// runRender computes the layout, walks the full animation, and writes
// every selected frame in every requested format.
func runRender(ctx context.Context, cfg Config, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	runID := uuid.New().String()
	logger.Infof("Render run %s: %d nodes, %d frames per stage", runID, cfg.NodeCount, cfg.FramesPerStage)

	model, err := computeLayout(ctx, cfg)
	if err != nil {
		return err
	}

	animator, err := anim.New(model, cfg.FramesPerStage)
	if err != nil {
		return err
	}

	onlyStage := anim.Stage(-1)
	if opts.stage != "" {
		if onlyStage, err = parseStage(opts.stage); err != nil {
			return err
		}
	}

	if err := os.MkdirAll(opts.output, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create output directory %s", opts.output)
	}

	svgCanvas := canvas.NewSVG(cfg.Width, cfg.Height, canvas.WithMetadata("monadviz run "+runID))
	recorder := canvas.NewRecorder()
	var records []frameRecord

	wantJSON := false
	fileFormats := make([]string, 0, len(opts.formats))
	for _, f := range opts.formats {
		if f == "json" {
			wantJSON = true
		} else {
			fileFormats = append(fileFormats, f)
		}
	}

	// One render per frame: fan the draw operations out to every backend
	// that needs them.
	backends := make([]canvas.Canvas, 0, 2)
	if len(fileFormats) > 0 {
		backends = append(backends, svgCanvas)
	}
	if wantJSON {
		backends = append(backends, recorder)
	}
	target := canvas.Multi(backends...)

	p := newProgress(logger)
	written := 0
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		f := animator.CurrentFrame()
		selected := (opts.frame < 0 || f.Index == opts.frame) &&
			(onlyStage < 0 || f.Stage == onlyStage)

		if selected {
			if err := animator.RenderFrame(ctx, target); err != nil {
				return err
			}
			if len(fileFormats) > 0 {
				svg := svgCanvas.Bytes()
				for _, format := range fileFormats {
					start := time.Now()
					data, err := encodeFrame(svg, format, opts.scale)
					observability.Animation().OnEncodeComplete(ctx, format, 1, time.Since(start), err)
					if err != nil {
						return errors.Wrap(errors.ErrCodeRenderingFailure, err, "encode frame %d as %s", f.Index, format)
					}
					path := filepath.Join(opts.output, fmt.Sprintf("frame_%04d.%s", f.Index, format))
					if err := os.WriteFile(path, data, 0o644); err != nil {
						return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
					}
				}
			}
			if wantJSON {
				records = append(records, frameRecord{
					Frame:    f.Index,
					Stage:    f.Stage.String(),
					Progress: f.Progress,
					Ops:      recorder.Ops(),
				})
			}
			written++
		}

		if !animator.Advance() {
			break
		}
	}

	if wantJSON {
		start := time.Now()
		data, err := json.MarshalIndent(records, "", "  ")
		observability.Animation().OnEncodeComplete(ctx, "json", len(records), time.Since(start), err)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInternal, err, "encode animation JSON")
		}
		path := filepath.Join(opts.output, "animation.json")
		if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
		}
		logger.Infof("Wrote %s (%d frames)", path, len(records))
	}

	p.done(fmt.Sprintf("Rendered %d frames", written))
	printSuccess("Wrote %d frames to %s", written, opts.output)
	return nil
}

// computeLayout builds the ring layout model, reporting timing through
// the observability hooks.
func computeLayout(ctx context.Context, cfg Config) (*layout.Model, error) {
	observability.Animation().OnLayoutStart(ctx, cfg.NodeCount, cfg.Seed)
	start := time.Now()
	model, err := layout.New(cfg.NodeCount, cfg.Seed)
	observability.Animation().OnLayoutComplete(ctx, cfg.NodeCount, time.Since(start), err)
	return model, err
}

// encodeFrame converts an SVG frame to the requested format.
func encodeFrame(svg []byte, format string, scale float64) ([]byte, error) {
	switch format {
	case "svg":
		return svg, nil
	case "png":
		return render.ToPNG(svg, scale)
	case "pdf":
		return render.ToPDF(svg)
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}
