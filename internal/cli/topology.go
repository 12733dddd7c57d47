package cli

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/monadviz/pkg/errors"
	"github.com/matzehuels/monadviz/pkg/render/nodelink"
)

// topologyOpts holds the command-line flags for the topology command.
type topologyOpts struct {
	configPath string
	output     string
	format     string
	detailed   bool
	scale      float64
}

// topologyCommand creates the topology command for exporting the ring
// network as a static graph diagram.
func (c *CLI) topologyCommand() *cobra.Command {
	opts := topologyOpts{
		output: "topology.svg",
		format: "svg",
		scale:  2.0,
	}
	flagCfg := defaultConfig()

	cmd := &cobra.Command{
		Use:   "topology",
		Short: "Export the ring network as a graph diagram",
		Long: `Export the monad ring network as a Graphviz diagram.

The diagram shows the steady-state topology only: every monad as a node,
connected in a ring. Use --detailed to include the stored layout
coordinates in the node labels.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateTopologyFormat(opts.format); err != nil {
				return err
			}
			cfg, err := resolveConfig(cmd, opts.configPath, flagCfg)
			if err != nil {
				return err
			}
			return runTopology(cmd.Context(), cfg, &opts)
		},
	}

	addConfigFlags(cmd, &flagCfg)
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg (default), dot, png, pdf")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include layout coordinates in node labels")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG zoom factor")

	return cmd
}

// validTopologyFormats is the set of supported topology output formats.
var validTopologyFormats = map[string]bool{"svg": true, "dot": true, "png": true, "pdf": true}

func validateTopologyFormat(f string) error {
	if !validTopologyFormats[f] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %s (must be 'svg', 'dot', 'png', or 'pdf')", f)
	}
	return nil
}

// runTopology builds the layout model, converts it to DOT, and writes the
// diagram in the requested format.
func runTopology(ctx context.Context, cfg Config, opts *topologyOpts) error {
	logger := loggerFromContext(ctx)

	model, err := computeLayout(ctx, cfg)
	if err != nil {
		return err
	}

	dot := nodelink.ToDOT(model, nodelink.Options{Detailed: opts.detailed})
	logger.Debugf("Generated DOT: %d bytes", len(dot))

	var data []byte
	if opts.format == "dot" {
		data = []byte(dot)
	} else {
		spinner := newSpinnerWithContext(ctx, "Rendering diagram with Graphviz...")
		spinner.Start()
		data, err = renderTopology(dot, opts.format, opts.scale)
		spinner.Stop()
		if err != nil {
			return errors.Wrap(errors.ErrCodeRenderingFailure, err, "render topology as %s", opts.format)
		}
	}

	path := withExtension(opts.output, opts.format)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}

	printSuccess("Wrote %s (%d nodes, %d edges)", path, model.NodeCount(), len(model.Edges()))
	return nil
}

// renderTopology renders DOT to one of the image formats.
func renderTopology(dot, format string, scale float64) ([]byte, error) {
	switch format {
	case "svg":
		return nodelink.RenderSVG(dot)
	case "png":
		return nodelink.RenderPNG(dot, scale)
	case "pdf":
		return nodelink.RenderPDF(dot)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format: %s", format)
}

// withExtension replaces the extension of path with the format's, so
// "topology.svg" with format png becomes "topology.png".
func withExtension(path, format string) string {
	for ext := range validTopologyFormats {
		if strings.HasSuffix(path, "."+ext) {
			return strings.TrimSuffix(path, "."+ext) + "." + format
		}
	}
	return path + "." + format
}
