// Package render provides output-format conversion for animation frames.
//
// # Overview
//
// Animation frames are produced as SVG by the canvas backend. This package
// converts them to other formats and hosts the network diagram renderer:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Ring-network diagrams (in [nodelink] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg := frameCanvas.Bytes()
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders the monad ring topology as a classic
// graph diagram using Graphviz.
//
//	dot := nodelink.ToDOT(model, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// [nodelink]: github.com/matzehuels/monadviz/pkg/render/nodelink
package render
