// Package nodelink renders the monad ring topology as a node-link diagram.
//
// The diagram is a static view of the network the animation converges to:
// every monad as a labeled node, connected to its two ring neighbors. It
// is generated as Graphviz DOT and rendered with the neato engine, which
// lays rings out as rings.
//
//	dot := nodelink.ToDOT(model, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//	png, err := nodelink.RenderPNG(dot, 2.0)
package nodelink
