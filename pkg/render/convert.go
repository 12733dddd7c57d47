package render

import (
	"bytes"
	"fmt"
	"os/exec"
)

// rsvgConvert is the external converter binary from librsvg.
const rsvgConvert = "rsvg-convert"

// ToPDF converts SVG bytes to PDF using rsvg-convert.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin
// (Linux).
func ToPDF(svg []byte) ([]byte, error) {
	return convert(svg, "--format=pdf")
}

// ToPNG converts SVG bytes to PNG at the given scale factor.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI
// displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin
// (Linux).
func ToPNG(svg []byte, scale float64) ([]byte, error) {
	return convert(svg, "--format=png", fmt.Sprintf("--zoom=%g", scale))
}

func convert(svg []byte, args ...string) ([]byte, error) {
	if _, err := exec.LookPath(rsvgConvert); err != nil {
		return nil, fmt.Errorf("%s not found (install librsvg): %w", rsvgConvert, err)
	}

	cmd := exec.Command(rsvgConvert, args...)
	cmd.Stdin = bytes.NewReader(svg)

	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: %w: %s", rsvgConvert, err, stderr.String())
	}
	return out.Bytes(), nil
}
