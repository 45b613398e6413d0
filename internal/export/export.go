// Package export writes the currently rendered markup to disk, either
// verbatim as SVG or rasterized to PNG. It works purely from the markup
// string; the document model and renderer are not involved.
package export

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

const (
	SVGName = "diagram.svg"
	PNGName = "diagram.png"

	// PNGs are rasterized at double pixel density.
	pngScale = 2
)

var ErrNothingRendered = errors.New("nothing rendered yet")

// SVG writes the rendered markup verbatim.
func SVG(markup, path string) error {
	if strings.TrimSpace(markup) == "" {
		return ErrNothingRendered
	}
	if err := os.WriteFile(path, []byte(markup), 0o644); err != nil {
		return fmt.Errorf("export svg: %w", err)
	}
	return nil
}

// PNG rasterizes the rendered markup at 2x density and writes it to path.
func PNG(markup, path string) error {
	if strings.TrimSpace(markup) == "" {
		return ErrNothingRendered
	}
	icon, err := oksvg.ReadIconStream(strings.NewReader(markup))
	if err != nil {
		return fmt.Errorf("export png: parse svg: %w", err)
	}

	w := int(icon.ViewBox.W)
	h := int(icon.ViewBox.H)
	if w <= 0 || h <= 0 {
		return fmt.Errorf("export png: svg has no drawable area")
	}
	pw, ph := w*pngScale, h*pngScale
	icon.SetTarget(0, 0, float64(pw), float64(ph))

	img := image.NewRGBA(image.Rect(0, 0, pw, ph))
	scanner := rasterx.NewScannerGV(pw, ph, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(pw, ph, scanner), 1.0)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export png: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("export png: encode: %w", err)
	}
	return nil
}
