package render

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"

	"github.com/phasemap/phasemap/pkg/errors"
	"github.com/phasemap/phasemap/pkg/roadmap"
)

// Options control the PNG sink.
type Options struct {
	// Scale supersamples the render: the page is composed at Scale
	// times the configured dimensions and downscaled with a Lanczos
	// filter. Values at or below 1 render at native size. The output is
	// always exactly Config.Width x Config.Height.
	Scale float64
}

// Render composes the plan and encodes it as PNG bytes.
func Render(p roadmap.Plan, cfg Config, fonts *FontSet, opts Options) ([]byte, error) {
	var img image.Image
	if opts.Scale > 1 {
		big := Compose(p, cfg.Scaled(opts.Scale), fonts.Rescale(opts.Scale))
		img = imaging.Resize(big, cfg.Width, cfg.Height, imaging.Lanczos)
	} else {
		img = Compose(p, cfg, fonts)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "failed to encode PNG")
	}
	return buf.Bytes(), nil
}
