package web

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"

	"github.com/rook-computer/starfield/internal/raster"
	"github.com/rook-computer/starfield/internal/starfield"
)

// renderImage generates and encodes the requested starfield.
func renderImage(req renderRequest) (RenderedImage, error) {
	seed := req.Seed
	if seed == 0 {
		seed = starfield.NewSeed()
	}
	img, sum := starfield.Generate(req.Width, req.Height, req.Config, seed)

	var buf bytes.Buffer
	if err := raster.Encode(&buf, img, req.Format); err != nil {
		return RenderedImage{}, fmt.Errorf("encode %s: %w", req.Format, err)
	}
	return RenderedImage{
		ID:      uuid.NewString(),
		Seed:    seed,
		Width:   req.Width,
		Height:  req.Height,
		Format:  req.Format,
		Config:  req.Config,
		Summary: sum,
		Data:    buf.Bytes(),
	}, nil
}
