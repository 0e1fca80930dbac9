package segmented

import (
	"fmt"
	"image"
	"image/png"
	"io"

	xdraw "golang.org/x/image/draw"
)

// Image renders the colormap as a horizontal strip, one pixel per level.
func (c *Colormap) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, len(c.lut), 1))
	for i, t := range c.lut {
		img.SetRGBA(i, 0, toRGBA(t))
	}
	return img
}

// WritePNG encodes the colormap as a width x height gradient strip.
func WritePNG(w io.Writer, c *Colormap, width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("invalid image size %dx%d", width, height)
	}
	src := c.Image()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return png.Encode(w, dst)
}
