package internal

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
)

// LoadWatermark decodes the watermark compiled into the binary. A decode
// failure means a broken build, so callers treat it as unrecoverable.
func LoadWatermark() (image.Image, error) {
	return imaging.Decode(bytes.NewReader(watermarkPNG))
}

// Stamp composites mark over img so their bottom-right corners coincide.
func Stamp(img, mark image.Image) image.Image {
	x := img.Bounds().Dx() - mark.Bounds().Dx()
	y := img.Bounds().Dy() - mark.Bounds().Dy()
	return imaging.Overlay(img, mark, image.Pt(x, y), 1.0)
}

// OpenImage loads a source photo from disk.
func OpenImage(path string) (image.Image, error) {
	return imaging.Open(path)
}

// SaveJPEG writes img to path as a lossy JPEG with the given quality.
func SaveJPEG(img image.Image, path string, quality int) error {
	return imaging.Save(img, path, imaging.JPEGQuality(quality))
}
