package usecase

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"

	_ "image/gif"
	_ "image/jpeg"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// Catalog illustrations are normalized to a fixed PNG thumbnail so the
// rendered pricing table always shows a uniform image column.
const (
	thumbWidth  = 160
	thumbHeight = 180
)

var ErrInvalidImage = errors.New("arquivo de imagem inválido ou corrompido")

// letterboxPNG scales src to fit inside 160x180 without cropping, centers it
// on a transparent canvas and returns the encoded PNG.
func letterboxPNG(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, ErrInvalidImage
	}

	// Contain: scale down to fit, never up beyond the target box.
	w, h := b.Dx(), b.Dy()
	if w > thumbWidth || h > thumbHeight {
		scaleW := float64(thumbWidth) / float64(w)
		scaleH := float64(thumbHeight) / float64(h)
		scale := scaleW
		if scaleH < scale {
			scale = scaleH
		}
		w = int(float64(b.Dx()) * scale)
		h = int(float64(b.Dy()) * scale)
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
	}

	canvas := image.NewRGBA(image.Rect(0, 0, thumbWidth, thumbHeight))
	offX := (thumbWidth - w) / 2
	offY := (thumbHeight - h) / 2
	dst := image.Rect(offX, offY, offX+w, offY+h)
	draw.CatmullRom.Scale(canvas, dst, src, b, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// allowedImageExt accepts the upload formats the catalog has always taken.
func allowedImageExt(filename string) bool {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 {
		return false
	}
	switch strings.ToLower(filename[idx+1:]) {
	case "png", "jpg", "jpeg", "webp":
		return true
	}
	return false
}
