package imageutil

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	// декодеры форматов, которые может вернуть Static Maps
	_ "image/gif"
	_ "image/jpeg"
)

// Decode декодирует PNG/JPEG/GIF и возвращает имя формата
func Decode(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return img, format, nil
}

// CropRows оставляет строки [top, top+height) на всю ширину изображения
func CropRows(src image.Image, top, height int) (*image.RGBA, error) {
	b := src.Bounds()
	if top < 0 || height <= 0 || top+height > b.Dy() {
		return nil, fmt.Errorf("crop rows [%d, %d) out of image height %d", top, top+height, b.Dy())
	}

	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), height))
	draw.Draw(dst, dst.Bounds(), src, image.Pt(b.Min.X, b.Min.Y+top), draw.Src)
	return dst, nil
}

// EncodePNG кодирует изображение в PNG
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}
