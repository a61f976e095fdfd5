package imageutil

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stripedImage - каждая строка y окрашена в цвет (y, 255-y, x)
func stripedImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(y), G: uint8(255 - y), B: uint8(x), A: 255})
		}
	}
	return img
}

func TestCropRows(t *testing.T) {
	const w, h, margin = 16, 20, 5
	src := stripedImage(w, h+2*margin)

	dst, err := CropRows(src, margin, h)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, w, h), dst.Bounds())

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			want := color.RGBAModel.Convert(src.At(x, y+margin))
			require.Equal(t, want, dst.At(x, y), "pixel %d,%d", x, y)
		}
	}
}

func TestCropRows_NonZeroOrigin(t *testing.T) {
	src := stripedImage(8, 30).SubImage(image.Rect(0, 10, 8, 30))

	dst, err := CropRows(src, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, color.RGBAModel.Convert(src.At(3, 12)), dst.At(3, 0))
}

func TestCropRows_OutOfBounds(t *testing.T) {
	src := stripedImage(4, 10)

	_, err := CropRows(src, 5, 6)
	assert.Error(t, err)
	_, err = CropRows(src, -1, 2)
	assert.Error(t, err)
	_, err = CropRows(src, 0, 0)
	assert.Error(t, err)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	dst, err := CropRows(stripedImage(16, 30), 5, 20)
	require.NoError(t, err)

	data, err := EncodePNG(dst)
	require.NoError(t, err)

	img, format, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 20, img.Bounds().Dy())
}

func TestDecode_JPEG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, stripedImage(8, 8), nil))

	_, format, err := Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
}

func TestDecode_Garbage(t *testing.T) {
	_, _, err := Decode([]byte("not an image"))
	assert.Error(t, err)
}
