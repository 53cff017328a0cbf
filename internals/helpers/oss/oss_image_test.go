package helper

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/require"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestConvertToWebP_Downscales(t *testing.T) {
	src := pngBytes(t, 400, 300)

	out, err := ConvertToWebPWithOptions(bytes.NewReader(src), "foto.png", WebPOptions{
		MaxW:    200,
		MaxH:    200,
		Quality: 80,
	})
	require.NoError(t, err)

	img, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, 200, img.Bounds().Dx())
	require.Equal(t, 150, img.Bounds().Dy())
}

// Thumbnail crop-to-fill: hasil selalu persis ukuran yang diminta.
func TestMakeThumbnailWebP(t *testing.T) {
	src := pngBytes(t, 400, 300)

	out, err := MakeThumbnailWebP(src, "foto.png", 32, 20)
	require.NoError(t, err)

	img, err := webp.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, 32, img.Bounds().Dx())
	require.Equal(t, 20, img.Bounds().Dy())
}

func TestMakeThumbnailWebP_RejectsNonImage(t *testing.T) {
	_, err := MakeThumbnailWebP([]byte("bukan gambar"), "foto.png", 32, 20)
	require.Error(t, err)
}

// URL thumbnail harus bisa diturunkan dari key objek utamanya.
func TestThumbKey(t *testing.T) {
	require.Equal(t, "homepage/hero/thumbs/img-ab12.webp", thumbKey("homepage/hero/img-ab12.webp"))
	require.Equal(t, "thumbs/img.webp", thumbKey("img.webp"))
}
