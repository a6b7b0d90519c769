package imaging_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"productPhotoAi/internal/imaging"
)

func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x += 8 {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: 128, B: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestValidate(t *testing.T) {
	data := testPNG(t, 32, 32)

	require.NoError(t, imaging.Validate(data, "product.png", 10<<20))

	err := imaging.Validate(data, "product.gif", 10<<20)
	require.ErrorContains(t, err, "invalid file type")

	err = imaging.Validate(data, "product.png", 16)
	require.ErrorContains(t, err, "size exceeds")

	err = imaging.Validate([]byte("definitely not an image"), "fake.png", 10<<20)
	require.ErrorContains(t, err, "corrupted")
}

func TestOptimizeResizesLargeImages(t *testing.T) {
	data := testPNG(t, 3000, 1500)

	out, mime, err := imaging.Optimize(data, 2048)
	require.NoError(t, err)
	require.Equal(t, "image/jpeg", mime)

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, 2048, cfg.Width)
	require.Equal(t, 1024, cfg.Height)
}

func TestOptimizeKeepsSmallImagesButReencodes(t *testing.T) {
	data := testPNG(t, 100, 60)

	out, mime, err := imaging.Optimize(data, 2048)
	require.NoError(t, err)
	require.Equal(t, "image/jpeg", mime)

	cfg, err := jpeg.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, 100, cfg.Width)
	require.Equal(t, 60, cfg.Height)
}

func TestOptimizeRejectsGarbage(t *testing.T) {
	_, _, err := imaging.Optimize([]byte("nope"), 2048)
	require.ErrorContains(t, err, "decode image")
}

func TestDataURL(t *testing.T) {
	url := imaging.DataURL([]byte{0xFF, 0xD8}, "image/jpeg")
	require.True(t, strings.HasPrefix(url, "data:image/jpeg;base64,"))

	require.True(t, strings.HasPrefix(imaging.DataURL([]byte{1}, ""), "data:image/jpeg;base64,"))
}

func TestMIMEForFilename(t *testing.T) {
	require.Equal(t, "image/png", imaging.MIMEForFilename("shot.PNG"))
	require.Equal(t, "image/webp", imaging.MIMEForFilename("shot.webp"))
	require.Equal(t, "image/jpeg", imaging.MIMEForFilename("shot.bmp"))
}
