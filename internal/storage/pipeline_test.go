package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encode(t *testing.T, img image.Image, format string) []byte {
	t.Helper()
	var buf bytes.Buffer
	switch format {
	case "png":
		require.NoError(t, png.Encode(&buf, img))
	case "jpeg":
		require.NoError(t, jpeg.Encode(&buf, img, nil))
	}
	return buf.Bytes()
}

func testImage(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}
	return img
}

func TestProcessImageAcceptsPNGAndJPEG(t *testing.T) {
	for _, format := range []string{"png", "jpeg"} {
		out, err := ProcessImage(bytes.NewReader(encode(t, testImage(64, 48), format)))
		require.NoError(t, err, format)

		// WebP container magic.
		require.Greater(t, len(out), 12, format)
		assert.Equal(t, "RIFF", string(out[0:4]), format)
		assert.Equal(t, "WEBP", string(out[8:12]), format)
	}
}

func TestProcessImageDownscalesWideImages(t *testing.T) {
	out, err := ProcessImage(bytes.NewReader(encode(t, testImage(2400, 1200), "jpeg")))
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 1200, cfg.Width)
	assert.Equal(t, 600, cfg.Height)
}

func TestProcessImageKeepsSmallImages(t *testing.T) {
	out, err := ProcessImage(bytes.NewReader(encode(t, testImage(800, 400), "png")))
	require.NoError(t, err)

	cfg, err := webp.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Width)
	assert.Equal(t, 400, cfg.Height)
}

func TestProcessImageRejectsGarbage(t *testing.T) {
	_, err := ProcessImage(bytes.NewReader([]byte("definitely not an image")))
	require.Error(t, err)
}

func TestMockImageStoreRoundTrip(t *testing.T) {
	store := NewMockImageStore()

	key, err := store.Upload(context.Background(), 7, []byte("webp-bytes"))
	require.NoError(t, err)
	assert.Contains(t, key, "services/7/")

	body, ok := store.Object(key)
	require.True(t, ok)
	assert.Equal(t, []byte("webp-bytes"), body)

	require.NoError(t, store.Delete(context.Background(), key))
	_, ok = store.Object(key)
	assert.False(t, ok)
}
