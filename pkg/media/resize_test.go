package media

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeTestImage(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x += 100 {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestMaxDimensionForProvider(t *testing.T) {
	tests := []struct {
		provider string
		want     int
	}{
		{"claude", 8000},
		{"anthropic/claude-sonnet", 8000},
		{"gemini", 3072},
		{"google", 3072},
		{"openai", 2048},
		{"gpt-4o", 2048},
		{"", 2000},
		{"unknown-model", 2000},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MaxDimensionForProvider(tt.provider), "provider %q", tt.provider)
	}
}

func TestFitToProviderScalesDown(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large image test in short mode")
	}

	data := encodeTestImage(t, 10000, 5000)

	result, err := FitToProvider(data, "claude")
	require.NoError(t, err)

	assert.True(t, result.Resized)
	assert.Equal(t, 8000, result.Width)
	assert.Equal(t, 4000, result.Height)
	assert.Equal(t, 10000, result.OriginalWidth)
	assert.Equal(t, 5000, result.OriginalHeight)

	decoded, _, err := image.Decode(bytes.NewReader(result.Data))
	require.NoError(t, err)
	assert.Equal(t, 8000, decoded.Bounds().Dx())
	assert.Equal(t, 4000, decoded.Bounds().Dy())
}

func TestFitToProviderDefaultLimit(t *testing.T) {
	data := encodeTestImage(t, 4000, 2000)

	result, err := FitToProvider(data, "")
	require.NoError(t, err)

	assert.True(t, result.Resized)
	assert.Equal(t, 2000, result.Width)
	assert.Equal(t, 1000, result.Height)
}

func TestFitToProviderTallImage(t *testing.T) {
	data := encodeTestImage(t, 1000, 4000)

	result, err := FitToProvider(data, "")
	require.NoError(t, err)

	assert.True(t, result.Resized)
	assert.Equal(t, 2000, result.Height)
	assert.Equal(t, 500, result.Width)
}

func TestFitToProviderNeverUpscales(t *testing.T) {
	data := encodeTestImage(t, 800, 600)

	result, err := FitToProvider(data, "claude")
	require.NoError(t, err)

	assert.False(t, result.Resized)
	assert.Equal(t, 800, result.Width)
	assert.Equal(t, 600, result.Height)
	assert.Equal(t, data, result.Data)
}

func TestFitToProviderRejectsGarbage(t *testing.T) {
	_, err := FitToProvider([]byte("not an image"), "claude")
	assert.Error(t, err)
}
