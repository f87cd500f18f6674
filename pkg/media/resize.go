// Package media post-processes screenshots before they are returned to the
// caller. Vision models reject or silently downscale images above a
// provider-specific dimension limit, so screenshots are fitted to the
// target provider's bounding box while preserving aspect ratio.
package media

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"golang.org/x/image/draw"

	// Register decoders for the formats the browser can produce
	_ "image/jpeg"
)

const defaultMaxDimension = 2000

// FitResult describes a processed screenshot.
type FitResult struct {
	Data           []byte
	Width          int
	Height         int
	Resized        bool
	OriginalWidth  int
	OriginalHeight int
}

// MaxDimensionForProvider returns the largest side length accepted by the
// given vision provider. Unknown providers get a conservative default.
func MaxDimensionForProvider(provider string) int {
	p := strings.ToLower(provider)
	switch {
	case strings.Contains(p, "claude"), strings.Contains(p, "anthropic"):
		return 8000
	case strings.Contains(p, "gemini"), strings.Contains(p, "google"):
		return 3072
	case strings.Contains(p, "openai"), strings.Contains(p, "gpt"):
		return 2048
	default:
		return defaultMaxDimension
	}
}

// FitToProvider decodes a screenshot and scales it down so that neither side
// exceeds the provider's dimension limit. Images already within bounds are
// re-encoded untouched. Images are never upscaled.
func FitToProvider(data []byte, provider string) (*FitResult, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode screenshot: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	maxDim := MaxDimensionForProvider(provider)

	if width <= maxDim && height <= maxDim {
		return &FitResult{
			Data:           data,
			Width:          width,
			Height:         height,
			OriginalWidth:  width,
			OriginalHeight: height,
		}, nil
	}

	newWidth, newHeight := width, height
	if width >= height {
		newWidth = maxDim
		newHeight = height * maxDim / width
	} else {
		newHeight = maxDim
		newWidth = width * maxDim / height
	}
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("failed to encode resized screenshot: %w", err)
	}

	return &FitResult{
		Data:           buf.Bytes(),
		Width:          newWidth,
		Height:         newHeight,
		Resized:        true,
		OriginalWidth:  width,
		OriginalHeight: height,
	}, nil
}
