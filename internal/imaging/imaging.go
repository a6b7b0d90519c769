package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	// DefaultMaxDimension bounds the longest image side before upload to the
	// model API.
	DefaultMaxDimension = 2048

	jpegQuality = 85
)

var mimeByExt = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// Validate checks an uploaded file before any processing: size cap, extension
// allowlist and a decode of the image header to reject corrupt files.
func Validate(data []byte, filename string, maxBytes int64) error {
	if int64(len(data)) > maxBytes {
		return fmt.Errorf("imaging: file size exceeds %dMB limit", maxBytes/(1024*1024))
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := mimeByExt[ext]; !ok {
		allowed := []string{".jpg", ".jpeg", ".png", ".webp"}
		return fmt.Errorf("imaging: invalid file type %q, allowed: %s", ext, strings.Join(allowed, ", "))
	}

	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("imaging: invalid or corrupted image file: %w", err)
	}
	return nil
}

// Optimize re-encodes the image as JPEG, scaling it down first when the
// longest side exceeds maxDim. Aspect ratio is preserved. Returns the encoded
// bytes and their MIME type.
func Optimize(data []byte, maxDim int) ([]byte, string, error) {
	if maxDim <= 0 {
		maxDim = DefaultMaxDimension
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("imaging: decode image: %w", err)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if longest := max(width, height); longest > maxDim {
		ratio := float64(maxDim) / float64(longest)
		width = int(float64(width) * ratio)
		height = int(float64(height) * ratio)
		if width < 1 {
			width = 1
		}
		if height < 1 {
			height = 1
		}

		scaled := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(scaled, scaled.Bounds(), src, bounds, draw.Over, nil)
		src = scaled
	}

	var out bytes.Buffer
	if err := jpeg.Encode(&out, src, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, "", fmt.Errorf("imaging: encode jpeg: %w", err)
	}
	return out.Bytes(), "image/jpeg", nil
}

// DataURL embeds image bytes as a base64 data URL for the model API.
func DataURL(data []byte, mimeType string) string {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}

// MIMEForFilename maps a filename extension to its MIME type, defaulting to
// JPEG for anything unknown.
func MIMEForFilename(filename string) string {
	if mime, ok := mimeByExt[strings.ToLower(filepath.Ext(filename))]; ok {
		return mime
	}
	return "image/jpeg"
}
