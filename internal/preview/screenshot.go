package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
)

// snapshot copies the screen into memory. ReadPixels yields premultiplied
// RGBA, which is image.RGBA's own layout; the PNG encoder converts it.
func snapshot(screen *ebiten.Image) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, screen.Bounds().Dx(), screen.Bounds().Dy()))
	screen.ReadPixels(img.Pix)
	return img
}

// saveScreenshots encodes img once and writes a copy per label into dir.
// Labels repeated within one call get a numeric suffix.
func saveScreenshots(img image.Image, dir string, labels []string, now time.Time) ([]string, error) {
	if len(labels) == 0 {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create screenshot dir: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode screenshot: %w", err)
	}

	stamp := now.Format("20060102_150405")
	seen := make(map[string]int, len(labels))
	paths := make([]string, 0, len(labels))
	for _, label := range labels {
		name := fileLabel(label)
		seen[name]++
		if n := seen[name]; n > 1 {
			name = fmt.Sprintf("%s-%d", name, n)
		}
		path := filepath.Join(dir, stamp+"_"+name+".png")
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return paths, fmt.Errorf("write screenshot: %w", err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// fileLabel makes a state id or playhead label safe for a file name.
func fileLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "frame"
	}
	return strings.Map(func(r rune) rune {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) || r == '-' || r == '.' {
			return r
		}
		return '_'
	}, label)
}
