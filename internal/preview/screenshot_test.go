package preview

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestFileLabel(t *testing.T) {
	tests := map[string]string{
		"":           "frame",
		"  hover ":   "hover",
		"rest->lift": "rest-_lift",
		"t1.5ms":     "t1.5ms",
		"a/b c":      "a_b_c",
		"état":       "_tat",
	}
	for in, want := range tests {
		if got := fileLabel(in); got != want {
			t.Errorf("fileLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSaveScreenshots(t *testing.T) {
	// one half-transparent premultiplied pixel, one opaque
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	copy(img.Pix, []byte{64, 32, 0, 128, 10, 20, 30, 255})

	dir := filepath.Join(t.TempDir(), "shots")
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	paths, err := saveScreenshots(img, dir, []string{"hover", "hover", "rest"}, now)
	if err != nil {
		t.Fatalf("saveScreenshots: %v", err)
	}
	want := []string{
		filepath.Join(dir, "20260304_050607_hover.png"),
		filepath.Join(dir, "20260304_050607_hover-2.png"),
		filepath.Join(dir, "20260304_050607_rest.png"),
	}
	if len(paths) != len(want) {
		t.Fatalf("paths = %v, want %v", paths, want)
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Fatalf("paths = %v, want %v", paths, want)
		}
	}

	f, err := os.Open(paths[0])
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := color.NRGBAModel.Convert(decoded.At(0, 0)).(color.NRGBA)
	if got != (color.NRGBA{R: 127, G: 63, B: 0, A: 128}) {
		t.Errorf("pixel = %+v, want straight alpha {127 63 0 128}", got)
	}
	if got := color.NRGBAModel.Convert(decoded.At(1, 0)).(color.NRGBA); got != (color.NRGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("opaque pixel = %+v", got)
	}
}

func TestSaveScreenshotsWithoutLabels(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "unused")
	paths, err := saveScreenshots(image.NewRGBA(image.Rect(0, 0, 1, 1)), dir, nil, time.Now())
	if err != nil || paths != nil {
		t.Fatalf("paths=%v err=%v", paths, err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("directory created without labels: %v", err)
	}
}
