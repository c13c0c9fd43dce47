package windfarm

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello", "hello"},
		{"after-spawn", "after-spawn"},
		{"frame.01", "frame.01"},
		{"has spaces", "has_spaces"},
		{"path/to/thing", "path_to_thing"},
		{"back\\slash", "back_slash"},
		{"special!@#$%", "special_____"},
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"MixedCase123", "MixedCase123"},
	}
	for _, tt := range tests {
		got := sanitizeLabel(tt.in)
		if got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSaveScreenshots(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	now := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)

	paths, err := SaveScreenshots(dir, []string{"night", "after reset"}, img, now)
	if err != nil {
		t.Fatalf("SaveScreenshots: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("paths = %v, want 2", paths)
	}
	if base := filepath.Base(paths[1]); base != "20240506_070809_after_reset.png" {
		t.Errorf("name = %q", base)
	}
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		dec, err := png.Decode(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", p, err)
		}
		if b := dec.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
			t.Errorf("%s bounds = %v", p, b)
		}
	}
}

func TestSaveScreenshotsNone(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "unused")
	paths, err := SaveScreenshots(dir, nil, image.NewNRGBA(image.Rect(0, 0, 1, 1)), time.Now())
	if err != nil || paths != nil {
		t.Errorf("got %v, %v; want nil, nil", paths, err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("directory created with no labels")
	}
}

func TestSaveScreenshotsBadDir(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := SaveScreenshots(filepath.Join(file, "sub"), []string{"x"}, image.NewNRGBA(image.Rect(0, 0, 1, 1)), time.Now())
	if err == nil || !strings.HasPrefix(err.Error(), "screenshot:") {
		t.Errorf("err = %v, want screenshot error", err)
	}
}
