package tools

import (
	"path/filepath"
	"testing"
	"time"
)

func TestFormatSeconds(t *testing.T) {
	for _, tc := range []struct {
		d    time.Duration
		want string
	}{
		{0, "0.00"},
		{1234567890 * time.Nanosecond, "1.23"},
		{2*time.Second + 995*time.Millisecond, "3.00"},
		{75 * time.Millisecond, "0.08"},
	} {
		if got := FormatSeconds(tc.d); got != tc.want {
			t.Errorf("FormatSeconds(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func TestFormatRatio(t *testing.T) {
	for _, tc := range []struct {
		part, whole int64
		want        string
	}{
		{1, 3, "0.33"},
		{2, 3, "0.67"},
		{5, 0, "0.00"},
		{10, 4, "2.50"},
	} {
		if got := FormatRatio(tc.part, tc.whole); got != tc.want {
			t.Errorf("FormatRatio(%d, %d) = %q, want %q", tc.part, tc.whole, got, tc.want)
		}
	}
}

func TestDerivedFilePath(t *testing.T) {
	src := filepath.Join("photos", "cat.jpeg")
	for _, tc := range []struct {
		name   string
		output string
		suffix string
		ext    string
		want   string
	}{
		{"beside_source", "", OutputSuffix, ".jpeg", filepath.Join("photos", "cat_quadtree.jpeg")},
		{"output_folder", "out", OutputSuffix, "gif", filepath.Join("out", "cat_quadtree.gif")},
		{"decoded", "", "_decoded", ".png", filepath.Join("photos", "cat_decoded.png")},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := DerivedFilePath(src, tc.output, tc.suffix, tc.ext); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
	if !IsDerivedOutput(filepath.Join("photos", "cat_quadtree.png")) || IsDerivedOutput(src) {
		t.Fatal("IsDerivedOutput misclassified a path")
	}
}

func TestParseFlagsForCommandCompress(t *testing.T) {
	f, err := ParseFlagsForCommandCompress([]string{"-l", "4", "-b", "-VV", "--max-size", "512", "img.png"})
	if err != nil {
		t.Fatal(err)
	}
	if f.File != "img.png" || f.Level != 4 || !f.Borders || f.Gif || f.MaxSize != 512 {
		t.Fatalf("unexpected flags %s", FmtJSONString(f))
	}
	if len(f.Verbose) != 2 {
		t.Fatalf("verbosity = %d, want 2", len(f.Verbose))
	}

	if _, err := ParseFlagsForCommandCompress([]string{"--file", "img.png", "--level", "two"}); err == nil {
		t.Fatal("a non integer level was accepted")
	}
}
