package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ecopia-map/quadtree_compressor/internal/compressor"
)

func TestValidateOptions(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.png", "b.JPEG", "c.bmp", "d.qtz"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0666); err != nil {
			t.Fatal(err)
		}
	}

	for _, tc := range []struct {
		name        string
		opts        compressor.CompressorOptions
		wantOk      bool
		wantCommand compressor.Command
	}{
		{"png", compressor.CompressorOptions{Input: filepath.Join(dir, "a.png"), Level: 1}, true, compressor.CommandCompress},
		{"upper_case_jpeg", compressor.CompressorOptions{Input: filepath.Join(dir, "b.JPEG"), Level: 8}, true, compressor.CommandCompress},
		{"level_zero", compressor.CompressorOptions{Input: filepath.Join(dir, "a.png"), Level: 0}, false, ""},
		{"level_nine", compressor.CompressorOptions{Input: filepath.Join(dir, "a.png"), Level: 9}, false, ""},
		{"bad_extension", compressor.CompressorOptions{Input: filepath.Join(dir, "c.bmp"), Level: 3}, false, ""},
		{"missing", compressor.CompressorOptions{Input: filepath.Join(dir, "x.png"), Level: 3}, false, ""},
		{"archive", compressor.CompressorOptions{Input: filepath.Join(dir, "d.qtz")}, true, compressor.CommandDecode},
		{"folder_without_flag", compressor.CompressorOptions{Input: dir, Level: 3}, false, ""},
		{"folder", compressor.CompressorOptions{Input: dir, Level: 3, FolderProcessing: true}, true, compressor.CommandCompress},
		{"negative_blur", compressor.CompressorOptions{Input: filepath.Join(dir, "a.png"), Level: 2, Blur: -1}, false, ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			msg, ok := validateOptions(&tc.opts)
			if ok != tc.wantOk {
				t.Fatalf("validateOptions = (%q, %v), want ok=%v", msg, ok, tc.wantOk)
			}
			if ok && tc.opts.Command != tc.wantCommand {
				t.Fatalf("command = %q, want %q", tc.opts.Command, tc.wantCommand)
			}
		})
	}
}
