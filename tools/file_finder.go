package tools

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/ecopia-map/quadtree_compressor/internal/compressor"
)

type FileFinder interface {
	GetImageFilesToProcess(opts *compressor.CompressorOptions) ([]string, error)
}

type StandardFileFinder struct{}

func NewStandardFileFinder() FileFinder {
	return &StandardFileFinder{}
}

func (f *StandardFileFinder) GetImageFilesToProcess(opts *compressor.CompressorOptions) ([]string, error) {
	// If folder processing is not enabled then the image is given by the -file flag, otherwise look for images in the
	// -file folder eventually excluding nested folders if Recursive flag is disabled
	if !opts.FolderProcessing {
		return []string{opts.Input}, nil
	}

	return f.getImageFilesFromInputFolder(opts)
}

func (f *StandardFileFinder) getImageFilesFromInputFolder(opts *compressor.CompressorOptions) ([]string, error) {
	var imageFiles = make([]string, 0)

	baseInfo, err := os.Stat(opts.Input)
	if err != nil {
		return nil, err
	}
	err = filepath.Walk(
		opts.Input,
		func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				if !opts.Recursive && !os.SameFile(info, baseInfo) {
					return filepath.SkipDir
				}
				return nil
			}
			if compressor.IsImageExtension(filepath.Ext(info.Name())) && !IsDerivedOutput(path) {
				imageFiles = append(imageFiles, path)
			}
			return nil
		},
	)
	if err != nil {
		return nil, err
	}

	sort.Strings(imageFiles)
	return imageFiles, nil
}
