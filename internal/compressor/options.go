package compressor

import "strings"

type Command string

const (
	// Builds the quadtree of a raster image and writes the compressed outputs
	CommandCompress Command = "COMPRESS"

	// Renders a .qtz archive back to a raster image
	CommandDecode Command = "DECODE"
)

const (
	MinLevel = 1
	MaxLevel = 8

	ArchiveExtension = ".qtz"
)

var imageExtensions = []string{".jpg", ".jpeg", ".png"}

// IsImageExtension reports whether ext (with or without the leading dot) is an accepted input image format
func IsImageExtension(ext string) bool {
	normalized := strings.ToLower(ext)
	if !strings.HasPrefix(normalized, ".") {
		normalized = "." + normalized
	}
	for _, e := range imageExtensions {
		if normalized == e {
			return true
		}
	}
	return false
}

func IsArchiveExtension(ext string) bool {
	return strings.EqualFold(ext, ArchiveExtension)
}

// Contains the options needed for the compression pipeline
type CompressorOptions struct {
	Input            string  // Input image file/folder, or .qtz archive
	Output           string  // Output folder, empty means beside the source
	Level            int     // Depth of the quadtree rendered to the output image
	Borders          bool    // Outline every leaf rectangle
	Gif              bool    // Write an animation with one frame per depth
	Archive          bool    // Write the leaf set as a .qtz archive
	Show             bool    // Open a preview window after compression
	MaxSize          int     // Downscale so that the longest side is at most MaxSize, 0 disables
	Blur             float64 // Gaussian blur sigma applied before sampling, 0 disables
	Workers          int     // Size of the build pool, <= 0 means one per CPU
	FolderProcessing bool    // Process every image in the Input folder
	Recursive        bool    // Recursive lookup of images in subfolders

	Command Command
}

func (opt *CompressorOptions) Copy() *CompressorOptions {
	newOpt := *opt
	return &newOpt
}
