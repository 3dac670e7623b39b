package tools

import (
	"io"

	"github.com/jessevdk/go-flags"
)

type FlagsForCommandCompress struct {
	File         string  `short:"f" long:"file" description:"Image to compress (jpg, jpeg or png), folder of images with --folder, or a .qtz archive to decode" json:"file"`
	Level        int     `short:"l" long:"level" description:"Compression level, the depth of the quadtree rendered to the output image, from 1 to 8" json:"level"`
	Borders      bool    `short:"b" long:"borders" description:"Outline every quadtree leaf in black" json:"borders"`
	Gif          bool    `short:"g" long:"gif" description:"Write an animation showing the quadtree one depth per frame" json:"gif"`
	Output       string  `short:"o" long:"output" description:"Folder where to write the outputs, defaults to the folder of the source" json:"output"`
	Archive      bool    `short:"a" long:"archive" description:"Also write the leaf set as a .qtz archive" json:"archive"`
	Show         bool    `short:"s" long:"show" description:"Open a preview of the source and the compressed image" json:"show"`
	MaxSize      int     `long:"max-size" description:"Downscale the source so that its longest side is at most this many pixels" json:"max_size"`
	Blur         float64 `long:"blur" description:"Sigma of a gaussian blur applied to the source before compression" json:"blur"`
	Workers      int     `short:"w" long:"workers" description:"Number of goroutines building the quadtree, defaults to the number of CPUs" json:"workers"`
	Folder       bool    `long:"folder" description:"Process every image in the folder given by --file" json:"folder"`
	Recursive    bool    `long:"recursive" description:"Look for images in subfolders too, with --folder" json:"recursive"`
	Silent       bool    `long:"silent" description:"Suppress all the non-error messages" json:"silent"`
	LogTimestamp bool    `short:"t" long:"timestamp" description:"Add a timestamp to log messages" json:"timestamp"`
	Verbose      []bool  `short:"V" long:"verbose" description:"Increase the glog verbosity, repeat for more detail" json:"verbose"`
	Help         bool    `short:"h" long:"help" description:"Display this help" json:"help"`
	Version      bool    `short:"v" long:"version" description:"Display the version" json:"version"`
}

// Parses args (without the program name). A positional argument is used as the file when --file is missing.
func ParseFlagsForCommandCompress(args []string) (*FlagsForCommandCompress, error) {
	var f FlagsForCommandCompress

	parser := flags.NewParser(&f, flags.IgnoreUnknown)
	rest, err := parser.ParseArgs(args)
	if err != nil {
		return &f, err
	}
	if f.File == "" && len(rest) > 0 {
		f.File = rest[0]
	}

	return &f, nil
}

func WriteFlagsHelp(w io.Writer) {
	var f FlagsForCommandCompress
	parser := flags.NewParser(&f, flags.None)
	parser.Name = "quadtree_compressor"
	parser.WriteHelp(w)
}
