package pkg

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"

	"github.com/golang/glog"

	"github.com/ecopia-map/quadtree_compressor/internal/archive"
	"github.com/ecopia-map/quadtree_compressor/internal/compressor"
	"github.com/ecopia-map/quadtree_compressor/internal/io"
	"github.com/ecopia-map/quadtree_compressor/internal/preprocess"
	"github.com/ecopia-map/quadtree_compressor/internal/quadtree"
	"github.com/ecopia-map/quadtree_compressor/internal/quadtree/color_tree"
	"github.com/ecopia-map/quadtree_compressor/internal/render"
	"github.com/ecopia-map/quadtree_compressor/internal/viewer"
	"github.com/ecopia-map/quadtree_compressor/pkg/algorithm_manager"
	"github.com/ecopia-map/quadtree_compressor/tools"
)

type ICompressor interface {
	RunCompressor(opts *compressor.CompressorOptions) error
}

type Compressor struct {
	fileFinder       tools.FileFinder
	algorithmManager algorithm_manager.AlgorithmManager
}

func NewCompressor(fileFinder tools.FileFinder, algorithmManager algorithm_manager.AlgorithmManager) ICompressor {
	return &Compressor{
		fileFinder:       fileFinder,
		algorithmManager: algorithmManager,
	}
}

// Starts the compression process
func (c *Compressor) RunCompressor(opts *compressor.CompressorOptions) error {
	tools.LogOutput("Preparing list of files to process...")

	// Prepare list of files to process
	imageFiles, err := c.fileFinder.GetImageFilesToProcess(opts)
	if err != nil {
		return err
	}
	if len(imageFiles) == 0 {
		return errors.New("no image found to process")
	}
	glog.V(1).Infoln("image_file list", tools.FmtJSONString(imageFiles))

	if opts.Output != "" {
		if err := tools.CreateDirectoryIfDoesNotExist(opts.Output); err != nil {
			return err
		}
	}

	for i, filePath := range imageFiles {
		tools.LogOutput("Processing file " + strconv.Itoa(i+1) + "/" + strconv.Itoa(len(imageFiles)))
		if err := c.processImageFile(filePath, opts); err != nil {
			return fmt.Errorf("%s: %w", filePath, err)
		}
	}

	return nil
}

func (c *Compressor) processImageFile(filePath string, opts *compressor.CompressorOptions) error {
	tools.LogOutput("> reading image...", filepath.Base(filePath))
	img, err := readImage(filePath)
	if err != nil {
		return err
	}
	img = preprocess.Apply(img, c.algorithmManager.GetPreprocessOptions())

	tree := c.algorithmManager.GetTreeAlgorithm(img)
	if err := c.prepareDataStructure(tree); err != nil {
		return err
	}

	level := opts.Level
	if level > tree.MaxDepth() {
		tools.LogOutput("> level", level, "is deeper than the tree, using", tree.MaxDepth())
		level = tree.MaxDepth()
	}
	leaves, err := tree.GetLeaves(level)
	if err != nil {
		return err
	}

	tools.LogOutput("> rendering level", level, "with", len(leaves), "leaves...")
	compressed := c.algorithmManager.GetRenderer().Render(leaves, tree.Width(), tree.Height(), opts.Borders)
	outputPath := tools.DerivedFilePath(filePath, opts.Output, tools.OutputSuffix, filepath.Ext(filePath))
	if err := writeImage(outputPath, compressed); err != nil {
		return err
	}
	tools.LogOutput("> image written to", outputPath)

	pixels := int64(tree.Width()) * int64(tree.Height())
	tools.LogOutput("> leaves per pixel:", tools.FormatRatio(int64(len(leaves)), pixels))
	glog.V(1).Infoln("tree stats", tools.FmtJSONString(tree.Stats()))

	if opts.Gif {
		tools.LogOutput("> exporting animation...")
		if err := c.exportTreeAsAnimation(tree, opts, filePath); err != nil {
			return err
		}
	}

	if opts.Archive {
		archivePath := tools.DerivedFilePath(filePath, opts.Output, tools.OutputSuffix, compressor.ArchiveExtension)
		if err := writeArchive(archivePath, tree, level, leaves); err != nil {
			return err
		}
		tools.LogOutput("> archive written to", archivePath)
	}

	if opts.Show {
		if err := viewer.Show(img, compressed); err != nil {
			return err
		}
	}

	tools.LogOutput("> done processing", filepath.Base(filePath))
	return nil
}

func (c *Compressor) prepareDataStructure(tree quadtree.ITree) error {
	// Build tree hierarchical structure
	tools.LogOutput("> building data structure...")
	return tree.Build()
}

// Renders one frame per tree level with a pool of consumers and writes them as a GIF
func (c *Compressor) exportTreeAsAnimation(tree quadtree.ITree, opts *compressor.CompressorOptions, filePath string) error {
	// if tree is not built, exit
	if !tree.IsBuilt() {
		return errors.New("quadtree not built, data structure not initialized")
	}

	frameCount := io.FrameCount(tree)
	numConsumers := runtime.NumCPU()
	if numConsumers > frameCount {
		numConsumers = frameCount
	}

	frames := io.NewFrameSet(frameCount)

	// init channel where to submit work with a buffer as large as the number of consumers
	workChannel := make(chan *io.WorkUnit, numConsumers)

	// init channel where consumers can eventually submit errors that prevented them to finish the job
	errorChannel := make(chan error, numConsumers)

	var waitGroup sync.WaitGroup

	// add producer to waitgroup and launch producer goroutine
	waitGroup.Add(1)
	producer := io.NewStandardProducer(opts.Borders)
	go producer.Produce(workChannel, &waitGroup, tree)

	// add consumers to waitgroup and launch them
	for i := 0; i < numConsumers; i++ {
		waitGroup.Add(1)
		consumer := io.NewStandardConsumer(tree, c.algorithmManager.GetRenderer(), frames)
		go consumer.Consume(workChannel, errorChannel, &waitGroup)
	}

	// wait for producers and consumers to finish
	waitGroup.Wait()

	// close error chan
	close(errorChannel)

	// find if there are errors in the error channel buffer
	var errs []error
	for err := range errorChannel {
		glog.Errorln(err)
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	gifPath := tools.DerivedFilePath(filePath, opts.Output, tools.OutputSuffix, ".gif")
	file, err := os.Create(gifPath)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := render.EncodeAnimation(file, frames.Frames()); err != nil {
		return err
	}
	tools.LogOutput("> animation with", frameCount, "frames written to", gifPath)
	return file.Close()
}

func readImage(filePath string) (image.Image, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

func writeImage(filePath string, img image.Image) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := render.EncodeImage(file, img, filepath.Ext(filePath)); err != nil {
		return err
	}
	return file.Close()
}

func writeArchive(filePath string, tree *color_tree.ColorTree, level int, leaves []quadtree.Leaf) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := archive.Encode(file, tree.Width(), tree.Height(), level, leaves); err != nil {
		return err
	}
	return file.Close()
}
