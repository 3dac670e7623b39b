/*
 * This file is part of the Quadtree Image Compressor distribution (https://github.com/ecopia-map/quadtree_compressor).
 * Copyright (c) 2024 Ecopia Map
 *
 * This program is free software; you can redistribute it and/or modify it
 * under the terms of the GNU Lesser General Public License Version 3 as
 * published by the Free Software Foundation;
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
 * Lesser General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General Public License
 * along with this program. If not, see <http://www.gnu.org/licenses/>.
 *
 * This software also uses third party components. You can find information
 * on their credits and licensing in the file LICENSE-3RD-PARTIES.md that
 * you should have received togheter with the source code.
 */

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/golang/glog"

	"github.com/ecopia-map/quadtree_compressor/internal/compressor"
	"github.com/ecopia-map/quadtree_compressor/pkg"
	"github.com/ecopia-map/quadtree_compressor/pkg/algorithm_manager/std_algorithm_manager"
	"github.com/ecopia-map/quadtree_compressor/tools"
)

const VERSION = "1.0.0"

const logo = `
  ___                  _ _
 / _ \ _   _  __ _  __| | |_ _ __ ___  ___
| | | | | | |/ _  |/ _  | __| '__/ _ \/ _ \
| |_| | |_| | (_| | (_| | |_| | |  __/  __/
 \__\_\\__,_|\__,_|\__,_|\__|_|  \___|\___|
  A quadtree image compressor written in golang
  Copyright YYYY - Ecopia Map
`

// the preview window needs the main OS thread
func init() {
	runtime.LockOSThread()
}

func main() {
	flags, parseErr := tools.ParseFlagsForCommandCompress(os.Args[1:])

	setupGlog(len(flags.Verbose))
	defer glog.Flush()

	if parseErr != nil {
		exitWithError("Error parsing input parameters: " + parseErr.Error())
	}
	glog.V(1).Infoln("flags", tools.FmtJSONString(flags))

	// Prints the command line flag description
	if flags.Help {
		showHelp()
		return
	}

	if flags.Version {
		printVersion()
		return
	}

	// set logging and timestamp logging
	if flags.Silent {
		tools.DisableLogger()
	} else {
		printLogo()
	}
	if !flags.LogTimestamp {
		tools.DisableLoggerTimestamp()
	}

	// Put args inside a CompressorOptions struct
	opts := compressor.CompressorOptions{
		Input:            flags.File,
		Output:           flags.Output,
		Level:            flags.Level,
		Borders:          flags.Borders,
		Gif:              flags.Gif,
		Archive:          flags.Archive,
		Show:             flags.Show,
		MaxSize:          flags.MaxSize,
		Blur:             flags.Blur,
		Workers:          flags.Workers,
		FolderProcessing: flags.Folder,
		Recursive:        flags.Recursive,
	}

	// Validate CompressorOptions
	if msg, res := validateOptions(&opts); !res {
		exitWithError("Error parsing input parameters: " + msg)
	}

	algorithmManager := std_algorithm_manager.NewAlgorithmManager(&opts)
	var runner pkg.ICompressor
	if opts.Command == compressor.CommandDecode {
		runner = pkg.NewArchiveDecoder(algorithmManager)
	} else {
		runner = pkg.NewCompressor(tools.NewStandardFileFinder(), algorithmManager)
	}

	start := time.Now()
	if err := runner.RunCompressor(&opts); err != nil {
		glog.Fatal("Error while compressing: ", err)
	}
	tools.LogOutput("Compression completed in " + tools.FormatSeconds(time.Since(start)) + " seconds")
}

// glog reads its configuration from the standard flag set, messages always go to stderr
func setupGlog(verbosity int) {
	_ = flag.Set("logtostderr", "true")
	if verbosity > 0 {
		_ = flag.Set("v", strconv.Itoa(verbosity))
	}
	_ = flag.CommandLine.Parse([]string{})
}

// Validates the input options provided to the command line tool checking that the input exists, has a supported
// extension and that the level is in range. Sets the command to run.
func validateOptions(opts *compressor.CompressorOptions) (string, bool) {
	info, err := os.Stat(opts.Input)
	if opts.Input == "" || os.IsNotExist(err) {
		return "Input file/folder not found", false
	}
	if err != nil {
		return err.Error(), false
	}

	opts.Command = compressor.CommandCompress
	ext := filepath.Ext(opts.Input)
	switch {
	case opts.FolderProcessing:
		if !info.IsDir() {
			return "Input must be a folder when folder processing is enabled", false
		}
	case info.IsDir():
		return "Input is a folder, use --folder to process all of its images", false
	case compressor.IsArchiveExtension(ext):
		opts.Command = compressor.CommandDecode
		return "", true
	case !compressor.IsImageExtension(ext):
		return "Input extension " + strconv.Quote(ext) + " is not one of jpg, jpeg, png", false
	}

	if opts.Level < compressor.MinLevel || opts.Level > compressor.MaxLevel {
		return fmt.Sprintf("level must be an integer between %d and %d", compressor.MinLevel, compressor.MaxLevel), false
	}
	if opts.MaxSize < 0 {
		return "max-size cannot be negative", false
	}
	if opts.Blur < 0 {
		return "blur cannot be negative", false
	}

	return "", true
}

func exitWithError(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	glog.Errorln(msg)
	glog.Flush()
	os.Exit(1)
}

func printLogo() {
	fmt.Println(strings.ReplaceAll(logo, "YYYY", strconv.Itoa(time.Now().Year())))
}

func showHelp() {
	printLogo()
	fmt.Println("***")
	fmt.Println("Compresses jpg and png images by splitting them in a quadtree of flat colored regions")
	printVersion()
	fmt.Println("***")
	fmt.Println("")
	tools.WriteFlagsHelp(os.Stdout)
}

func printVersion() {
	fmt.Println("v." + VERSION)
}
