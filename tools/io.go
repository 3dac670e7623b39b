package tools

import (
	"os"
	"path/filepath"
	"strings"
)

// Suffix appended to the name of every file derived from a source image
const OutputSuffix = "_quadtree"

func CreateDirectoryIfDoesNotExist(directory string) error {
	if _, err := os.Stat(directory); os.IsNotExist(err) {
		err := os.MkdirAll(directory, 0777)
		if err != nil {
			return err
		}
	}
	return nil
}

func GetFilenameWithoutExtension(filePath string) string {
	nameWext := filepath.Base(filePath)
	extension := filepath.Ext(nameWext)
	return nameWext[0 : len(nameWext)-len(extension)]
}

// Path of the file derived from source by adding suffix and replacing the extension. The file is placed in
// outputFolder, or beside the source when outputFolder is empty.
func DerivedFilePath(source string, outputFolder string, suffix string, extension string) string {
	folder := outputFolder
	if folder == "" {
		folder = filepath.Dir(source)
	}
	if extension != "" && !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}
	return filepath.Join(folder, GetFilenameWithoutExtension(source)+suffix+extension)
}

// Reports whether path looks like a file written by a previous run
func IsDerivedOutput(path string) bool {
	return strings.HasSuffix(GetFilenameWithoutExtension(path), OutputSuffix)
}
