// Package scan collects candidate tile images from a directory tree.
package scan

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Supported reports whether ext (".jpg", ".PNG", ...) names a format the
// mosaic pipeline can decode: BMP, JPEG or PNG.
func Supported(ext string) bool {
	switch strings.ToLower(ext) {
	case ".bmp", ".jpg", ".jpeg", ".png":
		return true
	default:
		return false
	}
}

// Images returns the supported image files in dir, sorted by path. When
// recursive is false only dir itself is listed. Hidden files and directories
// (names starting with '.') are ignored.
func Images(dir string, recursive bool) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if path != dir && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path != dir && !recursive {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Type().IsRegular() && Supported(filepath.Ext(path)) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
