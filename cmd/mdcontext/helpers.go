package main

import (
	"path/filepath"
	"strings"
)

// folderBaseName derives a server name from a folder path.
func folderBaseName(folder string) string {
	base := filepath.Base(filepath.Clean(folder))
	if base == "." || base == string(filepath.Separator) {
		return "markdown-docs"
	}
	return strings.ReplaceAll(base, " ", "-")
}
