package batch

import (
	"path/filepath"
	"strings"
)

// BaseName returns the file name of path without its final extension. Leading
// dots do not start an extension, so ".pdf" stays ".pdf" while "a.b.pdf"
// becomes "a.b".
func BaseName(path string) string {
	name := filepath.Base(path)
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 {
		return name
	}
	if strings.Trim(name[:dot], ".") == "" {
		return name
	}
	return name[:dot]
}

// OutputPath derives the output file for input: <outDir>/<base><suffix><ext>.
func OutputPath(input, outDir, suffix, ext string) string {
	return filepath.Join(outDir, BaseName(input)+suffix+ext)
}
