// Package compress writes brotli and gzip variants of static files so they
// can be served pre-compressed.
package compress

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
)

// Extensions lists the file types worth compressing.
var Extensions = []string{".wasm", ".geojson", ".json", ".js", ".css", ".html", ".yaml", ".svg"}

// Compressible reports whether path has one of Extensions.
func Compressible(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// File writes path+".br" and path+".gz" next to path.
func File(path string) error {
	if err := write(path, ".br", func(w io.Writer) io.WriteCloser {
		return brotli.NewWriterLevel(w, brotli.BestCompression)
	}); err != nil {
		return err
	}
	return write(path, ".gz", func(w io.Writer) io.WriteCloser {
		gz, _ := gzip.NewWriterLevel(w, gzip.BestCompression)
		return gz
	})
}

func write(path, ext string, enc func(io.Writer) io.WriteCloser) error {
	r, err := os.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()
	w, err := os.Create(path + ext)
	if err != nil {
		return err
	}
	cw := enc(w)
	if _, err := io.Copy(cw, r); err != nil {
		w.Close()
		return fmt.Errorf("compress: %s%s: %w", path, ext, err)
	}
	if err := cw.Close(); err != nil {
		w.Close()
		return fmt.Errorf("compress: %s%s: %w", path, ext, err)
	}
	return w.Close()
}

// Dir compresses every compressible file under root and returns how many
// files it compressed.
func Dir(root string) (int, error) {
	n := 0
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !Compressible(path) {
			return nil
		}
		n++
		return File(path)
	})
	return n, err
}
