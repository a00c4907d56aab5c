// Package archive unpacks gzip-compressed tar archives into a directory.
package archive

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ExtractError wraps errors with the archive entry that caused them
type ExtractError struct {
	Entry string
	Err   error
}

func (e *ExtractError) Error() string {
	if e.Entry != "" {
		return fmt.Sprintf("extract %s: %v", e.Entry, e.Err)
	}
	return fmt.Sprintf("extract: %v", e.Err)
}

func (e *ExtractError) Unwrap() error {
	return e.Err
}

// ExtractTarGz decompresses and unpacks a tar.gz stream into destPath,
// creating the directory if needed. The archive's internal layout is kept
// as-is; entries that would escape destPath are rejected.
func ExtractTarGz(r io.Reader, destPath string) error {
	// Config values may carry a trailing slash; the escape check below
	// compares against joined (cleaned) paths, so clean the root too.
	destPath = filepath.Clean(destPath)

	if err := os.MkdirAll(destPath, 0755); err != nil {
		return &ExtractError{Err: err}
	}

	gzr, err := gzip.NewReader(r)
	if err != nil {
		return &ExtractError{Err: err}
	}
	defer gzr.Close()

	tr := tar.NewReader(gzr)

	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return &ExtractError{Err: err}
		}

		target, err := entryPath(destPath, header.Name)
		if err != nil {
			return err
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, os.FileMode(header.Mode)); err != nil {
				return &ExtractError{Entry: header.Name, Err: err}
			}
		case tar.TypeReg:
			if err := writeEntry(target, os.FileMode(header.Mode), tr); err != nil {
				return &ExtractError{Entry: header.Name, Err: err}
			}
		case tar.TypeSymlink:
			if err := checkLinkname(destPath, target, header); err != nil {
				return err
			}
			if err := makeLink(target, header.Linkname, os.Symlink); err != nil {
				return &ExtractError{Entry: header.Name, Err: err}
			}
		case tar.TypeLink:
			source, err := entryPath(destPath, header.Linkname)
			if err != nil {
				return err
			}
			if err := makeLink(target, source, os.Link); err != nil {
				return &ExtractError{Entry: header.Name, Err: err}
			}
		}
	}

	return nil
}

// entryPath joins an archive entry name onto destPath, refusing names that
// resolve outside it.
func entryPath(destPath, name string) (string, error) {
	target := filepath.Join(destPath, filepath.FromSlash(name))
	if target != destPath && !strings.HasPrefix(target, destPath+string(os.PathSeparator)) {
		return "", &ExtractError{Entry: name, Err: fmt.Errorf("path escapes destination")}
	}
	return target, nil
}

// checkLinkname rejects symlink entries whose target would resolve outside
// destPath: absolute targets, or relative ones climbing past the root.
func checkLinkname(destPath, target string, header *tar.Header) error {
	if filepath.IsAbs(header.Linkname) {
		return &ExtractError{Entry: header.Name, Err: fmt.Errorf("link target escapes destination")}
	}
	resolved := filepath.Join(filepath.Dir(target), filepath.FromSlash(header.Linkname))
	if resolved != destPath && !strings.HasPrefix(resolved, destPath+string(os.PathSeparator)) {
		return &ExtractError{Entry: header.Name, Err: fmt.Errorf("link target escapes destination")}
	}
	return nil
}

func makeLink(target, source string, link func(string, string) error) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}
	if err := os.RemoveAll(target); err != nil {
		return err
	}
	return link(source, target)
}

func writeEntry(target string, mode os.FileMode, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return err
	}

	f, err := os.OpenFile(target, os.O_CREATE|os.O_RDWR|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
