package animfile

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/animake/anim"
)

const (
	BinaryExt = ".anim"
	TextExt   = ".txt"
)

// Location records where a catalog was read from or written to. Paths are
// kept as given (usually relative to the Store's Dir).
type Location struct {
	Binary string
	Text   string
}

// Store resolves catalog paths against a working directory instead of the
// process's current directory.
type Store struct {
	Dir string
}

// IsPointerPath reports whether path names a pointer (text) file.
func IsPointerPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), TextExt)
}

// BinaryPathFor returns the .anim path paired with path.
func BinaryPathFor(path string) string {
	if IsPointerPath(path) {
		return replaceExt(path, BinaryExt)
	}
	return path
}

// TextPathFor returns the .txt companion of a binary catalog path.
func TextPathFor(binaryPath string) string {
	return replaceExt(binaryPath, TextExt)
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// Abs joins path onto Dir unless it is already absolute.
func (s Store) Abs(path string) string {
	if path == "" || filepath.IsAbs(path) || s.Dir == "" {
		return path
	}
	return filepath.Join(s.Dir, path)
}

// Rel expresses path relative to Dir when that is possible without climbing
// out of it; otherwise path is returned unchanged.
func (s Store) Rel(path string) string {
	if s.Dir == "" || !filepath.IsAbs(path) {
		return path
	}
	dir, err := filepath.Abs(s.Dir)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(dir, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}

// Resolve maps path to the binary catalog it designates. Binary paths are
// returned unchanged; pointer paths are replaced by their first line, which
// must not name another pointer file.
func (s Store) Resolve(path string) (string, error) {
	if !IsPointerPath(path) {
		return path, nil
	}
	f, err := openRegular(s.Abs(path))
	if err != nil {
		return "", errors.Join(ErrPointerResolution, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	var first string
	if sc.Scan() {
		first = strings.TrimPrefix(sc.Text(), "\ufeff")
		first = strings.TrimSpace(strings.TrimSuffix(first, "\r"))
	}
	if err := sc.Err(); err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrPointerResolution, path, err)
	}
	if first == "" {
		return "", fmt.Errorf("%w: %s has no catalog path: %w", ErrPointerResolution, path, ErrStreamOpen)
	}
	if IsPointerPath(first) {
		return "", fmt.Errorf("%w: %s points at pointer file %s: %w", ErrPointerResolution, path, first, ErrStreamOpen)
	}
	return first, nil
}

// Open reads a catalog either directly from a binary path or through a
// pointer file.
func (s Store) Open(path string) (*anim.Catalog, Location, error) {
	binPath, err := s.Resolve(path)
	if err != nil {
		return nil, Location{}, err
	}
	cat, err := DecodeFile(s.Abs(binPath))
	if err != nil {
		if IsPointerPath(path) && errors.Is(err, ErrStreamOpen) {
			return nil, Location{}, fmt.Errorf("%w: %s -> %w", ErrPointerResolution, path, err)
		}
		return nil, Location{}, err
	}
	loc := Location{Binary: binPath, Text: cat.TextPath}
	if IsPointerPath(path) {
		loc.Text = path
	}
	return cat, loc, nil
}

// Save writes the binary catalog and its pointer file. A pointer path is
// first mapped to its .anim sibling. cat is not modified; the text path
// stored in the written payload is the companion's path.
func (s Store) Save(path string, cat *anim.Catalog) (Location, error) {
	binPath := BinaryPathFor(path)
	loc := Location{Binary: binPath, Text: TextPathFor(binPath)}

	out := cat.Clone()
	out.TextPath = loc.Text
	if err := EncodeFile(s.Abs(loc.Binary), out); err != nil {
		return Location{}, err
	}

	var buf bytes.Buffer
	if err := WriteDump(&buf, loc.Binary, out); err != nil {
		return Location{}, err
	}
	if err := os.WriteFile(s.Abs(loc.Text), buf.Bytes(), 0o644); err != nil {
		return Location{}, fmt.Errorf("%w: %s: %w", ErrStreamOpen, loc.Text, err)
	}
	return loc, nil
}
