// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package filestore

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

var ErrNotFound = errors.New("file not found")

// Allowed upload extensions: document, image, presentation,
// spreadsheet, and plain-text types.
var allowedExts = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".ppt":  true,
	".pptx": true,
	".xls":  true,
	".xlsx": true,
	".txt":  true,
}

// Store owns the upload directory for study material files.
type Store struct {
	dir string
}

// New ensures the upload directory exists and returns a Store over it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the upload directory path
func (s *Store) Dir() string {
	return s.dir
}

// Allowed reports whether the filename carries an allowed extension.
// Files with no extension are rejected.
func Allowed(name string) bool {
	return allowedExts[strings.ToLower(filepath.Ext(name))]
}

// Sanitize reduces a client-supplied filename to a safe basename.
// Directory components (both / and \ style) are stripped, spaces become
// underscores, and any character outside [A-Za-z0-9._-] is dropped.
// Leading dots are removed so the result can never be a hidden file or
// a traversal component. Returns "" when nothing usable remains.
func Sanitize(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z',
			r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}

	return strings.TrimLeft(b.String(), ".")
}

// Save persists src under a collision-free variant of the desired name
// and returns the stored filename and byte count. When the name is
// taken, a numeric suffix goes before the extension (notes.txt,
// notes_1.txt, notes_2.txt, ...). The exclusive create is the arbiter:
// two concurrent uploads of the same name cannot both win a candidate,
// the loser just moves on to the next suffix.
func (s *Store) Save(src io.Reader, name string) (string, int64, error) {
	clean := Sanitize(name)
	if clean == "" {
		return "", 0, fmt.Errorf("no usable filename in %q", name)
	}

	ext := filepath.Ext(clean)
	base := strings.TrimSuffix(clean, ext)

	stored := clean
	for n := 1; ; n++ {
		path := filepath.Join(s.dir, stored)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			written, copyErr := io.Copy(f, src)
			closeErr := f.Close()
			if copyErr == nil {
				copyErr = closeErr
			}
			if copyErr != nil {
				// don't leave a partial file behind
				os.Remove(path)
				return "", 0, fmt.Errorf("failed to write %s: %w", stored, copyErr)
			}
			slog.Info("file stored", "filename", stored, "bytes", written)
			return stored, written, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", 0, fmt.Errorf("failed to create %s: %w", stored, err)
		}

		// name taken, try the next suffix
		stored = fmt.Sprintf("%s_%d%s", base, n, ext)
	}
}

// Path resolves a stored filename to its on-disk path for serving.
// Stored names are always in sanitized form, so anything that isn't is
// unknown by construction; that check doubles as the traversal guard.
func (s *Store) Path(name string) (string, error) {
	if name == "" || name != Sanitize(name) {
		return "", ErrNotFound
	}

	path := filepath.Join(s.dir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", ErrNotFound
	}
	return path, nil
}
