// Package filestore persists uploaded OD evidence on local disk.
package filestore

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var ErrUnsupportedType = errors.New("unsupported file type")

// Store writes uploads under a base directory with generated names.
type Store struct {
	dir     string
	allowed map[string]bool
}

// NewStore creates the base directory if needed. allowedExts are extensions
// without the dot, e.g. {"pdf", "jpg", "jpeg", "png"}.
func NewStore(dir string, allowedExts []string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	allowed := make(map[string]bool, len(allowedExts))
	for _, ext := range allowedExts {
		allowed[strings.ToLower(ext)] = true
	}
	return &Store{dir: dir, allowed: allowed}, nil
}

// Ext returns the lowercased extension of filename without the dot.
func Ext(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}

// Allowed reports whether the extension passes the upload whitelist.
func (s *Store) Allowed(ext string) bool {
	return s.allowed[strings.ToLower(ext)]
}

// Save writes content to `od_<studentID>_<timestamp>.<ext>` under the base
// directory and returns the stored path. The type check runs before any write.
func (s *Store) Save(studentID, originalName string, content io.Reader) (string, error) {
	ext := Ext(originalName)
	if !s.Allowed(ext) {
		return "", ErrUnsupportedType
	}

	name := fmt.Sprintf("od_%s_%s.%s", studentID, time.Now().Format("20060102_150405"), ext)
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write file: %w", err)
	}
	return path, nil
}
