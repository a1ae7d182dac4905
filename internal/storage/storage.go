package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// unsafeChars are replaced with underscores in downloaded filenames. The
// set covers Windows-reserved characters plus spaces, so names stay usable
// on every filesystem and in shell pipelines.
var unsafeChars = []string{"\\", "/", "*", "?", ":", "\"", "<", ">", "|", " "}

// Store writes downloaded documents into a local directory.
type Store struct {
	dir string
}

// New creates a Store rooted at dir, creating the directory if it does not
// exist.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating downloads directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the downloads directory path.
func (s *Store) Dir() string {
	return s.dir
}

// SaveDocument writes data under a filename derived from the last path
// segment of sourceURL and returns the path of the written file, relative
// to the working directory the Store was created with.
func (s *Store) SaveDocument(sourceURL string, data []byte) (string, error) {
	name := SanitizeFilename(lastSegment(sourceURL))
	path := filepath.Join(s.dir, name)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing document: %w", err)
	}

	return path, nil
}

// SanitizeFilename replaces filesystem-unsafe characters with underscores.
func SanitizeFilename(name string) string {
	for _, c := range unsafeChars {
		name = strings.ReplaceAll(name, c, "_")
	}
	return name
}

// lastSegment returns the portion of a URL after the final slash.
func lastSegment(rawURL string) string {
	parts := strings.Split(rawURL, "/")
	return parts[len(parts)-1]
}
