package media

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// URLPrefix is the static path uploads are served from.
const URLPrefix = "/uploads"

var extPattern = regexp.MustCompile(`^\.[a-zA-Z0-9]+$`)

// Store writes uploaded files under a process-wide root. Files are stored
// under generated names so client filenames can neither collide nor traverse
// out of the root. The store knows nothing about the records that reference
// the files, and never deletes anything: a replaced or orphaned file stays
// on disk.
type Store struct {
	root string
}

// NewStore creates the uploads root if needed.
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create uploads dir: %w", err)
	}
	return &Store{root: root}, nil
}

// Dir returns the uploads root for static serving.
func (s *Store) Dir() string {
	return s.root
}

// Accept streams the upload to disk under a generated collision-resistant
// name and returns the root-relative reference, e.g. /uploads/<name>. Only
// the sanitized extension of the client filename survives.
func (s *Store) Accept(file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.New().String() + safeExt(file.Filename)
	dst, err := os.Create(filepath.Join(s.root, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return URLPrefix + "/" + name, nil
}

// safeExt keeps the client extension only when it is a plain alphanumeric
// suffix; anything else is dropped.
func safeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if extPattern.MatchString(ext) {
		return ext
	}
	return ""
}
