package infra

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// MediaStore writes uploaded files under a single media root. Stored names are
// uuid-based so client filenames never touch the filesystem; the original
// extension is kept for content-type sniffing by static file servers.
type MediaStore struct {
	root    string
	baseURL string
}

func NewMediaStore(root, baseURL string) (*MediaStore, error) {
	if err := os.MkdirAll(filepath.Join(root, "products"), 0o755); err != nil {
		return nil, fmt.Errorf("media: create root: %w", err)
	}
	return &MediaStore{root: root, baseURL: baseURL}, nil
}

// Root is the directory served under /media.
func (s *MediaStore) Root() string { return s.root }

func (s *MediaStore) Save(filename string, r io.Reader) (string, error) {
	rel := filepath.Join("products", uuid.NewString()+filepath.Ext(filename))
	f, err := os.Create(filepath.Join(s.root, rel))
	if err != nil {
		return "", fmt.Errorf("media: create file: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("media: write file: %w", err)
	}
	return filepath.ToSlash(rel), nil
}

func (s *MediaStore) URL(path string) string {
	return s.baseURL + "/media/" + path
}
