// Package storage persists uploaded images on the local filesystem. Stored
// files are served as static assets; the returned URL is what project records
// reference in their image field.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tahadev/portfolio/internal/core/domain"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// DiskImageStore writes images into a single directory and addresses them
// under a fixed public base path.
type DiskImageStore struct {
	dir     string
	baseURL string
}

// NewDiskImageStore creates the upload directory if needed.
func NewDiskImageStore(dir, baseURL string) (*DiskImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}
	return &DiskImageStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Save stores the image under a timestamped name and returns its public URL.
// Both the claimed extension and the sniffed content type must identify an
// accepted image format; the extension alone is caller-controlled.
func (s *DiskImageStore) Save(_ context.Context, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !imageExtensions[ext] {
		return "", domain.ErrUnsupportedImage
	}

	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", fmt.Errorf("read upload: %w", err)
	}
	head = head[:n]

	switch http.DetectContentType(head) {
	case "image/jpeg", "image/png":
	default:
		return "", domain.ErrUnsupportedImage
	}

	name := fmt.Sprintf("image-%d%s", time.Now().UnixNano(), ext)
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("create image file: %w", err)
	}
	if _, err := io.Copy(f, io.MultiReader(bytes.NewReader(head), r)); err != nil {
		f.Close()
		_ = os.Remove(path)
		return "", fmt.Errorf("write image file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close image file: %w", err)
	}

	return s.baseURL + "/" + name, nil
}
