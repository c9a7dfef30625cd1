package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/campusmatch/campusmatch-backend/internal/config"
	"github.com/google/uuid"
)

// allowed photo content types, matching what the client may upload
var extByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// LocalStore writes photo blobs to a directory on disk and hands back the
// public URL they are served under.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(cfg *config.StorageConfig) (*LocalStore, error) {
	if err := os.MkdirAll(cfg.Path, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &LocalStore{
		dir:     cfg.Path,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
	}, nil
}

// Dir returns the directory blobs are stored in, for static file serving.
func (s *LocalStore) Dir() string { return s.dir }

// Save streams the blob to disk under a generated name. The owner prefix
// is "guest" for unauthenticated uploads during registration.
func (s *LocalStore) Save(owner, contentType string, r io.Reader) (string, error) {
	ext, ok := extByContentType[contentType]
	if !ok {
		return "", fmt.Errorf("unsupported content type %q", contentType)
	}
	if owner == "" {
		owner = "guest"
	}

	name := fmt.Sprintf("%s_%s%s", owner, uuid.NewString(), ext)

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.baseURL + "/" + name, nil
}
