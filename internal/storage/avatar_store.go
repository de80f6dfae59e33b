package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DiskAvatarStore writes profile pictures under a local uploads directory.
// Files are named by user id plus the upload's extension, so a new upload
// with the same extension overwrites the previous one.
type DiskAvatarStore struct {
	dir string
}

func NewDiskAvatarStore(dir string) (*DiskAvatarStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &DiskAvatarStore{dir: dir}, nil
}

func (s *DiskAvatarStore) Save(userID, filename string, data io.Reader) (string, error) {
	name := userID + filepath.Ext(filename)

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create avatar file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		return "", fmt.Errorf("failed to write avatar file: %w", err)
	}

	return "/uploads/" + name, nil
}
