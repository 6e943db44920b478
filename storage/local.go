package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"
)

// LocalStore writes uploads to a static-servable directory. Filenames
// combine a nanosecond timestamp with a process-local counter so two
// uploads in the same process never collide, however close in time.
type LocalStore struct {
	Dir     string
	BaseURL string

	seq uint64
}

func NewLocalStore(dir, baseURL string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	return &LocalStore{Dir: dir, BaseURL: baseURL}, nil
}

func (s *LocalStore) Save(ctx context.Context, file *multipart.FileHeader) (string, error) {
	ext := filepath.Ext(file.Filename)
	name := fmt.Sprintf("%d-%d%s", time.Now().UnixNano(), atomic.AddUint64(&s.seq, 1), ext)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", err
	}

	ref := "/images/" + name
	if s.BaseURL != "" {
		ref = s.BaseURL + ref
	}
	return ref, nil
}
