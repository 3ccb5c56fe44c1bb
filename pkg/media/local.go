package media

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/shashiranjanraj/homegrown/config"
)

// localStore writes images to the local filesystem. Development only.
type localStore struct {
	root    string
	baseURL string
}

func newLocalStore() (*localStore, error) {
	root := config.MediaLocalRoot()
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("local: mkdir %s: %w", root, err)
	}
	return &localStore{
		root:    root,
		baseURL: strings.TrimRight(config.MediaLocalURL(), "/"),
	}, nil
}

func (l *localStore) Upload(_ context.Context, r io.Reader, contentType string) (Asset, error) {
	key := newKey(contentType)
	path := filepath.Join(l.root, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return Asset{}, fmt.Errorf("local: mkdir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return Asset{}, fmt.Errorf("local: create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return Asset{}, fmt.Errorf("local: write %s: %w", path, err)
	}

	return Asset{URL: l.baseURL + "/" + key, Key: key}, nil
}

func (l *localStore) Delete(_ context.Context, key string) error {
	path := filepath.Join(l.root, filepath.FromSlash(key))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("local: remove %s: %w", path, err)
	}
	return nil
}
