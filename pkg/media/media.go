// Package media offloads product images to an external host.
//
// An uploaded image becomes an Asset: a public URL for serving plus an
// opaque Key used later to delete the object. The production driver is any
// S3-compatible object store; the local driver writes to disk and exists for
// development and tests.
//
//	asset, err := media.Upload(ctx, file, "image/jpeg")
//	...
//	media.Delete(ctx, asset.Key)
package media

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"sync"

	"github.com/shashiranjanraj/homegrown/config"
)

// Asset is one stored image.
type Asset struct {
	URL string `bson:"url" json:"url"`
	Key string `bson:"publicId" json:"publicId"` // deletion handle
}

// Store is a media host driver.
type Store interface {
	Upload(ctx context.Context, r io.Reader, contentType string) (Asset, error)
	Delete(ctx context.Context, key string) error
}

var (
	mu           sync.RWMutex
	defaultStore Store
)

// Connect boots the configured media driver. Call once at startup.
func Connect() error {
	var (
		s   Store
		err error
	)

	switch config.MediaDriver() {
	case "s3":
		s, err = newS3Store()
	default:
		s, err = newLocalStore()
	}
	if err != nil {
		return fmt.Errorf("media: %w", err)
	}

	mu.Lock()
	defaultStore = s
	mu.Unlock()
	return nil
}

// SetStore swaps the active driver (used by tests).
func SetStore(s Store) {
	mu.Lock()
	defaultStore = s
	mu.Unlock()
}

func active() Store {
	mu.RLock()
	defer mu.RUnlock()
	if defaultStore == nil {
		panic("media: Connect was not called")
	}
	return defaultStore
}

// Upload stores the image on the default driver.
func Upload(ctx context.Context, r io.Reader, contentType string) (Asset, error) {
	return active().Upload(ctx, r, contentType)
}

// Delete removes the object identified by key from the default driver.
func Delete(ctx context.Context, key string) error {
	return active().Delete(ctx, key)
}

// newKey generates a random object key under the products/ prefix, with an
// extension derived from the MIME type.
func newKey(contentType string) string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)

	ext := ""
	switch contentType {
	case "image/jpeg":
		ext = ".jpg"
	case "image/png":
		ext = ".png"
	case "image/webp":
		ext = ".webp"
	case "image/gif":
		ext = ".gif"
	}
	return "products/" + hex.EncodeToString(b) + ext
}
