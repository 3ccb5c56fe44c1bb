package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/homegrown/app/jobs"
	"github.com/shashiranjanraj/homegrown/app/services"
	"github.com/shashiranjanraj/homegrown/pkg/logger"
	"github.com/shashiranjanraj/homegrown/pkg/media"
	"github.com/shashiranjanraj/homegrown/pkg/queue"
)

const (
	maxImageBytes = 5 << 20  // 5 MB per file
	maxFormMemory = 32 << 20 // multipart parse buffer
)

// uploadImages reads every file under the given multipart field, enforces
// the per-file size cap and image/* content type, and uploads each to the
// media host. If a later upload fails, the earlier ones are queued for
// deletion so nothing leaks.
func uploadImages(r *http.Request, field string) ([]media.Asset, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}
	files := r.MultipartForm.File[field]

	assets := make([]media.Asset, 0, len(files))
	for _, fh := range files {
		if fh.Size > maxImageBytes {
			cleanupUploads(assets)
			return nil, fmt.Errorf("%w: %s exceeds the 5 MB limit", services.ErrInvalid, fh.Filename)
		}

		contentType := fh.Header.Get("Content-Type")
		if !strings.HasPrefix(contentType, "image/") {
			cleanupUploads(assets)
			return nil, fmt.Errorf("%w: %s is not an image", services.ErrInvalid, fh.Filename)
		}

		f, err := fh.Open()
		if err != nil {
			cleanupUploads(assets)
			return nil, fmt.Errorf("open upload %s: %w", fh.Filename, err)
		}

		asset, err := media.Upload(r.Context(), f, contentType)
		f.Close()
		if err != nil {
			cleanupUploads(assets)
			return nil, fmt.Errorf("upload %s: %w", fh.Filename, err)
		}
		assets = append(assets, asset)
	}
	return assets, nil
}

func cleanupUploads(assets []media.Asset) {
	if len(assets) == 0 {
		return
	}
	keys := make([]string, 0, len(assets))
	for _, a := range assets {
		keys = append(keys, a.Key)
	}
	if err := queue.Dispatch(&jobs.DeleteMediaJob{Keys: keys}); err != nil {
		logger.Error("uploads: cleanup dispatch failed", "error", err)
	}
}
