// Package jobs defines background queue jobs.
package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/shashiranjanraj/homegrown/pkg/media"
	"github.com/shashiranjanraj/homegrown/pkg/queue"
)

// DeleteMediaJob removes assets from the media host after a product or
// subcategory stops referencing them. Runs on the background queue so a slow
// or flaky host never delays the originating request.
type DeleteMediaJob struct {
	Keys []string `json:"keys"`
}

// Handle deletes each asset. The first failure aborts so the queue's retry
// takes another pass; media.Delete tolerates already-deleted keys.
func (j *DeleteMediaJob) Handle() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, key := range j.Keys {
		if err := media.Delete(ctx, key); err != nil {
			return fmt.Errorf("delete media %s: %w", key, err)
		}
	}
	return nil
}

// Register makes the job type known to the queue for deserialization.
// Called once at boot.
func Register() {
	queue.Register("*jobs.DeleteMediaJob", func() queue.Job { return &DeleteMediaJob{} })
}
