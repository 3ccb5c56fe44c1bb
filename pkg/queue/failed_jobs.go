package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// failedJobRecord is the document written to the failed_jobs collection.
type failedJobRecord struct {
	JobType  string    `bson:"jobType"`
	Payload  string    `bson:"payload"`
	Error    string    `bson:"error"`
	Attempts int       `bson:"attempts"`
	FailedAt time.Time `bson:"failedAt"`
}

// failedJobDB is the optional Mongo backend for persisting failed jobs.
// Set via UseDB(); nil means in-memory only.
var failedJobDB *mongo.Database

// UseDB configures the queue to persist failed jobs to MongoDB.
// Call once at boot (e.g. after database.Connect()):
//
//	queue.UseDB(database.DB())
func UseDB(db *mongo.Database) {
	failedJobDB = db
}

// persistFailed records a job that exhausted its retries, in memory always
// and in the failed_jobs collection when a database is configured.
func (m *Manager) persistFailed(job Job, typeName string, lastErr error, attempts int) {
	m.mu.Lock()
	m.failed = append(m.failed, FailedJob{
		Job: job, Err: lastErr, FailedAt: time.Now(), Attempts: attempts,
	})
	m.mu.Unlock()

	if failedJobDB == nil {
		return
	}

	payload, err := json.Marshal(job)
	if err != nil {
		payload = []byte(fmt.Sprintf(`{"error": "could not marshal: %v"}`, err))
	}

	record := failedJobRecord{
		JobType:  typeName,
		Payload:  string(payload),
		Error:    lastErr.Error(),
		Attempts: attempts,
		FailedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := failedJobDB.Collection("failed_jobs").InsertOne(ctx, record); err != nil {
		// Non-fatal; the in-memory slice still has it.
		fmt.Printf("queue: failed to persist failed job %s: %v\n", typeName, err)
	}
}
