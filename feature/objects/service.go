package objects

import (
	"context"
	"io"

	"r2-client/core/journal"
	"r2-client/core/objectstore"

	"go.uber.org/zap"
)

// Service performs object operations and journals their outcome.
type Service struct {
	client   *objectstore.Client
	recorder journal.Recorder
	logger   *zap.Logger
}

// NewService creates a new objects service. A nil recorder disables the journal.
func NewService(client *objectstore.Client, recorder journal.Recorder, logger *zap.Logger) *Service {
	if recorder == nil {
		recorder = journal.Nop{}
	}
	return &Service{
		client:   client,
		recorder: recorder,
		logger:   logger,
	}
}

// Put uploads body to bucket/key.
func (s *Service) Put(ctx context.Context, body io.Reader, bucket, key, rayID string) (*objectstore.Result, error) {
	result, err := s.client.PutStream(ctx, body, bucket, key)
	s.record(ctx, journal.OperationPut, bucket, key, rayID, result)
	return result, err
}

// Delete removes bucket/key.
func (s *Service) Delete(ctx context.Context, bucket, key, rayID string) (*objectstore.Result, error) {
	result, err := s.client.DeleteObject(ctx, bucket, key)
	s.record(ctx, journal.OperationDelete, bucket, key, rayID, result)
	return result, err
}

// PublicURL returns the public URL of key.
func (s *Service) PublicURL(key string) string {
	return s.client.PublicURL(key)
}

// record journals a completed operation. Faults produce no result and are
// not journaled.
func (s *Service) record(ctx context.Context, operation, bucket, key, rayID string, result *objectstore.Result) {
	if result == nil {
		return
	}
	entry := journal.NewEntry(operation, bucket, key, result.Succeeded(), result.Codes(), rayID)
	if err := s.recorder.Record(ctx, entry); err != nil {
		s.logger.Warn("Failed to journal operation",
			zap.String("op", operation),
			zap.String("ray_id", rayID),
			zap.Error(err))
	}
}
