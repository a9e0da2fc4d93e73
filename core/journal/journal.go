package journal

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	OperationPut    = "put"
	OperationDelete = "delete"
)

// Entry is one recorded put or delete outcome.
type Entry struct {
	ID        string    `gorm:"column:id;primaryKey;size:36" json:"id"`
	Operation string    `gorm:"column:operation;size:16;not null" json:"operation"`
	Bucket    string    `gorm:"column:bucket;size:255;not null" json:"bucket"`
	Key       string    `gorm:"column:object_key;size:1024;not null" json:"key"`
	Succeeded bool      `gorm:"column:succeeded" json:"succeeded"`
	Codes     string    `gorm:"column:codes;size:255" json:"codes"`
	RayID     string    `gorm:"column:ray_id;size:64;index" json:"rayId"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

// TableName overrides the default table name.
func (Entry) TableName() string {
	return "object_operations"
}

// NewEntry builds an entry for an operation outcome.
func NewEntry(operation, bucket, key string, succeeded bool, codes []string, rayID string) Entry {
	return Entry{
		Operation: operation,
		Bucket:    bucket,
		Key:       key,
		Succeeded: succeeded,
		Codes:     strings.Join(codes, ","),
		RayID:     rayID,
	}
}

// Recorder persists operation outcomes.
type Recorder interface {
	Record(ctx context.Context, entry Entry) error
}

// GormRecorder stores entries through GORM.
type GormRecorder struct {
	db *gorm.DB
}

// NewGormRecorder migrates the journal table and returns a recorder over db.
func NewGormRecorder(db *gorm.DB) (*GormRecorder, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate journal: %w", err)
	}
	return &GormRecorder{db: db}, nil
}

// Record inserts entry, assigning an ID and timestamp when missing.
func (r *GormRecorder) Record(ctx context.Context, entry Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to record %s %s/%s: %w", entry.Operation, entry.Bucket, entry.Key, err)
	}
	return nil
}

// Nop discards every entry.
type Nop struct{}

// Record implements Recorder.
func (Nop) Record(context.Context, Entry) error {
	return nil
}
