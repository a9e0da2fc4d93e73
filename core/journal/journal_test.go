package journal

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func TestNewEntry(t *testing.T) {
	entry := NewEntry(OperationDelete, "assets", "a.png", false, []string{"NotFound"}, "ray-1")

	assert.Equal(t, OperationDelete, entry.Operation)
	assert.Equal(t, "assets", entry.Bucket)
	assert.Equal(t, "a.png", entry.Key)
	assert.False(t, entry.Succeeded)
	assert.Equal(t, "NotFound", entry.Codes)
	assert.Equal(t, "ray-1", entry.RayID)
	assert.Empty(t, entry.ID)
}

func TestGormRecorder_Record(t *testing.T) {
	db, mock := setupMockDB(t)
	recorder := &GormRecorder{db: db}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `object_operations`")).
		WithArgs(sqlmock.AnyArg(), "put", "assets", "a.png", true, "", "ray-1", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := recorder.Record(context.Background(), NewEntry(OperationPut, "assets", "a.png", true, nil, "ray-1"))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRecorder_RecordError(t *testing.T) {
	db, mock := setupMockDB(t)
	recorder := &GormRecorder{db: db}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `object_operations`")).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := recorder.Record(context.Background(), NewEntry(OperationDelete, "assets", "a.png", true, nil, ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "delete assets/a.png")
	assert.Contains(t, err.Error(), "disk full")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormRecorder_SQLite(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "journal.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	recorder, err := NewGormRecorder(db)
	require.NoError(t, err)

	createdAt := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	entry := NewEntry(OperationPut, "assets", "dir/a.png", false, []string{"Forbidden", "InternalServerError"}, "ray-2")
	entry.CreatedAt = createdAt
	require.NoError(t, recorder.Record(context.Background(), entry))
	require.NoError(t, recorder.Record(context.Background(), NewEntry(OperationDelete, "assets", "dir/a.png", true, nil, "")))

	var entries []Entry
	require.NoError(t, db.Order("created_at").Find(&entries).Error)
	require.Len(t, entries, 2)

	assert.Len(t, entries[0].ID, 36)
	assert.Equal(t, "Forbidden,InternalServerError", entries[0].Codes)
	assert.True(t, createdAt.Equal(entries[0].CreatedAt))
	assert.True(t, entries[1].Succeeded)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
}

func TestNop(t *testing.T) {
	var recorder Recorder = Nop{}
	assert.NoError(t, recorder.Record(context.Background(), Entry{}))
}
