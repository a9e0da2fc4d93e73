package storage

import (
	"errors"
	"net/http"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMinio(t *testing.T) {
	t.Run("HeadMissingKey", func(t *testing.T) {
		err := fromMinio(minio.ErrorResponse{StatusCode: 404, Code: "NoSuchKey"}, true)

		var perr *ProviderError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, CodeNotFound, perr.Code)
		assert.Equal(t, http.StatusText(http.StatusNotFound), perr.Message)
	})

	t.Run("HeadMissingBucket", func(t *testing.T) {
		err := fromMinio(minio.ErrorResponse{StatusCode: 404, Code: "NoSuchBucket", Message: "The specified bucket does not exist"}, true)

		var perr *ProviderError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, CodeNoSuchBucket, perr.Code)
		assert.Equal(t, "The specified bucket does not exist", perr.Message)
	})

	t.Run("KeepsCodeOutsideHead", func(t *testing.T) {
		err := fromMinio(minio.ErrorResponse{StatusCode: 404, Code: "NoSuchKey", Message: "missing"}, false)

		var perr *ProviderError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, "NoSuchKey", perr.Code)
	})

	t.Run("PassesThroughOtherErrors", func(t *testing.T) {
		dial := errors.New("connection refused")
		assert.Same(t, dial, fromMinio(dial, false))
	})
}
