package objectstore

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"r2-client/core/storage"
	"r2-client/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestObjectExists(t *testing.T) {
	tests := []struct {
		name    string
		statErr error
		want    bool
		wantErr bool
	}{
		{"Present", nil, true, false},
		{"NotFound", &storage.ProviderError{StatusCode: http.StatusNotFound, Code: "NotFound"}, false, false},
		{"NoSuchBucket", &storage.ProviderError{StatusCode: http.StatusNotFound, Code: "NoSuchBucket"}, false, false},
		{"NoSuchKeyIsNotInAllowlist", &storage.ProviderError{StatusCode: http.StatusNotFound, Code: "NoSuchKey"}, false, true},
		{"AccessDenied", &storage.ProviderError{StatusCode: http.StatusForbidden, Code: "AccessDenied"}, false, true},
		{"SlowDown", &storage.ProviderError{StatusCode: http.StatusServiceUnavailable, Code: "SlowDown"}, false, true},
		{"Network", errors.New("dial tcp: i/o timeout"), false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockClient := new(mocks.Client)
			mockClient.On("StatObject", mock.Anything, "test-bucket", "key").Return(storage.ObjectInfo{}, tt.statErr)

			exists, err := ObjectExists(context.Background(), mockClient, "test-bucket", "key")
			assert.Equal(t, tt.want, exists)
			if tt.wantErr {
				assert.Same(t, tt.statErr, err)
			} else {
				assert.NoError(t, err)
			}
			mockClient.AssertExpectations(t)
		})
	}
}

func TestObjectExists_InvalidArguments(t *testing.T) {
	mockClient := new(mocks.Client)

	_, err := ObjectExists(context.Background(), mockClient, "", "key")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ObjectExists(context.Background(), mockClient, "bucket", "")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	mockClient.AssertNotCalled(t, "StatObject", mock.Anything, mock.Anything, mock.Anything)
}
