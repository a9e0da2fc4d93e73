package objectstore

import (
	"context"
	"errors"

	"r2-client/core/storage"
)

// ObjectExists reports whether key exists in bucket using a metadata lookup.
// A missing bucket or a missing object yields false; every other failure is
// returned to the caller, meaning existence is unknown.
func ObjectExists(ctx context.Context, client storage.Client, bucket, key string) (bool, error) {
	if err := validateAddress(bucket, key); err != nil {
		return false, err
	}

	if _, err := client.StatObject(ctx, bucket, key); err != nil {
		var perr *storage.ProviderError
		if errors.As(err, &perr) {
			switch perr.Code {
			case storage.CodeNoSuchBucket, storage.CodeNotFound:
				return false, nil
			}
		}
		return false, err
	}

	return true, nil
}
