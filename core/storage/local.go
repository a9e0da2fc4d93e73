package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime"
	"net/http"
	"os"
	"path/filepath"
)

// localClient stores objects on the local filesystem, one directory per
// bucket under root. It is meant for development and tests and reports
// failures with the same codes an S3 endpoint would.
type localClient struct {
	root string
}

func newLocalClient(cfg Config) (*localClient, error) {
	root := filepath.Clean(cfg.Endpoint)
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	if cfg.Bucket != "" && filepath.IsLocal(cfg.Bucket) {
		if err := os.MkdirAll(filepath.Join(root, cfg.Bucket), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create bucket directory: %w", err)
		}
	}
	return &localClient{root: root}, nil
}

func (c *localClient) StatObject(ctx context.Context, bucketName, objectName string) (ObjectInfo, error) {
	path, err := c.objectPath(bucketName, objectName)
	if err != nil {
		return ObjectInfo{}, err
	}

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && info.IsDir()) {
		return ObjectInfo{}, notFound(http.StatusNotFound, CodeNotFound, err)
	}
	if err != nil {
		return ObjectInfo{}, err
	}

	return ObjectInfo{
		Key:          objectName,
		Size:         info.Size(),
		ContentType:  mime.TypeByExtension(filepath.Ext(objectName)),
		LastModified: info.ModTime(),
	}, nil
}

func (c *localClient) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, size int64, opts PutOptions) (ObjectInfo, error) {
	path, err := c.objectPath(bucketName, objectName)
	if err != nil {
		return ObjectInfo{}, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return ObjectInfo{}, fmt.Errorf("failed to create directory: %w", err)
	}

	// Write to a sibling temp file so readers never observe a partial object.
	tmp, err := os.CreateTemp(filepath.Dir(path), ".upload-*")
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	written, err := io.Copy(tmp, readerWithContext(ctx, reader))
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("failed to write file: %w", err)
	}
	if size >= 0 && written != size {
		return ObjectInfo{}, &ProviderError{
			StatusCode: http.StatusBadRequest,
			Code:       "IncompleteBody",
			Message:    fmt.Sprintf("expected %d bytes, received %d", size, written),
		}
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return ObjectInfo{}, fmt.Errorf("failed to store file: %w", err)
	}

	return ObjectInfo{
		Key:         objectName,
		Size:        written,
		ContentType: opts.ContentType,
	}, nil
}

func (c *localClient) RemoveObject(ctx context.Context, bucketName, objectName string) error {
	path, err := c.objectPath(bucketName, objectName)
	if err != nil {
		return err
	}
	// Deleting a missing key succeeds, as it does on S3.
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (c *localClient) Close() error {
	return nil
}

// objectPath resolves bucket/key below root, rejecting keys that escape it.
func (c *localClient) objectPath(bucketName, objectName string) (string, error) {
	if !filepath.IsLocal(bucketName) || !filepath.IsLocal(filepath.FromSlash(objectName)) {
		return "", &ProviderError{
			StatusCode: http.StatusBadRequest,
			Code:       "InvalidArgument",
			Message:    "invalid bucket or object name",
		}
	}

	bucketDir := filepath.Join(c.root, bucketName)
	if info, err := os.Stat(bucketDir); err != nil || !info.IsDir() {
		return "", notFound(http.StatusNotFound, CodeNoSuchBucket, err)
	}
	return filepath.Join(bucketDir, filepath.FromSlash(objectName)), nil
}

func notFound(status int, code string, cause error) *ProviderError {
	message := "The specified key does not exist."
	if code == CodeNoSuchBucket {
		message = "The specified bucket does not exist."
	}
	return &ProviderError{StatusCode: status, Code: code, Message: message, Cause: cause}
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func readerWithContext(ctx context.Context, r io.Reader) io.Reader {
	return &ctxReader{ctx: ctx, r: r}
}

func (r *ctxReader) Read(p []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	return r.r.Read(p)
}
