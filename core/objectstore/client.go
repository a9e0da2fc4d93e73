package objectstore

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"r2-client/core/storage"

	"go.uber.org/zap"
)

// Options carries the settings the Client needs beyond the transport.
type Options struct {
	// Bucket is the optional default bucket.
	Bucket string
	// PublicEndpoint is the base URL objects are publicly served from.
	PublicEndpoint string
}

// Outcome is delivered by the asynchronous operations.
type Outcome struct {
	Result *Result
	Err    error
}

// Client uploads and deletes objects and reports every store-side failure as
// a failed Result. The returned error is reserved for faults: invalid
// arguments, use after Close and, for deletes, an existence check that could
// not complete.
//
// A Client is safe for concurrent use.
type Client struct {
	store  storage.Client
	opts   Options
	logger *zap.Logger
	closed atomic.Bool
}

// New validates cfg, creates the transport and returns a Client owning it.
func New(cfg storage.Config, logger *zap.Logger) (*Client, error) {
	store, err := storage.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return NewWithClient(store, Options{Bucket: cfg.Bucket, PublicEndpoint: cfg.PublicEndpoint}, logger), nil
}

// NewWithClient returns a Client over an existing transport. The Client takes
// ownership of store and closes it on Close.
func NewWithClient(store storage.Client, opts Options, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{store: store, opts: opts, logger: logger}
}

// DefaultBucket returns the configured bucket, possibly empty.
func (c *Client) DefaultBucket() string {
	return c.opts.Bucket
}

// PublicURL returns the public URL of key.
func (c *Client) PublicURL(key string) string {
	return strings.TrimSuffix(c.opts.PublicEndpoint, "/") + "/" + strings.TrimPrefix(key, "/")
}

// PutObject uploads src to bucket/key, creating or replacing the object.
func (c *Client) PutObject(ctx context.Context, src Source, bucket, key string) (*Result, error) {
	if err := c.checkPut(src, bucket, key); err != nil {
		return nil, err
	}
	return c.putObject(ctx, src, bucket, key), nil
}

// PutFile uploads the local file at path.
func (c *Client) PutFile(ctx context.Context, path, bucket, key string) (*Result, error) {
	return c.PutObject(ctx, File(path), bucket, key)
}

// PutStream uploads the content of r.
func (c *Client) PutStream(ctx context.Context, r io.Reader, bucket, key string) (*Result, error) {
	return c.PutObject(ctx, Stream(r), bucket, key)
}

// PutObjectAsync validates its arguments immediately, then uploads in the
// background. The channel receives exactly one Outcome and is closed.
func (c *Client) PutObjectAsync(ctx context.Context, src Source, bucket, key string) (<-chan Outcome, error) {
	if err := c.checkPut(src, bucket, key); err != nil {
		return nil, err
	}
	return async(func() (*Result, error) {
		return c.putObject(ctx, src, bucket, key), nil
	}), nil
}

// DeleteObject removes bucket/key. A missing object yields a failed Result
// with the NotFound code and no delete is sent. Existence is checked and acted
// on non-atomically; another writer may remove the object in between.
func (c *Client) DeleteObject(ctx context.Context, bucket, key string) (*Result, error) {
	if err := c.checkDelete(bucket, key); err != nil {
		return nil, err
	}
	return c.deleteObject(ctx, bucket, key)
}

// DeleteObjectAsync validates its arguments immediately, then deletes in the
// background. The channel receives exactly one Outcome and is closed.
func (c *Client) DeleteObjectAsync(ctx context.Context, bucket, key string) (<-chan Outcome, error) {
	if err := c.checkDelete(bucket, key); err != nil {
		return nil, err
	}
	return async(func() (*Result, error) {
		return c.deleteObject(ctx, bucket, key)
	}), nil
}

// Close releases the transport. Only the first call closes it; later calls,
// and any operation after Close, return ErrClosed.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}
	return c.store.Close()
}

func (c *Client) checkPut(src Source, bucket, key string) error {
	if c.closed.Load() {
		return ErrClosed
	}
	if err := validateSource(src); err != nil {
		return err
	}
	return validateAddress(bucket, key)
}

func (c *Client) checkDelete(bucket, key string) error {
	if c.closed.Load() {
		return ErrClosed
	}
	return validateAddress(bucket, key)
}

func (c *Client) putObject(ctx context.Context, src Source, bucket, key string) *Result {
	log := c.logger.With(zap.String("op", "put"), zap.String("bucket", bucket), zap.String("key", key))

	body, size, err := src.Open()
	if err != nil {
		return failure(log, err)
	}
	defer body.Close()

	reader, contentType, err := sniff(body)
	if err != nil {
		return failure(log, err)
	}

	info, err := c.store.PutObject(ctx, bucket, key, reader, size, storage.PutOptions{
		ContentType:           contentType,
		DisablePayloadSigning: true,
	})
	if err != nil {
		return failure(log, err)
	}

	log.Debug("Object stored",
		zap.String("content_type", contentType),
		zap.Int64("size", size),
		zap.String("etag", info.ETag))
	return Success()
}

func (c *Client) deleteObject(ctx context.Context, bucket, key string) (*Result, error) {
	log := c.logger.With(zap.String("op", "delete"), zap.String("bucket", bucket), zap.String("key", key))

	exists, err := ObjectExists(ctx, c.store, bucket, key)
	if err != nil {
		log.Error("Existence check failed", zap.Error(err))
		return nil, &ExistenceError{Bucket: bucket, Key: key, Err: err}
	}
	if !exists {
		log.Debug("Object not found, skipping delete")
		return Failed(NotFoundErrors()...), nil
	}

	if err := c.store.RemoveObject(ctx, bucket, key); err != nil {
		return failure(log, err), nil
	}

	log.Debug("Object deleted")
	return Success(), nil
}

func failure(log *zap.Logger, err error) *Result {
	result := Failed(MapError(err)...)
	log.Warn("Object operation failed", zap.Strings("codes", result.Codes()), zap.Error(err))
	return result
}

func async(fn func() (*Result, error)) <-chan Outcome {
	ch := make(chan Outcome, 1)
	go func() {
		defer close(ch)
		result, err := fn()
		ch <- Outcome{Result: result, Err: err}
	}()
	return ch
}
