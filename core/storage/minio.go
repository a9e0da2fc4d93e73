package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type minioClient struct {
	client    *minio.Client
	transport *http.Transport
}

func newMinioClient(cfg Config) (*minioClient, error) {
	// Minio expects endpoint without scheme
	endpoint, secure := hostOnly(cfg.Endpoint, cfg.UseSSL)

	transport := newTransport(timeout(cfg))

	region := cfg.Region
	if region == "auto" {
		region = ""
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure:    secure,
		Region:    region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	// Minio connects lazily, the first operation surfaces connection problems.

	return &minioClient{client: client, transport: transport}, nil
}

func (c *minioClient) StatObject(ctx context.Context, bucketName, objectName string) (ObjectInfo, error) {
	info, err := c.client.StatObject(ctx, bucketName, objectName, minio.StatObjectOptions{})
	if err != nil {
		return ObjectInfo{}, fromMinio(err, true)
	}
	return ObjectInfo{
		Key:          info.Key,
		Size:         info.Size,
		ETag:         info.ETag,
		ContentType:  info.ContentType,
		LastModified: info.LastModified,
	}, nil
}

func (c *minioClient) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, size int64, opts PutOptions) (ObjectInfo, error) {
	info, err := c.client.PutObject(ctx, bucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType:          opts.ContentType,
		DisableContentSha256: opts.DisablePayloadSigning,
	})
	if err != nil {
		return ObjectInfo{}, fromMinio(err, false)
	}
	return ObjectInfo{
		Key:         info.Key,
		Size:        info.Size,
		ETag:        info.ETag,
		ContentType: opts.ContentType,
	}, nil
}

func (c *minioClient) RemoveObject(ctx context.Context, bucketName, objectName string) error {
	if err := c.client.RemoveObject(ctx, bucketName, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fromMinio(err, false)
	}
	return nil
}

func (c *minioClient) Close() error {
	c.transport.CloseIdleConnections()
	return nil
}

// fromMinio converts a minio.ErrorResponse into a *ProviderError. A HEAD
// request carries no error body, so minio synthesizes NoSuchKey for it; the
// wire-level code of a missing object on HEAD is NotFound.
func fromMinio(err error, head bool) error {
	resp := minio.ToErrorResponse(err)
	if resp.Code == "" && resp.StatusCode == 0 {
		return err
	}

	code := resp.Code
	if head && code == "NoSuchKey" {
		code = CodeNotFound
	}

	message := resp.Message
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	return &ProviderError{
		StatusCode: resp.StatusCode,
		Code:       code,
		Message:    message,
	}
}
