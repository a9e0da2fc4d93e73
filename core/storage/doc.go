// Package storage provides the transport layer for S3-compatible object stores.
//
// It hides the SDK behind a small Client interface so the rest of the module
// never imports provider types. Three drivers are available, selected by
// Config.Driver:
//
//   - r2: Cloudflare R2 (or any S3 endpoint) through aws-sdk-go-v2.
//   - minio: any S3-compatible endpoint through the MinIO Go client.
//   - local: a directory on disk, one folder per bucket, for development.
//
// # Errors
//
// Failures reported by the store are translated at this boundary into
// *ProviderError, which carries the HTTP status, the provider error code and
// its message. Anything else (dial errors, cancellation, local I/O) is
// returned as is.
//
// # Operations
//
//   - StatObject: Fetches object metadata (HEAD).
//   - PutObject: Uploads content of known or unknown size.
//   - RemoveObject: Deletes an object.
//   - Close: Releases pooled connections.
//
// # Usage
//
//	client, err := storage.NewClient(cfg)
//	info, err := client.StatObject(ctx, "assets", "images/logo.png")
package storage
