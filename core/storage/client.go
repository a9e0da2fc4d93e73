package storage

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
}

// PutOptions tunes a single upload.
type PutOptions struct {
	// ContentType is sent as the object's Content-Type.
	ContentType string
	// DisablePayloadSigning sends the body as UNSIGNED-PAYLOAD instead of
	// hashing it into the request signature.
	DisablePayloadSigning bool
}

// Client defines the interface for storage operations.
//
// Failures reported by the store are returned as *ProviderError; any other
// error (network, local I/O, cancellation) is returned unchanged.
type Client interface {
	// StatObject fetches object metadata without the content.
	StatObject(ctx context.Context, bucketName, objectName string) (ObjectInfo, error)
	// PutObject uploads an object. size is -1 when unknown.
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, size int64, opts PutOptions) (ObjectInfo, error)
	// RemoveObject deletes an object from a bucket.
	RemoveObject(ctx context.Context, bucketName, objectName string) error
	// Close releases the connections held by the client.
	Close() error
}

// NewClient validates the configuration and creates the configured driver.
func NewClient(cfg Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.driver() {
	case DriverMinio:
		return newMinioClient(cfg)
	case DriverLocal:
		return newLocalClient(cfg)
	default:
		return newR2Client(context.Background(), cfg)
	}
}

func timeout(cfg Config) time.Duration {
	seconds := cfg.TimeoutSeconds
	if seconds <= 0 {
		seconds = 30
	}
	return time.Duration(seconds) * time.Second
}

// newTransport builds the HTTP transport shared by the network drivers.
func newTransport(timeoutDuration time.Duration) *http.Transport {
	tr := &http.Transport{Proxy: http.ProxyFromEnvironment}
	tuneTransport(tr, timeoutDuration)
	return tr
}

// tuneTransport applies the connection limits and timeouts to tr.
func tuneTransport(tr *http.Transport, timeoutDuration time.Duration) {
	tr.DialContext = (&net.Dialer{
		Timeout:   timeoutDuration, // Connection setup timeout
		KeepAlive: 30 * time.Second,
	}).DialContext
	tr.ForceAttemptHTTP2 = true
	tr.MaxIdleConns = 100
	tr.IdleConnTimeout = 90 * time.Second
	tr.TLSHandshakeTimeout = timeoutDuration
	tr.ExpectContinueTimeout = 1 * time.Second
	tr.ResponseHeaderTimeout = timeoutDuration // Wait for first response byte timeout
}

// hostOnly strips the scheme, as minio expects a bare host[:port], and
// reports whether the endpoint is served over TLS.
func hostOnly(endpoint string, useSSL bool) (string, bool) {
	endpoint = withScheme(endpoint, useSSL)
	secure := strings.HasPrefix(endpoint, "https://")
	host := strings.TrimPrefix(strings.TrimPrefix(endpoint, "https://"), "http://")
	return strings.TrimSuffix(host, "/"), secure
}

// withScheme adds a scheme when the endpoint has none.
func withScheme(endpoint string, useSSL bool) string {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	if useSSL {
		return "https://" + endpoint
	}
	return "http://" + endpoint
}
