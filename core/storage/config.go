package storage

import (
	"errors"
	"fmt"
	"strings"
)

// Supported storage drivers.
const (
	DriverR2    = "r2"
	DriverMinio = "minio"
	DriverLocal = "local"
)

// ErrInvalidConfig is returned when a required storage setting is missing.
var ErrInvalidConfig = errors.New("storage: invalid configuration")

// Config holds configuration for the storage provider.
type Config struct {
	// Driver selects the transport implementation (r2, minio, local).
	Driver string `mapstructure:"driver" default:"r2"`
	// Endpoint is the S3 API URL of the storage service. For the local driver
	// it is the root directory that holds one folder per bucket.
	Endpoint string `mapstructure:"endpoint" default:""`
	// PublicEndpoint is the base URL objects are publicly served from.
	PublicEndpoint string `mapstructure:"public_endpoint" default:""`
	// AccessKeyID is the access key ID for authentication.
	AccessKeyID string `mapstructure:"access_key_id" default:""`
	// SecretAccessKey is the secret access key for authentication.
	SecretAccessKey string `mapstructure:"secret_access_key" default:""`
	// Bucket is the optional default bucket.
	Bucket string `mapstructure:"bucket" default:""`
	// Region is the signing region. R2 uses "auto".
	Region string `mapstructure:"region" default:"auto"`
	// UseSSL is applied when Endpoint has no scheme.
	UseSSL bool `mapstructure:"use_ssl" default:"true"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Validate reports every required field that is empty.
func (c Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.PublicEndpoint) == "" {
		missing = append(missing, "public_endpoint")
	}
	if strings.TrimSpace(c.AccessKeyID) == "" {
		missing = append(missing, "access_key_id")
	}
	if strings.TrimSpace(c.SecretAccessKey) == "" {
		missing = append(missing, "secret_access_key")
	}
	if strings.TrimSpace(c.Endpoint) == "" {
		missing = append(missing, "endpoint")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidConfig, strings.Join(missing, ", "))
	}

	switch c.driver() {
	case DriverR2, DriverMinio, DriverLocal:
		return nil
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidConfig, c.Driver)
	}
}

func (c Config) driver() string {
	if c.Driver == "" {
		return DriverR2
	}
	return strings.ToLower(c.Driver)
}
