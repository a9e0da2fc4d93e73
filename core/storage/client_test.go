package storage_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"r2-client/core/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(driver string) storage.Config {
	return storage.Config{
		Driver:          driver,
		Endpoint:        "https://account.r2.cloudflarestorage.com",
		PublicEndpoint:  "https://cdn.example.com",
		AccessKeyID:     "testkey",
		SecretAccessKey: "testsecret",
		Bucket:          "test-bucket",
		Region:          "auto",
		UseSSL:          true,
	}
}

// writeCABundle writes a self-signed CA certificate and returns its path.
func writeCABundle(t *testing.T) string {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "r2-client test CA"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(time.Hour),
		IsCA:                  true,
		KeyUsage:              x509.KeyUsageCertSign,
		BasicConstraintsValid: true,
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "ca.pem")
	require.NoError(t, os.WriteFile(path, pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}), 0o644))
	return path
}

func TestNewClient(t *testing.T) {
	t.Run("R2", func(t *testing.T) {
		client, err := storage.NewClient(validConfig(storage.DriverR2))
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.NoError(t, client.Close())
	})

	t.Run("DefaultDriverIsR2", func(t *testing.T) {
		client, err := storage.NewClient(validConfig(""))
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("R2WithCABundle", func(t *testing.T) {
		t.Setenv("AWS_CA_BUNDLE", writeCABundle(t))

		client, err := storage.NewClient(validConfig(storage.DriverR2))
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.NoError(t, client.Close())
	})

	t.Run("MinioWithHTTP", func(t *testing.T) {
		cfg := validConfig(storage.DriverMinio)
		cfg.Endpoint = "http://localhost:9000"
		client, err := storage.NewClient(cfg)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("MinioWithoutScheme", func(t *testing.T) {
		cfg := validConfig(storage.DriverMinio)
		cfg.Endpoint = "localhost:9000"
		cfg.UseSSL = false
		client, err := storage.NewClient(cfg)
		require.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("Local", func(t *testing.T) {
		cfg := validConfig(storage.DriverLocal)
		cfg.Endpoint = t.TempDir()
		client, err := storage.NewClient(cfg)
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.DirExists(t, cfg.Endpoint+"/test-bucket")
	})

	t.Run("UnknownDriver", func(t *testing.T) {
		client, err := storage.NewClient(validConfig("ftp"))
		assert.ErrorIs(t, err, storage.ErrInvalidConfig)
		assert.Nil(t, client)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*storage.Config)
		missing string
	}{
		{"PublicEndpoint", func(c *storage.Config) { c.PublicEndpoint = "" }, "public_endpoint"},
		{"AccessKeyID", func(c *storage.Config) { c.AccessKeyID = "" }, "access_key_id"},
		{"SecretAccessKey", func(c *storage.Config) { c.SecretAccessKey = "  " }, "secret_access_key"},
		{"Endpoint", func(c *storage.Config) { c.Endpoint = "" }, "endpoint"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig(storage.DriverR2)
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.ErrorIs(t, err, storage.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.missing)

			client, err := storage.NewClient(cfg)
			assert.Error(t, err)
			assert.Nil(t, client)
		})
	}

	t.Run("ReportsEveryMissingField", func(t *testing.T) {
		err := storage.Config{}.Validate()
		require.Error(t, err)
		for _, field := range []string{"public_endpoint", "access_key_id", "secret_access_key", "endpoint"} {
			assert.Contains(t, err.Error(), field)
		}
	})

	t.Run("BucketIsOptional", func(t *testing.T) {
		cfg := validConfig(storage.DriverR2)
		cfg.Bucket = ""
		assert.NoError(t, cfg.Validate())
	})
}
