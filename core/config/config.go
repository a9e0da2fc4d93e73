package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"r2-client/core/database"
	"r2-client/core/logger"
	"r2-client/core/server"
	"r2-client/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultPrefix is the base name of the optional JSON settings files.
const DefaultPrefix = "config"

// EnvVariable selects the environment specific settings file.
const EnvVariable = "APP_ENV"

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP gateway.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object store (R2, MinIO, local).
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the optional journal database.
	Database database.Config `mapstructure:"database"`
}

// LoadConfig loads configuration from path using the default file prefix and
// the environment named by APP_ENV.
func LoadConfig(path string) (*Config, error) {
	// .env may set APP_ENV itself
	loadDotEnv(path)
	return load(path, DefaultPrefix, os.Getenv(EnvVariable))
}

// LoadLayered loads configuration in increasing priority: struct defaults,
// <prefix>.json, <prefix>.<env>.json, the .env file and the process
// environment. Missing files are skipped.
func LoadLayered(path, prefix, env string) (*Config, error) {
	loadDotEnv(path)
	return load(path, prefix, env)
}

func load(path, prefix, env string) (*Config, error) {
	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	files := []string{prefix + ".json"}
	if env != "" {
		files = append(files, prefix+"."+strings.ToLower(env)+".json")
	}
	for _, name := range files {
		if err := mergeFile(v, filepath.Join(path, name)); err != nil {
			return nil, err
		}
	}

	// Map environment variables to nested keys (e.g. STORAGE_BUCKET -> storage.bucket)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func loadDotEnv(path string) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)
}

// mergeFile merges a JSON settings file into v. A missing file is not an error.
func mergeFile(v *viper.Viper, file string) error {
	if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	v.SetConfigFile(file)
	v.SetConfigType("json")
	if err := v.MergeInConfig(); err != nil {
		return fmt.Errorf("failed to read %s: %w", filepath.Base(file), err)
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
