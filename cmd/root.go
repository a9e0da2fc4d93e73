package cmd

import (
	"errors"
	"fmt"
	"os"

	"r2-client/core/config"
	"r2-client/core/logger"
	"r2-client/core/objectstore"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// errFailed reports a completed operation whose Result was not successful.
var errFailed = errors.New("operation failed")

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "r2-client",
	Short: "Cloudflare R2 object client",
	Long: `r2-client uploads and deletes objects in Cloudflare R2 or any
S3-compatible store, reporting every outcome as a uniform result.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		if !errors.Is(err, errFailed) {
			// We use "debug" level configuration to get ISO8601 timestamps (DevConfig) instead of Epoch (ProdConfig)
			cfg := &logger.Config{
				Level:  "debug",
				Format: "console",
			}

			l, logErr := logger.New(cfg)
			if logErr == nil {
				l.Error("command failed", zap.Error(err))
				_ = l.Sync()
			} else {
				fmt.Println(err)
			}
		}
		os.Exit(1)
	}
}

// openClient loads the configuration and creates the logger and object client.
func openClient() (*config.Config, *zap.Logger, *objectstore.Client, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	client, err := objectstore.New(cfg.Storage, logg)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, logg, client, nil
}

// report prints the result and converts a failed one into errFailed.
func report(cmd *cobra.Command, result *objectstore.Result) error {
	fmt.Fprintln(cmd.OutOrStdout(), result)
	if !result.Succeeded() {
		return errFailed
	}
	return nil
}

// bucketOr returns bucket, or the configured default when empty.
func bucketOr(bucket string, client *objectstore.Client) string {
	if bucket != "" {
		return bucket
	}
	return client.DefaultBucket()
}
