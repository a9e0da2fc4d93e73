package cmd

import (
	"errors"

	"r2-client/core/objectstore"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var putFlags struct {
	file   string
	stdin  bool
	bucket string
	key    string
}

// putCmd uploads a local file or standard input.
var putCmd = &cobra.Command{
	Use:   "put",
	Short: "Upload an object",
	Long:  `Uploads a local file (--file) or standard input (--stdin) to bucket/key.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if (putFlags.file == "") == !putFlags.stdin {
			return errors.New("exactly one of --file or --stdin is required")
		}

		_, logg, client, err := openClient()
		if err != nil {
			return err
		}
		defer logg.Sync()
		defer client.Close()

		src := objectstore.File(putFlags.file)
		if putFlags.stdin {
			src = objectstore.Stream(cmd.InOrStdin())
		}

		result, err := client.PutObject(cmd.Context(), src, bucketOr(putFlags.bucket, client), putFlags.key)
		if err != nil {
			return err
		}
		if result.Succeeded() {
			logg.Info("Object uploaded", zap.String("url", client.PublicURL(putFlags.key)))
		}
		return report(cmd, result)
	},
}

func init() {
	putCmd.Flags().StringVar(&putFlags.file, "file", "", "local file to upload")
	putCmd.Flags().BoolVar(&putFlags.stdin, "stdin", false, "upload standard input")
	putCmd.Flags().StringVar(&putFlags.bucket, "bucket", "", "target bucket (defaults to storage.bucket)")
	putCmd.Flags().StringVar(&putFlags.key, "key", "", "object key")
	_ = putCmd.MarkFlagRequired("key")
	RootCmd.AddCommand(putCmd)
}
