package cmd

import (
	"github.com/spf13/cobra"
)

var deleteFlags struct {
	bucket string
	key    string
}

// deleteCmd removes an object after checking that it exists.
var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete an object",
	Long:  `Deletes bucket/key. A missing object is reported as NotFound.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, logg, client, err := openClient()
		if err != nil {
			return err
		}
		defer logg.Sync()
		defer client.Close()

		result, err := client.DeleteObject(cmd.Context(), bucketOr(deleteFlags.bucket, client), deleteFlags.key)
		if err != nil {
			return err
		}
		return report(cmd, result)
	},
}

func init() {
	deleteCmd.Flags().StringVar(&deleteFlags.bucket, "bucket", "", "target bucket (defaults to storage.bucket)")
	deleteCmd.Flags().StringVar(&deleteFlags.key, "key", "", "object key")
	_ = deleteCmd.MarkFlagRequired("key")
	RootCmd.AddCommand(deleteCmd)
}
