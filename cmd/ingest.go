package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <dir>",
	Short: "Index .txt and .xlsx documents into the content store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer env.Close()

		result, err := env.Ingest.IngestDir(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		total, err := env.Store.Count(cmd.Context())
		if err != nil {
			zap.L().Warn("ingest: count after run failed", zap.Error(err))
			total = -1
		}

		fmt.Fprintf(cmd.OutOrStdout(), "indexed %d, skipped %d, failed %d (store now holds %d documents)\n",
			result.Indexed, result.Skipped, result.Failed, total)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}
