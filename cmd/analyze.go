package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kwanza-labs/insights-cli/internal/analysis"
)

var analyzeOutput string

var analyzeCmd = &cobra.Command{
	Use:   "analyze \"question\"",
	Short: "Answer a business question from the document corpus",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")

		env, err := initEnv(cmd.Context())
		if err != nil {
			return err
		}
		defer env.Close()

		result, err := env.Analyzer.Analyze(cmd.Context(), question)
		if errors.Is(err, analysis.ErrInsufficientData) {
			fmt.Fprintln(os.Stderr, "Não há dados reais suficientes para responder a esta pergunta.")
			fmt.Fprintln(os.Stderr, "Ingira mais documentos com: insights-cli ingest <dir>")
			return err
		}
		if err != nil {
			return err
		}

		payload, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return eris.Wrap(err, "analyze: marshal result")
		}

		if analyzeOutput != "" {
			if err := os.WriteFile(analyzeOutput, payload, 0o644); err != nil {
				return eris.Wrap(err, "analyze: write output file")
			}
			zap.L().Info("analysis written",
				zap.String("path", analyzeOutput),
				zap.Int("data_points", result.Metadata.DataPoints),
			)
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(payload))
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "write the result JSON to a file instead of stdout")
	rootCmd.AddCommand(analyzeCmd)
}
