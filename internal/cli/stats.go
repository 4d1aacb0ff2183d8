package cli

import (
	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/research-connect/internal/output"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show directory statistics",
	Long: `Display user, collaboration, forum, highlight and project totals.

Examples:
  researchhub stats
  researchhub stats -o json`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	stats, err := sess.service.Stats(cmd.Context())
	if err != nil {
		return err
	}

	return output.OutputTo(cmd.OutOrStdout(), outputFmt, stats)
}
