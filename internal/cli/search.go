package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/research-connect/internal/database"
	"github.com/vijay-prabhu/research-connect/internal/output"
)

var searchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search the directory",
	Long: `Search users by keyword in their research interests or bio.

Examples:
  researchhub search robotics
  researchhub search "machine learning" --role professor
  researchhub search genomics --department Biology`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

var searchOpts struct {
	role, department string
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().StringVar(&searchOpts.role, "role", "", "Only users with this role")
	searchCmd.Flags().StringVar(&searchOpts.department, "department", "", "Only users in this department")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	out := cmd.OutOrStdout()

	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	var role *database.Role
	if searchOpts.role != "" {
		r := database.Role(searchOpts.role)
		role = &r
	}

	results, err := sess.service.SearchUsers(cmd.Context(), query, role, nonEmpty(searchOpts.department))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if outputFmt == "json" {
		return output.JSONTo(out, results)
	}

	if len(results) == 0 {
		fmt.Fprintf(out, "No users found matching: %s\n", query)
		return nil
	}

	fmt.Fprintf(out, "Found %d user(s) matching: %s\n\n", len(results), query)
	return output.OutputTo(out, outputFmt, results)
}
