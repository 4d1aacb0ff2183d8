package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/research-connect/internal/directory"
	"github.com/vijay-prabhu/research-connect/internal/output"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Find research matches by shared interests",
	Long: `Rank potential collaborators by how many research interests they share.

Examples:
  researchhub match professors <student-id>
  researchhub match professors <student-id> --request <professor-id> --message "I'd love to join your lab"
  researchhub match students <professor-id>
  researchhub match partners <student-id> -o json`,
}

var matchProfessorsCmd = &cobra.Command{
	Use:   "professors <student-id>",
	Short: "Recommend professors for a student",
	Args:  cobra.ExactArgs(1),
	RunE:  matchRunner(directory.MatchProfessors),
}

var matchStudentsCmd = &cobra.Command{
	Use:   "students <professor-id>",
	Short: "Recommend students for a professor",
	Args:  cobra.ExactArgs(1),
	RunE:  matchRunner(directory.MatchStudents),
}

var matchPartnersCmd = &cobra.Command{
	Use:   "partners <student-id>",
	Short: "Find research partners among fellow students",
	Args:  cobra.ExactArgs(1),
	RunE:  matchRunner(directory.MatchPartners),
}

var (
	matchRequestID string
	matchMessage   string
)

func init() {
	rootCmd.AddCommand(matchCmd)
	matchCmd.AddCommand(matchProfessorsCmd, matchStudentsCmd, matchPartnersCmd)

	matchProfessorsCmd.Flags().StringVar(&matchRequestID, "request", "", "Send a collaboration request to this recommended professor")
	matchProfessorsCmd.Flags().StringVar(&matchMessage, "message", "", "Note to include with --request")
}

func matchRunner(kind directory.MatchKind) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		sess, err := openSession()
		if err != nil {
			return err
		}
		defer sess.Close()

		report, err := sess.service.Recommend(ctx, kind, args[0])
		if err != nil {
			return err
		}

		if kind != directory.MatchProfessors || matchRequestID == "" {
			return printMatches(cmd, report)
		}

		if !containsCandidate(report, matchRequestID) {
			return fmt.Errorf("%s is not among the recommended professors", matchRequestID)
		}

		req, err := sess.service.SendRequest(ctx, args[0], matchRequestID, nonEmpty(matchMessage))
		if err != nil {
			return err
		}

		if outputFmt == "json" {
			return output.JSONTo(out, req)
		}
		terminal := NewTerminal(out)
		fmt.Fprintf(out, "Collaboration request %s sent (%s)\n", req.ID, terminal.Color(StatusColor(req.Status), string(req.Status)))
		return nil
	}
}

func printMatches(cmd *cobra.Command, report *directory.MatchReport) error {
	out := cmd.OutOrStdout()
	if outputFmt == "json" {
		return output.JSONTo(out, report)
	}
	if outputFmt != "table" && outputFmt != "" {
		return fmt.Errorf("unknown output format: %s", outputFmt)
	}
	return output.MatchesTable(out, report, NewTerminal(out).ScoreStyle())
}

func containsCandidate(report *directory.MatchReport, id string) bool {
	for _, m := range report.Matches {
		if m.ID == id {
			return true
		}
	}
	return false
}
