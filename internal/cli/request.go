package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/research-connect/internal/database"
	"github.com/vijay-prabhu/research-connect/internal/output"
	"github.com/vijay-prabhu/research-connect/internal/requests"
)

var requestCmd = &cobra.Command{
	Use:   "request",
	Short: "Manage collaboration requests",
	Long: `Send, review and close collaboration requests between students and professors.

Examples:
  researchhub request send <student-id> <professor-id> --message "Hello!"
  researchhub request list <professor-id>            # pending requests to review
  researchhub request list <student-id>              # sent requests grouped by status
  researchhub request list <user-id> --view active   # accepted collaborations
  researchhub request respond <professor-id> <request-id> accept
  researchhub request cancel <student-id> <request-id>
  researchhub request end <user-id> <request-id>`,
}

var requestSendCmd = &cobra.Command{
	Use:   "send <student-id> <professor-id>",
	Short: "Send a collaboration request to a professor",
	Args:  cobra.ExactArgs(2),
	RunE:  runRequestSend,
}

var requestListCmd = &cobra.Command{
	Use:   "list <user-id>",
	Short: "List collaboration requests for a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runRequestList,
}

var requestRespondCmd = &cobra.Command{
	Use:   "respond <professor-id> <request-id> <accept|decline>",
	Short: "Accept or decline a pending request",
	Args:  cobra.ExactArgs(3),
	RunE:  runRequestRespond,
}

var requestCancelCmd = &cobra.Command{
	Use:   "cancel <student-id> <request-id>",
	Short: "Withdraw a pending request",
	Args:  cobra.ExactArgs(2),
	RunE:  runRequestCancel,
}

var requestEndCmd = &cobra.Command{
	Use:   "end <user-id> <request-id>",
	Short: "End a collaboration or delete a request",
	Args:  cobra.ExactArgs(2),
	RunE:  runRequestEnd,
}

var (
	requestMessage string
	requestView    string
)

func init() {
	rootCmd.AddCommand(requestCmd)
	requestCmd.AddCommand(requestSendCmd, requestListCmd, requestRespondCmd, requestCancelCmd, requestEndCmd)

	requestSendCmd.Flags().StringVar(&requestMessage, "message", "", "Note to the professor")
	requestListCmd.Flags().StringVar(&requestView, "view", "", "incoming, outgoing or active (default: by role)")
}

func runRequestSend(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	req, err := sess.service.SendRequest(cmd.Context(), args[0], args[1], nonEmpty(requestMessage))
	if err != nil {
		return err
	}
	return printRequest(cmd, req)
}

func runRequestList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	userID := args[0]

	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	view := requestView
	if view == "" {
		user, err := sess.service.GetUser(ctx, userID)
		if err != nil {
			return err
		}
		switch user.Role {
		case database.RoleProfessor:
			view = "incoming"
		case database.RoleStudent:
			view = "outgoing"
		default:
			return fmt.Errorf("%s users have no collaboration requests", user.Role)
		}
	}

	var data interface{}
	switch view {
	case "incoming":
		data, err = sess.service.IncomingRequests(ctx, userID)
	case "outgoing":
		data, err = sess.service.OutgoingRequests(ctx, userID)
	case "active":
		data, err = sess.service.ActiveCollaborations(ctx, userID)
	default:
		return fmt.Errorf("invalid --view '%s' (use incoming, outgoing or active)", view)
	}
	if err != nil {
		return err
	}

	return output.OutputTo(cmd.OutOrStdout(), outputFmt, data)
}

func runRequestRespond(cmd *cobra.Command, args []string) error {
	event, err := requests.ParseEvent(args[2])
	if err != nil {
		return err
	}
	if event == requests.EventCancel {
		return fmt.Errorf("professors accept or decline; students use 'researchhub request cancel'")
	}

	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	req, err := sess.service.Respond(cmd.Context(), args[0], args[1], event)
	if err != nil {
		return err
	}
	return printRequest(cmd, req)
}

func runRequestCancel(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	req, err := sess.service.Cancel(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}
	return printRequest(cmd, req)
}

func runRequestEnd(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	if err := sess.service.EndCollaboration(cmd.Context(), args[0], args[1]); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Request %s removed\n", args[1])
	return nil
}

// printRequest shows a request, colouring its status on a terminal
func printRequest(cmd *cobra.Command, req *database.CollaborationRequest) error {
	out := cmd.OutOrStdout()
	if outputFmt == "json" {
		return output.JSONTo(out, req)
	}

	terminal := NewTerminal(out)
	if err := output.TableTo(out, req); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nRequest is now %s\n", terminal.Color(StatusColor(req.Status), string(req.Status)))
	return nil
}
