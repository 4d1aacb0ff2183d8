package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/research-connect/internal/database"
	"github.com/vijay-prabhu/research-connect/internal/directory"
	"github.com/vijay-prabhu/research-connect/internal/output"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Track research projects",
	Long: `Track the research projects you own.

Examples:
  researchhub project list <user-id>
  researchhub project add <user-id> --title "Swarm robotics" --description "..."
  researchhub project update <user-id> <project-id> --status completed
  researchhub project show <project-id>`,
}

var projectListCmd = &cobra.Command{
	Use:   "list <owner-id>",
	Short: "List a user's projects",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectList,
}

var projectShowCmd = &cobra.Command{
	Use:   "show <project-id>",
	Short: "Show a single project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectShow,
}

var projectAddCmd = &cobra.Command{
	Use:   "add <owner-id>",
	Short: "Create a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectAdd,
}

var projectUpdateCmd = &cobra.Command{
	Use:   "update <owner-id> <project-id>",
	Short: "Update a project you own",
	Args:  cobra.ExactArgs(2),
	RunE:  runProjectUpdate,
}

var projectOpts struct {
	title, description, status string
}

func init() {
	rootCmd.AddCommand(projectCmd)
	projectCmd.AddCommand(projectListCmd, projectShowCmd, projectAddCmd, projectUpdateCmd)

	for _, c := range []*cobra.Command{projectAddCmd, projectUpdateCmd} {
		c.Flags().StringVar(&projectOpts.title, "title", "", "Project title")
		c.Flags().StringVar(&projectOpts.description, "description", "", "Project description")
		c.Flags().StringVar(&projectOpts.status, "status", "", "Status (active, completed, on_hold)")
	}
	projectAddCmd.MarkFlagRequired("title")
}

func runProjectList(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	projects, err := sess.service.ListProjects(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	return output.OutputTo(cmd.OutOrStdout(), outputFmt, projects)
}

func runProjectShow(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	p, err := sess.service.GetProject(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	return output.OutputTo(cmd.OutOrStdout(), outputFmt, p)
}

func runProjectAdd(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	p, err := sess.service.CreateProject(cmd.Context(), args[0], projectOpts.title,
		nonEmpty(projectOpts.description), database.ProjectStatus(projectOpts.status))
	if err != nil {
		return err
	}

	return output.OutputTo(cmd.OutOrStdout(), outputFmt, p)
}

func runProjectUpdate(cmd *cobra.Command, args []string) error {
	change := directory.ProjectChange{
		Title:       changed(cmd, "title", projectOpts.title),
		Description: changed(cmd, "description", projectOpts.description),
	}
	if status := changed(cmd, "status", projectOpts.status); status != nil {
		s := database.ProjectStatus(*status)
		change.Status = &s
	}
	if change == (directory.ProjectChange{}) {
		return fmt.Errorf("nothing to update: pass at least one of --title, --description, --status")
	}

	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	p, err := sess.service.UpdateProject(cmd.Context(), args[0], args[1], change)
	if err != nil {
		return err
	}

	return output.OutputTo(cmd.OutOrStdout(), outputFmt, p)
}
