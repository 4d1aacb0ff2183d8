package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/research-connect/internal/database"
	"github.com/vijay-prabhu/research-connect/internal/directory"
	"github.com/vijay-prabhu/research-connect/internal/matching"
	"github.com/vijay-prabhu/research-connect/internal/output"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage students, professors and administrators",
}

var userAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new user",
	Long: `Register a new user in the directory.

Examples:
  researchhub user add --name "Ada Lovelace" --email ada@campus.edu --role student --department "Computer Science"
  researchhub user add --name "Alan Turing" --email turing@campus.edu --role professor \
      --department "Computer Science" --interests "computability, machine learning"`,
	Args: cobra.NoArgs,
	RunE: runUserAdd,
}

var userShowCmd = &cobra.Command{
	Use:   "show <id|email>",
	Short: "Show a user's profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserShow,
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List users",
	Long: `List users with optional filters.

Examples:
  researchhub user list --role professor
  researchhub user list --department Biology --keyword genomics
  researchhub user list -o json`,
	Args: cobra.NoArgs,
	RunE: runUserList,
}

var userUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a user's profile",
	Long: `Update profile fields. Only the flags you pass are changed.

Examples:
  researchhub user update 3f6c... --interests "machine learning, robotics" --level intermediate
  researchhub user update 3f6c... --bio "Second-year PhD student"`,
	Args: cobra.ExactArgs(1),
	RunE: runUserUpdate,
}

var userDepartmentsCmd = &cobra.Command{
	Use:   "departments",
	Short: "List departments with at least one user",
	Args:  cobra.NoArgs,
	RunE:  runUserDepartments,
}

var userAddOpts struct {
	name, email, role, department, interests, level, bio string
}

var userListOpts struct {
	role, department, keyword string
	limit                     int
}

var userUpdateOpts struct {
	name, department, interests, level, bio, photo string
}

func init() {
	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userAddCmd, userShowCmd, userListCmd, userUpdateCmd, userDepartmentsCmd)

	userAddCmd.Flags().StringVar(&userAddOpts.name, "name", "", "Full name")
	userAddCmd.Flags().StringVar(&userAddOpts.email, "email", "", "Campus email address")
	userAddCmd.Flags().StringVar(&userAddOpts.role, "role", "student", "Role (student, professor, admin)")
	userAddCmd.Flags().StringVar(&userAddOpts.department, "department", "", "Department")
	userAddCmd.Flags().StringVar(&userAddOpts.interests, "interests", "", "Comma-separated research interests")
	userAddCmd.Flags().StringVar(&userAddOpts.level, "level", "", "Experience level (beginner, intermediate, advanced)")
	userAddCmd.Flags().StringVar(&userAddOpts.bio, "bio", "", "Short biography")
	userAddCmd.MarkFlagRequired("name")
	userAddCmd.MarkFlagRequired("email")

	userListCmd.Flags().StringVar(&userListOpts.role, "role", "", "Filter by role")
	userListCmd.Flags().StringVar(&userListOpts.department, "department", "", "Filter by department")
	userListCmd.Flags().StringVar(&userListOpts.keyword, "keyword", "", "Match research interests or bio")
	userListCmd.Flags().IntVar(&userListOpts.limit, "limit", 0, "Maximum number of results")

	userUpdateCmd.Flags().StringVar(&userUpdateOpts.name, "name", "", "Full name")
	userUpdateCmd.Flags().StringVar(&userUpdateOpts.department, "department", "", "Department")
	userUpdateCmd.Flags().StringVar(&userUpdateOpts.interests, "interests", "", "Comma-separated research interests")
	userUpdateCmd.Flags().StringVar(&userUpdateOpts.level, "level", "", "Experience level (beginner, intermediate, advanced)")
	userUpdateCmd.Flags().StringVar(&userUpdateOpts.bio, "bio", "", "Short biography")
	userUpdateCmd.Flags().StringVar(&userUpdateOpts.photo, "photo", "", "Path to a profile photo")
}

// changed returns a pointer to value when the named flag was set on cmd
func changed(cmd *cobra.Command, name, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

// nonEmpty returns a pointer to s unless it is blank
func nonEmpty(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func levelPtr(s *string) *matching.ExperienceLevel {
	if s == nil {
		return nil
	}
	l := matching.ExperienceLevel(*s)
	return &l
}

func runUserAdd(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	user, err := sess.service.Register(cmd.Context(), directory.Registration{
		Name:              userAddOpts.name,
		Email:             userAddOpts.email,
		Role:              database.Role(userAddOpts.role),
		Department:        userAddOpts.department,
		ResearchInterests: nonEmpty(userAddOpts.interests),
		ExperienceLevel:   levelPtr(nonEmpty(userAddOpts.level)),
		Bio:               nonEmpty(userAddOpts.bio),
	})
	if err != nil {
		return err
	}

	return output.OutputTo(cmd.OutOrStdout(), outputFmt, user)
}

func runUserShow(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	var user *database.User
	if strings.Contains(args[0], "@") {
		user, err = sess.service.GetUserByEmail(cmd.Context(), args[0])
	} else {
		user, err = sess.service.GetUser(cmd.Context(), args[0])
	}
	if err != nil {
		return err
	}

	return output.OutputTo(cmd.OutOrStdout(), outputFmt, user)
}

func runUserList(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	filter := database.UserFilter{
		Department: nonEmpty(userListOpts.department),
		Keyword:    nonEmpty(userListOpts.keyword),
		Limit:      userListOpts.limit,
	}
	if userListOpts.role != "" {
		role := database.Role(userListOpts.role)
		filter.Role = &role
	}

	users, err := sess.service.ListUsers(cmd.Context(), filter)
	if err != nil {
		return err
	}

	return output.OutputTo(cmd.OutOrStdout(), outputFmt, users)
}

func runUserUpdate(cmd *cobra.Command, args []string) error {
	upd := database.ProfileUpdate{
		Name:              changed(cmd, "name", userUpdateOpts.name),
		Department:        changed(cmd, "department", userUpdateOpts.department),
		ResearchInterests: changed(cmd, "interests", userUpdateOpts.interests),
		ExperienceLevel:   levelPtr(changed(cmd, "level", userUpdateOpts.level)),
		Bio:               changed(cmd, "bio", userUpdateOpts.bio),
		PhotoPath:         changed(cmd, "photo", userUpdateOpts.photo),
	}
	if upd == (database.ProfileUpdate{}) {
		return fmt.Errorf("nothing to update: pass at least one of --name, --department, --interests, --level, --bio, --photo")
	}

	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	user, err := sess.service.UpdateProfile(cmd.Context(), args[0], upd)
	if err != nil {
		return err
	}

	return output.OutputTo(cmd.OutOrStdout(), outputFmt, user)
}

func runUserDepartments(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	departments, err := sess.service.Departments(cmd.Context())
	if err != nil {
		return err
	}

	return output.OutputTo(cmd.OutOrStdout(), outputFmt, departments)
}
