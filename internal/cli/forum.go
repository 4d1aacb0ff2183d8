package cli

import (
	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/research-connect/internal/database"
	"github.com/vijay-prabhu/research-connect/internal/output"
)

var forumCmd = &cobra.Command{
	Use:   "forum",
	Short: "Read and post in the discussion forum",
	Long: `Browse, start and vote on forum discussions.

Examples:
  researchhub forum list --sort popular
  researchhub forum list --category "Funding Opportunities"
  researchhub forum post <user-id> --title "NSF deadlines" --content "..." --category "Funding Opportunities"
  researchhub forum vote <user-id> <post-id> upvote`,
}

var forumListCmd = &cobra.Command{
	Use:   "list",
	Short: "List forum posts",
	Args:  cobra.NoArgs,
	RunE:  runForumList,
}

var forumPostCmd = &cobra.Command{
	Use:   "post <author-id>",
	Short: "Start a new discussion",
	Args:  cobra.ExactArgs(1),
	RunE:  runForumPost,
}

var forumVoteCmd = &cobra.Command{
	Use:   "vote <user-id> <post-id> <upvote|downvote>",
	Short: "Vote on a post, replacing any earlier vote",
	Args:  cobra.ExactArgs(3),
	RunE:  runForumVote,
}

var forumListOpts struct {
	category, sort string
	limit          int
}

var forumPostOpts struct {
	title, content, category string
}

func init() {
	rootCmd.AddCommand(forumCmd)
	forumCmd.AddCommand(forumListCmd, forumPostCmd, forumVoteCmd)

	forumListCmd.Flags().StringVar(&forumListOpts.category, "category", "", "Only posts in this category")
	forumListCmd.Flags().StringVar(&forumListOpts.sort, "sort", "latest", "Sort order (latest, popular)")
	forumListCmd.Flags().IntVar(&forumListOpts.limit, "limit", 0, "Maximum number of posts (default: forum.page_size)")

	forumPostCmd.Flags().StringVar(&forumPostOpts.title, "title", "", "Post title")
	forumPostCmd.Flags().StringVar(&forumPostOpts.content, "content", "", "Post body")
	forumPostCmd.Flags().StringVar(&forumPostOpts.category, "category", "General Research", "Forum category")
	forumPostCmd.MarkFlagRequired("title")
	forumPostCmd.MarkFlagRequired("content")
}

func runForumList(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	posts, err := sess.service.ListPosts(cmd.Context(), forumListOpts.category, forumListOpts.sort, forumListOpts.limit)
	if err != nil {
		return err
	}

	return output.OutputTo(cmd.OutOrStdout(), outputFmt, posts)
}

func runForumPost(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	post, err := sess.service.CreatePost(cmd.Context(), args[0], forumPostOpts.title, forumPostOpts.content, forumPostOpts.category)
	if err != nil {
		return err
	}

	return output.OutputTo(cmd.OutOrStdout(), outputFmt, post)
}

func runForumVote(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	post, err := sess.service.Vote(cmd.Context(), args[0], args[1], database.VoteType(args[2]))
	if err != nil {
		return err
	}

	return output.OutputTo(cmd.OutOrStdout(), outputFmt, post)
}
