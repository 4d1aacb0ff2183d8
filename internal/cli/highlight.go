package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/research-connect/internal/output"
)

var highlightCmd = &cobra.Command{
	Use:   "highlight",
	Short: "Browse and publish research highlights",
	Long: `Research highlights showcase recent work from across campus.
Publishing and featuring highlights is limited to administrators.

Examples:
  researchhub highlight list --featured
  researchhub highlight search quantum
  researchhub highlight add <admin-id> --title "..." --summary "..." --contributors "Dr. Lee, J. Park"
  researchhub highlight feature <admin-id> <highlight-id>
  researchhub highlight feature <admin-id> <highlight-id> --off`,
}

var highlightListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent highlights",
	Args:  cobra.NoArgs,
	RunE:  runHighlightList,
}

var highlightSearchCmd = &cobra.Command{
	Use:   "search <keyword>",
	Short: "Search highlights by title, summary or contributors",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runHighlightSearch,
}

var highlightAddCmd = &cobra.Command{
	Use:   "add <admin-id>",
	Short: "Publish a research highlight",
	Args:  cobra.ExactArgs(1),
	RunE:  runHighlightAdd,
}

var highlightFeatureCmd = &cobra.Command{
	Use:   "feature <admin-id> <highlight-id>",
	Short: "Feature or unfeature a highlight",
	Args:  cobra.ExactArgs(2),
	RunE:  runHighlightFeature,
}

var highlightOpts struct {
	featured     bool
	limit        int
	title        string
	summary      string
	contributors string
	off          bool
}

func init() {
	rootCmd.AddCommand(highlightCmd)
	highlightCmd.AddCommand(highlightListCmd, highlightSearchCmd, highlightAddCmd, highlightFeatureCmd)

	highlightListCmd.Flags().BoolVar(&highlightOpts.featured, "featured", false, "Only featured highlights")
	highlightListCmd.Flags().IntVar(&highlightOpts.limit, "limit", 0, "Maximum number of results (default: highlights.page_size)")
	highlightSearchCmd.Flags().IntVar(&highlightOpts.limit, "limit", 0, "Maximum number of results")

	highlightAddCmd.Flags().StringVar(&highlightOpts.title, "title", "", "Headline")
	highlightAddCmd.Flags().StringVar(&highlightOpts.summary, "summary", "", "Short summary of the work")
	highlightAddCmd.Flags().StringVar(&highlightOpts.contributors, "contributors", "", "People involved")
	highlightAddCmd.Flags().BoolVar(&highlightOpts.featured, "featured", false, "Feature immediately")
	highlightAddCmd.MarkFlagRequired("title")
	highlightAddCmd.MarkFlagRequired("summary")
	highlightAddCmd.MarkFlagRequired("contributors")

	highlightFeatureCmd.Flags().BoolVar(&highlightOpts.off, "off", false, "Remove the featured mark instead")
}

func runHighlightList(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	highlights, err := sess.service.ListHighlights(cmd.Context(), highlightOpts.featured, highlightOpts.limit)
	if err != nil {
		return err
	}

	return output.OutputTo(cmd.OutOrStdout(), outputFmt, highlights)
}

func runHighlightSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	highlights, err := sess.service.SearchHighlights(cmd.Context(), query, highlightOpts.limit)
	if err != nil {
		return err
	}

	if len(highlights) == 0 && outputFmt != "json" {
		fmt.Fprintf(cmd.OutOrStdout(), "No highlights found matching: %s\n", query)
		return nil
	}

	return output.OutputTo(cmd.OutOrStdout(), outputFmt, highlights)
}

func runHighlightAdd(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	h, err := sess.service.CreateHighlight(cmd.Context(), args[0],
		highlightOpts.title, highlightOpts.summary, highlightOpts.contributors, highlightOpts.featured)
	if err != nil {
		return err
	}

	return output.OutputTo(cmd.OutOrStdout(), outputFmt, h)
}

func runHighlightFeature(cmd *cobra.Command, args []string) error {
	sess, err := openSession()
	if err != nil {
		return err
	}
	defer sess.Close()

	h, err := sess.service.SetFeatured(cmd.Context(), args[0], args[1], !highlightOpts.off)
	if err != nil {
		return err
	}

	return output.OutputTo(cmd.OutOrStdout(), outputFmt, h)
}
