package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/cyberterm/internal/content"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List catalog topics (optionally filtered by a search term)",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.close()

		search, _ := cmd.Flags().GetString("search")
		return printTopics(cmd.OutOrStdout(), rt.catalog, search)
	},
}

func init() {
	topicsCmd.Flags().String("search", "", "Only list topics matching this keyword")
}

func printTopics(out io.Writer, c *content.Catalog, search string) error {
	topics := c.Topics()
	if search != "" {
		topics = c.SearchTopics(search)
		if len(topics) == 0 {
			return fmt.Errorf("no topics found for %q", search)
		}
	}

	// Header.
	fmt.Fprintf(out, "%-14s  %-40s  %4s  %4s  %s\n", "ID", "Title", "Labs", "Quiz", "Aliases")
	fmt.Fprintln(out, strings.Repeat("─", 90))

	for _, t := range topics {
		fmt.Fprintf(out, "%-14s  %-40s  %4d  %4d  %s\n",
			t.ID, truncate(t.Title, 40), len(t.Labs), len(t.Quiz), strings.Join(t.Aliases, ", "))
	}

	fmt.Fprintf(out, "\n%d topics (catalog %s)\n", len(topics), c.Version())
	return nil
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
