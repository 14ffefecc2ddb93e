package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a content catalog against the schema and consistency rules",
	Long: `Validate a catalog YAML file. With no file, the catalog embedded in
the binary is checked. Every problem found is reported at once.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		c, err := loadCatalog(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (version %s, %d topics, %d questions, %d glossary terms)\n",
			catalogSource(path), c.Version(), len(c.Topics()), len(c.AllQuizQuestions()), len(c.Glossary()))
		return nil
	},
}
