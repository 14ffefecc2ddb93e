package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cyberterm",
	Short: "Cybersecurity training terminal",
	Long: `cyberterm is a terminal tutor for cybersecurity fundamentals.

Type commands such as "topics", "lesson redes" or "quiz" to study lessons,
labs, a glossary and short quizzes. Spanish synonyms work too ("ayuda",
"temas", "examen").`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("content", "", "Path to a content catalog YAML file (overrides CYBERTERM_CONTENT)")
	rootCmd.PersistentFlags().String("log", "", "Write logs to this file (overrides CYBERTERM_LOG)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides CYBERTERM_LOG_LEVEL)")
	rootCmd.PersistentFlags().Int64("seed", 0, "Seed for random choices, 0 for a random seed (overrides CYBERTERM_SEED)")
	rootCmd.Flags().Bool("no-splash", false, "Skip the welcome screen")

	rootCmd.AddCommand(plainCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)
}
