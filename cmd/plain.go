package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/cyberterm/internal/session"
)

var plainCmd = &cobra.Command{
	Use:   "plain",
	Short: "Run the terminal in line mode without the full-screen UI",
	Long: `Read commands from standard input and print responses as plain text.

Useful for screen readers, scripts and terminals without full-screen support.
End the session with Ctrl+D.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup(cmd)
		if err != nil {
			return err
		}
		defer rt.close()

		return runPlain(rt.newSession(), cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// runPlain drives sess line by line until in is exhausted.
func runPlain(sess *session.Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for _, e := range sess.History() {
		writeLines(out, e.Lines)
	}
	fmt.Fprintln(out)

	for {
		fmt.Fprint(out, sess.Prompt())
		if !scanner.Scan() {
			fmt.Fprintln(out)
			break
		}
		turn, ok := sess.Submit(scanner.Text())
		if !ok {
			continue
		}
		writeLines(out, turn.Output)
		fmt.Fprintln(out)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	fmt.Fprintln(out, "Session ended. "+sess.Stats().StatusLine())
	return nil
}

func writeLines(out io.Writer, lines []string) {
	if len(lines) > 0 {
		fmt.Fprintln(out, strings.Join(lines, "\n"))
	}
}
