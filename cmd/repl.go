package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
)

const replHelp = `Type a formula to evaluate it, or one of:
  :help   show this message
  :clear  clear the screen
  :quit   leave (Ctrl-D works too)`

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Evaluate formulas interactively",
		Args:  cobra.NoArgs,
		RunE: a.closing(func(cmd *cobra.Command, args []string) error {
			var historyFile string
			if home, err := os.UserHomeDir(); err == nil {
				historyFile = filepath.Join(home, ".tautology_history")
			}
			rl, err := readline.NewEx(&readline.Config{
				Prompt:      "wff> ",
				HistoryFile: historyFile,
				Stdout:      cmd.OutOrStdout(),
				Stderr:      cmd.ErrOrStderr(),
			})
			if err != nil {
				return fmt.Errorf("could not start line editor: %v", err)
			}
			defer rl.Close()
			return a.repl(rl.Readline, rl.Stdout())
		}),
	}
}

// repl reads lines with readLine until it fails, evaluating each formula and writing the results on w.
func (a *app) repl(readLine func() (string, error), w io.Writer) error {
	fmt.Fprintln(w, replHelp)
	for {
		line, err := readLine()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch line = strings.TrimSpace(line); line {
		case "":
			continue
		case ":quit", ":q":
			return nil
		case ":help":
			fmt.Fprintln(w, replHelp)
		case ":clear":
			fmt.Fprint(w, "\033[H\033[2J")
		default:
			// Rejected formulas were displayed: keep going.
			if err := a.evaluate(w, line); err != nil && !errors.Is(err, ErrRejected) {
				return err
			}
		}
	}
}
