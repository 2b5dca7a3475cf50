package cmd

import (
	"os"

	"github.com/luthersystems/lc/repl"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var replPrompt string

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Start an interactive session.  When standard input is not a terminal
all of it is evaluated as one program and the final value is printed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer func() {
			if cerr := rt.Close(); err == nil {
				err = cerr
			}
		}()
		fd := os.Stdin.Fd()
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			err = repl.RunRepl(rt, replPrompt)
		} else {
			err = repl.RunStream(rt, os.Stdin, os.Stdout)
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().StringVar(&replPrompt, "prompt", "lc> ",
		"Prompt shown before each expression")
}
