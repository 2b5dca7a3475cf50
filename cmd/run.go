package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [flags] FILE|EXPR...",
	Short: "Run lisp code",
	Long:  `Run lisp code provided supplied via the command line or a file.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		exprs, err := runReadExpressions(args)
		if err != nil {
			return err
		}

		rt, err := newRuntime()
		if err != nil {
			return err
		}
		defer func() {
			if cerr := rt.Close(); err == nil {
				err = cerr
			}
		}()
		for i := range exprs {
			v, err := rt.EvalSource(exprs[i].name, exprs[i].src)
			if err != nil {
				return err
			}
			if runPrint {
				rt.Format(os.Stdout, v)
				fmt.Println()
			}
		}
		return nil
	},
}

type runSource struct {
	name string
	src  []byte
}

func runReadExpressions(args []string) ([]runSource, error) {
	exprs := make([]runSource, len(args))
	if runExpression {
		for i := range args {
			exprs[i] = runSource{fmt.Sprintf("expr%d", i+1), []byte(args[i])}
		}
		return exprs, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		exprs[i] = runSource{path, b}
	}
	return exprs, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
}
