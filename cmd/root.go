package cmd

import (
	"fmt"
	"os"

	"github.com/luthersystems/lc/internal/rcfile"
	"github.com/luthersystems/lc/lisp"
	"github.com/luthersystems/lc/parser"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	traceGC bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lc",
	Short: "A small lisp interpreter",
	Long: `lc is a small lisp with closures, two-phase macros, fixed capacity
dicts and a mark and sweep garbage collector.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().  It only needs to happen
// once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"YAML file with runtime settings")
	rootCmd.PersistentFlags().BoolVar(&traceGC, "trace-gc", false,
		"Log every garbage collection to stderr")
}

// newRuntime returns a runtime configured from the rc file and flags.  The
// caller must Close the runtime.
func newRuntime() (*lisp.Runtime, error) {
	configs := []lisp.Config{lisp.WithReader(parser.NewReader())}
	if cfgFile != "" {
		rc, err := rcfile.Load(cfgFile)
		if err != nil {
			return nil, err
		}
		configs = append(configs, rc.Configs()...)
	}
	if traceGC {
		configs = append(configs, lisp.WithGCTrace(true))
	}
	rt, err := lisp.New(configs...)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return rt, nil
}
