package cmd

import (
	"fmt"
	"os"

	"github.com/ryohji/ulisp/lisp"
	"github.com/ryohji/ulisp/repl"
	"github.com/spf13/cobra"
)

var (
	rootPrompt         string
	rootMaxStackHeight int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ulisp",
	Short: "A minimal lisp interpreter",
	Long: `ulisp evaluates expressions of a minimal lisp with eight special
operators: quote, cons, atom, car, cdr, set, cond and lambda.

Without a subcommand ulisp starts an interactive session when standard input
is a terminal.  Otherwise it evaluates standard input and prints the value of
each expression.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if repl.IsTerminal() {
			return repl.RunRepl(rootPrompt, lisp.WithMaximumStackHeight(rootMaxStackHeight))
		}
		env := lisp.NewEnv(nil)
		err := lisp.InitializeUserEnv(env, envConfig()...)
		if err != nil {
			return err
		}
		return repl.RunStream(env, "stdin", os.Stdin, os.Stdout)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main(). It only needs to happen once
// to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envConfig() []lisp.Config {
	return []lisp.Config{
		lisp.WithStderr(os.Stderr),
		lisp.WithMaximumStackHeight(rootMaxStackHeight),
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootPrompt, "prompt", repl.DefaultPrompt,
		"Prompt shown by the interactive session")
	rootCmd.PersistentFlags().IntVar(&rootMaxStackHeight, "max-stack-height", 0,
		"Maximum depth of nested function applications (0 is unlimited)")
}
