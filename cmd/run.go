package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/ryohji/ulisp/lisp"
	"github.com/ryohji/ulisp/parser/rdparser"
	"github.com/spf13/cobra"
)

var (
	runExpression bool
	runPrint      bool
	runTrace      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run lisp code",
	Long:  `Run lisp code provided supplied via the command line or a file.`,
	Run: func(cmd *cobra.Command, args []string) {
		sources, err := runReadSources(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		env := lisp.NewEnv(nil)
		err = lisp.InitializeUserEnv(env, envConfig()...)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for i := range sources {
			if !runSource(env, sources[i]) {
				os.Exit(1)
			}
		}
	},
}

type runSourceText struct {
	name string
	text []byte
}

// runSource evaluates every expression in src and reports whether all of them
// succeeded.  Evaluation stops at the first error.
func runSource(env *lisp.LEnv, src runSourceText) bool {
	exprs, err := rdparser.NewFromReader(src.name, bytes.NewReader(src.text)).ParseProgram()
	if err != nil {
		var lerr *lisp.Error
		if errors.As(err, &lerr) && lerr.Source != nil {
			fmt.Fprintf(os.Stderr, "%v: %v\n", lerr.Source, lerr)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		return false
	}
	for _, expr := range exprs {
		v, err := env.EvalTop(expr)
		if err != nil {
			var lerr *lisp.Error
			if runTrace && errors.As(err, &lerr) && lerr.Stack != nil {
				lerr.Stack.DebugPrint(os.Stderr)
			}
			return false
		}
		if runPrint {
			fmt.Println(lisp.Render(v))
		}
	}
	return true
}

func runReadSources(args []string) ([]runSourceText, error) {
	sources := make([]runSourceText, len(args))
	if runExpression {
		for i := range args {
			sources[i] = runSourceText{
				name: fmt.Sprintf("<expression %d>", i+1),
				text: []byte(args[i]),
			}
		}
		return sources, nil
	}
	for i, path := range args {
		b, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, err
		}
		sources[i] = runSourceText{name: path, text: b}
	}
	return sources, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print expression values to stdout")
	runCmd.Flags().BoolVar(&runTrace, "trace", false,
		"Print the call stack when evaluation fails")
}
