package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/marcfrederick/rusht/interpreter"
	"github.com/marcfrederick/rusht/lisp"
)

var (
	runExpression bool
	runPrint      bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run rusht code",
	Long:  `Run rusht code supplied via the command line or a file.`,
	Run: func(cmd *cobra.Command, args []string) {
		exprs, err := runReadExpressions(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		in := interpreter.New()
		var last *lisp.LVal
		for i := range exprs {
			logrus.WithField("bytes", len(exprs[i])).Debug("evaluating program")
			vals, err := in.EvalProgram(exprs[i])
			for _, v := range vals {
				last = v
				if runPrint {
					fmt.Println(v)
				}
			}
			if err != nil {
				var term *lisp.Terminate
				if errors.As(err, &term) {
					os.Exit(term.Status)
				}
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
		if !runPrint && last != nil {
			fmt.Println(last)
		}
	},
}

// runReadExpressions returns the program sources named by args, either
// verbatim expressions or the contents of script files.
func runReadExpressions(args []string) ([]string, error) {
	exprs := make([]string, len(args))
	if runExpression {
		copy(exprs, args)
		return exprs, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read program from file")
		}
		exprs[i] = string(b)
	}
	return exprs, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Here flags for the run command are defined
	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as rusht expressions")
	runCmd.Flags().BoolVarP(&runPrint, "print", "p", false,
		"Print every top-level value instead of only the last")
}
