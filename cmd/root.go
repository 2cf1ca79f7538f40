package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/marcfrederick/rusht/repl"
)

const replPrompt = "rusht> "

var rootDebug bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "rusht",
	Short: "Interpreter for the rusht expression language",
	Long: `rusht evaluates parenthesized prefix expressions with dynamically typed
atoms, first-class functions, and variable binding.  Without arguments an
interactive session is started.`,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(repl.Run(replPrompt))
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().BoolVar(&rootDebug, "debug", false,
		"Enable debug logging")
}

func initLogging() {
	if rootDebug {
		logrus.SetLevel(logrus.DebugLevel)
	}
}
