package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/marcfrederick/rusht/repl"
)

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Long: `Start an interactive read-eval-print loop.  Input history is persisted to
` + "``~/.rusht_history''" + ` between sessions.`,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(repl.Run(replPrompt))
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
