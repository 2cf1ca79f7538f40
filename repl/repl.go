package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/marcfrederick/rusht/interpreter"
	"github.com/marcfrederick/rusht/lisp"
)

const historyFileName = ".rusht_history"

// Run reads expressions interactively until EOF, evaluating each line
// against a single session and printing the result or the error
// description.  The returned value is the process exit status requested by
// the exit builtin, or 0 on normal EOF.
func Run(prompt string) int {
	in := interpreter.New()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:      prompt,
		HistoryFile: historyFile(),
	})
	if err != nil {
		errln(err)
		return 1
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			if err != io.EOF {
				errln(err)
			}
			return 0
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		v, err := in.Eval(line)
		if err != nil {
			var term *lisp.Terminate
			if errors.As(err, &term) {
				return term.Status
			}
			errln(err)
			continue
		}
		fmt.Println(v)
	}
}

// historyFile returns the path used to persist interactive history, or the
// empty string (disabling persistence) when no home directory is available.
func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		logrus.WithError(err).Debug("history persistence disabled")
		return ""
	}
	return filepath.Join(home, historyFileName)
}

func errln(v ...interface{}) {
	fmt.Fprintln(os.Stderr, v...)
}
