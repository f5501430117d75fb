package utils

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/ttacon/chalk"
)

// FailWith prints the error chain of a fatal error and exits the process.
func FailWith(err error) {
	PrintError(os.Stderr, err)
	os.Exit(1)
}

// WarnWith prints a non fatal error.
func WarnWith(err error) {
	fmt.Fprintln(os.Stderr, chalk.Yellow.Color("Warning: "+err.Error()))
}

func PrintError(w io.Writer, err error) {
	command := strings.Join(os.Args, " ")

	fmt.Fprintln(w, "")
	fmt.Fprintln(w, chalk.Red.Color("An error occurred while running: "+command))
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, err.Error())

	if cause := errors.Cause(err); cause != err {
		fmt.Fprintln(w, "  caused by: "+cause.Error())
	}
}
