package utils

import (
	"os"

	"github.com/pkg/errors"
)

// Check aborts on a configuration error: the error chain is printed in red and the process
// panics with err wrapped by msg.
func Check(err error, msg string) {
	if err == nil {
		return
	}

	failure := errors.Wrap(err, msg)
	PrintError(os.Stderr, failure)
	panic(failure)
}

// Assert aborts with msg when ok is false.
func Assert(ok bool, msg string) {
	if !ok {
		Check(errors.New("assertion failed"), msg)
	}
}
