package utils

import (
	"bufio"
	"io"
	"strings"
)

// ReadFullLine reads one line whatever its length, without the line terminator.
// io.EOF is only returned when nothing was read.
func ReadFullLine(r *bufio.Reader) (string, error) {
	line, readErr := r.ReadString('\n')

	if readErr != nil && readErr != io.EOF {
		return "", readErr
	}

	if readErr == io.EOF && len(line) == 0 {
		return "", io.EOF
	}

	return strings.TrimRight(line, "\r\n"), nil
}
