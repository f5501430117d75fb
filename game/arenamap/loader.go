package arenamap

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/bytearena/gridarena/common/utils"
	"github.com/pkg/errors"
)

// ParseGrid reads grid rows from r. Trailing spaces and blank lines are dropped.
func ParseGrid(r io.Reader) ([]string, error) {
	reader := bufio.NewReader(r)
	rows := make([]string, 0)

	for {
		line, err := utils.ReadFullLine(reader)
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, errors.Wrap(err, "could not read grid")
		}

		line = strings.TrimRight(line, " \t")
		if line == "" {
			continue
		}

		rows = append(rows, line)
	}

	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}

	return rows, nil
}

func ParseGridFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open map file "+path)
	}
	defer f.Close()

	rows, err := ParseGrid(f)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse map file "+path)
	}

	return rows, nil
}
