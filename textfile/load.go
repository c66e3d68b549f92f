package textfile

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/strs"
)

// Load reads a file, which must be a text file, and returns its lines.
//
// Lines are terminated by '\n'; a '\r' preceding it is removed as well.
// A final line terminator does not produce an empty last line.
func Load(name string) ([]string, error) {
	content, err := readFile(name)
	if err != nil {
		return nil, err
	}
	return splitLines(content), nil
}

// readFile opens an OS file and reads it, checking for error conditions.
func readFile(name string) ([]byte, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("textfile: %s is not a regular file: %w", name, strs.ErrInvalidArgument)
	}
	content, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("textfile: error loading %s: %w", name, err)
	}
	tracer().Debugf("loaded %d bytes from %s", len(content), name)
	return content, nil
}

func splitLines(content []byte) []string {
	if len(content) == 0 {
		return []string{}
	}
	lines := strs.Split(content, '\n')
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
