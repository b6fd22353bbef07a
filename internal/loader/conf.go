package loader

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/harrison/boostcfg/internal/diagnostic"
	"github.com/harrison/boostcfg/internal/params"
)

// ConfLoader reads one key=value pair per line. Everything after '#' is a
// comment and blank lines are skipped.
type ConfLoader struct{}

// Load implements Loader.
func (l *ConfLoader) Load(r io.Reader, raw *params.RawSet, rep *diagnostic.Reporter) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		addConfLine(scanner.Text(), raw, rep)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read content: %w", err)
	}
	return nil
}

func addConfLine(line string, raw *params.RawSet, rep *diagnostic.Reporter) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	if line = strings.TrimSpace(line); line != "" {
		raw.AddToken(line, rep)
	}
}
