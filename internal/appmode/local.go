// Package appmode provides the run modes of the app: local search, search delegated to a node, and the search node itself
package appmode

import (
	"bufio"
	"io"

	"github.com/UnendingLoop/minigrep/internal/matcher"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/reader"
)

// RunLocal reads cfg.FileName and writes every matching line to out.
// Nothing is written if the file can't be read.
func RunLocal(cfg *model.Config, out io.Writer) error {
	document, err := reader.ReadDocument(cfg.FileName)
	if err != nil {
		return err
	}

	return printLines(out, matcher.Search(cfg.Query, document, cfg.CaseSensitive))
}

func printLines(out io.Writer, lines []string) error {
	w := bufio.NewWriter(out)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}
	return w.Flush()
}
