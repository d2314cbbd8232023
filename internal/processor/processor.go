// Package processor runs a search task and hands the checksummed result back to the transport layer
package processor

import (
	"context"

	"github.com/UnendingLoop/minigrep/internal/matcher"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/cespare/xxhash/v2"
)

type Processor struct{}

func (p Processor) ProcessInput(ctx context.Context, task *model.SearchTask) *model.SearchResult {
	result := model.SearchResult{
		TaskID: task.TaskID,
		Output: []string{},
	}

	// клиент уже ушел - не тратим время на поиск
	if ctx.Err() == nil {
		result.Output = matcher.Search(task.Query, task.Document, task.CaseSensitive)
	}

	// считаем общий хеш
	result.HashSumm = Checksum(result.Output)

	return &result
}

// Checksum is the xxhash64 digest of lines, each terminated by '\n',
// so that ["ab"] and ["a", "b"] differ.
func Checksum(lines []string) uint64 {
	hs := xxhash.New()
	for _, s := range lines {
		_, _ = hs.WriteString(s)
		_, _ = hs.WriteString("\n")
	}
	return hs.Sum64()
}
