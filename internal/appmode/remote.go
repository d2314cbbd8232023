package appmode

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/processor"
	"github.com/UnendingLoop/minigrep/internal/reader"
	"github.com/docker/distribution/uuid"
)

var (
	ErrNodeUnavailable  = errors.New("search-node is not available")
	ErrForeignResult    = errors.New("search-node answered with a result for another task")
	ErrChecksumMismatch = errors.New("search-node result doesn't match its checksum")
)

const (
	pingTimeout = 5 * time.Second
	taskTimeout = 1 * time.Minute
)

// RunRemote sends the search to cfg.Node and prints its verified result.
func RunRemote(ctx context.Context, cfg *model.Config, out io.Writer) error {
	document, err := reader.ReadDocument(cfg.FileName)
	if err != nil {
		return err
	}

	node := strings.TrimSuffix(cfg.Node, "/")
	client := &http.Client{}

	// проверить пингом, что нода доступна
	if err := checkNodeHealth(ctx, client, node); err != nil {
		return err
	}

	task := model.SearchTask{
		TaskID:        uuid.Generate().String(),
		Query:         cfg.Query,
		Document:      document,
		CaseSensitive: cfg.CaseSensitive,
	}

	result, err := sendTaskToNode(ctx, client, node, &task)
	if err != nil {
		return err
	}

	// печатаем только проверенный результат
	return printLines(out, result.Output)
}

func checkNodeHealth(ctx context.Context, client *http.Client, node string) error {
	rCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(rCtx, http.MethodGet, node+"/ping", nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNodeUnavailable, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNodeUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: ping returned %d", ErrNodeUnavailable, resp.StatusCode)
	}
	return nil
}

func sendTaskToNode(ctx context.Context, client *http.Client, node string, task *model.SearchTask) (*model.SearchResult, error) {
	raw, err := json.Marshal(task)
	if err != nil {
		return nil, fmt.Errorf("failed to MARSHAL task: %w", err)
	}

	tCtx, cancel := context.WithTimeout(ctx, taskTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(tCtx, http.MethodPost, node+"/task", bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to SEND task to search-node %q: %w", node, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to SEND task to search-node %q: %w", node, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("search-node %q rejected task: %d %s", node, resp.StatusCode, bytes.TrimSpace(msg))
	}

	var result model.SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to UNMARSHAL result from search-node %q: %w", node, err)
	}

	if result.TaskID != task.TaskID {
		return nil, fmt.Errorf("%w: want %q, got %q", ErrForeignResult, task.TaskID, result.TaskID)
	}
	if processor.Checksum(result.Output) != result.HashSumm {
		return nil, ErrChecksumMismatch
	}

	return &result, nil
}
