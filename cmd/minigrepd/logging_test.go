package main

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetupLogging(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "service", "minigrepd.log")
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	require.NoError(t, SetupLogging(DefaultLogConfig(logFile)))
	log.Print("search-node test line")

	raw, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Contains(t, string(raw), "search-node test line")
}
