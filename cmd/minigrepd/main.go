package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnendingLoop/minigrep/internal/appmode"
	"github.com/UnendingLoop/minigrep/internal/parser"
)

func main() {
	param, err := parser.InitNodeParam(os.Args[1:])
	if err != nil {
		log.Printf("Failed to launch minigrepd: %q", err.Error())
		os.Exit(1)
	}

	if param.LogFile != "" {
		if err := SetupLogging(DefaultLogConfig(param.LogFile)); err != nil {
			log.Printf("Failed to set up log file %q: %v", param.LogFile, err)
			os.Exit(1)
		}
	}

	// готовим слушатель прерываний - контекст для всего приложения
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appmode.RunNode(ctx, stop, param)
}
