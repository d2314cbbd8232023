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
	log.SetFlags(0)

	// параметры запуска: позиционные аргументы + окружение
	cfg, err := parser.InitConfig(os.Args[1:], os.LookupEnv)
	if err != nil {
		log.Printf("Problem parsing arguments: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case cfg.Remote():
		err = appmode.RunRemote(ctx, cfg, os.Stdout)
	default:
		err = appmode.RunLocal(cfg, os.Stdout)
	}

	if err != nil {
		log.Printf("Application error: %v", err)
		stop()
		os.Exit(1)
	}
}
