package appmode

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/processor"
	"github.com/UnendingLoop/minigrep/internal/transport"
)

const shutdownTimeout = 5 * time.Second

// RunNode serves search tasks on param.Address until ctx is done.
func RunNode(ctx context.Context, stop context.CancelFunc, param *model.NodeParam) {
	// получить экземпляр сервера
	srv := transport.NewNodeServer(param.Address, processor.Processor{})

	// запуск сервера
	go func() {
		log.Printf("Search-node running on %s", srv.Addr)
		err := srv.ListenAndServe()
		if err != nil {
			switch {
			case errors.Is(err, http.ErrServerClosed):
				log.Println("Server gracefully stopping...")
			default:
				log.Printf("Server stopped: %v", err)
				stop()
			}
		}
	}()

	<-ctx.Done()

	// Закрытие всех соединений сервера
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Failed to shutdown search-node %q correctly: %q", param.Address, err.Error())
	} else {
		log.Printf("Search-node %q server is closed.", param.Address)
	}
}
