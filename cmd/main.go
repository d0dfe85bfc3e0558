package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/RoyceAzure/lab/checkout/internal/app"
	"github.com/RoyceAzure/lab/checkout/internal/pkg/config"
)

func main() {
	application, err := app.NewApplicationContext(config.GetConfig())
	if err != nil {
		log.Fatal(err)
		return
	}
	log.Println("checkout service ready")

	// 設置訊號監聽
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	<-sigChan
	log.Println("Received shutdown signal")

	application.Close()
	log.Println("Shutdown completed")
}
