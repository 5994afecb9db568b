package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hasbyte1/go-collection-idioms/cmd/idioms/commands"
)

func main() {
	log.SetPrefix("[IDIOMS] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := commands.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
