package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/lgulich/dotfiles/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	go func() {
		// Restore default handling so a second Ctrl-C terminates immediately.
		<-ctx.Done()
		stop()
	}()

	code := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
