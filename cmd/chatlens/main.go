package main

import (
	"context"
	goerrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	apperrors "chat-lens/errors"
)

func main() {
	if err := run(); err != nil {
		if goerrors.Is(err, apperrors.ErrEmptyTranscript) {
			err = fmt.Errorf("no messages found")
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run keeps every defer of the command tree ahead of os.Exit.
func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCommand().ExecuteContext(ctx)
}
