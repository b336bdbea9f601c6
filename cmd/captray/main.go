// Package main is the entry point for the captray command line tool.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ytget/captray/cmd/captray/commands"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli := commands.New(version, os.Stdout)
	cli.SetArgs(args)

	if err := cli.Execute(ctx); err != nil {
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	return 0
}
