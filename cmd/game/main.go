package main

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"

	"starlane/internal/config"
	"starlane/internal/game"
)

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	opts := game.Options{
		Seed: config.GetEnvInt64("STARLANE_SEED", 0),
	}
	if err := game.Run(reader, os.Stdout, opts); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
