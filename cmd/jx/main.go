package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jacoelho/jx/internal/config"
	"github.com/jacoelho/jx/internal/exit"
	"github.com/jacoelho/jx/internal/formatter/stdout"
	"github.com/jacoelho/jx/internal/runner"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	cancel()
	os.Exit(exitCode)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdoutW, stderrW io.Writer) int {
	cfg, exitResult := config.Parse(args)
	if exitResult != nil {
		exitResult.Print(stdoutW, stderrW)
		return exitResult.ExitCode
	}

	r := runner.New(cfg,
		runner.WithStdin(stdin),
		runner.WithLogger(newLogger(stderrW, cfg.Debug)),
		runner.WithFormatter(stdout.NewWithWriter(stdoutW, cfg.Compact)),
	)

	if exitResult := r.Run(ctx); exitResult != nil {
		exitResult.Print(stdoutW, stderrW)
		return exitResult.ExitCode
	}
	return exit.CodeSuccess
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
