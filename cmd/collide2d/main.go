package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/ByteArena/collide2d/internal/config"
	"github.com/ByteArena/collide2d/internal/log"
	"github.com/ByteArena/collide2d/scene"
)

var errUsage = errors.New("usage: collide2d [-format json|msgpack|text] [-workers N] scene.yaml")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	flags := flag.NewFlagSet("collide2d", flag.ContinueOnError)
	format := flags.String("format", cfg.Format, "output format: json, msgpack or text")
	workers := flags.Int("workers", cfg.Workers, "pairs evaluated concurrently")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		return errUsage
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger, err := log.New(level)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync()

	path := flags.Arg(0)
	start := time.Now()
	logger.Info("loading scene", log.String("path", path), log.String("format", *format), log.Int("workers", *workers))

	s, err := scene.LoadFile(path)
	if err != nil {
		logger.Error("load failed", log.Error(err))
		return err
	}

	report, err := s.Evaluate(ctx, scene.Options{Workers: *workers, Logger: logger.With(log.String("scene", s.Name))})
	if err != nil {
		logger.Error("evaluation failed", log.Error(err))
		return err
	}

	if err := scene.Encode(stdout, report, *format); err != nil {
		return err
	}

	logger.Info("done",
		log.Int("contacts", len(report.Contacts)),
		log.String("digest", report.Digest),
		log.Duration("elapsed", time.Since(start)),
	)

	return nil
}
