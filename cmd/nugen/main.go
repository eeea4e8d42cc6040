package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/GoSim-25-26J-441/nutruth/internal/generator"
	"github.com/GoSim-25-26J-441/nutruth/internal/metrics"
	"github.com/GoSim-25-26J-441/nutruth/pkg/config"
	"github.com/GoSim-25-26J-441/nutruth/pkg/logger"
	"github.com/GoSim-25-26J-441/nutruth/pkg/models"
	"github.com/GoSim-25-26J-441/nutruth/pkg/utils"
)

type options struct {
	configPath string
	logLevel   string
	events     int
	seed       int64
	dump       bool
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "generator config YAML (defaults used when empty)")
	flag.StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	flag.IntVar(&opts.events, "events", 0, "number of interactions override")
	flag.Int64Var(&opts.seed, "seed", 0, "random seed override")
	flag.BoolVar(&opts.dump, "dump", false, "print every record to stdout")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, os.Stdout); err != nil {
		logger.Error("nugen failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, out io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logger.SetDefault(logger.NewText(cfg.LogLevel, os.Stderr))
	log := logger.With("run_id", utils.GenerateRunID())

	log.Info("generating interactions", "events", cfg.Events, "workers", cfg.Workers,
		"seed", cfg.Seed, "beam_pdg", cfg.Beam.PDG)

	set, err := generator.New(cfg).Generate(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			log.Warn("generation cancelled")
		}
		return err
	}

	if err := models.CheckHierarchy(set); err != nil {
		log.Warn("hierarchy check failed", "error", err)
	}

	if opts.dump {
		if err := dumpSet(out, set); err != nil {
			return fmt.Errorf("dump records: %w", err)
		}
	}

	log.Info("generation finished", metrics.Summarize(set).LogArgs()...)
	return nil
}

func loadConfig(opts options) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := config.LoadConfig(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.events > 0 {
		cfg.Events = opts.events
	}
	if opts.seed != 0 {
		cfg.Seed = opts.seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func dumpSet(w io.Writer, set *models.NeutrinoSet) error {
	if _, err := fmt.Fprintf(w, "NeutrinoSet (%d records)\n", set.Len()); err != nil {
		return err
	}
	for i, rec := range set.All() {
		if _, err := fmt.Fprintf(w, "[%d]\n%s", i, rec.Dump()); err != nil {
			return err
		}
	}
	return nil
}
