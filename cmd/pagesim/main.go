// Command pagesim runs page replacement simulations
// and prints a fault summary per policy.
//
// Usage:
//
//	pagesim -frames 3 -sequence 1,2,3,4,1,2,5,1,2,3,4,5 -policies fifo,lru,optimal
//	pagesim -config simulation.toml -trace
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/djdv/go-pagesim"
	"github.com/djdv/go-pagesim/internal/config"
	"github.com/djdv/go-pagesim/internal/logger"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(stderr, "pagesim:", err)
		return 2
	}
	log := logger.New(logger.Config{
		Output: stderr,
		Level:  cfg.LogLevel,
	})
	entry := log.WithField("run", uuid.New())
	entry.WithFields(logrus.Fields{
		"frames":     cfg.Frames,
		"references": len(cfg.Sequence),
		"policies":   cfg.Policies,
	}).Debug("starting simulation")
	options := []pagesim.Option{}
	if cfg.Sequential {
		options = append(options, pagesim.Sequential())
	}
	if cfg.Progress {
		options = append(options, pagesim.Observe(progress(entry, len(cfg.Sequence))))
	}
	results, err := pagesim.RunMany(cfg.Policies, cfg.Frames, cfg.Sequence, options...)
	if err != nil {
		entry.WithError(err).Error("simulation failed")
		fmt.Fprintln(stderr, "pagesim:", err)
		return 1
	}
	entry.WithField("policies", len(results)).Info("simulation complete")
	if err := writeReport(stdout, cfg, results); err != nil {
		entry.WithError(err).Error("writing report")
		return 1
	}
	return 0
}

func parseArgs(args []string, stderr io.Writer) (config.Config, error) {
	var (
		cfg        = config.Default()
		flags      = flag.NewFlagSet("pagesim", flag.ContinueOnError)
		configPath = flags.String("config", "", "path to a `.toml` or `.ini` config file")
		frames     = flags.Int("frames", 0, "number of physical frames")
		sequence   = flags.String("sequence", "", "page references, comma or space separated")
		policies   = flags.String("policies", "all", "comma separated policies (fifo, lru, optimal, clock, all)")
		sequential = flags.Bool("sequential", false, "run policies one after another")
		trace      = flags.Bool("trace", false, "print the cumulative fault trace")
		progress   = flags.Bool("progress", false, "log every reference at debug level")
		logLevel   = flags.String("log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	)
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		return cfg, err
	}
	if *configPath != "" {
		if err := cfg.Load(*configPath); err != nil {
			return cfg, err
		}
	}
	// Explicit flags take precedence over the config file.
	var err error
	flags.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "frames":
			cfg.Frames = *frames
		case "sequence":
			cfg.Sequence, err = config.ParseSequence(*sequence)
		case "policies":
			cfg.Policies, err = config.ParsePolicies(strings.Split(*policies, ",")...)
		case "sequential":
			cfg.Sequential = *sequential
		case "trace":
			cfg.Trace = *trace
		case "progress":
			cfg.Progress = *progress
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err == nil && flags.NArg() > 0 {
		err = errors.Errorf("unexpected arguments: %v", flags.Args())
	}
	return cfg, err
}

func progress(log *logrus.Entry, references int) pagesim.Observer {
	return func(policy pagesim.Policy, step pagesim.Step) {
		log.WithFields(logrus.Fields{
			"policy": policy,
			"step":   fmt.Sprintf("%d/%d", step.Index+1, references),
			"fault":  step.Fault,
			"faults": step.Faults,
		}).Debug("reference")
	}
}
