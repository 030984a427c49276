package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexflint/go-arg"
	"github.com/drakos74/shopping/infra/config"
	"github.com/drakos74/shopping/internal/metrics"
	"github.com/drakos74/shopping/internal/pipeline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type args struct {
	Data     string  `arg:"positional,required" help:"csv file of shopping sessions"`
	Config   string  `arg:"--config" help:"json run config"`
	Model    string  `arg:"--model" help:"classifier: knn, forest or majority"`
	Seed     *uint64 `arg:"--seed" help:"seed of the train/test split, 0 seeds from the clock"`
	Stratify bool    `arg:"--stratify" help:"keep the purchase ratio in both sets"`
	Report   string  `arg:"--report" help:"directory for the json report of the run"`
	Metrics  string  `arg:"--metrics" help:"file for the prometheus metrics of the run"`
	Verbose  bool    `arg:"-v,--verbose" help:"debug logging"`
}

func (args) Description() string {
	return "Predicts whether a shopping session ends with a purchase."
}

// apply overrides the config with the flags given on the command line.
func (a args) apply(cfg config.Config) config.Config {
	if a.Model != "" {
		cfg.Model = a.Model
	}
	if a.Seed != nil {
		cfg.Seed = *a.Seed
	}
	if a.Stratify {
		cfg.Stratify = true
	}
	return cfg
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	program := filepath.Base(argv[0])

	var a args
	parser, err := arg.NewParser(arg.Config{Program: program}, &a)
	if err != nil {
		fmt.Fprintf(stderr, "could not create argument parser: %s\n", err.Error())
		return 1
	}
	err = parser.Parse(argv[1:])
	if errors.Is(err, arg.ErrHelp) {
		parser.WriteHelp(stdout)
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Usage: %s data\n", program)
		return 1
	}

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if a.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: stderr})

	cfg, err := config.Load(a.Config)
	if err != nil {
		log.Error().Err(err).Msg("could not load config")
		return 1
	}

	p, err := pipeline.New(a.apply(cfg))
	if err != nil {
		log.Error().Err(err).Msg("invalid config")
		return 1
	}

	result, err := p.Run(context.Background(), a.Data)
	if err != nil {
		log.Error().Err(err).Str("file", a.Data).Msg("could not evaluate sessions")
		return 1
	}

	if err := result.Print(stdout); err != nil {
		log.Error().Err(err).Msg("could not print result")
		return 1
	}

	if a.Report != "" {
		if err := result.Save(a.Report); err != nil {
			log.Error().Err(err).Str("dir", a.Report).Msg("could not save report")
			return 1
		}
	}

	if a.Metrics != "" {
		m := metrics.New()
		m.Observe(result.Metrics())
		if err := m.Write(a.Metrics); err != nil {
			log.Error().Err(err).Msg("could not write metrics")
			return 1
		}
	}

	return 0
}
