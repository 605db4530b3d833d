package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"chaos-chess/config"
	"chaos-chess/engine"
	"chaos-chess/game"
	"chaos-chess/rules"
)

func main() {
	cfgPath := flag.String("config", "", "config file (default: chaos-chess/config.json in the XDG config dirs)")
	strategy := flag.String("strategy", "", "random, search or chaos")
	depth := flag.Int("depth", 0, "search depth in plies")
	seed := flag.Uint64("seed", 0, "random seed (0 = clock)")
	color := flag.String("color", "", "the human's color: white or black")
	fen := flag.String("fen", "", "start from this position instead of the initial one")
	debug := flag.Bool("debug", false, "development logging at debug level")
	saveCfg := flag.Bool("save-config", false, "write the effective settings to the user config file and exit")
	flag.Parse()

	cfg, err := loadConfig(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "strategy":
			cfg.Strategy = *strategy
		case "depth":
			cfg.SearchDepth = *depth
		case "seed":
			cfg.Seed = *seed
		case "color":
			cfg.HumanColor = *color
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if *saveCfg {
		path, err := cfg.Save()
		if err != nil {
			fmt.Fprintf(os.Stderr, "save config: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("saved", path)
		return
	}

	logger, err := newLogger(cfg, *debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	opts := game.Options{Human: cfg.Human()}
	if *fen != "" {
		start, err := rules.ParseFEN(*fen)
		if err != nil {
			logger.Fatal("bad -fen", zap.Error(err))
		}
		opts.Start = &start
	}

	rng := engine.NewRand(cfg.Seed)
	selector := engine.NewSelector(cfg.SelectorConfig(), rng, logger)
	opts.Rand = rng
	session := game.NewSession(selector, opts, logger)

	if err := newConsole(session, os.Stdout, logger).run(os.Stdin); err != nil {
		logger.Error("reading input", zap.Error(err))
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

func newLogger(cfg *config.Config, debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(cfg.Level())
	return zc.Build()
}
