// simbench runs a batch of simulations for one compiled genome and prints
// aggregate statistics. Configuration comes from CARDSIM_* environment
// variables, overridable by flags.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"
	"github.com/golang/glog"

	"github.com/deckforge/cardsim/ai"
	"github.com/deckforge/cardsim/genome"
	"github.com/deckforge/cardsim/simulation"
)

type config struct {
	GenomePath string `env:"CARDSIM_GENOME"`
	Games      int    `env:"CARDSIM_GAMES" envDefault:"1000"`
	Workers    int    `env:"CARDSIM_WORKERS" envDefault:"0"`
	Seed       uint64 `env:"CARDSIM_SEED" envDefault:"42"`
	AI         string `env:"CARDSIM_AI" envDefault:"random"`
	Iterations int    `env:"CARDSIM_SEARCH_ITERATIONS" envDefault:"0"`
	Serial     bool   `env:"CARDSIM_SERIAL" envDefault:"false"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	flag.StringVar(&cfg.GenomePath, "genome", cfg.GenomePath, "path to a compiled genome file (empty = builtin war genome)")
	flag.IntVar(&cfg.Games, "games", cfg.Games, "number of games to simulate")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "worker count (0 = one per CPU)")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "base random seed")
	flag.StringVar(&cfg.AI, "ai", cfg.AI, "strategy: random, greedy, weak, medium, strong")
	flag.IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "search iteration override (0 = tier default)")
	flag.BoolVar(&cfg.Serial, "serial", cfg.Serial, "run the batch serially")
	flag.Parse()
	defer glog.Flush()

	g, err := loadGenome(cfg.GenomePath)
	if err != nil {
		glog.Exitf("load genome: %v", err)
	}
	for _, verr := range genome.Validate(g) {
		glog.Warningf("genome %d: %v", g.ID, verr)
	}

	kind, err := parseKind(cfg.AI)
	if err != nil {
		glog.Exit(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := simulation.BatchOptions{
		NumGames:         cfg.Games,
		DefaultKind:      kind,
		SearchIterations: cfg.Iterations,
		Seed:             cfg.Seed,
		Workers:          cfg.Workers,
	}

	glog.Infof("genome %d: %d games, ai=%s, seed=%d, workers=%d",
		g.ID, cfg.Games, cfg.AI, cfg.Seed, cfg.Workers)

	var stats simulation.AggregatedStats
	if cfg.Serial {
		stats = simulation.RunBatch(ctx, g, opts)
	} else {
		stats = simulation.RunBatchParallel(ctx, g, opts)
	}

	printStats(&stats)
}

func loadGenome(path string) (*genome.Genome, error) {
	if path == "" {
		return genome.NewWarGenome(), nil
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return genome.Decode(buf)
}

func parseKind(name string) (ai.Kind, error) {
	switch name {
	case "random":
		return ai.KindRandom, nil
	case "greedy":
		return ai.KindGreedy, nil
	case "weak":
		return ai.KindSearchWeak, nil
	case "medium":
		return ai.KindSearchMedium, nil
	case "strong":
		return ai.KindSearchStrong, nil
	}
	return 0, fmt.Errorf("unknown ai %q", name)
}

func printStats(stats *simulation.AggregatedStats) {
	fmt.Printf("games:        %d\n", stats.TotalGames)
	for i, w := range stats.Wins {
		fmt.Printf("player %d:     %d wins\n", i, w)
	}
	fmt.Printf("draws:        %d\n", stats.Draws)
	fmt.Printf("errors:       %d\n", stats.Errors)
	fmt.Printf("mean turns:   %.1f\n", stats.MeanTurns)
	fmt.Printf("median turns: %.1f\n", stats.MedianTurns)

	m := &stats.Metrics
	if m.Decisions > 0 {
		fmt.Printf("choices/decision: %.2f\n", float64(m.TotalChoices)/float64(m.Decisions))
		fmt.Printf("forced decisions: %.1f%%\n", 100*float64(m.ForcedDecisions)/float64(m.Decisions))
	}
	if m.Actions > 0 {
		fmt.Printf("interaction rate: %.1f%%\n", 100*float64(m.Interactions)/float64(m.Actions))
	}
	if m.TotalBets > 0 {
		fmt.Printf("bets: %d  all-ins: %d  fold wins: %d  showdown wins: %d\n",
			m.TotalBets, m.AllInCount, m.FoldWins, m.ShowdownWins)
	}
}
