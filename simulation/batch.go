package simulation

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"github.com/deckforge/cardsim/ai"
	"github.com/deckforge/cardsim/genome"
)

// AggregatedStats summarizes a batch. Serial and parallel runs of the same
// request produce identical stats for any worker count: per-game seeds are
// derived from the game index, and results aggregate in index order.
type AggregatedStats struct {
	TotalGames  uint32
	Wins        []uint32 // indexed by player seat
	Draws       uint32
	Errors      uint32 // stalemates, panics, cancellations
	MeanTurns   float64
	MedianTurns float64
	Metrics     GameMetrics
}

// BatchOptions configures one batch run.
type BatchOptions struct {
	NumGames         int
	DefaultKind      ai.Kind
	PlayerKinds      []ai.Kind // optional per-seat overrides
	SearchIterations int       // > 0 overrides the search tiers' budgets
	Seed             uint64
	Workers          int // <= 0 means GOMAXPROCS
}

// gameSeed derives the seed for one game from the base seed and game index
// with a splitmix64 step, so a game's outcome is independent of which worker
// runs it or in what order.
func gameSeed(base uint64, index int) uint64 {
	z := base + uint64(index)*0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// RunBatch simulates opts.NumGames games serially.
func RunBatch(ctx context.Context, g *genome.Genome, opts BatchOptions) AggregatedStats {
	numPlayers := playerCount(g)
	kinds := PlayerKinds(opts.DefaultKind, opts.PlayerKinds, numPlayers)

	results := make([]GameResult, opts.NumGames)
	for i := 0; i < opts.NumGames; i++ {
		if ctx.Err() != nil {
			markCanceled(results, i)
			break
		}
		results[i] = RunSingleGame(g, kinds, opts.SearchIterations, gameSeed(opts.Seed, i))
		results[i].SimID = i
	}
	return Aggregate(results, numPlayers)
}

// RunBatchParallel simulates the batch across a fixed worker pool. Each
// worker owns its game state; results land in a slice indexed by game id so
// aggregation order never depends on scheduling. Cancelling the context
// stops job submission and lets in-flight games finish.
func RunBatchParallel(ctx context.Context, g *genome.Genome, opts BatchOptions) AggregatedStats {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > opts.NumGames {
		workers = opts.NumGames
	}
	if workers <= 1 {
		return RunBatch(ctx, g, opts)
	}

	numPlayers := playerCount(g)
	kinds := PlayerKinds(opts.DefaultKind, opts.PlayerKinds, numPlayers)

	jobs := make(chan int)
	results := make([]GameResult, opts.NumGames)
	ran := make([]bool, opts.NumGames)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				r := RunSingleGame(g, kinds, opts.SearchIterations, gameSeed(opts.Seed, i))
				r.SimID = i
				mu.Lock()
				results[i] = r
				ran[i] = true
				mu.Unlock()
			}
		}()
	}

submit:
	for i := 0; i < opts.NumGames; i++ {
		select {
		case <-ctx.Done():
			break submit
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	for i := range results {
		if !ran[i] {
			results[i] = GameResult{SimID: i, WinnerID: -1, Err: "canceled"}
		}
	}
	return Aggregate(results, numPlayers)
}

func playerCount(g *genome.Genome) int {
	n := g.PlayerCount
	if n < 2 {
		n = 2
	}
	if n > 4 {
		n = 4
	}
	return n
}

func markCanceled(results []GameResult, from int) {
	for i := from; i < len(results); i++ {
		results[i] = GameResult{SimID: i, WinnerID: -1, Err: "canceled"}
	}
}

// Aggregate folds per-game results into batch statistics in game-id order.
func Aggregate(results []GameResult, numPlayers int) AggregatedStats {
	stats := AggregatedStats{
		TotalGames: uint32(len(results)),
		Wins:       make([]uint32, numPlayers),
	}
	if len(results) == 0 {
		return stats
	}

	turns := make([]uint32, 0, len(results))
	var totalTurns uint64

	for i := range results {
		r := &results[i]
		switch {
		case r.Err != "":
			stats.Errors++
		case r.WinnerID >= 0 && int(r.WinnerID) < numPlayers:
			stats.Wins[r.WinnerID]++
		default:
			stats.Draws++
		}
		turns = append(turns, r.TurnCount)
		totalTurns += uint64(r.TurnCount)
		stats.Metrics.add(&r.Metrics)
	}

	stats.MeanTurns = float64(totalTurns) / float64(len(results))
	sort.Slice(turns, func(i, j int) bool { return turns[i] < turns[j] })
	mid := len(turns) / 2
	if len(turns)%2 == 1 {
		stats.MedianTurns = float64(turns[mid])
	} else {
		stats.MedianTurns = float64(turns[mid-1]+turns[mid]) / 2
	}
	return stats
}
