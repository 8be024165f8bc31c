// Package wire is the FlatBuffers batch boundary: build and parse batch
// requests and responses, and run a whole batch byte-in/byte-out via
// ProcessRequest. The schema lives in schema.fbs; fb/ holds the generated
// accessors.
package wire

import (
	"context"
	"errors"

	flatbuffers "github.com/google/flatbuffers/go"

	"github.com/deckforge/cardsim/ai"
	"github.com/deckforge/cardsim/genome"
	"github.com/deckforge/cardsim/simulation"
	"github.com/deckforge/cardsim/wire/fb"
)

// ErrEmptyRequest rejects zero-length request buffers.
var ErrEmptyRequest = errors.New("wire: empty batch request")

// SimRequest is one simulation job inside a batch.
type SimRequest struct {
	Genome           []byte
	NumGames         uint32
	AIType           ai.Kind
	AIOverrides      []ai.Kind
	SearchIterations uint32
	Seed             uint64
	Workers          uint32
}

// BuildBatchRequest serializes a batch of simulation requests.
func BuildBatchRequest(batchID uint64, requests []SimRequest) []byte {
	builder := flatbuffers.NewBuilder(1024)

	offsets := make([]flatbuffers.UOffsetT, len(requests))
	for i, req := range requests {
		genomeVec := builder.CreateByteVector(req.Genome)

		var overridesVec flatbuffers.UOffsetT
		if len(req.AIOverrides) > 0 {
			raw := make([]byte, len(req.AIOverrides))
			for j, k := range req.AIOverrides {
				raw[j] = byte(k)
			}
			overridesVec = builder.CreateByteVector(raw)
		}

		fb.SimulationRequestStart(builder)
		fb.SimulationRequestAddGenome(builder, genomeVec)
		fb.SimulationRequestAddNumGames(builder, req.NumGames)
		fb.SimulationRequestAddAiType(builder, byte(req.AIType))
		if overridesVec > 0 {
			fb.SimulationRequestAddAiOverrides(builder, overridesVec)
		}
		fb.SimulationRequestAddSearchIterations(builder, req.SearchIterations)
		fb.SimulationRequestAddSeed(builder, req.Seed)
		fb.SimulationRequestAddWorkers(builder, req.Workers)
		offsets[i] = fb.SimulationRequestEnd(builder)
	}

	fb.BatchRequestStartRequestsVector(builder, len(offsets))
	for i := len(offsets) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(offsets[i])
	}
	requestsVec := builder.EndVector(len(offsets))

	fb.BatchRequestStart(builder)
	fb.BatchRequestAddBatchId(builder, batchID)
	fb.BatchRequestAddRequests(builder, requestsVec)
	builder.Finish(fb.BatchRequestEnd(builder))
	return builder.FinishedBytes()
}

// ParseBatchRequest decodes a request buffer into its jobs.
func ParseBatchRequest(buf []byte) (uint64, []SimRequest, error) {
	if len(buf) == 0 {
		return 0, nil, ErrEmptyRequest
	}
	root := fb.GetRootAsBatchRequest(buf, 0)

	requests := make([]SimRequest, 0, root.RequestsLength())
	for i := 0; i < root.RequestsLength(); i++ {
		var req fb.SimulationRequest
		if !root.Requests(&req, i) {
			continue
		}

		overrides := make([]ai.Kind, req.AiOverridesLength())
		for j := range overrides {
			overrides[j] = ai.Kind(req.AiOverrides(j))
		}

		requests = append(requests, SimRequest{
			Genome:           req.GenomeBytes(),
			NumGames:         req.NumGames(),
			AIType:           ai.Kind(req.AiType()),
			AIOverrides:      overrides,
			SearchIterations: req.SearchIterations(),
			Seed:             req.Seed(),
			Workers:          req.Workers(),
		})
	}
	return root.BatchId(), requests, nil
}

// BuildBatchResponse serializes aggregated stats, one entry per request.
func BuildBatchResponse(batchID uint64, results []simulation.AggregatedStats) []byte {
	builder := flatbuffers.NewBuilder(1024)

	offsets := make([]flatbuffers.UOffsetT, len(results))
	for i := range results {
		offsets[i] = serializeStats(builder, &results[i])
	}

	fb.BatchResponseStartResultsVector(builder, len(offsets))
	for i := len(offsets) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(offsets[i])
	}
	resultsVec := builder.EndVector(len(offsets))

	fb.BatchResponseStart(builder)
	fb.BatchResponseAddBatchId(builder, batchID)
	fb.BatchResponseAddResults(builder, resultsVec)
	builder.Finish(fb.BatchResponseEnd(builder))
	return builder.FinishedBytes()
}

func serializeStats(builder *flatbuffers.Builder, stats *simulation.AggregatedStats) flatbuffers.UOffsetT {
	var winsVec flatbuffers.UOffsetT
	if len(stats.Wins) > 0 {
		fb.AggregatedStatsStartWinsVector(builder, len(stats.Wins))
		for i := len(stats.Wins) - 1; i >= 0; i-- {
			builder.PrependUint32(stats.Wins[i])
		}
		winsVec = builder.EndVector(len(stats.Wins))
	}

	fb.AggregatedStatsStart(builder)
	fb.AggregatedStatsAddTotalGames(builder, stats.TotalGames)
	if winsVec > 0 {
		fb.AggregatedStatsAddWins(builder, winsVec)
	}
	fb.AggregatedStatsAddDraws(builder, stats.Draws)
	fb.AggregatedStatsAddErrors(builder, stats.Errors)
	fb.AggregatedStatsAddMeanTurns(builder, stats.MeanTurns)
	fb.AggregatedStatsAddMedianTurns(builder, stats.MedianTurns)
	fb.AggregatedStatsAddDecisions(builder, stats.Metrics.Decisions)
	fb.AggregatedStatsAddTotalChoices(builder, stats.Metrics.TotalChoices)
	fb.AggregatedStatsAddForcedDecisions(builder, stats.Metrics.ForcedDecisions)
	fb.AggregatedStatsAddActions(builder, stats.Metrics.Actions)
	fb.AggregatedStatsAddInteractions(builder, stats.Metrics.Interactions)
	fb.AggregatedStatsAddDisruptions(builder, stats.Metrics.Disruptions)
	fb.AggregatedStatsAddContentions(builder, stats.Metrics.Contentions)
	fb.AggregatedStatsAddTotalBets(builder, stats.Metrics.TotalBets)
	fb.AggregatedStatsAddAllInCount(builder, stats.Metrics.AllInCount)
	fb.AggregatedStatsAddFoldWins(builder, stats.Metrics.FoldWins)
	fb.AggregatedStatsAddShowdownWins(builder, stats.Metrics.ShowdownWins)
	return fb.AggregatedStatsEnd(builder)
}

// ParseBatchResponse decodes a response buffer back into aggregated stats.
func ParseBatchResponse(buf []byte) (uint64, []simulation.AggregatedStats) {
	root := fb.GetRootAsBatchResponse(buf, 0)

	results := make([]simulation.AggregatedStats, 0, root.ResultsLength())
	for i := 0; i < root.ResultsLength(); i++ {
		var entry fb.AggregatedStats
		if !root.Results(&entry, i) {
			continue
		}

		wins := make([]uint32, entry.WinsLength())
		for j := range wins {
			wins[j] = entry.Wins(j)
		}

		results = append(results, simulation.AggregatedStats{
			TotalGames:  entry.TotalGames(),
			Wins:        wins,
			Draws:       entry.Draws(),
			Errors:      entry.Errors(),
			MeanTurns:   entry.MeanTurns(),
			MedianTurns: entry.MedianTurns(),
			Metrics: simulation.GameMetrics{
				Decisions:       entry.Decisions(),
				TotalChoices:    entry.TotalChoices(),
				ForcedDecisions: entry.ForcedDecisions(),
				Actions:         entry.Actions(),
				Interactions:    entry.Interactions(),
				Disruptions:     entry.Disruptions(),
				Contentions:     entry.Contentions(),
				TotalBets:       entry.TotalBets(),
				AllInCount:      entry.AllInCount(),
				FoldWins:        entry.FoldWins(),
				ShowdownWins:    entry.ShowdownWins(),
			},
		})
	}
	return root.BatchId(), results
}

// ProcessRequest runs a serialized batch end to end and returns the
// serialized response. A genome that fails to decode yields an all-errors
// stats entry for its request; it never aborts the rest of the batch.
func ProcessRequest(ctx context.Context, buf []byte) ([]byte, error) {
	batchID, requests, err := ParseBatchRequest(buf)
	if err != nil {
		return nil, err
	}

	results := make([]simulation.AggregatedStats, len(requests))
	for i, req := range requests {
		g, err := genome.Decode(req.Genome)
		if err != nil {
			results[i] = simulation.AggregatedStats{
				TotalGames: req.NumGames,
				Errors:     req.NumGames,
			}
			continue
		}

		results[i] = simulation.RunBatchParallel(ctx, g, simulation.BatchOptions{
			NumGames:         int(req.NumGames),
			DefaultKind:      req.AIType,
			PlayerKinds:      req.AIOverrides,
			SearchIterations: int(req.SearchIterations),
			Seed:             req.Seed,
			Workers:          int(req.Workers),
		})
	}

	return BuildBatchResponse(batchID, results), nil
}
