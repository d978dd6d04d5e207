package brackets

import (
	"io"
	"log/slog"
	"math"

	"github.com/Dosada05/league-simulator/models"
	"github.com/Dosada05/league-simulator/random"
)

type SingleEliminationOptions struct {
	BestOf      int
	FinalBestOf int

	Observer SeriesObserver
	Logger   *slog.Logger
}

func (o SingleEliminationOptions) withDefaults() SingleEliminationOptions {
	if o.BestOf <= 0 {
		o.BestOf = 3
	}
	if o.FinalBestOf <= 0 {
		o.FinalBestOf = 5
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// SingleEliminationGenerator plays a knockout where adjacent teams meet
// and winners stay adjacent for the next round.
type SingleEliminationGenerator struct {
	player SeriesPlayer
	opts   SingleEliminationOptions
}

func NewSingleEliminationGenerator(player SeriesPlayer, opts SingleEliminationOptions) BracketGenerator {
	return &SingleEliminationGenerator{player: player, opts: opts.withDefaults()}
}

func (g *SingleEliminationGenerator) GetName() string {
	return "SingleElimination"
}

// NumRounds is the number of knockout rounds for n teams.
func NumRounds(n int) int {
	if n < 2 {
		return 0
	}
	return int(math.Ceil(math.Log2(float64(n))))
}

// StageForRound names a knockout round counted from the first one.
func StageForRound(round, numRounds int) models.BracketStage {
	switch numRounds - round {
	case 0:
		return models.StageFinal
	case 1:
		return models.StageSemiFinal
	case 2:
		return models.StageQuarterFinal
	}
	return models.StageKnockout
}

// Run plays the knockout. The final uses FinalBestOf. Standings are the
// champion, the runner-up, then each earlier round's losers, later rounds
// first and bracket order within a round.
func (g *SingleEliminationGenerator) Run(rng random.Source, teams []*models.Team) (*models.BracketResult, error) {
	if err := validateTeams(teams); err != nil {
		return nil, err
	}

	numRounds := NumRounds(len(teams))
	rec := newRecorder(g.player, g.opts.Observer, rng)
	current := append([]*models.Team(nil), teams...)
	var eliminated []*models.Team

	for r := 1; r <= numRounds; r++ {
		bestOf := g.opts.BestOf
		if r == numRounds {
			bestOf = g.opts.FinalBestOf
		}
		stage := StageForRound(r, numRounds)
		winners, losers, err := rec.pairRound(stage, r, bestOf, current)
		if err != nil {
			return nil, err
		}
		eliminated = append(losers, eliminated...)
		current = winners

		g.opts.Logger.Debug("knockout round finished",
			slog.Int("round", r),
			slog.String("stage", string(stage)),
			slog.Int("remaining", len(current)))
	}

	if len(current) != 1 {
		return nil, ErrBracketStalled
	}
	return rec.finish(current[0], eliminated), nil
}
