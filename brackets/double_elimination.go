package brackets

import (
	"io"
	"log/slog"

	"github.com/Dosada05/league-simulator/match"
	"github.com/Dosada05/league-simulator/models"
	"github.com/Dosada05/league-simulator/random"
)

type DoubleEliminationOptions struct {
	// Seeded applies SeedOrder before the first round.
	Seeded bool
	// BracketReset plays a second grand final when the lower-bracket
	// finalist wins the first one.
	BracketReset bool
	// BestOf is used for every series except the grand final and the
	// last merge round; both use FinalBestOf.
	BestOf      int
	FinalBestOf int

	Observer SeriesObserver
	Logger   *slog.Logger
}

func (o DoubleEliminationOptions) withDefaults() DoubleEliminationOptions {
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

type DoubleEliminationGenerator struct {
	player SeriesPlayer
	opts   DoubleEliminationOptions
}

func NewDoubleEliminationGenerator(player SeriesPlayer, opts DoubleEliminationOptions) BracketGenerator {
	return &DoubleEliminationGenerator{player: player, opts: opts.withDefaults()}
}

func (g *DoubleEliminationGenerator) GetName() string {
	return "DoubleElimination"
}

// deState is the bracket between rounds. pending holds upper-bracket
// losers that have not entered the lower bracket yet.
type deState struct {
	upper      []*models.Team
	lower      []*models.Team
	pending    []*models.Team
	finalist   *models.Team
	eliminated []*models.Team
}

func (s *deState) eliminate(t *models.Team) {
	s.eliminated = append([]*models.Team{t}, s.eliminated...)
}

func (s *deState) readyForFinal() bool {
	return s.finalist != nil && len(s.lower) == 1 && len(s.pending) == 0
}

// Run plays the bracket to a champion. Every round plays the upper
// bracket first; upper losers then enter the lower bracket, directly in
// round one and through a merge round afterwards.
func (g *DoubleEliminationGenerator) Run(rng random.Source, teams []*models.Team) (*models.BracketResult, error) {
	if err := validateTeams(teams); err != nil {
		return nil, err
	}

	order := append([]*models.Team(nil), teams...)
	if g.opts.Seeded {
		order = SeedOrder(order)
	}

	rec := newRecorder(g.player, g.opts.Observer, rng)
	st := &deState{upper: order}
	maxRounds := 2*len(teams) + 2

	round := 1
	for ; !st.readyForFinal(); round++ {
		if round > maxRounds {
			return nil, ErrBracketStalled
		}
		if err := g.playUpper(rec, st, round); err != nil {
			return nil, err
		}
		if round == 1 {
			st.lower, st.pending = st.pending, nil
		} else if err := g.playLower(rec, st, round); err != nil {
			return nil, err
		}
		g.opts.Logger.Debug("double elimination round finished",
			slog.Int("round", round),
			slog.Int("upper", len(st.upper)),
			slog.Int("lower", len(st.lower)),
			slog.Bool("finalist_decided", st.finalist != nil))
	}

	return g.playGrandFinal(rec, st, round)
}

func (g *DoubleEliminationGenerator) playUpper(rec *recorder, st *deState, round int) error {
	if st.finalist != nil {
		return nil
	}
	winners, losers, err := rec.pairRound(models.StageUpper, round, g.opts.BestOf, st.upper)
	if err != nil {
		return err
	}
	st.pending = append(st.pending, losers...)
	if len(winners) == 1 {
		st.finalist, st.upper = winners[0], nil
		return nil
	}
	st.upper = winners
	return nil
}

// playLower runs an internal lower round, then merges the pending upper
// losers against the survivors.
func (g *DoubleEliminationGenerator) playLower(rec *recorder, st *deState, round int) error {
	if len(st.lower) > 1 {
		winners, losers, err := rec.pairRound(models.StageLower, round, g.opts.BestOf, st.lower)
		if err != nil {
			return err
		}
		for _, l := range losers {
			st.eliminate(l)
		}
		st.lower = winners
	}

	if len(st.pending) == 0 {
		return nil
	}
	lastMerge := st.finalist != nil && len(st.lower) == 1 && len(st.pending) == 1

	n := min(len(st.lower), len(st.pending))
	next := make([]*models.Team, 0, len(st.lower)+len(st.pending)-n)
	for i := 0; i < n; i++ {
		f := match.Fixture{Home: st.pending[i], Away: st.lower[i], BestOf: g.opts.BestOf}
		if lastMerge {
			f.BestOf = g.opts.FinalBestOf
			f.UpperBracketLoser = st.pending[i]
		}
		s, err := rec.play(models.StageMerge, round, f)
		if err != nil {
			return err
		}
		st.eliminate(s.Loser)
		next = append(next, s.Winner)
	}
	next = append(next, st.lower[n:]...)
	next = append(next, st.pending[n:]...)
	st.lower, st.pending = next, nil
	return nil
}

func (g *DoubleEliminationGenerator) playGrandFinal(rec *recorder, st *deState, round int) (*models.BracketResult, error) {
	s, err := rec.play(models.StageGrandFinal, round, match.Fixture{
		Home:   st.finalist,
		Away:   st.lower[0],
		BestOf: g.opts.FinalBestOf,
	})
	if err != nil {
		return nil, err
	}

	if s.Winner != st.finalist && g.opts.BracketReset {
		s, err = rec.play(models.StageGrandFinalReset, round+1, match.Fixture{
			Home:   st.finalist,
			Away:   s.Winner,
			BestOf: g.opts.FinalBestOf,
		})
		if err != nil {
			return nil, err
		}
	}

	st.eliminate(s.Loser)
	return rec.finish(s.Winner, st.eliminated), nil
}

// SeedOrder arranges an 8-team field so adjacent pairing gives 1v8, 4v5,
// 3v6 and 2v7. Other sizes keep the input order.
func SeedOrder(teams []*models.Team) []*models.Team {
	out := append([]*models.Team(nil), teams...)
	if len(teams) != 8 {
		return out
	}
	for i, seed := range []int{1, 8, 4, 5, 3, 6, 2, 7} {
		out[i] = teams[seed-1]
	}
	return out
}
