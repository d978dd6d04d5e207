// Package match simulates best-of-N series between two teams, from the
// map draft down to the individual encounters of every round.
package match

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Dosada05/league-simulator/models"
	"github.com/Dosada05/league-simulator/random"
)

// Options tune the simulation. Zero fields take the DefaultOptions value.
type Options struct {
	// RoundsToWin is the score that wins a map, given a two-round margin.
	RoundsToWin int
	// MaxMapRounds bounds overtime. A map still tied past it fails with
	// ErrMapNotConverged.
	MaxMapRounds int
	// MaxGroupSize caps how many players of one side join an encounter.
	MaxGroupSize int
	// GroupSizeEdge is the skill multiplier per extra player in an
	// encounter.
	GroupSizeEdge  float64
	MinProbability float64
	MaxProbability float64

	Logger *slog.Logger
}

func DefaultOptions() Options {
	return Options{
		RoundsToWin:    13,
		MaxMapRounds:   300,
		MaxGroupSize:   3,
		GroupSizeEdge:  0.10,
		MinProbability: 0.1,
		MaxProbability: 0.9,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.RoundsToWin <= 0 {
		o.RoundsToWin = d.RoundsToWin
	}
	if o.MaxMapRounds <= 0 {
		o.MaxMapRounds = d.MaxMapRounds
	}
	if o.MaxGroupSize <= 0 {
		o.MaxGroupSize = d.MaxGroupSize
	}
	if o.GroupSizeEdge <= 0 {
		o.GroupSizeEdge = d.GroupSizeEdge
	}
	if o.MinProbability <= 0 || o.MaxProbability <= 0 || o.MinProbability >= o.MaxProbability {
		o.MinProbability, o.MaxProbability = d.MinProbability, d.MaxProbability
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// Fixture describes one series to play. UpperBracketLoser, when set,
// must be Home or Away; it holds the ban-twice advantage in best-of-5.
type Fixture struct {
	Home              *models.Team
	Away              *models.Team
	BestOf            int
	UpperBracketLoser *models.Team
}

// Engine plays series. It holds no mutable state and is safe for
// concurrent use as long as each caller passes its own random.Source.
type Engine struct {
	opts   Options
	logger *slog.Logger
}

func NewEngine(opts Options) *Engine {
	opts = opts.withDefaults()
	return &Engine{opts: opts, logger: opts.Logger}
}

// WinsNeeded is the number of maps that decides a best-of-N series.
func WinsNeeded(bestOf int) int {
	return (bestOf + 2) / 2
}

func validateTeam(t *models.Team) error {
	if t == nil {
		return ErrNilTeam
	}
	if len(t.Players) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyRoster, t.Name)
	}
	if len(t.Players) != models.RosterSize {
		return fmt.Errorf("%w: %s has %d", ErrInvalidRosterSize, t.Name, len(t.Players))
	}
	return nil
}

func (e *Engine) validate(f Fixture) error {
	if err := validateTeam(f.Home); err != nil {
		return fmt.Errorf("home: %w", err)
	}
	if err := validateTeam(f.Away); err != nil {
		return fmt.Errorf("away: %w", err)
	}
	if f.Home == f.Away || f.Home.ID == f.Away.ID {
		return ErrSameTeam
	}
	if _, ok := draftOrder(f.BestOf); !ok {
		return fmt.Errorf("%w: %d", ErrUnsupportedBestOf, f.BestOf)
	}
	if u := f.UpperBracketLoser; u != nil && u != f.Home && u != f.Away {
		return ErrNotInFixture
	}
	return nil
}

// Play simulates the fixture. Maps are played in draft order until one
// side reaches WinsNeeded(BestOf); the rest of the sequence is skipped.
func (e *Engine) Play(rng random.Source, f Fixture) (*models.SeriesResult, error) {
	if err := e.validate(f); err != nil {
		return nil, err
	}

	draft, err := RunDraft(f.Home, f.Away, f.UpperBracketLoser, f.BestOf)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("map draft completed",
		slog.String("home", f.Home.Name),
		slog.String("away", f.Away.Name),
		slog.Int("best_of", f.BestOf),
		slog.Any("sequence", draft.Sequence))

	res := &models.SeriesResult{
		Home:        f.Home,
		Away:        f.Away,
		HomeRef:     f.Home.Ref(),
		AwayRef:     f.Away.Ref(),
		BestOf:      f.BestOf,
		Draft:       draft.Actions,
		MapSequence: draft.Sequence,
		Maps:        make([]models.MapResult, 0, len(draft.Sequence)),
	}
	if f.UpperBracketLoser != nil {
		id := f.UpperBracketLoser.ID
		res.UpperBracketLoserID = &id
	}

	need := WinsNeeded(f.BestOf)
	for _, m := range draft.Sequence {
		if res.HomeMapWins == need || res.AwayMapWins == need {
			break
		}
		var pickedBy *int
		if id, ok := draft.PickedBy[m]; ok {
			pickedBy = &id
		}
		mr, err := e.playMap(rng, f.Home, f.Away, m)
		if err != nil {
			return nil, fmt.Errorf("%s vs %s on %s: %w", f.Home.Name, f.Away.Name, m, err)
		}
		mr.PickedBy = pickedBy
		res.Maps = append(res.Maps, mr)
		if mr.Winner == models.SideHome {
			res.HomeMapWins++
		} else {
			res.AwayMapWins++
		}
	}

	if res.HomeMapWins > res.AwayMapWins {
		res.Winner, res.Loser = f.Home, f.Away
	} else {
		res.Winner, res.Loser = f.Away, f.Home
	}
	res.WinnerID, res.LoserID = res.Winner.ID, res.Loser.ID
	return res, nil
}
