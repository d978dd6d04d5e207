package brackets

import (
	"fmt"

	"github.com/Dosada05/league-simulator/match"
	"github.com/Dosada05/league-simulator/models"
	"github.com/Dosada05/league-simulator/random"
)

// SeriesPlayer plays one fixture. *match.Engine is the production
// implementation.
type SeriesPlayer interface {
	Play(rng random.Source, f match.Fixture) (*models.SeriesResult, error)
}

// SeriesObserver is told about every series right after it is played.
type SeriesObserver func(stage models.BracketStage, round int, s *models.SeriesResult)

// BracketGenerator runs an elimination bracket over an ordered team list.
type BracketGenerator interface {
	Run(rng random.Source, teams []*models.Team) (*models.BracketResult, error)

	GetName() string
}

func validateTeams(teams []*models.Team) error {
	if len(teams) < 2 {
		return fmt.Errorf("%w: got %d", ErrNotEnoughTeams, len(teams))
	}
	seen := make(map[int]struct{}, len(teams))
	for i, t := range teams {
		if t == nil {
			return fmt.Errorf("team %d: %w", i, match.ErrNilTeam)
		}
		if _, ok := seen[t.ID]; ok {
			return fmt.Errorf("%w: %s (%d)", ErrDuplicateTeam, t.Name, t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}

// recorder plays series for a bracket and keeps its match log and loss
// counts.
type recorder struct {
	player   SeriesPlayer
	observer SeriesObserver
	rng      random.Source
	result   *models.BracketResult
}

func newRecorder(player SeriesPlayer, observer SeriesObserver, rng random.Source) *recorder {
	return &recorder{
		player:   player,
		observer: observer,
		rng:      rng,
		result:   &models.BracketResult{Losses: map[int]int{}},
	}
}

func (r *recorder) play(stage models.BracketStage, round int, f match.Fixture) (*models.SeriesResult, error) {
	s, err := r.player.Play(r.rng, f)
	if err != nil {
		return nil, fmt.Errorf("%s round %d: %w", stage, round, err)
	}
	r.result.Matches = append(r.result.Matches, models.BracketMatch{Round: round, Stage: stage, Series: s})
	r.result.Losses[s.LoserID]++
	if r.observer != nil {
		r.observer(stage, round, s)
	}
	return s, nil
}

// pairRound plays adjacent pairs. An odd team out advances without
// playing.
func (r *recorder) pairRound(stage models.BracketStage, round, bestOf int, teams []*models.Team) (winners, losers []*models.Team, err error) {
	for i := 0; i < len(teams); i += 2 {
		if i+1 == len(teams) {
			winners = append(winners, teams[i])
			break
		}
		s, err := r.play(stage, round, match.Fixture{Home: teams[i], Away: teams[i+1], BestOf: bestOf})
		if err != nil {
			return nil, nil, err
		}
		winners = append(winners, s.Winner)
		losers = append(losers, s.Loser)
	}
	return winners, losers, nil
}

// finish stores the final order and its placements.
func (r *recorder) finish(champion *models.Team, eliminated []*models.Team) *models.BracketResult {
	r.result.Champion = champion
	r.result.EliminationOrder = eliminated
	r.result.Placements = models.NewPlacements(r.result.Standings())
	return r.result
}
