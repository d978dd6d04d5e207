package brackets

import (
	"io"
	"log/slog"

	"github.com/Dosada05/league-simulator/match"
	"github.com/Dosada05/league-simulator/models"
	"github.com/Dosada05/league-simulator/random"
	"github.com/Dosada05/league-simulator/standings"
)

// Pairing is one scheduled regular-season series.
type Pairing struct {
	Home *models.Team
	Away *models.Team
	Leg  int
}

type RoundRobinScheduler struct {
	player   SeriesPlayer
	settings models.RoundRobinSettings
	observer SeriesObserver
	logger   *slog.Logger
}

func NewRoundRobinScheduler(player SeriesPlayer, settings models.RoundRobinSettings, observer SeriesObserver, logger *slog.Logger) *RoundRobinScheduler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &RoundRobinScheduler{
		player:   player,
		settings: settings.Normalize(),
		observer: observer,
		logger:   logger,
	}
}

// Schedule pairs every two teams once per leg. Home and away are drawn at
// random for the first leg and swapped for the second. Each leg is
// shuffled on its own and the second leg follows the first.
func (s *RoundRobinScheduler) Schedule(rng random.Source, teams []*models.Team) ([]Pairing, error) {
	if err := validateTeams(teams); err != nil {
		return nil, err
	}

	n := len(teams)
	first := make([]Pairing, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			home, away := teams[i], teams[j]
			if rng.IntN(2) == 1 {
				home, away = away, home
			}
			first = append(first, Pairing{Home: home, Away: away, Leg: 1})
		}
	}
	rng.Shuffle(len(first), func(i, j int) { first[i], first[j] = first[j], first[i] })
	if s.settings.NumberOfRounds < 2 {
		return first, nil
	}

	second := make([]Pairing, len(first))
	for i, p := range first {
		second[i] = Pairing{Home: p.Away, Away: p.Home, Leg: 2}
	}
	rng.Shuffle(len(second), func(i, j int) { second[i], second[j] = second[j], second[i] })
	return append(first, second...), nil
}

// Run plays the schedule and resolves the standings. The returned teams
// are in final order.
func (s *RoundRobinScheduler) Run(rng random.Source, teams []*models.Team) (*models.SeasonResult, []*models.Team, error) {
	pairings, err := s.Schedule(rng, teams)
	if err != nil {
		return nil, nil, err
	}
	table, err := standings.NewTable(teams)
	if err != nil {
		return nil, nil, err
	}

	result := &models.SeasonResult{
		Settings: s.settings,
		Matches:  make([]*models.SeriesResult, 0, len(pairings)),
	}
	for i, p := range pairings {
		series, err := s.player.Play(rng, match.Fixture{Home: p.Home, Away: p.Away, BestOf: s.settings.BestOf})
		if err != nil {
			return nil, nil, err
		}
		if err := table.Record(series); err != nil {
			return nil, nil, err
		}
		result.Matches = append(result.Matches, series)
		if s.observer != nil {
			s.observer(models.StageRegularSeason, i+1, series)
		}
	}

	order, rows := table.Standings(rng)
	result.Standings = rows
	s.logger.Debug("regular season finished",
		slog.Int("teams", len(teams)),
		slog.Int("series", len(pairings)),
		slog.String("leader", order[0].Name))
	return result, order, nil
}
