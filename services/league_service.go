package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/Dosada05/league-simulator/brackets"
	"github.com/Dosada05/league-simulator/championship"
	"github.com/Dosada05/league-simulator/config"
	"github.com/Dosada05/league-simulator/match"
	"github.com/Dosada05/league-simulator/models"
	"github.com/Dosada05/league-simulator/random"
	"github.com/Dosada05/league-simulator/roster"
	"golang.org/x/sync/errgroup"
)

type Competition string

const (
	CompetitionExhibition Competition = "exhibition"
	CompetitionSeason     Competition = "season"
	CompetitionPlayoffs   Competition = "playoffs"
	CompetitionWorlds     Competition = "worlds"
)

// SeriesEvent is one finished series as reported while a simulation runs.
type SeriesEvent struct {
	Year        int                  `json:"year,omitempty"`
	Region      models.Region        `json:"region,omitempty"`
	Competition Competition          `json:"competition"`
	Stage       models.BracketStage  `json:"stage,omitempty"`
	Round       int                  `json:"round,omitempty"`
	Series      *models.SeriesResult `json:"series"`
}

// SeriesNotifier receives events from several goroutines at once.
type SeriesNotifier func(SeriesEvent)

type TeamSummary struct {
	models.TeamRef
	Rating float64 `json:"rating"`
}

type LeagueSummary struct {
	Region models.Region `json:"region"`
	Teams  []TeamSummary `json:"teams"`
}

type SeriesInput struct {
	HomeTeamID int    `json:"home_team_id"`
	AwayTeamID int    `json:"away_team_id"`
	BestOf     int    `json:"best_of"`
	Seed       uint64 `json:"seed,omitempty"`
}

// LeagueService owns the four regional leagues and runs the yearly
// cycle: off-season, regular season, playoffs and world championship.
type LeagueService struct {
	engine *match.Engine
	roster *roster.Generator
	cfg    config.SimulationConfig
	logger *slog.Logger

	// mu is held for writing for a whole year; exhibition series read.
	mu      sync.RWMutex
	leagues map[models.Region][]*models.Team
	year    int
	running atomic.Bool
}

// NewLeagueService generates every regional league from the roster
// names, using seed for the initial rosters.
func NewLeagueService(engine *match.Engine, gen *roster.Generator, cfg config.SimulationConfig, seed uint64, logger *slog.Logger) (*LeagueService, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	rng := random.New(seed)
	leagues := make(map[models.Region][]*models.Team, len(models.Regions()))
	for _, region := range models.Regions() {
		teams, err := gen.League(rng, region)
		if err != nil {
			return nil, fmt.Errorf("failed to generate %s league: %w", region, err)
		}
		leagues[region] = teams
	}
	return &LeagueService{
		engine:  engine,
		roster:  gen,
		cfg:     cfg,
		logger:  logger,
		leagues: leagues,
		year:    cfg.StartYear,
	}, nil
}

// Year is the next year RunYear will simulate.
func (s *LeagueService) Year() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.year
}

func (s *LeagueService) Leagues() []LeagueSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]LeagueSummary, 0, len(s.leagues))
	for _, region := range models.Regions() {
		summary := LeagueSummary{Region: region, Teams: make([]TeamSummary, 0, len(s.leagues[region]))}
		for _, t := range s.leagues[region] {
			summary.Teams = append(summary.Teams, TeamSummary{TeamRef: t.Ref(), Rating: t.Rating()})
		}
		out = append(out, summary)
	}
	return out
}

// Team returns a copy of a team of region with its current roster.
func (s *LeagueService) Team(region models.Region, teamID int) (*models.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	teams, ok := s.leagues[region]
	if !ok {
		return nil, ErrRegionNotFound
	}
	for _, t := range teams {
		if t.ID == teamID {
			return cloneTeam(t), nil
		}
	}
	return nil, ErrTeamNotFound
}

func (s *LeagueService) findTeam(teamID int) (*models.Team, bool) {
	for _, teams := range s.leagues {
		for _, t := range teams {
			if t.ID == teamID {
				return t, true
			}
		}
	}
	return nil, false
}

// PlaySeries plays one exhibition series between two league teams.
func (s *LeagueService) PlaySeries(ctx context.Context, input SeriesInput, seed uint64, notify SeriesNotifier) (*models.SeriesResult, error) {
	if input.HomeTeamID == input.AwayTeamID {
		return nil, fmt.Errorf("%w: a team cannot play itself", ErrValidationFailed)
	}
	if input.BestOf == 0 {
		input.BestOf = 3
	}
	switch input.BestOf {
	case 1, 3, 5:
	default:
		return nil, fmt.Errorf("%w: best_of must be 1, 3 or 5", ErrValidationFailed)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	home, ok := s.findTeam(input.HomeTeamID)
	if !ok {
		return nil, fmt.Errorf("%w: home team %d", ErrTeamNotFound, input.HomeTeamID)
	}
	away, ok := s.findTeam(input.AwayTeamID)
	if !ok {
		return nil, fmt.Errorf("%w: away team %d", ErrTeamNotFound, input.AwayTeamID)
	}

	result, err := s.engine.Play(random.New(seed), match.Fixture{Home: home, Away: away, BestOf: input.BestOf})
	if err != nil {
		return nil, fmt.Errorf("failed to play series %s vs %s: %w", home.Name, away.Name, err)
	}
	if notify != nil {
		notify(SeriesEvent{Competition: CompetitionExhibition, Series: result})
	}
	return result, nil
}

// RunYear simulates the next year from seed. Regions run concurrently on
// streams split from the seed, so the result depends on the seed alone.
// Rosters and the year counter change only when the year completes.
func (s *LeagueService) RunYear(ctx context.Context, seed uint64, notify SeriesNotifier) (*models.YearResult, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrSimulationInProgress
	}
	defer s.running.Store(false)

	s.mu.Lock()
	defer s.mu.Unlock()

	year := s.year
	regions := models.Regions()
	seeds := random.SplitSeeds(random.New(seed), len(regions)+1)

	// Work on copies so that a failed year leaves the leagues untouched.
	working := make(map[models.Region][]*models.Team, len(regions))
	for _, region := range regions {
		teams := make([]*models.Team, len(s.leagues[region]))
		for i, t := range s.leagues[region] {
			teams[i] = cloneTeam(t)
		}
		working[region] = teams
	}

	s.logger.Info("simulating year", slog.Int("year", year), slog.String("seed", fmt.Sprint(seed)))

	// Off-season runs before the fan-out: signings draw player IDs from
	// the shared generator, and the order must not depend on scheduling.
	rngs := make([]random.Source, len(regions))
	moves := make([][]models.RosterMove, len(regions))
	for i, region := range regions {
		rngs[i] = random.New(seeds[i])
		moves[i] = s.roster.OffSeason(rngs[i], working[region])
	}

	results := make([]models.RegionYearResult, len(regions))
	qualifiers := make([][]*models.Team, len(regions))
	g, gCtx := errgroup.WithContext(ctx)
	for i, region := range regions {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			res, qualified, err := s.runRegion(year, region, rngs[i], working[region], notify)
			if err != nil {
				return fmt.Errorf("region %s: %w", region, err)
			}
			res.Seed = seeds[i]
			res.OffSeason = moves[i]
			results[i] = *res
			qualifiers[i] = qualified
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var field []*models.Team
	for _, q := range qualifiers {
		field = append(field, q...)
	}
	worlds, err := championship.New(s.engine, championship.Options{
		Pairing:      s.cfg.WorldsPairing,
		Format:       s.cfg.WorldsFormat,
		Seeded:       s.cfg.WorldsSeeded,
		BracketReset: s.cfg.BracketReset,
		Observer:     observe(notify, year, "", CompetitionWorlds),
		Logger:       s.logger,
	}).Run(random.New(seeds[len(regions)]), field)
	if err != nil {
		return nil, fmt.Errorf("world championship: %w", err)
	}

	s.leagues = working
	s.year++

	result := &models.YearResult{Year: year, Seed: seed, Regions: results, Worlds: worlds}
	if champion, ok := result.Champion(); ok {
		s.logger.Info("year completed", slog.Int("year", year), slog.String("champion", champion.Team.Name))
	}
	return result, nil
}

// runRegion plays the regular season and playoffs of one region.
func (s *LeagueService) runRegion(year int, region models.Region, rng random.Source, teams []*models.Team, notify SeriesNotifier) (*models.RegionYearResult, []*models.Team, error) {
	logger := s.logger.With(slog.String("region", string(region)))

	scheduler := brackets.NewRoundRobinScheduler(s.engine, models.RoundRobinSettings{
		NumberOfRounds: s.cfg.SeasonRounds,
		BestOf:         s.cfg.SeasonBestOf,
	}, observe(notify, year, region, CompetitionSeason), logger)
	season, order, err := scheduler.Run(rng, teams)
	if err != nil {
		return nil, nil, fmt.Errorf("regular season: %w", err)
	}
	season.Region = region

	n := min(s.cfg.PlayoffTeams, len(order))
	playoffs, err := brackets.NewDoubleEliminationGenerator(s.engine, brackets.DoubleEliminationOptions{
		BracketReset: s.cfg.BracketReset,
		Observer:     observe(notify, year, region, CompetitionPlayoffs),
		Logger:       logger,
	}).Run(rng, PlayoffField(order[:n]))
	if err != nil {
		return nil, nil, fmt.Errorf("playoffs: %w", err)
	}

	qualified := playoffs.Top(championship.GroupSize)
	refs := make([]models.TeamRef, len(qualified))
	for i, t := range qualified {
		refs[i] = t.Ref()
	}
	logger.Debug("region finished", slog.String("playoff_champion", playoffs.Champion.Name))
	return &models.RegionYearResult{
		Region:           region,
		Season:           season,
		Playoffs:         playoffs,
		WorldsQualifiers: refs,
	}, qualified, nil
}

// PlayoffField orders the top of a season table so that adjacent teams
// meet first: 1 plays N, 2 plays N-1 and so on.
func PlayoffField(ranked []*models.Team) []*models.Team {
	out := make([]*models.Team, 0, len(ranked))
	for i, j := 0, len(ranked)-1; i <= j; i, j = i+1, j-1 {
		out = append(out, ranked[i])
		if i != j {
			out = append(out, ranked[j])
		}
	}
	return out
}

func observe(notify SeriesNotifier, year int, region models.Region, competition Competition) brackets.SeriesObserver {
	if notify == nil {
		return nil
	}
	return func(stage models.BracketStage, round int, series *models.SeriesResult) {
		notify(SeriesEvent{
			Year:        year,
			Region:      region,
			Competition: competition,
			Stage:       stage,
			Round:       round,
			Series:      series,
		})
	}
}

func cloneTeam(t *models.Team) *models.Team {
	c := *t
	c.Players = make([]*models.Player, len(t.Players))
	for i, p := range t.Players {
		cp := *p
		cp.MapModifiers = make(map[models.GameMap]int, len(p.MapModifiers))
		for m, v := range p.MapModifiers {
			cp.MapModifiers[m] = v
		}
		c.Players[i] = &cp
	}
	return &c
}
