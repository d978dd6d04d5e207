package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/Dosada05/league-simulator/hub"
	"github.com/Dosada05/league-simulator/models"
	"github.com/Dosada05/league-simulator/random"
	"github.com/Dosada05/league-simulator/repositories"
	"github.com/Dosada05/league-simulator/storage"
	"github.com/google/uuid"
)

// Broadcaster pushes messages to websocket rooms.
type Broadcaster interface {
	BroadcastToRoom(roomID string, message interface{})
}

// Archiver keeps a copy of finished runs outside the database.
type Archiver interface {
	Store(ctx context.Context, run *models.SimulationRun) (*storage.UploadResult, error)
	Remove(ctx context.Context, key string) error
}

type YearInput struct {
	Seed uint64 `json:"seed,omitempty"`
}

// SimulationService runs simulations on the league service, then stores,
// archives and broadcasts the outcome.
type SimulationService struct {
	league       *LeagueService
	store        RunStore
	runRepo      repositories.SimulationRunRepository
	standingRepo repositories.SeasonStandingRepository
	archive      Archiver
	broadcaster  Broadcaster
	defaultSeed  uint64
	logger       *slog.Logger
}

// NewSimulationService wires the service. archive and broadcaster may be
// nil.
func NewSimulationService(
	league *LeagueService,
	store RunStore,
	runRepo repositories.SimulationRunRepository,
	standingRepo repositories.SeasonStandingRepository,
	archive Archiver,
	broadcaster Broadcaster,
	defaultSeed uint64,
	logger *slog.Logger,
) *SimulationService {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &SimulationService{
		league:       league,
		store:        store,
		runRepo:      runRepo,
		standingRepo: standingRepo,
		archive:      archive,
		broadcaster:  broadcaster,
		defaultSeed:  defaultSeed,
		logger:       logger,
	}
}

// resolveSeed picks the request seed, then the configured one, then a
// fresh random seed.
func (s *SimulationService) resolveSeed(requested uint64) (uint64, error) {
	if requested != 0 {
		return requested, nil
	}
	if s.defaultSeed != 0 {
		return s.defaultSeed, nil
	}
	return random.NewSeed()
}

func (s *SimulationService) notifier() SeriesNotifier {
	if s.broadcaster == nil {
		return nil
	}
	return func(ev SeriesEvent) {
		s.broadcaster.BroadcastToRoom(hub.LeagueRoom, hub.WebSocketMessage{
			Type:    hub.MessageSeriesCompleted,
			Payload: ev,
			RoomID:  hub.LeagueRoom,
		})
	}
}

func (s *SimulationService) PlaySeries(ctx context.Context, input SeriesInput) (*models.SimulationRun, error) {
	seed, err := s.resolveSeed(input.Seed)
	if err != nil {
		return nil, err
	}
	series, err := s.league.PlaySeries(ctx, input, seed, s.notifier())
	if err != nil {
		return nil, err
	}

	champion := series.Winner.Name
	run, err := newRun(models.SimulationSeries, nil, seed, &champion, series)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx, run, nil); err != nil {
		return nil, err
	}
	return run, nil
}

func (s *SimulationService) RunYear(ctx context.Context, input YearInput) (*models.SimulationRun, *models.YearResult, error) {
	seed, err := s.resolveSeed(input.Seed)
	if err != nil {
		return nil, nil, err
	}
	year, err := s.league.RunYear(ctx, seed, s.notifier())
	if err != nil {
		return nil, nil, err
	}

	var champion *string
	if p, ok := year.Champion(); ok {
		champion = &p.Team.Name
	}
	run, err := newRun(models.SimulationYear, &year.Year, seed, champion, year)
	if err != nil {
		return nil, nil, err
	}

	tables := make(map[models.Region][]models.StandingRow, len(year.Regions))
	for _, r := range year.Regions {
		if r.Season != nil {
			tables[r.Region] = r.Season.Standings
		}
	}
	if err := s.save(ctx, run, tables); err != nil {
		return nil, nil, err
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastToRoom(hub.LeagueRoom, hub.WebSocketMessage{
			Type:    hub.MessageYearCompleted,
			Payload: Summarize(run),
			RoomID:  hub.LeagueRoom,
		})
	}
	return run, year, nil
}

func newRun(kind models.SimulationKind, year *int, seed uint64, champion *string, result interface{}) (*models.SimulationRun, error) {
	body, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s result: %w", kind, err)
	}
	return &models.SimulationRun{
		ID:       uuid.New(),
		Kind:     kind,
		Year:     year,
		Seed:     seed,
		Champion: champion,
		Result:   body,
	}, nil
}

// save stores the run, then archives it. A failed archive upload is
// logged and leaves the run without an archive URL. An upload whose
// location cannot be recorded is deleted again.
func (s *SimulationService) save(ctx context.Context, run *models.SimulationRun, tables map[models.Region][]models.StandingRow) error {
	if err := s.store.Save(ctx, run, tables); err != nil {
		return fmt.Errorf("failed to persist %s run: %w", run.Kind, err)
	}
	s.logger.Info("simulation run stored",
		slog.String("run_id", run.ID.String()),
		slog.String("kind", string(run.Kind)),
		slog.String("seed", fmt.Sprint(run.Seed)))

	if s.archive == nil {
		return nil
	}
	uploaded, err := s.archive.Store(ctx, run)
	if err != nil {
		s.logger.Error("failed to archive simulation run", slog.String("run_id", run.ID.String()), slog.Any("error", err))
		return nil
	}
	if err := s.runRepo.UpdateArchive(ctx, run.ID, uploaded.Key, uploaded.Location); err != nil {
		s.logger.Error("failed to record archive location", slog.String("run_id", run.ID.String()), slog.Any("error", err))
		if err := s.archive.Remove(ctx, uploaded.Key); err != nil {
			s.logger.Error("failed to remove orphaned archive", slog.String("key", uploaded.Key), slog.Any("error", err))
		}
		return nil
	}
	run.ArchiveKey = &uploaded.Key
	run.ArchiveURL = &uploaded.Location
	return nil
}

func (s *SimulationService) List(ctx context.Context, filter repositories.ListSimulationRunsFilter) ([]*models.SimulationRun, error) {
	runs, err := s.runRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list simulation runs: %w", err)
	}
	return runs, nil
}

func (s *SimulationService) Get(ctx context.Context, id uuid.UUID) (*models.SimulationRun, error) {
	run, err := s.runRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrSimulationRunNotFound) {
			return nil, ErrRunNotFound
		}
		return nil, fmt.Errorf("failed to get simulation run %s: %w", id, err)
	}
	return run, nil
}

func (s *SimulationService) Standings(ctx context.Context, id uuid.UUID) ([]repositories.SeasonStanding, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}
	rows, err := s.standingRepo.ListByRun(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list standings for run %s: %w", id, err)
	}
	return rows, nil
}

// Summarize copies run without its result document.
func Summarize(run *models.SimulationRun) *models.SimulationRun {
	c := *run
	c.Result = nil
	return &c
}
