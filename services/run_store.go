package services

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Dosada05/league-simulator/models"
	"github.com/Dosada05/league-simulator/repositories"
)

// RunStore persists a finished run together with its season tables.
type RunStore interface {
	Save(ctx context.Context, run *models.SimulationRun, tables map[models.Region][]models.StandingRow) error
}

type postgresRunStore struct {
	db           *sql.DB
	runRepo      repositories.SimulationRunRepository
	standingRepo repositories.SeasonStandingRepository
	logger       *slog.Logger
}

func NewPostgresRunStore(
	db *sql.DB,
	runRepo repositories.SimulationRunRepository,
	standingRepo repositories.SeasonStandingRepository,
	logger *slog.Logger,
) RunStore {
	return &postgresRunStore{
		db:           db,
		runRepo:      runRepo,
		standingRepo: standingRepo,
		logger:       logger,
	}
}

func (s *postgresRunStore) Save(ctx context.Context, run *models.SimulationRun, tables map[models.Region][]models.StandingRow) (txErr error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if txErr != nil {
			s.logger.Warn("rolling back simulation run", slog.String("run_id", run.ID.String()), slog.Any("error", txErr))
			if rbErr := tx.Rollback(); rbErr != nil {
				txErr = fmt.Errorf("transaction processing error: %w (rollback also failed: %v)", txErr, rbErr)
			}
		} else if cErr := tx.Commit(); cErr != nil {
			txErr = fmt.Errorf("failed to commit transaction: %w", cErr)
		}
	}()

	if err := s.runRepo.Create(ctx, tx, run); err != nil {
		return fmt.Errorf("failed to store run %s: %w", run.ID, err)
	}
	for _, region := range models.Regions() {
		rows, ok := tables[region]
		if !ok {
			continue
		}
		if err := s.standingRepo.BatchCreate(ctx, tx, run.ID, region, rows); err != nil {
			return fmt.Errorf("failed to store %s standings: %w", region, err)
		}
	}
	return nil
}
