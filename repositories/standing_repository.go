package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/league-simulator/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	ErrStandingRunInvalid = errors.New("standing references an unknown simulation run")
	ErrStandingConflict   = errors.New("standing rank already stored for this run and region")
)

// SeasonStanding is one persisted regular-season table line.
type SeasonStanding struct {
	RunID  uuid.UUID     `json:"run_id"`
	Region models.Region `json:"region"`
	models.StandingRow
}

type SeasonStandingRepository interface {
	BatchCreate(ctx context.Context, exec SQLExecutor, runID uuid.UUID, region models.Region, rows []models.StandingRow) error
	ListByRun(ctx context.Context, runID uuid.UUID) ([]SeasonStanding, error)
}

type postgresSeasonStandingRepository struct {
	db *sql.DB
}

func NewPostgresSeasonStandingRepository(db *sql.DB) SeasonStandingRepository {
	return &postgresSeasonStandingRepository{db: db}
}

func (r *postgresSeasonStandingRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresSeasonStandingRepository) BatchCreate(ctx context.Context, exec SQLExecutor, runID uuid.UUID, region models.Region, rows []models.StandingRow) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO season_standings
		    (run_id, region, rank, team_id, team_name, wins, losses, map_wins, map_losses, round_wins, round_losses)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	for _, row := range rows {
		_, err := executor.ExecContext(ctx, query,
			runID, region, row.Rank, row.Team.ID, row.Team.Name,
			row.Wins, row.Losses, row.MapWins, row.MapLosses, row.RoundWins, row.RoundLosses,
		)
		if err != nil {
			return fmt.Errorf("BatchCreate failed for team %d: %w", row.Team.ID, handleStandingError(err))
		}
	}
	return nil
}

func (r *postgresSeasonStandingRepository) ListByRun(ctx context.Context, runID uuid.UUID) ([]SeasonStanding, error) {
	query := `
		SELECT run_id, region, rank, team_id, team_name, wins, losses, map_wins, map_losses, round_wins, round_losses
		FROM season_standings
		WHERE run_id = $1
		ORDER BY region, rank`

	rows, err := r.db.QueryContext(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list standings for run %s: %w", runID, err)
	}
	defer rows.Close()

	var out []SeasonStanding
	for rows.Next() {
		var s SeasonStanding
		if err := rows.Scan(
			&s.RunID, &s.Region, &s.Rank, &s.Team.ID, &s.Team.Name,
			&s.Wins, &s.Losses, &s.MapWins, &s.MapLosses, &s.RoundWins, &s.RoundLosses,
		); err != nil {
			return nil, fmt.Errorf("failed to scan standing: %w", err)
		}
		s.Team.Region = s.Region
		s.MapDifference = s.MapWins - s.MapLosses
		s.RoundDifference = s.RoundWins - s.RoundLosses
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating standings: %w", err)
	}
	return out, nil
}

func handleStandingError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23503": // foreign_key_violation
			return ErrStandingRunInvalid
		case "23505":
			if pqErr.Constraint == "season_standings_run_region_rank_key" {
				return ErrStandingConflict
			}
		}
	}
	return err
}
