package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/Dosada05/league-simulator/models"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	ErrSimulationRunNotFound = errors.New("simulation run not found")
	ErrSimulationRunConflict = errors.New("simulation run already exists")
	ErrSimulationRunInvalid  = errors.New("simulation run violates a table constraint")
)

type ListSimulationRunsFilter struct {
	Kind   *models.SimulationKind
	Limit  int
	Offset int
}

type SimulationRunRepository interface {
	Create(ctx context.Context, exec SQLExecutor, run *models.SimulationRun) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SimulationRun, error)
	List(ctx context.Context, filter ListSimulationRunsFilter) ([]*models.SimulationRun, error)
	UpdateArchive(ctx context.Context, id uuid.UUID, key, url string) error
}

type postgresSimulationRunRepository struct {
	db *sql.DB
}

func NewPostgresSimulationRunRepository(db *sql.DB) SimulationRunRepository {
	return &postgresSimulationRunRepository{db: db}
}

func (r *postgresSimulationRunRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresSimulationRunRepository) Create(ctx context.Context, exec SQLExecutor, run *models.SimulationRun) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO simulation_runs (id, kind, year, seed, champion, result)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`

	err := executor.QueryRowContext(ctx, query,
		run.ID, run.Kind, run.Year, strconv.FormatUint(run.Seed, 10), run.Champion, []byte(run.Result),
	).Scan(&run.CreatedAt)

	return handleSimulationRunError(err)
}

func (r *postgresSimulationRunRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.SimulationRun, error) {
	query := `
		SELECT id, kind, year, seed, champion, result, archive_key, archive_url, created_at
		FROM simulation_runs
		WHERE id = $1`
	return scanSimulationRun(r.db.QueryRowContext(ctx, query, id), true)
}

// List returns runs newest first, without their result documents.
func (r *postgresSimulationRunRepository) List(ctx context.Context, filter ListSimulationRunsFilter) ([]*models.SimulationRun, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	query := `
		SELECT id, kind, year, seed, champion, archive_key, archive_url, created_at
		FROM simulation_runs
		WHERE ($1::text IS NULL OR kind = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	var kind *string
	if filter.Kind != nil {
		k := string(*filter.Kind)
		kind = &k
	}
	rows, err := r.db.QueryContext(ctx, query, kind, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list simulation runs: %w", err)
	}
	defer rows.Close()

	runs := make([]*models.SimulationRun, 0, filter.Limit)
	for rows.Next() {
		run, err := scanSimulationRun(rows, false)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating simulation runs: %w", err)
	}
	return runs, nil
}

func (r *postgresSimulationRunRepository) UpdateArchive(ctx context.Context, id uuid.UUID, key, url string) error {
	query := `UPDATE simulation_runs SET archive_key = $1, archive_url = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, key, url, id)
	if err != nil {
		return handleSimulationRunError(err)
	}
	return checkAffectedRows(result, ErrSimulationRunNotFound)
}

func scanSimulationRun(row interface{ Scan(...interface{}) error }, withResult bool) (*models.SimulationRun, error) {
	var (
		run    models.SimulationRun
		year   sql.NullInt64
		seed   string
		result []byte
	)
	dest := []interface{}{&run.ID, &run.Kind, &year, &seed, &run.Champion}
	if withResult {
		dest = append(dest, &result)
	}
	dest = append(dest, &run.ArchiveKey, &run.ArchiveURL, &run.CreatedAt)

	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSimulationRunNotFound
		}
		return nil, fmt.Errorf("failed to scan simulation run: %w", err)
	}

	parsed, err := strconv.ParseUint(seed, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("simulation run %s has invalid seed %q: %w", run.ID, seed, err)
	}
	run.Seed = parsed
	if year.Valid {
		y := int(year.Int64)
		run.Year = &y
	}
	if withResult {
		run.Result = result
	}
	return &run, nil
}

func handleSimulationRunError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrSimulationRunNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505": // unique_violation
			return ErrSimulationRunConflict
		case "23514", "23502": // check_violation, not_null_violation
			return fmt.Errorf("%w: %s", ErrSimulationRunInvalid, pqErr.Constraint)
		}
	}
	return err
}
