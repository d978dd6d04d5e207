package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type SimulationKind string

const (
	SimulationSeries SimulationKind = "series"
	SimulationYear   SimulationKind = "year"
)

// SimulationRun is a persisted simulation and its result document.
type SimulationRun struct {
	ID         uuid.UUID       `json:"id" db:"id"`
	Kind       SimulationKind  `json:"kind" db:"kind"`
	Year       *int            `json:"year,omitempty" db:"year"`
	Seed       uint64          `json:"seed,string" db:"seed"`
	Champion   *string         `json:"champion,omitempty" db:"champion"`
	Result     json.RawMessage `json:"result,omitempty" db:"result"`
	ArchiveKey *string         `json:"-" db:"archive_key"`
	ArchiveURL *string         `json:"archive_url,omitempty" db:"archive_url"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
}
