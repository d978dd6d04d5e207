package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/Dosada05/league-simulator/models"
)

// RunArchive writes finished simulation runs to a bucket as JSON.
type RunArchive struct {
	uploader FileUploader
	prefix   string
}

func NewRunArchive(uploader FileUploader, prefix string) *RunArchive {
	if prefix == "" {
		prefix = "runs"
	}
	return &RunArchive{uploader: uploader, prefix: prefix}
}

// Key is where run is stored: <prefix>/<kind>/<id>.json, with the year
// as an extra level for yearly runs.
func (a *RunArchive) Key(run *models.SimulationRun) string {
	if run.Year != nil {
		return fmt.Sprintf("%s/%s/%d/%s.json", a.prefix, run.Kind, *run.Year, run.ID)
	}
	return fmt.Sprintf("%s/%s/%s.json", a.prefix, run.Kind, run.ID)
}

// Store uploads the run document, result included.
func (a *RunArchive) Store(ctx context.Context, run *models.SimulationRun) (*UploadResult, error) {
	body, err := json.Marshal(run)
	if err != nil {
		return nil, fmt.Errorf("failed to encode run %s: %w", run.ID, err)
	}
	return a.uploader.Upload(ctx, a.Key(run), "application/json", bytes.NewReader(body))
}

// Remove deletes an archived object by key.
func (a *RunArchive) Remove(ctx context.Context, key string) error {
	if err := a.uploader.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete archived run %s: %w", key, err)
	}
	return nil
}
