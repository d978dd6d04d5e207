package services

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/Dosada05/league-simulator/config"
	"github.com/Dosada05/league-simulator/hub"
	"github.com/Dosada05/league-simulator/match"
	"github.com/Dosada05/league-simulator/models"
	"github.com/Dosada05/league-simulator/repositories"
	"github.com/Dosada05/league-simulator/roster"
	"github.com/Dosada05/league-simulator/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testSimulationConfig() config.SimulationConfig {
	return config.SimulationConfig{
		SeasonBestOf:  1,
		SeasonRounds:  1,
		PlayoffTeams:  4,
		WorldsPairing: models.PairingRandom,
		WorldsFormat:  models.KnockoutDoubleElimination,
		StartYear:     2023,
	}
}

func newTestLeague(t *testing.T, cfg config.SimulationConfig) *LeagueService {
	t.Helper()
	names, err := roster.DefaultNames()
	require.NoError(t, err)
	svc, err := NewLeagueService(match.NewEngine(match.Options{}), roster.NewGenerator(names), cfg, 7, nil)
	require.NoError(t, err)
	return svc
}

type eventLog struct {
	mu     sync.Mutex
	events []SeriesEvent
}

func (l *eventLog) notify(ev SeriesEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = append(l.events, ev)
}

func (l *eventLog) count(c Competition) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, ev := range l.events {
		if ev.Competition == c {
			n++
		}
	}
	return n
}

type fakeRunStore struct {
	err    error
	runs   []*models.SimulationRun
	tables []map[models.Region][]models.StandingRow
}

func (f *fakeRunStore) Save(_ context.Context, run *models.SimulationRun, tables map[models.Region][]models.StandingRow) error {
	if f.err != nil {
		return f.err
	}
	f.runs = append(f.runs, run)
	f.tables = append(f.tables, tables)
	return nil
}

type fakeRunRepo struct {
	runs     map[uuid.UUID]*models.SimulationRun
	archived  map[uuid.UUID]string
	updateErr error
}

func newFakeRunRepo() *fakeRunRepo {
	return &fakeRunRepo{runs: map[uuid.UUID]*models.SimulationRun{}, archived: map[uuid.UUID]string{}}
}

func (f *fakeRunRepo) Create(_ context.Context, _ repositories.SQLExecutor, run *models.SimulationRun) error {
	f.runs[run.ID] = run
	return nil
}

func (f *fakeRunRepo) GetByID(_ context.Context, id uuid.UUID) (*models.SimulationRun, error) {
	run, ok := f.runs[id]
	if !ok {
		return nil, repositories.ErrSimulationRunNotFound
	}
	return run, nil
}

func (f *fakeRunRepo) List(_ context.Context, _ repositories.ListSimulationRunsFilter) ([]*models.SimulationRun, error) {
	out := make([]*models.SimulationRun, 0, len(f.runs))
	for _, r := range f.runs {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRunRepo) UpdateArchive(_ context.Context, id uuid.UUID, _, url string) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.archived[id] = url
	return nil
}

type fakeStandingRepo struct {
	rows []repositories.SeasonStanding
}

func (f *fakeStandingRepo) BatchCreate(_ context.Context, _ repositories.SQLExecutor, runID uuid.UUID, region models.Region, rows []models.StandingRow) error {
	for _, r := range rows {
		f.rows = append(f.rows, repositories.SeasonStanding{RunID: runID, Region: region, StandingRow: r})
	}
	return nil
}

func (f *fakeStandingRepo) ListByRun(_ context.Context, runID uuid.UUID) ([]repositories.SeasonStanding, error) {
	var out []repositories.SeasonStanding
	for _, r := range f.rows {
		if r.RunID == runID {
			out = append(out, r)
		}
	}
	return out, nil
}

type memoryUploader struct {
	fail    bool
	objects map[string][]byte
	deleted []string
}

func newMemoryUploader() *memoryUploader {
	return &memoryUploader{objects: map[string][]byte{}}
}

func (m *memoryUploader) Upload(_ context.Context, key, _ string, r io.Reader) (*storage.UploadResult, error) {
	if m.fail {
		return nil, errors.New("bucket unavailable")
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	m.objects[key] = b
	return &storage.UploadResult{Key: key, Location: m.GetPublicURL(key)}, nil
}

func (m *memoryUploader) Delete(_ context.Context, key string) error {
	delete(m.objects, key)
	m.deleted = append(m.deleted, key)
	return nil
}

func (m *memoryUploader) GetPublicURL(key string) string {
	return storage.PublicURL("https://cdn.test", key)
}

type fakeBroadcaster struct {
	mu       sync.Mutex
	messages []hub.WebSocketMessage
}

func (f *fakeBroadcaster) BroadcastToRoom(roomID string, message interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if roomID != hub.LeagueRoom {
		return
	}
	if msg, ok := message.(hub.WebSocketMessage); ok {
		f.messages = append(f.messages, msg)
	}
}

func (f *fakeBroadcaster) types() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.messages))
	for i, m := range f.messages {
		out[i] = m.Type
	}
	return out
}
