package storage

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/Dosada05/league-simulator/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryUploader struct {
	base    string
	objects map[string][]byte
	types   map[string]string
}

func newMemoryUploader(base string) *memoryUploader {
	return &memoryUploader{base: base, objects: map[string][]byte{}, types: map[string]string{}}
}

func (m *memoryUploader) Upload(_ context.Context, key, contentType string, r io.Reader) (*UploadResult, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	m.objects[key] = b
	m.types[key] = contentType
	return &UploadResult{Key: key, Location: m.GetPublicURL(key)}, nil
}

func (m *memoryUploader) Delete(_ context.Context, key string) error {
	delete(m.objects, key)
	return nil
}

func (m *memoryUploader) GetPublicURL(key string) string {
	return PublicURL(m.base, key)
}

func TestRunArchive_Store(t *testing.T) {
	up := newMemoryUploader("https://cdn.example.com/league/")
	archive := NewRunArchive(up, "")

	year := 2024
	run := &models.SimulationRun{
		ID:     uuid.MustParse("3f1c2b1a-0000-4000-8000-000000000001"),
		Kind:   models.SimulationYear,
		Year:   &year,
		Seed:   18446744073709551615,
		Result: json.RawMessage(`{"year":2024}`),
	}

	res, err := archive.Store(context.Background(), run)
	require.NoError(t, err)

	key := "runs/year/2024/3f1c2b1a-0000-4000-8000-000000000001.json"
	assert.Equal(t, key, res.Key)
	assert.Equal(t, "https://cdn.example.com/league/"+key, res.Location)
	assert.Equal(t, "application/json", up.types[key])

	var stored map[string]any
	require.NoError(t, json.Unmarshal(up.objects[key], &stored))
	assert.Equal(t, "18446744073709551615", stored["seed"])
	assert.Equal(t, map[string]any{"year": float64(2024)}, stored["result"])
}

func TestRunArchive_KeyForSeries(t *testing.T) {
	archive := NewRunArchive(newMemoryUploader(""), "archive")
	run := &models.SimulationRun{ID: uuid.MustParse("3f1c2b1a-0000-4000-8000-000000000002"), Kind: models.SimulationSeries}
	assert.Equal(t, "archive/series/3f1c2b1a-0000-4000-8000-000000000002.json", archive.Key(run))
}

func TestPublicURL(t *testing.T) {
	cases := []struct {
		base, key, want string
	}{
		{"https://cdn.example.com", "runs/a.json", "https://cdn.example.com/runs/a.json"},
		{"https://cdn.example.com/", "/runs/a.json", "https://cdn.example.com/runs/a.json"},
		{"https://cdn.example.com/bucket", "a.json", "https://cdn.example.com/bucket/a.json"},
		{"", "a.json", ""},
		{"https://cdn.example.com", "", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, PublicURL(tc.base, tc.key), "%s + %s", tc.base, tc.key)
	}
}

func TestRunArchive_Remove(t *testing.T) {
	up := newMemoryUploader("https://cdn.example.com")
	archive := NewRunArchive(up, "")
	run := &models.SimulationRun{ID: uuid.MustParse("3f1c2b1a-0000-4000-8000-000000000003"), Kind: models.SimulationSeries}

	res, err := archive.Store(context.Background(), run)
	require.NoError(t, err)
	require.Contains(t, up.objects, res.Key)

	require.NoError(t, archive.Remove(context.Background(), res.Key))
	assert.NotContains(t, up.objects, res.Key)
}
