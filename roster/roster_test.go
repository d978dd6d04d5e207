package roster

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/Dosada05/league-simulator/models"
	"github.com/Dosada05/league-simulator/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTeamNames(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    map[models.Region][]string
		wantErr error
	}{
		{
			name:  "sections",
			input: "ignored\n[Europe]\nA\n\n B \n[China]\nC\n",
			want: map[models.Region][]string{
				models.RegionEurope: {"A", "B"},
				models.RegionChina:  {"C"},
			},
		},
		{
			name:  "empty section",
			input: "[Pacific]\n",
			want:  map[models.Region][]string{models.RegionPacific: {}},
		},
		{name: "unknown region", input: "[Atlantis]\nX\n", wantErr: ErrUnknownRegion},
		{name: "no sections", input: "X\nY\n", wantErr: ErrEmptyTable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseTeamNames(strings.NewReader(tc.input))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDefaultNames(t *testing.T) {
	names, err := DefaultNames()
	require.NoError(t, err)
	for _, r := range models.Regions() {
		assert.GreaterOrEqual(t, len(names.Teams[r]), 4, "region %s", r)
	}
	assert.NotEmpty(t, names.FirstNames)
	assert.NotEmpty(t, names.LastNames)
	assert.NotEmpty(t, names.Gamertags)
}

func TestLoadNames_MissingList(t *testing.T) {
	fsys := fstest.MapFS{
		"team_names.txt":  {Data: []byte("[Europe]\nA\n")},
		"first_names.txt": {Data: []byte("Ann\n")},
		"last_names.txt":  {Data: []byte("\n")},
		"gamertags.txt":   {Data: []byte("ace\n")},
	}
	_, err := LoadNames(fsys)
	assert.ErrorIs(t, err, ErrEmptyTable)
}

func testGenerator(t *testing.T) *Generator {
	t.Helper()
	names, err := DefaultNames()
	require.NoError(t, err)
	return NewGenerator(names)
}

func TestGenerator_League(t *testing.T) {
	g := testGenerator(t)
	rng := random.New(1)

	teams, err := g.League(rng, models.RegionEurope)
	require.NoError(t, err)
	require.Len(t, teams, len(g.Names().Teams[models.RegionEurope]))

	teamIDs, playerIDs := map[int]bool{}, map[int]bool{}
	for _, team := range teams {
		assert.Equal(t, models.RegionEurope, team.Region)
		assert.False(t, teamIDs[team.ID])
		teamIDs[team.ID] = true
		require.Len(t, team.Players, models.RosterSize)
		for _, p := range team.Players {
			assert.False(t, playerIDs[p.ID])
			playerIDs[p.ID] = true
			assert.GreaterOrEqual(t, p.Skill, minGeneratedSkill)
			assert.LessOrEqual(t, p.Skill, maxGeneratedSkill)
			assert.GreaterOrEqual(t, p.ContractYears, 1)
			assert.LessOrEqual(t, p.ContractYears, maxContractYears)
			for _, mod := range p.MapModifiers {
				assert.Contains(t, models.MapModifierValues(), mod)
			}
		}
	}

	_, err = NewGenerator(&Names{Teams: map[models.Region][]string{}}).League(rng, models.RegionChina)
	assert.ErrorIs(t, err, ErrEmptyTable)
}

func TestGenerator_OffSeason(t *testing.T) {
	g := testGenerator(t)
	team := g.Team(random.New(2), "Test", models.RegionPacific)
	for i, p := range team.Players {
		p.ContractYears = 1 + i%2
	}
	expiring := []int{team.Players[0].ID, team.Players[2].ID, team.Players[4].ID}
	staying := []*models.Player{team.Players[1], team.Players[3]}

	moves := g.OffSeason(random.New(3), []*models.Team{team})

	require.Len(t, moves, 3)
	require.Len(t, team.Players, models.RosterSize)
	for _, p := range team.Players {
		assert.NotContains(t, expiring, p.ID)
	}
	for _, p := range staying {
		assert.Contains(t, team.Players, p)
		assert.Equal(t, 1, p.ContractYears)
	}
	assert.Equal(t, team.Ref(), moves[0].Team)
}
