package match

import (
	"testing"

	"github.com/Dosada05/league-simulator/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Home is strong on Ascent and has one player weak on Breeze; away is
// strong on Bind. Differentials: Ascent +20, Bind -20, Breeze -4, rest 0.
func draftTeams() (*models.Team, *models.Team) {
	home := newTestTeam(1, 70, map[models.GameMap][]int{
		models.MapAscent: allStrong(),
		models.MapBreeze: {-10},
	})
	away := newTestTeam(2, 70, map[models.GameMap][]int{
		models.MapBind: allStrong(),
	})
	return home, away
}

func TestMapDifferential(t *testing.T) {
	home, away := draftTeams()

	cases := []struct {
		m    models.GameMap
		want int
	}{
		{models.MapAscent, 20},
		{models.MapBind, -20},
		{models.MapBreeze, -4},
		{models.MapHaven, 0},
	}
	for _, tc := range cases {
		t.Run(string(tc.m), func(t *testing.T) {
			assert.Equal(t, tc.want, MapDifferential(home, away, tc.m))
			assert.Equal(t, -tc.want, MapDifferential(away, home, tc.m))
		})
	}
}

func TestStrategicScore_MirrorsOpponent(t *testing.T) {
	home, away := draftTeams()
	assert.Equal(t, 10, StrategicScore(home, away, models.MapAscent))
	assert.Equal(t, -10, StrategicScore(away, home, models.MapAscent))
	assert.Equal(t, -2, StrategicScore(home, away, models.MapBreeze))
}

func TestRunDraft(t *testing.T) {
	home, away := draftTeams()

	cases := []struct {
		name      string
		bestOf    int
		first     *models.Team
		wantTypes []models.MapActionType
		wantActor []int // 0 for the decider
		wantMaps  []models.GameMap
		wantSeq   []models.GameMap
	}{
		{
			name:   "best of one alternates bans",
			bestOf: 1,
			wantTypes: []models.MapActionType{
				models.MapActionBan, models.MapActionBan, models.MapActionBan,
				models.MapActionBan, models.MapActionBan, models.MapActionBan,
				models.MapActionDecider,
			},
			wantActor: []int{1, 2, 1, 2, 1, 2, 0},
			wantMaps: []models.GameMap{
				models.MapBind, models.MapAscent, models.MapBreeze, models.MapHaven,
				models.MapIcebox, models.MapLotus, models.MapSunset,
			},
			wantSeq: []models.GameMap{models.MapSunset},
		},
		{
			name:   "best of three",
			bestOf: 3,
			wantTypes: []models.MapActionType{
				models.MapActionBan, models.MapActionBan, models.MapActionPick,
				models.MapActionPick, models.MapActionBan, models.MapActionBan,
				models.MapActionDecider,
			},
			wantActor: []int{1, 2, 1, 2, 1, 2, 0},
			wantMaps: []models.GameMap{
				models.MapBind, models.MapAscent, models.MapHaven, models.MapBreeze,
				models.MapIcebox, models.MapLotus, models.MapSunset,
			},
			wantSeq: []models.GameMap{models.MapHaven, models.MapBreeze, models.MapSunset},
		},
		{
			name:   "best of five with away as upper-bracket loser",
			bestOf: 5,
			first:  away,
			wantTypes: []models.MapActionType{
				models.MapActionBan, models.MapActionBan, models.MapActionPick,
				models.MapActionPick, models.MapActionPick, models.MapActionPick,
				models.MapActionDecider,
			},
			wantActor: []int{2, 2, 2, 1, 2, 1, 0},
			wantMaps: []models.GameMap{
				models.MapAscent, models.MapHaven, models.MapBind, models.MapIcebox,
				models.MapBreeze, models.MapLotus, models.MapSunset,
			},
			wantSeq: []models.GameMap{
				models.MapBind, models.MapIcebox, models.MapBreeze, models.MapLotus, models.MapSunset,
			},
		},
		{
			name:   "best of five defaults to home banning",
			bestOf: 5,
			wantTypes: []models.MapActionType{
				models.MapActionBan, models.MapActionBan, models.MapActionPick,
				models.MapActionPick, models.MapActionPick, models.MapActionPick,
				models.MapActionDecider,
			},
			wantActor: []int{1, 1, 1, 2, 1, 2, 0},
			wantMaps: []models.GameMap{
				models.MapBind, models.MapBreeze, models.MapAscent, models.MapHaven,
				models.MapIcebox, models.MapLotus, models.MapSunset,
			},
			wantSeq: []models.GameMap{
				models.MapAscent, models.MapHaven, models.MapIcebox, models.MapLotus, models.MapSunset,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := RunDraft(home, away, tc.first, tc.bestOf)
			require.NoError(t, err)

			actions := d.Actions
			require.Len(t, actions, len(tc.wantTypes))
			for i, a := range actions {
				assert.Equal(t, tc.wantTypes[i], a.Type, "step %d type", i)
				assert.Equal(t, tc.wantMaps[i], a.Map, "step %d map", i)
				if tc.wantActor[i] == 0 {
					assert.Nil(t, a.TeamID, "step %d should have no actor", i)
				} else {
					require.NotNil(t, a.TeamID, "step %d actor", i)
					assert.Equal(t, tc.wantActor[i], *a.TeamID, "step %d actor", i)
				}
			}
			assert.Equal(t, tc.wantSeq, d.Sequence)
		})
	}
}

func TestRunDraft_UsesEveryMapOnce(t *testing.T) {
	home, away := draftTeams()
	for _, bo := range []int{1, 3, 5} {
		d, err := RunDraft(home, away, nil, bo)
		require.NoError(t, err)

		seen := map[models.GameMap]bool{}
		for _, a := range d.Actions {
			assert.False(t, seen[a.Map], "map %s used twice in best-of-%d", a.Map, bo)
			seen[a.Map] = true
		}
		assert.Len(t, seen, len(models.MapPool()))
		assert.Len(t, d.Sequence, bo)
	}
}

func TestRunDraft_TiesResolveInPoolOrder(t *testing.T) {
	home := newTestTeam(1, 50, nil)
	away := newTestTeam(2, 50, nil)

	d, err := RunDraft(home, away, nil, 3)
	require.NoError(t, err)

	pool := models.MapPool()
	for i, a := range d.Actions {
		assert.Equal(t, pool[i], a.Map)
	}
}

func TestRunDraft_UnsupportedBestOf(t *testing.T) {
	home, away := draftTeams()
	_, err := RunDraft(home, away, nil, 7)
	assert.ErrorIs(t, err, ErrUnsupportedBestOf)
}
