package match

import (
	"testing"

	"github.com/Dosada05/league-simulator/models"
	"github.com/Dosada05/league-simulator/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertMapScore(t *testing.T, m models.MapResult) {
	t.Helper()
	hi, lo := max(m.HomeScore, m.AwayScore), min(m.HomeScore, m.AwayScore)
	regulation := hi == 13 && lo <= 11
	overtime := lo >= 12 && hi-lo == 2
	assert.True(t, regulation || overtime, "invalid final score %d-%d", m.HomeScore, m.AwayScore)
	assert.Len(t, m.Rounds, m.HomeScore+m.AwayScore)
	if m.HomeScore > m.AwayScore {
		assert.Equal(t, models.SideHome, m.Winner)
	} else {
		assert.Equal(t, models.SideAway, m.Winner)
	}
}

func TestEngine_Play_SeriesInvariants(t *testing.T) {
	e := NewEngine(Options{})
	home := newTestTeam(1, 72, map[models.GameMap][]int{models.MapLotus: {10, 10}})
	away := newTestTeam(2, 64, map[models.GameMap][]int{models.MapHaven: {10, -10, 10}})

	for _, bo := range []int{1, 3, 5} {
		need := WinsNeeded(bo)
		for seed := uint64(0); seed < 60; seed++ {
			res, err := e.Play(random.New(seed), Fixture{Home: home, Away: away, BestOf: bo})
			require.NoError(t, err)

			winnerWins, loserWins := res.MapWinsFor(res.WinnerID)
			assert.Equal(t, need, winnerWins)
			assert.Less(t, loserWins, need)
			assert.Equal(t, winnerWins+loserWins, len(res.Maps))
			assert.LessOrEqual(t, len(res.Maps), bo)
			assert.Len(t, res.MapSequence, bo)
			assert.NotEqual(t, res.WinnerID, res.LoserID)

			for i, m := range res.Maps {
				assert.Equal(t, res.MapSequence[i], m.Map, "maps are played in pick order")
				assertMapScore(t, m)
			}
		}
	}
}

func TestEngine_EncounterSkillUsesMapSkillAndGroupEdge(t *testing.T) {
	e := NewEngine(Options{})
	mods := map[models.GameMap][]int{}
	for _, m := range models.MapPool() {
		mods[m] = []int{10, -10, 0, 10, -10}
	}
	home := newTestTeam(1, 40, mods)
	away := newTestTeam(2, 55, mods)
	players := map[int]*models.Player{}
	for i, p := range append(append([]*models.Player{}, home.Players...), away.Players...) {
		p.Skill += 3 * (i % models.RosterSize)
		players[p.ID] = p
	}
	// Floored at MinSkill on maps where the modifier is negative.
	home.Players[0].Skill = 1

	groupSkill := func(ids []int, m models.GameMap) float64 {
		total := 0
		for _, id := range ids {
			p, ok := players[id]
			require.True(t, ok, "unknown player %d", id)
			total += p.MapSkill(m)
		}
		return float64(total)
	}

	for seed := uint64(0); seed < 10; seed++ {
		res, err := e.Play(random.New(seed), Fixture{Home: home, Away: away, BestOf: 3})
		require.NoError(t, err)
		for _, m := range res.Maps {
			for _, r := range m.Rounds {
				for _, enc := range r.Encounters {
					diff := float64(len(enc.HomePlayers) - len(enc.AwayPlayers))
					wantHome := groupSkill(enc.HomePlayers, m.Map) * (1 + 0.1*diff)
					wantAway := groupSkill(enc.AwayPlayers, m.Map) * (1 - 0.1*diff)
					assert.InDelta(t, wantHome, enc.HomeSkill, 1e-9, "home skill on %s", m.Map)
					assert.InDelta(t, wantAway, enc.AwaySkill, 1e-9, "away skill on %s", m.Map)
				}
			}
		}
	}
}

func TestEngine_Play_IsDeterministicForSeed(t *testing.T) {
	e := NewEngine(Options{})
	home := newTestTeam(1, 60, nil)
	away := newTestTeam(2, 60, nil)

	a, err := e.Play(random.New(11), Fixture{Home: home, Away: away, BestOf: 3})
	require.NoError(t, err)
	b, err := e.Play(random.New(11), Fixture{Home: home, Away: away, BestOf: 3})
	require.NoError(t, err)

	assert.Equal(t, a.WinnerID, b.WinnerID)
	require.Equal(t, len(a.Maps), len(b.Maps))
	for i := range a.Maps {
		assert.Equal(t, a.Maps[i].HomeScore, b.Maps[i].HomeScore)
		assert.Equal(t, a.Maps[i].AwayScore, b.Maps[i].AwayScore)
	}
}

func TestEngine_Play_StrongerTeamWinsMoreOften(t *testing.T) {
	e := NewEngine(Options{})
	strong := newTestTeam(1, 90, nil)
	weak := newTestTeam(2, 50, nil)

	const runs = 1000
	wins := 0
	for seed := uint64(0); seed < runs; seed++ {
		home, away := strong, weak
		if seed%2 == 1 {
			home, away = weak, strong
		}
		res, err := e.Play(random.New(seed), Fixture{Home: home, Away: away, BestOf: 3})
		require.NoError(t, err)
		if res.WinnerID == strong.ID {
			wins++
		}
	}
	assert.Greater(t, float64(wins)/runs, 0.65)
}

func TestEngine_Encounters(t *testing.T) {
	e := NewEngine(Options{})
	home := newTestTeam(1, 100, nil)
	away := newTestTeam(2, 1, nil)

	res, err := e.Play(random.New(3), Fixture{Home: home, Away: away, BestOf: 1})
	require.NoError(t, err)

	for _, m := range res.Maps {
		for _, r := range m.Rounds {
			require.NotEmpty(t, r.Encounters)
			assert.LessOrEqual(t, len(r.Encounters), 2*models.RosterSize-1)
			for _, enc := range r.Encounters {
				assert.GreaterOrEqual(t, enc.HomeWinProbability, 0.1)
				assert.LessOrEqual(t, enc.HomeWinProbability, 0.9)
				assert.NotEmpty(t, enc.HomePlayers)
				assert.NotEmpty(t, enc.AwayPlayers)
				assert.LessOrEqual(t, len(enc.HomePlayers), 3)
				assert.LessOrEqual(t, len(enc.AwayPlayers), 3)
			}
		}
	}
}

func TestEngine_Play_RecordsUpperBracketLoser(t *testing.T) {
	e := NewEngine(Options{})
	home := newTestTeam(1, 60, nil)
	away := newTestTeam(2, 60, nil)

	res, err := e.Play(random.New(1), Fixture{Home: home, Away: away, BestOf: 5, UpperBracketLoser: away})
	require.NoError(t, err)
	require.NotNil(t, res.UpperBracketLoserID)
	assert.Equal(t, away.ID, *res.UpperBracketLoserID)
	require.NotNil(t, res.Draft[0].TeamID)
	assert.Equal(t, away.ID, *res.Draft[0].TeamID)
}

func TestEngine_Play_RejectsInvalidFixtures(t *testing.T) {
	e := NewEngine(Options{})
	home := newTestTeam(1, 60, nil)
	away := newTestTeam(2, 60, nil)
	short := newTestTeam(3, 60, nil)
	short.Players = short.Players[:4]
	empty := &models.Team{ID: 4, Name: "empty"}
	outsider := newTestTeam(5, 60, nil)

	cases := []struct {
		name    string
		fixture Fixture
		wantErr error
	}{
		{"nil home", Fixture{Away: away, BestOf: 3}, ErrNilTeam},
		{"empty roster", Fixture{Home: home, Away: empty, BestOf: 3}, ErrEmptyRoster},
		{"short roster", Fixture{Home: short, Away: away, BestOf: 3}, ErrInvalidRosterSize},
		{"same team", Fixture{Home: home, Away: home, BestOf: 3}, ErrSameTeam},
		{"even best-of", Fixture{Home: home, Away: away, BestOf: 2}, ErrUnsupportedBestOf},
		{"upper-bracket loser not playing", Fixture{Home: home, Away: away, BestOf: 5, UpperBracketLoser: outsider}, ErrNotInFixture},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := e.Play(random.New(1), tc.fixture)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestEngine_Play_BoundsOvertime(t *testing.T) {
	e := NewEngine(Options{MaxMapRounds: 5})
	_, err := e.Play(random.New(1), Fixture{Home: newTestTeam(1, 60, nil), Away: newTestTeam(2, 60, nil), BestOf: 1})
	assert.ErrorIs(t, err, ErrMapNotConverged)
}

func TestWinsNeeded(t *testing.T) {
	assert.Equal(t, 1, WinsNeeded(1))
	assert.Equal(t, 2, WinsNeeded(3))
	assert.Equal(t, 3, WinsNeeded(5))
}

func TestMapDecided(t *testing.T) {
	cases := []struct {
		home, away int
		want       bool
	}{
		{13, 11, true},
		{13, 12, false},
		{12, 12, false},
		{14, 12, true},
		{15, 14, false},
		{16, 18, true},
		{7, 13, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, mapDecided(tc.home, tc.away, 13), "%d-%d", tc.home, tc.away)
	}
}
