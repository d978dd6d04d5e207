package brackets

import (
	"testing"

	"github.com/Dosada05/league-simulator/match"
	"github.com/Dosada05/league-simulator/models"
	"github.com/Dosada05/league-simulator/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleElimination(t *testing.T) {
	cases := []struct {
		name       string
		teams      int
		wantOrder  []int
		wantStages []models.BracketStage
	}{
		{
			name:      "eight teams",
			teams:     8,
			wantOrder: []int{1, 5, 3, 7, 2, 4, 6, 8},
			wantStages: []models.BracketStage{
				models.StageQuarterFinal, models.StageQuarterFinal, models.StageQuarterFinal, models.StageQuarterFinal,
				models.StageSemiFinal, models.StageSemiFinal,
				models.StageFinal,
			},
		},
		{
			name:      "six teams with a bye",
			teams:     6,
			wantOrder: []int{1, 5, 3, 2, 4, 6},
			wantStages: []models.BracketStage{
				models.StageQuarterFinal, models.StageQuarterFinal, models.StageQuarterFinal,
				models.StageSemiFinal,
				models.StageFinal,
			},
		},
		{
			name:       "two teams",
			teams:      2,
			wantOrder:  []int{1, 2},
			wantStages: []models.BracketStage{models.StageFinal},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			player := &stubPlayer{}
			res, err := NewSingleEliminationGenerator(player, SingleEliminationOptions{}).Run(random.New(1), newTeams(tc.teams))
			require.NoError(t, err)
			assert.Equal(t, tc.wantOrder, models.TeamIDs(res.Standings()))
			assert.Equal(t, tc.wantStages, stages(res))

			for i, f := range player.fixtures {
				if i == len(player.fixtures)-1 {
					assert.Equal(t, 5, f.BestOf)
				} else {
					assert.Equal(t, 3, f.BestOf)
				}
			}
		})
	}
}

func TestSingleElimination_WithEngine(t *testing.T) {
	gen := NewSingleEliminationGenerator(match.NewEngine(match.Options{}), SingleEliminationOptions{})
	for seed := uint64(0); seed < 10; seed++ {
		teams := newTeams(8)
		res, err := gen.Run(random.New(seed), teams)
		require.NoError(t, err)
		assert.Len(t, res.Matches, 7)
		assert.ElementsMatch(t, models.TeamIDs(teams), models.TeamIDs(res.Standings()))
		for _, team := range res.EliminationOrder {
			assert.Equal(t, 1, res.Losses[team.ID])
		}
	}
}

func TestNumRounds(t *testing.T) {
	for n, want := range map[int]int{1: 0, 2: 1, 3: 2, 4: 2, 5: 3, 8: 3, 9: 4, 16: 4} {
		assert.Equal(t, want, NumRounds(n), "n=%d", n)
	}
}
