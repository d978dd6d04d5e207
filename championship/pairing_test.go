package championship

import (
	"testing"

	"github.com/Dosada05/league-simulator/brackets"
	"github.com/Dosada05/league-simulator/models"
	"github.com/Dosada05/league-simulator/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededGroups() []models.GroupResult {
	teams := field()
	groups := make([]models.GroupResult, GroupCount)
	for i := range groups {
		groups[i] = models.GroupResult{Index: i, FirstSeed: teams[2*i], SecondSeed: teams[2*i+1]}
	}
	return groups
}

func TestPair_Cross(t *testing.T) {
	pairs, err := Pair(random.New(1), seededGroups(), models.PairingCross)
	require.NoError(t, err)

	got := make([][2]int, len(pairs))
	for i, p := range pairs {
		got[i] = [2]int{p.FirstGroup, p.SecondGroup}
	}
	assert.Equal(t, [][2]int{{0, 1}, {2, 3}, {1, 0}, {3, 2}}, got)
}

func TestPair_RandomNeverRematchesAGroup(t *testing.T) {
	groups := seededGroups()
	seen := map[[GroupCount]int]bool{}
	for seed := uint64(0); seed < 200; seed++ {
		pairs, err := Pair(random.New(seed), groups, models.PairingRandom)
		require.NoError(t, err)
		require.Len(t, pairs, GroupCount)

		var key [GroupCount]int
		seconds := map[int]bool{}
		for i, p := range pairs {
			assert.NotEqual(t, p.FirstGroup, p.SecondGroup)
			assert.Equal(t, i, p.FirstGroup)
			assert.False(t, seconds[p.SecondGroup], "runner-up used twice")
			seconds[p.SecondGroup] = true
			key[i] = p.SecondGroup
		}
		seen[key] = true
	}
	assert.Len(t, seen, 9, "every derangement of four groups should come up")
}

func TestPair_Errors(t *testing.T) {
	_, err := Pair(random.New(1), seededGroups()[:1], models.PairingRandom)
	assert.ErrorIs(t, err, ErrNoValidPairing)

	_, err = Pair(random.New(1), seededGroups()[:3], models.PairingCross)
	assert.ErrorIs(t, err, ErrNoValidPairing)

	groups := seededGroups()
	groups[2].SecondSeed = nil
	_, err = Pair(random.New(1), groups, models.PairingRandom)
	assert.ErrorIs(t, err, ErrInvalidQualifierCount)
}

func TestDerangements(t *testing.T) {
	assert.Len(t, derangements(1), 0)
	assert.Len(t, derangements(2), 1)
	assert.Len(t, derangements(3), 2)
	assert.Len(t, derangements(4), 9)
}

func TestSeedList_RoundTripsThroughSeedOrder(t *testing.T) {
	pairs, err := Pair(random.New(7), seededGroups(), models.PairingRandom)
	require.NoError(t, err)

	ordered := brackets.SeedOrder(SeedList(pairs))
	for i, p := range pairs {
		assert.Equal(t, p.First, ordered[2*i])
		assert.Equal(t, p.Second, ordered[2*i+1])
	}
}
