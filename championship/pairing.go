package championship

import (
	"fmt"

	"github.com/Dosada05/league-simulator/models"
	"github.com/Dosada05/league-simulator/random"
)

// Pairing is one opening knockout match between a group winner and a
// runner-up of a different group.
type Pairing struct {
	First       *models.Team
	FirstGroup  int
	Second      *models.Team
	SecondGroup int
}

func (p Pairing) Matchup() models.KnockoutMatchup {
	return models.KnockoutMatchup{
		First:       p.First.Ref(),
		FirstGroup:  p.FirstGroup,
		Second:      p.Second.Ref(),
		SecondGroup: p.SecondGroup,
	}
}

// crossPattern lists, per pairing, the group of the winner and the group
// of the runner-up: 1stA-2ndB, 1stC-2ndD, 1stB-2ndA, 1stD-2ndC.
var crossPattern = [GroupCount][2]int{{0, 1}, {2, 3}, {1, 0}, {3, 2}}

// Pair builds one pairing per group winner such that nobody meets a team
// from its own group.
func Pair(rng random.Source, groups []models.GroupResult, mode models.KnockoutPairing) ([]Pairing, error) {
	n := len(groups)
	for _, g := range groups {
		if g.FirstSeed == nil || g.SecondSeed == nil {
			return nil, fmt.Errorf("%w: group %d has no seeds", ErrInvalidQualifierCount, g.Index+1)
		}
	}

	var pattern [][2]int
	switch mode {
	case models.PairingCross:
		if n != GroupCount {
			return nil, fmt.Errorf("%w: cross pattern needs %d groups, got %d", ErrNoValidPairing, GroupCount, n)
		}
		pattern = append(pattern, crossPattern[:]...)
	default:
		perms := derangements(n)
		if len(perms) == 0 {
			return nil, fmt.Errorf("%w: %d groups", ErrNoValidPairing, n)
		}
		perm := perms[rng.IntN(len(perms))]
		for i, j := range perm {
			pattern = append(pattern, [2]int{i, j})
		}
	}

	pairs := make([]Pairing, len(pattern))
	for i, p := range pattern {
		pairs[i] = Pairing{
			First:       groups[p[0]].FirstSeed,
			FirstGroup:  groups[p[0]].Index,
			Second:      groups[p[1]].SecondSeed,
			SecondGroup: groups[p[1]].Index,
		}
	}
	return pairs, nil
}

// derangements lists every permutation of 0..n-1 with no fixed point.
func derangements(n int) [][]int {
	var out [][]int
	perm := make([]int, n)
	used := make([]bool, n)
	var rec func(pos int)
	rec = func(pos int) {
		if pos == n {
			out = append(out, append([]int(nil), perm...))
			return
		}
		for v := 0; v < n; v++ {
			if used[v] || v == pos {
				continue
			}
			used[v], perm[pos] = true, v
			rec(pos + 1)
			used[v] = false
		}
	}
	if n > 0 {
		rec(0)
	}
	return out
}

// SeedList orders the pairings' teams by seed so that
// brackets.SeedOrder brings the pairings back together: winners take
// seeds 1, 4, 3, 2 and their opponents 8, 5, 6, 7.
func SeedList(pairs []Pairing) []*models.Team {
	if len(pairs) != GroupCount {
		out := make([]*models.Team, 0, 2*len(pairs))
		for _, p := range pairs {
			out = append(out, p.First, p.Second)
		}
		return out
	}
	firstSeeds := [GroupCount]int{1, 4, 3, 2}
	secondSeeds := [GroupCount]int{8, 5, 6, 7}
	out := make([]*models.Team, KnockoutTeams)
	for i, p := range pairs {
		out[firstSeeds[i]-1] = p.First
		out[secondSeeds[i]-1] = p.Second
	}
	return out
}
