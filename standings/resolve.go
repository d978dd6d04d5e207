package standings

import (
	"cmp"
	"slices"

	"github.com/Dosada05/league-simulator/random"
)

// Criterion splits a tied group into ordered subgroups. A subgroup with
// more than one record is still tied and goes to the next criterion.
type Criterion func(group []Record, rng random.Source) [][]Record

// DefaultCriteria is the cascade applied inside a (wins, losses) group.
func DefaultCriteria() []Criterion {
	return []Criterion{HeadToHead, ByMapDifference, ByRoundDifference, RandomOrder}
}

// Resolve orders records by wins descending and losses ascending, then
// breaks ties inside every group with DefaultCriteria. The result holds
// every input record exactly once.
func Resolve(records []Record, rng random.Source) []Record {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b Record) int {
		if c := cmp.Compare(b.Wins, a.Wins); c != 0 {
			return c
		}
		return cmp.Compare(a.Losses, b.Losses)
	})

	criteria := DefaultCriteria()
	out := make([]Record, 0, len(sorted))
	for _, group := range splitRuns(sorted, func(a, b Record) bool {
		return a.Wins == b.Wins && a.Losses == b.Losses
	}) {
		out = append(out, Cascade(group, criteria, rng)...)
	}
	return out
}

// Cascade applies criteria in order, each one only to the records the
// previous criteria left tied.
func Cascade(group []Record, criteria []Criterion, rng random.Source) []Record {
	if len(group) <= 1 || len(criteria) == 0 {
		return group
	}
	var out []Record
	for _, sub := range criteria[0](group, rng) {
		out = append(out, Cascade(sub, criteria[1:], rng)...)
	}
	return out
}

// HeadToHead only separates a two-team tie, and only on a strict
// majority of series between them.
func HeadToHead(group []Record, _ random.Source) [][]Record {
	if len(group) != 2 {
		return [][]Record{group}
	}
	a, b := group[0], group[1]
	aw, bw := a.HeadToHead[b.TeamID], b.HeadToHead[a.TeamID]
	switch {
	case aw > bw:
		return [][]Record{{a}, {b}}
	case bw > aw:
		return [][]Record{{b}, {a}}
	}
	return [][]Record{group}
}

func ByMapDifference(group []Record, _ random.Source) [][]Record {
	return groupByDesc(group, Record.MapDifference)
}

func ByRoundDifference(group []Record, _ random.Source) [][]Record {
	return groupByDesc(group, Record.RoundDifference)
}

// RandomOrder settles whatever is left with an unbiased shuffle.
func RandomOrder(group []Record, rng random.Source) [][]Record {
	shuffled := slices.Clone(group)
	rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
	out := make([][]Record, len(shuffled))
	for i, r := range shuffled {
		out[i] = []Record{r}
	}
	return out
}

func groupByDesc(group []Record, key func(Record) int) [][]Record {
	sorted := slices.Clone(group)
	slices.SortStableFunc(sorted, func(a, b Record) int {
		return cmp.Compare(key(b), key(a))
	})
	return splitRuns(sorted, func(a, b Record) bool { return key(a) == key(b) })
}

// splitRuns cuts a sorted slice into runs of equal neighbours.
func splitRuns(sorted []Record, equal func(a, b Record) bool) [][]Record {
	var runs [][]Record
	start := 0
	for i := 1; i <= len(sorted); i++ {
		if i == len(sorted) || !equal(sorted[start], sorted[i]) {
			runs = append(runs, sorted[start:i])
			start = i
		}
	}
	return runs
}
