// Package standings accumulates season results and orders teams with a
// cascading tie-break.
package standings

import (
	"fmt"

	"github.com/Dosada05/league-simulator/models"
	"github.com/Dosada05/league-simulator/random"
)

// Record is the accumulated season line of one team.
type Record struct {
	TeamID      int
	Wins        int
	Losses      int
	MapWins     int
	MapLosses   int
	RoundWins   int
	RoundLosses int
	// HeadToHead counts series won against each opponent ID.
	HeadToHead map[int]int
}

func (r Record) MapDifference() int {
	return r.MapWins - r.MapLosses
}

func (r Record) RoundDifference() int {
	return r.RoundWins - r.RoundLosses
}

// Table is the per-season accumulator. Teams are keyed by ID; the input
// order is kept and only matters to the final random stage.
type Table struct {
	teams   []*models.Team
	byID    map[int]*models.Team
	records map[int]*Record
}

func NewTable(teams []*models.Team) (*Table, error) {
	t := &Table{
		teams:   make([]*models.Team, 0, len(teams)),
		byID:    make(map[int]*models.Team, len(teams)),
		records: make(map[int]*Record, len(teams)),
	}
	for _, team := range teams {
		if team == nil {
			return nil, fmt.Errorf("%w: nil team", ErrUnknownTeam)
		}
		if _, ok := t.byID[team.ID]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateTeam, team.ID)
		}
		t.teams = append(t.teams, team)
		t.byID[team.ID] = team
		t.records[team.ID] = &Record{TeamID: team.ID, HeadToHead: map[int]int{}}
	}
	return t, nil
}

// Record adds one finished series to both teams' lines.
func (t *Table) Record(s *models.SeriesResult) error {
	winner, ok := t.records[s.WinnerID]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownTeam, s.WinnerID)
	}
	loser, ok := t.records[s.LoserID]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownTeam, s.LoserID)
	}

	winner.Wins++
	loser.Losses++
	winner.HeadToHead[loser.TeamID]++

	for _, r := range []*Record{winner, loser} {
		mw, ml := s.MapWinsFor(r.TeamID)
		rw, rl := s.RoundsFor(r.TeamID)
		r.MapWins += mw
		r.MapLosses += ml
		r.RoundWins += rw
		r.RoundLosses += rl
	}
	return nil
}

// Get returns a copy of the team's record.
func (t *Table) Get(teamID int) (Record, bool) {
	r, ok := t.records[teamID]
	if !ok {
		return Record{}, false
	}
	cp := *r
	cp.HeadToHead = make(map[int]int, len(r.HeadToHead))
	for k, v := range r.HeadToHead {
		cp.HeadToHead[k] = v
	}
	return cp, true
}

// Resolve orders every team of the table. rng only breaks ties left after
// every deterministic criterion.
func (t *Table) Resolve(rng random.Source) []*models.Team {
	records := make([]Record, len(t.teams))
	for i, team := range t.teams {
		records[i] = *t.records[team.ID]
	}
	ordered := Resolve(records, rng)
	out := make([]*models.Team, len(ordered))
	for i, r := range ordered {
		out[i] = t.byID[r.TeamID]
	}
	return out
}

// Rows turns an ordering of the table's teams into ranked rows.
func (t *Table) Rows(order []*models.Team) []models.StandingRow {
	rows := make([]models.StandingRow, 0, len(order))
	for i, team := range order {
		r, ok := t.records[team.ID]
		if !ok {
			continue
		}
		rows = append(rows, models.StandingRow{
			Rank:            i + 1,
			Team:            team.Ref(),
			Wins:            r.Wins,
			Losses:          r.Losses,
			MapWins:         r.MapWins,
			MapLosses:       r.MapLosses,
			MapDifference:   r.MapDifference(),
			RoundWins:       r.RoundWins,
			RoundLosses:     r.RoundLosses,
			RoundDifference: r.RoundDifference(),
		})
	}
	return rows
}

// Standings resolves the table and returns its ranked rows.
func (t *Table) Standings(rng random.Source) ([]*models.Team, []models.StandingRow) {
	order := t.Resolve(rng)
	return order, t.Rows(order)
}
