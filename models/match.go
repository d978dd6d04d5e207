package models

// Side names one half of a fixture.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// Encounter is one group fight inside a round. Player slices hold
// player IDs.
type Encounter struct {
	HomePlayers        []int   `json:"home_players"`
	AwayPlayers        []int   `json:"away_players"`
	HomeSkill          float64 `json:"home_skill"`
	AwaySkill          float64 `json:"away_skill"`
	HomeWinProbability float64 `json:"home_win_probability"`
	Winner             Side    `json:"winner"`
}

type RoundResult struct {
	Number     int         `json:"number"`
	Winner     Side        `json:"winner"`
	HomeScore  int         `json:"home_score"`
	AwayScore  int         `json:"away_score"`
	Encounters []Encounter `json:"encounters"`
}

type MapResult struct {
	Map       GameMap       `json:"map"`
	PickedBy  *int          `json:"picked_by,omitempty"`
	HomeScore int           `json:"home_score"`
	AwayScore int           `json:"away_score"`
	Winner    Side          `json:"winner"`
	Rounds    []RoundResult `json:"rounds"`
}

// SeriesResult is everything the match engine produces for one best-of-N
// series. Team pointers are for in-process consumers; the refs are what
// gets serialized.
type SeriesResult struct {
	Home    *Team   `json:"-"`
	Away    *Team   `json:"-"`
	Winner  *Team   `json:"-"`
	Loser   *Team   `json:"-"`
	HomeRef TeamRef `json:"home"`
	AwayRef TeamRef `json:"away"`

	BestOf              int  `json:"best_of"`
	UpperBracketLoserID *int `json:"upper_bracket_loser_id,omitempty"`

	Draft       []MapAction `json:"draft"`
	MapSequence []GameMap   `json:"map_sequence"`
	Maps        []MapResult `json:"maps"`

	HomeMapWins int `json:"home_map_wins"`
	AwayMapWins int `json:"away_map_wins"`
	WinnerID    int `json:"winner_id"`
	LoserID     int `json:"loser_id"`
}

// MapWinsFor returns the maps won and lost by teamID in the series.
func (s *SeriesResult) MapWinsFor(teamID int) (won, lost int) {
	switch teamID {
	case s.HomeRef.ID:
		return s.HomeMapWins, s.AwayMapWins
	case s.AwayRef.ID:
		return s.AwayMapWins, s.HomeMapWins
	}
	return 0, 0
}

// RoundsFor sums rounds won and lost by teamID over every played map.
func (s *SeriesResult) RoundsFor(teamID int) (won, lost int) {
	var home, away int
	for _, m := range s.Maps {
		home += m.HomeScore
		away += m.AwayScore
	}
	switch teamID {
	case s.HomeRef.ID:
		return home, away
	case s.AwayRef.ID:
		return away, home
	}
	return 0, 0
}
