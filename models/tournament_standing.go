package models

// StandingRow is one ranked line of a season table.
type StandingRow struct {
	Rank            int     `json:"rank"`
	Team            TeamRef `json:"team"`
	Wins            int     `json:"wins"`
	Losses          int     `json:"losses"`
	MapWins         int     `json:"map_wins"`
	MapLosses       int     `json:"map_losses"`
	MapDifference   int     `json:"map_difference"`
	RoundWins       int     `json:"round_wins"`
	RoundLosses     int     `json:"round_losses"`
	RoundDifference int     `json:"round_difference"`
}

// Placement is a final position in a bracket or championship.
type Placement struct {
	Rank int     `json:"rank"`
	Team TeamRef `json:"team"`
}

// NewPlacements ranks teams in the given order, starting at 1.
func NewPlacements(teams []*Team) []Placement {
	out := make([]Placement, len(teams))
	for i, t := range teams {
		out[i] = Placement{Rank: i + 1, Team: t.Ref()}
	}
	return out
}
