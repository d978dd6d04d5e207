package models

// SeasonResult is a finished regular season.
type SeasonResult struct {
	Region    Region             `json:"region,omitempty"`
	Settings  RoundRobinSettings `json:"settings"`
	Matches   []*SeriesResult    `json:"matches"`
	Standings []StandingRow      `json:"standings"`
}

// RosterMove records an expired contract replaced during the off-season.
type RosterMove struct {
	Team     TeamRef `json:"team"`
	Released string  `json:"released"`
	Signed   string  `json:"signed"`
}

// RegionYearResult is one regional league's season and playoffs.
type RegionYearResult struct {
	Region           Region         `json:"region"`
	Seed             uint64         `json:"seed,string"`
	OffSeason        []RosterMove   `json:"off_season"`
	Season           *SeasonResult  `json:"season"`
	Playoffs         *BracketResult `json:"playoffs"`
	WorldsQualifiers []TeamRef      `json:"worlds_qualifiers"`
}

// YearResult is one full competitive year.
type YearResult struct {
	Year    int                 `json:"year"`
	Seed    uint64              `json:"seed,string"`
	Regions []RegionYearResult  `json:"regions"`
	Worlds  *ChampionshipResult `json:"worlds"`
}

// Champion returns the world champion placement, if the year finished.
func (y *YearResult) Champion() (Placement, bool) {
	if y.Worlds == nil || len(y.Worlds.Standings) == 0 {
		return Placement{}, false
	}
	return y.Worlds.Standings[0], true
}
