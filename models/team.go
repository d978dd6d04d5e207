package models

import "slices"

// Region tags a team with the regional league it plays in.
type Region string

const (
	RegionAmericas Region = "Americas"
	RegionEurope   Region = "Europe"
	RegionChina    Region = "China"
	RegionPacific  Region = "Pacific"
)

// Regions returns the regional leagues in their canonical order.
func Regions() []Region {
	return []Region{RegionAmericas, RegionEurope, RegionChina, RegionPacific}
}

// ParseRegion matches a region name case-sensitively against Regions.
func ParseRegion(s string) (Region, bool) {
	r := Region(s)
	return r, slices.Contains(Regions(), r)
}

// RosterSize is the number of players a team fields in every match.
const RosterSize = 5

// Team is identified by ID. Two teams with the same name are still
// different teams.
type Team struct {
	ID      int       `json:"id"`
	Name    string    `json:"name"`
	Region  Region    `json:"region"`
	Players []*Player `json:"players"`
}

// Rating is the mean skill of the roster, 0 for an empty roster.
func (t *Team) Rating() float64 {
	if len(t.Players) == 0 {
		return 0
	}
	total := 0
	for _, p := range t.Players {
		total += p.Skill
	}
	return float64(total) / float64(len(t.Players))
}

// Ref returns the compact reference used in result records.
func (t *Team) Ref() TeamRef {
	return TeamRef{ID: t.ID, Name: t.Name, Region: t.Region}
}

// TeamRef is what result records carry instead of the full roster.
type TeamRef struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Region Region `json:"region,omitempty"`
}

// TeamIDs maps teams to their identifiers, preserving order.
func TeamIDs(teams []*Team) []int {
	ids := make([]int, len(teams))
	for i, t := range teams {
		ids[i] = t.ID
	}
	return ids
}
