package match

import "github.com/Dosada05/league-simulator/models"

// newTestTeam builds a five-player team. mods gives, per map, the
// modifiers of the first players; missing players are neutral.
func newTestTeam(id, skill int, mods map[models.GameMap][]int) *models.Team {
	t := &models.Team{ID: id, Name: "team-" + string(rune('A'+id%26)), Region: models.RegionEurope}
	for i := 0; i < models.RosterSize; i++ {
		p := &models.Player{ID: id*10 + i, Gamertag: "p", Skill: skill, MapModifiers: map[models.GameMap]int{}}
		for m, values := range mods {
			if i < len(values) {
				p.MapModifiers[m] = values[i]
			}
		}
		t.Players = append(t.Players, p)
	}
	return t
}

func allStrong() []int { return []int{10, 10, 10, 10, 10} }
