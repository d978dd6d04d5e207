package brackets

import (
	"fmt"

	"github.com/Dosada05/league-simulator/match"
	"github.com/Dosada05/league-simulator/models"
	"github.com/Dosada05/league-simulator/random"
)

// newTeams builds n playable teams with IDs 1..n and mixed skill.
func newTeams(n int) []*models.Team {
	teams := make([]*models.Team, n)
	for i := range teams {
		id := i + 1
		t := &models.Team{ID: id, Name: fmt.Sprintf("Team %d", id), Region: models.RegionPacific}
		for p := 0; p < models.RosterSize; p++ {
			t.Players = append(t.Players, &models.Player{
				ID:           id*100 + p,
				Gamertag:     fmt.Sprintf("p%d-%d", id, p),
				Skill:        40 + (id*7+p*3)%50,
				MapModifiers: map[models.GameMap]int{},
			})
		}
		teams[i] = t
	}
	return teams
}

// stubPlayer settles series without simulation. decide returns true when
// the home team wins; it defaults to the lower ID winning.
type stubPlayer struct {
	decide   func(call int, f match.Fixture) bool
	fixtures []match.Fixture
}

func (p *stubPlayer) Play(_ random.Source, f match.Fixture) (*models.SeriesResult, error) {
	p.fixtures = append(p.fixtures, f)
	homeWins := f.Home.ID < f.Away.ID
	if p.decide != nil {
		homeWins = p.decide(len(p.fixtures), f)
	}
	s := &models.SeriesResult{
		Home:    f.Home,
		Away:    f.Away,
		HomeRef: f.Home.Ref(),
		AwayRef: f.Away.Ref(),
		BestOf:  f.BestOf,
	}
	need := match.WinsNeeded(f.BestOf)
	if homeWins {
		s.Winner, s.Loser, s.HomeMapWins = f.Home, f.Away, need
	} else {
		s.Winner, s.Loser, s.AwayMapWins = f.Away, f.Home, need
	}
	s.WinnerID, s.LoserID = s.Winner.ID, s.Loser.ID
	return s, nil
}

func fixtureIDs(fs []match.Fixture) [][2]int {
	out := make([][2]int, len(fs))
	for i, f := range fs {
		out[i] = [2]int{f.Home.ID, f.Away.ID}
	}
	return out
}

func stages(b *models.BracketResult) []models.BracketStage {
	out := make([]models.BracketStage, len(b.Matches))
	for i, m := range b.Matches {
		out[i] = m.Stage
	}
	return out
}
