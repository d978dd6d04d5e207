package championship

import (
	"fmt"

	"github.com/Dosada05/league-simulator/match"
	"github.com/Dosada05/league-simulator/models"
	"github.com/Dosada05/league-simulator/random"
)

// field builds four teams per region, IDs 1..16 in region order.
func field() []*models.Team {
	var teams []*models.Team
	for ri, r := range models.Regions() {
		for i := 0; i < GroupCount; i++ {
			id := ri*GroupCount + i + 1
			t := &models.Team{ID: id, Name: fmt.Sprintf("%s %d", r, i+1), Region: r}
			for p := 0; p < models.RosterSize; p++ {
				t.Players = append(t.Players, &models.Player{
					ID:           id*100 + p,
					Skill:        45 + (id*11+p)%45,
					MapModifiers: map[models.GameMap]int{},
				})
			}
			teams = append(teams, t)
		}
	}
	return teams
}

// countingPlayer lets the lower ID win and counts fixtures.
type countingPlayer struct {
	fixtures []match.Fixture
}

func (p *countingPlayer) Play(_ random.Source, f match.Fixture) (*models.SeriesResult, error) {
	p.fixtures = append(p.fixtures, f)
	s := &models.SeriesResult{Home: f.Home, Away: f.Away, HomeRef: f.Home.Ref(), AwayRef: f.Away.Ref(), BestOf: f.BestOf}
	if f.Home.ID < f.Away.ID {
		s.Winner, s.Loser = f.Home, f.Away
		s.HomeMapWins = match.WinsNeeded(f.BestOf)
	} else {
		s.Winner, s.Loser = f.Away, f.Home
		s.AwayMapWins = match.WinsNeeded(f.BestOf)
	}
	s.WinnerID, s.LoserID = s.Winner.ID, s.Loser.ID
	return s, nil
}
