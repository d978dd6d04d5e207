package roster

import (
	"fmt"
	"sync/atomic"

	"github.com/Dosada05/league-simulator/models"
	"github.com/Dosada05/league-simulator/random"
)

const (
	minGeneratedSkill = 45
	maxGeneratedSkill = 95
	maxContractYears  = 3
)

// Generator builds teams and players. IDs are unique per Generator and
// safe to allocate from several goroutines.
type Generator struct {
	names        *Names
	nextTeamID   atomic.Int64
	nextPlayerID atomic.Int64
}

func NewGenerator(names *Names) *Generator {
	return &Generator{names: names}
}

func (g *Generator) Names() *Names {
	return g.names
}

// Player draws a new player. Each map gets a weak or strong modifier
// with probability 1/5 each, otherwise neutral.
func (g *Generator) Player(rng random.Source) *models.Player {
	p := &models.Player{
		ID:            int(g.nextPlayerID.Add(1)),
		FirstName:     pick(rng, g.names.FirstNames),
		LastName:      pick(rng, g.names.LastNames),
		Gamertag:      pick(rng, g.names.Gamertags),
		Skill:         minGeneratedSkill + rng.IntN(maxGeneratedSkill-minGeneratedSkill+1),
		MapModifiers:  make(map[models.GameMap]int),
		ContractYears: 1 + rng.IntN(maxContractYears),
	}
	for _, m := range models.MapPool() {
		switch rng.IntN(5) {
		case 0:
			p.MapModifiers[m] = models.ModifierWeak
		case 1:
			p.MapModifiers[m] = models.ModifierStrong
		}
	}
	return p
}

// Team builds a team with a full roster.
func (g *Generator) Team(rng random.Source, name string, region models.Region) *models.Team {
	t := &models.Team{
		ID:      int(g.nextTeamID.Add(1)),
		Name:    name,
		Region:  region,
		Players: make([]*models.Player, 0, models.RosterSize),
	}
	for i := 0; i < models.RosterSize; i++ {
		t.Players = append(t.Players, g.Player(rng))
	}
	return t
}

// League builds one team per name listed for region.
func (g *Generator) League(rng random.Source, region models.Region) ([]*models.Team, error) {
	names := g.names.Teams[region]
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no teams for %s", ErrEmptyTable, region)
	}
	teams := make([]*models.Team, len(names))
	for i, name := range names {
		teams[i] = g.Team(rng, name, region)
	}
	return teams, nil
}

// OffSeason counts every contract down by a year and replaces players
// whose contract ran out with newly generated ones.
func (g *Generator) OffSeason(rng random.Source, teams []*models.Team) []models.RosterMove {
	var moves []models.RosterMove
	for _, t := range teams {
		for i, p := range t.Players {
			p.ContractYears--
			if p.ContractYears > 0 {
				continue
			}
			signed := g.Player(rng)
			t.Players[i] = signed
			moves = append(moves, models.RosterMove{
				Team:     t.Ref(),
				Released: p.Gamertag,
				Signed:   signed.Gamertag,
			})
		}
	}
	return moves
}

func pick(rng random.Source, from []string) string {
	if len(from) == 0 {
		return ""
	}
	return from[rng.IntN(len(from))]
}
