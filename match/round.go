package match

import (
	"github.com/Dosada05/league-simulator/models"
	"github.com/Dosada05/league-simulator/random"
)

type fighter struct {
	id    int
	skill int
}

func squad(t *models.Team, m models.GameMap) []fighter {
	out := make([]fighter, len(t.Players))
	for i, p := range t.Players {
		out[i] = fighter{id: p.ID, skill: p.MapSkill(m)}
	}
	return out
}

// mapDecided: first to RoundsToWin with a two-round margin; from 12-12
// play continues until the margin is two.
func mapDecided(home, away, toWin int) bool {
	if home < toWin && away < toWin {
		return false
	}
	diff := home - away
	return diff >= 2 || diff <= -2
}

func (e *Engine) playMap(rng random.Source, home, away *models.Team, m models.GameMap) (models.MapResult, error) {
	homeSquad, awaySquad := squad(home, m), squad(away, m)
	res := models.MapResult{Map: m}

	for !mapDecided(res.HomeScore, res.AwayScore, e.opts.RoundsToWin) {
		if len(res.Rounds) >= e.opts.MaxMapRounds {
			return res, ErrMapNotConverged
		}
		round := e.playRound(rng, homeSquad, awaySquad)
		if round.Winner == models.SideHome {
			res.HomeScore++
		} else {
			res.AwayScore++
		}
		round.Number = len(res.Rounds) + 1
		round.HomeScore, round.AwayScore = res.HomeScore, res.AwayScore
		res.Rounds = append(res.Rounds, round)
	}

	if res.HomeScore > res.AwayScore {
		res.Winner = models.SideHome
	} else {
		res.Winner = models.SideAway
	}
	return res, nil
}

// playRound fights encounters until one side has nobody alive. Each
// encounter removes at least one player, so a round ends after at most
// len(home)+len(away)-1 encounters.
func (e *Engine) playRound(rng random.Source, homeSquad, awaySquad []fighter) models.RoundResult {
	home := append([]fighter(nil), homeSquad...)
	away := append([]fighter(nil), awaySquad...)
	var round models.RoundResult

	for len(home) > 0 && len(away) > 0 {
		enc := e.encounter(rng, &home, &away)
		round.Encounters = append(round.Encounters, enc)
	}

	if len(home) > 0 {
		round.Winner = models.SideHome
	} else {
		round.Winner = models.SideAway
	}
	return round
}

// encounter draws a random group of 1..MaxGroupSize alive players per
// side, resolves the fight and removes the losing group.
func (e *Engine) encounter(rng random.Source, home, away *[]fighter) models.Encounter {
	hg := pickGroup(rng, *home, e.opts.MaxGroupSize)
	ag := pickGroup(rng, *away, e.opts.MaxGroupSize)

	homeSkill, awaySkill := groupSkill((*home)[:hg]), groupSkill((*away)[:ag])
	edge := e.opts.GroupSizeEdge * float64(hg-ag)
	homeSkill *= 1 + edge
	awaySkill *= 1 - edge

	p := homeSkill / (homeSkill + awaySkill)
	p = min(max(p, e.opts.MinProbability), e.opts.MaxProbability)

	enc := models.Encounter{
		HomePlayers:        fighterIDs((*home)[:hg]),
		AwayPlayers:        fighterIDs((*away)[:ag]),
		HomeSkill:          homeSkill,
		AwaySkill:          awaySkill,
		HomeWinProbability: p,
	}
	if rng.Float64() < p {
		enc.Winner = models.SideHome
		*away = (*away)[ag:]
	} else {
		enc.Winner = models.SideAway
		*home = (*home)[hg:]
	}
	return enc
}

// pickGroup shuffles alive so its first n entries form a uniformly random
// group, and returns n.
func pickGroup(rng random.Source, alive []fighter, maxSize int) int {
	n := 1 + rng.IntN(min(maxSize, len(alive)))
	rng.Shuffle(len(alive), func(i, j int) { alive[i], alive[j] = alive[j], alive[i] })
	return n
}

func groupSkill(group []fighter) float64 {
	total := 0
	for _, f := range group {
		total += f.skill
	}
	return float64(total)
}

func fighterIDs(group []fighter) []int {
	ids := make([]int, len(group))
	for i, f := range group {
		ids[i] = f.id
	}
	return ids
}
