package match

import (
	"slices"

	"github.com/Dosada05/league-simulator/models"
)

type draftActor int

const (
	actorHome draftActor = iota
	actorAway
	// actorFirst is the upper-bracket loser, or home when none is set.
	actorFirst
	actorSecond
)

type draftStep struct {
	Actor  draftActor
	Action models.MapActionType
}

// Draft orders per format. The single map left after the last step is
// the decider.
var (
	bestOfOneOrder = []draftStep{
		{Actor: actorHome, Action: models.MapActionBan},
		{Actor: actorAway, Action: models.MapActionBan},
		{Actor: actorHome, Action: models.MapActionBan},
		{Actor: actorAway, Action: models.MapActionBan},
		{Actor: actorHome, Action: models.MapActionBan},
		{Actor: actorAway, Action: models.MapActionBan},
	}
	bestOfThreeOrder = []draftStep{
		{Actor: actorHome, Action: models.MapActionBan},
		{Actor: actorAway, Action: models.MapActionBan},
		{Actor: actorHome, Action: models.MapActionPick},
		{Actor: actorAway, Action: models.MapActionPick},
		{Actor: actorHome, Action: models.MapActionBan},
		{Actor: actorAway, Action: models.MapActionBan},
	}
	bestOfFiveOrder = []draftStep{
		{Actor: actorFirst, Action: models.MapActionBan},
		{Actor: actorFirst, Action: models.MapActionBan},
		{Actor: actorFirst, Action: models.MapActionPick},
		{Actor: actorSecond, Action: models.MapActionPick},
		{Actor: actorFirst, Action: models.MapActionPick},
		{Actor: actorSecond, Action: models.MapActionPick},
	}
)

func draftOrder(bestOf int) ([]draftStep, bool) {
	switch bestOf {
	case 1:
		return bestOfOneOrder, true
	case 3:
		return bestOfThreeOrder, true
	case 5:
		return bestOfFiveOrder, true
	}
	return nil, false
}

// Draft is the outcome of a map draft. Sequence lists the maps to play
// in order: picks in pick order, then the decider.
type Draft struct {
	Actions  []models.MapAction
	Sequence []models.GameMap
	PickedBy map[models.GameMap]int
}

// modifierScore is +2 per player strong on m and -2 per player weak on m.
func modifierScore(t *models.Team, m models.GameMap) int {
	score := 0
	for _, p := range t.Players {
		switch mod := p.Modifier(m); {
		case mod > 0:
			score += 2
		case mod < 0:
			score -= 2
		}
	}
	return score
}

// StrategicScore is team's own modifier score on m minus the opponent's.
func StrategicScore(team, opponent *models.Team, m models.GameMap) int {
	return modifierScore(team, m) - modifierScore(opponent, m)
}

// MapDifferential is the home strategic score minus the away one.
// Positive values favor home.
func MapDifferential(home, away *models.Team, m models.GameMap) int {
	return StrategicScore(home, away, m) - StrategicScore(away, home, m)
}

type draftState struct {
	home, away *models.Team
	remaining  []models.GameMap
	diffs      map[models.GameMap]int
}

func (d *draftState) advantage(team *models.Team, m models.GameMap) int {
	if team == d.home {
		return d.diffs[m]
	}
	return -d.diffs[m]
}

// take removes and returns the best map for team to pick, or the worst
// for team when banning. Ties go to the earliest remaining map.
func (d *draftState) take(team *models.Team, action models.MapActionType) models.GameMap {
	best, bestVal := -1, 0
	for i, m := range d.remaining {
		v := d.advantage(team, m)
		if action == models.MapActionBan {
			v = -v
		}
		if best == -1 || v > bestVal {
			best, bestVal = i, v
		}
	}
	m := d.remaining[best]
	d.remaining = slices.Delete(d.remaining, best, best+1)
	return m
}

// RunDraft runs the ban/pick sequence for bestOf. first is the team
// holding the upper-bracket-loser advantage in best-of-5; nil means home.
// The draft is deterministic: it consumes no randomness.
func RunDraft(home, away, first *models.Team, bestOf int) (Draft, error) {
	order, ok := draftOrder(bestOf)
	if !ok {
		return Draft{}, ErrUnsupportedBestOf
	}
	if first == nil {
		first = home
	}
	second := away
	if first == away {
		second = home
	}

	pool := models.MapPool()
	st := &draftState{
		home:      home,
		away:      away,
		remaining: pool,
		diffs:     make(map[models.GameMap]int, len(pool)),
	}
	for _, m := range pool {
		st.diffs[m] = MapDifferential(home, away, m)
	}

	out := Draft{
		Actions:  make([]models.MapAction, 0, len(order)+1),
		PickedBy: map[models.GameMap]int{},
	}
	for _, step := range order {
		var actor *models.Team
		switch step.Actor {
		case actorHome:
			actor = home
		case actorAway:
			actor = away
		case actorFirst:
			actor = first
		case actorSecond:
			actor = second
		}
		m := st.take(actor, step.Action)
		id := actor.ID
		out.Actions = append(out.Actions, models.MapAction{Type: step.Action, TeamID: &id, Map: m})
		if step.Action == models.MapActionPick {
			out.Sequence = append(out.Sequence, m)
			out.PickedBy[m] = id
		}
	}

	decider := st.remaining[0]
	out.Actions = append(out.Actions, models.MapAction{Type: models.MapActionDecider, Map: decider})
	out.Sequence = append(out.Sequence, decider)
	return out, nil
}
