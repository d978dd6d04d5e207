package championship

import (
	"fmt"

	"github.com/Dosada05/league-simulator/match"
	"github.com/Dosada05/league-simulator/models"
	"github.com/Dosada05/league-simulator/random"
)

// PlayGroup runs the five group matches:
//
//	upper:       g0 vs g1
//	lower:       g2 vs g3
//	winners:     upper winner vs lower winner, winner is 1st seed
//	elimination: upper loser vs lower loser
//	decider:     winners loser vs elimination winner, winner is 2nd seed
func (o *Orchestrator) PlayGroup(rng random.Source, index int, group []*models.Team) (models.GroupResult, error) {
	gr := models.GroupResult{Index: index, Teams: group}
	if len(group) != GroupSize {
		return gr, fmt.Errorf("%w: group of %d", ErrInvalidQualifierCount, len(group))
	}
	for _, t := range group {
		gr.TeamRefs = append(gr.TeamRefs, t.Ref())
	}

	play := func(stage models.BracketStage, round int, home, away *models.Team) (*models.SeriesResult, error) {
		s, err := o.player.Play(rng, match.Fixture{Home: home, Away: away, BestOf: o.opts.GroupBestOf})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", stage, err)
		}
		gr.Matches = append(gr.Matches, models.BracketMatch{Round: round, Stage: stage, Series: s})
		if o.opts.Observer != nil {
			o.opts.Observer(stage, round, s)
		}
		return s, nil
	}

	upper, err := play(models.StageGroupUpper, 1, group[0], group[1])
	if err != nil {
		return gr, err
	}
	lower, err := play(models.StageGroupLower, 1, group[2], group[3])
	if err != nil {
		return gr, err
	}
	winners, err := play(models.StageGroupWinners, 2, upper.Winner, lower.Winner)
	if err != nil {
		return gr, err
	}
	elimination, err := play(models.StageGroupElimination, 2, upper.Loser, lower.Loser)
	if err != nil {
		return gr, err
	}
	decider, err := play(models.StageGroupDecider, 3, winners.Loser, elimination.Winner)
	if err != nil {
		return gr, err
	}

	gr.FirstSeed, gr.SecondSeed = winners.Winner, decider.Winner
	gr.Qualified = []models.TeamRef{gr.FirstSeed.Ref(), gr.SecondSeed.Ref()}
	return gr, nil
}
