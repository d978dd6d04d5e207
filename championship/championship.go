// Package championship runs the world championship: a region-balanced
// group stage whose qualifiers feed an elimination bracket.
package championship

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Dosada05/league-simulator/brackets"
	"github.com/Dosada05/league-simulator/match"
	"github.com/Dosada05/league-simulator/models"
	"github.com/Dosada05/league-simulator/random"
)

const (
	// GroupCount is also the number of qualifiers per region.
	GroupCount = 4
	// GroupSize is also the number of regions.
	GroupSize = 4

	Qualifiers    = GroupCount * GroupSize
	KnockoutTeams = 2 * GroupCount
)

type Options struct {
	// Regions defaults to models.Regions and must hold GroupSize entries.
	Regions     []models.Region
	GroupBestOf int

	Pairing      models.KnockoutPairing
	Format       models.KnockoutFormat
	Seeded       bool
	BracketReset bool

	Observer brackets.SeriesObserver
	Logger   *slog.Logger
}

func (o Options) withDefaults() Options {
	if len(o.Regions) == 0 {
		o.Regions = models.Regions()
	}
	if o.GroupBestOf <= 0 {
		o.GroupBestOf = 3
	}
	if o.Pairing == "" {
		o.Pairing = models.PairingRandom
	}
	if o.Format == "" {
		o.Format = models.KnockoutDoubleElimination
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

type Orchestrator struct {
	player brackets.SeriesPlayer
	opts   Options
}

func New(player brackets.SeriesPlayer, opts Options) *Orchestrator {
	return &Orchestrator{player: player, opts: opts.withDefaults()}
}

// Run validates the field, plays the groups, pairs the qualifiers and
// hands them to the knockout bracket. Nothing is played when validation
// fails.
func (o *Orchestrator) Run(rng random.Source, teams []*models.Team) (*models.ChampionshipResult, error) {
	byRegion, err := o.Validate(teams)
	if err != nil {
		return nil, err
	}

	groups := o.Groups(rng, byRegion)
	result := &models.ChampionshipResult{
		Groups: make([]models.GroupResult, 0, len(groups)),
		Format: o.opts.Format,
		Seeded: o.opts.Seeded,
	}
	for i, g := range groups {
		gr, err := o.PlayGroup(rng, i, g)
		if err != nil {
			return nil, fmt.Errorf("group %d: %w", i+1, err)
		}
		result.Groups = append(result.Groups, gr)
	}

	pairs, err := Pair(rng, result.Groups, o.opts.Pairing)
	if err != nil {
		return nil, err
	}
	field := make([]*models.Team, 0, KnockoutTeams)
	for _, p := range pairs {
		result.Matchups = append(result.Matchups, p.Matchup())
		field = append(field, p.First, p.Second)
	}

	var gen brackets.BracketGenerator
	switch o.opts.Format {
	case models.KnockoutSingleElimination:
		gen = brackets.NewSingleEliminationGenerator(o.player, brackets.SingleEliminationOptions{
			Observer: o.opts.Observer,
			Logger:   o.opts.Logger,
		})
	default:
		if o.opts.Seeded {
			field = SeedList(pairs)
		}
		gen = brackets.NewDoubleEliminationGenerator(o.player, brackets.DoubleEliminationOptions{
			Seeded:       o.opts.Seeded,
			BracketReset: o.opts.BracketReset,
			Observer:     o.opts.Observer,
			Logger:       o.opts.Logger,
		})
	}

	knockout, err := gen.Run(rng, field)
	if err != nil {
		return nil, fmt.Errorf("knockout: %w", err)
	}
	result.Knockout = knockout
	result.Standings = knockout.Placements

	o.opts.Logger.Debug("world championship finished",
		slog.String("bracket", gen.GetName()),
		slog.String("champion", knockout.Champion.Name))
	return result, nil
}

// Validate checks the field is exactly GroupCount teams from each of the
// configured regions and returns them by region, in input order.
func (o *Orchestrator) Validate(teams []*models.Team) (map[models.Region][]*models.Team, error) {
	if len(o.opts.Regions) != GroupSize {
		return nil, fmt.Errorf("%w: %d regions configured, want %d", ErrRegionImbalance, len(o.opts.Regions), GroupSize)
	}
	if len(teams) != Qualifiers {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidQualifierCount, len(teams), Qualifiers)
	}

	byRegion := make(map[models.Region][]*models.Team, GroupSize)
	for _, r := range o.opts.Regions {
		byRegion[r] = nil
	}
	seen := make(map[int]struct{}, len(teams))
	for _, t := range teams {
		if t == nil {
			return nil, match.ErrNilTeam
		}
		if _, ok := seen[t.ID]; ok {
			return nil, fmt.Errorf("%w: %s qualified twice", ErrInvalidQualifierCount, t.Name)
		}
		seen[t.ID] = struct{}{}
		if _, ok := byRegion[t.Region]; !ok {
			return nil, fmt.Errorf("%w: %s plays in unknown region %q", ErrRegionImbalance, t.Name, t.Region)
		}
		byRegion[t.Region] = append(byRegion[t.Region], t)
	}
	for _, r := range o.opts.Regions {
		if n := len(byRegion[r]); n != GroupCount {
			return nil, fmt.Errorf("%w: %s has %d qualifiers, want %d", ErrRegionImbalance, r, n, GroupCount)
		}
	}
	return byRegion, nil
}

// Groups shuffles each region's qualifiers and deals them one per group,
// so every group holds one team of each region in region order.
func (o *Orchestrator) Groups(rng random.Source, byRegion map[models.Region][]*models.Team) [][]*models.Team {
	groups := make([][]*models.Team, GroupCount)
	for _, r := range o.opts.Regions {
		regional := append([]*models.Team(nil), byRegion[r]...)
		rng.Shuffle(len(regional), func(i, j int) { regional[i], regional[j] = regional[j], regional[i] })
		for i, t := range regional {
			groups[i] = append(groups[i], t)
		}
	}
	return groups
}
