package models

// BracketStage labels where in a competition a series was played.
type BracketStage string

const (
	StageRegularSeason BracketStage = "regular_season"

	StageUpper           BracketStage = "upper"
	StageLower           BracketStage = "lower"
	StageMerge           BracketStage = "merge"
	StageGrandFinal      BracketStage = "grand_final"
	StageGrandFinalReset BracketStage = "grand_final_reset"

	StageQuarterFinal BracketStage = "quarter_final"
	StageSemiFinal    BracketStage = "semi_final"
	StageFinal        BracketStage = "final"
	StageKnockout     BracketStage = "knockout"

	StageGroupUpper       BracketStage = "group_upper"
	StageGroupLower       BracketStage = "group_lower"
	StageGroupWinners     BracketStage = "group_winners"
	StageGroupElimination BracketStage = "group_elimination"
	StageGroupDecider     BracketStage = "group_decider"
)

type BracketMatch struct {
	Round  int           `json:"round"`
	Stage  BracketStage  `json:"stage"`
	Series *SeriesResult `json:"series"`
}

// BracketResult is a finished elimination bracket.
type BracketResult struct {
	Champion *Team `json:"-"`
	// EliminationOrder holds eliminated teams, most recently eliminated
	// first.
	EliminationOrder []*Team `json:"-"`

	Matches    []BracketMatch `json:"matches"`
	Losses     map[int]int    `json:"losses"`
	Placements []Placement    `json:"placements"`
}

// Standings returns the champion followed by the elimination order.
func (b *BracketResult) Standings() []*Team {
	out := make([]*Team, 0, len(b.EliminationOrder)+1)
	if b.Champion != nil {
		out = append(out, b.Champion)
	}
	return append(out, b.EliminationOrder...)
}

// Top returns the first n teams of Standings.
func (b *BracketResult) Top(n int) []*Team {
	s := b.Standings()
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}

// GroupResult is one four-team championship group.
type GroupResult struct {
	Index      int            `json:"index"`
	Teams      []*Team        `json:"-"`
	TeamRefs   []TeamRef      `json:"teams"`
	Matches    []BracketMatch `json:"matches"`
	FirstSeed  *Team          `json:"-"`
	SecondSeed *Team          `json:"-"`
	Qualified  []TeamRef      `json:"qualified"`
}

// KnockoutMatchup is one first-seed vs second-seed opening match.
type KnockoutMatchup struct {
	First       TeamRef `json:"first"`
	FirstGroup  int     `json:"first_group"`
	Second      TeamRef `json:"second"`
	SecondGroup int     `json:"second_group"`
}

type ChampionshipResult struct {
	Groups    []GroupResult     `json:"groups"`
	Matchups  []KnockoutMatchup `json:"matchups"`
	Format    KnockoutFormat    `json:"format"`
	Seeded    bool              `json:"seeded"`
	Knockout  *BracketResult    `json:"knockout"`
	Standings []Placement       `json:"standings"`
}

// Top returns the first n placements.
func (c *ChampionshipResult) Top(n int) []Placement {
	if n > len(c.Standings) {
		n = len(c.Standings)
	}
	return c.Standings[:n]
}
