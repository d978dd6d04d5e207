package models

// Skill bounds for a player.
const (
	MinSkill = 1
	MaxSkill = 100
)

// Map modifiers a player can carry. No other values are valid.
const (
	ModifierWeak    = -10
	ModifierNeutral = 0
	ModifierStrong  = 10
)

// MapModifierValues lists the allowed per-map modifiers.
func MapModifierValues() []int {
	return []int{ModifierWeak, ModifierNeutral, ModifierStrong}
}

type Player struct {
	ID           int             `json:"id"`
	FirstName    string          `json:"first_name"`
	LastName     string          `json:"last_name"`
	Gamertag     string          `json:"gamertag"`
	Skill        int             `json:"skill"`
	MapModifiers map[GameMap]int `json:"map_modifiers"`

	// ContractYears is counted down by the off-season, never by a match.
	ContractYears int `json:"contract_years"`
}

// Modifier returns the player's modifier on m, 0 when none is set.
func (p *Player) Modifier(m GameMap) int {
	return p.MapModifiers[m]
}

// MapSkill is the player's skill on m, floored at MinSkill.
func (p *Player) MapSkill(m GameMap) int {
	s := p.Skill + p.Modifier(m)
	if s < MinSkill {
		return MinSkill
	}
	return s
}
