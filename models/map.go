package models

// GameMap identifies one map of the competitive pool.
type GameMap string

const (
	MapAscent GameMap = "Ascent"
	MapBind   GameMap = "Bind"
	MapBreeze GameMap = "Breeze"
	MapHaven  GameMap = "Haven"
	MapIcebox GameMap = "Icebox"
	MapLotus  GameMap = "Lotus"
	MapSunset GameMap = "Sunset"
)

// MapPool returns the seven pool maps in their stable enumeration order.
// Draft tie-breaks resolve to the earliest map in this order.
func MapPool() []GameMap {
	return []GameMap{MapAscent, MapBind, MapBreeze, MapHaven, MapIcebox, MapLotus, MapSunset}
}

type MapActionType string

const (
	MapActionBan     MapActionType = "ban"
	MapActionPick    MapActionType = "pick"
	MapActionDecider MapActionType = "decider"
)

// MapAction is one step of a map draft. TeamID is nil for the decider.
type MapAction struct {
	Type   MapActionType `json:"type"`
	TeamID *int          `json:"team_id,omitempty"`
	Map    GameMap       `json:"map"`
}
