package standings

import "errors"

var (
	ErrUnknownTeam   = errors.New("team is not part of the standings table")
	ErrDuplicateTeam = errors.New("team appears twice in the standings table")
)
