package match

import "errors"

var (
	ErrNilTeam           = errors.New("team is nil")
	ErrEmptyRoster       = errors.New("team has no players")
	ErrInvalidRosterSize = errors.New("team roster has the wrong number of players")
	ErrSameTeam          = errors.New("a team cannot play itself")
	ErrUnsupportedBestOf = errors.New("unsupported best-of count")
	ErrNotInFixture      = errors.New("upper-bracket loser is not part of the fixture")
	ErrMapNotConverged   = errors.New("map exceeded the round limit without a winner")
)
