package brackets

import "errors"

var (
	ErrNotEnoughTeams = errors.New("bracket needs at least two teams")
	ErrDuplicateTeam  = errors.New("team entered the bracket twice")
	ErrBracketStalled = errors.New("bracket did not converge to a grand final")
)
