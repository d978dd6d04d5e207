package services

import "errors"

var (
	ErrNotFound         = errors.New("requested resource not found")
	ErrValidationFailed = errors.New("validation failed")

	ErrTeamNotFound   = errors.New("team not found")
	ErrRegionNotFound = errors.New("region not found")
	ErrRunNotFound    = errors.New("simulation run not found")

	ErrAuthInvalidCredentials = errors.New("invalid credentials")
	ErrAuthInvalidToken       = errors.New("invalid or expired token")

	// ErrSimulationInProgress is returned while a yearly run holds the
	// leagues.
	ErrSimulationInProgress = errors.New("a simulation is already in progress")
)
