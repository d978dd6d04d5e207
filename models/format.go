package models

import "fmt"

// RoundRobinSettings configures a regular season.
type RoundRobinSettings struct {
	NumberOfRounds int `json:"number_of_rounds"` // 1 for single round-robin, 2 for double
	BestOf         int `json:"best_of"`
}

// Normalize fills defaults: one round of best-of-1 series.
func (s RoundRobinSettings) Normalize() RoundRobinSettings {
	if s.NumberOfRounds < 1 || s.NumberOfRounds > 2 {
		s.NumberOfRounds = 1
	}
	if s.BestOf <= 0 {
		s.BestOf = 1
	}
	return s
}

// KnockoutFormat selects the bracket used after a group stage.
type KnockoutFormat string

const (
	KnockoutDoubleElimination KnockoutFormat = "double"
	KnockoutSingleElimination KnockoutFormat = "single"
)

// KnockoutPairing selects how group qualifiers are paired.
type KnockoutPairing string

const (
	// PairingRandom pairs each group winner with a random runner-up from
	// another group.
	PairingRandom KnockoutPairing = "random"
	// PairingCross uses 1stA-2ndB, 1stC-2ndD, 1stB-2ndA, 1stD-2ndC.
	PairingCross KnockoutPairing = "cross"
)

func ParseKnockoutFormat(s string) (KnockoutFormat, error) {
	switch f := KnockoutFormat(s); f {
	case KnockoutDoubleElimination, KnockoutSingleElimination:
		return f, nil
	}
	return "", fmt.Errorf("unknown knockout format %q", s)
}

func ParseKnockoutPairing(s string) (KnockoutPairing, error) {
	switch p := KnockoutPairing(s); p {
	case PairingRandom, PairingCross:
		return p, nil
	}
	return "", fmt.Errorf("unknown knockout pairing %q", s)
}
