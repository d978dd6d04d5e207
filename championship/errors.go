package championship

import "errors"

var (
	ErrInvalidQualifierCount = errors.New("wrong number of championship qualifiers")
	ErrRegionImbalance       = errors.New("qualifiers are not spread evenly over the regions")
	ErrNoValidPairing        = errors.New("no knockout pairing avoids a group rematch")
)
