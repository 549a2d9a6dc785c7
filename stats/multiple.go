package stats

import (
	"fmt"
	"math"
	"strings"
)

// Direction defines how ConvertToMultiple rounds.
type Direction int

const (
	Nearest Direction = iota
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Nearest:
		return "nearest"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection parses "nearest", "up" or "down".
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "nearest", "":
		return Nearest, nil
	case "up", "ceil":
		return Up, nil
	case "down", "floor":
		return Down, nil
	}
	return 0, fmt.Errorf("stats: unknown direction %q", s)
}

// ConvertToMultiple rounds value to a multiple of factor. Nearest rounds
// halves to the even multiple.
func ConvertToMultiple(value, factor float64, d Direction) (float64, error) {
	if factor == 0 {
		return 0, ErrZeroFactor
	}
	q := value / factor
	switch d {
	case Nearest:
		q = math.RoundToEven(q)
	case Up:
		q = math.Ceil(q)
	case Down:
		q = math.Floor(q)
	default:
		return 0, fmt.Errorf("stats: unknown direction %d", int(d))
	}
	return factor * q, nil
}
