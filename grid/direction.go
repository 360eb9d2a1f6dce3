package grid

import (
	"fmt"
	"strings"
)

// Direction identifies one of the three grid axes.
type Direction int

const (
	DirX Direction = iota
	DirY
	DirZ
)

// String returns the lowercase axis letter.
func (d Direction) String() string {
	switch d {
	case DirX:
		return "x"
	case DirY:
		return "y"
	case DirZ:
		return "z"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirections converts axis letters to directions, deduplicating
// while preserving first occurrence. Letters are case-insensitive; at
// least one is required and anything outside {x, y, z} is rejected
// with ErrDirection.
func ParseDirections(letters ...string) ([]Direction, error) {
	if len(letters) == 0 {
		return nil, fmt.Errorf("%w: no directions given", ErrDirection)
	}
	var out []Direction
	seen := [3]bool{}
	for _, l := range letters {
		var d Direction
		switch strings.ToLower(l) {
		case "x":
			d = DirX
		case "y":
			d = DirY
		case "z":
			d = DirZ
		default:
			return nil, fmt.Errorf("%w: %q", ErrDirection, l)
		}
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	return out, nil
}
