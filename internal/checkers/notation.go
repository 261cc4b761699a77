package checkers

import (
	"errors"
	"fmt"
	"regexp"
)

// Moves travel the wire and the console as "3a-4b": 1-indexed row digit
// plus lowercase column letter for both squares.
var movePattern = regexp.MustCompile(`^[1-8][a-h]-[1-8][a-h]$`)

var ErrBadNotation = errors.New("malformed move notation")

// Move is a transient value describing one relocation. Coordinates are
// zero-based board indexes.
type Move struct {
	FromRow int
	FromCol int
	ToRow   int
	ToCol   int
}

func (that Move) String() string {
	return fmt.Sprintf("%d%c-%d%c",
		that.FromRow+1, 'a'+rune(that.FromCol),
		that.ToRow+1, 'a'+rune(that.ToCol))
}

// ParseMove - converts "3a-4b" notation into zero-based coordinates.
func ParseMove(notation string) (Move, error) {
	if !movePattern.MatchString(notation) {
		return Move{}, fmt.Errorf("%w: %q", ErrBadNotation, notation)
	}

	return Move{
		FromRow: int(notation[0] - '1'),
		FromCol: int(notation[1] - 'a'),
		ToRow:   int(notation[3] - '1'),
		ToCol:   int(notation[4] - 'a'),
	}, nil
}
