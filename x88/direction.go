package x88

import "chess-x88/internal/geom"

// Direction is the index difference of one step on a 0x88 board.
type Direction int8

const (
	North      Direction = geom.N
	NorthNorth Direction = North + North
	South      Direction = geom.S
	SouthSouth Direction = South + South
	East       Direction = geom.E
	West       Direction = geom.W
	NorthEast  Direction = geom.NE
	SouthWest  Direction = geom.SW
	NorthWest  Direction = geom.NW
	SouthEast  Direction = geom.SE
)

// moveDeltas is indexed by PieceType, which shares its row order with
// geom.Deltas. Pawns are handled by PawnPush and PawnCaptures.
var moveDeltas = func() (rows [6][8]Direction) {
	for t, row := range geom.Deltas {
		for i, d := range row {
			rows[t][i] = Direction(d)
		}
	}
	return rows
}()

var numDeltas = geom.NumDeltas

// Deltas returns a copy of the delta row for t and the number of slots in use.
// Pawns and NoPieceType report zero slots.
func (t PieceType) Deltas() ([8]Direction, int) {
	if t > Queen {
		return [8]Direction{}, 0
	}
	return moveDeltas[t], numDeltas[t]
}

// PawnPush is the single-step advance for a pawn of colour c.
func PawnPush(c Color) Direction {
	if c == White {
		return North
	}
	return South
}

// PawnDoublePush is the two-step advance from the pawn's home rank.
func PawnDoublePush(c Color) Direction {
	if c == White {
		return NorthNorth
	}
	return SouthSouth
}

// PawnCaptures returns the two diagonal capture steps for a pawn of colour c.
func PawnCaptures(c Color) [2]Direction {
	if c == White {
		return [2]Direction{NorthWest, NorthEast}
	}
	return [2]Direction{SouthEast, SouthWest}
}
