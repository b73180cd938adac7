package x88

import (
	"fmt"

	"chess-x88/internal/geom"
)

//go:generate go run ../cmd/attackgen -o attack_table.go

// Category names the piece kinds that could attack across a square offset
// on an empty board.
type Category uint8

const (
	AttackNone         Category = geom.None
	AttackKQR          Category = geom.KQR          // king, queen or rook; one orthogonal step
	AttackQR           Category = geom.QR           // queen or rook; longer orthogonal
	AttackKQBWhitePawn Category = geom.KQBWhitePawn // king, queen, bishop or white pawn; one step up a diagonal
	AttackKQBBlackPawn Category = geom.KQBBlackPawn // king, queen, bishop or black pawn; one step down a diagonal
	AttackQB           Category = geom.QB           // queen or bishop; longer diagonal
	AttackKnight       Category = geom.Knight
)

// OffsetBias shifts a square difference into the table's index range.
const OffsetBias = geom.OffsetBias

// TableSize is the number of offset codes, 0 through 256.
const TableSize = geom.TableSize

func (c Category) String() string {
	if int(c) < len(geom.Names) {
		return geom.Names[c]
	}
	return fmt.Sprintf("Category(%d)", uint8(c))
}

// categoryTypes is a bitset of PieceType per category. Pawn membership is
// colour dependent and handled in Admits.
var categoryTypes = [...]uint8{
	AttackNone:         0,
	AttackKQR:          1<<King | 1<<Queen | 1<<Rook,
	AttackQR:           1<<Queen | 1<<Rook,
	AttackKQBWhitePawn: 1<<King | 1<<Queen | 1<<Bishop,
	AttackKQBBlackPawn: 1<<King | 1<<Queen | 1<<Bishop,
	AttackQB:           1<<Queen | 1<<Bishop,
	AttackKnight:       1 << Knight,
}

// Admits reports whether piece p could make an attack of category c.
func (c Category) Admits(p Piece) bool {
	if p == NoPiece || int(c) >= len(categoryTypes) {
		return false
	}
	t := p.Type()
	if t == Pawn {
		return (c == AttackKQBWhitePawn && p.Color() == White) ||
			(c == AttackKQBBlackPawn && p.Color() == Black)
	}
	return categoryTypes[c]&(1<<t) != 0
}

// OffsetCode is the table index for an attack from one square to another.
func OffsetCode(from, to Square) int {
	return int(to) - int(from) + OffsetBias
}

// LookupOffset returns the category stored for an offset code.
func LookupOffset(code int) (Category, error) {
	if code < 0 || code >= TableSize {
		return AttackNone, fmt.Errorf("%w: %d", ErrInvalidOffset, code)
	}
	return attackTable[code], nil
}

// Attack returns the category of pieces on from that could attack to,
// ignoring anything standing between the two squares.
func Attack(from, to Square) (Category, error) {
	if err := checkSquares(from, to); err != nil {
		return AttackNone, err
	}
	return attackTable[OffsetCode(from, to)], nil
}

// CanAttack reports whether p standing on from could attack to on an empty
// board. It is a pre-filter; blockers still need a line check along Step.
func CanAttack(p Piece, from, to Square) (bool, error) {
	if !p.Valid() {
		return false, fmt.Errorf("%w: %#x", ErrInvalidPiece, uint8(p))
	}
	c, err := Attack(from, to)
	if err != nil {
		return false, err
	}
	return c.Admits(p), nil
}

// Step returns the unit direction leading from one square to the other along
// a shared rank, file or diagonal, or 0 when the squares are not aligned.
func Step(from, to Square) (Direction, error) {
	if err := checkSquares(from, to); err != nil {
		return 0, err
	}
	return stepTable[OffsetCode(from, to)], nil
}

// AttackTable returns a copy of the compiled table.
func AttackTable() [TableSize]Category { return attackTable }

func checkSquares(from, to Square) error {
	if !from.OnBoard() {
		return fmt.Errorf("%w: from %#x", ErrInvalidSquare, uint8(from))
	}
	if !to.OnBoard() {
		return fmt.Errorf("%w: to %#x", ErrInvalidSquare, uint8(to))
	}
	return nil
}
