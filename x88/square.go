package x88

import "fmt"

// Square is a 0x88 board index: the low nibble holds the file (0-7) and the
// high nibble the rank (0-7). Any index with a bit of 0x88 set is off the board.
type Square uint8

// NoSquare is an off-board sentinel (0x7F & 0x88 != 0).
const NoSquare Square = 0x7F

const (
	A1 Square = iota + 0x00
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

const (
	A2 Square = iota + 0x10
	B2
	C2
	D2
	E2
	F2
	G2
	H2
)

const (
	A3 Square = iota + 0x20
	B3
	C3
	D3
	E3
	F3
	G3
	H3
)

const (
	A4 Square = iota + 0x30
	B4
	C4
	D4
	E4
	F4
	G4
	H4
)

const (
	A5 Square = iota + 0x40
	B5
	C5
	D5
	E5
	F5
	G5
	H5
)

const (
	A6 Square = iota + 0x50
	B6
	C6
	D6
	E6
	F6
	G6
	H6
)

const (
	A7 Square = iota + 0x60
	B7
	C7
	D7
	E7
	F7
	G7
	H7
)

const (
	A8 Square = iota + 0x70
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare builds a square from a file and rank in 0..7. Out of range input
// yields an off-board square.
func NewSquare(file, rank int) Square {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare
	}
	return Square(rank<<4 | file)
}

// FromIndex64 converts a rank*8+file index (0 = a1, 63 = h8) to a 0x88 square.
func FromIndex64(i int) Square {
	if i < 0 || i > 63 {
		return NoSquare
	}
	return Square((i>>3)<<4 | i&7)
}

func (sq Square) File() int { return int(sq & 0x0F) }

func (sq Square) Rank() int { return int(sq >> 4) }

// OnBoard reports whether sq addresses one of the 64 real squares.
func (sq Square) OnBoard() bool { return sq&0x88 == 0 }

// To64 converts sq to the rank*8+file layout used by bitboard engines.
// It returns -1 for off-board squares.
func (sq Square) To64() int {
	if !sq.OnBoard() {
		return -1
	}
	return sq.Rank()*8 + sq.File()
}

// Add returns the square reached by stepping d from sq. The result may be
// off the board.
func (sq Square) Add(d Direction) Square { return Square(int(sq) + int(d)) }

func (sq Square) String() string {
	if !sq.OnBoard() {
		return "-"
	}
	return string([]byte{byte('a' + sq.File()), byte('1' + sq.Rank())})
}

// ParseSquare parses algebraic notation such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return NewSquare(int(s[0]-'a'), int(s[1]-'1')), nil
}

// squares lists the 64 on-board squares from a1 to h8.
func squares() []Square {
	out := make([]Square, 0, 64)
	for i := 0; i < 64; i++ {
		out = append(out, FromIndex64(i))
	}
	return out
}
