package x88

import "fmt"

// Move packs a move into 32 bits:
//
//	bits 0-7    from square
//	bits 8-15   to square
//	bits 16-18  promotion PieceType (Pawn when unused)
//	bits 19-20  flag
//
// Squares keep all eight bits so an off-board index stays off-board.
type Move uint32

type MoveFlag uint8

const (
	FlagNone MoveFlag = iota
	FlagCastle
	FlagEnPassant
	FlagPromotion
)

const (
	moveFromShift  = 0
	moveToShift    = 8
	movePromoShift = 16
	moveFlagShift  = 19
)

// NoMove is the zero move (a1a1), never produced by ParseUCI.
const NoMove Move = 0

func NewMove(from, to Square, promo PieceType, flag MoveFlag) Move {
	if flag != FlagPromotion {
		promo = Pawn
	}
	return Move(uint32(from)<<moveFromShift |
		uint32(to)<<moveToShift |
		uint32(promo)&0x7<<movePromoShift |
		uint32(flag)&0x3<<moveFlagShift)
}

func (m Move) From() Square { return Square(uint32(m) >> moveFromShift & 0xFF) }

func (m Move) To() Square { return Square(uint32(m) >> moveToShift & 0xFF) }

// Promotion returns the promoted-to type, or Pawn for non-promotions.
func (m Move) Promotion() PieceType { return PieceType(uint32(m) >> movePromoShift & 0x7) }

func (m Move) Flag() MoveFlag { return MoveFlag(uint32(m) >> moveFlagShift & 0x3) }

// String renders the move in UCI long algebraic form, e.g. "e7e8q".
func (m Move) String() string {
	s := m.From().String() + m.To().String()
	if m.Flag() == FlagPromotion {
		s += string("prnbkq"[m.Promotion()])
	}
	return s
}

// ParseUCI reads a UCI move such as "e2e4" or "a7a8q" and infers castling,
// en passant and promotion flags from the board.
func ParseUCI(b *Board, s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NoMove, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	from, err := ParseSquare(s[0:2])
	if err != nil {
		return NoMove, fmt.Errorf("%w: %q: %v", ErrInvalidMove, s, err)
	}
	to, err := ParseSquare(s[2:4])
	if err != nil {
		return NoMove, fmt.Errorf("%w: %q: %v", ErrInvalidMove, s, err)
	}
	p := b.PieceAt(from)
	if p == NoPiece {
		return NoMove, fmt.Errorf("%w: %s", ErrEmptySquare, from)
	}

	if len(s) == 5 {
		var promo PieceType
		switch s[4] {
		case 'q':
			promo = Queen
		case 'r':
			promo = Rook
		case 'b':
			promo = Bishop
		case 'n':
			promo = Knight
		default:
			return NoMove, fmt.Errorf("%w: promotion %q", ErrInvalidMove, s[4])
		}
		return NewMove(from, to, promo, FlagPromotion), nil
	}

	switch p.Type() {
	case King:
		if from.Rank() == to.Rank() && abs(to.File()-from.File()) == 2 {
			return NewMove(from, to, Pawn, FlagCastle), nil
		}
	case Pawn:
		if to == b.enPassant && from.File() != to.File() && b.PieceAt(to) == NoPiece {
			return NewMove(from, to, Pawn, FlagEnPassant), nil
		}
		if to.Rank() == 0 || to.Rank() == 7 {
			return NoMove, fmt.Errorf("%w: %q needs a promotion piece", ErrInvalidMove, s)
		}
	}
	return NewMove(from, to, Pawn, FlagNone), nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
