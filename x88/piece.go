package x88

// PieceType is the colourless piece kind. The values are the three high bits
// of a Piece code and index the move delta table.
type PieceType uint8

const (
	Pawn        PieceType = 0
	Rook        PieceType = 1
	Knight      PieceType = 2
	Bishop      PieceType = 3
	King        PieceType = 4
	Queen       PieceType = 5
	NoPieceType PieceType = 7
)

// Sliding reports whether the piece repeats its step until blocked.
func (t PieceType) Sliding() bool {
	return t == Rook || t == Bishop || t == Queen
}

func (t PieceType) String() string {
	switch t {
	case Pawn:
		return "pawn"
	case Rook:
		return "rook"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case King:
		return "king"
	case Queen:
		return "queen"
	}
	return "none"
}

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// Piece packs a piece as pppcs: type in bits 4-2, colour in bit 1 and the
// sliding flag in bit 0. The sliding bit is always derived from the type by
// NewPiece and never read back.
type Piece uint8

const (
	WhitePawn   Piece = 0x00
	WhiteRook   Piece = 0x05
	WhiteKnight Piece = 0x08
	WhiteBishop Piece = 0x0D
	WhiteKing   Piece = 0x10
	WhiteQueen  Piece = 0x15
	BlackPawn   Piece = 0x02
	BlackRook   Piece = 0x07
	BlackKnight Piece = 0x0A
	BlackBishop Piece = 0x0F
	BlackKing   Piece = 0x12
	BlackQueen  Piece = 0x17
	NoPiece     Piece = 0x1F
)

// NewPiece combines a type and colour into a piece code. NoPieceType, or any
// type outside Pawn..Queen, yields NoPiece.
func NewPiece(t PieceType, c Color) Piece {
	if t > Queen || c > Black {
		return NoPiece
	}
	p := Piece(t)<<2 | Piece(c)<<1
	if t.Sliding() {
		p |= 1
	}
	return p
}

func (p Piece) Type() PieceType {
	if p == NoPiece {
		return NoPieceType
	}
	return PieceType(p >> 2 & 7)
}

func (p Piece) Color() Color { return Color(p >> 1 & 1) }

// Sliding consults the piece type, not the stored bit.
func (p Piece) Sliding() bool { return p.Type().Sliding() }

// Valid reports whether p is NoPiece or one of the twelve real piece codes.
func (p Piece) Valid() bool {
	if p == NoPiece {
		return true
	}
	return p <= 0x1F && NewPiece(p.Type(), p.Color()) == p
}

// Char returns the FEN letter for p, or '.' for NoPiece.
func (p Piece) Char() rune {
	if p == NoPiece || !p.Valid() {
		return '.'
	}
	ch := rune("prnbkq"[p.Type()])
	if p.Color() == White {
		ch -= 'a' - 'A'
	}
	return ch
}

func (p Piece) String() string { return string(p.Char()) }

// PieceFromChar maps a FEN letter to a piece. Unknown letters give NoPiece.
func PieceFromChar(ch rune) Piece {
	switch ch {
	case 'P':
		return WhitePawn
	case 'R':
		return WhiteRook
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'K':
		return WhiteKing
	case 'Q':
		return WhiteQueen
	case 'p':
		return BlackPawn
	case 'r':
		return BlackRook
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'k':
		return BlackKing
	case 'q':
		return BlackQueen
	}
	return NoPiece
}
