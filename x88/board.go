package x88

import (
	"fmt"
	"strings"
)

// CastlingRights is a bitmask of the four castling options.
type CastlingRights uint8

const (
	CastleWhiteKing CastlingRights = 1 << iota
	CastleWhiteQueen
	CastleBlackKing
	CastleBlackQueen

	CastleNone CastlingRights = 0
	CastleAll                 = CastleWhiteKing | CastleWhiteQueen | CastleBlackKing | CastleBlackQueen
)

// Board is a 0x88 position. The zero value is not usable since a zero piece
// code is a white pawn; start from NewBoard or ParseFEN.
type Board struct {
	squares   [128]Piece
	side      Color
	castling  CastlingRights
	enPassant Square
	halfmove  int
	fullmove  int
	hash      uint64
}

// NewBoard returns an empty board with white to move.
func NewBoard() Board {
	b := Board{enPassant: NoSquare, fullmove: 1}
	for i := range b.squares {
		b.squares[i] = NoPiece
	}
	b.hash = b.ComputeHash()
	return b
}

// PieceAt returns NoPiece for empty and off-board squares.
func (b *Board) PieceAt(sq Square) Piece {
	if !sq.OnBoard() {
		return NoPiece
	}
	return b.squares[sq]
}

// SetPiece places p on sq, replacing whatever stood there. Setting NoPiece
// clears the square.
func (b *Board) SetPiece(sq Square, p Piece) error {
	if !sq.OnBoard() {
		return fmt.Errorf("%w: %#x", ErrInvalidSquare, uint8(sq))
	}
	if !p.Valid() {
		return fmt.Errorf("%w: %#x", ErrInvalidPiece, uint8(p))
	}
	b.remove(sq)
	if p != NoPiece {
		b.put(sq, p)
	}
	return nil
}

// Clear empties sq and returns what stood there.
func (b *Board) Clear(sq Square) Piece {
	if !sq.OnBoard() {
		return NoPiece
	}
	return b.remove(sq)
}

func (b *Board) SideToMove() Color        { return b.side }
func (b *Board) Castling() CastlingRights { return b.castling }
func (b *Board) EnPassant() Square        { return b.enPassant }
func (b *Board) HalfmoveClock() int       { return b.halfmove }
func (b *Board) FullmoveNumber() int      { return b.fullmove }
func (b *Board) Hash() uint64             { return b.hash }

// KingSquare returns the first king of colour c found scanning from a1, or
// NoSquare.
func (b *Board) KingSquare(c Color) Square {
	k := NewPiece(King, c)
	for _, sq := range squares() {
		if b.squares[sq] == k {
			return sq
		}
	}
	return NoSquare
}

// CandidateAttackers lists the squares holding pieces of colour by whose
// attack category admits them against target. Intermediate squares are not
// examined, so sliders on the list may be blocked.
func (b *Board) CandidateAttackers(target Square, by Color) ([]Square, error) {
	if !target.OnBoard() {
		return nil, fmt.Errorf("%w: %#x", ErrInvalidSquare, uint8(target))
	}
	var out []Square
	for _, sq := range squares() {
		p := b.squares[sq]
		if p == NoPiece || p.Color() != by {
			continue
		}
		if attackTable[OffsetCode(sq, target)].Admits(p) {
			out = append(out, sq)
		}
	}
	return out, nil
}

func (b *Board) put(sq Square, p Piece) {
	b.squares[sq] = p
	b.hash ^= zobristPiece[p][sq]
}

func (b *Board) remove(sq Square) Piece {
	p := b.squares[sq]
	if p != NoPiece {
		b.hash ^= zobristPiece[p][sq]
		b.squares[sq] = NoPiece
	}
	return p
}

func (b *Board) setCastling(cr CastlingRights) {
	b.hash ^= zobristCastle[b.castling&0xF]
	b.castling = cr & CastleAll
	b.hash ^= zobristCastle[b.castling]
}

func (b *Board) setEnPassant(sq Square) {
	if b.enPassant.OnBoard() {
		b.hash ^= zobristEnPassant[b.enPassant.File()]
	}
	b.enPassant = sq
	if sq.OnBoard() {
		b.hash ^= zobristEnPassant[sq.File()]
	}
}

func (b *Board) flipSide() {
	b.side = b.side.Other()
	b.hash ^= zobristSide
}

// String draws the board with rank 8 at the top.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			sb.WriteRune(b.squares[NewSquare(file, rank)].Char())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
