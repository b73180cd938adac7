package x88

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN builds a board from a FEN record. The move clocks are optional and
// default to 0 and 1.
func ParseFEN(fen string) (Board, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return Board{}, fmt.Errorf("%w: need at least 4 fields, got %d", ErrInvalidFEN, len(fields))
	}
	b := NewBoard()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return Board{}, fmt.Errorf("%w: %d ranks", ErrInvalidFEN, len(ranks))
	}
	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, ch := range rankStr {
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			p := PieceFromChar(ch)
			if p == NoPiece {
				return Board{}, fmt.Errorf("%w: unknown piece %q", ErrInvalidFEN, ch)
			}
			if file > 7 {
				return Board{}, fmt.Errorf("%w: rank %d overflows", ErrInvalidFEN, rank+1)
			}
			b.put(NewSquare(file, rank), p)
			file++
		}
		if file != 8 {
			return Board{}, fmt.Errorf("%w: rank %d has %d files", ErrInvalidFEN, rank+1, file)
		}
	}

	switch fields[1] {
	case "w":
	case "b":
		b.flipSide()
	default:
		return Board{}, fmt.Errorf("%w: side %q", ErrInvalidFEN, fields[1])
	}

	var cr CastlingRights
	if fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				cr |= CastleWhiteKing
			case 'Q':
				cr |= CastleWhiteQueen
			case 'k':
				cr |= CastleBlackKing
			case 'q':
				cr |= CastleBlackQueen
			default:
				return Board{}, fmt.Errorf("%w: castling %q", ErrInvalidFEN, fields[2])
			}
		}
	}
	b.setCastling(cr)

	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return Board{}, fmt.Errorf("%w: en passant: %v", ErrInvalidFEN, err)
		}
		// The square lies behind a pawn the side not to move just pushed.
		if want := 5 - 3*int(b.side); sq.Rank() != want {
			return Board{}, fmt.Errorf("%w: en passant square %s with %v to move", ErrInvalidFEN, sq, b.side)
		}
		b.setEnPassant(sq)
	}

	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return Board{}, fmt.Errorf("%w: halfmove clock %q", ErrInvalidFEN, fields[4])
		}
		b.halfmove = n
	}
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return Board{}, fmt.Errorf("%w: fullmove number %q", ErrInvalidFEN, fields[5])
		}
		b.fullmove = n
	}
	return b, nil
}

// FEN formats the board as a six field FEN record.
func (b *Board) FEN() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := b.squares[NewSquare(file, rank)]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteRune(p.Char())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	if b.side == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	if b.castling == CastleNone {
		sb.WriteByte('-')
	} else {
		for _, c := range []struct {
			right CastlingRights
			ch    byte
		}{{CastleWhiteKing, 'K'}, {CastleWhiteQueen, 'Q'}, {CastleBlackKing, 'k'}, {CastleBlackQueen, 'q'}} {
			if b.castling&c.right != 0 {
				sb.WriteByte(c.ch)
			}
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(b.enPassant.String())
	fmt.Fprintf(&sb, " %d %d", b.halfmove, b.fullmove)
	return sb.String()
}
