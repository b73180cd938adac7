package x88

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// UndoRecord holds what Apply overwrote, enough to restore the board.
type UndoRecord struct {
	Move       Move
	Moved      Piece
	Captured   Piece  // NoPiece when the move captured nothing
	CapturedOn Square // differs from Move.To() only for en passant

	prevCastling  CastlingRights
	prevEnPassant Square
	prevHalfmove  int
	prevFullmove  int
	prevHash      uint64
}

// Game is a single game session: a board plus the stack of applied moves.
// A Game is not safe for concurrent use; games share no mutable state, so
// independent games may run on separate goroutines.
type Game struct {
	board   Board
	history []UndoRecord
}

func NewGame() *Game {
	g, err := NewGameFromFEN(StartFEN)
	if err != nil {
		panic(err)
	}
	return g
}

func NewGameFromFEN(fen string) (*Game, error) {
	b, err := ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Game{board: b}, nil
}

// Board returns a copy of the current position.
func (g *Game) Board() Board { return g.board }

// Ply is the number of moves on the undo stack.
func (g *Game) Ply() int { return len(g.history) }

// History returns the applied moves, oldest first.
func (g *Game) History() []Move {
	moves := make([]Move, len(g.history))
	for i, rec := range g.history {
		moves[i] = rec.Move
	}
	return moves
}

// Records returns a copy of the undo stack.
func (g *Game) Records() []UndoRecord { return slices.Clone(g.history) }

// Last returns the most recent undo record.
func (g *Game) Last() (UndoRecord, bool) {
	if len(g.history) == 0 {
		return UndoRecord{}, false
	}
	return g.history[len(g.history)-1], true
}

// ApplyUCI parses s against the current board and applies it.
func (g *Game) ApplyUCI(s string) error {
	m, err := ParseUCI(&g.board, s)
	if err != nil {
		return err
	}
	return g.Apply(m)
}

// castleMask clears the rights tied to a square once a piece leaves or
// lands on it.
var castleMask [128]CastlingRights

func init() {
	for i := range castleMask {
		castleMask[i] = CastleAll
	}
	castleMask[E1] &^= CastleWhiteKing | CastleWhiteQueen
	castleMask[H1] &^= CastleWhiteKing
	castleMask[A1] &^= CastleWhiteQueen
	castleMask[E8] &^= CastleBlackKing | CastleBlackQueen
	castleMask[H8] &^= CastleBlackKing
	castleMask[A8] &^= CastleBlackQueen
}

// Apply makes m on the board and pushes an undo record. It checks that the
// move is well formed for the position (right side, not capturing its own
// piece, flags consistent with the pieces involved) but not that it is legal.
func (g *Game) Apply(m Move) error {
	b := &g.board
	from, to := m.From(), m.To()
	if err := checkSquares(from, to); err != nil {
		return err
	}
	if from == to {
		return fmt.Errorf("%w: %s", ErrInvalidMove, m)
	}
	moved := b.squares[from]
	if moved == NoPiece {
		return fmt.Errorf("%w: %s", ErrEmptySquare, from)
	}
	if moved.Color() != b.side {
		return fmt.Errorf("%w: %s on %s", ErrWrongSide, moved, from)
	}
	target := b.squares[to]
	if target != NoPiece && target.Color() == b.side {
		return fmt.Errorf("%w: %s on %s", ErrOwnCapture, target, to)
	}

	capturedOn := to
	var rookFrom, rookTo Square
	switch m.Flag() {
	case FlagCastle:
		var err error
		rookFrom, rookTo, err = g.castleRook(moved, from, to)
		if err != nil {
			return err
		}
	case FlagEnPassant:
		if moved.Type() != Pawn || to != b.enPassant || target != NoPiece {
			return fmt.Errorf("%w: %s is not an en passant capture", ErrInvalidMove, m)
		}
		capturedOn = to.Add(-PawnPush(b.side))
		if b.squares[capturedOn] != NewPiece(Pawn, b.side.Other()) {
			return fmt.Errorf("%w: no %v pawn on %s to take en passant", ErrInvalidMove, b.side.Other(), capturedOn)
		}
	case FlagPromotion:
		promo := m.Promotion()
		if moved.Type() != Pawn || (to.Rank() != 0 && to.Rank() != 7) || promo == Pawn || promo == King || promo > Queen {
			return fmt.Errorf("%w: %s is not a promotion", ErrInvalidMove, m)
		}
	default:
		if moved.Type() == Pawn && (to.Rank() == 0 || to.Rank() == 7) {
			return fmt.Errorf("%w: %s needs a promotion piece", ErrInvalidMove, m)
		}
	}

	rec := UndoRecord{
		Move:          m,
		Moved:         moved,
		Captured:      b.squares[capturedOn],
		CapturedOn:    capturedOn,
		prevCastling:  b.castling,
		prevEnPassant: b.enPassant,
		prevHalfmove:  b.halfmove,
		prevFullmove:  b.fullmove,
		prevHash:      b.hash,
	}

	b.remove(capturedOn)
	b.remove(from)
	if m.Flag() == FlagPromotion {
		b.put(to, NewPiece(m.Promotion(), b.side))
	} else {
		b.put(to, moved)
	}
	if m.Flag() == FlagCastle {
		b.put(rookTo, b.remove(rookFrom))
	}

	b.setCastling(b.castling & castleMask[from] & castleMask[to])
	if moved.Type() == Pawn && to == from.Add(PawnDoublePush(b.side)) {
		b.setEnPassant(from.Add(PawnPush(b.side)))
	} else {
		b.setEnPassant(NoSquare)
	}
	if moved.Type() == Pawn || rec.Captured != NoPiece {
		b.halfmove = 0
	} else {
		b.halfmove++
	}
	if b.side == Black {
		b.fullmove++
	}
	b.flipSide()

	g.history = append(g.history, rec)
	return nil
}

// castleRook validates a castling move and returns the rook's path.
func (g *Game) castleRook(king Piece, from, to Square) (Square, Square, error) {
	b := &g.board
	home := E1
	kingSide, queenSide := CastleWhiteKing, CastleWhiteQueen
	if b.side == Black {
		home = E8
		kingSide, queenSide = CastleBlackKing, CastleBlackQueen
	}
	if king.Type() != King || from != home || to.Rank() != from.Rank() {
		return NoSquare, NoSquare, fmt.Errorf("%w: %s%s is not a castling move", ErrInvalidMove, from, to)
	}

	var rookFrom, rookTo Square
	switch to.File() {
	case 6:
		if b.castling&kingSide == 0 {
			return NoSquare, NoSquare, fmt.Errorf("%w: king side castling right lost", ErrInvalidMove)
		}
		rookFrom, rookTo = NewSquare(7, from.Rank()), NewSquare(5, from.Rank())
	case 2:
		if b.castling&queenSide == 0 {
			return NoSquare, NoSquare, fmt.Errorf("%w: queen side castling right lost", ErrInvalidMove)
		}
		rookFrom, rookTo = NewSquare(0, from.Rank()), NewSquare(3, from.Rank())
	default:
		return NoSquare, NoSquare, fmt.Errorf("%w: %s%s is not a castling move", ErrInvalidMove, from, to)
	}
	if b.squares[rookFrom] != NewPiece(Rook, b.side) {
		return NoSquare, NoSquare, fmt.Errorf("%w: no rook on %s", ErrInvalidMove, rookFrom)
	}
	if b.squares[to] != NoPiece || b.squares[rookTo] != NoPiece {
		return NoSquare, NoSquare, fmt.Errorf("%w: castling path occupied", ErrInvalidMove)
	}
	return rookFrom, rookTo, nil
}

// Undo pops the last move and restores the position it was made from.
func (g *Game) Undo() (Move, error) {
	if len(g.history) == 0 {
		return NoMove, ErrNothingToUndo
	}
	rec := g.history[len(g.history)-1]
	g.history = g.history[:len(g.history)-1]

	b := &g.board
	m := rec.Move
	from, to := m.From(), m.To()

	b.remove(to)
	b.put(from, rec.Moved)
	if rec.Captured != NoPiece {
		b.put(rec.CapturedOn, rec.Captured)
	}
	if m.Flag() == FlagCastle {
		rank := from.Rank()
		if to.File() == 6 {
			b.put(NewSquare(7, rank), b.remove(NewSquare(5, rank)))
		} else {
			b.put(NewSquare(0, rank), b.remove(NewSquare(3, rank)))
		}
	}

	b.side = b.side.Other()
	b.castling = rec.prevCastling
	b.enPassant = rec.prevEnPassant
	b.halfmove = rec.prevHalfmove
	b.fullmove = rec.prevFullmove
	b.hash = rec.prevHash
	return m, nil
}
