package x88

import "errors"

var (
	ErrInvalidSquare = errors.New("x88: invalid square")
	ErrInvalidOffset = errors.New("x88: invalid offset code")
	ErrInvalidPiece  = errors.New("x88: invalid piece code")
	ErrInvalidFEN    = errors.New("x88: invalid FEN")
	ErrInvalidMove   = errors.New("x88: invalid move")
	ErrEmptySquare   = errors.New("x88: no piece on origin square")
	ErrWrongSide     = errors.New("x88: piece does not belong to side to move")
	ErrOwnCapture    = errors.New("x88: cannot capture own piece")
	ErrNothingToUndo = errors.New("x88: no move to undo")
)
