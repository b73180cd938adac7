package x88

import (
	"errors"
	"testing"
)

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		"4k3/8/8/8/8/8/8/4K3 b - - 12 40",
	}
	for _, fen := range fens {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := b.FEN(); got != fen {
			t.Fatalf("round trip:\n got %q\nwant %q", got, fen)
		}
		if b.Hash() != b.ComputeHash() {
			t.Fatalf("%q: hash %x recomputed %x", fen, b.Hash(), b.ComputeHash())
		}
	}
}

func TestFENDefaultsClocks(t *testing.T) {
	b, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 w - -")
	if err != nil {
		t.Fatal(err)
	}
	if b.HalfmoveClock() != 0 || b.FullmoveNumber() != 1 {
		t.Fatalf("clocks %d %d", b.HalfmoveClock(), b.FullmoveNumber())
	}
	if b.KingSquare(White) != E1 || b.KingSquare(Black) != E8 {
		t.Fatalf("kings on %s %s", b.KingSquare(White), b.KingSquare(Black))
	}
}

func TestFENRejectsGarbage(t *testing.T) {
	bad := []string{
		"",
		"8/8/8/8 w - -",
		"8/8/8/8/8/8/8/8/8 w - - 0 1",
		"9/8/8/8/8/8/8/8 w - - 0 1",
		"7/8/8/8/8/8/8/8 w - - 0 1",
		"8/8/8/8/8/8/8/7x w - - 0 1",
		"8/8/8/8/8/8/8/8 x - - 0 1",
		"8/8/8/8/8/8/8/8 w KX - 0 1",
		"8/8/8/8/8/8/8/8 w - e4 0 1",
		"8/8/8/8/8/8/8/8 w - z9 0 1",
		"4k3/8/8/8/8/8/3PP3/4K3 w - e3 0 1",
		"4k3/3pp3/8/8/8/8/8/4K3 b - e6 0 1",
		"8/8/8/8/8/8/8/8 w - - -1 1",
		"8/8/8/8/8/8/8/8 w - - 0 0",
	}
	for _, fen := range bad {
		if _, err := ParseFEN(fen); !errors.Is(err, ErrInvalidFEN) {
			t.Fatalf("ParseFEN(%q): got %v want ErrInvalidFEN", fen, err)
		}
	}
}

func TestSetPieceKeepsHash(t *testing.T) {
	b := NewBoard()
	if err := b.SetPiece(D4, WhiteQueen); err != nil {
		t.Fatal(err)
	}
	if err := b.SetPiece(D4, BlackKnight); err != nil {
		t.Fatal(err)
	}
	if b.PieceAt(D4) != BlackKnight || b.Hash() != b.ComputeHash() {
		t.Fatalf("replace on d4 broke board or hash")
	}
	if p := b.Clear(D4); p != BlackKnight || b.Hash() != NewBoard().hash {
		t.Fatalf("clear returned %v", p)
	}
	if err := b.SetPiece(Square(0x0A), WhiteKing); !errors.Is(err, ErrInvalidSquare) {
		t.Fatalf("off-board set: %v", err)
	}
	if err := b.SetPiece(A1, Piece(0x1C)); !errors.Is(err, ErrInvalidPiece) {
		t.Fatalf("bad piece set: %v", err)
	}
	if b.PieceAt(Square(0x0A)) != NoPiece {
		t.Fatalf("off-board squares should read as empty")
	}
}
