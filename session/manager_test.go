package session

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"chess-x88/x88"
)

func TestCreateApplyUndo(t *testing.T) {
	m := NewManager()
	id, err := m.Create("")
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Apply(id, "e2e4"); err != nil {
		t.Fatal(err)
	}
	fen, _ := m.FEN(id)
	if fen != "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1" {
		t.Fatalf("fen after e2e4: %s", fen)
	}
	mv, err := m.Undo(id)
	if err != nil || mv.String() != "e2e4" {
		t.Fatalf("undo: %v %v", mv, err)
	}
	if fen, _ := m.FEN(id); fen != x88.StartFEN {
		t.Fatalf("fen after undo: %s", fen)
	}
	if _, err := m.Undo(id); !errors.Is(err, x88.ErrNothingToUndo) {
		t.Fatalf("second undo: %v", err)
	}
}

func TestUnknownGame(t *testing.T) {
	m := NewManager()
	id := uuid.New()
	if err := m.Apply(id, "e2e4"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("apply: %v", err)
	}
	if _, err := m.FEN(id); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("fen: %v", err)
	}
	if err := m.Delete(id); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("delete: %v", err)
	}
}

func TestParseID(t *testing.T) {
	if _, err := ParseID("not-a-uuid"); !errors.Is(err, ErrInvalidID) || errors.Is(err, ErrGameNotFound) {
		t.Fatalf("malformed id: %v", err)
	}
	m := NewManager()
	id, err := m.Create("")
	if err != nil {
		t.Fatal(err)
	}
	parsed, err := ParseID(id.String())
	if err != nil || parsed != id {
		t.Fatalf("ParseID(%s) = %s, %v", id, parsed, err)
	}
	if _, err := m.FEN(parsed); err != nil {
		t.Fatalf("fen by parsed id: %v", err)
	}
}

func TestCreateRejectsBadFEN(t *testing.T) {
	m := NewManager()
	if _, err := m.Create("not a fen"); !errors.Is(err, x88.ErrInvalidFEN) {
		t.Fatalf("got %v", err)
	}
	if m.Len() != 0 {
		t.Fatalf("failed create registered a game")
	}
}

func TestAttackUsesBoard(t *testing.T) {
	m := NewManager()
	id, err := m.Create("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	c, ok, err := m.Attack(id, "a1", "a8")
	if err != nil || c != x88.AttackQR || !ok {
		t.Fatalf("a1->a8: %v %t %v", c, ok, err)
	}
	c, ok, _ = m.Attack(id, "e1", "f2")
	if c != x88.AttackKQBWhitePawn || !ok {
		t.Fatalf("e1->f2: %v %t", c, ok)
	}
	if _, ok, _ := m.Attack(id, "b1", "c3"); ok {
		t.Fatalf("empty b1 should not admit a knight jump")
	}
	if _, _, err := m.Attack(id, "z1", "a1"); !errors.Is(err, x88.ErrInvalidSquare) {
		t.Fatalf("bad square: %v", err)
	}
}

// Each game plays the same line forward and back on its own goroutine. Any
// sharing of undo state between games would corrupt the final positions.
func TestConcurrentGamesDoNotInterfere(t *testing.T) {
	m := NewManager()
	lines := [][]string{
		{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5", "a7a6"},
		{"d2d4", "d7d5", "c2c4", "e7e6", "b1c3", "g8f6"},
		{"c2c4", "e7e5", "b1c3", "g8f6", "g2g3", "d7d5", "c4d5", "f6d5"},
		{"g1f3", "d7d5", "g2g3", "c7c5", "f1g2", "b8c6", "e1g1"},
	}
	const copies = 8

	ids := make([]uuid.UUID, 0, len(lines)*copies)
	for i := 0; i < len(lines)*copies; i++ {
		id, err := m.Create("")
		if err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}

	var eg errgroup.Group
	for i, id := range ids {
		id, line := id, lines[i%len(lines)]
		eg.Go(func() error {
			for round := 0; round < 20; round++ {
				for _, mv := range line {
					if err := m.Apply(id, mv); err != nil {
						return fmt.Errorf("game %s apply %s: %w", id, mv, err)
					}
				}
				hist, err := m.History(id)
				if err != nil {
					return err
				}
				if len(hist) != len(line) {
					return fmt.Errorf("game %s: history has %d moves, want %d", id, len(hist), len(line))
				}
				for range line {
					if _, err := m.Undo(id); err != nil {
						return fmt.Errorf("game %s undo: %w", id, err)
					}
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		t.Fatal(err)
	}

	for _, id := range ids {
		fen, err := m.FEN(id)
		if err != nil {
			t.Fatal(err)
		}
		if fen != x88.StartFEN {
			t.Fatalf("game %s ended at %s", id, fen)
		}
	}
	if m.Len() != len(ids) {
		t.Fatalf("len %d want %d", m.Len(), len(ids))
	}
	if err := m.Delete(ids[0]); err != nil {
		t.Fatal(err)
	}
	if m.Len() != len(ids)-1 {
		t.Fatalf("len after delete %d", m.Len())
	}
}
