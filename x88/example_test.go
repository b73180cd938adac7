package x88_test

import (
	"fmt"

	"chess-x88/x88"
)

func ExampleAttack() {
	c, _ := x88.Attack(x88.E4, x88.E5)
	fmt.Println(c)
	c, _ = x88.Attack(x88.B1, x88.C3)
	fmt.Println(c)
	c, _ = x88.Attack(x88.E4, x88.F5)
	fmt.Println(c, c.Admits(x88.WhitePawn), c.Admits(x88.BlackPawn))
	// Output:
	// KQR
	// N
	// KQB+wP true false
}

func ExampleGame_Undo() {
	g := x88.NewGame()
	for _, m := range []string{"e2e4", "d7d5", "e4d5"} {
		if err := g.ApplyUCI(m); err != nil {
			fmt.Println(err)
			return
		}
	}
	last, _ := g.Last()
	fmt.Println(last.Move, last.Captured)

	m, _ := g.Undo()
	b := g.Board()
	fmt.Println(m, b.FEN())
	// Output:
	// e4d5 p
	// e4d5 rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2
}
