package x88

import "chess-x88/internal/geom"

// stepTable maps an offset code to the unit step of the line it lies on.
var stepTable = BuildStepTable()

// BuildAttackTable derives the attack relation from the step geometry:
// king and queen directions walked one to seven steps, then the knight
// jumps. attack_table.go is generated from the same source.
func BuildAttackTable() [TableSize]Category {
	var table [TableSize]Category
	for code, c := range geom.AttackTable() {
		table[code] = Category(c)
	}
	return table
}

// BuildStepTable derives the unit step for every offset on a shared line.
func BuildStepTable() [TableSize]Direction {
	var table [TableSize]Direction
	for code, d := range geom.StepTable() {
		table[code] = Direction(d)
	}
	return table
}
