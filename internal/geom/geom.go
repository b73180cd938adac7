// Package geom holds the 0x88 step geometry the attack table is derived
// from. It does not depend on any generated source, so cmd/attackgen can
// rebuild x88/attack_table.go even when that file is missing or broken.
package geom

// Single-step square differences on a 0x88 board.
const (
	N  = 16
	S  = -16
	E  = 1
	W  = -1
	NE = 17
	SW = -17
	NW = 15
	SE = -15
)

// Row indices of Deltas.
const (
	PawnRow = iota
	RookRow
	KnightRow
	BishopRow
	KingRow
	QueenRow
)

// Deltas holds the move steps per piece type in fixed slot order: diagonals
// first for bishop, king and queen, orthogonals after. Unused slots are 0.
// Pawns step by colour and have no row entries.
var Deltas = [6][8]int8{
	PawnRow:   {},
	RookRow:   {W, S, E, N},
	KnightRow: {-18, -33, -31, -14, 18, 33, 31, 14},
	BishopRow: {SE, SW, NW, NE},
	KingRow:   {SE, SW, NW, NE, W, S, E, N},
	QueenRow:  {SE, SW, NW, NE, W, S, E, N},
}

// NumDeltas is the number of used slots in each Deltas row.
var NumDeltas = [6]int{0, 4, 8, 4, 8, 8}

// Attack categories, in table encoding.
const (
	None = iota
	KQR
	QR
	KQBWhitePawn
	KQBBlackPawn
	QB
	Knight
)

// Names are the short labels of the categories, indexed by value.
var Names = [...]string{"none", "KQR", "QR", "KQB+wP", "KQB+bP", "QB", "N"}

const (
	OffsetBias = 128
	TableSize  = 257
)

// AttackTable walks every queen direction one to seven steps, then adds the
// eight knight jumps. A single diagonal step upwards is a white pawn capture
// and a single step downwards a black one, so those two entries are the only
// ones that differ from their negation.
func AttackTable() [TableSize]uint8 {
	var table [TableSize]uint8

	for _, d := range Deltas[QueenRow][:NumDeltas[QueenRow]] {
		diagonal := d == NE || d == NW || d == SE || d == SW
		for dist := 1; dist <= 7; dist++ {
			code := int(d)*dist + OffsetBias
			switch {
			case dist > 1 && diagonal:
				table[code] = QB
			case dist > 1:
				table[code] = QR
			case !diagonal:
				table[code] = KQR
			case d > 0:
				table[code] = KQBWhitePawn
			default:
				table[code] = KQBBlackPawn
			}
		}
	}

	for _, d := range Deltas[KnightRow][:NumDeltas[KnightRow]] {
		table[int(d)+OffsetBias] = Knight
	}
	return table
}

// StepTable maps every offset on a shared rank, file or diagonal to its unit
// step. All other entries are 0.
func StepTable() [TableSize]int8 {
	var table [TableSize]int8
	for _, d := range Deltas[QueenRow][:NumDeltas[QueenRow]] {
		for dist := 1; dist <= 7; dist++ {
			table[int(d)*dist+OffsetBias] = d
		}
	}
	return table
}

// Square returns the 0x88 index of file and rank, both 0..7.
func Square(file, rank int) int { return rank<<4 | file }
