package x88

import "math/rand"

// Zobrist keys indexed by piece code and 0x88 square. Off-board slots are
// filled too so indexing never needs a guard.
var zobristPiece [24][128]uint64
var zobristCastle [16]uint64
var zobristEnPassant [8]uint64 // by file
var zobristSide uint64         // black to move

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed so hashes are stable across runs.
	rnd := rand.New(rand.NewSource(0x88C0DE))

	for p := range zobristPiece {
		for sq := range zobristPiece[p] {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := range zobristCastle {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// ComputeHash recalculates the zobrist key from scratch.
func (b *Board) ComputeHash() uint64 {
	var key uint64
	for _, sq := range squares() {
		if p := b.squares[sq]; p != NoPiece {
			key ^= zobristPiece[p][sq]
		}
	}
	if b.side == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[b.castling&0xF]
	if b.enPassant.OnBoard() {
		key ^= zobristEnPassant[b.enPassant.File()]
	}
	return key
}
