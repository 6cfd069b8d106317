// Package hashing provides Zobrist position hashes and duplicate detection.
package hashing

import (
	"math/rand/v2"

	"github.com/lgbarn/termchess-go/internal/chess"
)

// zobristSeed fixes the key table so hashes are stable across runs.
const zobristSeed = 0x7465726d63686573

var (
	// pieceKeys is indexed by colour, kind (Pawn..King) and square.
	pieceKeys   [2][chess.King + 1][chess.BoardSize * chess.BoardSize]uint64
	blackToMove uint64
)

func init() {
	rng := rand.New(rand.NewPCG(zobristSeed, zobristSeed>>1))
	for c := range pieceKeys {
		for k := chess.Pawn; k <= chess.King; k++ {
			for sq := range pieceKeys[c][k] {
				pieceKeys[c][k][sq] = rng.Uint64()
			}
		}
	}
	blackToMove = rng.Uint64()
}

// PositionHash returns the Zobrist hash of the placement with side to move.
func PositionHash(board *chess.Board, side chess.Colour) uint64 {
	var hash uint64
	board.ForEachPiece(func(sq chess.Square, piece chess.Piece) bool {
		hash ^= pieceKeys[piece.Colour][piece.Kind][sq.Row*chess.BoardSize+sq.Col]
		return true
	})
	if side == chess.Black {
		hash ^= blackToMove
	}
	return hash
}

// DuplicateDetector remembers the first input line each position hash was
// seen on.
type DuplicateDetector struct {
	// firstSeen maps a position hash to the lowest line recorded for it
	firstSeen map[uint64]int
	// maxCapacity caps the number of distinct hashes, 0 for unlimited
	maxCapacity int
}

// NewDuplicateDetector creates a detector. maxCapacity of 0 means unlimited.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		firstSeen:   make(map[uint64]int),
		maxCapacity: maxCapacity,
	}
}

// Add records hash at line and reports whether it had been seen before.
// The lowest line wins regardless of insertion order. Once the detector is
// full, new hashes are not recorded.
func (d *DuplicateDetector) Add(hash uint64, line int) bool {
	first, seen := d.firstSeen[hash]
	switch {
	case !seen && d.IsFull():
		return false
	case !seen || line < first:
		d.firstSeen[hash] = line
	}
	return seen
}

// FirstLine returns the lowest line recorded for hash.
func (d *DuplicateDetector) FirstLine(hash uint64) (line int, ok bool) {
	line, ok = d.firstSeen[hash]
	return line, ok
}

// UniqueCount returns the number of distinct positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	return len(d.firstSeen)
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && len(d.firstSeen) >= d.maxCapacity
}
