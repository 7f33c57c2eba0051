package relative

import (
	"sync"

	"cetkaik/internal/cetkaik"
)

const (
	zobristPieceCodes = rankedBase + cetkaik.NumProfessions*cetkaik.NumColors*2 // NoPiece unused
	zobristHandDepth  = 16                                                       // one color+profession never exceeds 10 copies
)

var (
	zobristOnce sync.Once

	zobristPieces [zobristPieceCodes][Size][Size]uint64
	// hand keys are indexed by occurrence (n-th copy of a color+profession),
	// so a hand hashes the same in any order: a multiset, not a sequence
	zobristHands [2][cetkaik.NumColors][cetkaik.NumProfessions][zobristHandDepth]uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for pc := Tam2; pc < zobristPieceCodes; pc++ {
			for r := 0; r < Size; r++ {
				for c := 0; c < Size; c++ {
					zobristPieces[pc][r][c] = next()
				}
			}
		}
		for side := 0; side < 2; side++ {
			for col := 0; col < cetkaik.NumColors; col++ {
				for prof := 0; prof < cetkaik.NumProfessions; prof++ {
					for n := 0; n < zobristHandDepth; n++ {
						zobristHands[side][col][prof][n] = next()
					}
				}
			}
		}
	})
}

func handHash(side Side, hand []cetkaik.HandPiece) uint64 {
	var seen [cetkaik.NumColors][cetkaik.NumProfessions]int
	var h uint64
	for _, hp := range hand {
		n := seen[hp.Color][hp.Prof]
		seen[hp.Color][hp.Prof]++
		h ^= zobristHands[side][hp.Color][hp.Prof][n%zobristHandDepth]
	}
	return h
}

// Hash computes the full Zobrist hash. Fields with SameState hash equal.
func (f *Field) Hash() uint64 {
	initZobrist()

	var h uint64
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			pc := f.Board.Squares[r][c]
			if pc == NoPiece || pc >= zobristPieceCodes {
				continue
			}
			h ^= zobristPieces[pc][r][c]
		}
	}
	h ^= handHash(Upward, f.HandOfUpward)
	h ^= handHash(Downward, f.HandOfDownward)
	return h
}
