package janggi

import "sync"

const zobristKinds = int(Soldier) + 1 // Kind 范围 [1..7]，0 不用

var (
	zobristOnce sync.Once

	zobristPieces [2][zobristKinds][NumSquares]uint64
	zobristTurn   [3]uint64 // 下标 = Color，含 NoColor
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

		for side := 0; side < 2; side++ {
			for k := 1; k < zobristKinds; k++ {
				for sq := 0; sq < NumSquares; sq++ {
					zobristPieces[side][k][sq] = next()
				}
			}
		}
		for i := range zobristTurn {
			zobristTurn[i] = next()
		}
	})
}

func pieceHashKey(color Color, kind Kind, sq int) uint64 {
	if sq < 0 || sq >= NumSquares || kind <= KindNone || int(kind) >= zobristKinds {
		return 0
	}
	var sideIdx int
	switch color {
	case Red:
		sideIdx = 0
	case Blue:
		sideIdx = 1
	default:
		return 0
	}
	initZobrist()
	return zobristPieces[sideIdx][kind][sq]
}

func turnHashKey(c Color) uint64 {
	if c < NoColor || c > Blue {
		return 0
	}
	initZobrist()
	return zobristTurn[c]
}

// CalculateHash 全量计算棋子摆放的 Zobrist 哈希。
func (b *Board) CalculateHash() uint64 {
	var h uint64
	for sq, id := range b.grid {
		if id == 0 {
			continue
		}
		s := b.pieces[id]
		h ^= pieceHashKey(s.color, s.kind, sq)
	}
	return h
}
