package janggi

// 马：先直走一格再斜走一格。终点 + 马腿
var horseLegMoves = [8]struct {
	Dc, Dr int // 终点
	Lc, Lr int // 马腿
}{
	{-1, -2, 0, -1},
	{+1, -2, 0, -1},
	{-2, -1, -1, 0},
	{+2, -1, +1, 0},
	{-2, +1, -1, 0},
	{+2, +1, +1, 0},
	{-1, +2, 0, +1},
	{+1, +2, 0, +1},
}

// 象：先直走一格再斜走两格。两条腿：直走那一格 + 第一个斜格
var elephantLegMoves = [8]struct {
	Dc, Dr int
	Legs   [2][2]int
}{
	{-2, -3, [2][2]int{{0, -1}, {-1, -2}}},
	{+2, -3, [2][2]int{{0, -1}, {+1, -2}}},
	{-3, -2, [2][2]int{{-1, 0}, {-2, -1}}},
	{+3, -2, [2][2]int{{+1, 0}, {+2, -1}}},
	{-3, +2, [2][2]int{{-1, 0}, {-2, +1}}},
	{+3, +2, [2][2]int{{+1, 0}, {+2, +1}}},
	{-2, +3, [2][2]int{{0, +1}, {-1, +2}}},
	{+2, +3, [2][2]int{{0, +1}, {+1, +2}}},
}

func genHorse(from Coord, out []Coord) []Coord {
	for _, m := range horseLegMoves {
		if onBoard(from.Col+m.Dc, from.Row+m.Dr) {
			out = append(out, Coord{Col: from.Col + m.Dc, Row: from.Row + m.Dr})
		}
	}
	return out
}

func genElephant(from Coord, out []Coord) []Coord {
	for _, m := range elephantLegMoves {
		if onBoard(from.Col+m.Dc, from.Row+m.Dr) {
			out = append(out, Coord{Col: from.Col + m.Dc, Row: from.Row + m.Dr})
		}
	}
	return out
}

// horseLeg 返回 from→to 这步马的马腿；不是马步时 ok=false。
func horseLeg(from, to Coord) (Coord, bool) {
	dc, dr := to.Col-from.Col, to.Row-from.Row
	for _, m := range horseLegMoves {
		if m.Dc == dc && m.Dr == dr {
			return Coord{Col: from.Col + m.Lc, Row: from.Row + m.Lr}, true
		}
	}
	return Coord{}, false
}

// elephantLegs 返回 from→to 这步象需要为空的两格。
func elephantLegs(from, to Coord) ([2]Coord, bool) {
	dc, dr := to.Col-from.Col, to.Row-from.Row
	for _, m := range elephantLegMoves {
		if m.Dc == dc && m.Dr == dr {
			return [2]Coord{
				{Col: from.Col + m.Legs[0][0], Row: from.Row + m.Legs[0][1]},
				{Col: from.Col + m.Legs[1][0], Row: from.Row + m.Legs[1][1]},
			}, true
		}
	}
	return [2]Coord{}, false
}
