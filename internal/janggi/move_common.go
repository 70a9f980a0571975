package janggi

var orthoDirs = [4][2]int{{0, +1}, {0, -1}, {-1, 0}, {+1, 0}}
var diagDirs = [4][2]int{{-1, -1}, {-1, +1}, {+1, -1}, {+1, +1}}

// Generate returns every square the kind could reach from `from` on an
// empty board. Only the palace tables are consulted.
func Generate(kind Kind, color Color, from Coord) []Coord {
	if !from.Valid() {
		return nil
	}
	out := make([]Coord, 0, 20)
	switch kind {
	case General, Guard:
		out = genPalaceStep(color, from, out)
	case Chariot:
		out = genLine(from, false, out)
	case Cannon:
		out = genLine(from, true, out)
	case Horse:
		out = genHorse(from, out)
	case Elephant:
		out = genElephant(from, out)
	case Soldier:
		out = genSoldier(color, from, out)
	}
	return out
}

func reaches(kind Kind, color Color, from, to Coord) bool {
	for _, c := range Generate(kind, color, from) {
		if c == to {
			return true
		}
	}
	return false
}

// 将、士：九宫内一格，四角和中心可以斜走
func genPalaceStep(color Color, from Coord, out []Coord) []Coord {
	add := func(d [2]int) {
		c, r := from.Col+d[0], from.Row+d[1]
		if inPalace(color, c, r) {
			out = append(out, Coord{Col: c, Row: r})
		}
	}
	for _, d := range orthoDirs {
		add(d)
	}
	if onDiagonal(from) {
		for _, d := range diagDirs {
			add(d)
		}
	}
	return out
}

// 车、包：整行整列；在九宫斜线上时沿斜线走到对角。
// 包只能角对角（跳过中心），车可以停在斜线任一格。
func genLine(from Coord, cornersOnly bool, out []Coord) []Coord {
	for r := 1; r <= Rows; r++ {
		if r != from.Row {
			out = append(out, Coord{Col: from.Col, Row: r})
		}
	}
	for c := 1; c <= Cols; c++ {
		if c != from.Col {
			out = append(out, Coord{Col: c, Row: from.Row})
		}
	}
	lines, at := linesThrough(from)
	for i, line := range lines {
		if cornersOnly {
			if at[i] != 1 {
				out = append(out, line[2-at[i]])
			}
			continue
		}
		for j, c := range line {
			if j != at[i] {
				out = append(out, c)
			}
		}
	}
	return out
}

// 兵：前进或横走一格，不能后退；在九宫斜线上可以沿线向前斜走。
func genSoldier(color Color, from Coord, out []Coord) []Coord {
	fwd := color.forward()
	if fwd == 0 {
		return out
	}
	for _, d := range [3][2]int{{0, fwd}, {-1, 0}, {+1, 0}} {
		c, r := from.Col+d[0], from.Row+d[1]
		if onBoard(c, r) {
			out = append(out, Coord{Col: c, Row: r})
		}
	}
	// 斜走只在对方九宫
	if !inPalace(color.Opponent(), from.Col, from.Row) {
		return out
	}
	lines, at := linesThrough(from)
	for i, line := range lines {
		for _, j := range []int{at[i] - 1, at[i] + 1} {
			if j < 0 || j > 2 {
				continue
			}
			if line[j].Row == from.Row+fwd {
				out = append(out, line[j])
			}
		}
	}
	return out
}
