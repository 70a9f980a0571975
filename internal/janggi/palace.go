package janggi

// 九宫：d-f 列，红方 1-3 行，蓝方 8-10 行。
func palaceRows(color Color) (lo, hi int) {
	if color == Red {
		return 1, 3
	}
	return 8, 10
}

func inPalace(color Color, col, row int) bool {
	if color != Red && color != Blue {
		return false
	}
	lo, hi := palaceRows(color)
	return col >= 4 && col <= 6 && row >= lo && row <= hi
}

// Palace returns the nine squares of the color's palace.
func (c Color) Palace() []Coord {
	if c != Red && c != Blue {
		return nil
	}
	lo, _ := palaceRows(c)
	out := make([]Coord, 0, 9)
	for row := lo; row < lo+3; row++ {
		for col := 4; col <= 6; col++ {
			out = append(out, Coord{Col: col, Row: row})
		}
	}
	return out
}

// 每个九宫两条斜线，按 角-中心-角 排列。
var palaceLines [4][3]Coord

// 可以斜走的格子：两个九宫的四角和中心。
var diagonalSquares [NumSquares]bool

func init() {
	for i, lo := range []int{1, 8} {
		palaceLines[2*i] = [3]Coord{{4, lo}, {5, lo + 1}, {6, lo + 2}}
		palaceLines[2*i+1] = [3]Coord{{6, lo}, {5, lo + 1}, {4, lo + 2}}
	}
	for _, line := range palaceLines {
		for _, c := range line {
			diagonalSquares[indexOf(c)] = true
		}
	}
}

func onDiagonal(c Coord) bool { return c.Valid() && diagonalSquares[indexOf(c)] }

// linesThrough 返回经过 c 的斜线以及 c 在线上的位置。
func linesThrough(c Coord) (lines [][3]Coord, at []int) {
	for _, line := range palaceLines {
		for i, sq := range line {
			if sq == c {
				lines = append(lines, line)
				at = append(at, i)
			}
		}
	}
	return lines, at
}
