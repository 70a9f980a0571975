package janggi

// IsCheckmated 判断 defender 被 checker 将军后是否无解。
// 三种解法：吃掉将军的子、垫子、将走到安全的格子。
func (b *Board) IsCheckmated(defender Color, checker Piece) bool {
	gen, ok := b.General(defender)
	if !ok {
		return false
	}
	if b.canCapture(defender, checker) {
		return false
	}
	if b.canBlock(defender, checker, gen.Pos) {
		return false
	}
	if b.canEscape(defender, gen.Pos) {
		return false
	}
	return true
}

func (b *Board) canCapture(defender Color, checker Piece) bool {
	for _, p := range b.Pieces(defender) {
		if b.IsLegal(p.Pos, checker.Pos) {
			return true
		}
	}
	return false
}

// blockSquares 返回 checker 攻击 target 途中可以垫子的空格。
func (b *Board) blockSquares(checker Piece, target Coord) []Coord {
	var out []Coord
	switch checker.Kind {
	case Horse:
		if leg, ok := horseLeg(checker.Pos, target); ok {
			out = append(out, leg)
		}
	case Elephant:
		if legs, ok := elephantLegs(checker.Pos, target); ok {
			out = append(out, legs[0], legs[1])
		}
	case Chariot, Cannon:
		// 车、包：两者之间的空格。包多垫一子也就没有炮架了。
		sc, sr := sign(target.Col-checker.Pos.Col), sign(target.Row-checker.Pos.Row)
		c := Coord{Col: checker.Pos.Col + sc, Row: checker.Pos.Row + sr}
		for c.Valid() && c != target {
			out = append(out, c)
			c = Coord{Col: c.Col + sc, Row: c.Row + sr}
		}
	case General, Guard, Soldier:
		// 贴身将军，无处可垫
	}
	kept := out[:0]
	for _, c := range out {
		if c.Valid() && !b.occupied(c) {
			kept = append(kept, c)
		}
	}
	return kept
}

func (b *Board) canBlock(defender Color, checker Piece, target Coord) bool {
	squares := b.blockSquares(checker, target)
	if len(squares) == 0 {
		return false
	}
	for _, p := range b.Pieces(defender) {
		if p.Kind == General {
			continue
		}
		for _, sq := range squares {
			if b.IsLegal(p.Pos, sq) {
				return true
			}
		}
	}
	return false
}

// canEscape 枚举九宫九格（包括原地不动），逐格试走并回滚。
func (b *Board) canEscape(defender Color, from Coord) bool {
	for _, sq := range defender.Palace() {
		if sq == from {
			if !b.InCheck(defender) {
				return true
			}
			continue
		}
		if !b.IsLegal(from, sq) {
			continue
		}
		t := b.begin(from, sq)
		safe := !b.InCheck(defender)
		t.rollback()
		if safe {
			return true
		}
	}
	return false
}
