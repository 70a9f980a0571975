package janggi

// Checkers 返回所有能合法走到 color 方将位置的对方棋子。
func (b *Board) Checkers(color Color) []Piece {
	gen, ok := b.General(color)
	if !ok {
		return nil
	}
	var out []Piece
	for _, p := range b.Pieces(color.Opponent()) {
		if b.IsLegal(p.Pos, gen.Pos) {
			out = append(out, p)
		}
	}
	return out
}

// InCheck 判断 color 这一方的将是否被将军。每次都全量重算，不缓存。
func (b *Board) InCheck(color Color) bool {
	gen, ok := b.General(color)
	if !ok {
		return false
	}
	for _, p := range b.Pieces(color.Opponent()) {
		if b.IsLegal(p.Pos, gen.Pos) {
			return true
		}
	}
	return false
}
