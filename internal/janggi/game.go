package janggi

import "fmt"

// Debug 打开后，每次落子/回滚都校验棋盘一致性，不一致直接 panic。
// 测试和 playout 会打开。
var Debug bool

// Game 是一盘棋：棋盘 + 轮次 + 将军状态 + 胜负。单线程使用。
type Game struct {
	board    *Board
	active   Color
	check    Color
	state    GameState
	captured [3][]PieceID // 下标 = 被吃子的颜色
}

func NewGame() *Game {
	g, err := NewGameFromText(initialPosition)
	if err != nil {
		panic("initial position: " + err.Error())
	}
	return g
}

// NewGameFromText 从局面文本建一盘棋，将军状态按局面重新计算。
func NewGameFromText(text string) (*Game, error) {
	b, active, err := decodeBoard(text)
	if err != nil {
		return nil, err
	}
	g := &Game{board: b, active: active}
	// 不该走的一方不能已经被将军，否则轮到的一方直接吃将
	side := g.mover()
	if b.InCheck(side.Opponent()) {
		return nil, fmt.Errorf("%w: %s in check but %s to move", ErrInvalidPosition, side.Opponent(), side)
	}
	if b.InCheck(side) {
		g.check = side
	}
	return g, nil
}

func (g *Game) State() GameState   { return g.state }
func (g *Game) ActiveColor() Color { return g.active }
func (g *Game) CheckStatus() Color { return g.check }
func (g *Game) Board() *Board      { return g.board }

func (g *Game) PieceAt(c Coord) (Piece, bool) { return g.board.At(c) }
func (g *Game) Pieces(color Color) []Piece    { return g.board.Pieces(color) }
func (g *Game) IsLegal(from, to Coord) bool   { return g.board.IsLegal(from, to) }
func (g *Game) InCheck(color Color) bool      { return g.board.InCheck(color) }

// Captured 返回 color 这一方被吃掉的子，按被吃顺序。
func (g *Game) Captured(color Color) []Piece {
	if color != Red && color != Blue {
		return nil
	}
	out := make([]Piece, 0, len(g.captured[color]))
	for _, id := range g.captured[color] {
		out = append(out, g.board.piece(id))
	}
	return out
}

func (g *Game) Encode() string { return encodeBoard(g.board, g.active) }

// Hash = 摆放 + 轮次。
func (g *Game) Hash() uint64 { return g.board.Hash() ^ turnHashKey(g.active) }

// mover 是这一手该走的一方：开局前固定为蓝方。
func (g *Game) mover() Color {
	if g.active == NoColor {
		return Blue
	}
	return g.active
}

// MakeMove 走一步，from == to 表示停着。返回是否被接受。
func (g *Game) MakeMove(from, to Coord) bool { return g.TryMove(from, to) == ReasonOK }

// MakeMoveText 同 MakeMove，坐标用 "e7" 这种写法；解析失败视为拒绝。
func (g *Game) MakeMoveText(from, to string) bool {
	f, err := ParseCoord(from)
	if err != nil {
		return false
	}
	t, err := ParseCoord(to)
	if err != nil {
		return false
	}
	return g.MakeMove(f, t)
}

// Pass 停着一手。
func (g *Game) Pass() bool {
	gen, ok := g.board.General(g.mover())
	if !ok {
		return false
	}
	return g.MakeMove(gen.Pos, gen.Pos)
}

// TryMove 和 MakeMove 一样，但返回拒绝原因。
func (g *Game) TryMove(from, to Coord) Reason {
	if g.state != Unfinished {
		return ReasonGameOver
	}
	if !from.Valid() || !to.Valid() {
		return ReasonOffBoard
	}
	side := g.mover()

	if from == to {
		if g.check == side {
			return ReasonInCheck
		}
		g.active = side.Opponent()
		return ReasonOK
	}

	pc, ok := g.board.At(from)
	if !ok {
		return ReasonNoPiece
	}
	if pc.Color != side {
		return ReasonWrongTurn
	}
	if r := g.board.CheckMove(from, to); r != ReasonOK {
		return r
	}

	t := g.board.begin(from, to)
	if g.board.InCheck(side) {
		t.rollback()
		g.assertConsistent()
		return ReasonSelfCheck
	}
	if t.taken != 0 {
		g.captured[g.board.pieces[t.taken].color] = append(g.captured[g.board.pieces[t.taken].color], t.taken)
	}
	g.assertConsistent()

	opp := side.Opponent()
	g.check = NoColor
	if checkers := g.board.Checkers(opp); len(checkers) > 0 {
		g.check = opp
		if g.board.IsCheckmated(opp, pickChecker(checkers, t.mover)) {
			g.state = winnerState(side)
		}
	}
	if g.state == Unfinished {
		g.active = opp
	} else {
		g.active = side
	}
	return ReasonOK
}

// pickChecker 优先取刚走的那个子；闪将时取第一个发现的。
func pickChecker(checkers []Piece, moved PieceID) Piece {
	for _, p := range checkers {
		if p.ID == moved {
			return p
		}
	}
	return checkers[0]
}

// IsCheckmated exposes the analyzer for a given checking piece.
func (g *Game) IsCheckmated(defender Color, checker Piece) bool {
	return g.board.IsCheckmated(defender, checker)
}

// LegalMoves 列出 color 方所有不会送将的走法（不含停着）。
func (g *Game) LegalMoves(color Color) []Move {
	var out []Move
	for _, p := range g.board.Pieces(color) {
		out = append(out, g.legalFrom(p)...)
	}
	return out
}

// LegalMovesFrom 列出 from 上那个子不会送将的走法。
func (g *Game) LegalMovesFrom(from Coord) []Move {
	p, ok := g.board.At(from)
	if !ok {
		return nil
	}
	return g.legalFrom(p)
}

func (g *Game) legalFrom(p Piece) []Move {
	var out []Move
	for _, to := range Generate(p.Kind, p.Color, p.Pos) {
		if !g.board.IsLegal(p.Pos, to) {
			continue
		}
		t := g.board.begin(p.Pos, to)
		safe := !g.board.InCheck(p.Color)
		t.rollback()
		if safe {
			out = append(out, Move{From: p.Pos, To: to})
		}
	}
	return out
}

func (g *Game) assertConsistent() {
	if !Debug {
		return
	}
	if err := g.board.Validate(); err != nil {
		panic("janggi: board invariant broken: " + err.Error())
	}
}
