package janggi

import (
	"errors"
	"math/rand"
	"testing"
)

func init() { Debug = true }

type snapshot struct {
	text string
	hash uint64
	pos  map[PieceID]Piece
}

func snap(g *Game) snapshot {
	s := snapshot{text: g.Encode(), hash: g.Hash(), pos: map[PieceID]Piece{}}
	for _, c := range []Color{Red, Blue} {
		for _, p := range g.Pieces(c) {
			s.pos[p.ID] = p
		}
	}
	return s
}

func (s snapshot) equal(t *testing.T, g *Game) {
	t.Helper()
	now := snap(g)
	if now.text != s.text {
		t.Fatalf("position changed: %q -> %q", s.text, now.text)
	}
	if now.hash != s.hash {
		t.Fatalf("hash changed: %d -> %d", s.hash, now.hash)
	}
	if len(now.pos) != len(s.pos) {
		t.Fatalf("piece count changed: %d -> %d", len(s.pos), len(now.pos))
	}
	for id, p := range s.pos {
		if now.pos[id] != p {
			t.Fatalf("piece %d changed: %+v -> %+v", id, p, now.pos[id])
		}
	}
	if err := g.Board().Validate(); err != nil {
		t.Fatalf("board invalid: %v", err)
	}
}

func TestBlueMovesFirst(t *testing.T) {
	g := NewGame()
	if g.ActiveColor() != NoColor {
		t.Fatalf("active color before first move: %s", g.ActiveColor())
	}
	before := snap(g)
	if g.MakeMoveText("e2", "e3") {
		t.Fatalf("red opening move accepted")
	}
	if got := g.TryMove(MustCoord("e2"), MustCoord("e3")); got != ReasonWrongTurn {
		t.Fatalf("red opening move: got %q, want %q", got, ReasonWrongTurn)
	}
	before.equal(t, g)

	if !g.MakeMoveText("e7", "e6") {
		t.Fatalf("blue e7-e6 rejected")
	}
	if g.ActiveColor() != Red {
		t.Fatalf("active color after blue move: %s", g.ActiveColor())
	}
	if p, ok := g.PieceAt(MustCoord("e6")); !ok || p.Kind != Soldier || p.Color != Blue {
		t.Fatalf("e6 holds %+v, %v", p, ok)
	}
	if g.MakeMoveText("e6", "e5") {
		t.Fatalf("blue moved twice in a row")
	}
	if !g.MakeMoveText("e4", "e5") {
		t.Fatalf("red e4-e5 rejected")
	}
	if g.ActiveColor() != Blue {
		t.Fatalf("active color after red move: %s", g.ActiveColor())
	}
}

func TestRejectedMovesLeaveNoTrace(t *testing.T) {
	g := NewGame()
	before := snap(g)
	for _, mv := range [][2]string{
		{"d5", "d6"},  // 空格
		{"e7", "e5"},  // 兵不能走两格
		{"a10", "a7"}, // 吃自己
		{"i10", "i6"}, // 被挡
		{"b8", "b5"},  // 没有炮架
		{"z1", "a1"},  // 坐标不合法
		{"a1", "a11"},
	} {
		if g.MakeMoveText(mv[0], mv[1]) {
			t.Fatalf("%s-%s accepted", mv[0], mv[1])
		}
	}
	before.equal(t, g)
	if g.State() != Unfinished || g.ActiveColor() != NoColor {
		t.Fatalf("state changed: %s %s", g.State(), g.ActiveColor())
	}
}

func TestTextPositionSideToMoveInCheck(t *testing.T) {
	// 开局前轮到蓝方，蓝将被 e2 红车将军：可以接受
	g := mustGame(t, "4g4/9/9/9/9/9/9/9/4R4/3G5 -")
	if g.CheckStatus() != Blue || g.ActiveColor() != NoColor {
		t.Fatalf("check = %s active = %s", g.CheckStatus(), g.ActiveColor())
	}
	if g.Pass() {
		t.Fatalf("pass accepted while in check")
	}

	// 反过来轮到红方时不能接受，否则红车直接吃将
	if _, err := NewGameFromText("4g4/9/9/9/9/9/9/9/4R4/3G5 r"); !errors.Is(err, ErrInvalidPosition) {
		t.Fatalf("got %v, want ErrInvalidPosition", err)
	}
}

func TestPinnedPieceCannotExposeGeneral(t *testing.T) {
	// 蓝车 e8 挡在红车 e5 和蓝将 e9 之间
	g := mustGame(t, "9/4g4/4r4/9/9/4R4/9/9/9/3G5 b")
	before := snap(g)
	if got := g.TryMove(MustCoord("e8"), MustCoord("d8")); got != ReasonSelfCheck {
		t.Fatalf("pinned chariot move: got %q, want %q", got, ReasonSelfCheck)
	}
	before.equal(t, g)
	if g.ActiveColor() != Blue || g.CheckStatus() != NoColor {
		t.Fatalf("turn/check changed after rejection: %s %s", g.ActiveColor(), g.CheckStatus())
	}

	// 沿线吃掉红车是可以的
	if !g.MakeMoveText("e8", "e5") {
		t.Fatalf("capture along the pin rejected")
	}
	caps := g.Captured(Red)
	if len(caps) != 1 || caps[0].Kind != Chariot || !caps[0].Captured {
		t.Fatalf("captured red pieces: %+v", caps)
	}
	if len(g.Captured(Blue)) != 0 {
		t.Fatalf("blue lost pieces: %+v", g.Captured(Blue))
	}
	if g.CheckStatus() != NoColor {
		t.Fatalf("check status: %s", g.CheckStatus())
	}
}

func TestCapturedPieceRestoredOnRollback(t *testing.T) {
	// 蓝车 e8 吃 d8 红兵后，e5 红车直接将到 e9。
	g := mustGame(t, "9/4g4/3Sr4/9/9/4R4/9/9/9/3G5 b")
	before := snap(g)
	if got := g.TryMove(MustCoord("e8"), MustCoord("d8")); got != ReasonSelfCheck {
		t.Fatalf("capture exposing general: got %q", got)
	}
	before.equal(t, g)
	if len(g.Captured(Red)) != 0 {
		t.Fatalf("rolled-back capture was recorded: %+v", g.Captured(Red))
	}
	p, ok := g.PieceAt(MustCoord("d8"))
	if !ok || p.Kind != Soldier || p.Color != Red || p.Captured {
		t.Fatalf("d8 after rollback: %+v %v", p, ok)
	}
}

func TestPassRules(t *testing.T) {
	g := NewGame()
	if !g.Pass() {
		t.Fatalf("opening pass rejected")
	}
	if g.ActiveColor() != Red {
		t.Fatalf("after blue pass active = %s", g.ActiveColor())
	}
	if !g.MakeMoveText("a1", "a1") {
		t.Fatalf("red pass rejected")
	}
	if g.ActiveColor() != Blue {
		t.Fatalf("after red pass active = %s", g.ActiveColor())
	}

	// 蓝将被 e5 红车将军
	g = mustGame(t, "9/4g4/9/9/9/4R4/9/9/9/3G5 b")
	if g.CheckStatus() != Blue {
		t.Fatalf("check status = %s, want blue", g.CheckStatus())
	}
	before := snap(g)
	if got := g.TryMove(MustCoord("e9"), MustCoord("e9")); got != ReasonInCheck {
		t.Fatalf("pass in check: got %q", got)
	}
	if g.Pass() {
		t.Fatalf("Pass accepted while in check")
	}
	before.equal(t, g)
	if g.ActiveColor() != Blue {
		t.Fatalf("active changed after rejected pass")
	}

	if !g.MakeMoveText("e9", "d9") {
		t.Fatalf("general escape rejected")
	}
	if g.CheckStatus() != NoColor {
		t.Fatalf("check status after escape = %s", g.CheckStatus())
	}
	if !g.Pass() {
		t.Fatalf("red pass rejected")
	}
}

func TestMoveDeliversCheck(t *testing.T) {
	g := mustGame(t, "9/4g4/9/9/9/R8/9/9/9/3G5 r")
	if !g.MakeMoveText("a5", "e5") {
		t.Fatalf("chariot a5-e5 rejected")
	}
	if g.CheckStatus() != Blue {
		t.Fatalf("check status = %s, want blue", g.CheckStatus())
	}
	if g.State() != Unfinished {
		t.Fatalf("state = %s", g.State())
	}
	if g.ActiveColor() != Blue {
		t.Fatalf("active = %s", g.ActiveColor())
	}
	// 不解将的走法都会被拒绝
	if g.MakeMoveText("e9", "e8") {
		t.Fatalf("general stayed on the checked file")
	}
	if !g.MakeMoveText("e9", "f9") {
		t.Fatalf("escape f9 rejected")
	}
}

func TestGameOverRejectsEverything(t *testing.T) {
	g := mustGame(t, horseMateText)
	if !g.MakeMoveText("b7", "c9") {
		t.Fatalf("mating move rejected")
	}
	before := snap(g)
	if got := g.TryMove(MustCoord("e10"), MustCoord("e9")); got != ReasonGameOver {
		t.Fatalf("move after mate: got %q", got)
	}
	if g.Pass() {
		t.Fatalf("pass after mate accepted")
	}
	before.equal(t, g)
}

// 随机对局：每一步之后己方不被将，棋盘两种表示一致。
func TestRandomPlayoutInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for game := 0; game < 4; game++ {
		g := NewGame()
		for ply := 0; ply < 150 && g.State() == Unfinished; ply++ {
			side := g.mover()
			moves := g.LegalMoves(side)
			if len(moves) == 0 {
				if !g.Pass() {
					break
				}
				continue
			}
			mv := moves[rng.Intn(len(moves))]
			if !g.MakeMove(mv.From, mv.To) {
				t.Fatalf("game %d ply %d: legal move %s rejected", game, ply, mv)
			}
			if g.InCheck(side) {
				t.Fatalf("game %d ply %d: %s left in check after %s", game, ply, side, mv)
			}
			if err := g.Board().Validate(); err != nil {
				t.Fatalf("game %d ply %d: %v", game, ply, err)
			}
			if g.State() == Unfinished && g.ActiveColor() != side.Opponent() {
				t.Fatalf("game %d ply %d: turn did not alternate", game, ply)
			}
		}
	}
}
