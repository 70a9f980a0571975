package janggi

import "testing"

func TestHashInitializedFromInitialAndText(t *testing.T) {
	g := NewGame()
	if g.Board().Hash() != g.Board().CalculateHash() {
		t.Fatalf("initial hash mismatch: got=%d want=%d", g.Board().Hash(), g.Board().CalculateHash())
	}
	if g.Hash() == 0 {
		t.Fatalf("initial hash is zero")
	}
}

func TestMoveHashIncrementalMatchesFullRecompute(t *testing.T) {
	g := NewGame()
	for ply := 0; ply < 24 && g.State() == Unfinished; ply++ {
		moves := g.LegalMoves(g.mover())
		if len(moves) == 0 {
			return
		}
		mv := moves[len(moves)/2]
		before := g.Hash()
		if !g.MakeMove(mv.From, mv.To) {
			t.Fatalf("move failed at ply %d: %s", ply, mv)
		}
		got := g.Board().Hash()
		want := g.Board().CalculateHash()
		if got != want {
			t.Fatalf("hash mismatch at ply %d: got=%d want=%d move=%s", ply, got, want, mv)
		}
		if g.Hash() == before {
			t.Fatalf("hash unchanged after %s at ply %d", mv, ply)
		}
	}
}

func TestPassChangesOnlyTurnHash(t *testing.T) {
	g := NewGame()
	board := g.Board().Hash()
	full := g.Hash()
	if !g.Pass() {
		t.Fatalf("pass rejected")
	}
	if g.Board().Hash() != board {
		t.Fatalf("pass changed the board hash")
	}
	if g.Hash() == full {
		t.Fatalf("pass did not change the turn hash")
	}
}
