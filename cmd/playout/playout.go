package main

import (
	"fmt"
	"math/rand"

	"janggi/internal/janggi"
)

type result struct {
	State janggi.GameState
	Plies int
	// Stuck: 被将军、没有合法着，但将死判定没有成立（吃子、垫子只看走法本身，不看是否送将）。
	Stuck bool
}

// playGame 双方随机走合法着，每一步都核对引擎的几条不变量。
func playGame(position string, seed int64, maxPlies int) (result, error) {
	g := janggi.NewGame()
	if position != "" {
		var err error
		if g, err = janggi.NewGameFromText(position); err != nil {
			return result{}, err
		}
	}
	rng := rand.New(rand.NewSource(seed))

	for ply := 0; ply < maxPlies; ply++ {
		if g.State() != janggi.Unfinished {
			return result{State: g.State(), Plies: ply}, nil
		}
		side := g.ActiveColor()
		if side == janggi.NoColor {
			side = janggi.Blue
		}

		moves := g.LegalMoves(side)
		if len(moves) == 0 {
			// 没有合法着只能停
			if !g.Pass() {
				if !g.InCheck(side) {
					return result{}, fmt.Errorf("ply %d: %s cannot pass out of check: %s", ply, side, g.Encode())
				}
				return result{State: g.State(), Plies: ply, Stuck: true}, nil
			}
			continue
		}

		mv := moves[rng.Intn(len(moves))]
		before := g.Encode()
		if r := g.TryMove(mv.From, mv.To); r != janggi.ReasonOK {
			return result{}, fmt.Errorf("ply %d: listed move %s rejected (%s) in %s", ply, mv, r, before)
		}
		if g.InCheck(side) {
			return result{}, fmt.Errorf("ply %d: %s left own general in check after %s", ply, side, mv)
		}
		if got, want := g.Board().Hash(), g.Board().CalculateHash(); got != want {
			return result{}, fmt.Errorf("ply %d: hash drift after %s: %x != %x", ply, mv, got, want)
		}
		if err := g.Board().Validate(); err != nil {
			return result{}, fmt.Errorf("ply %d: %w", ply, err)
		}
	}
	return result{State: g.State(), Plies: maxPlies}, nil
}
