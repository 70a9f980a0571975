package janggi

// Reason tells why a move was refused. Callers of MakeMove only get a bool;
// the reason is there for diagnostics and tests.
type Reason int8

const (
	ReasonOK Reason = iota
	ReasonOffBoard
	ReasonSameSquare
	ReasonNoPiece
	ReasonOwnPiece
	ReasonUnreachable
	ReasonBlocked
	ReasonBadScreen
	ReasonGameOver
	ReasonWrongTurn
	ReasonInCheck   // 被将军时不能停着
	ReasonSelfCheck // 走完自己被将
)

var reasonNames = [...]string{
	ReasonOK:          "ok",
	ReasonOffBoard:    "off board",
	ReasonSameSquare:  "same square",
	ReasonNoPiece:     "no piece",
	ReasonOwnPiece:    "own piece on target",
	ReasonUnreachable: "unreachable",
	ReasonBlocked:     "blocked",
	ReasonBadScreen:   "bad cannon screen",
	ReasonGameOver:    "game over",
	ReasonWrongTurn:   "wrong turn",
	ReasonInCheck:     "in check",
	ReasonSelfCheck:   "leaves general in check",
}

func (r Reason) String() string {
	if r < 0 || int(r) >= len(reasonNames) {
		return "unknown"
	}
	return reasonNames[r]
}

// CheckMove decides single-move legality from occupancy alone: no turn
// order and no self-check test.
func (b *Board) CheckMove(from, to Coord) Reason {
	if !from.Valid() || !to.Valid() {
		return ReasonOffBoard
	}
	if from == to {
		return ReasonSameSquare
	}
	id := b.idAt(from)
	if id == 0 {
		return ReasonNoPiece
	}
	pc := b.pieces[id]
	if tid := b.idAt(to); tid != 0 && b.pieces[tid].color == pc.color {
		return ReasonOwnPiece
	}
	if !reaches(pc.kind, pc.color, from, to) {
		return ReasonUnreachable
	}

	switch pc.kind {
	case Chariot:
		between, ok := b.screens(from, to)
		if !ok || len(between) != 0 {
			return ReasonBlocked
		}
	case Cannon:
		between, ok := b.screens(from, to)
		if !ok || len(between) != 1 || between[0].Kind == Cannon {
			return ReasonBadScreen
		}
		if tid := b.idAt(to); tid != 0 && b.pieces[tid].kind == Cannon {
			return ReasonBadScreen
		}
	case Horse:
		leg, ok := horseLeg(from, to)
		if !ok || b.occupied(leg) {
			return ReasonBlocked
		}
	case Elephant:
		legs, ok := elephantLegs(from, to)
		if !ok || b.occupied(legs[0]) || b.occupied(legs[1]) {
			return ReasonBlocked
		}
	case General, Guard, Soldier:
		// 单步棋子，没有额外限制
	}
	return ReasonOK
}

func (b *Board) IsLegal(from, to Coord) bool { return b.CheckMove(from, to) == ReasonOK }
