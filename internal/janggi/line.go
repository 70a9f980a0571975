package janggi

import (
	"errors"
	"fmt"
)

var ErrNotAligned = errors.New("squares are not on one row, column or diagonal")

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Between walks from a to b (both inclusive) and returns the pieces met, in
// walking order. a and b must share a row, a column or a diagonal.
func (b *Board) Between(from, to Coord) ([]Piece, error) {
	if !from.Valid() || !to.Valid() {
		return nil, fmt.Errorf("%w: %s-%s", ErrInvalidCoord, from, to)
	}
	dc, dr := to.Col-from.Col, to.Row-from.Row
	if dc != 0 && dr != 0 && abs(dc) != abs(dr) {
		return nil, fmt.Errorf("%w: %s-%s", ErrNotAligned, from, to)
	}
	sc, sr := sign(dc), sign(dr)
	var out []Piece
	c := from
	for {
		if id := b.idAt(c); id != 0 {
			out = append(out, b.piece(id))
		}
		if c == to {
			break
		}
		c = Coord{Col: c.Col + sc, Row: c.Row + sr}
	}
	return out, nil
}

// screens 返回 from 与 to 之间（两端都不算）的棋子。
func (b *Board) screens(from, to Coord) ([]Piece, bool) {
	occ, err := b.Between(from, to)
	if err != nil {
		return nil, false
	}
	out := occ[:0:0]
	for _, p := range occ {
		if p.Pos != from && p.Pos != to {
			out = append(out, p)
		}
	}
	return out, true
}
