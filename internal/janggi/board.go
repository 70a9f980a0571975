package janggi

import (
	"errors"
	"fmt"
	"strconv"
)

const (
	Cols       = 9
	Rows       = 10
	NumSquares = Rows * Cols
)

var ErrInvalidCoord = errors.New("invalid coordinate")

// Coord 1-based：Col 1..9 对应 a..i，Row 1..10。
type Coord struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

func onBoard(col, row int) bool {
	return col >= 1 && col <= Cols && row >= 1 && row <= Rows
}

func (c Coord) Valid() bool { return onBoard(c.Col, c.Row) }

func (c Coord) String() string {
	if !c.Valid() {
		return "??"
	}
	return string(rune('a'+c.Col-1)) + strconv.Itoa(c.Row)
}

// ParseCoord 解析 "e9"、"d10" 这种写法。
func ParseCoord(s string) (Coord, error) {
	if len(s) < 2 || len(s) > 3 {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoord, s)
	}
	col := int(s[0]-'a') + 1
	row, err := strconv.Atoi(s[1:])
	if err != nil || s[1] == '0' || s[1] == '+' || s[1] == '-' || !onBoard(col, row) {
		return Coord{}, fmt.Errorf("%w: %q", ErrInvalidCoord, s)
	}
	return Coord{Col: col, Row: row}, nil
}

// MustCoord is ParseCoord for literals; it panics on bad input.
func MustCoord(s string) Coord {
	c, err := ParseCoord(s)
	if err != nil {
		panic(err)
	}
	return c
}

func indexOf(c Coord) int { return (c.Row-1)*Cols + (c.Col - 1) }
func coordOf(sq int) Coord  { return Coord{Col: sq%Cols + 1, Row: sq/Cols + 1} }

// slot 是棋子本体（arena 里的一项）。被吃的子保留身份，只打 captured 标记。
type slot struct {
	kind     Kind
	color    Color
	sq       int
	captured bool
}

// Board: 棋子 arena（下标 = PieceID）+ 格子 → PieceID 的网格。
// 两份表示只通过 put/lift 同时修改，Validate 检查它们一致。
type Board struct {
	pieces []slot // pieces[0] 占位不用
	grid   [NumSquares]PieceID
	hash   uint64
}

func newBoard() *Board {
	return &Board{pieces: make([]slot, 1, 33)}
}

// add 只在摆棋时使用。
func (b *Board) add(kind Kind, color Color, c Coord) PieceID {
	id := PieceID(len(b.pieces))
	b.pieces = append(b.pieces, slot{kind: kind, color: color, sq: -1})
	b.put(id, indexOf(c))
	return id
}

func (b *Board) put(id PieceID, sq int) {
	s := &b.pieces[id]
	s.sq = sq
	b.grid[sq] = id
	b.hash ^= pieceHashKey(s.color, s.kind, sq)
}

func (b *Board) lift(id PieceID) {
	s := &b.pieces[id]
	b.grid[s.sq] = 0
	b.hash ^= pieceHashKey(s.color, s.kind, s.sq)
}

func (b *Board) piece(id PieceID) Piece {
	s := b.pieces[id]
	p := Piece{ID: id, Kind: s.kind, Color: s.color, Captured: s.captured}
	if !s.captured {
		p.Pos = coordOf(s.sq)
	}
	return p
}

func (b *Board) idAt(c Coord) PieceID {
	if !c.Valid() {
		return 0
	}
	return b.grid[indexOf(c)]
}

func (b *Board) occupied(c Coord) bool { return b.idAt(c) != 0 }

// At returns the piece standing on c.
func (b *Board) At(c Coord) (Piece, bool) {
	id := b.idAt(c)
	if id == 0 {
		return Piece{}, false
	}
	return b.piece(id), true
}

// Pieces lists the color's pieces still on the board, in ID order.
func (b *Board) Pieces(color Color) []Piece {
	out := make([]Piece, 0, 16)
	for id := 1; id < len(b.pieces); id++ {
		s := b.pieces[id]
		if s.captured || s.color != color {
			continue
		}
		out = append(out, b.piece(PieceID(id)))
	}
	return out
}

func (b *Board) General(color Color) (Piece, bool) {
	for id := 1; id < len(b.pieces); id++ {
		s := b.pieces[id]
		if !s.captured && s.color == color && s.kind == General {
			return b.piece(PieceID(id)), true
		}
	}
	return Piece{}, false
}

// Hash 只覆盖棋子摆放，不含轮次。
func (b *Board) Hash() uint64 { return b.hash }

// Validate checks that the grid and the piece-held squares agree.
func (b *Board) Validate() error {
	generals := map[Color]int{}
	for id := 1; id < len(b.pieces); id++ {
		s := b.pieces[id]
		if s.captured {
			continue
		}
		if s.sq < 0 || s.sq >= NumSquares {
			return fmt.Errorf("piece %d: square %d out of range", id, s.sq)
		}
		if b.grid[s.sq] != PieceID(id) {
			return fmt.Errorf("piece %d at %s but grid holds %d", id, coordOf(s.sq), b.grid[s.sq])
		}
		if s.kind == General {
			generals[s.color]++
		}
	}
	for sq, id := range b.grid {
		if id == 0 {
			continue
		}
		if int(id) >= len(b.pieces) {
			return fmt.Errorf("grid %s holds unknown piece %d", coordOf(sq), id)
		}
		s := b.pieces[id]
		if s.captured || s.sq != sq {
			return fmt.Errorf("grid %s holds piece %d which is elsewhere", coordOf(sq), id)
		}
	}
	for _, c := range []Color{Red, Blue} {
		if generals[c] != 1 {
			return fmt.Errorf("%s has %d generals", c, generals[c])
		}
	}
	if b.hash != b.CalculateHash() {
		return errors.New("incremental hash diverged")
	}
	return nil
}
