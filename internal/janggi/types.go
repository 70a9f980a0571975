package janggi

type Color int8

const (
	NoColor Color = iota // 未定：开局前
	Red
	Blue
)

// Opponent returns the other side; NoColor maps to itself.
func (c Color) Opponent() Color {
	switch c {
	case Red:
		return Blue
	case Blue:
		return Red
	}
	return NoColor
}

// 兵的前进方向：红向上(+1)，蓝向下(-1)
func (c Color) forward() int {
	switch c {
	case Red:
		return +1
	case Blue:
		return -1
	}
	return 0
}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Blue:
		return "blue"
	}
	return "none"
}

type Kind int8

const (
	KindNone Kind = iota
	General       // 将
	Guard         // 士
	Chariot       // 车
	Horse         // 马
	Elephant      // 象
	Cannon        // 包
	Soldier       // 兵 / 卒
)

var kindNames = [...]string{
	KindNone: "none",
	General:  "general",
	Guard:    "guard",
	Chariot:  "chariot",
	Horse:    "horse",
	Elephant: "elephant",
	Cannon:   "cannon",
	Soldier:  "soldier",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// PieceID is a stable identity; 0 means "no piece".
type PieceID int16

// Piece is a read-only descriptor. Pos is the zero Coord once Captured.
type Piece struct {
	ID       PieceID
	Kind     Kind
	Color    Color
	Pos      Coord
	Captured bool
}

type Move struct {
	From Coord `json:"from"`
	To   Coord `json:"to"`
}

func (m Move) String() string { return m.From.String() + m.To.String() }

type GameState int8

const (
	Unfinished GameState = iota
	RedWon
	BlueWon
)

func (s GameState) String() string {
	switch s {
	case RedWon:
		return "RED_WON"
	case BlueWon:
		return "BLUE_WON"
	}
	return "UNFINISHED"
}

func winnerState(c Color) GameState {
	if c == Red {
		return RedWon
	}
	return BlueWon
}
