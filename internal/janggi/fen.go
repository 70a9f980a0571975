package janggi

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var ErrInvalidPosition = errors.New("invalid position")

var letterToKind = map[rune]Kind{
	'g': General,
	'a': Guard, // advisor
	'r': Chariot,
	'h': Horse,
	'e': Elephant,
	'c': Cannon,
	's': Soldier,
}

var kindLetters = [...]rune{
	KindNone: '.',
	General:  'g',
	Guard:    'a',
	Chariot:  'r',
	Horse:    'h',
	Elephant: 'e',
	Cannon:   'c',
	Soldier:  's',
}

func kindToChar(k Kind, c Color) rune {
	if k < 0 || int(k) >= len(kindLetters) {
		return '.'
	}
	if c == Red {
		return unicode.ToUpper(kindLetters[k])
	}
	return kindLetters[k]
}

// Letter 返回棋子在局面文本里的字母。
func (p Piece) Letter() rune { return kindToChar(p.Kind, p.Color) }

// 开局：蓝方在上（第 10 行先写），红方在下；还没人走棋。
const initialPosition = "reha1aehr/4g4/1c5c1/s1s1s1s1s/9/9/S1S1S1S1S/1C5C1/4G4/REHA1AEHR -"

// 简单 FEN-like：10行用“/”隔开，从第 10 行写到第 1 行，空位用数字压缩；
// 空格后 r/b/- 表示轮到谁（- 表示开局前）。大写红方，小写蓝方。
func encodeBoard(b *Board, active Color) string {
	var sb strings.Builder
	for row := Rows; row >= 1; row-- {
		if row < Rows {
			sb.WriteByte('/')
		}
		empty := 0
		for col := 1; col <= Cols; col++ {
			id := b.idAt(Coord{Col: col, Row: row})
			if id == 0 {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			s := b.pieces[id]
			sb.WriteRune(kindToChar(s.kind, s.color))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	switch active {
	case Red:
		sb.WriteByte('r')
	case Blue:
		sb.WriteByte('b')
	default:
		sb.WriteByte('-')
	}
	return sb.String()
}

func decodeBoard(text string) (*Board, Color, error) {
	parts := strings.Fields(text)
	if len(parts) != 2 {
		return nil, NoColor, fmt.Errorf("%w: want \"<rows> <side>\"", ErrInvalidPosition)
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Rows {
		return nil, NoColor, fmt.Errorf("%w: %d rows", ErrInvalidPosition, len(rows))
	}
	b := newBoard()
	for i, line := range rows {
		row := Rows - i
		col := 1
		for _, ch := range line {
			if col > Cols {
				return nil, NoColor, fmt.Errorf("%w: row %d too long", ErrInvalidPosition, row)
			}
			if ch >= '1' && ch <= '9' {
				col += int(ch - '0')
				continue
			}
			kind, ok := letterToKind[unicode.ToLower(ch)]
			if !ok {
				return nil, NoColor, fmt.Errorf("%w: unknown piece letter %q", ErrInvalidPosition, ch)
			}
			color := Blue
			if unicode.IsUpper(ch) {
				color = Red
			}
			b.add(kind, color, Coord{Col: col, Row: row})
			col++
		}
		if col != Cols+1 {
			return nil, NoColor, fmt.Errorf("%w: row %d has %d columns", ErrInvalidPosition, row, col-1)
		}
	}

	var active Color
	switch parts[1] {
	case "r":
		active = Red
	case "b":
		active = Blue
	case "-":
		active = NoColor
	default:
		return nil, NoColor, fmt.Errorf("%w: side %q", ErrInvalidPosition, parts[1])
	}

	for _, c := range []Color{Red, Blue} {
		n := 0
		for _, p := range b.Pieces(c) {
			if p.Kind != General {
				continue
			}
			n++
			if !inPalace(c, p.Pos.Col, p.Pos.Row) {
				return nil, NoColor, fmt.Errorf("%w: %s general outside palace at %s", ErrInvalidPosition, c, p.Pos)
			}
		}
		if n != 1 {
			return nil, NoColor, fmt.Errorf("%w: %s has %d generals", ErrInvalidPosition, c, n)
		}
	}
	return b, active, nil
}
