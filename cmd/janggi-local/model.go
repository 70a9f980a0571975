package main

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"janggi/internal/janggi"
	"janggi/internal/session"
)

var (
	redPiece  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	bluePiece = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	emptyDot  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	cursorBg   = lipgloss.Color("1")
	selectedBg = lipgloss.Color("3")
	targetBg   = lipgloss.Color("2")
	palaceBg   = lipgloss.Color("236")

	infoBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(28)
	title  = lipgloss.NewStyle().Bold(true)
	notice = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

type model struct {
	mgr *session.Manager
	s   *session.Session

	cursor   janggi.Coord
	selected *janggi.Coord
	targets  []janggi.Coord
	message  string
}

func newModel(mgr *session.Manager, s *session.Session) model {
	return model{
		mgr:    mgr,
		s:      s,
		cursor: janggi.Coord{Col: 5, Row: 5},
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEscape:
		m.clearSelection()
		return m, nil
	}

	switch key.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor.Row < janggi.Rows {
			m.cursor.Row++
		}
	case "down", "j":
		if m.cursor.Row > 1 {
			m.cursor.Row--
		}
	case "left", "h":
		if m.cursor.Col > 1 {
			m.cursor.Col--
		}
	case "right", "l":
		if m.cursor.Col < janggi.Cols {
			m.cursor.Col++
		}
	case "p":
		m.pass()
	case "enter", " ":
		m.choose()
	}
	return m, nil
}

func (m *model) clearSelection() {
	m.selected = nil
	m.targets = nil
}

func (m *model) pass() {
	m.clearSelection()
	ok, err := m.mgr.Pass(m.s.ID)
	switch {
	case err != nil:
		m.message = err.Error()
	case !ok:
		m.message = "cannot pass now"
	default:
		m.message = "passed"
	}
}

func (m *model) choose() {
	at := m.cursor
	if m.selected == nil || *m.selected == at {
		if m.selected != nil {
			m.clearSelection()
			return
		}
		m.s.With(func(g *janggi.Game) {
			if p, ok := g.PieceAt(at); !ok || p.Color != toMove(g) || g.State() != janggi.Unfinished {
				return
			}
			for _, mv := range g.LegalMovesFrom(at) {
				m.targets = append(m.targets, mv.To)
			}
		})
		if len(m.targets) == 0 {
			m.message = "no legal move from " + at.String()
			return
		}
		m.selected = &at
		m.message = ""
		return
	}

	from := *m.selected
	m.clearSelection()
	ok, err := m.mgr.Move(m.s.ID, from.String(), at.String())
	switch {
	case err != nil:
		m.message = err.Error()
	case !ok:
		why := "leaves general in check"
		m.s.With(func(g *janggi.Game) {
			if r := g.Board().CheckMove(from, at); r != janggi.ReasonOK {
				why = r.String()
			}
		})
		m.message = fmt.Sprintf("illegal %s%s (%s)", from, at, why)
	default:
		m.message = "moved " + from.String() + at.String()
	}
}

func (m model) View() string {
	var board string
	m.s.With(func(g *janggi.Game) { board = m.renderBoard(g) })
	snap := m.s.Snapshot()

	var info strings.Builder
	info.WriteString(title.Render("JANGGI") + "\n\n")
	if snap.State != janggi.Unfinished {
		info.WriteString(notice.Render("*** "+snap.State.String()+" ***") + "\n")
	} else {
		var turn janggi.Color
		m.s.With(func(g *janggi.Game) { turn = toMove(g) })
		fmt.Fprintf(&info, "Turn:   %s\n", turn)
	}
	if snap.CheckStatus != janggi.NoColor {
		info.WriteString(notice.Render(snap.CheckStatus.String()+" in check") + "\n")
	}
	fmt.Fprintf(&info, "Moves:  %d\n", snap.Moves)
	fmt.Fprintf(&info, "Cursor: %s\n", m.cursor)
	if m.selected != nil {
		fmt.Fprintf(&info, "From:   %s (%d targets)\n", m.selected, len(m.targets))
	}
	m.s.With(func(g *janggi.Game) {
		for _, c := range []janggi.Color{janggi.Red, janggi.Blue} {
			var sb strings.Builder
			for _, p := range g.Captured(c) {
				sb.WriteRune(p.Letter())
			}
			fmt.Fprintf(&info, "Lost %-4s %s\n", c.String()+":", sb.String())
		}
	})
	if m.message != "" {
		info.WriteString("\n" + m.message + "\n")
	}
	info.WriteString("\narrows/hjkl move, enter select,\np pass, esc cancel, q quit")

	return lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", infoBox.Render(info.String())) + "\n"
}

func (m model) renderBoard(g *janggi.Game) string {
	files := "   a  b  c  d  e  f  g  h  i"
	var sb strings.Builder
	sb.WriteString(files + "\n")
	for row := janggi.Rows; row >= 1; row-- {
		fmt.Fprintf(&sb, "%2d", row)
		for col := 1; col <= janggi.Cols; col++ {
			sb.WriteString(m.renderCell(g, janggi.Coord{Col: col, Row: row}))
		}
		fmt.Fprintf(&sb, "%-2d\n", row)
	}
	sb.WriteString(files)
	return sb.String()
}

func (m model) renderCell(g *janggi.Game, c janggi.Coord) string {
	st, text := emptyDot, "·"
	if p, ok := g.PieceAt(c); ok {
		text = string(p.Letter())
		st = bluePiece
		if p.Color == janggi.Red {
			st = redPiece
		}
	}

	switch {
	case c == m.cursor:
		st = st.Background(cursorBg)
	case m.selected != nil && *m.selected == c:
		st = st.Background(selectedBg)
	case slices.Contains(m.targets, c):
		st = st.Background(targetBg)
	case inAnyPalace(c):
		st = st.Background(palaceBg)
	}
	return st.Render(" " + text + " ")
}

// toMove 返回轮到走棋的一方；开局前是蓝方。
func toMove(g *janggi.Game) janggi.Color {
	if c := g.ActiveColor(); c != janggi.NoColor {
		return c
	}
	return janggi.Blue
}

func inAnyPalace(c janggi.Coord) bool {
	return slices.Contains(janggi.Red.Palace(), c) || slices.Contains(janggi.Blue.Palace(), c)
}
