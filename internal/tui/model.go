/*
Package tui is the presentation glue around a game session: it maps
keys to player intents and renders the session's observable state.
All game rules live below it.
*/
package tui

import (
	"fmt"
	"math/rand/v2"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nfrolov/sweeper/internal/game"
	"github.com/nfrolov/sweeper/internal/mines"
)

type Model struct {
	session          *game.Session
	rng              *rand.Rand
	cursorX, cursorY int
	flagMode         bool
	bestScore        int
}

func NewModel(params mines.GameParams, rng *rand.Rand) (Model, error) {
	session, err := game.NewSession(params, rng)
	if err != nil {
		return Model{}, err
	}
	return Model{session: session, rng: rng}, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	params := m.session.Params()
	switch keyMsg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k", "w":
		if m.cursorY > 0 {
			m.cursorY--
		}
	case "down", "j", "s":
		if m.cursorY < params.Height-1 {
			m.cursorY++
		}
	case "left", "h", "a":
		if m.cursorX > 0 {
			m.cursorX--
		}
	case "right", "l", "d":
		if m.cursorX < params.Width-1 {
			m.cursorX++
		}

	case " ", "enter":
		if m.session.Over() {
			return m.restart()
		}
		if m.flagMode {
			m.session.ToggleFlag(m.cursorX, m.cursorY)
		} else {
			m.revealAtCursor()
		}

	case "f":
		if !m.session.Over() {
			m.session.ToggleFlag(m.cursorX, m.cursorY)
		}
	case "F":
		m.flagMode = !m.flagMode

	case "?":
		if p, ok := m.session.RequestHint(); ok {
			m.cursorX, m.cursorY = p.X, p.Y
		}

	case "r":
		return m.restart()
	}

	return m, nil
}

func (m *Model) revealAtCursor() {
	outcome, err := m.session.Reveal(m.cursorX, m.cursorY)
	if err != nil {
		return
	}
	if outcome == mines.RevealSafe {
		m.session.AdvanceAiTurn()
	}
	if m.session.Over() && m.session.Score() > m.bestScore {
		m.bestScore = m.session.Score()
	}
}

func (m Model) restart() (tea.Model, tea.Cmd) {
	session, err := game.NewSession(m.session.Params(), m.rng)
	if err != nil {
		return m, tea.Quit
	}
	m.session = session
	m.cursorX, m.cursorY = 0, 0
	m.flagMode = false
	return m, nil
}

func (m Model) View() string {
	var board strings.Builder
	params := m.session.Params()
	hint, hasHint := m.session.Hint()

	for y := range params.Height {
		for x := range params.Width {
			cell, err := m.session.Cell(x, y)
			if err != nil {
				continue
			}
			ch, style := m.cellFace(cell)
			content := fmt.Sprintf(" %s ", ch)
			switch {
			case x == m.cursorX && y == m.cursorY:
				board.WriteString(cursorStyle.Render(content))
			case hasHint && hint.X == x && hint.Y == y && !cell.Revealed:
				board.WriteString(hintStyle.Render(content))
			default:
				board.WriteString(style.Render(content))
			}
		}
		if y < params.Height-1 {
			board.WriteString("\n")
		}
	}

	status := lipgloss.JoinHorizontal(lipgloss.Top,
		statusPair("SCORE", fmt.Sprintf("%d", m.session.Score())), "  ",
		statusPair("AI", fmt.Sprintf("%.1fx", m.session.Difficulty())), "  ",
		statusPair("MOVES", fmt.Sprintf("%d", m.session.MoveCount())),
	)
	if m.bestScore > 0 {
		status = lipgloss.JoinHorizontal(lipgloss.Top,
			status, "  ", statusPair("BEST", fmt.Sprintf("%d", m.bestScore)),
		)
	}

	return lipgloss.JoinVertical(
		lipgloss.Center,
		boardStyle.Render(board.String()),
		lipgloss.NewStyle().MarginTop(1).Render(status),
		lipgloss.NewStyle().MarginTop(1).Render(m.helpLine()),
	)
}

// cellFace picks the glyph and style for one cell. Once the game is
// lost every mine is shown regardless of cover.
func (m Model) cellFace(cell mines.Cell) (string, lipgloss.Style) {
	switch {
	case cell.Revealed && cell.Value == mines.Mine:
		return "✶", mineStyle
	case cell.Revealed && cell.Value > 0:
		return fmt.Sprintf("%d", cell.Value), numberStyles[cell.Value-1]
	case cell.Revealed:
		return "·", zeroStyle
	case m.session.Dead() && cell.Value == mines.Mine:
		return "✶", mineStyle
	case cell.Flagged:
		return "⚑", flagStyle
	default:
		return "■", coveredStyle
	}
}

func statusPair(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Left,
		labelStyle.Render(label), valueStyle.Render(value),
	)
}

func (m Model) helpLine() string {
	switch {
	case m.session.Won():
		return winStyle.Render(
			fmt.Sprintf("CLEARED • final score %d • R restarts, Q quits", m.session.Score()),
		)
	case m.session.Dead():
		return lossStyle.Render("BOOM • R restarts, Q quits")
	default:
		help := "Arrows move • Space reveals • F flags • ? hints • R restarts"
		if m.flagMode {
			help = "FLAG MODE • Space flags • " + help
		}
		if !m.session.HintReady() {
			help += " (hint cooling down)"
		}
		return helpStyle.Render(help)
	}
}
