package tui

import "github.com/charmbracelet/lipgloss"

var (
	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("81")).
			Foreground(lipgloss.Color("235"))
	coveredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("248"))
	flagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	mineStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
	hintStyle    = lipgloss.NewStyle().
			Background(lipgloss.Color("22")).
			Foreground(lipgloss.Color("255"))
	zeroStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	numberStyles = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("41")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("37")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	}

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("248")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("255")).
			Bold(true).
			Padding(0, 1)
	valueStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("255")).
			Padding(0, 1)

	winStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	lossStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("248"))
)
