// Package tui provides the Bubble Tea play interface.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordfall/internal/game"
)

// SessionFactory builds a fresh run, used on start and restart.
type SessionFactory func() (*game.Session, error)

type tickMsg time.Time

const (
	tickEvery     = 50 * time.Millisecond
	flashDuration = 1500 * time.Millisecond
	hudLines      = 2
)

var (
	hudStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	inputStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Underline(true)
	flashStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	bossStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	allyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	matchedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Strikethrough(true)
	gameOverStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 3)

	kindStyles = map[game.Kind]lipgloss.Style{
		game.KindMinion:  lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")),
		game.KindWarrior: lipgloss.NewStyle().Foreground(lipgloss.Color("#69C0FF")),
		game.KindMage:    lipgloss.NewStyle().Foreground(lipgloss.Color("#B37FEB")),
		game.KindDemon:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA940")),
	}
)

// Model implements the Bubble Tea play UI.
type Model struct {
	newSession SessionFactory
	session    *game.Session

	width  int
	height int

	flash      string
	flashWarn  bool
	flashUntil time.Time
}

// NewModel constructs a play model with an initial session.
func NewModel(factory SessionFactory) (*Model, error) {
	session, err := factory()
	if err != nil {
		return nil, err
	}
	return &Model{newSession: factory, session: session}, nil
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		if m.session.Over() {
			return m, nil
		}
		res := m.session.Advance(tickEvery)
		if res.ShieldAbsorbed {
			m.setFlash("shield absorbed the hit", false)
		} else if res.LivesLost > 0 {
			m.setFlash("an enemy broke through", true)
		}
		return m, tick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.session.Over() {
		switch msg.String() {
		case "r":
			session, err := m.newSession()
			if err != nil {
				m.setFlash(fmt.Sprintf("restart failed: %v", err), true)
				return m, nil
			}
			m.session = session
			m.flash = ""
			return m, tick()
		case "q", "esc", "enter":
			return m, tea.Quit
		}
		return m, nil
	}
	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyBackspace, tea.KeyDelete:
		m.session.Backspace()
	case tea.KeySpace:
		m.session.TypeRune(' ')
	case tea.KeyEnter:
		m.handleSubmit()
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.session.TypeRune(r)
		}
	}
	return m, nil
}

func (m *Model) handleSubmit() {
	res := m.session.Submit()
	switch res.Outcome {
	case game.OutcomeIgnored:
	case game.OutcomeMiss:
		m.setFlash("miss", true)
	case game.OutcomeAlly:
		m.setFlash(fmt.Sprintf("ally rescued: %s", allyLabel(res.AllyKind)), false)
	case game.OutcomeEnemyDefeated:
		m.setFlash(fmt.Sprintf("+%d", res.Awarded), false)
	case game.OutcomeBossHit:
		m.setFlash(fmt.Sprintf("boss hit! +%d", res.Awarded), false)
	case game.OutcomeBossDefeated:
		m.setFlash(fmt.Sprintf("boss defeated! +%d", res.Awarded), false)
	}
	if res.LeveledUp {
		m.setFlash(fmt.Sprintf("level %d!", m.session.State().Level), false)
	}
}

func (m *Model) setFlash(text string, warn bool) {
	m.flash = text
	m.flashWarn = warn
	m.flashUntil = time.Now().Add(flashDuration)
}

func allyLabel(kind game.AllyKind) string {
	switch kind {
	case game.AllyExtraLife:
		return "extra life"
	case game.AllyComboMultiplier:
		return "combo boost"
	case game.AllyTimeSlow:
		return "time slow"
	case game.AllyShield:
		return "shield"
	default:
		return string(kind)
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.session.Over() {
		return m.viewGameOver()
	}
	fieldHeight := m.height - hudLines
	if fieldHeight < 1 {
		fieldHeight = 1
	}
	field := newFieldGrid(m.width, fieldHeight)
	for _, a := range m.session.Allies() {
		style := allyStyle
		if a.Matched {
			style = matchedStyle
		}
		field.place(a.Position(), "+"+a.Text, style)
	}
	for _, e := range m.session.Encounters() {
		style := kindStyles[e.Kind]
		if e.IsBoss() {
			style = bossStyle
		}
		if e.Matched {
			style = matchedStyle
		}
		field.place(e.Position(), e.Text, style)
	}
	return field.render() + "\n" + m.renderHUD() + "\n" + m.renderInput()
}

func (m *Model) renderHUD() string {
	st := m.session.State()
	hearts := strings.Repeat("♥", st.Lives)
	segments := []string{
		fmt.Sprintf("Score %d", st.Score),
		fmt.Sprintf("Lvl %d", st.Level),
		fmt.Sprintf("Lives %s", hearts),
		fmt.Sprintf("Combo x%d", st.Multiplier),
		fmt.Sprintf("WPM %d", m.session.WPM()),
		fmt.Sprintf("Acc %d%%", m.session.Accuracy()),
	}
	if st.BossActive {
		segments = append(segments, "BOSS")
	}
	if st.TimeSlow {
		segments = append(segments, "SLOW")
	}
	if st.Shield {
		segments = append(segments, "SHIELD")
	}
	line := hudStyle.Render(strings.Join(segments, "  "))
	if m.flash != "" && time.Now().Before(m.flashUntil) {
		style := flashStyle
		if m.flashWarn {
			style = warnStyle
		}
		line += "  " + style.Render(m.flash)
	}
	return line
}

func (m *Model) renderInput() string {
	return inputStyle.Render("> "+m.session.Pending()) + cursorStyle.Render(" ")
}

func (m *Model) viewGameOver() string {
	summary := m.session.Summary()
	stats := m.session.Stats()
	lines := []string{
		"Game Over",
		"",
	}
	if summary != nil {
		lines = append(lines,
			fmt.Sprintf("Score      %d", summary.Score),
			fmt.Sprintf("Level      %d", summary.LevelReached),
			fmt.Sprintf("WPM        %d", summary.WPM),
			fmt.Sprintf("Accuracy   %d%%", summary.Accuracy),
			fmt.Sprintf("Words      %d", summary.WordsTyped),
			fmt.Sprintf("Duration   %ds", summary.DurationSeconds),
			"",
			fmt.Sprintf("Enemies %d  Bosses %d  Allies %d", stats.EnemiesDefeated, stats.BossesDefeated, stats.AlliesHelped),
		)
	}
	if err := m.session.SubmitErr(); err != nil {
		lines = append(lines, "", warnStyle.Render(fmt.Sprintf("failed to save session: %v", err)))
	}
	lines = append(lines, "", hudStyle.Render("r play again  ·  q quit"))
	box := gameOverStyle.Render(strings.Join(lines, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
