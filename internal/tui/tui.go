package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/snapwave/internal/game"
)

const attackAnimationTime = 1200 * time.Millisecond

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)

	hudStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			Padding(0, 2)

	previewStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#5F5F87")).
			Padding(1, 4).
			Foreground(lipgloss.Color("#AAAAAA"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF87")).
			Bold(true)

	loseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)
)

type model struct {
	session       *game.Session
	gameOverScene string
	snap          game.Snapshot
	updates       <-chan game.Snapshot
	unsub         func()
	spin          spinner.Model
	animating     bool
	scene         string
	done          bool
}

type snapshotMsg game.Snapshot

type updatesClosedMsg struct{}

type navigateMsg string

type animationDoneMsg struct{}

func newModel(session *game.Session, gameOverScene string) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	updates, unsub := session.Subscribe()
	return model{
		session:       session,
		gameOverScene: gameOverScene,
		snap:          session.Snapshot(),
		updates:       updates,
		unsub:         unsub,
		spin:          sp,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.waitForUpdate(), m.waitForNavigate(), m.spin.Tick)
}

func (m model) waitForUpdate() tea.Cmd {
	return func() tea.Msg {
		snap, ok := <-m.updates
		if !ok {
			return updatesClosedMsg{}
		}
		return snapshotMsg(snap)
	}
}

func (m model) waitForNavigate() tea.Cmd {
	return func() tea.Msg {
		scene, ok := <-m.session.Navigate()
		if !ok {
			return nil
		}
		return navigateMsg(scene)
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.done {
			m.unsub()
			m.session.Close()
			return m, tea.Quit
		}
		switch msg.String() {
		case "ctrl+c", "q":
			m.unsub()
			m.session.Close()
			return m, tea.Quit
		case "p":
			m.session.StartPreview()
		case "c", " ":
			m.session.Capture()
		case "f":
			m.session.ToggleCamera()
		}

	case snapshotMsg:
		m.snap = game.Snapshot(msg)
		cmds := []tea.Cmd{m.waitForUpdate()}
		if m.snap.AwaitingAnimation && !m.animating {
			// The judged result is parked in the session; play the attack
			// animation, then let the session commit it.
			m.animating = true
			cmds = append(cmds, tea.Tick(attackAnimationTime, func(time.Time) tea.Msg {
				return animationDoneMsg{}
			}))
		}
		return m, tea.Batch(cmds...)

	case animationDoneMsg:
		m.animating = false
		m.session.AnimationFinished()
		return m, nil

	case navigateMsg:
		m.scene = string(msg)
		m.done = true
		return m, nil

	case updatesClosedMsg:
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) View() string {
	if m.done {
		return m.renderFinal()
	}

	title := titleStyle.Render("SNAPWAVE")
	hud := hudStyle.Render(fmt.Sprintf("%s   %s   %s\n%s",
		m.snap.WaveName, m.snap.ScoreText, m.snap.TimerText, m.snap.HintText))

	var stage string
	switch {
	case m.animating:
		stage = previewStyle.Render(m.spin.View() + " ATTACK!")
	case m.snap.AwaitingAnimation:
		stage = previewStyle.Render("judging...")
	case !m.snap.CaptureEnabled:
		stage = previewStyle.Render(m.spin.View() + " analyzing photo...")
	case m.snap.PreviewVisible:
		stage = previewStyle.Render(fmt.Sprintf("[ LIVE PREVIEW · %s camera ]", m.snap.CameraFaceText))
	default:
		stage = previewStyle.Render("press p to start the camera preview")
	}

	help := helpStyle.Render("p: preview   c/space: capture   f: flip camera   q: quit")

	return lipgloss.JoinVertical(lipgloss.Left, "\n"+title, hud, stage, help) + "\n"
}

func (m model) renderFinal() string {
	var banner string
	if m.scene == m.gameOverScene {
		banner = loseStyle.Render("GAME OVER")
	} else {
		banner = winStyle.Render("GAME CLEAR!")
	}
	return fmt.Sprintf("\n%s\n\n%s\n\n%s\n",
		banner,
		m.snap.ScoreText,
		helpStyle.Render("press any key to exit"))
}

// Run drives a session with the terminal UI until the game ends or the
// player quits. The UI doubles as the scene navigator: it consumes the
// session's one-shot navigation signal and shows the final screen.
func Run(session *game.Session, gameOverScene string) error {
	p := tea.NewProgram(newModel(session, gameOverScene), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
