package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/twistylab/twisty"
	"github.com/twistylab/twisty/internal/render"
	"github.com/twistylab/twisty/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay [session-id]",
	Short: "Replay a recorded session",
	Long: `Replay a previously recorded play session with its original timing.

The session ID may be abbreviated to any unique prefix. If no ID is
given, recent sessions are listed.

Usage:
  twisty replay                  # List recent sessions
  twisty replay 3fa8             # Replay the session starting with 3fa8
  twisty replay 3fa8 --speed 2   # Replay at 2x speed
  twisty replay 3fa8 --step      # Step through moves manually`,
	RunE: runReplay,
}

var (
	replaySpeed float64
	replayStep  bool
)

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().Float64VarP(&replaySpeed, "speed", "s", 1.0, "Playback speed multiplier")
	replayCmd.Flags().BoolVarP(&replayStep, "step", "t", false, "Step through moves manually")
}

func runReplay(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	// No args: list recent sessions instead.
	if len(args) == 0 {
		return runSessions(cmd, nil)
	}

	session, err := storage.NewSessionRepository(db).GetByPrefix(args[0])
	if err != nil {
		return err
	}

	records, err := storage.NewMoveRepository(db).GetBySession(session.SessionID)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return fmt.Errorf("session %s has no recorded moves", session.SessionID[:8])
	}

	moves, err := storage.ToMoves(records)
	if err != nil {
		return err
	}

	if replaySpeed <= 0 {
		replaySpeed = 1.0
	}

	model := newReplayModel(session, records, moves, replaySpeed, replayStep)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("replay error: %w", err)
	}

	return nil
}

// Replay model
type replayModel struct {
	session  *storage.Session
	records  []storage.MoveRecord
	moves    []twisty.Move
	engine   *twisty.Engine
	frame    *render.Frame
	index    int // next move to play
	speed    float64
	stepMode bool
	paused   bool
	lastTsMs int64
	width    int
	height   int
	lastTick time.Time
	quitting bool
}

func newReplayModel(session *storage.Session, records []storage.MoveRecord, moves []twisty.Move, speed float64, stepMode bool) *replayModel {
	return &replayModel{
		session:  session,
		records:  records,
		moves:    moves,
		engine:   twisty.NewEngine(),
		speed:    speed,
		stepMode: stepMode,
		paused:   stepMode, // Start paused in step mode
		width:    80,
		height:   24,
	}
}

type replayFrameMsg time.Time
type replayMoveMsg struct{ index int }

func (m *replayModel) Init() tea.Cmd {
	m.lastTick = time.Now()
	cmds := []tea.Cmd{m.frameTick()}
	if !m.stepMode {
		cmds = append(cmds, m.scheduleNextMove())
	}
	return tea.Batch(cmds...)
}

func (m *replayModel) frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return replayFrameMsg(t) })
}

// scheduleNextMove waits out the recorded gap before the next move,
// scaled by the playback speed.
func (m *replayModel) scheduleNextMove() tea.Cmd {
	if m.index >= len(m.moves) {
		return nil
	}

	index := m.index
	var delay time.Duration
	if gap := m.records[index].TsMs - m.lastTsMs; gap > 0 {
		delay = time.Duration(float64(gap)/m.speed) * time.Millisecond
	}

	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return replayMoveMsg{index: index}
	})
}

func (m *replayModel) playMove() {
	if m.index >= len(m.moves) {
		return
	}
	m.lastTsMs = m.records[m.index].TsMs
	m.engine.Enqueue(m.moves[m.index], m.speed)
	m.index++
}

func (m *replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case replayFrameMsg:
		now := time.Time(msg)
		delta := now.Sub(m.lastTick)
		m.lastTick = now
		m.engine.Advance(delta)
		h := m.height - 9
		if h < 10 {
			h = 10
		}
		m.frame = render.Render(m.engine.Cubies(), m.width, h)
		return m, m.frameTick()

	case replayMoveMsg:
		// Stale messages from before a pause carry an old index.
		if !m.paused && msg.index == m.index {
			m.playMove()
			return m, m.scheduleNextMove()
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "n":
			if m.stepMode || m.paused {
				m.playMove()
			} else {
				m.paused = true
			}

		case "p":
			m.paused = !m.paused
			if !m.paused && !m.stepMode {
				return m, m.scheduleNextMove()
			}

		case "+", "=":
			m.speed *= 2
			if m.speed > 16 {
				m.speed = 16
			}

		case "-":
			m.speed /= 2
			if m.speed < 0.25 {
				m.speed = 0.25
			}
		}
	}

	return m, nil
}

func (m *replayModel) View() string {
	if m.quitting {
		return "Replay ended.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Twisty Replay"))
	b.WriteString("  " + statusStyle.Render(m.session.SessionID[:8]))
	b.WriteString("\n\n")

	if m.frame != nil {
		b.WriteString(m.frame.View())
	}

	progress := fmt.Sprintf("Move %d/%d", m.index, len(m.moves))
	if m.paused {
		progress += " [PAUSED]"
	}
	if m.stepMode {
		progress += " [STEP MODE]"
	}
	b.WriteString(statusStyle.Render(progress))
	b.WriteString(fmt.Sprintf(" (%.2gx speed)\n", m.speed))

	played := m.engine.Moves()
	if len(played) > 0 {
		start := 0
		if len(played) > 20 {
			start = len(played) - 20
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(twisty.FormatMoves(played[start:])))
		b.WriteString("\n")
	}

	if m.index >= len(m.moves) && !m.engine.Busy() {
		if m.engine.Solved() {
			b.WriteString(solvedStyle.Render("Replay complete - cube solved"))
		} else {
			b.WriteString(statusStyle.Render("Replay complete"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")

	help := "SPACE/n=pause/step  p=pause  +/-=speed  q=quit"
	if m.stepMode {
		help = "SPACE/n=next move  q=quit"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}
