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

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube in the terminal",
	Long: `Start the interactive cube TUI.

Keyboard shortcuts:
  r l u d f b m e s  - turn a layer (hold shift for the primed turn)
  tab                - scramble
  backspace          - reset by replaying the inverse move history
  q/Esc              - quit

Layers can also be turned with the mouse: press on a visible sticker and
drag across it.`,
	RunE: runPlay,
}

var playNoRecord bool

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolVar(&playNoRecord, "no-record", false, "Do not persist the session")
}

func runPlay(cmd *cobra.Command, args []string) error {
	var (
		db  *storage.DB
		err error
	)
	if !playNoRecord {
		db, err = openDB()
		if err != nil {
			return err
		}
		defer db.Close()
	}

	model, err := newPlayModel(db)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	finished, err := p.Run()
	if err != nil {
		return fmt.Errorf("play error: %w", err)
	}

	if m, ok := finished.(*playModel); ok {
		m.closeSession()
		if m.sessionID != "" {
			fmt.Printf("Session recorded: %s (%d moves)\n", m.sessionID[:8], m.moveIndex)
		}
	}

	return nil
}

// Messages
type frameMsg time.Time

const frameInterval = time.Second / 30

// keyMoves maps play keys to moves; uppercase letters are the primed turns.
var keyMoves = map[string]twisty.Move{
	"r": twisty.R, "R": twisty.RPrime,
	"l": twisty.L, "L": twisty.LPrime,
	"u": twisty.U, "U": twisty.UPrime,
	"d": twisty.D, "D": twisty.DPrime,
	"f": twisty.F, "F": twisty.FPrime,
	"b": twisty.B, "B": twisty.BPrime,
	"m": twisty.M, "M": twisty.MPrime,
	"e": twisty.E, "E": twisty.EPrime,
	"s": twisty.S, "S": twisty.SPrime,
}

// Model
type playModel struct {
	engine     *twisty.Engine
	recognizer *twisty.Recognizer

	// Recording
	db        *storage.DB
	sessions  *storage.SessionRepository
	movesRepo *storage.MoveRepository
	sessionID string
	moveIndex int
	startTime time.Time

	// Reset replay bookkeeping: moves remaining until history is cleared.
	resetRemaining int

	// UI
	frame    *render.Frame
	frameTop int // rows of chrome above the frame in View
	width    int
	height   int
	lastTick time.Time
	recent   []twisty.Move
	err      error
	quitting bool
}

func newPlayModel(db *storage.DB) (*playModel, error) {
	m := &playModel{
		engine:    twisty.NewEngine(),
		db:        db,
		frameTop:  2,
		width:     80,
		height:    24,
		startTime: time.Now(),
	}
	m.recognizer = twisty.NewRecognizer(m.engine)
	m.engine.OnMoveComplete(m.recordMove)
	m.engine.OnError(func(err error) { m.err = err })

	if db != nil {
		m.sessions = storage.NewSessionRepository(db)
		m.movesRepo = storage.NewMoveRepository(db)
		id, err := m.sessions.Create("")
		if err != nil {
			return nil, err
		}
		m.sessionID = id
	}

	return m, nil
}

// recordMove runs inside Engine.Advance for every completed move.
func (m *playModel) recordMove(move twisty.Move) {
	m.recent = append(m.recent, move)
	if len(m.recent) > 20 {
		m.recent = m.recent[1:]
	}

	if m.movesRepo != nil {
		ts := time.Since(m.startTime).Milliseconds()
		if _, err := m.movesRepo.Create(m.sessionID, m.moveIndex, ts, move); err != nil {
			m.err = err
		}
	}
	m.moveIndex++

	if m.resetRemaining > 0 {
		m.resetRemaining--
		if m.resetRemaining == 0 {
			m.engine.ClearHistory()
		}
	}
}

func (m *playModel) closeSession() {
	if m.sessions != nil && m.sessionID != "" {
		if err := m.sessions.End(m.sessionID, m.engine.Solved()); err != nil && m.err == nil {
			m.err = err
		}
	}
}

func (m *playModel) Init() tea.Cmd {
	m.lastTick = time.Now()
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case frameMsg:
		now := time.Time(msg)
		delta := now.Sub(m.lastTick)
		m.lastTick = now
		m.engine.Advance(delta)
		m.frame = render.Render(m.engine.Cubies(), m.frameWidth(), m.frameHeight())
		return m, tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	return m, nil
}

func (m *playModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "tab":
		// Scramble. Ignored while a reset replay is still running so the
		// history stays a faithful undo record.
		if m.resetRemaining == 0 {
			m.engine.EnqueueAll(randomScramble(20), 3)
		}

	case "backspace":
		if m.resetRemaining == 0 {
			seq := m.engine.ResetSequence()
			if len(seq) > 0 {
				m.resetRemaining = len(seq)
				m.engine.EnqueueAll(seq, 4)
			}
		}

	default:
		if move, ok := keyMoves[key]; ok {
			m.engine.Enqueue(move, 1)
		}
	}

	return m, nil
}

func (m *playModel) handleMouse(msg tea.MouseMsg) {
	// Gesture distances are tuned in pixels; scale cell coordinates by the
	// approximate cell size.
	px := float64(msg.X) * render.PxPerCellX
	py := float64(msg.Y) * render.PxPerCellY

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.frame == nil {
			return
		}
		if hit, ok := m.frame.HitAt(msg.X, msg.Y-m.frameTop); ok {
			m.recognizer.Begin(hit.CubieID, hit.Normal, px, py)
		}

	case tea.MouseActionMotion:
		m.recognizer.Update(px, py)

	case tea.MouseActionRelease:
		m.recognizer.End()
	}
}

func (m *playModel) frameWidth() int {
	return m.width
}

func (m *playModel) frameHeight() int {
	h := m.height - m.frameTop - 4 // status, moves, help, error
	if h < 10 {
		h = 10
	}
	return h
}

func (m *playModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Twisty"))
	if m.engine.Solved() && m.moveIndex > 0 {
		b.WriteString("  " + solvedStyle.Render("SOLVED"))
	}
	b.WriteString("\n\n")

	if m.frame != nil {
		b.WriteString(m.frame.View())
	}

	status := fmt.Sprintf("Moves: %d", m.moveIndex)
	if m.engine.Busy() {
		status += fmt.Sprintf("  [animating, %d queued]", m.engine.Pending())
	}
	b.WriteString(statusStyle.Render(status))
	b.WriteString("\n")

	if len(m.recent) > 0 {
		b.WriteString(moveStyle.Render(twisty.FormatMoves(m.recent)))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("r/l/u/d/f/b/m/e/s=turn (shift=prime)  drag=turn  tab=scramble  backspace=reset  q=quit"))
	b.WriteString("\n")

	return b.String()
}
