package cli

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/tanema/gween/ease"

	"github.com/SeamusWaldron/nxcube"
)

var playLog bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Turn the cube interactively with the mouse",
	Long: `Start an interactive TUI showing the cube as an unfolded net.

Drag a sticker on the Front, Left or Up face to turn its layer; drag the
background to turn the whole cube. Releasing snaps to the nearest quarter
turn.

Keyboard shortcuts:
  x y z   - Turn the whole cube (X Y Z backwards)
  u       - Undo the last turn
  s       - Scramble
  r       - Reset to solved
  Esc     - Cancel the current drag
  q       - Quit`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolVar(&playLog, "log", false, "Write a session log for 'nxcube replay'")
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	turnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

var easings = map[string]ease.TweenFunc{
	"linear":      ease.Linear,
	"in-out-quad": ease.InOutQuad,
	"out-cubic":   ease.OutCubic,
}

const frameInterval = 16 * time.Millisecond

// Messages
type frameMsg time.Time

// playModel is the bubbletea model for the play command. Everything runs on
// the bubbletea goroutine, so the cube's callbacks need no locking here.
type playModel struct {
	cube    *nxcube.Cube
	tracker *nxcube.Tracker
	gesture *nxcube.Gesture
	layout  netLayout
	easing  ease.TweenFunc
	rng     *rand.Rand

	// grid mirrors the sticker cells. It changes only when a turn is
	// flushed, so it shows the old state while a turn animates.
	grid [6][][]nxcube.Face

	// Animation of the turn in flight
	turn      *nxcube.Turn
	spin      *nxcube.Spin
	spinAngle float64
	lastFrame time.Time

	solves   int
	err      error
	quitting bool

	// Logging
	logger  *SessionLogger
	logPath string
}

func newPlayModel(cfg Config, logger *SessionLogger) (*playModel, error) {
	cube, err := cfg.NewCube()
	if err != nil {
		return nil, err
	}

	m := &playModel{
		cube:    cube,
		tracker: nxcube.NewTracker(cube),
		gesture: nxcube.NewGesture(cube, nxcube.GestureConfig{
			Threshold:   cfg.Gesture.Threshold,
			Sensitivity: cfg.Gesture.Sensitivity,
			// The net is drawn flat.
			TopTilt: 0,
		}),
		layout: netLayout{Size: cube.Size(), Left: 2, Top: 3},
		easing: easings[cfg.Easing],
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: logger,
	}

	n := cube.Size()
	for _, face := range nxcube.Faces {
		m.grid[face] = make([][]nxcube.Face, n)
		for x := 0; x < n; x++ {
			m.grid[face][x] = make([]nxcube.Face, n)
			for y := 0; y < n; y++ {
				cube.Cell(face, x, y).Bind(func(label nxcube.Face) {
					m.grid[face][x][y] = label
				})
			}
		}
	}

	cube.OnAfterRotate(logger.LogRotation)
	cube.OnSolved(func() {
		m.solves++
		logger.LogSolved()
	})
	return m, nil
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.logger.LogKeyPress(msg.String())
		return m, m.handleKey(msg.String())

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case frameMsg:
		return m, m.advance(time.Time(msg))
	}
	return m, nil
}

func (m *playModel) handleKey(key string) tea.Cmd {
	m.err = nil
	ctx := context.Background()

	switch key {
	case "q", "ctrl+c":
		m.gesture.Cancel()
		m.quitting = true
		m.logPath = m.logger.FilePath()
		m.logger.Close()
		return tea.Quit

	case "esc":
		if m.gesture.State() != nxcube.GestureCommitting {
			m.gesture.Cancel()
			m.logger.LogGesture(m.gesture.State())
		}

	case "x", "y", "z", "X", "Y", "Z":
		axis, _ := nxcube.ParseAxis(strings.ToLower(key))
		return m.animate(nxcube.CubeRotation(axis, key != strings.ToLower(key)))

	case "u":
		if _, _, err := m.tracker.Undo(ctx); err != nil {
			m.err = err
		}

	case "s":
		scramble := nxcube.Scramble(m.rng, m.cube.Size(), defaultScrambleLength(m.cube.Size()))
		if err := m.tracker.Apply(ctx, scramble...); err != nil {
			m.err = err
		}

	case "r":
		if err := m.tracker.Reset(); err != nil {
			m.err = err
			return nil
		}
		m.logger.LogReset()
	}
	return nil
}

// animate begins r and plays it before ending the turn.
func (m *playModel) animate(r nxcube.Rotation) tea.Cmd {
	turn, err := m.cube.Begin(r)
	if err != nil {
		m.err = err
		return nil
	}
	return m.play(turn)
}

func (m *playModel) play(turn *nxcube.Turn) tea.Cmd {
	m.turn = turn
	m.spin = nxcube.NewSpin(turn.Event(), m.easing)
	m.spinAngle = turn.Event().FromAngle
	m.lastFrame = time.Now()
	return m.frameCmd()
}

func (m *playModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		p := m.layout.Point(msg.X, msg.Y)
		target := m.layout.Hit(msg.X, msg.Y)
		if m.gesture.Down(p, m.layout.Bounds(), target) {
			m.err = nil
			m.logger.LogGesture(m.gesture.State())
		}

	case tea.MouseActionMotion:
		before := m.gesture.State()
		m.gesture.Move(m.layout.Point(msg.X, msg.Y))
		if m.gesture.State() != before {
			m.logger.LogGesture(m.gesture.State())
		}

	case tea.MouseActionRelease:
		turn := m.gesture.Up()
		m.logger.LogGesture(m.gesture.State())
		if turn != nil {
			return m.play(turn)
		}
	}
	return nil
}

// advance moves the animation one frame and ends the turn when it is over.
func (m *playModel) advance(now time.Time) tea.Cmd {
	if m.spin == nil {
		return nil
	}
	angle, done := m.spin.Update(now.Sub(m.lastFrame))
	m.lastFrame = now
	m.spinAngle = angle
	if !done {
		return m.frameCmd()
	}

	if m.gesture.State() == nxcube.GestureCommitting {
		m.gesture.Finish()
		m.logger.LogGesture(m.gesture.State())
	} else {
		m.turn.End()
	}
	m.turn = nil
	m.spin = nil
	return nil
}

func (m *playModel) View() string {
	if m.quitting {
		msg := "Goodbye!\n"
		if m.logPath != "" {
			msg += fmt.Sprintf("Log saved to: %s\n", m.logPath)
		}
		return msg
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("nxcube %dx%dx%d", m.cube.Size(), m.cube.Size(), m.cube.Size())))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status()))
	b.WriteString("\n\n")

	var highlight func(nxcube.Face, int, int) bool
	if m.turn != nil {
		highlight = layerHighlight(m.cube.Size(), m.turn.Event().Rotation)
	} else if r, _, ok := m.gesture.Preview(); ok {
		highlight = layerHighlight(m.cube.Size(), r)
	}
	b.WriteString(renderNet(m.layout, m.grid, highlight))
	b.WriteString("\n")

	if m.turn != nil {
		ev := m.turn.Event()
		label := ev.Rotation.Notation()
		if ev.IsSettle() {
			label = "settle"
		}
		b.WriteString(turnStyle.Render(fmt.Sprintf("Turning %s: %4.0f°", label, m.spinAngle)))
	} else if r, angle, ok := m.gesture.Preview(); ok {
		b.WriteString(turnStyle.Render(fmt.Sprintf("Dragging %s@%d: %4.0f°", r.Axis, r.Layer, angle)))
	}
	b.WriteString("\n")

	history := m.tracker.History()
	if len(history) > 0 {
		start := 0
		b.WriteString("Moves: ")
		if len(history) > 12 {
			start = len(history) - 12
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(nxcube.FormatRotations(history[start:])))
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("Drag to turn | x/y/z=turn cube u=undo s=scramble r=reset esc=cancel q=quit"))
	b.WriteString("\n")

	return b.String()
}

func (m *playModel) status() string {
	if m.cube.IsSolved() {
		return fmt.Sprintf("Solved (%d solves) | %d moves", m.solves, len(m.tracker.History()))
	}
	return fmt.Sprintf("Progress: %s | %d moves", m.tracker.Progress(), len(m.tracker.History()))
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := NewSessionLogger()
	if playLog {
		if err := logger.Start(logDir(), appConfig.Size); err != nil {
			// Logging is optional
			fmt.Printf("Warning: could not start logging: %v\n", err)
		}
	}

	model, err := newPlayModel(appConfig, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
