package ui

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	styles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/fsnotify/fsnotify"

	"github.com/kyaoi/mdsheet/internal/document"
	"github.com/kyaoi/mdsheet/internal/sheet"
)

const (
	defaultFPS    = 60
	minSheetRows  = 1
	offsetPerView = 100.0
)

var (
	backdropStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3b4261"))
	handleStyles  = map[sheet.State]lipgloss.Style{
		sheet.Closed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a9b1d6")).
			Background(lipgloss.Color("#283457")),
		sheet.HalfOpen: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1a1b26")).
			Background(lipgloss.Color("#7aa2f7")).
			Bold(true),
		sheet.FullyOpen: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1a1b26")).
			Background(lipgloss.Color("#9ece6a")).
			Bold(true),
	}
	draggingHandleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#1a1b26")).
				Background(lipgloss.Color("#e0af68")).
				Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6b6b"))
)

// Model hosts a bottom sheet inside a Bubble Tea program.
type Model struct {
	contentVP  viewport.Model
	renderer   *glamour.TermRenderer
	rawContent string
	title      string
	style      string
	fps        int
	ready      bool
	width      int
	height     int
	err        error

	sheet *sheet.Sheet
	hub   *sheet.PointerHub

	pressing    bool
	pressOnBar  bool
	pressMoved  bool
	pressRow    int
	lastRow     int
	closed      bool
	sheetRows   int
	handleRow   int
	lastOffset  float64
	activeTask  sheet.Task
	initialPath string

	activeAbsPath string
	watcher       *fsnotify.Watcher
	watchDir      string
	watchedFile   string
	watchChan     chan tea.Msg
	watchDone     chan struct{}
}

type frameMsg struct {
	task sheet.Task
}

type fileEventMsg struct {
	path string
	op   fsnotify.Op
}

type fileWatchErrMsg struct {
	err error
}

// NewModel constructs the sheet model with the provided initial state. A nil
// integrator selects the linear spring.
func NewModel(state State, integrator sheet.Integrator) *Model {
	contentVP := viewport.New(0, 0)
	contentVP.Style = lipgloss.NewStyle().Padding(0, 1)

	fps := state.FPS
	if fps <= 0 {
		fps = defaultFPS
	}
	style := state.Style
	if style == "" {
		style = styles.TokyoNightStyle
	}

	hub := sheet.NewPointerHub()
	return &Model{
		contentVP:     contentVP,
		rawContent:    state.RawContent,
		title:         state.Title,
		style:         style,
		fps:           fps,
		hub:           hub,
		sheet:         sheet.New(hub, integrator),
		activeAbsPath: state.ActiveAbsPath,
		initialPath:   state.ActiveAbsPath,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.initialPath != "" {
		path := m.initialPath
		m.initialPath = ""
		return m.startWatching(path)
	}
	return nil
}

// Snapshot exposes the sheet state for callers outside the event loop.
func (m *Model) Snapshot() sheet.Snapshot {
	return m.sheet.Snapshot()
}

// Close tears down the sheet and the file watcher. It is safe to call more
// than once.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.sheet.Close()
	if m.watchDone != nil {
		close(m.watchDone)
	}
	if m.watcher != nil {
		_ = m.watcher.Close()
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return ""
	}

	var lines []string
	for i := 0; i < m.handleRow; i++ {
		lines = append(lines, backdropStyle.Render(strings.Repeat("·", m.width)))
	}
	if m.err != nil && m.handleRow > 0 {
		lines[0] = errorStyle.Render(ansi.Truncate(m.err.Error(), m.width, "…"))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	sheetView := m.handleView()
	if m.sheetRows > 1 {
		sheetView = lipgloss.JoinVertical(lipgloss.Left, sheetView, m.contentVP.View())
	}
	if len(lines) == 0 {
		return sheetView
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, sheetView)
}

func (m *Model) handleView() string {
	snap := m.sheet.Snapshot()
	style, ok := handleStyles[snap.State]
	if !ok || snap.Dragging {
		style = draggingHandleStyle
	}
	label := fmt.Sprintf(" ━━  %s  [%s]", m.title, snap.State)
	return style.Width(m.width).Render(ansi.Truncate(label, m.width, "…"))
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		return m, m.handleFrame(msg)
	case fileEventMsg:
		return m, m.handleFileEvent(msg)
	case fileWatchErrMsg:
		m.err = msg.err
		return m, m.waitForFileEvent()
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.KeyMsg:
		key := msg.String()
		switch key {
		case "q", "ctrl+c":
			m.Close()
			return m, tea.Quit
		case "j", "down":
			m.contentVP.LineDown(1)
			return m, nil
		case "k", "up":
			m.contentVP.LineUp(1)
			return m, nil
		}
		// Escape only marks the sheet closed. It stays where it is on screen
		// until the next drag or toggle moves it.
		if m.sheet.HandleKey(key) {
			m.layout()
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.ready {
		return nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			if msg.Y > m.handleRow {
				var cmd tea.Cmd
				m.contentVP, cmd = m.contentVP.Update(msg)
				return cmd
			}
			return nil
		}
		if msg.Button != tea.MouseButtonLeft || msg.Y < m.handleRow {
			return nil
		}
		m.pressing = true
		m.pressOnBar = msg.Y == m.handleRow
		m.pressMoved = false
		m.pressRow = msg.Y
		m.lastRow = msg.Y
		m.activeTask = 0
		m.sheet.PointerDown(m.pointerY(msg.Y))
		m.layout()
	case tea.MouseActionMotion:
		if m.pressing && msg.Y != m.pressRow {
			m.pressMoved = true
		}
		if m.pressing {
			m.lastRow = msg.Y
		}
		m.hub.Dispatch(m.pointerY(msg.Y))
		m.layout()
	case tea.MouseActionRelease:
		if !m.pressing {
			return nil
		}
		m.pressing = false
		if m.pressOnBar && !m.pressMoved {
			// A click on the handle cycles from the state on screen, so the
			// drag ends without a snap.
			m.sheet.CancelDrag()
			m.sheet.Toggle()
			m.layout()
			return nil
		}
		task, more := m.sheet.PointerUp()
		m.layout()
		if more {
			m.activeTask = task
			return m.frameCmd(task)
		}
	}
	return nil
}

func (m *Model) handleFrame(msg frameMsg) tea.Cmd {
	if msg.task != m.activeTask {
		return nil
	}
	more := m.sheet.Frame(msg.task)
	m.layout()
	if !more {
		m.activeTask = 0
		return nil
	}
	return m.frameCmd(msg.task)
}

func (m *Model) frameCmd(task sheet.Task) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(time.Time) tea.Msg {
		return frameMsg{task: task}
	})
}

// pointerY converts a terminal row to offset units, where the full height of
// the screen spans offsetPerView.
func (m *Model) pointerY(row int) float64 {
	if m.height <= 0 {
		return 0
	}
	return float64(row) * offsetPerView / float64(m.height)
}

// rowsForOffset returns how many rows the sheet covers at offset, handle
// included.
func rowsForOffset(offset float64, height int) int {
	rows := int(math.Round(-offset / offsetPerView * float64(height)))
	return clamp(rows, minSheetRows, height)
}

func (m *Model) resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	m.width = width
	m.height = height
	m.ready = true
	if m.pressing {
		// Pointer units scale with the height; re-anchor the drag.
		m.sheet.PointerDown(m.pointerY(m.lastRow))
	}
	m.contentVP.Width = width

	wrapWidth := width - m.contentVP.Style.GetHorizontalFrameSize()
	if wrapWidth < 0 {
		wrapWidth = 0
	}

	renderer, err := newRenderer(m.style, wrapWidth)
	if err != nil {
		m.err = err
		m.layout()
		return
	}
	m.renderer = renderer
	m.renderMarkdown()
	m.layout()
}

// layout recomputes the sheet geometry after its offset changed.
func (m *Model) layout() {
	if !m.ready {
		return
	}
	offset := m.sheet.Offset()
	m.sheetRows = rowsForOffset(offset, m.height)
	m.handleRow = m.height - m.sheetRows
	m.contentVP.Height = max(m.sheetRows-1, 0)
	if offset != m.lastOffset {
		log.Printf("ui: offset %.2f, %d rows", offset, m.sheetRows)
		m.lastOffset = offset
	}
}

func (m *Model) renderMarkdown() {
	if m.renderer == nil {
		return
	}
	rendered, err := m.renderer.Render(m.rawContent)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.contentVP.SetContent(rendered)
}

func newRenderer(style string, width int) (*glamour.TermRenderer, error) {
	opts := []glamour.TermRendererOption{glamour.WithStandardStyle(style)}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	} else {
		opts = append(opts, glamour.WithWordWrap(0))
	}
	return glamour.NewTermRenderer(opts...)
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func (m *Model) startWatching(path string) tea.Cmd {
	if path == "" {
		return nil
	}
	path = filepath.Clean(path)
	if err := m.ensureWatcher(); err != nil {
		m.err = err
		return nil
	}

	dir := filepath.Dir(path)
	if dir != m.watchDir {
		if m.watchDir != "" {
			_ = m.watcher.Remove(m.watchDir)
		}
		if err := m.watcher.Add(dir); err != nil {
			m.err = err
			return nil
		}
		m.watchDir = dir
	}

	m.watchedFile = path
	return m.waitForFileEvent()
}

func (m *Model) ensureWatcher() error {
	if m.watcher != nil {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	m.watcher = watcher
	m.watchChan = make(chan tea.Msg, 10)
	m.watchDone = make(chan struct{})

	go watchLoop(watcher, m.watchChan, m.watchDone)
	return nil
}

// watchLoop forwards watcher events to out until the watcher closes or done
// is closed.
func watchLoop(watcher *fsnotify.Watcher, out chan<- tea.Msg, done <-chan struct{}) {
	defer close(out)
	for {
		var msg tea.Msg
		select {
		case <-done:
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			msg = fileEventMsg{path: event.Name, op: event.Op}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			msg = fileWatchErrMsg{err: err}
		}
		select {
		case out <- msg:
		case <-done:
			return
		}
	}
}

func (m *Model) waitForFileEvent() tea.Cmd {
	if m.watchChan == nil {
		return nil
	}
	ch := m.watchChan
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

func (m *Model) handleFileEvent(msg fileEventMsg) tea.Cmd {
	if m.watchedFile == "" || m.closed {
		return m.waitForFileEvent()
	}

	if filepath.Clean(msg.path) != filepath.Clean(m.watchedFile) {
		return m.waitForFileEvent()
	}

	m.reloadActiveFile()
	return m.waitForFileEvent()
}

func (m *Model) reloadActiveFile() {
	if m.activeAbsPath == "" {
		return
	}
	data, err := os.ReadFile(m.activeAbsPath)
	if err != nil {
		m.err = err
		return
	}

	offset := m.contentVP.YOffset
	doc, err := document.Parse(data)
	if err != nil {
		m.err = err
		return
	}
	m.rawContent = doc.Body
	if doc.Title != "" {
		m.title = doc.Title
	}
	m.renderMarkdown()
	if m.err == nil {
		m.contentVP.SetYOffset(offset)
	}
}
