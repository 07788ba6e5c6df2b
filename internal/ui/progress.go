package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/morishitter/postcss/internal/driver"
)

// fileState is what the list shows next to a file.
type fileState uint8

const (
	stateUnknown fileState = iota
	stateQueued
	stateReading
	stateProcessing
	stateCached
	stateWriting
	stateDone
	stateFailed
)

type stateInfo struct {
	label  string
	color  lipgloss.Color
	weight float64 // доля готовности для общего прогресса
}

var states = [...]stateInfo{
	stateUnknown:    {"", "7", 0},
	stateQueued:     {"queued", "8", 0},
	stateReading:    {"reading", "6", 0.1},
	stateProcessing: {"processing", "6", 0.4},
	stateCached:     {"cached", "4", 0.8},
	stateWriting:    {"writing", "6", 0.9},
	stateDone:       {"done", "2", 1},
	stateFailed:     {"error", "1", 1},
}

func (s fileState) String() string { return states[s].label }

func (s fileState) final() bool { return s == stateDone || s == stateFailed }

// stateOf maps a driver event onto the list state, stateUnknown for events
// the list does not show.
func stateOf(stage driver.Stage, status driver.Status) fileState {
	switch status {
	case driver.StatusQueued:
		return stateQueued
	case driver.StatusCached:
		return stateCached
	case driver.StatusDone:
		return stateDone
	case driver.StatusError:
		return stateFailed
	case driver.StatusWorking:
		switch stage {
		case driver.StageRead:
			return stateReading
		case driver.StageProcess:
			return stateProcessing
		case driver.StageWrite:
			return stateWriting
		}
	}
	return stateUnknown
}

type fileRow struct {
	path    string
	state   fileState
	cached  bool
	elapsed time.Duration
	err     error
}

type progressModel struct {
	title   string
	events  <-chan driver.Event
	spinner spinner.Model
	bar     progress.Model
	rows    []fileRow
	byPath  map[string]int
	width   int
	closed  bool
}

type (
	eventMsg  driver.Event
	closedMsg struct{}
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

const labelWidth = 10

// NewProgressModel renders the files of one driver.ProcessFiles run and
// quits when events is closed.
func NewProgressModel(title string, files []string, events <-chan driver.Event) tea.Model {
	sp := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	m := &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		rows:    make([]fileRow, len(files)),
		byPath:  make(map[string]int, len(files)),
		width:   80,
	}
	m.bar.Width = m.width - 8
	for i, file := range files {
		m.rows[i] = fileRow{path: file, state: stateQueued}
		m.byPath[file] = i
	}
	return m
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.next())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		return m, tea.Batch(m.apply(driver.Event(msg)), m.next())
	case closedMsg:
		m.closed = true
		return m, tea.Quit
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.bar.Width = max(msg.Width-8, 10)
		}
	case spinner.TickMsg:
		if !m.closed {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	case progress.FrameMsg:
		bar, cmd := m.bar.Update(msg)
		m.bar = bar.(progress.Model)
		return m, cmd
	}
	return m, nil
}

// next waits for one driver event.
func (m *progressModel) next() tea.Cmd {
	return func() tea.Msg {
		if ev, ok := <-m.events; ok {
			return eventMsg(ev)
		}
		return closedMsg{}
	}
}

func (m *progressModel) apply(ev driver.Event) tea.Cmd {
	i, ok := m.byPath[ev.File]
	if !ok {
		return nil
	}
	row := &m.rows[i]
	if st := stateOf(ev.Stage, ev.Status); st != stateUnknown {
		row.state = st
	}
	if ev.Status == driver.StatusCached {
		row.cached = true
	}
	if ev.Status == driver.StatusError {
		row.err = ev.Err
	}
	if ev.Elapsed > 0 {
		row.elapsed = ev.Elapsed
	}

	sum := 0.0
	for _, r := range m.rows {
		sum += states[r.state].weight
	}
	return m.bar.SetPercent(sum / float64(len(m.rows)))
}

func (m *progressModel) finished() int {
	n := 0
	for _, r := range m.rows {
		if r.state.final() {
			n++
		}
	}
	return n
}

func (m *progressModel) View() string {
	if len(m.rows) == 0 {
		return ""
	}
	var b strings.Builder

	mark := m.spinner.View()
	if m.closed {
		mark = "✓"
	}
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s %s (%d/%d)", mark, m.title, m.finished(), len(m.rows))))
	b.WriteString("\n\n")

	pathWidth := max(m.width-labelWidth-14, 20)
	for _, r := range m.rows {
		b.WriteString(m.viewRow(r, pathWidth))
	}

	b.WriteString("\n  ")
	if m.closed {
		b.WriteString(m.bar.ViewAs(1))
		b.WriteString("\n  ")
		b.WriteString(dimStyle.Render(m.summary()))
	} else {
		b.WriteString(m.bar.View())
	}
	b.WriteString("\n")
	return b.String()
}

func (m *progressModel) viewRow(r fileRow, pathWidth int) string {
	label := r.state.String()
	if r.state == stateDone && r.cached {
		label = "cached"
	}
	style := lipgloss.NewStyle().Foreground(states[r.state].color).Width(labelWidth).Align(lipgloss.Right)

	line := "  " + style.Render(label) + " " + fit(r.path, pathWidth)
	if r.state.final() && r.elapsed > 0 {
		line += dimStyle.Render(" " + r.elapsed.Round(time.Millisecond).String())
	}
	line += "\n"
	if r.err != nil {
		msg, _, _ := strings.Cut(r.err.Error(), "\n")
		line += strings.Repeat(" ", labelWidth+3) + errStyle.Render(fit(msg, pathWidth)) + "\n"
	}
	return line
}

// summary is printed once the run is over, e.g. "2 written, 1 from cache, 1 failed".
func (m *progressModel) summary() string {
	var written, cached, failed int
	for _, r := range m.rows {
		switch {
		case r.state == stateFailed:
			failed++
		case r.state == stateDone && r.cached:
			cached++
		case r.state == stateDone:
			written++
		}
	}
	parts := []string{fmt.Sprintf("%d written", written)}
	if cached > 0 {
		parts = append(parts, fmt.Sprintf("%d from cache", cached))
	}
	if failed > 0 {
		parts = append(parts, fmt.Sprintf("%d failed", failed))
	}
	return strings.Join(parts, ", ")
}

// fit shortens s to width terminal cells, keeping wide runes whole.
func fit(s string, width int) string {
	switch {
	case width <= 0 || runewidth.StringWidth(s) <= width:
		return s
	case width <= 3:
		return runewidth.Truncate(s, width, "")
	default:
		return runewidth.Truncate(s, width, "...")
	}
}
