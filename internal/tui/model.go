package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kapu/character-lookup-go/internal/adapter"
	"github.com/kapu/character-lookup-go/internal/constants"
	"github.com/kapu/character-lookup-go/internal/widget"
)

const (
	keyEnter = "enter"
	keyEsc   = "esc"
	keyCtrlC = "ctrl+c"

	defaultWidth = 80
	historyCols  = 3
)

// searchDoneMsg carries the widget state after a search attempt finished.
type searchDoneMsg struct {
	state widget.State
}

// Model is the Bubble Tea model for the interactive lookup widget.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type Model struct {
	ctx       context.Context
	widget    *widget.Widget
	formatter *adapter.ResponseFormatter

	textInput textinput.Model
	spinner   spinner.Model
	state     widget.State
	pending   int
	width     int
	quitting  bool
}

// NewModel creates the widget model around w.
func NewModel(ctx context.Context, w *widget.Widget) Model {
	ti := textinput.New()
	ti.Placeholder = constants.Labels.SearchHint
	ti.CharLimit = 64
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		ctx:       ctx,
		widget:    w,
		formatter: adapter.NewResponseFormatter(),
		textInput: ti,
		spinner:   sp,
		state:     w.State(),
		width:     defaultWidth,
	}
}

// Init initializes the model (Bubble Tea interface).
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case searchDoneMsg:
		return m.handleSearchDone(msg)
	case spinner.TickMsg:
		if m.pending == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		switch msg.String() {
		case keyCtrlC, keyEsc:
			m.quitting = true
			return m, tea.Quit
		case keyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	input := m.textInput.Value()
	m.state = m.state.Begin()
	m.pending++

	w := m.widget
	ctx := m.ctx
	search := func() tea.Msg {
		return searchDoneMsg{state: w.Submit(ctx, input)}
	}

	if m.pending == 1 {
		return m, tea.Batch(search, m.spinner.Tick)
	}
	return m, search
}

func (m Model) handleSearchDone(msg searchDoneMsg) (tea.Model, tea.Cmd) {
	if m.pending > 0 {
		m.pending--
	}
	m.state = msg.state
	if m.state.DetailVisible && m.state.Input == "" {
		m.textInput.SetValue("")
	}
	return m, nil
}

// State returns the widget state currently displayed.
func (m Model) State() widget.State {
	return m.state
}

// View renders the widget (Bubble Tea interface).
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("🍄 Reino do Cogumelo"))
	sb.WriteString("\n\n")
	sb.WriteString(m.textInput.View())
	sb.WriteString("\n\n")

	switch {
	case m.pending > 0:
		sb.WriteString(fmt.Sprintf("%s %s\n\n", m.spinner.View(), constants.Labels.Searching))
	case m.state.DetailVisible:
		sb.WriteString(detailStyle.Render(renderCard(m.state.Detail, true)))
		sb.WriteString("\n\n")
	case m.state.ErrorVisible:
		sb.WriteString(errorStyle.Render(m.formatter.FailureMessage(m.state.Failure)))
		sb.WriteString("\n\n")
	}

	if history := m.renderHistory(); history != "" {
		sb.WriteString(history)
		sb.WriteString("\n\n")
	}

	sb.WriteString(mutedStyle.Render("enter: buscar • esc: sair"))
	return sb.String()
}

func (m Model) renderHistory() string {
	view := m.state.History
	if view.Empty() {
		return ""
	}

	cardWidth := (m.width / historyCols) - 4
	if cardWidth < 20 {
		cardWidth = 20
	}

	rows := make([]string, 0, (len(view.Cards)+historyCols-1)/historyCols)
	for start := 0; start < len(view.Cards); start += historyCols {
		end := start + historyCols
		if end > len(view.Cards) {
			end = len(view.Cards)
		}
		cells := make([]string, 0, end-start)
		for _, card := range view.Cards[start:end] {
			cells = append(cells, historyCardStyle.Width(cardWidth).Render(renderCard(card, false)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return historyHeaderStyle.Render(view.Header) + "\n" + lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderCard(card adapter.Card, showImage bool) string {
	lines := []string{nameStyle.Render(card.DisplayName)}
	if showImage {
		lines = append(lines, mutedStyle.Render(card.ImageURL))
	}
	lines = append(lines,
		labelStyle.Render(card.OriginLabel+": ")+valueStyle.Render(card.Origin),
		labelStyle.Render(card.StrengthLabel+": ")+valueStyle.Render(card.Strength),
	)
	return strings.Join(lines, "\n")
}

// Run starts the interactive widget and blocks until the user quits.
func Run(ctx context.Context, w *widget.Widget, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	_, err := tea.NewProgram(NewModel(ctx, w), opts...).Run()
	return err
}
