package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-artist-guesser/internal/logger"
	"github.com/MKhiriev/go-artist-guesser/internal/service"
	"github.com/MKhiriev/go-artist-guesser/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const howToPlay = "Guess the mystery artist. Every guess shows how close you are\n" +
	"on gender, genre, country and Spotify popularity.\n" +
	"Use the search box to look an artist up before spending a guess."

const statusTTL = 2 * time.Second

type focusArea int

const (
	focusGuess focusArea = iota
	focusSearch
	focusResults

	focusCount
)

// copyFunc writes text to the system clipboard.
type copyFunc func(text string) error

// GameModel is the single game screen: start button, guess and search
// controls, and the card lists.
type GameModel struct {
	ctx    context.Context
	game   service.ClientGameService
	logger *logger.Logger
	copy   copyFunc

	state service.State

	guessInput  textinput.Model
	searchInput textinput.Model
	focus       focusArea
	selected    int

	// pending marks a control whose command has been dispatched but has not
	// reported back yet.
	pending map[service.Control]bool

	status       string
	showError    bool
	errorOverlay errorOverlayModel

	width  int
	height int
}

func NewGameModel(ctx context.Context, game service.ClientGameService, log *logger.Logger) *GameModel {
	guess := textinput.New()
	guess.Placeholder = "Artist name"
	guess.Prompt = "Guess  > "
	guess.CharLimit = 128

	search := textinput.New()
	search.Placeholder = "Look up an artist"
	search.Prompt = "Search > "
	search.CharLimit = 128

	m := &GameModel{
		ctx:         ctx,
		game:        game,
		logger:      log,
		copy:        clipboard.WriteAll,
		state:       game.Snapshot(),
		guessInput:  guess,
		searchInput: search,
		pending:     make(map[service.Control]bool),
	}
	m.applyFocus()
	return m
}

func (m *GameModel) Init() tea.Cmd {
	return textinput.Blink
}

// capturesInput reports whether printable keys belong to a text input.
func (m *GameModel) capturesInput() bool {
	if m.showError {
		return false
	}
	return m.focus == focusSearch || (m.focus == focusGuess && m.state.GuessingEnabled())
}

func (m *GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case startDoneMsg:
		m.pending[service.ControlStart] = false
		m.refresh()
		if m.fail(msg.err) {
			return m, nil
		}
		m.guessInput.Reset()
		m.focus = focusGuess
		m.applyFocus()
		return m, nil

	case guessDoneMsg:
		m.pending[service.ControlGuess] = false
		m.refresh()
		if m.fail(msg.err) {
			return m, nil
		}
		m.guessInput.Reset()
		if !m.state.GuessingEnabled() {
			m.applyFocus()
		}
		return m, nil

	case searchDoneMsg:
		m.pending[service.ControlSearch] = false
		m.refresh()
		if m.fail(msg.err) {
			return m, nil
		}
		m.searchInput.Reset()
		m.selected = 0
		return m, nil

	case copiedMsg:
		m.status = "Copied " + msg.text
		return m, cmdClearStatus()

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	return m.updateInputs(msg)
}

func (m *GameModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showError {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.showError = false
			m.errorOverlay.message = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.newGame):
		return m, m.start()
	case key.Matches(msg, keys.tab):
		m.focus = (m.focus + 1) % focusCount
		m.applyFocus()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.focus = (m.focus + focusCount - 1) % focusCount
		m.applyFocus()
		return m, nil
	}

	switch m.focus {
	case focusGuess:
		if key.Matches(msg, keys.enter) {
			if m.state.CanStart() {
				return m, m.start()
			}
			return m, m.submitGuess(m.guessInput.Value())
		}
	case focusSearch:
		if key.Matches(msg, keys.enter) {
			return m, m.search(m.searchInput.Value())
		}
	case focusResults:
		return m.updateResults(msg)
	}

	return m.updateInputs(msg)
}

func (m *GameModel) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, keys.down):
		if m.selected < len(m.state.Searches)-1 {
			m.selected++
		}
	case key.Matches(msg, keys.enter):
		return m, m.selectCandidate(m.selected)
	case key.Matches(msg, keys.copy):
		return m, m.copySelected()
	}
	return m, nil
}

func (m *GameModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.guessInput, cmd = m.guessInput.Update(msg)
	cmds = append(cmds, cmd)
	m.searchInput, cmd = m.searchInput.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *GameModel) busy(c service.Control) bool {
	return m.pending[c] || m.state.Busy(c)
}

func (m *GameModel) start() tea.Cmd {
	if m.busy(service.ControlStart) {
		return nil
	}
	m.pending[service.ControlStart] = true

	ctx, game := m.ctx, m.game
	return func() tea.Msg {
		return startDoneMsg{err: game.Start(ctx)}
	}
}

func (m *GameModel) submitGuess(text string) tea.Cmd {
	if strings.TrimSpace(text) == "" || m.busy(service.ControlGuess) {
		return nil
	}
	m.pending[service.ControlGuess] = true

	ctx, game := m.ctx, m.game
	return func() tea.Msg {
		return guessDoneMsg{err: game.SubmitGuess(ctx, text)}
	}
}

// selectCandidate captures the card shown at index now, so a search that
// lands before the command runs cannot change which artist is guessed.
func (m *GameModel) selectCandidate(index int) tea.Cmd {
	if index < 0 || index >= len(m.state.Searches) || m.busy(service.ControlGuess) {
		return nil
	}
	m.pending[service.ControlGuess] = true

	ctx, game, card := m.ctx, m.game, m.state.Searches[index]
	return func() tea.Msg {
		return guessDoneMsg{err: game.SelectCandidate(ctx, card)}
	}
}

func (m *GameModel) search(query string) tea.Cmd {
	if strings.TrimSpace(query) == "" || m.busy(service.ControlSearch) {
		return nil
	}
	m.pending[service.ControlSearch] = true

	ctx, game := m.ctx, m.game
	return func() tea.Msg {
		return searchDoneMsg{err: game.Search(ctx, query)}
	}
}

func (m *GameModel) copySelected() tea.Cmd {
	if m.selected >= len(m.state.Searches) {
		return nil
	}
	name := m.state.Searches[m.selected].Artist.Name
	if name == "" {
		m.status = "Nothing to copy"
		return nil
	}
	if err := m.copy(name); err != nil {
		m.logger.Err(err).Msg("clipboard write failed")
		m.showErrorf("Could not copy to clipboard.")
		return nil
	}
	return func() tea.Msg { return copiedMsg{text: name} }
}

func (m *GameModel) refresh() {
	m.state = m.game.Snapshot()
	if m.selected >= len(m.state.Searches) {
		m.selected = max(len(m.state.Searches)-1, 0)
	}
}

// fail opens the error overlay for err and reports whether err was non-nil.
func (m *GameModel) fail(err error) bool {
	if err == nil {
		return false
	}
	if text := alertText(err); text != "" {
		m.showErrorf(text)
	}
	return true
}

func (m *GameModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *GameModel) applyFocus() {
	m.guessInput.Blur()
	m.searchInput.Blur()

	switch m.focus {
	case focusGuess:
		if m.state.GuessingEnabled() {
			m.guessInput.Focus()
		}
	case focusSearch:
		m.searchInput.Focus()
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *GameModel) View() string {
	if m.showError {
		overlay := m.errorOverlay.View()
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
		}
		return overlay
	}

	var sections []string

	if m.state.Phase == models.PhaseIdle {
		sections = append(sections, cardStyle.Render(howToPlay+"\n\n"+
			renderButton("Start", "Starting...", m.busy(service.ControlStart))))
	}

	if m.state.Outcome != nil {
		sections = append(sections, renderOutcomeCard(*m.state.Outcome))
		sections = append(sections, renderButton("Play again", "Starting...", m.busy(service.ControlStart)))
	}

	sections = append(sections, m.viewGuessControl())
	for _, card := range m.state.Guesses {
		sections = append(sections, renderGuessCard(card))
	}

	sections = append(sections, m.viewSearchControl())
	for i, card := range m.state.Searches {
		sections = append(sections, renderSearchCard(card, m.focus == focusResults && i == m.selected))
	}

	if m.status != "" {
		sections = append(sections, helpStyle.Render(m.status))
	}

	return appStyle.Render(renderPage(m.title(), strings.Join(sections, "\n"), m.hotKeys()))
}

func (m *GameModel) title() string {
	title := "GUESS THE ARTIST"
	if m.state.MaxGuesses > 0 {
		title += fmt.Sprintf("  %d/%d", m.state.GuessNumber, m.state.MaxGuesses)
	}
	return title
}

func (m *GameModel) viewGuessControl() string {
	if !m.state.GuessingEnabled() {
		return helpStyle.Render(m.guessInput.Prompt + "start a game to make guesses")
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		m.guessInput.View(), " ", renderButton("Guess", "Checking...", m.busy(service.ControlGuess)))
}

func (m *GameModel) viewSearchControl() string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		m.searchInput.View(), " ", renderButton("Search", "Searching...", m.busy(service.ControlSearch)))
}

func (m *GameModel) hotKeys() string {
	switch m.focus {
	case focusResults:
		return "↑/↓: select • enter: guess this artist • c: copy name • tab: next • v: about"
	case focusSearch:
		return "enter: search • tab: next • ctrl+n: new game"
	default:
		if m.state.CanStart() {
			return "enter / ctrl+n: start • tab: next • v: about"
		}
		return "enter: guess • tab: next"
	}
}
