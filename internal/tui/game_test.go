package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-artist-guesser/internal/adapter"
	"github.com/MKhiriev/go-artist-guesser/internal/app"
	"github.com/MKhiriev/go-artist-guesser/internal/logger"
	"github.com/MKhiriev/go-artist-guesser/internal/mock"
	"github.com/MKhiriev/go-artist-guesser/internal/service"
	"github.com/MKhiriev/go-artist-guesser/internal/validators"
	"github.com/MKhiriev/go-artist-guesser/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const newGameFailedMsg = "Could not start a new game (artist lookup failed)"

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyCtrlN = tea.KeyMsg{Type: tea.KeyCtrlN}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestGameModel(t *testing.T) (*GameModel, *mock.MockGameAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockGameAdapter(ctrl)
	svc := service.NewClientGameService(mockAdapter, validators.NewGameValidator(), clockwork.NewFakeClock(), logger.Nop())

	return NewGameModel(context.Background(), svc, logger.Nop()), mockAdapter
}

// press sends msg and runs the resulting command once, feeding its message
// back into the model.
func press(t *testing.T, m *GameModel, msg tea.Msg) {
	t.Helper()
	_, cmd := m.Update(msg)
	settle(m, cmd)
}

func settle(m *GameModel, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case startDoneMsg, guessDoneMsg, searchDoneMsg, copiedMsg:
		m.Update(msg)
	}
}

func guessResp(name string, n int, status models.GameStatus) models.GuessResponse {
	return models.GuessResponse{
		Comparison: &models.Comparison{
			GuessArtist: &models.Artist{Name: name},
			Fields:      models.ComparisonFields{Gender: models.MatchExact},
		},
		GuessNumber: n,
		MaxGuesses:  10,
		Status:      status,
		Answer:      &models.Answer{Name: "Adele"},
	}
}

func startTestGame(t *testing.T, m *GameModel, mockAdapter *mock.MockGameAdapter) {
	t.Helper()
	mockAdapter.EXPECT().NewGame(gomock.Any()).Return(nil)
	press(t, m, keyEnter)
	require.Equal(t, models.PhaseActive, m.state.Phase)
}

func TestGameModel_IdleShowsHowToPlay(t *testing.T) {
	m, _ := newTestGameModel(t)

	view := m.View()
	assert.Contains(t, view, "Guess the mystery artist")
	assert.Contains(t, view, "Start")
	assert.Contains(t, view, "start a game to make guesses")
}

func TestGameModel_StartShowsBusyLabel(t *testing.T) {
	m, mockAdapter := newTestGameModel(t)

	_, cmd := m.Update(keyEnter)
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Starting...")

	_, again := m.Update(keyCtrlN)
	assert.Nil(t, again)

	mockAdapter.EXPECT().NewGame(gomock.Any()).Return(nil)
	settle(m, cmd)

	view := m.View()
	assert.NotContains(t, view, "Starting...")
	assert.NotContains(t, view, "Guess the mystery artist")
	assert.True(t, m.capturesInput())
}

func TestGameModel_GuessFlow(t *testing.T) {
	m, mockAdapter := newTestGameModel(t)
	startTestGame(t, m, mockAdapter)

	for _, r := range "Adele" {
		m.Update(runes(string(r)))
	}
	assert.Equal(t, "Adele", m.guessInput.Value())

	_, cmd := m.Update(keyEnter)
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Checking...")

	_, again := m.Update(keyEnter)
	assert.Nil(t, again)

	mockAdapter.EXPECT().Guess(gomock.Any(), "Adele").Return(guessResp("Adele", 1, models.StatusInProgress), nil).Times(1)
	settle(m, cmd)

	assert.Empty(t, m.guessInput.Value())
	require.Len(t, m.state.Guesses, 1)
	view := m.View()
	assert.Contains(t, view, "1/10")
	assert.NotContains(t, view, "Checking...")
}

func TestGameModel_EmptyGuessSendsNothing(t *testing.T) {
	m, mockAdapter := newTestGameModel(t)
	startTestGame(t, m, mockAdapter)

	m.guessInput.SetValue("   ")
	_, cmd := m.Update(keyEnter)
	assert.Nil(t, cmd)
	assert.False(t, m.showError)
}

func TestGameModel_WinShowsOutcomeAndDisablesGuessing(t *testing.T) {
	m, mockAdapter := newTestGameModel(t)
	startTestGame(t, m, mockAdapter)

	m.guessInput.SetValue("Adele")
	mockAdapter.EXPECT().Guess(gomock.Any(), "Adele").Return(guessResp("Adele", 2, models.StatusWon), nil)
	press(t, m, keyEnter)

	view := m.View()
	assert.Contains(t, view, "You Got It!")
	assert.Contains(t, view, "Play again")
	assert.Contains(t, view, "start a game to make guesses")
	assert.False(t, m.capturesInput())

	mockAdapter.EXPECT().NewGame(gomock.Any()).Return(nil)
	press(t, m, keyEnter)

	assert.Equal(t, models.PhaseActive, m.state.Phase)
	assert.Empty(t, m.state.Guesses)
	assert.NotContains(t, m.View(), "You Got It!")
}

func TestGameModel_ErrorOverlay(t *testing.T) {
	m, mockAdapter := newTestGameModel(t)

	mockAdapter.EXPECT().NewGame(gomock.Any()).Return(&adapter.APIError{StatusCode: 502, Message: newGameFailedMsg})
	press(t, m, keyEnter)

	require.True(t, m.showError)
	assert.Contains(t, m.View(), newGameFailedMsg)
	assert.Equal(t, models.PhaseIdle, m.state.Phase)

	_, cmd := m.Update(runes("x"))
	assert.Nil(t, cmd)
	assert.True(t, m.showError)

	m.Update(keyEsc)
	assert.False(t, m.showError)
	assert.NotContains(t, m.View(), newGameFailedMsg)
}

func TestGameModel_SearchAndSelectCandidate(t *testing.T) {
	m, mockAdapter := newTestGameModel(t)
	startTestGame(t, m, mockAdapter)

	m.Update(keyTab)
	require.Equal(t, focusSearch, m.focus)

	m.searchInput.SetValue("adele")
	_, cmd := m.Update(keyEnter)
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Searching...")

	mockAdapter.EXPECT().Search(gomock.Any(), "adele").Return(models.Artist{Name: "Adele", Tag: "pop"}, nil)
	settle(m, cmd)
	assert.Empty(t, m.searchInput.Value())
	assert.Contains(t, m.View(), "pop")

	m.Update(keyTab)
	require.Equal(t, focusResults, m.focus)
	assert.False(t, m.capturesInput())

	mockAdapter.EXPECT().Guess(gomock.Any(), "Adele").Return(guessResp("Adele", 1, models.StatusInProgress), nil).Times(1)
	press(t, m, keyEnter)

	require.Len(t, m.state.Guesses, 1)
	assert.Equal(t, "Adele", m.state.Guesses[0].Artist.Name)
}

func TestGameModel_SelectGuessesRenderedCardWhileSearchSettles(t *testing.T) {
	m, mockAdapter := newTestGameModel(t)
	startTestGame(t, m, mockAdapter)
	m.Update(keyTab)

	mockAdapter.EXPECT().Search(gomock.Any(), "adele").Return(models.Artist{Name: "Adele"}, nil)
	m.searchInput.SetValue("adele")
	press(t, m, keyEnter)

	mockAdapter.EXPECT().Search(gomock.Any(), "pitbull").Return(models.Artist{Name: "Pitbull"}, nil)
	m.searchInput.SetValue("pitbull")
	_, searchCmd := m.Update(keyEnter)
	require.NotNil(t, searchCmd)
	searchDone := searchCmd()

	m.Update(keyTab)
	require.Equal(t, focusResults, m.focus)
	require.Equal(t, "Adele", m.state.Searches[m.selected].Artist.Name)

	mockAdapter.EXPECT().Guess(gomock.Any(), "Adele").Return(guessResp("Adele", 1, models.StatusInProgress), nil).Times(1)
	press(t, m, keyEnter)
	m.Update(searchDone)

	require.Len(t, m.state.Guesses, 1)
	assert.Equal(t, "Adele", m.state.Guesses[0].Artist.Name)
	assert.Len(t, m.state.Searches, 2)
}

func TestGameModel_SearchErrorKeepsResults(t *testing.T) {
	m, mockAdapter := newTestGameModel(t)
	m.Update(keyTab)

	m.searchInput.SetValue("adele")
	mockAdapter.EXPECT().Search(gomock.Any(), "adele").Return(models.Artist{Name: "Adele"}, nil)
	press(t, m, keyEnter)

	m.searchInput.SetValue("zzz")
	mockAdapter.EXPECT().Search(gomock.Any(), "zzz").Return(models.Artist{}, &adapter.APIError{StatusCode: 404, ErrorText: app.MsgArtistNotFound})
	press(t, m, keyEnter)

	assert.True(t, m.showError)
	assert.Contains(t, m.View(), app.MsgArtistNotFound)
	assert.Equal(t, "zzz", m.searchInput.Value())

	m.Update(keyEnter)
	assert.Len(t, m.state.Searches, 1)
	assert.Contains(t, m.View(), "Adele")
}

func TestGameModel_SelectBeforeStartShowsAlert(t *testing.T) {
	m, mockAdapter := newTestGameModel(t)
	m.Update(keyTab)

	m.searchInput.SetValue("adele")
	mockAdapter.EXPECT().Search(gomock.Any(), "adele").Return(models.Artist{Name: "Adele"}, nil)
	press(t, m, keyEnter)

	m.Update(keyTab)
	press(t, m, keyEnter)

	assert.True(t, m.showError)
	assert.Contains(t, m.View(), app.AlertGuessingDisabled)
}

func TestGameModel_CopySelected(t *testing.T) {
	m, mockAdapter := newTestGameModel(t)
	var copied []string
	m.copy = func(text string) error {
		copied = append(copied, text)
		return nil
	}

	m.Update(keyTab)
	mockAdapter.EXPECT().Search(gomock.Any(), "a").Return(models.Artist{Name: "Adele"}, nil)
	mockAdapter.EXPECT().Search(gomock.Any(), "b").Return(models.Artist{Name: "Björk"}, nil)
	m.searchInput.SetValue("a")
	press(t, m, keyEnter)
	m.searchInput.SetValue("b")
	press(t, m, keyEnter)

	m.Update(keyTab)
	m.Update(keyDown)
	press(t, m, runes("c"))

	assert.Equal(t, []string{"Adele"}, copied)
	assert.Contains(t, m.View(), "Copied Adele")

	m.Update(clearStatusMsg{})
	assert.NotContains(t, m.View(), "Copied Adele")
}

func TestGameModel_CopyFailureShowsAlert(t *testing.T) {
	m, mockAdapter := newTestGameModel(t)
	m.copy = func(string) error { return errors.New("no clipboard") }

	m.Update(keyTab)
	mockAdapter.EXPECT().Search(gomock.Any(), "a").Return(models.Artist{Name: "Adele"}, nil)
	m.searchInput.SetValue("a")
	press(t, m, keyEnter)

	m.Update(keyTab)
	press(t, m, runes("c"))

	assert.True(t, m.showError)
}

func TestRootModel_BuildInfoAndQuit(t *testing.T) {
	m, _ := newTestGameModel(t)
	m.focus = focusResults
	m.applyFocus()

	info := models.NewAppBuildInfo("1.2.3", "2026-03-01", "abc123")
	var root tea.Model = NewRootModel(m, info)

	root, _ = root.Update(runes("v"))
	view := root.View()
	assert.Contains(t, view, "1.2.3")
	assert.Contains(t, view, models.AppName)

	root, _ = root.Update(keyEsc)
	assert.NotContains(t, root.View(), "1.2.3")

	root, cmd := root.Update(keyCtrlC)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, root.(RootModel).quitByUser)
}

func TestRootModel_VIsTypedIntoSearch(t *testing.T) {
	m, _ := newTestGameModel(t)
	var root tea.Model = NewRootModel(m, models.AppBuildInfo{})

	root, _ = root.Update(keyTab)
	root, _ = root.Update(runes("v"))

	assert.Equal(t, "v", m.searchInput.Value())
	assert.NotContains(t, root.View(), "ABOUT")
}
