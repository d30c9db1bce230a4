package tui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kapu/character-lookup-go/internal/service"
	"github.com/kapu/character-lookup-go/internal/widget"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/mario") {
			_, _ = w.Write([]byte(`{"name":"mario","origin":"Donkey Kong"}`))
			return
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(server.Close)

	client := service.NewCharacterAPIClient(server.Client(), server.URL+"/api", "", zap.NewNop())
	w := widget.New(service.NewLookupService(client, zap.NewNop()), nil)
	return NewModel(context.Background(), w)
}

// runSearch types input, presses enter and feeds the search result back.
func runSearch(t *testing.T, m Model, input string) Model {
	t.Helper()
	m.textInput.SetValue(input)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	require.NotNil(t, cmd)
	assert.Equal(t, 1, m.pending)
	assert.False(t, m.state.DetailVisible)
	assert.False(t, m.state.ErrorVisible)
	assert.Contains(t, m.View(), "Buscando...")

	done := findSearchDone(t, cmd)
	updated, _ = m.Update(done)
	return updated.(Model)
}

func findSearchDone(t *testing.T, cmd tea.Cmd) searchDoneMsg {
	t.Helper()
	switch msg := cmd().(type) {
	case searchDoneMsg:
		return msg
	case tea.BatchMsg:
		for _, inner := range msg {
			if inner == nil {
				continue
			}
			if done, ok := inner().(searchDoneMsg); ok {
				return done
			}
		}
	}
	t.Fatal("no search result produced")
	return searchDoneMsg{}
}

func TestModelSuccessfulSearch(t *testing.T) {
	m := runSearch(t, newTestModel(t), "Mario")

	assert.Zero(t, m.pending)
	assert.True(t, m.State().DetailVisible)
	assert.Empty(t, m.textInput.Value(), "input clears after a fresh fetch")

	view := m.View()
	assert.Contains(t, view, "Mario")
	assert.Contains(t, view, "Primeira Aparição")
	assert.Contains(t, view, "Personagens Pesquisados (1)")
}

func TestModelCacheHitKeepsInput(t *testing.T) {
	m := runSearch(t, newTestModel(t), "mario")
	m = runSearch(t, m, "MARIO")

	assert.True(t, m.State().DetailVisible)
	assert.Equal(t, "MARIO", m.textInput.Value())
	assert.Equal(t, 1, m.State().History.Count)
}

func TestModelNotFound(t *testing.T) {
	m := runSearch(t, newTestModel(t), "wario")

	assert.True(t, m.State().ErrorVisible)
	assert.False(t, m.State().DetailVisible)
	assert.Contains(t, m.View(), `"Wario"`)
	assert.NotContains(t, m.View(), "Personagens Pesquisados")
}

func TestModelEmptySearch(t *testing.T) {
	m := runSearch(t, newTestModel(t), "   ")

	assert.True(t, m.State().ErrorVisible)
	assert.Contains(t, m.View(), "digite o nome de um personagem")
}

func TestModelQuitKeys(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, updated.(Model).View())
}

func TestModelWindowResize(t *testing.T) {
	updated, _ := newTestModel(t).Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, updated.(Model).width)
}
