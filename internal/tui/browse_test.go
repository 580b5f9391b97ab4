package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todoloop/internal/model"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func send(t *testing.T, m browseModel, msgs ...tea.Msg) browseModel {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(browseModel)
		require.True(t, ok)
	}
	return m
}

func TestBrowseToggle(t *testing.T) {
	m := newBrowseModel([]model.Item{{Name: "A"}, {Name: "B", Completed: true}})
	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24}, tea.KeyMsg{Type: tea.KeySpace})

	assert.True(t, m.changed)
	assert.Equal(t, []model.Item{{Name: "A", Completed: true}, {Name: "B", Completed: true}}, m.items())
}

func TestBrowseRemove(t *testing.T) {
	m := newBrowseModel([]model.Item{{Name: "A"}, {Name: "B"}})
	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24}, runes("d"))

	assert.True(t, m.changed)
	assert.Equal(t, []model.Item{{Name: "B"}}, m.items())
}

func TestBrowseRemoveEmptyIsNoop(t *testing.T) {
	m := newBrowseModel(nil)
	m = send(t, m, runes("d"), tea.KeyMsg{Type: tea.KeySpace})

	assert.False(t, m.changed)
	assert.Empty(t, m.items())
	assert.Contains(t, m.View(), "[Empty Todo List]")
}

func TestBrowseAddAppends(t *testing.T) {
	m := newBrowseModel([]model.Item{{Name: "A", Completed: true}})
	m = send(t, m, tea.WindowSizeMsg{Width: 80, Height: 24}, runes("a"))
	require.True(t, m.adding)

	m = send(t, m, runes("X"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.adding)
	assert.True(t, m.changed)
	assert.Equal(t, []model.Item{{Name: "A", Completed: true}, {Name: "X"}}, m.items())
}

func TestBrowseAddCancelled(t *testing.T) {
	m := newBrowseModel([]model.Item{{Name: "A"}})
	m = send(t, m, runes("a"), runes("X"), tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.adding)
	assert.False(t, m.changed)
	assert.Equal(t, []model.Item{{Name: "A"}}, m.items())
}

func TestBrowseQuit(t *testing.T) {
	m := newBrowseModel(nil)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestItemsRoundTripThroughList(t *testing.T) {
	in := []model.Item{{Name: "A"}, {Name: "B", Completed: true}, {Name: ""}}
	assert.Equal(t, in, newBrowseModel(in).items())
}
