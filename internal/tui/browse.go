// Package tui is the full-screen list view over the todo file.
package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todoloop/internal/model"
	"github.com/idilsaglam/todoloop/internal/ui"
)

// Store is what the view loads from and saves to.
type Store interface {
	Load() []model.Item
	Save(items []model.Item) error
}

// listItem adapts model.Item to bubbles/list.Item
type listItem struct {
	model.Item
}

func (i listItem) Title() string       { return i.String() }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.Name }

// itemDelegate renders one item per line.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := ui.Current()
	box, text := t.Muted.Render("[ ]"), it.Name
	if it.Completed {
		box, text = t.Success.Render("[x]"), t.Done.Render(it.Name)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render(">") + " "
	}
	fmt.Fprintf(w, "%s%s %s", prefix, box, text)
}

type browseModel struct {
	list    list.Model
	changed bool

	// inline add
	adding bool
	ti     textinput.Model
}

var (
	toggleBind = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "check/uncheck"))
	removeBind = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove"))
	addBind    = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	quitBind   = key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit"))
)

func newBrowseModel(items []model.Item) browseModel {
	li := make([]list.Item, 0, len(items))
	for _, it := range items {
		li = append(li, listItem{it})
	}

	l := list.New(li, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(false)
	l.SetStatusBarItemName("item", "items")
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Muted
	l.Styles.PaginationStyle = ui.Current().Muted
	l.KeyMap.Quit.SetEnabled(false)
	extra := func() []key.Binding { return []key.Binding{toggleBind, removeBind, addBind, quitBind} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "What's the Todo's name?"
	ti.CharLimit = 200

	m := browseModel{list: l, ti: ti}
	m.refreshTitle()
	return m
}

// items converts the list back into the domain slice.
func (m browseModel) items() []model.Item {
	out := make([]model.Item, 0, len(m.list.Items()))
	for _, it := range m.list.Items() {
		if li, ok := it.(listItem); ok {
			out = append(out, li.Item)
		}
	}
	return out
}

func (m *browseModel) refreshTitle() {
	items := m.items()
	done, pending := model.Stats(items)
	t := ui.Current()
	m.list.Title = fmt.Sprintf("%s   %s %d  %s %d  %s",
		"Todos",
		t.Success.Render("✔"), done,
		t.Pending.Render("•"), pending,
		ui.ProgressBar(done, len(items), 12),
	)
}

func (m browseModel) Init() tea.Cmd { return nil }

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sz, ok := msg.(tea.WindowSizeMsg); ok {
		m.list.SetSize(sz.Width-4, sz.Height-6)
		return m, nil
	}

	if m.adding {
		return m.updateAdding(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(km, quitBind):
		return m, tea.Quit
	case key.Matches(km, toggleBind):
		i := m.list.Index()
		if li, ok := m.list.SelectedItem().(listItem); ok {
			li.Completed = !li.Completed
			cmd := m.list.SetItem(i, li)
			m.changed = true
			m.refreshTitle()
			return m, cmd
		}
		return m, nil
	case key.Matches(km, removeBind):
		if m.list.SelectedItem() != nil {
			m.list.RemoveItem(m.list.Index())
			m.changed = true
			m.refreshTitle()
		}
		return m, nil
	case key.Matches(km, addBind):
		m.adding = true
		m.ti.SetValue("")
		return m, m.ti.Focus()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m browseModel) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.Type {
		case tea.KeyEnter:
			n := len(m.list.Items())
			cmd := m.list.InsertItem(n, listItem{model.Item{Name: m.ti.Value()}})
			m.list.Select(n)
			m.changed = true
			m.adding = false
			m.ti.SetValue("")
			m.ti.Blur()
			m.refreshTitle()
			return m, cmd
		case tea.KeyEsc:
			m.adding = false
			m.ti.SetValue("")
			m.ti.Blur()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m browseModel) View() string {
	content := m.list.View()
	if len(m.list.Items()) == 0 {
		content += "\n" + ui.Current().Muted.Render("[Empty Todo List]")
	}
	if m.adding {
		bar := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ui.Current().Frame).
			Padding(0, 1)
		content += "\n" + bar.Render("Add new item\n"+m.ti.View())
	}
	return ui.PanelString(content)
}

// Run shows the list full screen and saves it on quit if anything changed.
func Run(store Store, in io.Reader, out io.Writer) (changed bool, err error) {
	m := newBrowseModel(store.Load())

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("tui: %w", err)
	}
	fm, ok := final.(browseModel)
	if !ok || !fm.changed {
		return false, nil
	}
	if err := store.Save(fm.items()); err != nil {
		return false, fmt.Errorf("save: %w", err)
	}
	return true, nil
}
