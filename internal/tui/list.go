package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/provider"
	"github.com/idilsaglam/todo/internal/todo"
	"github.com/idilsaglam/todo/internal/ui"
)

// listItem adapts model.Item to bubbles/list.Item
type listItem struct{ model.Item }

func (i listItem) FilterValue() string { return i.Text }

// Single-line rendering with a selection marker.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	prefix := "  "
	if index == m.Index() {
		prefix = ui.Current().Selected.Render(">") + " "
	}
	fmt.Fprint(w, prefix+ui.ItemLine(it.Item))
}

// listView renders the items and turns keys into TOGGLE and REMOVE.
// It reads the list and dispatch.
type listView struct {
	feed     *feed
	dispatch provider.Dispatch
	keys     keyMap
	list     list.Model

	view    string
	dirty   bool
	renders int
}

func newListView(ctx context.Context, keys keyMap) (*listView, error) {
	st, err := provider.StateFrom(ctx)
	if err != nil {
		return nil, err
	}
	dispatch, err := provider.DispatchFrom(ctx)
	if err != nil {
		return nil, err
	}

	l := list.New(toListItems(st.Load()), itemDelegate{}, 76, 12)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")
	l.Styles.PaginationStyle = ui.Current().Muted
	// Quitting is App's call; esc is left to clear an applied filter.
	l.KeyMap.Quit = key.NewBinding()
	l.KeyMap.ForceQuit = key.NewBinding()

	return &listView{
		feed:     newFeed("list", st),
		dispatch: dispatch,
		keys:     keys,
		list:     l,
		dirty:    true,
	}, nil
}

func toListItems(l model.List) []list.Item {
	out := make([]list.Item, 0, len(l))
	for _, it := range l {
		out = append(out, listItem{it})
	}
	return out
}

func (v *listView) Init() tea.Cmd { return v.feed.wait() }

func (v *listView) filtering() bool { return v.list.FilterState() == list.Filtering }

func (v *listView) setSize(w, h int) {
	v.list.SetSize(w, h)
	v.dirty = true
}

func (v *listView) selected() (model.Item, bool) {
	it, ok := v.list.SelectedItem().(listItem)
	return it.Item, ok
}

func (v *listView) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case stateMsg:
		if msg.to != v.feed.name {
			return nil
		}
		v.dirty = true
		cmd := v.list.SetItems(toListItems(msg.list))
		if n := len(v.list.Items()); n > 0 && v.list.Index() >= n {
			v.list.Select(n - 1)
		}
		return tea.Batch(cmd, v.feed.wait())

	case tea.KeyMsg:
		if !v.filtering() {
			switch {
			case key.Matches(msg, v.keys.Toggle):
				if it, ok := v.selected(); ok {
					v.dispatch(todo.Toggle{ID: it.ID})
				}
				return nil
			case key.Matches(msg, v.keys.Remove):
				if it, ok := v.selected(); ok {
					v.dispatch(todo.Remove{ID: it.ID})
				}
				return nil
			}
		}
	}

	v.dirty = true
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return cmd
}

func (v *listView) View() string {
	if v.dirty {
		v.view = v.list.View()
		v.dirty = false
		v.renders++
	}
	return v.view
}
