package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/provider"
)

// stateMsg carries a new list to the component that owns the feed named to.
type stateMsg struct {
	to   string
	list model.List
}

// feed bridges a state subscription into the Bubble Tea event loop.
// Listeners run inside Update (dispatch is synchronous), so they must not
// block: the channel keeps only the latest list.
type feed struct {
	name   string
	ch     chan model.List
	cancel func()
}

func newFeed(name string, st *provider.Channel[model.List]) *feed {
	f := &feed{name: name, ch: make(chan model.List, 1)}
	f.cancel = st.Subscribe(func(l model.List) {
		select {
		case <-f.ch:
		default:
		}
		f.ch <- l
	})
	return f
}

// wait blocks until the next list arrives.
func (f *feed) wait() tea.Cmd {
	return func() tea.Msg {
		l, ok := <-f.ch
		if !ok {
			return nil
		}
		return stateMsg{to: f.name, list: l}
	}
}

func (f *feed) close() {
	f.cancel()
	close(f.ch)
}
