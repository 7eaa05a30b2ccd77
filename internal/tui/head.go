package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/provider"
	"github.com/idilsaglam/todo/internal/ui"
)

const headLines = 4

// head shows the date and how much is left. It reads the list only.
type head struct {
	feed *feed
	list model.List
	now  func() time.Time

	view    string
	dirty   bool
	renders int
}

func newHead(ctx context.Context) (*head, error) {
	st, err := provider.StateFrom(ctx)
	if err != nil {
		return nil, err
	}
	return &head{
		feed:  newFeed("head", st),
		list:  st.Load(),
		now:   time.Now,
		dirty: true,
	}, nil
}

func (h *head) Init() tea.Cmd { return h.feed.wait() }

func (h *head) Update(msg tea.Msg) tea.Cmd {
	m, ok := msg.(stateMsg)
	if !ok || m.to != h.feed.name {
		return nil
	}
	h.list = m.list
	h.dirty = true
	return h.feed.wait()
}

func (h *head) View() string {
	if h.dirty {
		h.render()
	}
	return h.view
}

func (h *head) render() {
	t := ui.Current()
	done, pending := h.list.Stats()
	left := fmt.Sprintf("%d tasks left", pending)
	if pending == 1 {
		left = "1 task left"
	}
	h.view = strings.Join([]string{
		t.Title.Render(h.now().Format("Monday, January 2, 2006")),
		t.Pending.Render(left),
		ui.Header(h.list),
		t.Muted.Render(ui.ProgressBar(done, len(h.list), 28)),
	}, "\n")
	h.dirty = false
	h.renders++
}
