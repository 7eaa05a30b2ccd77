// Package tui is the interactive todo list.
//
// Components pull what they need from a provider-scoped context when they
// are built. A missing provider fails New instead of failing on first use.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todo/internal/ui"
)

// App is the root Bubble Tea model.
type App struct {
	head   *head
	list   *listView
	create *createForm
	keys   keyMap
	help   help.Model

	width, height int
	quitting      bool
}

// New wires the components to the provider scoped on ctx.
func New(ctx context.Context) (App, error) {
	keys := defaultKeys()
	h, err := newHead(ctx)
	if err != nil {
		return App{}, err
	}
	l, err := newListView(ctx, keys)
	if err != nil {
		h.feed.close()
		return App{}, err
	}
	c, err := newCreateForm(ctx)
	if err != nil {
		h.feed.close()
		l.feed.close()
		return App{}, err
	}
	hm := help.New()
	hm.Styles.ShortKey = ui.Current().Accent
	hm.Styles.ShortDesc = ui.Current().Muted
	return App{head: h, list: l, create: c, keys: keys, help: hm}, nil
}

// Run starts the program on the alternate screen and blocks until quit.
func Run(ctx context.Context) error {
	app, err := New(ctx)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

func (a App) Init() tea.Cmd {
	return tea.Batch(a.head.Init(), a.list.Init())
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		a.resize()
		return a, nil

	case stateMsg:
		return a, tea.Batch(a.head.Update(msg), a.list.Update(msg))

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			return a.quit()
		}
		if a.create.open {
			cmd := a.create.Update(msg)
			if !a.create.open {
				a.resize()
			}
			return a, cmd
		}
		if a.list.filtering() {
			return a, a.list.Update(msg)
		}
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a.quit()
		case key.Matches(msg, a.keys.Add):
			cmd := a.create.Open()
			a.resize()
			return a, cmd
		}
		return a, a.list.Update(msg)
	}

	return a, tea.Batch(a.create.Update(msg), a.list.Update(msg))
}

func (a App) quit() (tea.Model, tea.Cmd) {
	if !a.quitting {
		a.quitting = true
		a.head.feed.close()
		a.list.feed.close()
	}
	return a, tea.Quit
}

// resize gives the list whatever the head, form and footer leave over.
func (a App) resize() {
	if a.width == 0 || a.height == 0 {
		return
	}
	h := a.height - headLines - 1 - 4
	if a.create.open {
		h -= createLines
	}
	if h < 3 {
		h = 3
	}
	a.list.setSize(a.width-4, h)
}

func (a App) View() string {
	if a.quitting {
		return ""
	}
	parts := []string{a.head.View(), "", a.list.View()}
	if form := a.create.View(); form != "" {
		parts = append(parts, form)
	}
	parts = append(parts, a.help.View(a.keys))
	return ui.Panel(parts)
}
