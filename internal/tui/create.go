package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/provider"
	"github.com/idilsaglam/todo/internal/todo"
	"github.com/idilsaglam/todo/internal/ui"
)

const createLines = 4

// createForm is the inline "add item" input. It reads dispatch and the id
// counter, never the list, so list changes do not redraw it.
type createForm struct {
	dispatch provider.Dispatch
	ids      *provider.NextID
	input    textinput.Model
	open     bool
	err      string

	view    string
	dirty   bool
	renders int
}

func newCreateForm(ctx context.Context) (*createForm, error) {
	dispatch, err := provider.DispatchFrom(ctx)
	if err != nil {
		return nil, err
	}
	ids, err := provider.NextIDFrom(ctx)
	if err != nil {
		return nil, err
	}
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 200
	return &createForm{dispatch: dispatch, ids: ids, input: ti, dirty: true}, nil
}

func (f *createForm) Open() tea.Cmd {
	f.open = true
	f.err = ""
	f.dirty = true
	f.input.SetValue("")
	return f.input.Focus()
}

func (f *createForm) close() {
	f.open = false
	f.err = ""
	f.dirty = true
	f.input.SetValue("")
	f.input.Blur()
}

func (f *createForm) Update(msg tea.Msg) tea.Cmd {
	if !f.open {
		return nil
	}
	f.dirty = true
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			text := strings.TrimSpace(f.input.Value())
			if text == "" {
				f.err = "Text cannot be empty"
				return nil
			}
			f.dispatch(todo.Create{Todo: model.Item{ID: f.ids.Take(), Text: text}})
			f.close()
			return nil
		case "esc":
			f.close()
			return nil
		}
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

func (f *createForm) View() string {
	if !f.dirty {
		return f.view
	}
	f.dirty = false
	f.renders++
	if !f.open {
		f.view = ""
		return f.view
	}
	t := ui.Current()
	title := t.Accent.Render("Add new item")
	if f.err != "" {
		title += " " + t.Error.Render(f.err)
	}
	f.view = ui.Panel([]string{title, f.input.View()})
	return f.view
}
