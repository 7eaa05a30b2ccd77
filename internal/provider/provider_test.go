package provider

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/todo"
)

func TestNew_SeedsStateAndCounter(t *testing.T) {
	p := New(model.Seed())

	if got := len(p.State()); got != 4 {
		t.Fatalf("expected 4 items, got %d", got)
	}
	if got := p.NextID().Peek(); got != 5 {
		t.Errorf("NextID().Peek() = %d, want 5", got)
	}
}

func TestNew_CounterFollowsSeed(t *testing.T) {
	p := New(model.List{{ID: 10, Text: "a"}, {ID: 3, Text: "b"}})
	if got := p.NextID().Peek(); got != 11 {
		t.Errorf("NextID().Peek() = %d, want 11", got)
	}
}

func TestNew_CopiesSeed(t *testing.T) {
	seed := model.Seed()
	p := New(seed)
	seed[0].Text = "changed"
	if p.State()[0].Text == "changed" {
		t.Fatal("provider shares the caller's seed slice")
	}
}

func TestNextID_Take(t *testing.T) {
	c := newNextID(5)
	for want := 5; want < 10; want++ {
		if got := c.Take(); got != want {
			t.Fatalf("Take() = %d, want %d", got, want)
		}
	}
	if got := c.Peek(); got != 10 {
		t.Errorf("Peek() = %d, want 10", got)
	}
}

func TestDispatch_CreateToggleRemove(t *testing.T) {
	p := New(model.Seed())
	dispatch := p.Dispatch()
	ids := p.NextID()

	id := ids.Take()
	dispatch(todo.Create{Todo: model.Item{ID: id, Text: "X"}})
	dispatch(todo.Toggle{ID: id})
	dispatch(todo.Remove{ID: 2})

	got := p.State()
	want := model.List{
		{ID: 1, Text: "Create the project", Done: true},
		{ID: 3, Text: "Build the context", Done: true},
		{ID: 4, Text: "Implement the features"},
		{ID: 5, Text: "X", Done: true},
	}
	if !got.Equal(want) {
		t.Errorf("state = %+v, want %+v", got, want)
	}
	if ids.Peek() != 6 {
		t.Errorf("counter = %d, want 6", ids.Peek())
	}
}

func TestDispatch_IDsNotReusedAfterRemove(t *testing.T) {
	p := New(model.Seed())
	dispatch, ids := p.Dispatch(), p.NextID()

	first := ids.Take()
	dispatch(todo.Create{Todo: model.Item{ID: first, Text: "a"}})
	dispatch(todo.Remove{ID: first})
	second := ids.Take()

	if second <= first {
		t.Errorf("id %d reused or went backwards after %d", second, first)
	}
}

func TestChannels_OnlyStateNotifiesOnDispatch(t *testing.T) {
	p := New(model.Seed())

	var states, dispatches, counters int
	var last model.List
	p.StateChannel().Subscribe(func(l model.List) { states++; last = l })
	p.DispatchChannel().Subscribe(func(Dispatch) { dispatches++ })
	p.NextIDChannel().Subscribe(func(*NextID) { counters++ })

	id := p.NextID().Take()
	p.Dispatch()(todo.Create{Todo: model.Item{ID: id, Text: "X"}})
	p.Dispatch()(todo.Toggle{ID: 1})

	if states != 2 {
		t.Errorf("state listeners notified %d times, want 2", states)
	}
	if dispatches != 0 || counters != 0 {
		t.Errorf("dispatch/next-id listeners notified %d/%d times, want 0/0", dispatches, counters)
	}
	if !last.Equal(p.State()) {
		t.Errorf("listener saw %+v, provider holds %+v", last, p.State())
	}
}

func TestChannels_NoNotifyWhenUnchanged(t *testing.T) {
	p := New(model.Seed())
	calls := 0
	p.StateChannel().Subscribe(func(model.List) { calls++ })

	p.Dispatch()(todo.Toggle{ID: 99})
	p.Dispatch()(todo.Remove{ID: 99})

	if calls != 0 {
		t.Errorf("listener notified %d times for no-op actions", calls)
	}
}

func TestChannels_Cancel(t *testing.T) {
	p := New(model.Seed())
	calls := 0
	cancel := p.StateChannel().Subscribe(func(model.List) { calls++ })

	p.Dispatch()(todo.Toggle{ID: 1})
	cancel()
	cancel()
	p.Dispatch()(todo.Toggle{ID: 1})

	if calls != 1 {
		t.Errorf("listener notified %d times, want 1", calls)
	}
}

func TestChannels_ListenerMayDispatch(t *testing.T) {
	p := New(model.Seed())
	p.StateChannel().Subscribe(func(l model.List) {
		if l.Index(1) >= 0 {
			p.Dispatch()(todo.Remove{ID: 1})
		}
	})

	p.Dispatch()(todo.Toggle{ID: 4})

	if p.State().Index(1) != -1 {
		t.Errorf("nested dispatch lost: %v", p.State().IDs())
	}
}

func TestDispatch_StableIdentity(t *testing.T) {
	p := New(model.Seed())
	before := p.DispatchChannel()
	p.Dispatch()(todo.Toggle{ID: 1})
	if p.DispatchChannel() != before || p.NextIDChannel().Load() != p.NextID() {
		t.Fatal("dispatch or counter handle changed across a dispatch")
	}
}

func TestDispatch_UnhandledActionPanicsAndUnlocks(t *testing.T) {
	p := New(model.Seed())
	func() {
		defer func() {
			err, _ := recover().(error)
			if !errors.Is(err, todo.ErrUnhandledAction) {
				t.Fatalf("expected ErrUnhandledAction panic, got %v", err)
			}
		}()
		p.Dispatch()(nil)
	}()

	// The provider must still be usable after the panic.
	p.Dispatch()(todo.Toggle{ID: 4})
	if !p.State()[3].Done {
		t.Error("dispatch after panic had no effect")
	}
}

func TestClose(t *testing.T) {
	var buf bytes.Buffer
	p := New(model.Seed(), WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	calls := 0
	p.StateChannel().Subscribe(func(model.List) { calls++ })
	dispatch := p.Dispatch()

	p.Close()
	p.Close()
	dispatch(todo.Toggle{ID: 1})

	if calls != 0 {
		t.Errorf("listener notified after close")
	}
	if len(p.State()) != 0 {
		t.Errorf("state kept after close: %v", p.State().IDs())
	}
	if !strings.Contains(buf.String(), "dispatch after unmount") {
		t.Errorf("expected warn log, got %q", buf.String())
	}
}

func TestClose_HandlesStayUsable(t *testing.T) {
	p := New(model.Seed(), WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	p.Close()

	d := p.Dispatch()
	if d == nil {
		t.Fatal("Dispatch() returned nil after Close")
	}
	d(todo.Toggle{ID: 1})

	ids := p.NextID()
	if ids == nil {
		t.Fatal("NextID() returned nil after Close")
	}
	if got := ids.Take(); got != 5 {
		t.Errorf("Take() = %d, want 5", got)
	}
}

func TestDispatch_LogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	p := New(model.Seed(), WithLogger(logger))

	p.Dispatch()(todo.Remove{ID: 3})

	out := buf.String()
	for _, want := range []string{"kind=REMOVE", "id=3", "items=3"} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q missing %q", out, want)
		}
	}
}

func TestAccessors(t *testing.T) {
	p := New(model.Seed())
	ctx := WithProvider(context.Background(), p)

	st, err := StateFrom(ctx)
	if err != nil {
		t.Fatalf("StateFrom: %v", err)
	}
	d, err := DispatchFrom(ctx)
	if err != nil {
		t.Fatalf("DispatchFrom: %v", err)
	}
	n, err := NextIDFrom(ctx)
	if err != nil {
		t.Fatalf("NextIDFrom: %v", err)
	}

	d(todo.Create{Todo: model.Item{ID: n.Take(), Text: "X"}})
	if got := len(st.Load()); got != 5 {
		t.Errorf("state via accessor has %d items, want 5", got)
	}
}

func TestAccessors_MissingProvider(t *testing.T) {
	closed := New(model.Seed())
	closedCtx := WithProvider(context.Background(), closed)
	closed.Close()

	for name, ctx := range map[string]context.Context{
		"no provider": context.Background(),
		"unmounted":   closedCtx,
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := StateFrom(ctx); !errors.Is(err, ErrNoStateProvider) {
				t.Errorf("StateFrom err = %v, want %v", err, ErrNoStateProvider)
			}
			if _, err := DispatchFrom(ctx); !errors.Is(err, ErrNoDispatchProvider) {
				t.Errorf("DispatchFrom err = %v, want %v", err, ErrNoDispatchProvider)
			}
			if _, err := NextIDFrom(ctx); !errors.Is(err, ErrNoNextIDProvider) {
				t.Errorf("NextIDFrom err = %v, want %v", err, ErrNoNextIDProvider)
			}
		})
	}
}

func TestMustAccessors_Panic(t *testing.T) {
	tests := []struct {
		name string
		call func(context.Context)
		want error
	}{
		{"state", func(ctx context.Context) { MustState(ctx) }, ErrNoStateProvider},
		{"dispatch", func(ctx context.Context) { MustDispatch(ctx) }, ErrNoDispatchProvider},
		{"next id", func(ctx context.Context) { MustNextID(ctx) }, ErrNoNextIDProvider},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				err, _ := recover().(error)
				if !errors.Is(err, tt.want) {
					t.Fatalf("panic = %v, want %v", err, tt.want)
				}
			}()
			tt.call(context.Background())
		})
	}
}

func TestMissingProviderErrorsAreDistinct(t *testing.T) {
	errs := []error{ErrNoStateProvider, ErrNoDispatchProvider, ErrNoNextIDProvider}
	seen := map[string]bool{}
	for _, err := range errs {
		if seen[err.Error()] {
			t.Errorf("duplicate diagnostic %q", err)
		}
		seen[err.Error()] = true
	}
}
