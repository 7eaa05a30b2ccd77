package todo

import (
	"fmt"

	"github.com/idilsaglam/todo/internal/model"
)

// Reduce maps (state, action) to the next state. It never mutates state
// and always returns a new slice.
func Reduce(state model.List, a Action) model.List {
	switch a := a.(type) {
	case Create:
		next := make(model.List, 0, len(state)+1)
		next = append(next, state...)
		return append(next, a.Todo)

	case Toggle:
		next := state.Clone()
		for i := range next {
			if next[i].ID == a.ID {
				next[i].Done = !next[i].Done
			}
		}
		return next

	case Remove:
		next := make(model.List, 0, len(state))
		for _, it := range state {
			if it.ID != a.ID {
				next = append(next, it)
			}
		}
		return next
	}
	panic(fmt.Errorf("%w: %T", ErrUnhandledAction, a))
}
