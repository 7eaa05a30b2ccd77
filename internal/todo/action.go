// Package todo holds the transition function for a todo list.
//
// Actions form a closed set: Create, Toggle and Remove are the only types
// that satisfy Action, so Reduce covers every action a caller can build.
package todo

import (
	"errors"

	"github.com/idilsaglam/todo/internal/model"
)

// ErrUnhandledAction marks a programming error: Reduce got an action it
// cannot apply. Reduce panics with an error wrapping it.
var ErrUnhandledAction = errors.New("todo: unhandled action type")

// Action is a request to transform the list.
type Action interface {
	// Kind is the wire-style name of the action, used in logs.
	Kind() string
	action()
}

// Create appends Todo. The caller assigns a fresh id beforehand.
type Create struct {
	Todo model.Item
}

// Toggle flips Done on the item with ID.
type Toggle struct {
	ID int
}

// Remove drops the item with ID.
type Remove struct {
	ID int
}

func (Create) Kind() string { return "CREATE" }
func (Toggle) Kind() string { return "TOGGLE" }
func (Remove) Kind() string { return "REMOVE" }

func (Create) action() {}
func (Toggle) action() {}
func (Remove) action() {}
