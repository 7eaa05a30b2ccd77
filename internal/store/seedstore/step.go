package seedstore

import (
	"strings"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/provider"
	"github.com/idilsaglam/todo/internal/todo"
)

// Step is one scripted user action:
//
//	- create: Buy milk
//	- toggle: 2
//	- remove: 3
type Step struct {
	Create *string `json:"create,omitempty" yaml:"create,omitempty"`
	Toggle *int    `json:"toggle,omitempty" yaml:"toggle,omitempty"`
	Remove *int    `json:"remove,omitempty" yaml:"remove,omitempty"`
}

func (s Step) validate() error {
	set := 0
	if s.Create != nil {
		set++
		if strings.TrimSpace(*s.Create) == "" {
			return ErrInvalidStep
		}
	}
	if s.Toggle != nil {
		set++
	}
	if s.Remove != nil {
		set++
	}
	if set != 1 {
		return ErrInvalidStep
	}
	return nil
}

// Action builds the action for s. A create takes its id from ids.
func (s Step) Action(ids *provider.NextID) todo.Action {
	switch {
	case s.Create != nil:
		return todo.Create{Todo: model.Item{ID: ids.Take(), Text: strings.TrimSpace(*s.Create)}}
	case s.Toggle != nil:
		return todo.Toggle{ID: *s.Toggle}
	case s.Remove != nil:
		return todo.Remove{ID: *s.Remove}
	}
	return nil
}
