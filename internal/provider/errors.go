package provider

import "errors"

var (
	// Missing provider errors, one per channel.
	ErrNoStateProvider    = errors.New("todo: cannot find state provider")
	ErrNoDispatchProvider = errors.New("todo: cannot find dispatch provider")
	ErrNoNextIDProvider   = errors.New("todo: cannot find next-id provider")
)
