package rng

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/nozzle/variate/internal/logging"
)

// Event is a lifecycle notification fired by a source.
type Event int

const (
	// EventInit fires after a source has been (re)seeded.
	EventInit Event = iota
)

func (e Event) String() string {
	switch e {
	case EventInit:
		return "INIT"
	}
	return fmt.Sprintf("Event(%d)", int(e))
}

// Handler reacts to an event.
type Handler func() error

type listener struct {
	event   Event
	handler Handler
}

// Notifier is an ordered list of event listeners. Sources embed it.
// The zero value is ready to use.
type Notifier struct {
	listeners []listener
}

// Register appends h to the listeners for ev. A nil handler is ignored.
func (n *Notifier) Register(ev Event, h Handler) {
	if h == nil {
		return
	}
	n.listeners = append(n.listeners, listener{event: ev, handler: h})
}

// Emit runs every handler registered for ev in registration order.
// A failing or panicking handler does not stop the others; all failures
// are returned together.
func (n *Notifier) Emit(ev Event) error {
	var result *multierror.Error
	for _, l := range n.listeners {
		if l.event != ev {
			continue
		}
		if err := invoke(l.handler); err != nil {
			result = multierror.Append(result, fmt.Errorf("%s listener: %w", ev, err))
		}
	}
	return result.ErrorOrNil()
}

// fire emits ev and reports listener failures on the source's channel.
func (n *Notifier) fire(ev Event, caller string) {
	if err := n.Emit(ev); err != nil {
		l := logging.For(caller)
		l.Error().Err(err).Stringer("event", ev).Msg("listener failed")
	}
}

func (n *Notifier) apply(opts []Option) {
	for _, opt := range opts {
		opt(n)
	}
}

func invoke(h Handler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return h()
}
