package rng

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifierOrder(t *testing.T) {
	var n Notifier
	var calls []string
	for _, name := range []string{"a", "b", "c"} {
		name := name // per-iteration copy (Go 1.21 loop-variable semantics)
		n.Register(EventInit, func() error {
			calls = append(calls, name)
			return nil
		})
	}

	require.NoError(t, n.Emit(EventInit))
	assert.Equal(t, []string{"a", "b", "c"}, calls)
}

func TestNotifierIgnoresOtherEvents(t *testing.T) {
	var n Notifier
	called := false
	n.Register(Event(99), func() error {
		called = true
		return nil
	})

	require.NoError(t, n.Emit(EventInit))
	assert.False(t, called)
}

func TestNotifierIsolatesFailures(t *testing.T) {
	var n Notifier
	errBoom := errors.New("boom")
	reached := 0

	n.Register(EventInit, func() error { return errBoom })
	n.Register(EventInit, func() error { panic("kaboom") })
	n.Register(EventInit, func() error {
		reached++
		return nil
	})
	n.Register(EventInit, nil)

	err := n.Emit(EventInit)
	require.Error(t, err)
	assert.Equal(t, 1, reached)
	assert.ErrorIs(t, err, errBoom)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 2)
	assert.Contains(t, merr.Errors[1].Error(), "kaboom")
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "INIT", EventInit.String())
	assert.Equal(t, "Event(7)", Event(7).String())
}
