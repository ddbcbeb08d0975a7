// Package fixtures resolves named, test-scoped dependencies. Each test
// gets its own Container; resolving a fixture walks its declared
// dependencies, constructs everything exactly once, and registers
// teardown that runs in reverse resolution order on every exit path.
package fixtures

import (
	"fmt"
	"strings"
	"testing"
)

// Constructor builds a fixture value. It may resolve other fixtures
// through the container; the container detects dependency cycles. The
// returned teardown may be nil.
type Constructor func(c *Container) (value any, teardown func() error, err error)

type fixtureState int

const (
	statePending fixtureState = iota
	stateResolving
	stateReady
	stateTornDown
)

type entry struct {
	ctor     Constructor
	state    fixtureState
	value    any
	teardown func() error
}

// Container resolves fixtures for exactly one test.
type Container struct {
	t       *testing.T
	entries map[string]*entry
	stack   []string // resolution path, for cycle reporting
	order   []string // ready fixtures in resolution order
}

// NewContainer creates an empty container bound to t. Teardown of every
// resolved fixture is registered on t.Cleanup immediately, so it runs
// whether the test body passes, fails, or never starts.
func NewContainer(t *testing.T) *Container {
	c := &Container{
		t:       t,
		entries: make(map[string]*entry),
	}
	t.Cleanup(c.teardownAll)
	return c
}

// Register declares a named fixture. Redeclaring a name is a test bug.
func (c *Container) Register(name string, ctor Constructor) {
	if _, exists := c.entries[name]; exists {
		c.t.Fatalf("fixture %q registered twice", name)
	}
	c.entries[name] = &entry{ctor: ctor, state: statePending}
}

// Resolve returns the named fixture, constructing it and its
// dependencies on first use.
func (c *Container) Resolve(name string) (any, error) {
	e, ok := c.entries[name]
	if !ok {
		return nil, fmt.Errorf("unknown fixture %q", name)
	}

	switch e.state {
	case stateReady:
		return e.value, nil
	case stateResolving:
		return nil, fmt.Errorf("fixture dependency cycle: %s -> %s",
			strings.Join(c.stack, " -> "), name)
	case stateTornDown:
		return nil, fmt.Errorf("fixture %q used after teardown", name)
	}

	e.state = stateResolving
	c.stack = append(c.stack, name)
	value, teardown, err := e.ctor(c)
	c.stack = c.stack[:len(c.stack)-1]
	if err != nil {
		e.state = statePending
		return nil, fmt.Errorf("setup of fixture %q: %w", name, err)
	}

	e.state = stateReady
	e.value = value
	e.teardown = teardown
	c.order = append(c.order, name)
	return value, nil
}

// MustResolve is Resolve but fails the test on error, marking the test
// failed before its body gets a half-built dependency.
func (c *Container) MustResolve(name string) any {
	c.t.Helper()
	v, err := c.Resolve(name)
	if err != nil {
		c.t.Fatalf("%v", err)
	}
	return v
}

func (c *Container) teardownAll() {
	for i := len(c.order) - 1; i >= 0; i-- {
		name := c.order[i]
		e := c.entries[name]
		if e.state != stateReady {
			continue
		}
		e.state = stateTornDown
		if e.teardown == nil {
			continue
		}
		if err := e.teardown(); err != nil {
			c.t.Errorf("teardown of fixture %q: %v", name, err)
		}
	}
}
