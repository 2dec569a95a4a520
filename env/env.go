// Package env implements the interpreter's variable environment: a flat
// name-to-value mapping with no nested scopes. Map and reduce lambda
// bodies run against a fresh Env containing only their bound parameters —
// by design they cannot see variables from the caller's environment.
package env

import (
	"errors"
	"fmt"

	"github.com/ardnew/exl/value"
)

// ErrUnknownIdentifier is wrapped by Get with the offending name; the eval
// package classifies it as a NameError when reporting a diagnostic.
var ErrUnknownIdentifier = errors.New("unknown identifier")

// Env is a flat, unsynchronized name-to-value mapping. The global Env is
// touched only from the main goroutine; each map/reduce worker builds and
// owns its own Env, so no locking is required.
type Env struct {
	vars map[string]value.Value
}

// New returns an empty environment.
func New() *Env {
	return &Env{vars: make(map[string]value.Value)}
}

// NewWith returns a fresh environment pre-populated with a single bound
// parameter, as used for a map lambda body.
func NewWith(name string, v value.Value) *Env {
	e := New()
	e.Set(name, v)

	return e
}

// NewWith2 returns a fresh environment pre-populated with two bound
// parameters, as used for a reduce lambda body.
func NewWith2(name1 string, v1 value.Value, name2 string, v2 value.Value) *Env {
	e := New()
	e.Set(name1, v1)
	e.Set(name2, v2)

	return e
}

// Get looks up name, reporting ErrUnknownIdentifier if it is unbound.
func (e *Env) Get(name string) (value.Value, error) {
	v, ok := e.vars[name]
	if !ok {
		return value.Value{}, fmt.Errorf("%w: %s", ErrUnknownIdentifier, name)
	}

	return v, nil
}

// Set binds name to v in the environment, overwriting any prior binding.
func (e *Env) Set(name string, v value.Value) {
	e.vars[name] = v
}
