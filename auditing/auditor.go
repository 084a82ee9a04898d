// Package auditing decides who is recorded in created_by / updated_by.
//
// Implementations are registered by name and selected through the
// auditor_aware config key. A name that cannot be resolved is a
// *core.ConfigurationError and startup must abort; there is no fallback.
package auditing

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/Reactman/wakanda/core"
	"github.com/Reactman/wakanda/global"
	"github.com/Reactman/wakanda/utils/strutil"
)

const (
	SystemAuditor  = "system"
	RequestAuditor = "request"
)

var ErrUnknownAuditor = errors.New("no auditor registered under this name")

// AuditorAware yields the current auditor, or false when there is none.
type AuditorAware interface {
	CurrentAuditor(ctx context.Context) (string, bool)
}

// AuditorFunc adapts a function to AuditorAware.
type AuditorFunc func(ctx context.Context) (string, bool)

func (f AuditorFunc) CurrentAuditor(ctx context.Context) (string, bool) { return f(ctx) }

// Factory builds an AuditorAware; it may fail.
type Factory func() (AuditorAware, error)

var (
	mu       sync.RWMutex
	registry = map[string]Factory{}
)

func init() {
	Register(SystemAuditor, func() (AuditorAware, error) { return systemAuditor{}, nil })
	Register(RequestAuditor, func() (AuditorAware, error) { return requestAuditor{}, nil })
}

// Register makes f available under name, replacing any previous entry.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	registry[name] = f
}

// Names lists registered auditors, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Resolve builds the auditor registered under name. A blank name selects
// the system auditor.
func Resolve(name string) (a AuditorAware, err error) {
	if strutil.IsBlank(name) {
		name = SystemAuditor
	}
	mu.RLock()
	f, ok := registry[name]
	mu.RUnlock()
	if !ok {
		return nil, configErr(name, ErrUnknownAuditor)
	}

	defer func() {
		if r := recover(); r != nil {
			a, err = nil, configErr(name, fmt.Errorf("auditor factory panicked: %v", r))
		}
	}()
	a, err = f()
	if err != nil {
		return nil, configErr(name, err)
	}
	if a == nil {
		return nil, configErr(name, errors.New("auditor factory returned nil"))
	}
	return a, nil
}

func configErr(name string, err error) error {
	return &core.ConfigurationError{Key: "auditor_aware", Value: name, Err: err}
}

// systemAuditor attributes every write to "system".
type systemAuditor struct{}

func (systemAuditor) CurrentAuditor(context.Context) (string, bool) {
	return global.DefaultAuditor, true
}

// requestAuditor reads the identity the Auth middleware put in the context.
type requestAuditor struct{}

func (requestAuditor) CurrentAuditor(ctx context.Context) (string, bool) {
	return AuditorFrom(ctx)
}
