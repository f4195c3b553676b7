/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package vprop

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"dirpx.dev/vprop/apis"
	"dirpx.dev/vprop/builder"
	"dirpx.dev/vprop/config"
	"dirpx.dev/vprop/facade"
	"dirpx.dev/vprop/internal/logger"
)

// init publishes the initial snapshot from the VPROP_* environment.
func init() {
	cfg, err := config.FromEnv()
	if err != nil {
		logger.Logger().WithError(err).Warn("invalid vprop environment, using defaults")
		cfg = config.DefaultConfig()
	}
	b := builder.New()
	s := &state{cfg: cfg, bld: b}
	s.reg = b.BuildRegistry(s.cfg, nil)
	s.res = b.BuildResolver(s.cfg, s.reg, nil)
	st.Store(s)
}

var (
	// ErrNilRegistry is returned when a builder returns a nil registry.
	ErrNilRegistry = errors.New("vprop: builder returned nil registry")
	// ErrNilResolver is returned when a builder returns a nil resolver.
	ErrNilResolver = errors.New("vprop: builder returned nil resolver")
)

// Property errors, re-exported from the facade package.
var (
	ErrUnknownProperty = facade.ErrUnknownProperty
	ErrInvalidCall     = facade.ErrInvalidCall
	ErrNilObject       = facade.ErrNilObject
	ErrEmptyName       = facade.ErrEmptyName
	ErrNotAddressable  = facade.ErrNotAddressable
)

type (
	// UnknownPropertyError reports access to an attribute with no accessor.
	UnknownPropertyError = facade.UnknownPropertyError
	// InvalidCallError reports access in the wrong direction.
	InvalidCallError = facade.InvalidCallError
	// Assignments is an ordered bulk configuration.
	Assignments = apis.Assignments
)

// Get reads attribute name of obj.
func Get(obj any, name string) (any, error) {
	return current().Get(obj, name)
}

// Set writes value to attribute name of obj.
func Set(obj any, name string, value any) error {
	return current().Set(obj, name, value)
}

// Exists reports whether attribute name of obj is readable and not nil.
func Exists(obj any, name string) bool {
	return current().Exists(obj, name)
}

// Clear sets attribute name of obj to the absent value.
func Clear(obj any, name string) error {
	return current().Clear(obj, name)
}

// Configure applies values to obj in order, stopping at the first error.
func Configure(obj any, values Assignments) error {
	return current().Configure(obj, values)
}

// Construct applies values (when any) and then runs the init hook of obj.
func Construct(obj any, values Assignments) error {
	return current().Construct(obj, values)
}

// Bind returns the uniform Get/Set/Exists/Clear surface of obj.
// The binding resolves against the snapshot current at call time.
func Bind(obj any) apis.Object {
	return current().Bind(obj)
}

// Resolve returns the accessors of attribute name on obj's runtime type.
func Resolve(obj any, name string) apis.Accessor {
	s := st.Load()
	return s.res.Resolve(obj, name, s.cfg)
}

// AccessOf returns the access mode of attribute name on obj.
func AccessOf(obj any, name string) apis.Access {
	return Resolve(obj, name).Access()
}

// Register adds a property table for t to the global registry.
func Register(t reflect.Type, tbl apis.Table) error {
	return st.Load().reg.Register(t, tbl)
}

// RegisterFor adds a property table for T to the global registry.
func RegisterFor[T any](tbl apis.Table) error {
	return Register(reflect.TypeOf((*T)(nil)).Elem(), tbl)
}

// MustRegister is like Register but panics on error. Meant for package init.
func MustRegister(t reflect.Type, tbl apis.Table) {
	if err := Register(t, tbl); err != nil {
		panic(err)
	}
}

// current returns a facade over the latest published snapshot.
func current() facade.Facade {
	s := st.Load()
	return facade.New(s.res, s.cfg)
}

// SetAll explicitly sets all global state components.
//
// Nil arguments leave the corresponding component unchanged (registry and
// resolver are rebuilt and unpinned); non-nil registry and resolver are pinned.
func SetAll(cfg *apis.Config, reg apis.Registry, res apis.Resolver, bld apis.Builder) {
	swap("all", func(old *state) *state {
		next := &state{cfg: old.cfg, bld: old.bld}
		if cfg != nil {
			next.cfg = config.Normalize(*cfg)
		}
		if bld != nil {
			next.bld = bld
		}
		next.reg, next.preg = reg, reg != nil
		next.res, next.pres = res, res != nil
		next.rebuild(old)
		return next
	})
}

// Config returns the global configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global configuration and rebuilds non-pinned layers.
// An empty SetterPrefix is replaced by config.DefaultSetterPrefix.
func SetConfig(cfg apis.Config) {
	swap("config", func(old *state) *state {
		next := *old
		next.cfg = config.Normalize(cfg)
		next.rebuild(old)
		return &next
	})
}

// Registry returns the global registry.
func Registry() apis.Registry {
	return st.Load().reg
}

// SetRegistry pins reg as the global registry and rebuilds the resolver
// unless it is pinned.
func SetRegistry(reg apis.Registry) {
	if reg == nil {
		return
	}
	swap("registry", func(old *state) *state {
		next := *old
		next.reg, next.preg = reg, true
		next.rebuild(old)
		return &next
	})
}

// Resolver returns the global resolver.
func Resolver() apis.Resolver {
	return st.Load().res
}

// SetResolver pins res as the global resolver.
func SetResolver(res apis.Resolver) {
	if res == nil {
		return
	}
	swap("resolver", func(old *state) *state {
		next := *old
		next.res, next.pres = res, true
		return &next
	})
}

// Builder returns the global builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global builder and rebuilds non-pinned layers with it.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}
	swap("builder", func(old *state) *state {
		next := *old
		next.bld = b
		next.rebuild(old)
		return &next
	})
}

// IsRegistryPinned returns whether the global registry is pinned.
func IsRegistryPinned() bool {
	return st.Load().preg
}

// PinRegistry stops automatic rebuilds of the global registry.
func PinRegistry() { setPins(ptr(true), nil) }

// UnpinRegistry re-enables automatic rebuilds of the global registry.
func UnpinRegistry() { setPins(ptr(false), nil) }

// IsResolverPinned returns whether the global resolver is pinned.
func IsResolverPinned() bool {
	return st.Load().pres
}

// PinResolver stops automatic rebuilds of the global resolver.
func PinResolver() { setPins(nil, ptr(true)) }

// UnpinResolver re-enables automatic rebuilds of the global resolver.
func UnpinResolver() { setPins(nil, ptr(false)) }

func setPins(preg, pres *bool) {
	swap("pins", func(old *state) *state {
		next := *old
		if preg != nil {
			next.preg = *preg
		}
		if pres != nil {
			next.pres = *pres
		}
		return &next
	})
}

func ptr(b bool) *bool { return &b }

// swap builds a new snapshot from the current one under buildMu and
// publishes it. Builders returning nil layers panic before publication.
func swap(reason string, build func(old *state) *state) {
	buildMu.Lock()
	defer buildMu.Unlock()

	next := build(st.Load())
	if next.reg == nil {
		panic(ErrNilRegistry)
	}
	if next.res == nil {
		panic(ErrNilResolver)
	}
	st.Store(next)

	logger.Logger().WithFields(logrus.Fields{
		"reason":          reason,
		"tables":          next.reg.Count(),
		"registry_pinned": next.preg,
		"resolver_pinned": next.pres,
	}).Debug("vprop snapshot published")
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global state.
var st atomic.Pointer[state]

// state is the global snapshot.
// Immutable once published via st.Store; writers copy, modify and swap.
type state struct {
	// cfg is the global configuration.
	cfg apis.Config
	// reg is the global registry.
	reg apis.Registry
	// res is the global resolver.
	res apis.Resolver
	// bld is the global builder.
	bld apis.Builder
	// preg indicates whether the registry is pinned.
	preg bool
	// pres indicates whether the resolver is pinned.
	pres bool
}

// rebuild rebuilds the non-pinned layers of s with its own builder and
// config, migrating from old.
func (s *state) rebuild(old *state) {
	if !s.preg {
		s.reg = s.bld.BuildRegistry(s.cfg, old.reg)
	}
	if !s.pres {
		s.res = s.bld.BuildResolver(s.cfg, s.reg, old.res)
	}
}
