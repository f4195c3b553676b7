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

// Package facade implements the property operations on top of an
// apis.Resolver: Get, Set, Exists, Clear, Configure and Construct.
//
// Every operation resolves the attribute against the runtime type of obj,
// asks resolver.Decide what to do for its mode, and then either invokes the
// accessor or returns one of the two property errors. Errors are returned
// at the point of violation; the facade never retries, aggregates or logs.
package facade

import (
	"fmt"
	"reflect"

	"dirpx.dev/vprop/apis"
	"dirpx.dev/vprop/resolver"
	uref "dirpx.dev/vprop/utils/reflect"
)

// Facade binds a Resolver to the Config it resolves with.
// The zero value is not usable; construct with New.
type Facade struct {
	res apis.Resolver
	cfg apis.Config
}

// New returns a Facade over res and cfg.
func New(res apis.Resolver, cfg apis.Config) Facade {
	return Facade{res: res, cfg: cfg}
}

// Get reads attribute name of obj.
func (f Facade) Get(obj any, name string) (any, error) {
	acc, err := f.resolve(obj, name)
	if err != nil {
		return nil, err
	}
	switch resolver.Decide(acc, apis.ModeRead) {
	case apis.DecisionGet:
		v, err := acc.Getter(obj)
		if err != nil {
			return nil, accessorError(apis.ModeRead, obj, name, err)
		}
		return v, nil
	case apis.DecisionWriteOnly:
		return nil, invalidCall(apis.ModeRead, apis.WriteOnly, obj, name)
	default:
		return nil, unknown(apis.ModeRead, obj, name)
	}
}

// Set writes value to attribute name of obj.
//
// Setters declared on *T and fields of T are only writable through a *T.
// Writing them through a T value fails with the usual property error joined
// with ErrNotAddressable.
func (f Facade) Set(obj any, name string, value any) error {
	acc, err := f.resolve(obj, name)
	if err != nil {
		return err
	}
	switch resolver.Decide(acc, apis.ModeWrite) {
	case apis.DecisionSet:
		if err := acc.Setter(obj, value); err != nil {
			return accessorError(apis.ModeWrite, obj, name, err)
		}
		return nil
	case apis.DecisionReadOnly:
		return f.addressable(invalidCall(apis.ModeWrite, apis.ReadOnly, obj, name), obj, name)
	default:
		return f.addressable(unknown(apis.ModeWrite, obj, name), obj, name)
	}
}

// Exists reports whether attribute name of obj has a getter whose result is
// not the absent value (nil). It never fails: unknown and write-only
// attributes, and getters that return an error, all report false.
func (f Facade) Exists(obj any, name string) bool {
	acc, err := f.resolve(obj, name)
	if err != nil {
		return false
	}
	if resolver.Decide(acc, apis.ModeExists) != apis.DecisionGet {
		return false
	}
	v, err := acc.Getter(obj)
	if err != nil {
		return false
	}
	return !uref.IsAbsent(v)
}

// Clear passes the absent value to the setter of attribute name. Clearing a
// read-only attribute fails; clearing an unknown attribute does nothing.
func (f Facade) Clear(obj any, name string) error {
	acc, err := f.resolve(obj, name)
	if err != nil {
		return err
	}
	switch resolver.Decide(acc, apis.ModeClear) {
	case apis.DecisionSet:
		if err := acc.Setter(obj, nil); err != nil {
			return accessorError(apis.ModeClear, obj, name, err)
		}
		return nil
	case apis.DecisionReadOnly:
		return f.addressable(invalidCall(apis.ModeClear, apis.ReadOnly, obj, name), obj, name)
	default:
		return nil
	}
}

// Configure applies values in order through Set. The first failure stops
// the run and is returned; assignments applied before it stay applied.
func (f Facade) Configure(obj any, values apis.Assignments) error {
	if isNil(obj) {
		return ErrNilObject
	}
	for _, kv := range values {
		if err := f.Set(obj, kv.Name, kv.Value); err != nil {
			return err
		}
	}
	return nil
}

// Construct finishes construction of obj: non-empty values are applied
// first (through apis.Configurer when obj implements it, otherwise through
// Configure), then the init hook runs. The init hook always runs once
// configuration succeeded, including when values is empty.
func (f Facade) Construct(obj any, values apis.Assignments) error {
	if isNil(obj) {
		return ErrNilObject
	}
	if len(values) > 0 {
		var err error
		if c, ok := obj.(apis.Configurer); ok {
			err = c.Configure(values)
		} else {
			err = f.Configure(obj, values)
		}
		if err != nil {
			return err
		}
	}
	switch h := obj.(type) {
	case apis.InitializerE:
		if err := h.Init(); err != nil {
			return fmt.Errorf("init %s: %w", uref.TypeName(obj), err)
		}
	case apis.Initializer:
		h.Init()
	}
	return nil
}

// Bind returns the uniform apis.Object surface of obj.
func (f Facade) Bind(obj any) apis.Object {
	return bound{f: f, obj: obj}
}

func (f Facade) resolve(obj any, name string) (apis.Accessor, error) {
	if isNil(obj) {
		return apis.Accessor{}, ErrNilObject
	}
	if name == "" {
		return apis.Accessor{}, ErrEmptyName
	}
	return f.res.Resolve(obj, name, f.cfg), nil
}

// addressable joins ErrNotAddressable to err when obj is a non-pointer value
// and the pointer to its type has a setter for name.
func (f Facade) addressable(err error, obj any, name string) error {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Ptr {
		return err
	}
	if acc := f.res.ResolveType(reflect.PointerTo(t), name, f.cfg); acc.Setter == nil {
		return err
	}
	return fmt.Errorf("%w: %w", err, ErrNotAddressable)
}

// isNil reports whether obj is an untyped nil or a nil pointer.
func isNil(obj any) bool {
	if obj == nil {
		return true
	}
	rv := reflect.ValueOf(obj)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}

func unknown(mode apis.Mode, obj any, name string) error {
	return &UnknownPropertyError{Op: mode.Op(), Type: uref.TypeName(obj), Name: name}
}

func invalidCall(mode apis.Mode, access apis.Access, obj any, name string) error {
	return &InvalidCallError{Op: mode.Op(), Access: access, Type: uref.TypeName(obj), Name: name}
}

func accessorError(mode apis.Mode, obj any, name string, err error) error {
	return fmt.Errorf("%s property %s::%s: %w", mode.Op(), uref.TypeName(obj), name, err)
}

// bound is the apis.Object returned by Bind.
type bound struct {
	f   Facade
	obj any
}

func (b bound) Get(name string) (any, error)     { return b.f.Get(b.obj, name) }
func (b bound) Set(name string, value any) error { return b.f.Set(b.obj, name, value) }
func (b bound) Exists(name string) bool          { return b.f.Exists(b.obj, name) }
func (b bound) Clear(name string) error          { return b.f.Clear(b.obj, name) }
