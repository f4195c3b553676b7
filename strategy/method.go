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

package strategy

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"dirpx.dev/vprop/apis"
	uref "dirpx.dev/vprop/utils/reflect"
)

// ErrReceiver is returned when a resolved accessor is invoked on a value
// whose type differs from the type it was resolved against.
var ErrReceiver = errors.New("vprop(strategy): receiver type mismatch")

// NewMethodStrategy creates an apis.Strategy that locates accessor methods
// by name (GetterPrefix/SetterPrefix + upper-cased attribute) via reflection.
func NewMethodStrategy() apis.Strategy {
	return methodStrategy{}
}

// methodStrategy resolves against the method set of the runtime type, so
// methods promoted from embedded types and methods of the outer type are
// both visible. Methods declared on *T are not in the method set of T.
// Successful lookups are memoized per (type, name, prefixes); misses are not,
// so unknown names cannot grow the cache.
type methodStrategy struct{}

// Ensure methodStrategy implements apis.Strategy.
var _ apis.Strategy = (*methodStrategy)(nil)

// methodKey ensures memoization respects all config knobs that affect resolution.
type methodKey struct {
	t            reflect.Type
	name         string
	getterPrefix string
	setterPrefix string
}

// methodPair is the memoized lookup result. Index -1 means absent.
type methodPair struct {
	getter    int
	getterErr bool
	setter    int
	setterErr bool
	setterIn  reflect.Type
}

// methodCache caches found method pairs by methodKey.
var methodCache sync.Map // key: methodKey, val: methodPair

// TryResolve resolves name against v's runtime type.
func (s methodStrategy) TryResolve(v any, name string, cfg apis.Config) (apis.Accessor, bool) {
	if v == nil {
		return apis.Accessor{}, false
	}
	return s.TryResolveType(reflect.TypeOf(v), name, cfg)
}

// TryResolveType resolves name against the method set of t.
func (methodStrategy) TryResolveType(t reflect.Type, name string, cfg apis.Config) (apis.Accessor, bool) {
	if t == nil || !cfg.Methods || name == "" {
		return apis.Accessor{}, false
	}
	p := methodsOf(t, name, cfg)

	var acc apis.Accessor
	if p.getter >= 0 {
		acc.Getter = methodGetter(t, p)
	}
	if p.setter >= 0 {
		acc.Setter = methodSetter(t, p)
	}
	return acc, acc.Known()
}

// methodsOf finds the getter and setter methods for name on t with memoization.
func methodsOf(t reflect.Type, name string, cfg apis.Config) methodPair {
	key := methodKey{t: t, name: name, getterPrefix: cfg.GetterPrefix, setterPrefix: cfg.SetterPrefix}
	if v, ok := methodCache.Load(key); ok {
		return v.(methodPair)
	}

	p := methodPair{getter: -1, setter: -1}
	errT := uref.ErrorType()

	// Method types include the receiver as In(0).
	if m, ok := t.MethodByName(uref.AccessorName(cfg.GetterPrefix, name)); ok {
		mt := m.Type
		switch {
		case mt.NumIn() != 1:
		case mt.NumOut() == 1:
			p.getter = m.Index
		case mt.NumOut() == 2 && mt.Out(1) == errT:
			p.getter, p.getterErr = m.Index, true
		}
	}
	if m, ok := t.MethodByName(uref.AccessorName(cfg.SetterPrefix, name)); ok {
		mt := m.Type
		switch {
		case mt.NumIn() != 2 || mt.IsVariadic():
		case mt.NumOut() == 0:
			p.setter, p.setterIn = m.Index, mt.In(1)
		case mt.NumOut() == 1 && mt.Out(0) == errT:
			p.setter, p.setterIn, p.setterErr = m.Index, mt.In(1), true
		}
	}

	if p.getter >= 0 || p.setter >= 0 {
		methodCache.Store(key, p)
	}
	return p
}

func methodGetter(t reflect.Type, p methodPair) apis.Getter {
	return func(obj any) (any, error) {
		rv, err := receiver(obj, t)
		if err != nil {
			return nil, err
		}
		out := rv.Method(p.getter).Call(nil)
		if p.getterErr && !out[1].IsNil() {
			return nil, out[1].Interface().(error)
		}
		return out[0].Interface(), nil
	}
}

func methodSetter(t reflect.Type, p methodPair) apis.Setter {
	return func(obj any, value any) error {
		rv, err := receiver(obj, t)
		if err != nil {
			return err
		}
		in, err := uref.Coerce(value, p.setterIn)
		if err != nil {
			return err
		}
		out := rv.Method(p.setter).Call([]reflect.Value{in})
		if p.setterErr && !out[0].IsNil() {
			return out[0].Interface().(error)
		}
		return nil
	}
}

func receiver(obj any, t reflect.Type) (reflect.Value, error) {
	rv := reflect.ValueOf(obj)
	if !rv.IsValid() || rv.Type() != t {
		return reflect.Value{}, fmt.Errorf("%w: got %T, want %s", ErrReceiver, obj, t)
	}
	return rv, nil
}
