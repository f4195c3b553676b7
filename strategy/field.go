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

// ErrNilReceiver is returned when a field is accessed through a nil pointer.
var ErrNilReceiver = errors.New("vprop(strategy): nil pointer receiver")

// NewFieldStrategy creates an apis.Strategy that exposes exported struct
// fields as plain pass-through storage.
func NewFieldStrategy() apis.Strategy {
	return fieldStrategy{}
}

// fieldStrategy is the last resort of the chain: accessors always win over a
// field of the same name. Fields of a struct reached through a pointer are
// read-write; fields of a struct value are read-only.
type fieldStrategy struct{}

// Ensure fieldStrategy implements apis.Strategy.
var _ apis.Strategy = (*fieldStrategy)(nil)

type fieldKey struct {
	t    reflect.Type
	name string
}

// fieldCache caches field index paths by fieldKey. Absent fields are not cached.
var fieldCache sync.Map // key: fieldKey, val: []int

// TryResolve resolves name against the fields of v's runtime type.
func (s fieldStrategy) TryResolve(v any, name string, cfg apis.Config) (apis.Accessor, bool) {
	if v == nil {
		return apis.Accessor{}, false
	}
	return s.TryResolveType(reflect.TypeOf(v), name, cfg)
}

// TryResolveType resolves name against the exported fields of t (or *t).
func (fieldStrategy) TryResolveType(t reflect.Type, name string, cfg apis.Config) (apis.Accessor, bool) {
	if t == nil || !cfg.Fields || name == "" {
		return apis.Accessor{}, false
	}
	index := fieldOf(t, name)
	if index == nil {
		return apis.Accessor{}, false
	}

	acc := apis.Accessor{Getter: fieldGetter(t, index)}
	if t.Kind() == reflect.Ptr {
		acc.Setter = fieldSetter(t, index)
	}
	return acc, true
}

// fieldOf returns the index path of the exported field for name, or nil.
func fieldOf(t reflect.Type, name string) []int {
	key := fieldKey{t: t, name: name}
	if v, ok := fieldCache.Load(key); ok {
		return v.([]int)
	}

	var index []int
	if base := uref.Indirect(t); base.Kind() == reflect.Struct {
		if f, ok := base.FieldByName(uref.UpperFirst(name)); ok && f.IsExported() {
			index = f.Index
		}
	}

	if index != nil {
		fieldCache.Store(key, index)
	}
	return index
}

func fieldGetter(t reflect.Type, index []int) apis.Getter {
	return func(obj any) (any, error) {
		f, err := field(obj, t, index)
		if err != nil {
			return nil, err
		}
		return f.Interface(), nil
	}
}

func fieldSetter(t reflect.Type, index []int) apis.Setter {
	return func(obj any, value any) error {
		f, err := field(obj, t, index)
		if err != nil {
			return err
		}
		if !f.CanSet() {
			return fmt.Errorf("%w: field %s is not settable", uref.ErrInvalidValue, uref.TypeNameOf(t))
		}
		in, err := uref.Coerce(value, f.Type())
		if err != nil {
			return err
		}
		f.Set(in)
		return nil
	}
}

func field(obj any, t reflect.Type, index []int) (reflect.Value, error) {
	rv, err := receiver(obj, t)
	if err != nil {
		return reflect.Value{}, err
	}
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return reflect.Value{}, ErrNilReceiver
		}
		rv = rv.Elem()
	}
	f, err := rv.FieldByIndexErr(index)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("%w: %v", ErrNilReceiver, err)
	}
	return f, nil
}
