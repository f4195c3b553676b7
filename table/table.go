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

// Package table builds explicit, type-checked property tables.
//
// A Table maps attribute names to accessor pairs without any runtime method
// lookup by name. Typed helpers adapt ordinary method expressions:
//
//	var personProps = table.New().
//		Define("name", table.Reader((*Person).Name), table.Writer((*Person).SetName)).
//		Define("age", table.Reader((*Person).Age), nil)
//
//	func init() { vprop.MustRegister(reflect.TypeOf(Person{}), personProps) }
//
// Tables are built once and must not be modified after they are published to
// a registry or returned from apis.Propertied.
package table

import (
	"errors"
	"fmt"
	"reflect"

	"dirpx.dev/vprop/apis"
	uref "dirpx.dev/vprop/utils/reflect"
)

// ErrReceiver is returned when an accessor is invoked on a value of the wrong type.
var ErrReceiver = errors.New("table: receiver type mismatch")

// Table is an ordered apis.Table.
type Table struct {
	props map[string]apis.Accessor
	order []string
}

// Ensure Table implements apis.Table.
var _ apis.Table = (*Table)(nil)

// New returns an empty Table.
func New() *Table {
	return &Table{props: make(map[string]apis.Accessor)}
}

// Define declares attribute name with the given accessors and returns t.
// Either side may be nil. Defining a name twice replaces the accessors but
// keeps the original declaration position. Panics on an empty name or when
// both accessors are nil.
func (t *Table) Define(name string, get apis.Getter, set apis.Setter) *Table {
	if name == "" {
		panic("table: empty attribute name")
	}
	if get == nil && set == nil {
		panic(fmt.Sprintf("table: attribute %q has no accessors", name))
	}
	if _, ok := t.props[name]; !ok {
		t.order = append(t.order, name)
	}
	t.props[name] = apis.Accessor{Getter: get, Setter: set}
	return t
}

// Lookup returns the accessor pair registered under name.
func (t *Table) Lookup(name string) (apis.Accessor, bool) {
	acc, ok := t.props[name]
	return acc, ok
}

// Names returns the declared attribute names in declaration order.
func (t *Table) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Reader adapts a typed read accessor, typically a method expression.
func Reader[T, V any](fn func(T) V) apis.Getter {
	return func(obj any) (any, error) {
		recv, ok := obj.(T)
		if !ok {
			return nil, receiverError[T](obj)
		}
		return fn(recv), nil
	}
}

// ReaderE adapts a typed read accessor that can fail.
func ReaderE[T, V any](fn func(T) (V, error)) apis.Getter {
	return func(obj any) (any, error) {
		recv, ok := obj.(T)
		if !ok {
			return nil, receiverError[T](obj)
		}
		return fn(recv)
	}
}

// Writer adapts a typed write accessor, typically a method expression.
// The incoming value is coerced to V; nil becomes the zero V.
func Writer[T, V any](fn func(T, V)) apis.Setter {
	return WriterE(func(recv T, v V) error {
		fn(recv, v)
		return nil
	})
}

// WriterE adapts a typed write accessor that can fail.
func WriterE[T, V any](fn func(T, V) error) apis.Setter {
	to := reflect.TypeOf((*V)(nil)).Elem()
	return func(obj any, value any) error {
		recv, ok := obj.(T)
		if !ok {
			return receiverError[T](obj)
		}
		if value == nil {
			var zero V
			return fn(recv, zero)
		}
		if v, ok := value.(V); ok {
			return fn(recv, v)
		}
		rv, err := uref.Coerce(value, to)
		if err != nil {
			return err
		}
		return fn(recv, rv.Interface().(V))
	}
}

func receiverError[T any](obj any) error {
	return fmt.Errorf("%w: got %T, want %s", ErrReceiver, obj, reflect.TypeOf((*T)(nil)).Elem())
}
