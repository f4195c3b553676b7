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

package reflect

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrInvalidValue is returned when a value cannot be passed to a setter or field.
var ErrInvalidValue = errors.New("reflect: invalid value")

// errorType is the reflect.Type of the error interface.
var errorType = reflect.TypeOf((*error)(nil)).Elem()

// ErrorType returns the reflect.Type of the error interface.
func ErrorType() reflect.Type { return errorType }

// IsAbsent reports whether v is the absent-value sentinel: a nil interface or
// a nil pointer, map, slice, func, chan or interface.
func IsAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// Coerce converts v into a value assignable to type to.
//
// nil yields the zero value of to. Assignable values pass through unchanged.
// Numeric values convert between numeric kinds when the value fits.
// Everything else fails with ErrInvalidValue.
func Coerce(v any, to reflect.Type) (reflect.Value, error) {
	if v == nil {
		return reflect.Zero(to), nil
	}
	rv := reflect.ValueOf(v)
	if rv.Type().AssignableTo(to) {
		return rv, nil
	}
	if isNumeric(rv.Kind()) && isNumeric(to.Kind()) && fits(rv, to) {
		return rv.Convert(to), nil
	}
	return reflect.Value{}, fmt.Errorf("%w: cannot use %s as %s", ErrInvalidValue, rv.Type(), to)
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// fits reports whether numeric rv converts to numeric type to without loss of range.
func fits(rv reflect.Value, to reflect.Type) bool {
	z := reflect.Zero(to)
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		switch {
		case rv.CanInt():
			return !z.OverflowInt(rv.Int())
		case rv.CanUint():
			u := rv.Uint()
			return u <= 1<<63-1 && !z.OverflowInt(int64(u))
		default:
			f := rv.Float()
			return f == float64(int64(f)) && !z.OverflowInt(int64(f))
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		switch {
		case rv.CanInt():
			i := rv.Int()
			return i >= 0 && !z.OverflowUint(uint64(i))
		case rv.CanUint():
			return !z.OverflowUint(rv.Uint())
		default:
			f := rv.Float()
			return f >= 0 && f == float64(uint64(f)) && !z.OverflowUint(uint64(f))
		}
	default:
		switch {
		case rv.CanInt():
			return true
		case rv.CanUint():
			return true
		default:
			return !z.OverflowFloat(rv.Float())
		}
	}
}
