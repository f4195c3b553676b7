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

// Package assign builds ordered apis.Assignments for Configure and Construct.
package assign

import (
	"errors"
	"fmt"
	"sort"

	"dirpx.dev/vprop/apis"
)

var (
	// ErrOddPairs is returned by Pairs when a key has no value.
	ErrOddPairs = errors.New("assign: odd number of key/value arguments")
	// ErrKeyType is returned when a key is not a non-empty string.
	ErrKeyType = errors.New("assign: key must be a non-empty string")
)

// Of returns a single-entry list, a shorthand for one assignment.
func Of(name string, value any) apis.Assignments {
	return apis.Assignments{{Name: name, Value: value}}
}

// Pairs builds assignments from alternating name/value arguments, in order.
func Pairs(kv ...any) (apis.Assignments, error) {
	if len(kv)%2 != 0 {
		return nil, ErrOddPairs
	}
	out := make(apis.Assignments, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		name, ok := kv[i].(string)
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: argument %d is %T", ErrKeyType, i, kv[i])
		}
		out = append(out, apis.Assignment{Name: name, Value: kv[i+1]})
	}
	return out, nil
}

// MustPairs is like Pairs but panics on error.
func MustPairs(kv ...any) apis.Assignments {
	out, err := Pairs(kv...)
	if err != nil {
		panic(err)
	}
	return out
}

// FromMap converts m into assignments sorted by name. Go maps carry no
// insertion order, so sorting keeps application deterministic.
func FromMap(m map[string]any) apis.Assignments {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)

	out := make(apis.Assignments, len(names))
	for i, k := range names {
		out[i] = apis.Assignment{Name: k, Value: m[k]}
	}
	return out
}
