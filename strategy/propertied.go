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
	"reflect"

	"dirpx.dev/vprop/apis"
)

// NewPropertiedStrategy creates an apis.Strategy that uses apis.Propertied.
func NewPropertiedStrategy() apis.Strategy {
	return &propertiedStrategy{}
}

// propertiedStrategy is the zero-reflection fast path: if v implements
// apis.Propertied and its table declares name, that pair wins.
type propertiedStrategy struct{}

// Ensure propertiedStrategy implements apis.Strategy.
var _ apis.Strategy = (*propertiedStrategy)(nil)

// TryResolve checks if v implements apis.Propertied and looks name up in its table.
func (*propertiedStrategy) TryResolve(v any, name string, _ apis.Config) (apis.Accessor, bool) {
	p, ok := v.(apis.Propertied)
	if !ok {
		return apis.Accessor{}, false
	}
	return lookup(p.Properties(), name)
}

// TryResolveType always returns false: Propertied requires an instance.
func (*propertiedStrategy) TryResolveType(_ reflect.Type, _ string, _ apis.Config) (apis.Accessor, bool) {
	return apis.Accessor{}, false
}

// lookup returns the accessors for name in tbl, ignoring nil tables and
// entries with no accessor at all.
func lookup(tbl apis.Table, name string) (apis.Accessor, bool) {
	if tbl == nil {
		return apis.Accessor{}, false
	}
	acc, ok := tbl.Lookup(name)
	if !ok || !acc.Known() {
		return apis.Accessor{}, false
	}
	return acc, true
}
