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

// NewRegistryStrategy creates an apis.Strategy that uses the provided apis.Registry.
func NewRegistryStrategy(reg apis.Registry) apis.Strategy {
	return &registryStrategy{reg: reg}
}

// registryStrategy consults the explicit per-type tables of a Registry.
type registryStrategy struct {
	reg apis.Registry
}

// Ensure registryStrategy implements apis.Strategy.
var _ apis.Strategy = (*registryStrategy)(nil)

// TryResolve looks name up in the table registered for v's runtime type.
func (s *registryStrategy) TryResolve(v any, name string, cfg apis.Config) (apis.Accessor, bool) {
	if v == nil {
		return apis.Accessor{}, false
	}
	return s.TryResolveType(reflect.TypeOf(v), name, cfg)
}

// TryResolveType looks name up in the table registered for t.
func (s *registryStrategy) TryResolveType(t reflect.Type, name string, _ apis.Config) (apis.Accessor, bool) {
	if s.reg == nil || t == nil {
		return apis.Accessor{}, false
	}
	tbl, ok := s.reg.Lookup(t)
	if !ok {
		return apis.Accessor{}, false
	}
	return lookup(tbl, name)
}
