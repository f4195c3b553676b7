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

package apis

import (
	"reflect"
)

// Resolver coordinates strategies to resolve accessors for attributes.
// Typical chain: Propertied -> Registry -> Methods -> Fields.
type Resolver interface {
	// Resolve returns the accessors of attribute name on v's runtime type.
	// A zero Accessor means the attribute is unknown.
	Resolve(v any, name string, cfg Config) Accessor

	// ResolveType returns the accessors of attribute name on t.
	ResolveType(t reflect.Type, name string, cfg Config) Accessor
}
