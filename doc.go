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

// Package vprop gives Go values virtual properties.
//
// Callers read and write named attributes through one uniform surface while
// the value decides, per attribute, whether the access is served by an
// accessor, by a plain exported field, or rejected:
//
//	v, err := vprop.Get(obj, "name")
//	err = vprop.Set(obj, "name", "Ada")
//	ok := vprop.Exists(obj, "name")
//	err = vprop.Clear(obj, "name")
//
// # Resolution
//
// An attribute is resolved against the runtime type of the value passed in,
// so accessors declared on an outer type and accessors promoted from
// embedded types are both visible. The resolver tries its strategies in
// priority order and the first one that knows the attribute supplies both
// directions:
//
//  1. apis.Propertied: the value returns its own apis.Table.
//  2. Registry: a table registered for the type (see package table).
//  3. Methods: "Get"+Name and "Set"+Name located by reflection. The getter
//     takes no arguments and returns T or (T, error); the setter takes one
//     argument and returns nothing or error. Prefixes are configurable; an
//     empty getter prefix selects Go-style "Name()" getters.
//  4. Fields: exported struct fields as pass-through storage. Fields of a
//     struct reached through a pointer are read-write, otherwise read-only.
//
// An accessor always wins over an exported field of the same name.
//
// Once resolved, the access mode decides the outcome:
//
//	             read             write            exists         clear
//	read-write   getter           setter           getter != nil  setter(nil)
//	read-only    getter           InvalidCall      getter != nil  InvalidCall
//	write-only   InvalidCall      setter           false          setter(nil)
//	unknown      UnknownProperty  UnknownProperty  false          no-op
//
// # Errors
//
// UnknownPropertyError ("Getting unknown property pkg.Type::name") and
// InvalidCallError ("Setting read-only property pkg.Type::name") are
// distinguished with errors.Is against ErrUnknownProperty and
// ErrInvalidCall. Errors returned by accessors are wrapped and passed
// through unchanged otherwise.
//
// # Construction
//
// Construct applies an ordered Assignments list (when non-empty) and then
// calls the Init hook. Configure stops at the first failing assignment and
// does not roll back the ones already applied. Package assign builds
// Assignments from pairs, maps and YAML documents.
//
// # Global state
//
// Config, Registry, Resolver and Builder live in one immutable snapshot that
// is published atomically. Lookups are lock-free; SetConfig, SetRegistry,
// SetResolver, SetBuilder and SetAll build a new snapshot under a mutex.
// SetRegistry and SetResolver pin their layer so later rebuilds keep it
// until UnpinRegistry or UnpinResolver.
//
// The initial Config is read from the environment (VPROP_GETTER_PREFIX,
// VPROP_SETTER_PREFIX, VPROP_GO_GETTERS, VPROP_METHODS, VPROP_FIELDS);
// VPROP_LOG_LEVEL controls the diagnostic logger.
//
// Property operations do not synchronize access to the object itself;
// callers serialize access to a given value.
package vprop
