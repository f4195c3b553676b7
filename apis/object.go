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

// Object is the uniform property surface of a value.
type Object interface {
	Get(name string) (any, error)
	Set(name string, value any) error
	Exists(name string) bool
	Clear(name string) error
}

// Propertied is implemented by values that carry their own property table.
// It takes precedence over every other resolution strategy.
type Propertied interface {
	Properties() Table
}

// Initializer is the post-construction hook, called after configuration.
type Initializer interface {
	Init()
}

// InitializerE is the fallible variant of Initializer.
type InitializerE interface {
	Init() error
}

// Configurer lets a type take over bulk configuration during construction.
type Configurer interface {
	Configure(values Assignments) error
}

// TypeNamer overrides the type name reported in property errors.
type TypeNamer interface {
	TypeName() string
}

// Assignment is one (attribute, value) pair of a bulk configuration.
type Assignment struct {
	Name  string
	Value any
}

// Assignments is an ordered bulk configuration. Order is application order.
type Assignments []Assignment

// Names returns the attribute names in application order.
func (a Assignments) Names() []string {
	out := make([]string, len(a))
	for i, kv := range a {
		out[i] = kv.Name
	}
	return out
}
