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

// Config carries read-only resolution knobs that influence strategies.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// GetterPrefix is prepended to the upper-cased attribute name to form
	// the read accessor method name ("Get" + "Name" -> "GetName").
	// An empty prefix selects the Go-style getter ("Name").
	GetterPrefix string

	// SetterPrefix is prepended to the upper-cased attribute name to form
	// the write accessor method name. It must not be empty.
	SetterPrefix string

	// Methods enables resolution of accessor methods by name via reflection.
	Methods bool

	// Fields enables pass-through access to exported struct fields.
	// Accessors always take precedence over a field of the same name.
	Fields bool
}
