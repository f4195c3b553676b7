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

package facade

import (
	"errors"
	"fmt"

	"dirpx.dev/vprop/apis"
)

var (
	// ErrUnknownProperty matches every *UnknownPropertyError via errors.Is.
	ErrUnknownProperty = errors.New("unknown property")
	// ErrInvalidCall matches every *InvalidCallError via errors.Is.
	ErrInvalidCall = errors.New("invalid call")
	// ErrNilObject is returned when a property operation targets a nil object.
	ErrNilObject = errors.New("vprop: nil object")
	// ErrEmptyName is returned when a property operation names no attribute.
	ErrEmptyName = errors.New("vprop: empty property name")
	// ErrNotAddressable is joined to a write failure on a struct value whose
	// pointer type would accept the write.
	ErrNotAddressable = errors.New("vprop: object is not addressable, pass a pointer")
)

// UnknownPropertyError reports a read or write of an attribute that has
// neither a getter nor a setter.
type UnknownPropertyError struct {
	// Op is "Getting" or "Setting".
	Op string
	// Type is the runtime type name of the object.
	Type string
	// Name is the attribute name as given by the caller.
	Name string
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("%s unknown property %s::%s", e.Op, e.Type, e.Name)
}

// Is reports whether target is ErrUnknownProperty.
func (e *UnknownPropertyError) Is(target error) bool {
	return target == ErrUnknownProperty
}

// InvalidCallError reports an access in the wrong direction: reading a
// write-only attribute, or writing or clearing a read-only one.
type InvalidCallError struct {
	// Op is "Getting", "Setting" or "Unsetting".
	Op string
	// Access is apis.WriteOnly or apis.ReadOnly.
	Access apis.Access
	// Type is the runtime type name of the object.
	Type string
	// Name is the attribute name as given by the caller.
	Name string
}

func (e *InvalidCallError) Error() string {
	return fmt.Sprintf("%s %s property %s::%s", e.Op, e.Access, e.Type, e.Name)
}

// Is reports whether target is ErrInvalidCall.
func (e *InvalidCallError) Is(target error) bool {
	return target == ErrInvalidCall
}
