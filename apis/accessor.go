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

import "fmt"

// Getter reads a virtual property from obj.
type Getter func(obj any) (any, error)

// Setter writes value to a virtual property of obj.
type Setter func(obj any, value any) error

// Accessor is the resolved read/write pair for one attribute.
// Either side may be nil; a zero Accessor means the attribute is unknown.
type Accessor struct {
	Getter Getter
	Setter Setter
}

// Access returns the access mode implied by the available accessors.
func (a Accessor) Access() Access {
	switch {
	case a.Getter != nil && a.Setter != nil:
		return ReadWrite
	case a.Getter != nil:
		return ReadOnly
	case a.Setter != nil:
		return WriteOnly
	default:
		return Unknown
	}
}

// Known reports whether at least one accessor is present.
func (a Accessor) Known() bool {
	return a.Getter != nil || a.Setter != nil
}

// Access describes which directions an attribute supports.
type Access uint8

const (
	Unknown Access = iota
	ReadOnly
	WriteOnly
	ReadWrite
)

func (a Access) String() string {
	switch a {
	case ReadOnly:
		return "read-only"
	case WriteOnly:
		return "write-only"
	case ReadWrite:
		return "read-write"
	default:
		return "unknown"
	}
}

// Mode is the kind of access a caller requests.
type Mode uint8

const (
	ModeRead Mode = iota
	ModeWrite
	ModeExists
	ModeClear
)

// Op returns the verb used in property error messages for m.
func (m Mode) Op() string {
	switch m {
	case ModeRead, ModeExists:
		return "Getting"
	case ModeWrite:
		return "Setting"
	case ModeClear:
		return "Unsetting"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

func (m Mode) String() string {
	switch m {
	case ModeRead:
		return "read"
	case ModeWrite:
		return "write"
	case ModeExists:
		return "exists"
	case ModeClear:
		return "clear"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Decision is the outcome of dispatching a Mode against an Accessor.
type Decision uint8

const (
	// DecisionGet invokes the getter.
	DecisionGet Decision = iota
	// DecisionSet invokes the setter.
	DecisionSet
	// DecisionWriteOnly rejects a read of a write-only attribute.
	DecisionWriteOnly
	// DecisionReadOnly rejects a write or clear of a read-only attribute.
	DecisionReadOnly
	// DecisionUnknown rejects a read or write of an unknown attribute.
	DecisionUnknown
	// DecisionAbsent is the non-raising outcome: exists is false, clear is a no-op.
	DecisionAbsent
)

func (d Decision) String() string {
	switch d {
	case DecisionGet:
		return "get"
	case DecisionSet:
		return "set"
	case DecisionWriteOnly:
		return "reject-write-only"
	case DecisionReadOnly:
		return "reject-read-only"
	case DecisionUnknown:
		return "reject-unknown"
	case DecisionAbsent:
		return "absent"
	default:
		return fmt.Sprintf("Decision(%d)", uint8(d))
	}
}
