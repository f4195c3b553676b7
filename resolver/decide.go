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

package resolver

import "dirpx.dev/vprop/apis"

// Decide maps an access mode onto the available accessors.
//
//	read:   getter -> Get,  setter -> WriteOnly, else Unknown
//	write:  setter -> Set,  getter -> ReadOnly,  else Unknown
//	exists: getter -> Get,  else Absent
//	clear:  setter -> Set,  getter -> ReadOnly,  else Absent
//
// Decide is a pure function; it never invokes an accessor.
func Decide(acc apis.Accessor, mode apis.Mode) apis.Decision {
	hasGet, hasSet := acc.Getter != nil, acc.Setter != nil

	switch mode {
	case apis.ModeRead:
		switch {
		case hasGet:
			return apis.DecisionGet
		case hasSet:
			return apis.DecisionWriteOnly
		}
		return apis.DecisionUnknown

	case apis.ModeWrite:
		switch {
		case hasSet:
			return apis.DecisionSet
		case hasGet:
			return apis.DecisionReadOnly
		}
		return apis.DecisionUnknown

	case apis.ModeExists:
		if hasGet {
			return apis.DecisionGet
		}
		return apis.DecisionAbsent

	case apis.ModeClear:
		switch {
		case hasSet:
			return apis.DecisionSet
		case hasGet:
			return apis.DecisionReadOnly
		}
		return apis.DecisionAbsent
	}
	return apis.DecisionUnknown
}
