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

package registry

import (
	"errors"
	"reflect"
	"sync"

	"github.com/sirupsen/logrus"

	"dirpx.dev/vprop/apis"
	"dirpx.dev/vprop/internal/logger"
	uref "dirpx.dev/vprop/utils/reflect"
)

var (
	// ErrNilType is returned when a nil reflect.Type is provided.
	ErrNilType = errors.New("vprop(registry): nil reflect.Type provided")
	// ErrNilTable is returned when a nil table is provided.
	ErrNilTable = errors.New("vprop(registry): nil table provided")
	// ErrConflictingRegistration indicates an attempt to re-register
	// a type with a different table.
	ErrConflictingRegistration = errors.New("vprop(registry): conflicting type registration")
)

// New constructs a Registry keyed by the nearest named type (pointers unwrapped).
func New() apis.Registry {
	return &registry{}
}

// registry is a simple Registry implementation backed by sync.Map.
type registry struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps reflect.Type to its registered table.
	m sync.Map // map[reflect.Type]apis.Table
	// count tracks the number of registered entries.
	count int
}

// Register associates the nearest named type of t with tbl.
// It is idempotent for the same (type, table) pair.
func (r *registry) Register(t reflect.Type, tbl apis.Table) error {
	// Validate inputs early.
	if t == nil {
		return ErrNilType
	}
	if tbl == nil {
		return ErrNilTable
	}
	// Normalize to the nearest named type.
	b, err := uref.Normalize(t)
	if err != nil {
		return err
	}
	// Fast read path: idempotency / conflict check without locking.
	if old, ok := r.m.Load(b); ok {
		return r.check(b, old.(apis.Table), tbl)
	}
	// Write path: guard with a mutex to keep counter consistent and avoid ABA.
	r.mu.Lock()
	defer r.mu.Unlock()
	// Re-check under lock in case another goroutine stored meanwhile.
	if old, ok := r.m.Load(b); ok {
		return r.check(b, old.(apis.Table), tbl)
	}
	r.m.Store(b, tbl)
	r.count++
	logger.Logger().WithFields(logrus.Fields{
		"type":  uref.TypeNameOf(b),
		"props": len(tbl.Names()),
	}).Debug("property table registered")
	return nil
}

// check decides whether re-registering b with tbl is idempotent.
func (r *registry) check(b reflect.Type, old, tbl apis.Table) error {
	if sameTable(old, tbl) {
		return nil
	}
	logger.Logger().WithField("type", uref.TypeNameOf(b)).Warn("conflicting property table registration")
	return ErrConflictingRegistration
}

// sameTable compares tables by identity; non-comparable tables never match.
func sameTable(a, b apis.Table) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// Lookup returns the table for a type if present.
func (r *registry) Lookup(t reflect.Type) (apis.Table, bool) {
	if t == nil {
		return nil, false
	}
	nt, err := uref.Normalize(t)
	if err != nil {
		return nil, false
	}
	if v, ok := r.m.Load(nt); ok {
		return v.(apis.Table), true
	}
	return nil, false
}

// Entries returns a snapshot for diagnostics/docs (order is unspecified).
func (r *registry) Entries() []apis.Entry {
	entries := make([]apis.Entry, 0, r.Count())
	r.m.Range(func(key, value any) bool {
		entries = append(entries, apis.Entry{
			Type:  key.(reflect.Type),
			Table: value.(apis.Table),
		})
		return true
	})
	return entries
}

// Count returns the number of registered entries.
func (r *registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Reset clears all registered entries.
func (r *registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m.Clear()
	r.count = 0
}
