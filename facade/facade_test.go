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

package facade_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/vprop/apis"
	"dirpx.dev/vprop/builder"
	"dirpx.dev/vprop/config"
	"dirpx.dev/vprop/facade"
	"dirpx.dev/vprop/registry"
)

// fixture has a public field P, a getter-only r, a setter-only w, a
// read-write rw and an init hook.
type fixture struct {
	P any

	r     string
	w     any
	rw    any
	calls []string
}

func (f *fixture) GetR() string {
	f.calls = append(f.calls, "GetR")
	return f.r
}
func (f *fixture) SetW(v any)   { f.calls = append(f.calls, "SetW"); f.w = v }
func (f *fixture) GetRw() any   { return f.rw }
func (f *fixture) SetRw(v any)  { f.rw = v }
func (f *fixture) GetFail() any { return nil }
func (f *fixture) SetFail(v int) error {
	return errors.New("rejected")
}
func (f *fixture) Init() { f.calls = append(f.calls, "init") }

// configured overrides bulk configuration.
type configured struct {
	fixture
	got apis.Assignments
}

func (c *configured) Configure(values apis.Assignments) error {
	c.calls = append(c.calls, "configure")
	c.got = values
	return nil
}

// failingInit has a fallible init hook.
type failingInit struct{ ran bool }

func (f *failingInit) Init() error {
	f.ran = true
	return errors.New("boom")
}

type named struct{ fixture }

// counter has a value-receiver getter and a pointer-receiver setter.
type counter struct {
	n int
	X int
}

func (c counter) GetN() int   { return c.n }
func (c *counter) SetN(v int) { c.n = v }

func (*named) TypeName() string { return "app.Named" }

func newFacade() facade.Facade {
	cfg := config.DefaultConfig()
	return facade.New(builder.New().BuildResolver(cfg, registry.New(), nil), cfg)
}

func TestGetSet_RoundTrip(t *testing.T) {
	f := newFacade()
	obj := &fixture{}

	for _, v := range []any{1, "two", []int{3}, nil} {
		require.NoError(t, f.Set(obj, "rw", v))
		got, err := f.Get(obj, "rw")
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestReadOnly(t *testing.T) {
	f := newFacade()
	obj := &fixture{r: "value"}

	err := f.Set(obj, "r", "x")
	require.ErrorIs(t, err, facade.ErrInvalidCall)
	require.EqualError(t, err, "Setting read-only property facade_test.fixture::r")

	var ic *facade.InvalidCallError
	require.ErrorAs(t, err, &ic)
	assert.Equal(t, apis.ReadOnly, ic.Access)
	assert.Equal(t, "Setting", ic.Op)

	got, err := f.Get(obj, "r")
	require.NoError(t, err)
	assert.Equal(t, "value", got)
}

func TestWriteOnly(t *testing.T) {
	f := newFacade()
	obj := &fixture{}

	_, err := f.Get(obj, "w")
	require.ErrorIs(t, err, facade.ErrInvalidCall)
	require.EqualError(t, err, "Getting write-only property facade_test.fixture::w")

	require.NoError(t, f.Set(obj, "w", 9))
	assert.Equal(t, 9, obj.w)
}

func TestUnknown(t *testing.T) {
	f := newFacade()
	obj := &fixture{}

	_, err := f.Get(obj, "unknownProperty")
	require.ErrorIs(t, err, facade.ErrUnknownProperty)
	require.EqualError(t, err, "Getting unknown property facade_test.fixture::unknownProperty")
	assert.False(t, errors.Is(err, facade.ErrInvalidCall))

	err = f.Set(obj, "unknownProperty", 1)
	require.ErrorIs(t, err, facade.ErrUnknownProperty)
	require.EqualError(t, err, "Setting unknown property facade_test.fixture::unknownProperty")

	assert.False(t, f.Exists(obj, "unknownProperty"))
	assert.NoError(t, f.Clear(obj, "unknownProperty"))
}

func TestUnexportedFieldIsUnknown(t *testing.T) {
	f := newFacade()

	_, err := f.Get(&configured{}, "got")
	require.ErrorIs(t, err, facade.ErrUnknownProperty)
}

func TestExists(t *testing.T) {
	f := newFacade()
	obj := &fixture{}

	assert.False(t, f.Exists(obj, "rw"), "nil getter result is absent")
	require.NoError(t, f.Set(obj, "rw", 0))
	assert.True(t, f.Exists(obj, "rw"), "zero value is not absent")

	assert.False(t, f.Exists(obj, "w"), "write-only never exists")
	assert.True(t, f.Exists(obj, "r"), "empty string is not absent")
}

func TestClear(t *testing.T) {
	f := newFacade()
	obj := &fixture{r: "keep", rw: "set"}

	require.True(t, f.Exists(obj, "rw"))
	require.NoError(t, f.Clear(obj, "rw"))
	assert.False(t, f.Exists(obj, "rw"))
	assert.Nil(t, obj.rw)

	err := f.Clear(obj, "r")
	require.ErrorIs(t, err, facade.ErrInvalidCall)
	require.EqualError(t, err, "Unsetting read-only property facade_test.fixture::r")
	assert.Equal(t, "keep", obj.r)

	// Clearing a public field stores its zero value.
	obj.P = "x"
	require.NoError(t, f.Clear(obj, "p"))
	assert.Nil(t, obj.P)
}

func TestAccessorErrorsPropagate(t *testing.T) {
	f := newFacade()
	obj := &fixture{}

	err := f.Set(obj, "fail", 1)
	require.Error(t, err)
	assert.EqualError(t, err, "Setting property facade_test.fixture::fail: rejected")
	assert.False(t, errors.Is(err, facade.ErrInvalidCall))

	err = f.Set(obj, "fail", "not an int")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid value")
}

func TestInputGuards(t *testing.T) {
	f := newFacade()

	_, err := f.Get(nil, "x")
	require.ErrorIs(t, err, facade.ErrNilObject)
	require.ErrorIs(t, f.Set(&fixture{}, "", 1), facade.ErrEmptyName)
	require.ErrorIs(t, f.Clear(nil, "x"), facade.ErrNilObject)
	assert.False(t, f.Exists(nil, "x"))
	require.ErrorIs(t, f.Configure(nil, nil), facade.ErrNilObject)
	require.ErrorIs(t, f.Construct(nil, nil), facade.ErrNilObject)
}

func TestInputGuards_TypedNil(t *testing.T) {
	f := newFacade()
	var c *counter

	_, err := f.Get(c, "n")
	require.ErrorIs(t, err, facade.ErrNilObject)
	require.ErrorIs(t, f.Set(c, "n", 1), facade.ErrNilObject)
	require.ErrorIs(t, f.Clear(c, "n"), facade.ErrNilObject)
	assert.False(t, f.Exists(c, "n"))
	assert.False(t, f.Exists(c, "x"))
	require.ErrorIs(t, f.Configure(c, apis.Assignments{{Name: "n", Value: 1}}), facade.ErrNilObject)
	require.ErrorIs(t, f.Construct((*fixture)(nil), nil), facade.ErrNilObject)
}

func TestSet_NotAddressable(t *testing.T) {
	f := newFacade()
	v := counter{n: 4}

	got, err := f.Get(v, "n")
	require.NoError(t, err)
	assert.Equal(t, 4, got)

	err = f.Set(v, "n", 1)
	require.ErrorIs(t, err, facade.ErrInvalidCall)
	require.ErrorIs(t, err, facade.ErrNotAddressable)
	assert.Contains(t, err.Error(), "Setting read-only property facade_test.counter::n")

	err = f.Set(v, "x", 1)
	require.ErrorIs(t, err, facade.ErrNotAddressable)
	require.ErrorIs(t, f.Clear(v, "x"), facade.ErrNotAddressable)

	// A value with no writable pointer counterpart keeps the plain error.
	err = f.Set(v, "missing", 1)
	require.ErrorIs(t, err, facade.ErrUnknownProperty)
	assert.False(t, errors.Is(err, facade.ErrNotAddressable))

	require.NoError(t, f.Set(&v, "n", 1))
	assert.Equal(t, 1, v.n)
}

func TestTypeNamer(t *testing.T) {
	f := newFacade()

	_, err := f.Get(&named{}, "nope")
	require.EqualError(t, err, "Getting unknown property app.Named::nope")
}

func TestConfigure(t *testing.T) {
	f := newFacade()

	t.Run("applies writable attributes in order", func(t *testing.T) {
		obj := &fixture{}
		require.NoError(t, f.Configure(obj, apis.Assignments{
			{Name: "P", Value: 1},
			{Name: "rw", Value: 2},
			{Name: "w", Value: 3},
		}))
		assert.Equal(t, 1, obj.P)
		assert.Equal(t, 2, obj.rw)
		assert.Equal(t, 3, obj.w)
	})

	t.Run("stops at the first read-only attribute", func(t *testing.T) {
		obj := &fixture{}
		err := f.Configure(obj, apis.Assignments{
			{Name: "rw", Value: "v1"},
			{Name: "r", Value: "v2"},
			{Name: "w", Value: "never"},
		})
		require.EqualError(t, err, "Setting read-only property facade_test.fixture::r")
		assert.Equal(t, "v1", obj.rw, "earlier assignments stay applied")
		assert.Nil(t, obj.w, "later assignments are never applied")
	})

	t.Run("order decides what was applied", func(t *testing.T) {
		obj := &fixture{}
		err := f.Configure(obj, apis.Assignments{
			{Name: "r", Value: "v2"},
			{Name: "rw", Value: "v1"},
		})
		require.ErrorIs(t, err, facade.ErrInvalidCall)
		assert.Nil(t, obj.rw)
	})

	t.Run("empty is a no-op", func(t *testing.T) {
		require.NoError(t, f.Configure(&fixture{}, nil))
	})
}

func TestConstruct(t *testing.T) {
	f := newFacade()

	t.Run("empty values only run init", func(t *testing.T) {
		obj := &configured{}
		require.NoError(t, f.Construct(obj, apis.Assignments{}))
		assert.Equal(t, []string{"init"}, obj.calls)
	})

	t.Run("configure then init, once each", func(t *testing.T) {
		obj := &configured{}
		values := apis.Assignments{{Name: "foo", Value: "bar"}}
		require.NoError(t, f.Construct(obj, values))
		assert.Equal(t, []string{"configure", "init"}, obj.calls)
		assert.Equal(t, values, obj.got)
	})

	t.Run("default configuration goes through Set", func(t *testing.T) {
		obj := &fixture{}
		require.NoError(t, f.Construct(obj, apis.Assignments{{Name: "w", Value: 1}}))
		assert.Equal(t, []string{"SetW", "init"}, obj.calls)
	})

	t.Run("configuration failure skips init", func(t *testing.T) {
		obj := &fixture{}
		err := f.Construct(obj, apis.Assignments{{Name: "x", Value: 1}})
		require.ErrorIs(t, err, facade.ErrUnknownProperty)
		assert.Empty(t, obj.calls)
	})

	t.Run("fallible init", func(t *testing.T) {
		obj := &failingInit{}
		err := f.Construct(obj, nil)
		require.EqualError(t, err, "init facade_test.failingInit: boom")
		assert.True(t, obj.ran)
	})

	t.Run("no hook", func(t *testing.T) {
		require.NoError(t, f.Construct(&struct{ A int }{}, nil))
	})
}

// TestScenario walks a type with a public field p, getter-only r,
// setter-only w and read-write rw.
func TestScenario(t *testing.T) {
	f := newFacade()
	obj := &fixture{r: "r"}

	require.NoError(t, f.Set(obj, "p", 5))
	got, err := f.Get(obj, "p")
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	got, err = f.Get(obj, "r")
	require.NoError(t, err)
	assert.Equal(t, "r", got)
	assert.Contains(t, obj.calls, "GetR")

	require.NoError(t, f.Set(obj, "w", 9))
	assert.Contains(t, obj.calls, "SetW")
	_, err = f.Get(obj, "w")
	require.ErrorIs(t, err, facade.ErrInvalidCall)

	assert.False(t, f.Exists(obj, "rw"))
	require.NoError(t, f.Set(obj, "rw", 1))
	assert.True(t, f.Exists(obj, "rw"))
}

func TestBind(t *testing.T) {
	f := newFacade()
	obj := &fixture{}
	o := f.Bind(obj)

	require.NoError(t, o.Set("rw", "x"))
	got, err := o.Get("rw")
	require.NoError(t, err)
	assert.Equal(t, "x", got)
	assert.True(t, o.Exists("rw"))
	require.NoError(t, o.Clear("rw"))
	assert.False(t, o.Exists("rw"))
}
