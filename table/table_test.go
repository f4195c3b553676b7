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

package table_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/vprop/apis"
	"dirpx.dev/vprop/table"
	uref "dirpx.dev/vprop/utils/reflect"
)

type person struct {
	name string
	age  int
	tags []string
}

func (p *person) Name() string     { return p.name }
func (p *person) SetName(v string) { p.name = v }
func (p *person) Age() int         { return p.age }
func (p *person) SetAge(v int) error {
	if v < 0 {
		return errors.New("negative age")
	}
	p.age = v
	return nil
}
func (p *person) Tags() ([]string, error) {
	if p.tags == nil {
		return nil, errors.New("no tags")
	}
	return p.tags, nil
}
func (p *person) SetTags(v []string) { p.tags = v }

func newPersonTable() *table.Table {
	return table.New().
		Define("name", table.Reader((*person).Name), table.Writer((*person).SetName)).
		Define("age", table.Reader((*person).Age), table.WriterE((*person).SetAge)).
		Define("tags", table.ReaderE((*person).Tags), table.Writer((*person).SetTags))
}

func TestDefine_OrderAndReplace(t *testing.T) {
	tbl := newPersonTable()
	assert.Equal(t, []string{"name", "age", "tags"}, tbl.Names())

	tbl.Define("name", table.Reader((*person).Name), nil)
	assert.Equal(t, []string{"name", "age", "tags"}, tbl.Names())

	acc, ok := tbl.Lookup("name")
	require.True(t, ok)
	assert.Equal(t, apis.ReadOnly, acc.Access())

	_, ok = tbl.Lookup("missing")
	assert.False(t, ok)
}

func TestDefine_Panics(t *testing.T) {
	assert.Panics(t, func() { table.New().Define("", table.Reader((*person).Name), nil) })
	assert.Panics(t, func() { table.New().Define("x", nil, nil) })
}

func TestNames_ReturnsCopy(t *testing.T) {
	tbl := newPersonTable()
	names := tbl.Names()
	names[0] = "mutated"
	assert.Equal(t, "name", tbl.Names()[0])
}

func TestReaderWriter(t *testing.T) {
	tbl := newPersonTable()
	p := &person{}

	name, _ := tbl.Lookup("name")
	require.NoError(t, name.Setter(p, "ada"))
	got, err := name.Getter(p)
	require.NoError(t, err)
	assert.Equal(t, "ada", got)

	require.NoError(t, name.Setter(p, nil))
	assert.Equal(t, "", p.name)
}

func TestWriterE_Coerce(t *testing.T) {
	tbl := newPersonTable()
	p := &person{}
	age, _ := tbl.Lookup("age")

	require.NoError(t, age.Setter(p, int64(42)))
	assert.Equal(t, 42, p.age)

	require.NoError(t, age.Setter(p, 7.0))
	assert.Equal(t, 7, p.age)

	err := age.Setter(p, 7.5)
	require.ErrorIs(t, err, uref.ErrInvalidValue)

	err = age.Setter(p, "42")
	require.ErrorIs(t, err, uref.ErrInvalidValue)

	err = age.Setter(p, -1)
	require.EqualError(t, err, "negative age")
	assert.Equal(t, 7, p.age)
}

func TestReaderE_Error(t *testing.T) {
	tbl := newPersonTable()
	tags, _ := tbl.Lookup("tags")

	_, err := tags.Getter(&person{})
	require.EqualError(t, err, "no tags")

	require.NoError(t, tags.Setter(&person{}, nil))

	p := &person{}
	require.NoError(t, tags.Setter(p, []string{"a"}))
	got, err := tags.Getter(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, got)
}

func TestReceiverMismatch(t *testing.T) {
	tbl := newPersonTable()
	name, _ := tbl.Lookup("name")

	_, err := name.Getter(person{})
	require.ErrorIs(t, err, table.ErrReceiver)
	assert.Contains(t, err.Error(), "*table_test.person")

	err = name.Setter("not a person", "x")
	require.ErrorIs(t, err, table.ErrReceiver)
}

func TestWriter_InterfaceValue(t *testing.T) {
	var got any = "unset"
	set := table.Writer(func(_ *person, v any) { got = v })

	require.NoError(t, set(&person{}, nil))
	assert.Nil(t, got)

	require.NoError(t, set(&person{}, 3))
	assert.Equal(t, 3, got)
}
