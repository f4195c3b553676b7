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

package reflect

import (
	"path"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"dirpx.dev/vprop/apis"
)

// UpperFirst returns s with its first rune upper-cased and the rest unchanged.
func UpperFirst(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// AccessorName builds the accessor method name for attribute name.
func AccessorName(prefix, name string) string {
	return prefix + UpperFirst(name)
}

// TypeName returns the name reported for v in property errors: TypeNamer
// when implemented, otherwise the "pkg.Type" derived from v's runtime type.
func TypeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	if n, ok := v.(apis.TypeNamer); ok {
		return n.TypeName()
	}
	return TypeNameOf(reflect.TypeOf(v))
}

// TypeNameOf computes a stable "pkg.Type" for t. Pointers are dereferenced and
// generic instantiation parameters are stripped. Unnamed types fall back to
// t.String().
func TypeNameOf(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	base := Indirect(t)
	if base.Name() == "" {
		return t.String()
	}
	name := stripTypeParams(base.Name())
	if p := base.PkgPath(); p != "" {
		name = path.Base(p) + "." + name
	}
	return name
}

// stripTypeParams removes generic type instantiation suffix: "T[int,string]" -> "T".
func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
