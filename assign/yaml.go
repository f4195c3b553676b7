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

package assign

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"dirpx.dev/vprop/apis"
)

// FromYAML decodes a top-level mapping into assignments in document order.
// JSON objects are valid input as well. Nested mappings decode as
// yaml.MapSlice so their order survives too.
func FromYAML(data []byte) (apis.Assignments, error) {
	var doc yaml.MapSlice
	if err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("decode assignments: %w", err)
	}

	out := make(apis.Assignments, 0, len(doc))
	for i, item := range doc {
		name, ok := item.Key.(string)
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: entry %d has key %v (%T)", ErrKeyType, i, item.Key, item.Key)
		}
		out = append(out, apis.Assignment{Name: name, Value: item.Value})
	}
	return out, nil
}
