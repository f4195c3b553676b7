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

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"dirpx.dev/vprop/apis"
)

// envConfig mirrors apis.Config for environment parsing.
type envConfig struct {
	GetterPrefix string `env:"VPROP_GETTER_PREFIX" envDefault:"Get"`
	SetterPrefix string `env:"VPROP_SETTER_PREFIX" envDefault:"Set"`
	// GoGetters drops the getter prefix ("Name" instead of "GetName").
	// An empty VPROP_GETTER_PREFIX cannot express that, env skips empty values.
	GoGetters bool `env:"VPROP_GO_GETTERS"`
	Methods   bool `env:"VPROP_METHODS" envDefault:"true"`
	Fields    bool `env:"VPROP_FIELDS" envDefault:"true"`
}

// FromEnv builds an apis.Config from VPROP_* environment variables.
// Options are applied after the environment, so they win.
func FromEnv(opts ...Option) (apis.Config, error) {
	var e envConfig
	if err := env.Parse(&e); err != nil {
		return apis.Config{}, fmt.Errorf("parse env: %w", err)
	}

	getter := e.GetterPrefix
	if e.GoGetters {
		getter = ""
	}

	base := []Option{
		WithGetterPrefix(getter),
		WithSetterPrefix(e.SetterPrefix),
		WithMethods(e.Methods),
		WithFields(e.Fields),
	}
	return NewConfig(append(base, opts...)...), nil
}
