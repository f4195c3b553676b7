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
	"dirpx.dev/vprop/apis"
)

const (
	// DefaultGetterPrefix represents the default for GetterPrefix.
	DefaultGetterPrefix = "Get"
	// DefaultSetterPrefix represents the default for SetterPrefix.
	DefaultSetterPrefix = "Set"
	// DefaultMethods represents the default for Methods.
	// When true, accessor methods are located by name via reflection.
	DefaultMethods = true
	// DefaultFields represents the default for Fields.
	// When true, exported struct fields are plain pass-through storage.
	DefaultFields = true
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return Normalize(cfg)
}

// Normalize returns cfg with an empty SetterPrefix replaced by the default.
// A setter must be distinguishable from the attribute itself.
func Normalize(cfg apis.Config) apis.Config {
	if cfg.SetterPrefix == "" {
		cfg.SetterPrefix = DefaultSetterPrefix
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		GetterPrefix: DefaultGetterPrefix,
		SetterPrefix: DefaultSetterPrefix,
		Methods:      DefaultMethods,
		Fields:       DefaultFields,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithGetterPrefix sets the GetterPrefix option.
// An empty prefix selects Go-style getters ("Name" instead of "GetName").
func WithGetterPrefix(prefix string) Option {
	return func(c *apis.Config) {
		c.GetterPrefix = prefix
	}
}

// WithSetterPrefix sets the SetterPrefix option.
// An empty prefix resets to the default.
func WithSetterPrefix(prefix string) Option {
	return func(c *apis.Config) {
		if prefix == "" {
			c.SetterPrefix = DefaultSetterPrefix
			return
		}
		c.SetterPrefix = prefix
	}
}

// WithMethods sets the Methods option.
func WithMethods(enabled bool) Option {
	return func(c *apis.Config) {
		c.Methods = enabled
	}
}

// WithFields sets the Fields option.
func WithFields(enabled bool) Option {
	return func(c *apis.Config) {
		c.Fields = enabled
	}
}
