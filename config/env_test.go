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

package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"dirpx.dev/vprop/config"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := config.FromEnv()
	require.NoError(t, err)
	require.Equal(t, config.DefaultConfig(), cfg)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("VPROP_GETTER_PREFIX", "Fetch")
	t.Setenv("VPROP_SETTER_PREFIX", "Put")
	t.Setenv("VPROP_METHODS", "false")
	t.Setenv("VPROP_FIELDS", "false")

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	require.Equal(t, "Fetch", cfg.GetterPrefix)
	require.Equal(t, "Put", cfg.SetterPrefix)
	require.False(t, cfg.Methods)
	require.False(t, cfg.Fields)
}

func TestFromEnv_GoGetters(t *testing.T) {
	t.Setenv("VPROP_GETTER_PREFIX", "Fetch")
	t.Setenv("VPROP_GO_GETTERS", "true")

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	require.Empty(t, cfg.GetterPrefix)
}

func TestFromEnv_OptionsWin(t *testing.T) {
	t.Setenv("VPROP_METHODS", "false")

	cfg, err := config.FromEnv(config.WithMethods(true))
	require.NoError(t, err)
	require.True(t, cfg.Methods)
}

func TestFromEnv_InvalidBool(t *testing.T) {
	t.Setenv("VPROP_FIELDS", "maybe")

	_, err := config.FromEnv()
	require.Error(t, err)
	require.Contains(t, err.Error(), "parse env")
}
