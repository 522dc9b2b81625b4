// Copyright 2025 The packetd Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package confengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadContentAndUnpack(t *testing.T) {
	yamlContent := []byte(`
port: 5673
logger:
  stdout: true
  level: debug
`)
	cfg, err := LoadContent(yamlContent)
	require.NoError(t, err)
	assert.True(t, cfg.Has("port"))
	assert.True(t, cfg.Has("logger"))
	assert.False(t, cfg.Has("missing"))

	var out struct {
		Port   int `config:"port"`
		Logger struct {
			Stdout bool   `config:"stdout"`
			Level  string `config:"level"`
		} `config:"logger"`
	}
	require.NoError(t, cfg.Unpack(&out))
	assert.Equal(t, 5673, out.Port)
	assert.True(t, out.Logger.Stdout)
	assert.Equal(t, "debug", out.Logger.Level)
}

func TestUnpackChild(t *testing.T) {
	cfg, err := LoadContent([]byte(`
logger:
  stdout: false
  level: warn
`))
	require.NoError(t, err)

	var logOpt struct {
		Stdout bool   `config:"stdout"`
		Level  string `config:"level"`
	}
	require.NoError(t, cfg.UnpackChild("logger", &logOpt))
	assert.False(t, logOpt.Stdout)
	assert.Equal(t, "warn", logOpt.Level)
}

func TestChild(t *testing.T) {
	cfg, err := LoadContent([]byte(`
logger:
  stdout: true
`))
	require.NoError(t, err)

	child, err := cfg.Child("logger")
	require.NoError(t, err)
	assert.True(t, child.Has("stdout"))

	_, err = cfg.Child("does-not-exist")
	assert.Error(t, err)
}
