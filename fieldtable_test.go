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

package pamqp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldValueRoundTrip(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	tests := []struct {
		name string
		in   any
	}{
		{"nil", nil},
		{"bool true", true},
		{"bool false", false},
		{"int8", int8(-12)},
		{"uint8", uint8(200)},
		{"int16", int16(-1000)},
		{"uint16", uint16(40000)},
		{"int32", int32(-100000)},
		{"uint32", uint32(3000000000)},
		{"int64", int64(-1)},
		{"float32", float32(1.5)},
		{"float64", float64(2.5)},
		{"decimal", Decimal{Scale: 1, Value: 10}},
		{"string", "a longstr value"},
		{"bytes", []byte{0xDE, 0xAD}},
		{"timestamp", ts},
		{"table", Table{"x": int32(1)}},
		{"array", Array{int32(1), "two"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := EncodeFieldValue(tt.in)
			require.NoError(t, err)
			got, n, err := DecodeFieldValue(b, 0)
			require.NoError(t, err)
			assert.Equal(t, len(b), n)
			if ts, ok := tt.in.(time.Time); ok {
				assert.True(t, ts.Equal(got.(time.Time)))
				return
			}
			assert.Equal(t, tt.in, got)
		})
	}
}

func TestFieldValueSignedTagAliases(t *testing.T) {
	// Decode must accept both U/s and L/l spellings; encode always emits
	// the lowercase forms.
	shortPayload := EncodeShortInt(-7)
	vU, _, err := DecodeFieldValue(append([]byte{tagSignedShortAlt}, shortPayload...), 0)
	require.NoError(t, err)
	assert.Equal(t, int16(-7), vU)

	vs, _, err := DecodeFieldValue(append([]byte{tagSignedShort}, shortPayload...), 0)
	require.NoError(t, err)
	assert.Equal(t, int16(-7), vs)

	llPayload := EncodeLongLongInt(-7)
	vL, _, err := DecodeFieldValue(append([]byte{tagSignedLongLongAlt}, llPayload...), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(-7), vL)

	enc, err := EncodeFieldValue(int64(-7))
	require.NoError(t, err)
	assert.Equal(t, byte(tagSignedLongLong), enc[0])
}

func TestTableRoundTrip(t *testing.T) {
	tbl := Table{
		"str":  "hello",
		"num":  int32(42),
		"flag": true,
		"nested": Table{
			"inner": uint16(7),
		},
	}
	b, err := EncodeTable(tbl)
	require.NoError(t, err)
	got, n, err := DecodeTable(b, 0)
	require.NoError(t, err)
	assert.Equal(t, len(b), n)
	assert.Equal(t, tbl, got)
}

func TestTableEmpty(t *testing.T) {
	b, err := EncodeTable(Table{})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, b)
	got, n, err := DecodeTable(b, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, Table{}, got)
}

func TestUnknownFieldTag(t *testing.T) {
	_, _, err := DecodeFieldValue([]byte{0x99}, 0)
	assert.ErrorIs(t, err, ErrUnknownFieldTag)
}

func TestTableFromMap(t *testing.T) {
	m := map[string]any{
		"a": "hi",
		"b": 5,
		"c": 3.14,
	}
	tbl, err := TableFromMap(m)
	require.NoError(t, err)
	assert.Equal(t, "hi", tbl["a"])
	assert.Equal(t, int64(5), tbl["b"])
	assert.Equal(t, 3.14, tbl["c"])
}

func TestTableDecode(t *testing.T) {
	type dst struct {
		Name  string `amqp:"name"`
		Count int    `amqp:"count"`
	}
	tbl := Table{"name": "queue-a", "count": int32(3)}
	var out dst
	require.NoError(t, tbl.Decode(&out))
	assert.Equal(t, "queue-a", out.Name)
	assert.Equal(t, 3, out.Count)
}
