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

func TestPrimitiveRoundTrip(t *testing.T) {
	assert.Equal(t, []byte{0x2A}, EncodeOctet(0x2A))
	v, n, err := DecodeOctet([]byte{0x2A}, 0)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x2A), v)
	assert.Equal(t, 1, n)

	short := EncodeShort(0xC800)
	assert.Equal(t, []byte{0xC8, 0x00}, short)
	sv, _, err := DecodeShort(short, 0)
	require.NoError(t, err)
	assert.Equal(t, uint16(0xC800), sv)

	long := EncodeLong(200)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0xC8}, long)
	lv, _, err := DecodeLong(long, 0)
	require.NoError(t, err)
	assert.Equal(t, uint32(200), lv)

	ll := EncodeLongLong(1)
	llv, _, err := DecodeLongLong(ll, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), llv)
}

func TestPrimitiveSignedInts(t *testing.T) {
	sv, _, err := DecodeShortShortInt(EncodeShortShortInt(-5), 0)
	require.NoError(t, err)
	assert.Equal(t, int8(-5), sv)

	siv, _, err := DecodeShortInt(EncodeShortInt(-300), 0)
	require.NoError(t, err)
	assert.Equal(t, int16(-300), siv)

	liv, _, err := DecodeLongInt(EncodeLongInt(-70000), 0)
	require.NoError(t, err)
	assert.Equal(t, int32(-70000), liv)

	lliv, _, err := DecodeLongLongInt(EncodeLongLongInt(-1), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), lliv)
}

func TestPrimitiveFloatDouble(t *testing.T) {
	fv, _, err := DecodeFloat(EncodeFloat(3.5), 0)
	require.NoError(t, err)
	assert.Equal(t, float32(3.5), fv)

	dv, _, err := DecodeDouble(EncodeDouble(-2.25), 0)
	require.NoError(t, err)
	assert.Equal(t, -2.25, dv)
}

func TestDecimal(t *testing.T) {
	d := Decimal{Scale: 2, Value: 12345}
	encoded := EncodeDecimal(d)
	require.Len(t, encoded, 5)
	got, _, err := DecodeDecimal(encoded, 0)
	require.NoError(t, err)
	assert.Equal(t, d, got)
	assert.InDelta(t, 123.45, got.Float64(), 1e-9)
}

func TestShortStr(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "empty", input: ""},
		{name: "ascii", input: "hello"},
		{name: "utf8", input: "中文测试"},
		{name: "oversize", input: string(make([]byte, 256)), wantErr: ErrOversizeShortString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := EncodeShortStr(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, byte(len(tt.input)), b[0])
			s, n, err := DecodeShortStr(b, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.input, s)
			assert.Equal(t, len(b), n)
		})
	}
}

func TestDecodeShortStrInvalidUTF8(t *testing.T) {
	b := []byte{0x02, 0xFF, 0xFE}
	_, _, err := DecodeShortStr(b, 0)
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}

func TestLongStr(t *testing.T) {
	raw := []byte{0x00, 0x01, 0x02, 0x03}
	b := EncodeLongStr(raw)
	got, n, err := DecodeLongStr(b, 0)
	require.NoError(t, err)
	assert.Equal(t, raw, got)
	assert.Equal(t, len(b), n)

	text := EncodeLongStrText("hello world")
	s, _, err := DecodeLongStrText(text, 0)
	require.NoError(t, err)
	assert.Equal(t, "hello world", s)
}

func TestTimestamp(t *testing.T) {
	ts := time.Date(2012, 10, 2, 9, 51, 3, 0, time.UTC)
	b := EncodeTimestamp(ts)
	got, _, err := DecodeTimestamp(b, 0)
	require.NoError(t, err)
	assert.True(t, ts.Equal(got))
}

func TestTruncatedBuffer(t *testing.T) {
	_, _, err := DecodeLong([]byte{0x00, 0x01}, 0)
	assert.ErrorIs(t, err, ErrTruncatedBuffer)

	_, _, err = DecodeShortStr([]byte{0x05, 'h', 'i'}, 0)
	assert.ErrorIs(t, err, ErrOversizeLength)
}
