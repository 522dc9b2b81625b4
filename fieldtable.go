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
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

// Table is a field-table: a self-describing, shortstr-keyed map of tagged
// values. Ordering is not semantically significant.
type Table map[string]any

// Array is a field-array: a self-describing, tagged list of values.
type Array []any

// Tag octets, per the canonical RabbitMQ wire set. Decode accepts both the
// plain and the ...Alt spellings of signed short and signed long-long;
// encode always emits tagSignedShort and tagSignedLongLong.
const (
	tagBoolean           = 't'
	tagSignedByte        = 'b'
	tagUnsignedByte      = 'B'
	tagSignedShort       = 's'
	tagSignedShortAlt    = 'U'
	tagUnsignedShort     = 'u'
	tagSignedLong        = 'I'
	tagUnsignedLong      = 'i'
	tagSignedLongLong    = 'l'
	tagSignedLongLongAlt = 'L'
	tagFloat             = 'f'
	tagDouble            = 'd'
	tagDecimal           = 'D'
	tagLongStr           = 'S'
	tagArray             = 'A'
	tagTimestamp         = 'T'
	tagFieldTable        = 'F'
	tagVoid              = 'V'
	tagByteArray         = 'x'
)

// EncodeFieldValue writes the one-octet tag for v followed by its payload,
// choosing the narrowest faithful tag for v's Go type. uint64 has no tag of
// its own and is written as a signed long-long, so values above
// math.MaxInt64 decode as negative int64 values.
func EncodeFieldValue(v any) ([]byte, error) {
	switch val := v.(type) {
	case nil:
		return []byte{tagVoid}, nil
	case bool:
		b := byte(0)
		if val {
			b = 1
		}
		return []byte{tagBoolean, b}, nil
	case int8:
		return append([]byte{tagSignedByte}, EncodeShortShortInt(val)...), nil
	case uint8:
		return append([]byte{tagUnsignedByte}, EncodeOctet(val)...), nil
	case int16:
		return append([]byte{tagSignedShort}, EncodeShortInt(val)...), nil
	case uint16:
		return append([]byte{tagUnsignedShort}, EncodeShort(val)...), nil
	case int32:
		return append([]byte{tagSignedLong}, EncodeLongInt(val)...), nil
	case uint32:
		return append([]byte{tagUnsignedLong}, EncodeLong(val)...), nil
	case int64:
		return append([]byte{tagSignedLongLong}, EncodeLongLongInt(val)...), nil
	case int:
		return append([]byte{tagSignedLongLong}, EncodeLongLongInt(int64(val))...), nil
	case uint64:
		return append([]byte{tagSignedLongLong}, EncodeLongLongInt(int64(val))...), nil
	case float32:
		return append([]byte{tagFloat}, EncodeFloat(val)...), nil
	case float64:
		return append([]byte{tagDouble}, EncodeDouble(val)...), nil
	case Decimal:
		return append([]byte{tagDecimal}, EncodeDecimal(val)...), nil
	case string:
		return append([]byte{tagLongStr}, EncodeLongStrText(val)...), nil
	case []byte:
		return append([]byte{tagByteArray}, EncodeLongStr(val)...), nil
	case time.Time:
		return append([]byte{tagTimestamp}, EncodeTimestamp(val)...), nil
	case Table:
		payload, err := EncodeTable(val)
		if err != nil {
			return nil, err
		}
		return append([]byte{tagFieldTable}, payload...), nil
	case Array:
		payload, err := EncodeArray(val)
		if err != nil {
			return nil, err
		}
		return append([]byte{tagArray}, payload...), nil
	default:
		return nil, newErrorf(ErrUnknownFieldTag, "unsupported field-table value type %T", v)
	}
}

// DecodeFieldValue reads a one-octet tag at offset and its payload, returning
// the decoded value and the new offset.
func DecodeFieldValue(b []byte, offset int) (any, int, error) {
	tag, offset, err := DecodeOctet(b, offset)
	if err != nil {
		return nil, offset, err
	}
	switch tag {
	case tagBoolean:
		v, n, err := DecodeOctet(b, offset)
		return v != 0, n, err
	case tagSignedByte:
		return DecodeShortShortInt(b, offset)
	case tagUnsignedByte:
		return DecodeOctet(b, offset)
	case tagSignedShort, tagSignedShortAlt:
		return DecodeShortInt(b, offset)
	case tagUnsignedShort:
		return DecodeShort(b, offset)
	case tagSignedLong:
		return DecodeLongInt(b, offset)
	case tagUnsignedLong:
		return DecodeLong(b, offset)
	case tagSignedLongLong, tagSignedLongLongAlt:
		return DecodeLongLongInt(b, offset)
	case tagFloat:
		return DecodeFloat(b, offset)
	case tagDouble:
		return DecodeDouble(b, offset)
	case tagDecimal:
		return DecodeDecimal(b, offset)
	case tagLongStr:
		return DecodeLongStrText(b, offset)
	case tagByteArray:
		return DecodeLongStr(b, offset)
	case tagTimestamp:
		return DecodeTimestamp(b, offset)
	case tagFieldTable:
		return DecodeTable(b, offset)
	case tagArray:
		return DecodeArray(b, offset)
	case tagVoid:
		return nil, offset, nil
	default:
		return nil, offset, newErrorf(ErrUnknownFieldTag, "tag 0x%02x at offset %d", tag, offset)
	}
}

// EncodeTable writes a field-table's u32 byte-length followed by its
// shortstr-keyed, tagged entries.
func EncodeTable(t Table) ([]byte, error) {
	var body []byte
	for k, v := range t {
		key, err := EncodeShortStr(k)
		if err != nil {
			return nil, err
		}
		val, err := EncodeFieldValue(v)
		if err != nil {
			return nil, err
		}
		body = append(body, key...)
		body = append(body, val...)
	}
	out := make([]byte, 0, 4+len(body))
	out = append(out, EncodeLong(uint32(len(body)))...)
	out = append(out, body...)
	return out, nil
}

// DecodeTable reads a field-table's u32 byte-length and consumes entries
// until that many bytes are exhausted.
func DecodeTable(b []byte, offset int) (Table, int, error) {
	length, offset, err := DecodeLong(b, offset)
	if err != nil {
		return nil, offset, err
	}
	if err := need(b, offset, int(length)); err != nil {
		return nil, offset, ErrOversizeLength
	}
	end := offset + int(length)
	table := Table{}
	for offset < end {
		key, next, err := DecodeShortStr(b, offset)
		if err != nil {
			return nil, offset, err
		}
		offset = next
		val, next, err := DecodeFieldValue(b, offset)
		if err != nil {
			return nil, offset, err
		}
		offset = next
		table[key] = val
	}
	return table, offset, nil
}

// EncodeArray writes a field-array's u32 byte-length followed by its tagged
// values, in order.
func EncodeArray(a Array) ([]byte, error) {
	var body []byte
	for _, v := range a {
		val, err := EncodeFieldValue(v)
		if err != nil {
			return nil, err
		}
		body = append(body, val...)
	}
	out := make([]byte, 0, 4+len(body))
	out = append(out, EncodeLong(uint32(len(body)))...)
	out = append(out, body...)
	return out, nil
}

// DecodeArray reads a field-array's u32 byte-length and consumes tagged
// values until that many bytes are exhausted.
func DecodeArray(b []byte, offset int) (Array, int, error) {
	length, offset, err := DecodeLong(b, offset)
	if err != nil {
		return nil, offset, err
	}
	if err := need(b, offset, int(length)); err != nil {
		return nil, offset, ErrOversizeLength
	}
	end := offset + int(length)
	arr := Array{}
	for offset < end {
		val, next, err := DecodeFieldValue(b, offset)
		if err != nil {
			return nil, offset, err
		}
		offset = next
		arr = append(arr, val)
	}
	return arr, offset, nil
}

// TableFromMap builds a Table from a loosely-typed map, coercing values
// (as might arrive from decoded JSON or YAML config) to the narrowest AMQP
// field-table tag using cast's type coercion rules.
func TableFromMap(m map[string]any) (Table, error) {
	out := make(Table, len(m))
	for k, v := range m {
		switch v.(type) {
		case bool, int8, uint8, int16, uint16, int32, uint32, int64, uint64,
			float32, float64, Decimal, string, []byte, time.Time, Table, Array, nil:
			out[k] = v
			continue
		}
		if i, err := cast.ToInt64E(v); err == nil {
			out[k] = i
			continue
		}
		if f, err := cast.ToFloat64E(v); err == nil {
			out[k] = f
			continue
		}
		if s, err := cast.ToStringE(v); err == nil {
			out[k] = s
			continue
		}
		return nil, newErrorf(ErrUnknownFieldTag, "cannot coerce map value for key %q (%T)", k, v)
	}
	return out, nil
}

// Decode binds t onto dst using mapstructure, letting a caller receive a
// decoded field-table (e.g. Basic.Publish's arguments, or a method's headers
// table) as a typed Go struct instead of a raw map.
func (t Table) Decode(dst any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           dst,
		WeaklyTypedInput: true,
		TagName:          "amqp",
	})
	if err != nil {
		return newErrorf(err, "building table decoder")
	}
	if err := dec.Decode(map[string]any(t)); err != nil {
		return newErrorf(err, "decoding table")
	}
	return nil
}
