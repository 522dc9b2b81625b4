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

// Method is one AMQP method variant: a named, field-schema-stable value
// keyed by (class_id, method_id). Implementations live one-per-method in
// methods_<class>.go.
type Method interface {
	// Name is the dotted "Class.Method" name, e.g. "Basic.Ack".
	Name() string
	ClassID() uint16
	MethodID() uint16
	// HasContent reports whether this method is followed by a
	// content-header + content-body sequence (true only for
	// Basic.Publish, Basic.Deliver, Basic.Return, Basic.GetOk).
	HasContent() bool
	// marshal encodes the method's fields, in declared order, without the
	// leading class/method id pair (MarshalMethod prepends that).
	marshal() []byte
}

// classMethodKey identifies a method's position in the registry.
type classMethodKey struct {
	ClassID  uint16
	MethodID uint16
}

// methodDecoder decodes a method payload (after the class/method id pair
// has already been consumed) into its Method value.
type methodDecoder func(payload []byte) (Method, int, error)

// packBits packs a run of consecutive bit fields, LSB-first within each
// octet, one octet per 8 bits, per the method encoder's bit-batching rule.
func packBits(bits ...bool) []byte {
	out := make([]byte, (len(bits)+7)/8)
	for i, b := range bits {
		if b {
			out[i/8] |= 1 << uint(i%8)
		}
	}
	return out
}

// unpackBits reads count consecutive packed bits starting at offset.
func unpackBits(b []byte, offset, count int) ([]bool, int, error) {
	n := (count + 7) / 8
	if err := need(b, offset, n); err != nil {
		return nil, offset, err
	}
	bits := make([]bool, count)
	for i := 0; i < count; i++ {
		bits[i] = b[offset+i/8]&(1<<uint(i%8)) != 0
	}
	return bits, offset + n, nil
}

// MarshalMethod encodes m's class id, method id, and fields into a
// method-frame payload (the portion a type-1 frame wraps).
func MarshalMethod(m Method) []byte {
	out := make([]byte, 0, 16)
	out = append(out, EncodeShort(m.ClassID())...)
	out = append(out, EncodeShort(m.MethodID())...)
	out = append(out, m.marshal()...)
	return out
}

// UnmarshalMethod reads the leading class/method id pair from payload and
// dispatches to the registered decoder. It returns the decoded Method and
// the number of payload bytes consumed.
func UnmarshalMethod(payload []byte) (Method, int, error) {
	classID, offset, err := DecodeShort(payload, 0)
	if err != nil {
		return nil, 0, err
	}
	methodID, offset, err := DecodeShort(payload, offset)
	if err != nil {
		return nil, 0, err
	}
	dec, ok := methodRegistry[classMethodKey{classID, methodID}]
	if !ok {
		return nil, 0, newErrorf(ErrUnknownMethod, "class %d method %d", classID, methodID)
	}
	m, n, err := dec(payload[offset:])
	if err != nil {
		return nil, 0, err
	}
	return m, offset + n, nil
}
