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

import "github.com/pkg/errors"

// Sentinel error kinds, per the decode/encode error taxonomy. Wrap these with
// errors.Wrap to add positional context; errors.Is still matches the kind.
var (
	// ErrNeedMoreData signals the buffer is shorter than the frame it
	// declares. It is not a failure: the caller should buffer more bytes
	// and retry. NeedMoreDataError.Total reports the total frame length once
	// known.
	ErrNeedMoreData = errors.New("pamqp: need more data")

	// ErrInvalidProtocolHeader is returned when a buffer starts with the
	// literal "AMQP" but the trailing version bytes don't match 00 00 09 01.
	ErrInvalidProtocolHeader = errors.New("pamqp: invalid protocol header")

	// ErrInvalidFrameEnd is returned when the byte at the expected frame-end
	// offset is not 0xCE.
	ErrInvalidFrameEnd = errors.New("pamqp: invalid frame end byte")

	// ErrUnknownFrameType is returned for a frame type byte outside
	// {1, 2, 3, 8}.
	ErrUnknownFrameType = errors.New("pamqp: unknown frame type")

	// ErrUnknownMethod is returned when a (class_id, method_id) pair has no
	// registry entry.
	ErrUnknownMethod = errors.New("pamqp: unknown class/method")

	// ErrUnknownFieldTag is returned for a field-table/array tag octet not
	// in the defined tag set.
	ErrUnknownFieldTag = errors.New("pamqp: unknown field-table tag")

	// ErrInvalidUTF8 is returned when a field marked textual isn't valid
	// UTF-8.
	ErrInvalidUTF8 = errors.New("pamqp: invalid utf-8")

	// ErrOversizeShortString is returned when encoding a shortstr whose
	// UTF-8 length exceeds 255 bytes.
	ErrOversizeShortString = errors.New("pamqp: short string exceeds 255 bytes")

	// ErrOversizeLength is returned when a declared inner length (a
	// shortstr/longstr/table/array byte count) exceeds what remains in the
	// buffer.
	ErrOversizeLength = errors.New("pamqp: declared length exceeds remaining buffer")

	// ErrHeartbeatChannelNonZero is returned for a heartbeat frame whose
	// channel is not 0.
	ErrHeartbeatChannelNonZero = errors.New("pamqp: heartbeat frame channel must be 0")

	// ErrTruncatedBuffer is returned by the primitive decoders when the
	// buffer ends before a fixed-width field can be read.
	ErrTruncatedBuffer = errors.New("pamqp: truncated buffer")
)

// NeedMoreDataError carries the total frame length (header + payload + end
// marker) a caller must buffer before retrying Unmarshal. It wraps
// ErrNeedMoreData so errors.Is(err, ErrNeedMoreData) still matches.
type NeedMoreDataError struct {
	// Total is the number of bytes Unmarshal needs to see to make progress.
	Total uint64
}

func (e *NeedMoreDataError) Error() string {
	return errors.Wrapf(ErrNeedMoreData, "total frame length %d", e.Total).Error()
}

func (e *NeedMoreDataError) Unwrap() error {
	return ErrNeedMoreData
}

func needMoreData(total uint64) error {
	return &NeedMoreDataError{Total: total}
}

func newErrorf(cause error, format string, args ...any) error {
	return errors.Wrapf(cause, format, args...)
}
