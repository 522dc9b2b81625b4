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
	"bytes"

	"github.com/goccy/go-json"
	multierror "github.com/hashicorp/go-multierror"
)

// Frame type bytes, per the envelope's leading octet.
const (
	FrameMethod        byte = 0x01
	FrameContentHeader byte = 0x02
	FrameContentBody   byte = 0x03
	FrameHeartbeat     byte = 0x08
)

const (
	frameHeaderLen = 7 // type(1) + channel(2) + length(4)
	frameEndByte   = 0xCE
)

var (
	protocolHeaderPrefix = []byte("AMQP")
	protocolHeaderSuffix = [4]byte{0x00, 0x00, 0x09, 0x01}
)

// FrameKind discriminates the variant held by a Frame.
type FrameKind uint8

const (
	KindProtocolHeader FrameKind = iota
	KindMethod
	KindContentHeader
	KindContentBody
	KindHeartbeat
)

func (k FrameKind) String() string {
	switch k {
	case KindProtocolHeader:
		return "ProtocolHeader"
	case KindMethod:
		return "Method"
	case KindContentHeader:
		return "ContentHeader"
	case KindContentBody:
		return "ContentBody"
	case KindHeartbeat:
		return "Heartbeat"
	default:
		return "Unknown"
	}
}

// ProtocolHeader is the 8-byte connection preamble, distinct in shape from
// every other frame: no channel, no length, no end marker.
type ProtocolHeader struct {
	Major    uint8
	Minor    uint8
	Revision uint8
}

// ContentHeaderPayload is the decoded body of a type-2 frame.
type ContentHeaderPayload struct {
	ClassID    uint16
	BodySize   uint64
	Properties BasicProperties
}

// Frame is the decoded shape of one wire frame. Exactly one of the
// Kind-selected fields is meaningful; the rest are zero.
type Frame struct {
	Kind           FrameKind
	ProtocolHeader ProtocolHeader       `json:",omitempty"`
	Method         Method               `json:",omitempty"`
	ContentHeader  ContentHeaderPayload `json:",omitempty"`
	ContentBody    []byte               `json:",omitempty"`
}

// frameJSON is Frame's over-the-wire JSON shape: Method is flattened to its
// name and field values since the Method interface itself carries no tags.
type frameJSON struct {
	Kind           string                `json:"kind"`
	ProtocolHeader *ProtocolHeader       `json:"protocol_header,omitempty"`
	MethodName     string                `json:"method_name,omitempty"`
	Method         Method                `json:"method,omitempty"`
	ContentHeader  *ContentHeaderPayload `json:"content_header,omitempty"`
	ContentBody    []byte                `json:"content_body,omitempty"`
}

// MarshalJSON renders f for diagnostic output (cmd/amqpdump's -json mode).
// It is not the wire format; Marshal/Unmarshal alone round-trip bytes.
func (f Frame) MarshalJSON() ([]byte, error) {
	out := frameJSON{Kind: f.Kind.String()}
	switch f.Kind {
	case KindProtocolHeader:
		out.ProtocolHeader = &f.ProtocolHeader
	case KindMethod:
		if f.Method != nil {
			out.MethodName = f.Method.Name()
			out.Method = f.Method
		}
	case KindContentHeader:
		out.ContentHeader = &f.ContentHeader
	case KindContentBody:
		out.ContentBody = f.ContentBody
	}
	return json.Marshal(out)
}

// Marshal encodes frame onto the wire for channel. For a ProtocolHeader
// frame, channel is ignored.
func Marshal(frame Frame, channel uint16) ([]byte, error) {
	if frame.Kind == KindProtocolHeader {
		out := make([]byte, 0, 8)
		out = append(out, protocolHeaderPrefix...)
		out = append(out, 0x00, frame.ProtocolHeader.Major, frame.ProtocolHeader.Minor, frame.ProtocolHeader.Revision)
		return out, nil
	}

	var frameType byte
	var payload []byte
	switch frame.Kind {
	case KindMethod:
		frameType = FrameMethod
		payload = MarshalMethod(frame.Method)
	case KindContentHeader:
		frameType = FrameContentHeader
		payload = marshalContentHeader(frame.ContentHeader)
	case KindContentBody:
		frameType = FrameContentBody
		payload = frame.ContentBody
	case KindHeartbeat:
		frameType = FrameHeartbeat
		payload = nil
	default:
		return nil, newErrorf(ErrUnknownFrameType, "frame kind %d", frame.Kind)
	}

	out := make([]byte, 0, frameHeaderLen+len(payload)+1)
	out = append(out, frameType)
	out = append(out, EncodeShort(channel)...)
	out = append(out, EncodeLong(uint32(len(payload)))...)
	out = append(out, payload...)
	out = append(out, frameEndByte)
	return out, nil
}

func marshalContentHeader(h ContentHeaderPayload) []byte {
	out := make([]byte, 0, 12)
	out = append(out, EncodeShort(h.ClassID)...)
	out = append(out, EncodeShort(0)...) // weight, reserved
	out = append(out, EncodeLongLong(h.BodySize)...)
	props, err := EncodeProperties(h.Properties)
	if err != nil {
		props = EncodeShort(0)
	}
	out = append(out, props...)
	return out
}

// Unmarshal decodes the single frame at the start of buf, returning the
// number of bytes consumed, the frame's channel (0 for ProtocolHeader), and
// the decoded Frame. buf is never mutated.
func Unmarshal(buf []byte) (int, uint16, Frame, error) {
	if len(buf) >= 4 && bytes.Equal(buf[:4], protocolHeaderPrefix) {
		if len(buf) < 8 {
			return 0, 0, Frame{}, needMoreData(8)
		}
		if [4]byte{buf[4], buf[5], buf[6], buf[7]} != protocolHeaderSuffix {
			return 0, 0, Frame{}, ErrInvalidProtocolHeader
		}
		return 8, 0, Frame{
			Kind:           KindProtocolHeader,
			ProtocolHeader: ProtocolHeader{Major: buf[5], Minor: buf[6], Revision: buf[7]},
		}, nil
	}

	if len(buf) < frameHeaderLen {
		return 0, 0, Frame{}, needMoreData(frameHeaderLen + 1)
	}

	frameType := buf[0]
	channel, offset, err := DecodeShort(buf, 1)
	if err != nil {
		return 0, 0, Frame{}, err
	}
	length, _, err := DecodeLong(buf, offset)
	if err != nil {
		return 0, 0, Frame{}, err
	}

	total := frameHeaderLen + int(length) + 1
	if len(buf) < total {
		return 0, 0, Frame{}, needMoreData(uint64(total))
	}
	if buf[total-1] != frameEndByte {
		return 0, 0, Frame{}, ErrInvalidFrameEnd
	}
	payload := buf[frameHeaderLen : frameHeaderLen+int(length)]

	switch frameType {
	case FrameMethod:
		m, _, err := UnmarshalMethod(payload)
		if err != nil {
			return 0, 0, Frame{}, err
		}
		return total, channel, Frame{Kind: KindMethod, Method: m}, nil
	case FrameContentHeader:
		h, err := decodeContentHeader(payload)
		if err != nil {
			return 0, 0, Frame{}, err
		}
		return total, channel, Frame{Kind: KindContentHeader, ContentHeader: h}, nil
	case FrameContentBody:
		body := make([]byte, len(payload))
		copy(body, payload)
		return total, channel, Frame{Kind: KindContentBody, ContentBody: body}, nil
	case FrameHeartbeat:
		if channel != 0 {
			return 0, 0, Frame{}, ErrHeartbeatChannelNonZero
		}
		return total, channel, Frame{Kind: KindHeartbeat}, nil
	default:
		return 0, 0, Frame{}, newErrorf(ErrUnknownFrameType, "frame type 0x%02x", frameType)
	}
}

func decodeContentHeader(payload []byte) (ContentHeaderPayload, error) {
	classID, offset, err := DecodeShort(payload, 0)
	if err != nil {
		return ContentHeaderPayload{}, err
	}
	_, offset, err = DecodeShort(payload, offset) // weight, reserved
	if err != nil {
		return ContentHeaderPayload{}, err
	}
	bodySize, offset, err := DecodeLongLong(payload, offset)
	if err != nil {
		return ContentHeaderPayload{}, err
	}
	props, _, err := DecodeProperties(payload, offset)
	if err != nil {
		return ContentHeaderPayload{}, err
	}
	return ContentHeaderPayload{ClassID: classID, BodySize: bodySize, Properties: props}, nil
}

// DecodedFrame pairs an Unmarshal result with the number of bytes it
// consumed, for UnmarshalStream callers that walk a buffer of many frames.
type DecodedFrame struct {
	Consumed int
	Channel  uint16
	Frame    Frame
}

// UnmarshalStream decodes every complete frame in buf in order, accumulating
// per-frame errors instead of stopping at the first one. It stops cleanly
// when the remainder of buf is a trailing partial frame (ErrNeedMoreData),
// which is not treated as an error. Any other decode error for a frame is
// collected into the returned *multierror.Error and that frame is skipped by
// its declared length when buf holds all of it (otherwise by one byte), so a
// single corrupt frame cannot wedge the scan.
func UnmarshalStream(buf []byte) ([]DecodedFrame, error) {
	var frames []DecodedFrame
	var errs *multierror.Error

	for len(buf) > 0 {
		consumed, channel, frame, err := Unmarshal(buf)
		if err != nil {
			if _, ok := err.(*NeedMoreDataError); ok {
				break
			}
			errs = multierror.Append(errs, newErrorf(err, "decoding frame at stream offset"))
			skip := 1
			if length, _, lerr := DecodeLong(buf, 3); lerr == nil {
				if total := frameHeaderLen + int(length) + 1; total <= len(buf) {
					skip = total
				}
			}
			buf = buf[skip:]
			continue
		}
		frames = append(frames, DecodedFrame{Consumed: consumed, Channel: channel, Frame: frame})
		buf = buf[consumed:]
	}
	return frames, errs.ErrorOrNil()
}
