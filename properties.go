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

import "time"

// BasicProperties holds the 14 content properties defined for the Basic
// class, in their wire-declared order. A field is present on the wire only
// when set to a non-zero value; DecodeProperties leaves absent fields
// at their Go zero value, so presence and value are indistinguishable for a
// property deliberately set to zero. Callers that need to tell the two apart
// should track presence themselves.
type BasicProperties struct {
	ContentType     string
	ContentEncoding string
	Headers         Table
	DeliveryMode    uint8
	Priority        uint8
	CorrelationID   string
	ReplyTo         string
	Expiration      string
	MessageID       string
	Timestamp       time.Time
	MessageType     string
	UserID          string
	AppID           string
	ClusterID       string
}

// the bit position of each Basic property within the flag word, MSB first
// as laid out by the property-flags chain (bit 15 is the first property).
const (
	flagContentType = 15 - iota
	flagContentEncoding
	flagHeaders
	flagDeliveryMode
	flagPriority
	flagCorrelationID
	flagReplyTo
	flagExpiration
	flagMessageID
	flagTimestamp
	flagMessageType
	flagUserID
	flagAppID
	flagClusterID
)

// EncodeProperties encodes p as a property-flags chain followed by the
// present fields in declared order, per the AMQP content-header wire format.
func EncodeProperties(p BasicProperties) ([]byte, error) {
	var flags uint16
	if p.ContentType != "" {
		flags |= 1 << flagContentType
	}
	if p.ContentEncoding != "" {
		flags |= 1 << flagContentEncoding
	}
	if p.Headers != nil {
		flags |= 1 << flagHeaders
	}
	if p.DeliveryMode != 0 {
		flags |= 1 << flagDeliveryMode
	}
	if p.Priority != 0 {
		flags |= 1 << flagPriority
	}
	if p.CorrelationID != "" {
		flags |= 1 << flagCorrelationID
	}
	if p.ReplyTo != "" {
		flags |= 1 << flagReplyTo
	}
	if p.Expiration != "" {
		flags |= 1 << flagExpiration
	}
	if p.MessageID != "" {
		flags |= 1 << flagMessageID
	}
	if !p.Timestamp.IsZero() {
		flags |= 1 << flagTimestamp
	}
	if p.MessageType != "" {
		flags |= 1 << flagMessageType
	}
	if p.UserID != "" {
		flags |= 1 << flagUserID
	}
	if p.AppID != "" {
		flags |= 1 << flagAppID
	}
	if p.ClusterID != "" {
		flags |= 1 << flagClusterID
	}

	out := append([]byte{}, EncodeShort(flags)...)
	if flags&(1<<flagContentType) != 0 {
		b, err := EncodeShortStr(p.ContentType)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	if flags&(1<<flagContentEncoding) != 0 {
		b, err := EncodeShortStr(p.ContentEncoding)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	if flags&(1<<flagHeaders) != 0 {
		b, err := EncodeTable(p.Headers)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	if flags&(1<<flagDeliveryMode) != 0 {
		out = append(out, EncodeOctet(p.DeliveryMode)...)
	}
	if flags&(1<<flagPriority) != 0 {
		out = append(out, EncodeOctet(p.Priority)...)
	}
	if flags&(1<<flagCorrelationID) != 0 {
		b, err := EncodeShortStr(p.CorrelationID)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	if flags&(1<<flagReplyTo) != 0 {
		b, err := EncodeShortStr(p.ReplyTo)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	if flags&(1<<flagExpiration) != 0 {
		b, err := EncodeShortStr(p.Expiration)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	if flags&(1<<flagMessageID) != 0 {
		b, err := EncodeShortStr(p.MessageID)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	if flags&(1<<flagTimestamp) != 0 {
		out = append(out, EncodeTimestamp(p.Timestamp)...)
	}
	if flags&(1<<flagMessageType) != 0 {
		b, err := EncodeShortStr(p.MessageType)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	if flags&(1<<flagUserID) != 0 {
		b, err := EncodeShortStr(p.UserID)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	if flags&(1<<flagAppID) != 0 {
		b, err := EncodeShortStr(p.AppID)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	if flags&(1<<flagClusterID) != 0 {
		b, err := EncodeShortStr(p.ClusterID)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// DecodeProperties decodes a property-flags chain and its present fields at
// offset, returning the number of bytes consumed.
func DecodeProperties(b []byte, offset int) (BasicProperties, int, error) {
	var p BasicProperties
	flags, offset, err := DecodeShort(b, offset)
	if err != nil {
		return p, offset, err
	}
	// Basic never continues past one flag word: 14 properties fit in 15 bits.
	if flags&1 != 0 {
		return p, offset, newErrorf(ErrTruncatedBuffer, "unexpected property-flags continuation")
	}
	if flags&(1<<flagContentType) != 0 {
		p.ContentType, offset, err = DecodeShortStr(b, offset)
		if err != nil {
			return p, offset, err
		}
	}
	if flags&(1<<flagContentEncoding) != 0 {
		p.ContentEncoding, offset, err = DecodeShortStr(b, offset)
		if err != nil {
			return p, offset, err
		}
	}
	if flags&(1<<flagHeaders) != 0 {
		p.Headers, offset, err = DecodeTable(b, offset)
		if err != nil {
			return p, offset, err
		}
	}
	if flags&(1<<flagDeliveryMode) != 0 {
		p.DeliveryMode, offset, err = DecodeOctet(b, offset)
		if err != nil {
			return p, offset, err
		}
	}
	if flags&(1<<flagPriority) != 0 {
		p.Priority, offset, err = DecodeOctet(b, offset)
		if err != nil {
			return p, offset, err
		}
	}
	if flags&(1<<flagCorrelationID) != 0 {
		p.CorrelationID, offset, err = DecodeShortStr(b, offset)
		if err != nil {
			return p, offset, err
		}
	}
	if flags&(1<<flagReplyTo) != 0 {
		p.ReplyTo, offset, err = DecodeShortStr(b, offset)
		if err != nil {
			return p, offset, err
		}
	}
	if flags&(1<<flagExpiration) != 0 {
		p.Expiration, offset, err = DecodeShortStr(b, offset)
		if err != nil {
			return p, offset, err
		}
	}
	if flags&(1<<flagMessageID) != 0 {
		p.MessageID, offset, err = DecodeShortStr(b, offset)
		if err != nil {
			return p, offset, err
		}
	}
	if flags&(1<<flagTimestamp) != 0 {
		p.Timestamp, offset, err = DecodeTimestamp(b, offset)
		if err != nil {
			return p, offset, err
		}
	}
	if flags&(1<<flagMessageType) != 0 {
		p.MessageType, offset, err = DecodeShortStr(b, offset)
		if err != nil {
			return p, offset, err
		}
	}
	if flags&(1<<flagUserID) != 0 {
		p.UserID, offset, err = DecodeShortStr(b, offset)
		if err != nil {
			return p, offset, err
		}
	}
	if flags&(1<<flagAppID) != 0 {
		p.AppID, offset, err = DecodeShortStr(b, offset)
		if err != nil {
			return p, offset, err
		}
	}
	if flags&(1<<flagClusterID) != 0 {
		p.ClusterID, offset, err = DecodeShortStr(b, offset)
		if err != nil {
			return p, offset, err
		}
	}
	return p, offset, nil
}
