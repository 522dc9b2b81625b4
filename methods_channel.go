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

// ChannelOpen opens a channel for use.
type ChannelOpen struct {
	OutOfBand string // reserved
}

func (m ChannelOpen) Name() string     { return "Channel.Open" }
func (m ChannelOpen) ClassID() uint16  { return ClassChannel }
func (m ChannelOpen) MethodID() uint16 { return 10 }
func (m ChannelOpen) HasContent() bool { return false }

func (m ChannelOpen) marshal() []byte {
	oob, err := EncodeShortStr(m.OutOfBand)
	if err != nil {
		oob = []byte{0}
	}
	return oob
}

func decodeChannelOpen(b []byte) (Method, int, error) {
	oob, offset, err := DecodeShortStr(b, 0)
	if err != nil {
		return nil, 0, err
	}
	return ChannelOpen{OutOfBand: oob}, offset, nil
}

// ChannelOpenOk confirms a channel is open.
type ChannelOpenOk struct {
	ChannelID string // reserved, longstr
}

func (m ChannelOpenOk) Name() string     { return "Channel.OpenOk" }
func (m ChannelOpenOk) ClassID() uint16  { return ClassChannel }
func (m ChannelOpenOk) MethodID() uint16 { return 11 }
func (m ChannelOpenOk) HasContent() bool { return false }
func (m ChannelOpenOk) marshal() []byte  { return EncodeLongStrText(m.ChannelID) }

func decodeChannelOpenOk(b []byte) (Method, int, error) {
	id, offset, err := DecodeLongStrText(b, 0)
	if err != nil {
		return nil, 0, err
	}
	return ChannelOpenOk{ChannelID: id}, offset, nil
}

// ChannelFlow asks the peer to pause or resume sending content frames.
type ChannelFlow struct {
	Active bool
}

func (m ChannelFlow) Name() string     { return "Channel.Flow" }
func (m ChannelFlow) ClassID() uint16  { return ClassChannel }
func (m ChannelFlow) MethodID() uint16 { return 20 }
func (m ChannelFlow) HasContent() bool { return false }
func (m ChannelFlow) marshal() []byte  { return packBits(m.Active) }

func decodeChannelFlow(b []byte) (Method, int, error) {
	bits, offset, err := unpackBits(b, 0, 1)
	if err != nil {
		return nil, 0, err
	}
	return ChannelFlow{Active: bits[0]}, offset, nil
}

// ChannelFlowOk confirms a flow request was honored.
type ChannelFlowOk struct {
	Active bool
}

func (m ChannelFlowOk) Name() string     { return "Channel.FlowOk" }
func (m ChannelFlowOk) ClassID() uint16  { return ClassChannel }
func (m ChannelFlowOk) MethodID() uint16 { return 21 }
func (m ChannelFlowOk) HasContent() bool { return false }
func (m ChannelFlowOk) marshal() []byte  { return packBits(m.Active) }

func decodeChannelFlowOk(b []byte) (Method, int, error) {
	bits, offset, err := unpackBits(b, 0, 1)
	if err != nil {
		return nil, 0, err
	}
	return ChannelFlowOk{Active: bits[0]}, offset, nil
}

// ChannelClose signals an orderly or error-driven channel shutdown.
type ChannelClose struct {
	ReplyCode uint16
	ReplyText string
	ClassID_  uint16
	MethodID_ uint16
}

func (m ChannelClose) Name() string     { return "Channel.Close" }
func (m ChannelClose) ClassID() uint16  { return ClassChannel }
func (m ChannelClose) MethodID() uint16 { return 40 }
func (m ChannelClose) HasContent() bool { return false }

func (m ChannelClose) marshal() []byte {
	out := append([]byte{}, EncodeShort(m.ReplyCode)...)
	text, err := EncodeShortStr(m.ReplyText)
	if err != nil {
		text = []byte{0}
	}
	out = append(out, text...)
	out = append(out, EncodeShort(m.ClassID_)...)
	out = append(out, EncodeShort(m.MethodID_)...)
	return out
}

func decodeChannelClose(b []byte) (Method, int, error) {
	code, offset, err := DecodeShort(b, 0)
	if err != nil {
		return nil, 0, err
	}
	text, offset, err := DecodeShortStr(b, offset)
	if err != nil {
		return nil, 0, err
	}
	classID, offset, err := DecodeShort(b, offset)
	if err != nil {
		return nil, 0, err
	}
	methodID, offset, err := DecodeShort(b, offset)
	if err != nil {
		return nil, 0, err
	}
	return ChannelClose{ReplyCode: code, ReplyText: text, ClassID_: classID, MethodID_: methodID}, offset, nil
}

// ChannelCloseOk confirms a channel close.
type ChannelCloseOk struct{}

func (m ChannelCloseOk) Name() string     { return "Channel.CloseOk" }
func (m ChannelCloseOk) ClassID() uint16  { return ClassChannel }
func (m ChannelCloseOk) MethodID() uint16 { return 41 }
func (m ChannelCloseOk) HasContent() bool { return false }
func (m ChannelCloseOk) marshal() []byte  { return nil }

func decodeChannelCloseOk(b []byte) (Method, int, error) {
	return ChannelCloseOk{}, 0, nil
}
