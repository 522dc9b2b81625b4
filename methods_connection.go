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

// ConnectionStart is sent by the server to open a connection negotiation.
type ConnectionStart struct {
	VersionMajor      uint8
	VersionMinor      uint8
	ServerProperties  Table
	Mechanisms        string
	Locales           string
}

func (m ConnectionStart) Name() string      { return "Connection.Start" }
func (m ConnectionStart) ClassID() uint16   { return ClassConnection }
func (m ConnectionStart) MethodID() uint16  { return 10 }
func (m ConnectionStart) HasContent() bool  { return false }

func (m ConnectionStart) marshal() []byte {
	out := append([]byte{}, EncodeOctet(m.VersionMajor)...)
	out = append(out, EncodeOctet(m.VersionMinor)...)
	props, err := EncodeTable(m.ServerProperties)
	if err != nil {
		props = EncodeLong(0)
	}
	out = append(out, props...)
	out = append(out, EncodeLongStrText(m.Mechanisms)...)
	out = append(out, EncodeLongStrText(m.Locales)...)
	return out
}

func decodeConnectionStart(b []byte) (Method, int, error) {
	major, offset, err := DecodeOctet(b, 0)
	if err != nil {
		return nil, 0, err
	}
	minor, offset, err := DecodeOctet(b, offset)
	if err != nil {
		return nil, 0, err
	}
	props, offset, err := DecodeTable(b, offset)
	if err != nil {
		return nil, 0, err
	}
	mechanisms, offset, err := DecodeLongStrText(b, offset)
	if err != nil {
		return nil, 0, err
	}
	locales, offset, err := DecodeLongStrText(b, offset)
	if err != nil {
		return nil, 0, err
	}
	return ConnectionStart{
		VersionMajor:     major,
		VersionMinor:     minor,
		ServerProperties: props,
		Mechanisms:       mechanisms,
		Locales:          locales,
	}, offset, nil
}

// ConnectionStartOk is the client's reply to Connection.Start.
type ConnectionStartOk struct {
	ClientProperties Table
	Mechanism        string
	Response         string
	Locale           string
}

func (m ConnectionStartOk) Name() string     { return "Connection.StartOk" }
func (m ConnectionStartOk) ClassID() uint16  { return ClassConnection }
func (m ConnectionStartOk) MethodID() uint16 { return 11 }
func (m ConnectionStartOk) HasContent() bool { return false }

func (m ConnectionStartOk) marshal() []byte {
	props, err := EncodeTable(m.ClientProperties)
	if err != nil {
		props = EncodeLong(0)
	}
	out := append([]byte{}, props...)
	mech, err := EncodeShortStr(m.Mechanism)
	if err != nil {
		mech = []byte{0}
	}
	out = append(out, mech...)
	out = append(out, EncodeLongStrText(m.Response)...)
	loc, err := EncodeShortStr(m.Locale)
	if err != nil {
		loc = []byte{0}
	}
	out = append(out, loc...)
	return out
}

func decodeConnectionStartOk(b []byte) (Method, int, error) {
	props, offset, err := DecodeTable(b, 0)
	if err != nil {
		return nil, 0, err
	}
	mechanism, offset, err := DecodeShortStr(b, offset)
	if err != nil {
		return nil, 0, err
	}
	response, offset, err := DecodeLongStrText(b, offset)
	if err != nil {
		return nil, 0, err
	}
	locale, offset, err := DecodeShortStr(b, offset)
	if err != nil {
		return nil, 0, err
	}
	return ConnectionStartOk{
		ClientProperties: props,
		Mechanism:        mechanism,
		Response:         response,
		Locale:           locale,
	}, offset, nil
}

// ConnectionSecure carries a security-mechanism challenge from the server.
type ConnectionSecure struct {
	Challenge string
}

func (m ConnectionSecure) Name() string      { return "Connection.Secure" }
func (m ConnectionSecure) ClassID() uint16   { return ClassConnection }
func (m ConnectionSecure) MethodID() uint16  { return 20 }
func (m ConnectionSecure) HasContent() bool  { return false }
func (m ConnectionSecure) marshal() []byte   { return EncodeLongStrText(m.Challenge) }

func decodeConnectionSecure(b []byte) (Method, int, error) {
	challenge, offset, err := DecodeLongStrText(b, 0)
	if err != nil {
		return nil, 0, err
	}
	return ConnectionSecure{Challenge: challenge}, offset, nil
}

// ConnectionSecureOk answers a security challenge.
type ConnectionSecureOk struct {
	Response string
}

func (m ConnectionSecureOk) Name() string     { return "Connection.SecureOk" }
func (m ConnectionSecureOk) ClassID() uint16  { return ClassConnection }
func (m ConnectionSecureOk) MethodID() uint16 { return 21 }
func (m ConnectionSecureOk) HasContent() bool { return false }
func (m ConnectionSecureOk) marshal() []byte  { return EncodeLongStrText(m.Response) }

func decodeConnectionSecureOk(b []byte) (Method, int, error) {
	response, offset, err := DecodeLongStrText(b, 0)
	if err != nil {
		return nil, 0, err
	}
	return ConnectionSecureOk{Response: response}, offset, nil
}

// ConnectionTune proposes connection tuning parameters.
type ConnectionTune struct {
	ChannelMax uint16
	FrameMax   uint32
	Heartbeat  uint16
}

func (m ConnectionTune) Name() string     { return "Connection.Tune" }
func (m ConnectionTune) ClassID() uint16  { return ClassConnection }
func (m ConnectionTune) MethodID() uint16 { return 30 }
func (m ConnectionTune) HasContent() bool { return false }

func (m ConnectionTune) marshal() []byte {
	out := append([]byte{}, EncodeShort(m.ChannelMax)...)
	out = append(out, EncodeLong(m.FrameMax)...)
	out = append(out, EncodeShort(m.Heartbeat)...)
	return out
}

func decodeConnectionTune(b []byte) (Method, int, error) {
	channelMax, offset, err := DecodeShort(b, 0)
	if err != nil {
		return nil, 0, err
	}
	frameMax, offset, err := DecodeLong(b, offset)
	if err != nil {
		return nil, 0, err
	}
	heartbeat, offset, err := DecodeShort(b, offset)
	if err != nil {
		return nil, 0, err
	}
	return ConnectionTune{ChannelMax: channelMax, FrameMax: frameMax, Heartbeat: heartbeat}, offset, nil
}

// ConnectionTuneOk confirms the connection tuning parameters in use.
type ConnectionTuneOk struct {
	ChannelMax uint16
	FrameMax   uint32
	Heartbeat  uint16
}

func (m ConnectionTuneOk) Name() string     { return "Connection.TuneOk" }
func (m ConnectionTuneOk) ClassID() uint16  { return ClassConnection }
func (m ConnectionTuneOk) MethodID() uint16 { return 31 }
func (m ConnectionTuneOk) HasContent() bool { return false }

func (m ConnectionTuneOk) marshal() []byte {
	out := append([]byte{}, EncodeShort(m.ChannelMax)...)
	out = append(out, EncodeLong(m.FrameMax)...)
	out = append(out, EncodeShort(m.Heartbeat)...)
	return out
}

func decodeConnectionTuneOk(b []byte) (Method, int, error) {
	channelMax, offset, err := DecodeShort(b, 0)
	if err != nil {
		return nil, 0, err
	}
	frameMax, offset, err := DecodeLong(b, offset)
	if err != nil {
		return nil, 0, err
	}
	heartbeat, offset, err := DecodeShort(b, offset)
	if err != nil {
		return nil, 0, err
	}
	return ConnectionTuneOk{ChannelMax: channelMax, FrameMax: frameMax, Heartbeat: heartbeat}, offset, nil
}

// ConnectionOpen opens a virtual host connection.
type ConnectionOpen struct {
	VirtualHost  string
	Capabilities string // reserved
	Insist       bool   // reserved
}

func (m ConnectionOpen) Name() string     { return "Connection.Open" }
func (m ConnectionOpen) ClassID() uint16  { return ClassConnection }
func (m ConnectionOpen) MethodID() uint16 { return 40 }
func (m ConnectionOpen) HasContent() bool { return false }

func (m ConnectionOpen) marshal() []byte {
	vhost, err := EncodeShortStr(m.VirtualHost)
	if err != nil {
		vhost = []byte{0}
	}
	out := append([]byte{}, vhost...)
	caps, err := EncodeShortStr(m.Capabilities)
	if err != nil {
		caps = []byte{0}
	}
	out = append(out, caps...)
	out = append(out, packBits(m.Insist)...)
	return out
}

func decodeConnectionOpen(b []byte) (Method, int, error) {
	vhost, offset, err := DecodeShortStr(b, 0)
	if err != nil {
		return nil, 0, err
	}
	caps, offset, err := DecodeShortStr(b, offset)
	if err != nil {
		return nil, 0, err
	}
	bits, offset, err := unpackBits(b, offset, 1)
	if err != nil {
		return nil, 0, err
	}
	return ConnectionOpen{VirtualHost: vhost, Capabilities: caps, Insist: bits[0]}, offset, nil
}

// ConnectionOpenOk confirms a connection is ready for use.
type ConnectionOpenOk struct {
	KnownHosts string // reserved
}

func (m ConnectionOpenOk) Name() string     { return "Connection.OpenOk" }
func (m ConnectionOpenOk) ClassID() uint16  { return ClassConnection }
func (m ConnectionOpenOk) MethodID() uint16 { return 41 }
func (m ConnectionOpenOk) HasContent() bool { return false }

func (m ConnectionOpenOk) marshal() []byte {
	known, err := EncodeShortStr(m.KnownHosts)
	if err != nil {
		known = []byte{0}
	}
	return known
}

func decodeConnectionOpenOk(b []byte) (Method, int, error) {
	known, offset, err := DecodeShortStr(b, 0)
	if err != nil {
		return nil, 0, err
	}
	return ConnectionOpenOk{KnownHosts: known}, offset, nil
}

// ConnectionClose signals an orderly or error-driven connection shutdown.
type ConnectionClose struct {
	ReplyCode uint16
	ReplyText string
	ClassID_  uint16
	MethodID_ uint16
}

func (m ConnectionClose) Name() string     { return "Connection.Close" }
func (m ConnectionClose) ClassID() uint16  { return ClassConnection }
func (m ConnectionClose) MethodID() uint16 { return 50 }
func (m ConnectionClose) HasContent() bool { return false }

func (m ConnectionClose) marshal() []byte {
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

func decodeConnectionClose(b []byte) (Method, int, error) {
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
	return ConnectionClose{ReplyCode: code, ReplyText: text, ClassID_: classID, MethodID_: methodID}, offset, nil
}

// ConnectionCloseOk confirms a connection close.
type ConnectionCloseOk struct{}

func (m ConnectionCloseOk) Name() string     { return "Connection.CloseOk" }
func (m ConnectionCloseOk) ClassID() uint16  { return ClassConnection }
func (m ConnectionCloseOk) MethodID() uint16 { return 51 }
func (m ConnectionCloseOk) HasContent() bool { return false }
func (m ConnectionCloseOk) marshal() []byte  { return nil }

func decodeConnectionCloseOk(b []byte) (Method, int, error) {
	return ConnectionCloseOk{}, 0, nil
}
