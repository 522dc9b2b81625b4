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

// ExchangeDeclare asserts an exchange exists, creating it if needed.
type ExchangeDeclare struct {
	Ticket       uint16
	Exchange     string
	ExchangeType string
	Passive      bool
	Durable      bool
	AutoDelete   bool
	Internal     bool
	NoWait       bool
	Arguments    Table
}

func (m ExchangeDeclare) Name() string     { return "Exchange.Declare" }
func (m ExchangeDeclare) ClassID() uint16  { return ClassExchange }
func (m ExchangeDeclare) MethodID() uint16 { return 10 }
func (m ExchangeDeclare) HasContent() bool { return false }

func (m ExchangeDeclare) marshal() []byte {
	out := append([]byte{}, EncodeShort(m.Ticket)...)
	ex, _ := EncodeShortStr(m.Exchange)
	out = append(out, ex...)
	typ, _ := EncodeShortStr(m.ExchangeType)
	out = append(out, typ...)
	out = append(out, packBits(m.Passive, m.Durable, m.AutoDelete, m.Internal, m.NoWait)...)
	args, err := EncodeTable(m.Arguments)
	if err != nil {
		args = EncodeLong(0)
	}
	out = append(out, args...)
	return out
}

func decodeExchangeDeclare(b []byte) (Method, int, error) {
	ticket, offset, err := DecodeShort(b, 0)
	if err != nil {
		return nil, 0, err
	}
	exchange, offset, err := DecodeShortStr(b, offset)
	if err != nil {
		return nil, 0, err
	}
	typ, offset, err := DecodeShortStr(b, offset)
	if err != nil {
		return nil, 0, err
	}
	bits, offset, err := unpackBits(b, offset, 5)
	if err != nil {
		return nil, 0, err
	}
	args, offset, err := DecodeTable(b, offset)
	if err != nil {
		return nil, 0, err
	}
	return ExchangeDeclare{
		Ticket: ticket, Exchange: exchange, ExchangeType: typ,
		Passive: bits[0], Durable: bits[1], AutoDelete: bits[2], Internal: bits[3], NoWait: bits[4],
		Arguments: args,
	}, offset, nil
}

// ExchangeDeclareOk confirms an exchange declaration.
type ExchangeDeclareOk struct{}

func (m ExchangeDeclareOk) Name() string     { return "Exchange.DeclareOk" }
func (m ExchangeDeclareOk) ClassID() uint16  { return ClassExchange }
func (m ExchangeDeclareOk) MethodID() uint16 { return 11 }
func (m ExchangeDeclareOk) HasContent() bool { return false }
func (m ExchangeDeclareOk) marshal() []byte  { return nil }

func decodeExchangeDeclareOk(b []byte) (Method, int, error) {
	return ExchangeDeclareOk{}, 0, nil
}

// ExchangeDelete removes an exchange.
type ExchangeDelete struct {
	Ticket   uint16
	Exchange string
	IfUnused bool
	NoWait   bool
}

func (m ExchangeDelete) Name() string     { return "Exchange.Delete" }
func (m ExchangeDelete) ClassID() uint16  { return ClassExchange }
func (m ExchangeDelete) MethodID() uint16 { return 20 }
func (m ExchangeDelete) HasContent() bool { return false }

func (m ExchangeDelete) marshal() []byte {
	out := append([]byte{}, EncodeShort(m.Ticket)...)
	ex, _ := EncodeShortStr(m.Exchange)
	out = append(out, ex...)
	out = append(out, packBits(m.IfUnused, m.NoWait)...)
	return out
}

func decodeExchangeDelete(b []byte) (Method, int, error) {
	ticket, offset, err := DecodeShort(b, 0)
	if err != nil {
		return nil, 0, err
	}
	exchange, offset, err := DecodeShortStr(b, offset)
	if err != nil {
		return nil, 0, err
	}
	bits, offset, err := unpackBits(b, offset, 2)
	if err != nil {
		return nil, 0, err
	}
	return ExchangeDelete{Ticket: ticket, Exchange: exchange, IfUnused: bits[0], NoWait: bits[1]}, offset, nil
}

// ExchangeDeleteOk confirms an exchange deletion.
type ExchangeDeleteOk struct{}

func (m ExchangeDeleteOk) Name() string     { return "Exchange.DeleteOk" }
func (m ExchangeDeleteOk) ClassID() uint16  { return ClassExchange }
func (m ExchangeDeleteOk) MethodID() uint16 { return 21 }
func (m ExchangeDeleteOk) HasContent() bool { return false }
func (m ExchangeDeleteOk) marshal() []byte  { return nil }

func decodeExchangeDeleteOk(b []byte) (Method, int, error) {
	return ExchangeDeleteOk{}, 0, nil
}

// ExchangeBind binds an exchange to an exchange.
type ExchangeBind struct {
	Ticket      uint16
	Destination string
	Source      string
	RoutingKey  string
	NoWait      bool
	Arguments   Table
}

func (m ExchangeBind) Name() string     { return "Exchange.Bind" }
func (m ExchangeBind) ClassID() uint16  { return ClassExchange }
func (m ExchangeBind) MethodID() uint16 { return 30 }
func (m ExchangeBind) HasContent() bool { return false }

func (m ExchangeBind) marshal() []byte {
	out := append([]byte{}, EncodeShort(m.Ticket)...)
	dst, _ := EncodeShortStr(m.Destination)
	out = append(out, dst...)
	src, _ := EncodeShortStr(m.Source)
	out = append(out, src...)
	rk, _ := EncodeShortStr(m.RoutingKey)
	out = append(out, rk...)
	out = append(out, packBits(m.NoWait)...)
	args, err := EncodeTable(m.Arguments)
	if err != nil {
		args = EncodeLong(0)
	}
	out = append(out, args...)
	return out
}

func decodeExchangeBind(b []byte) (Method, int, error) {
	ticket, offset, err := DecodeShort(b, 0)
	if err != nil {
		return nil, 0, err
	}
	dst, offset, err := DecodeShortStr(b, offset)
	if err != nil {
		return nil, 0, err
	}
	src, offset, err := DecodeShortStr(b, offset)
	if err != nil {
		return nil, 0, err
	}
	rk, offset, err := DecodeShortStr(b, offset)
	if err != nil {
		return nil, 0, err
	}
	bits, offset, err := unpackBits(b, offset, 1)
	if err != nil {
		return nil, 0, err
	}
	args, offset, err := DecodeTable(b, offset)
	if err != nil {
		return nil, 0, err
	}
	return ExchangeBind{
		Ticket: ticket, Destination: dst, Source: src, RoutingKey: rk, NoWait: bits[0], Arguments: args,
	}, offset, nil
}

// ExchangeBindOk confirms an exchange-to-exchange binding.
type ExchangeBindOk struct{}

func (m ExchangeBindOk) Name() string     { return "Exchange.BindOk" }
func (m ExchangeBindOk) ClassID() uint16  { return ClassExchange }
func (m ExchangeBindOk) MethodID() uint16 { return 31 }
func (m ExchangeBindOk) HasContent() bool { return false }
func (m ExchangeBindOk) marshal() []byte  { return nil }

func decodeExchangeBindOk(b []byte) (Method, int, error) {
	return ExchangeBindOk{}, 0, nil
}

// ExchangeUnbind removes an exchange-to-exchange binding.
type ExchangeUnbind struct {
	Ticket      uint16
	Destination string
	Source      string
	RoutingKey  string
	NoWait      bool
	Arguments   Table
}

func (m ExchangeUnbind) Name() string     { return "Exchange.Unbind" }
func (m ExchangeUnbind) ClassID() uint16  { return ClassExchange }
func (m ExchangeUnbind) MethodID() uint16 { return 40 }
func (m ExchangeUnbind) HasContent() bool { return false }

func (m ExchangeUnbind) marshal() []byte {
	out := append([]byte{}, EncodeShort(m.Ticket)...)
	dst, _ := EncodeShortStr(m.Destination)
	out = append(out, dst...)
	src, _ := EncodeShortStr(m.Source)
	out = append(out, src...)
	rk, _ := EncodeShortStr(m.RoutingKey)
	out = append(out, rk...)
	out = append(out, packBits(m.NoWait)...)
	args, err := EncodeTable(m.Arguments)
	if err != nil {
		args = EncodeLong(0)
	}
	out = append(out, args...)
	return out
}

func decodeExchangeUnbind(b []byte) (Method, int, error) {
	ticket, offset, err := DecodeShort(b, 0)
	if err != nil {
		return nil, 0, err
	}
	dst, offset, err := DecodeShortStr(b, offset)
	if err != nil {
		return nil, 0, err
	}
	src, offset, err := DecodeShortStr(b, offset)
	if err != nil {
		return nil, 0, err
	}
	rk, offset, err := DecodeShortStr(b, offset)
	if err != nil {
		return nil, 0, err
	}
	bits, offset, err := unpackBits(b, offset, 1)
	if err != nil {
		return nil, 0, err
	}
	args, offset, err := DecodeTable(b, offset)
	if err != nil {
		return nil, 0, err
	}
	return ExchangeUnbind{
		Ticket: ticket, Destination: dst, Source: src, RoutingKey: rk, NoWait: bits[0], Arguments: args,
	}, offset, nil
}

// ExchangeUnbindOk confirms removal of an exchange-to-exchange binding.
type ExchangeUnbindOk struct{}

func (m ExchangeUnbindOk) Name() string     { return "Exchange.UnbindOk" }
func (m ExchangeUnbindOk) ClassID() uint16  { return ClassExchange }
func (m ExchangeUnbindOk) MethodID() uint16 { return 51 }
func (m ExchangeUnbindOk) HasContent() bool { return false }
func (m ExchangeUnbindOk) marshal() []byte  { return nil }

func decodeExchangeUnbindOk(b []byte) (Method, int, error) {
	return ExchangeUnbindOk{}, 0, nil
}
