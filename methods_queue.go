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

// QueueDeclare asserts a queue exists, creating it if needed.
type QueueDeclare struct {
	Ticket     uint16
	Queue      string
	Passive    bool
	Durable    bool
	Exclusive  bool
	AutoDelete bool
	NoWait     bool
	Arguments  Table
}

func (m QueueDeclare) Name() string     { return "Queue.Declare" }
func (m QueueDeclare) ClassID() uint16  { return ClassQueue }
func (m QueueDeclare) MethodID() uint16 { return 10 }
func (m QueueDeclare) HasContent() bool { return false }

func (m QueueDeclare) marshal() []byte {
	out := append([]byte{}, EncodeShort(m.Ticket)...)
	q, _ := EncodeShortStr(m.Queue)
	out = append(out, q...)
	out = append(out, packBits(m.Passive, m.Durable, m.Exclusive, m.AutoDelete, m.NoWait)...)
	args, err := EncodeTable(m.Arguments)
	if err != nil {
		args = EncodeLong(0)
	}
	out = append(out, args...)
	return out
}

func decodeQueueDeclare(b []byte) (Method, int, error) {
	ticket, offset, err := DecodeShort(b, 0)
	if err != nil {
		return nil, 0, err
	}
	queue, offset, err := DecodeShortStr(b, offset)
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
	return QueueDeclare{
		Ticket: ticket, Queue: queue,
		Passive: bits[0], Durable: bits[1], Exclusive: bits[2], AutoDelete: bits[3], NoWait: bits[4],
		Arguments: args,
	}, offset, nil
}

// QueueDeclareOk reports a queue's name and current size.
type QueueDeclareOk struct {
	Queue         string
	MessageCount  uint32
	ConsumerCount uint32
}

func (m QueueDeclareOk) Name() string     { return "Queue.DeclareOk" }
func (m QueueDeclareOk) ClassID() uint16  { return ClassQueue }
func (m QueueDeclareOk) MethodID() uint16 { return 11 }
func (m QueueDeclareOk) HasContent() bool { return false }

func (m QueueDeclareOk) marshal() []byte {
	q, _ := EncodeShortStr(m.Queue)
	out := append([]byte{}, q...)
	out = append(out, EncodeLong(m.MessageCount)...)
	out = append(out, EncodeLong(m.ConsumerCount)...)
	return out
}

func decodeQueueDeclareOk(b []byte) (Method, int, error) {
	queue, offset, err := DecodeShortStr(b, 0)
	if err != nil {
		return nil, 0, err
	}
	count, offset, err := DecodeLong(b, offset)
	if err != nil {
		return nil, 0, err
	}
	consumers, offset, err := DecodeLong(b, offset)
	if err != nil {
		return nil, 0, err
	}
	return QueueDeclareOk{Queue: queue, MessageCount: count, ConsumerCount: consumers}, offset, nil
}

// QueueBind binds a queue to an exchange.
type QueueBind struct {
	Ticket     uint16
	Queue      string
	Exchange   string
	RoutingKey string
	NoWait     bool
	Arguments  Table
}

func (m QueueBind) Name() string     { return "Queue.Bind" }
func (m QueueBind) ClassID() uint16  { return ClassQueue }
func (m QueueBind) MethodID() uint16 { return 20 }
func (m QueueBind) HasContent() bool { return false }

func (m QueueBind) marshal() []byte {
	out := append([]byte{}, EncodeShort(m.Ticket)...)
	q, _ := EncodeShortStr(m.Queue)
	out = append(out, q...)
	ex, _ := EncodeShortStr(m.Exchange)
	out = append(out, ex...)
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

func decodeQueueBind(b []byte) (Method, int, error) {
	ticket, offset, err := DecodeShort(b, 0)
	if err != nil {
		return nil, 0, err
	}
	queue, offset, err := DecodeShortStr(b, offset)
	if err != nil {
		return nil, 0, err
	}
	exchange, offset, err := DecodeShortStr(b, offset)
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
	return QueueBind{
		Ticket: ticket, Queue: queue, Exchange: exchange, RoutingKey: rk, NoWait: bits[0], Arguments: args,
	}, offset, nil
}

// QueueBindOk confirms a queue binding.
type QueueBindOk struct{}

func (m QueueBindOk) Name() string     { return "Queue.BindOk" }
func (m QueueBindOk) ClassID() uint16  { return ClassQueue }
func (m QueueBindOk) MethodID() uint16 { return 21 }
func (m QueueBindOk) HasContent() bool { return false }
func (m QueueBindOk) marshal() []byte  { return nil }

func decodeQueueBindOk(b []byte) (Method, int, error) {
	return QueueBindOk{}, 0, nil
}

// QueuePurge discards all messages from a queue.
type QueuePurge struct {
	Ticket uint16
	Queue  string
	NoWait bool
}

func (m QueuePurge) Name() string     { return "Queue.Purge" }
func (m QueuePurge) ClassID() uint16  { return ClassQueue }
func (m QueuePurge) MethodID() uint16 { return 30 }
func (m QueuePurge) HasContent() bool { return false }

func (m QueuePurge) marshal() []byte {
	out := append([]byte{}, EncodeShort(m.Ticket)...)
	q, _ := EncodeShortStr(m.Queue)
	out = append(out, q...)
	out = append(out, packBits(m.NoWait)...)
	return out
}

func decodeQueuePurge(b []byte) (Method, int, error) {
	ticket, offset, err := DecodeShort(b, 0)
	if err != nil {
		return nil, 0, err
	}
	queue, offset, err := DecodeShortStr(b, offset)
	if err != nil {
		return nil, 0, err
	}
	bits, offset, err := unpackBits(b, offset, 1)
	if err != nil {
		return nil, 0, err
	}
	return QueuePurge{Ticket: ticket, Queue: queue, NoWait: bits[0]}, offset, nil
}

// QueuePurgeOk reports how many messages a purge removed.
type QueuePurgeOk struct {
	MessageCount uint32
}

func (m QueuePurgeOk) Name() string     { return "Queue.PurgeOk" }
func (m QueuePurgeOk) ClassID() uint16  { return ClassQueue }
func (m QueuePurgeOk) MethodID() uint16 { return 31 }
func (m QueuePurgeOk) HasContent() bool { return false }
func (m QueuePurgeOk) marshal() []byte  { return EncodeLong(m.MessageCount) }

func decodeQueuePurgeOk(b []byte) (Method, int, error) {
	count, offset, err := DecodeLong(b, 0)
	if err != nil {
		return nil, 0, err
	}
	return QueuePurgeOk{MessageCount: count}, offset, nil
}

// QueueDelete removes a queue.
type QueueDelete struct {
	Ticket   uint16
	Queue    string
	IfUnused bool
	IfEmpty  bool
	NoWait   bool
}

func (m QueueDelete) Name() string     { return "Queue.Delete" }
func (m QueueDelete) ClassID() uint16  { return ClassQueue }
func (m QueueDelete) MethodID() uint16 { return 40 }
func (m QueueDelete) HasContent() bool { return false }

func (m QueueDelete) marshal() []byte {
	out := append([]byte{}, EncodeShort(m.Ticket)...)
	q, _ := EncodeShortStr(m.Queue)
	out = append(out, q...)
	out = append(out, packBits(m.IfUnused, m.IfEmpty, m.NoWait)...)
	return out
}

func decodeQueueDelete(b []byte) (Method, int, error) {
	ticket, offset, err := DecodeShort(b, 0)
	if err != nil {
		return nil, 0, err
	}
	queue, offset, err := DecodeShortStr(b, offset)
	if err != nil {
		return nil, 0, err
	}
	bits, offset, err := unpackBits(b, offset, 3)
	if err != nil {
		return nil, 0, err
	}
	return QueueDelete{Ticket: ticket, Queue: queue, IfUnused: bits[0], IfEmpty: bits[1], NoWait: bits[2]}, offset, nil
}

// QueueDeleteOk reports how many messages a deleted queue held.
type QueueDeleteOk struct {
	MessageCount uint32
}

func (m QueueDeleteOk) Name() string     { return "Queue.DeleteOk" }
func (m QueueDeleteOk) ClassID() uint16  { return ClassQueue }
func (m QueueDeleteOk) MethodID() uint16 { return 41 }
func (m QueueDeleteOk) HasContent() bool { return false }
func (m QueueDeleteOk) marshal() []byte  { return EncodeLong(m.MessageCount) }

func decodeQueueDeleteOk(b []byte) (Method, int, error) {
	count, offset, err := DecodeLong(b, 0)
	if err != nil {
		return nil, 0, err
	}
	return QueueDeleteOk{MessageCount: count}, offset, nil
}

// QueueUnbind removes a queue-to-exchange binding.
type QueueUnbind struct {
	Ticket     uint16
	Queue      string
	Exchange   string
	RoutingKey string
	Arguments  Table
}

func (m QueueUnbind) Name() string     { return "Queue.Unbind" }
func (m QueueUnbind) ClassID() uint16  { return ClassQueue }
func (m QueueUnbind) MethodID() uint16 { return 50 }
func (m QueueUnbind) HasContent() bool { return false }

func (m QueueUnbind) marshal() []byte {
	out := append([]byte{}, EncodeShort(m.Ticket)...)
	q, _ := EncodeShortStr(m.Queue)
	out = append(out, q...)
	ex, _ := EncodeShortStr(m.Exchange)
	out = append(out, ex...)
	rk, _ := EncodeShortStr(m.RoutingKey)
	out = append(out, rk...)
	args, err := EncodeTable(m.Arguments)
	if err != nil {
		args = EncodeLong(0)
	}
	out = append(out, args...)
	return out
}

func decodeQueueUnbind(b []byte) (Method, int, error) {
	ticket, offset, err := DecodeShort(b, 0)
	if err != nil {
		return nil, 0, err
	}
	queue, offset, err := DecodeShortStr(b, offset)
	if err != nil {
		return nil, 0, err
	}
	exchange, offset, err := DecodeShortStr(b, offset)
	if err != nil {
		return nil, 0, err
	}
	rk, offset, err := DecodeShortStr(b, offset)
	if err != nil {
		return nil, 0, err
	}
	args, offset, err := DecodeTable(b, offset)
	if err != nil {
		return nil, 0, err
	}
	return QueueUnbind{Ticket: ticket, Queue: queue, Exchange: exchange, RoutingKey: rk, Arguments: args}, offset, nil
}

// QueueUnbindOk confirms removal of a queue-to-exchange binding.
type QueueUnbindOk struct{}

func (m QueueUnbindOk) Name() string     { return "Queue.UnbindOk" }
func (m QueueUnbindOk) ClassID() uint16  { return ClassQueue }
func (m QueueUnbindOk) MethodID() uint16 { return 51 }
func (m QueueUnbindOk) HasContent() bool { return false }
func (m QueueUnbindOk) marshal() []byte  { return nil }

func decodeQueueUnbindOk(b []byte) (Method, int, error) {
	return QueueUnbindOk{}, 0, nil
}
