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

// BasicQos requests a prefetch limit for unacknowledged messages.
type BasicQos struct {
	PrefetchSize  uint32
	PrefetchCount uint16
	Global        bool
}

func (m BasicQos) Name() string     { return "Basic.Qos" }
func (m BasicQos) ClassID() uint16  { return ClassBasic }
func (m BasicQos) MethodID() uint16 { return 10 }
func (m BasicQos) HasContent() bool { return false }

func (m BasicQos) marshal() []byte {
	out := append([]byte{}, EncodeLong(m.PrefetchSize)...)
	out = append(out, EncodeShort(m.PrefetchCount)...)
	out = append(out, packBits(m.Global)...)
	return out
}

func decodeBasicQos(b []byte) (Method, int, error) {
	size, offset, err := DecodeLong(b, 0)
	if err != nil {
		return nil, 0, err
	}
	count, offset, err := DecodeShort(b, offset)
	if err != nil {
		return nil, 0, err
	}
	bits, offset, err := unpackBits(b, offset, 1)
	if err != nil {
		return nil, 0, err
	}
	return BasicQos{PrefetchSize: size, PrefetchCount: count, Global: bits[0]}, offset, nil
}

// BasicQosOk confirms a Qos request.
type BasicQosOk struct{}

func (m BasicQosOk) Name() string     { return "Basic.QosOk" }
func (m BasicQosOk) ClassID() uint16  { return ClassBasic }
func (m BasicQosOk) MethodID() uint16 { return 11 }
func (m BasicQosOk) HasContent() bool { return false }
func (m BasicQosOk) marshal() []byte  { return nil }

func decodeBasicQosOk(b []byte) (Method, int, error) {
	return BasicQosOk{}, 0, nil
}

// BasicConsume starts a consumer on a queue.
type BasicConsume struct {
	Ticket      uint16
	Queue       string
	ConsumerTag string
	NoLocal     bool
	NoAck       bool
	Exclusive   bool
	NoWait      bool
	Arguments   Table
}

func (m BasicConsume) Name() string     { return "Basic.Consume" }
func (m BasicConsume) ClassID() uint16  { return ClassBasic }
func (m BasicConsume) MethodID() uint16 { return 20 }
func (m BasicConsume) HasContent() bool { return false }

func (m BasicConsume) marshal() []byte {
	out := append([]byte{}, EncodeShort(m.Ticket)...)
	q, _ := EncodeShortStr(m.Queue)
	out = append(out, q...)
	ct, _ := EncodeShortStr(m.ConsumerTag)
	out = append(out, ct...)
	out = append(out, packBits(m.NoLocal, m.NoAck, m.Exclusive, m.NoWait)...)
	args, err := EncodeTable(m.Arguments)
	if err != nil {
		args = EncodeLong(0)
	}
	out = append(out, args...)
	return out
}

func decodeBasicConsume(b []byte) (Method, int, error) {
	ticket, offset, err := DecodeShort(b, 0)
	if err != nil {
		return nil, 0, err
	}
	queue, offset, err := DecodeShortStr(b, offset)
	if err != nil {
		return nil, 0, err
	}
	tag, offset, err := DecodeShortStr(b, offset)
	if err != nil {
		return nil, 0, err
	}
	bits, offset, err := unpackBits(b, offset, 4)
	if err != nil {
		return nil, 0, err
	}
	args, offset, err := DecodeTable(b, offset)
	if err != nil {
		return nil, 0, err
	}
	return BasicConsume{
		Ticket: ticket, Queue: queue, ConsumerTag: tag,
		NoLocal: bits[0], NoAck: bits[1], Exclusive: bits[2], NoWait: bits[3],
		Arguments: args,
	}, offset, nil
}

// BasicConsumeOk confirms a consumer has been registered.
type BasicConsumeOk struct {
	ConsumerTag string
}

func (m BasicConsumeOk) Name() string     { return "Basic.ConsumeOk" }
func (m BasicConsumeOk) ClassID() uint16  { return ClassBasic }
func (m BasicConsumeOk) MethodID() uint16 { return 21 }
func (m BasicConsumeOk) HasContent() bool { return false }

func (m BasicConsumeOk) marshal() []byte {
	tag, _ := EncodeShortStr(m.ConsumerTag)
	return tag
}

func decodeBasicConsumeOk(b []byte) (Method, int, error) {
	tag, offset, err := DecodeShortStr(b, 0)
	if err != nil {
		return nil, 0, err
	}
	return BasicConsumeOk{ConsumerTag: tag}, offset, nil
}

// BasicCancel ends a consumer.
type BasicCancel struct {
	ConsumerTag string
	NoWait      bool
}

func (m BasicCancel) Name() string     { return "Basic.Cancel" }
func (m BasicCancel) ClassID() uint16  { return ClassBasic }
func (m BasicCancel) MethodID() uint16 { return 30 }
func (m BasicCancel) HasContent() bool { return false }

func (m BasicCancel) marshal() []byte {
	tag, _ := EncodeShortStr(m.ConsumerTag)
	out := append([]byte{}, tag...)
	out = append(out, packBits(m.NoWait)...)
	return out
}

func decodeBasicCancel(b []byte) (Method, int, error) {
	tag, offset, err := DecodeShortStr(b, 0)
	if err != nil {
		return nil, 0, err
	}
	bits, offset, err := unpackBits(b, offset, 1)
	if err != nil {
		return nil, 0, err
	}
	return BasicCancel{ConsumerTag: tag, NoWait: bits[0]}, offset, nil
}

// BasicCancelOk confirms a consumer has ended.
type BasicCancelOk struct {
	ConsumerTag string
}

func (m BasicCancelOk) Name() string     { return "Basic.CancelOk" }
func (m BasicCancelOk) ClassID() uint16  { return ClassBasic }
func (m BasicCancelOk) MethodID() uint16 { return 31 }
func (m BasicCancelOk) HasContent() bool { return false }

func (m BasicCancelOk) marshal() []byte {
	tag, _ := EncodeShortStr(m.ConsumerTag)
	return tag
}

func decodeBasicCancelOk(b []byte) (Method, int, error) {
	tag, offset, err := DecodeShortStr(b, 0)
	if err != nil {
		return nil, 0, err
	}
	return BasicCancelOk{ConsumerTag: tag}, offset, nil
}

// BasicPublish publishes a message to an exchange. A content-header and
// content-body sequence follows on the wire.
type BasicPublish struct {
	Ticket     uint16
	Exchange   string
	RoutingKey string
	Mandatory  bool
	Immediate  bool
}

func (m BasicPublish) Name() string     { return "Basic.Publish" }
func (m BasicPublish) ClassID() uint16  { return ClassBasic }
func (m BasicPublish) MethodID() uint16 { return 40 }
func (m BasicPublish) HasContent() bool { return true }

func (m BasicPublish) marshal() []byte {
	out := append([]byte{}, EncodeShort(m.Ticket)...)
	ex, _ := EncodeShortStr(m.Exchange)
	out = append(out, ex...)
	rk, _ := EncodeShortStr(m.RoutingKey)
	out = append(out, rk...)
	out = append(out, packBits(m.Mandatory, m.Immediate)...)
	return out
}

func decodeBasicPublish(b []byte) (Method, int, error) {
	ticket, offset, err := DecodeShort(b, 0)
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
	bits, offset, err := unpackBits(b, offset, 2)
	if err != nil {
		return nil, 0, err
	}
	return BasicPublish{Ticket: ticket, Exchange: exchange, RoutingKey: rk, Mandatory: bits[0], Immediate: bits[1]}, offset, nil
}

// BasicReturn is sent back to a publisher for an undeliverable message. A
// content-header and content-body sequence follows on the wire.
type BasicReturn struct {
	ReplyCode  uint16
	ReplyText  string
	Exchange   string
	RoutingKey string
}

func (m BasicReturn) Name() string     { return "Basic.Return" }
func (m BasicReturn) ClassID() uint16  { return ClassBasic }
func (m BasicReturn) MethodID() uint16 { return 50 }
func (m BasicReturn) HasContent() bool { return true }

func (m BasicReturn) marshal() []byte {
	out := append([]byte{}, EncodeShort(m.ReplyCode)...)
	text, _ := EncodeShortStr(m.ReplyText)
	out = append(out, text...)
	ex, _ := EncodeShortStr(m.Exchange)
	out = append(out, ex...)
	rk, _ := EncodeShortStr(m.RoutingKey)
	out = append(out, rk...)
	return out
}

func decodeBasicReturn(b []byte) (Method, int, error) {
	code, offset, err := DecodeShort(b, 0)
	if err != nil {
		return nil, 0, err
	}
	text, offset, err := DecodeShortStr(b, offset)
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
	return BasicReturn{ReplyCode: code, ReplyText: text, Exchange: exchange, RoutingKey: rk}, offset, nil
}

// BasicDeliver delivers a message to a consumer. A content-header and
// content-body sequence follows on the wire.
type BasicDeliver struct {
	ConsumerTag string
	DeliveryTag uint64
	Redelivered bool
	Exchange    string
	RoutingKey  string
}

func (m BasicDeliver) Name() string     { return "Basic.Deliver" }
func (m BasicDeliver) ClassID() uint16  { return ClassBasic }
func (m BasicDeliver) MethodID() uint16 { return 60 }
func (m BasicDeliver) HasContent() bool { return true }

func (m BasicDeliver) marshal() []byte {
	ct, _ := EncodeShortStr(m.ConsumerTag)
	out := append([]byte{}, ct...)
	out = append(out, EncodeLongLong(m.DeliveryTag)...)
	out = append(out, packBits(m.Redelivered)...)
	ex, _ := EncodeShortStr(m.Exchange)
	out = append(out, ex...)
	rk, _ := EncodeShortStr(m.RoutingKey)
	out = append(out, rk...)
	return out
}

func decodeBasicDeliver(b []byte) (Method, int, error) {
	tag, offset, err := DecodeShortStr(b, 0)
	if err != nil {
		return nil, 0, err
	}
	deliveryTag, offset, err := DecodeLongLong(b, offset)
	if err != nil {
		return nil, 0, err
	}
	bits, offset, err := unpackBits(b, offset, 1)
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
	return BasicDeliver{
		ConsumerTag: tag, DeliveryTag: deliveryTag, Redelivered: bits[0], Exchange: exchange, RoutingKey: rk,
	}, offset, nil
}

// BasicGet fetches a single message from a queue by polling.
type BasicGet struct {
	Ticket uint16
	Queue  string
	NoAck  bool
}

func (m BasicGet) Name() string     { return "Basic.Get" }
func (m BasicGet) ClassID() uint16  { return ClassBasic }
func (m BasicGet) MethodID() uint16 { return 70 }
func (m BasicGet) HasContent() bool { return false }

func (m BasicGet) marshal() []byte {
	out := append([]byte{}, EncodeShort(m.Ticket)...)
	q, _ := EncodeShortStr(m.Queue)
	out = append(out, q...)
	out = append(out, packBits(m.NoAck)...)
	return out
}

func decodeBasicGet(b []byte) (Method, int, error) {
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
	return BasicGet{Ticket: ticket, Queue: queue, NoAck: bits[0]}, offset, nil
}

// BasicGetOk delivers a polled message. A content-header and content-body
// sequence follows on the wire.
type BasicGetOk struct {
	DeliveryTag  uint64
	Redelivered  bool
	Exchange     string
	RoutingKey   string
	MessageCount uint32
}

func (m BasicGetOk) Name() string     { return "Basic.GetOk" }
func (m BasicGetOk) ClassID() uint16  { return ClassBasic }
func (m BasicGetOk) MethodID() uint16 { return 71 }
func (m BasicGetOk) HasContent() bool { return true }

func (m BasicGetOk) marshal() []byte {
	out := append([]byte{}, EncodeLongLong(m.DeliveryTag)...)
	out = append(out, packBits(m.Redelivered)...)
	ex, _ := EncodeShortStr(m.Exchange)
	out = append(out, ex...)
	rk, _ := EncodeShortStr(m.RoutingKey)
	out = append(out, rk...)
	out = append(out, EncodeLong(m.MessageCount)...)
	return out
}

func decodeBasicGetOk(b []byte) (Method, int, error) {
	tag, offset, err := DecodeLongLong(b, 0)
	if err != nil {
		return nil, 0, err
	}
	bits, offset, err := unpackBits(b, offset, 1)
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
	count, offset, err := DecodeLong(b, offset)
	if err != nil {
		return nil, 0, err
	}
	return BasicGetOk{
		DeliveryTag: tag, Redelivered: bits[0], Exchange: exchange, RoutingKey: rk, MessageCount: count,
	}, offset, nil
}

// BasicGetEmpty reports that a queue had no message to poll.
type BasicGetEmpty struct {
	ClusterID string // reserved
}

func (m BasicGetEmpty) Name() string     { return "Basic.GetEmpty" }
func (m BasicGetEmpty) ClassID() uint16  { return ClassBasic }
func (m BasicGetEmpty) MethodID() uint16 { return 72 }
func (m BasicGetEmpty) HasContent() bool { return false }

func (m BasicGetEmpty) marshal() []byte {
	id, _ := EncodeShortStr(m.ClusterID)
	return id
}

func decodeBasicGetEmpty(b []byte) (Method, int, error) {
	id, offset, err := DecodeShortStr(b, 0)
	if err != nil {
		return nil, 0, err
	}
	return BasicGetEmpty{ClusterID: id}, offset, nil
}

// BasicAck acknowledges one or more delivered messages.
type BasicAck struct {
	DeliveryTag uint64
	Multiple    bool
}

func (m BasicAck) Name() string     { return "Basic.Ack" }
func (m BasicAck) ClassID() uint16  { return ClassBasic }
func (m BasicAck) MethodID() uint16 { return 80 }
func (m BasicAck) HasContent() bool { return false }

func (m BasicAck) marshal() []byte {
	out := append([]byte{}, EncodeLongLong(m.DeliveryTag)...)
	out = append(out, packBits(m.Multiple)...)
	return out
}

func decodeBasicAck(b []byte) (Method, int, error) {
	tag, offset, err := DecodeLongLong(b, 0)
	if err != nil {
		return nil, 0, err
	}
	bits, offset, err := unpackBits(b, offset, 1)
	if err != nil {
		return nil, 0, err
	}
	return BasicAck{DeliveryTag: tag, Multiple: bits[0]}, offset, nil
}

// BasicReject rejects a delivered message.
type BasicReject struct {
	DeliveryTag uint64
	Requeue     bool
}

func (m BasicReject) Name() string     { return "Basic.Reject" }
func (m BasicReject) ClassID() uint16  { return ClassBasic }
func (m BasicReject) MethodID() uint16 { return 90 }
func (m BasicReject) HasContent() bool { return false }

func (m BasicReject) marshal() []byte {
	out := append([]byte{}, EncodeLongLong(m.DeliveryTag)...)
	out = append(out, packBits(m.Requeue)...)
	return out
}

func decodeBasicReject(b []byte) (Method, int, error) {
	tag, offset, err := DecodeLongLong(b, 0)
	if err != nil {
		return nil, 0, err
	}
	bits, offset, err := unpackBits(b, offset, 1)
	if err != nil {
		return nil, 0, err
	}
	return BasicReject{DeliveryTag: tag, Requeue: bits[0]}, offset, nil
}

// BasicRecoverAsync asks the broker to redeliver unacknowledged messages
// without waiting for a reply (deprecated in favor of Basic.Recover).
type BasicRecoverAsync struct {
	Requeue bool
}

func (m BasicRecoverAsync) Name() string     { return "Basic.RecoverAsync" }
func (m BasicRecoverAsync) ClassID() uint16  { return ClassBasic }
func (m BasicRecoverAsync) MethodID() uint16 { return 100 }
func (m BasicRecoverAsync) HasContent() bool { return false }
func (m BasicRecoverAsync) marshal() []byte  { return packBits(m.Requeue) }

func decodeBasicRecoverAsync(b []byte) (Method, int, error) {
	bits, offset, err := unpackBits(b, 0, 1)
	if err != nil {
		return nil, 0, err
	}
	return BasicRecoverAsync{Requeue: bits[0]}, offset, nil
}

// BasicRecover asks the broker to redeliver unacknowledged messages.
type BasicRecover struct {
	Requeue bool
}

func (m BasicRecover) Name() string     { return "Basic.Recover" }
func (m BasicRecover) ClassID() uint16  { return ClassBasic }
func (m BasicRecover) MethodID() uint16 { return 110 }
func (m BasicRecover) HasContent() bool { return false }
func (m BasicRecover) marshal() []byte  { return packBits(m.Requeue) }

func decodeBasicRecover(b []byte) (Method, int, error) {
	bits, offset, err := unpackBits(b, 0, 1)
	if err != nil {
		return nil, 0, err
	}
	return BasicRecover{Requeue: bits[0]}, offset, nil
}

// BasicRecoverOk confirms a recover request.
type BasicRecoverOk struct{}

func (m BasicRecoverOk) Name() string     { return "Basic.RecoverOk" }
func (m BasicRecoverOk) ClassID() uint16  { return ClassBasic }
func (m BasicRecoverOk) MethodID() uint16 { return 111 }
func (m BasicRecoverOk) HasContent() bool { return false }
func (m BasicRecoverOk) marshal() []byte  { return nil }

func decodeBasicRecoverOk(b []byte) (Method, int, error) {
	return BasicRecoverOk{}, 0, nil
}

// BasicNack negatively acknowledges one or more delivered messages
// (RabbitMQ extension, the multi-message counterpart to Basic.Reject).
type BasicNack struct {
	DeliveryTag uint64
	Multiple    bool
	Requeue     bool
}

func (m BasicNack) Name() string     { return "Basic.Nack" }
func (m BasicNack) ClassID() uint16  { return ClassBasic }
func (m BasicNack) MethodID() uint16 { return 120 }
func (m BasicNack) HasContent() bool { return false }

func (m BasicNack) marshal() []byte {
	out := append([]byte{}, EncodeLongLong(m.DeliveryTag)...)
	out = append(out, packBits(m.Multiple, m.Requeue)...)
	return out
}

func decodeBasicNack(b []byte) (Method, int, error) {
	tag, offset, err := DecodeLongLong(b, 0)
	if err != nil {
		return nil, 0, err
	}
	bits, offset, err := unpackBits(b, offset, 2)
	if err != nil {
		return nil, 0, err
	}
	return BasicNack{DeliveryTag: tag, Multiple: bits[0], Requeue: bits[1]}, offset, nil
}
