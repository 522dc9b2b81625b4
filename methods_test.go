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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackUnpackBits(t *testing.T) {
	packed := packBits(true, false, true, true, false, false, false, false, true)
	bits, n, err := unpackBits(packed, 0, 9)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []bool{true, false, true, true, false, false, false, false, true}, bits)
}

func TestPackBitsOnlyTouchesItsOwnOctets(t *testing.T) {
	a := packBits(true, false, false)
	b := packBits(true, false, true)
	assert.NotEqual(t, a, b)
	assert.Len(t, a, 1)
	assert.Len(t, b, 1)
}

// TestMethodRoundTrip exercises representative methods of every class through
// MarshalMethod/UnmarshalMethod, the full envelope a frame wraps.
func TestMethodRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   Method
	}{
		{"Connection.Open", ConnectionOpen{VirtualHost: "/", Capabilities: "", Insist: false}},
		{"Connection.Close", ConnectionClose{ReplyCode: 320, ReplyText: "CONNECTION_FORCED", ClassID_: 0, MethodID_: 0}},
		{"Channel.Open", ChannelOpen{}},
		{"Channel.Close", ChannelClose{ReplyCode: 200, ReplyText: "ok", ClassID_: 60, MethodID_: 40}},
		{"Exchange.Declare", ExchangeDeclare{Exchange: "logs", ExchangeType: "fanout", Durable: true, Arguments: Table{}}},
		{"Queue.Declare", QueueDeclare{Queue: "tasks", Durable: true, AutoDelete: false, Arguments: Table{}}},
		{"Basic.Qos", BasicQos{PrefetchSize: 0, PrefetchCount: 10, Global: false}},
		{"Basic.Publish", BasicPublish{Exchange: "logs", RoutingKey: "info", Mandatory: true}},
		{"Basic.Ack", BasicAck{DeliveryTag: 7, Multiple: true}},
		{"Basic.Nack", BasicNack{DeliveryTag: 8, Multiple: false, Requeue: true}},
		{"Confirm.Select", ConfirmSelect{NoWait: true}},
		{"Confirm.SelectOk", ConfirmSelectOk{}},
		{"Tx.Select", TxSelect{}},
		{"Tx.CommitOk", TxCommitOk{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := MarshalMethod(tt.in)
			got, n, err := UnmarshalMethod(encoded)
			require.NoError(t, err)
			assert.Equal(t, len(encoded), n)
			assert.Equal(t, tt.in, got)
			assert.Equal(t, tt.name, got.Name())
		})
	}
}

func TestUnmarshalMethodUnknown(t *testing.T) {
	payload := append(EncodeShort(9999), EncodeShort(1)...)
	_, _, err := UnmarshalMethod(payload)
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestMethodRegistryCovers7Classes(t *testing.T) {
	seen := map[uint16]bool{}
	for key := range methodRegistry {
		seen[key.ClassID] = true
	}
	for _, classID := range []uint16{ClassConnection, ClassChannel, ClassExchange, ClassQueue, ClassBasic, ClassConfirm, ClassTx} {
		assert.True(t, seen[classID], "class %d missing from registry", classID)
	}
}

func TestDescriptors(t *testing.T) {
	descriptors := Descriptors()
	assert.Equal(t, len(methodRegistry), len(descriptors))
	names := map[string]bool{}
	for _, d := range descriptors {
		names[d.Name] = true
	}
	assert.True(t, names["Basic.Publish"])
	assert.True(t, names["Connection.Close"])
}

func TestBasicContentMethods(t *testing.T) {
	assert.True(t, BasicPublish{}.HasContent())
	assert.True(t, BasicReturn{}.HasContent())
	assert.True(t, BasicDeliver{}.HasContent())
	assert.True(t, BasicGetOk{}.HasContent())
	assert.False(t, BasicAck{}.HasContent())
	assert.False(t, BasicGet{}.HasContent())
}
