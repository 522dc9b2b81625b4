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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalProtocolHeader(t *testing.T) {
	buf := []byte{0x41, 0x4D, 0x51, 0x50, 0x00, 0x00, 0x09, 0x01}
	consumed, channel, frame, err := Unmarshal(buf)
	require.NoError(t, err)
	assert.Equal(t, 8, consumed)
	assert.Equal(t, uint16(0), channel)
	assert.Equal(t, KindProtocolHeader, frame.Kind)
	assert.Equal(t, ProtocolHeader{Major: 0, Minor: 9, Revision: 1}, frame.ProtocolHeader)
}

func TestUnmarshalHeartbeat(t *testing.T) {
	buf := []byte{0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xCE}
	consumed, channel, frame, err := Unmarshal(buf)
	require.NoError(t, err)
	assert.Equal(t, 8, consumed)
	assert.Equal(t, uint16(0), channel)
	assert.Equal(t, KindHeartbeat, frame.Kind)
}

func TestUnmarshalBasicAck(t *testing.T) {
	buf := []byte{
		0x01, 0x00, 0x01, 0x00, 0x00, 0x00, 0x0D,
		0x00, 0x3C, 0x00, 0x50,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01,
		0x00,
		0xCE,
	}
	consumed, channel, frame, err := Unmarshal(buf)
	require.NoError(t, err)
	assert.Equal(t, 21, consumed)
	assert.Equal(t, uint16(1), channel)
	assert.Equal(t, KindMethod, frame.Kind)
	ack, ok := frame.Method.(BasicAck)
	require.True(t, ok)
	assert.Equal(t, "Basic.Ack", ack.Name())
	assert.Equal(t, uint64(1), ack.DeliveryTag)
	assert.False(t, ack.Multiple)
}

func TestUnmarshalBasicConsume(t *testing.T) {
	buf := []byte{
		0x01, 0x00, 0x01, 0x00, 0x00, 0x00, 0x18,
		0x00, 0x3C, 0x00, 0x14,
		0x00, 0x00,
		0x04, 't', 'e', 's', 't',
		0x07, 'c', 't', 'a', 'g', '1', '.', '0',
		0x00,
		0x00, 0x00, 0x00, 0x00,
		0xCE,
	}
	consumed, channel, frame, err := Unmarshal(buf)
	require.NoError(t, err)
	assert.Equal(t, 32, consumed)
	assert.Equal(t, uint16(1), channel)
	consume, ok := frame.Method.(BasicConsume)
	require.True(t, ok)
	assert.Equal(t, uint16(0), consume.Ticket)
	assert.Equal(t, "test", consume.Queue)
	assert.Equal(t, "ctag1.0", consume.ConsumerTag)
	assert.False(t, consume.NoLocal)
	assert.False(t, consume.NoAck)
	assert.False(t, consume.Exclusive)
	assert.False(t, consume.NoWait)
	assert.Equal(t, Table{}, consume.Arguments)
}

func TestUnmarshalConnectionClose(t *testing.T) {
	text := "Normal shutdown"
	buf := []byte{
		0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x1A,
		0x00, 0x0A, 0x00, 0x32,
		0x00, 0xC8,
		byte(len(text)),
	}
	buf = append(buf, []byte(text)...)
	buf = append(buf, 0x00, 0x00, 0x00, 0x00, 0xCE)

	consumed, channel, frame, err := Unmarshal(buf)
	require.NoError(t, err)
	assert.Equal(t, 34, consumed)
	assert.Equal(t, uint16(0), channel)
	closeMethod, ok := frame.Method.(ConnectionClose)
	require.True(t, ok)
	assert.Equal(t, uint16(200), closeMethod.ReplyCode)
	assert.Equal(t, text, closeMethod.ReplyText)
	assert.Equal(t, uint16(0), closeMethod.ClassID_)
	assert.Equal(t, uint16(0), closeMethod.MethodID_)
}

func TestUnmarshalNeedMoreData(t *testing.T) {
	buf := []byte{0x01, 0x00, 0x01, 0x00, 0x00, 0x00}
	_, _, _, err := Unmarshal(buf)
	var nmd *NeedMoreDataError
	require.ErrorAs(t, err, &nmd)
	assert.ErrorIs(t, err, ErrNeedMoreData)
}

func TestUnmarshalInvalidFrameEnd(t *testing.T) {
	buf := []byte{0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xFF}
	_, _, _, err := Unmarshal(buf)
	assert.ErrorIs(t, err, ErrInvalidFrameEnd)
}

func TestUnmarshalInvalidProtocolHeader(t *testing.T) {
	buf := []byte{0x41, 0x4D, 0x51, 0x50, 0x01, 0x01, 0x00, 0x00}
	_, _, _, err := Unmarshal(buf)
	assert.ErrorIs(t, err, ErrInvalidProtocolHeader)
}

func TestUnmarshalHeartbeatNonZeroChannel(t *testing.T) {
	buf := []byte{0x08, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0xCE}
	_, _, _, err := Unmarshal(buf)
	assert.ErrorIs(t, err, ErrHeartbeatChannelNonZero)
}

func TestUnmarshalUnknownFrameType(t *testing.T) {
	buf := []byte{0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xCE}
	_, _, _, err := Unmarshal(buf)
	assert.ErrorIs(t, err, ErrUnknownFrameType)
}

func TestMarshalUnmarshalRoundTrip(t *testing.T) {
	frames := []Frame{
		{Kind: KindProtocolHeader, ProtocolHeader: ProtocolHeader{Major: 0, Minor: 9, Revision: 1}},
		{Kind: KindHeartbeat},
		{Kind: KindMethod, Method: BasicAck{DeliveryTag: 42, Multiple: true}},
		{Kind: KindContentBody, ContentBody: []byte("payload")},
		{
			Kind: KindContentHeader,
			ContentHeader: ContentHeaderPayload{
				ClassID:  ClassBasic,
				BodySize: 7,
				Properties: BasicProperties{
					ContentType: "text/plain",
					Timestamp:   time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
				},
			},
		},
	}
	for _, f := range frames {
		channel := uint16(3)
		if f.Kind == KindProtocolHeader || f.Kind == KindHeartbeat {
			channel = 0
		}
		encoded, err := Marshal(f, channel)
		require.NoError(t, err)
		consumed, gotChannel, got, err := Unmarshal(encoded)
		require.NoError(t, err)
		assert.Equal(t, len(encoded), consumed)
		assert.Equal(t, channel, gotChannel)
		assert.Equal(t, f.Kind, got.Kind)
	}
}

func TestUnmarshalStreamMultipleFrames(t *testing.T) {
	ackFrame, err := Marshal(Frame{Kind: KindMethod, Method: BasicAck{DeliveryTag: 1}}, 1)
	require.NoError(t, err)
	heartbeatFrame, err := Marshal(Frame{Kind: KindHeartbeat}, 0)
	require.NoError(t, err)

	buf := append(append([]byte{}, ackFrame...), heartbeatFrame...)
	frames, err := UnmarshalStream(buf)
	require.NoError(t, err)
	require.Len(t, frames, 2)
	assert.Equal(t, KindMethod, frames[0].Frame.Kind)
	assert.Equal(t, KindHeartbeat, frames[1].Frame.Kind)
}

func TestUnmarshalStreamSkipsCorruptFrame(t *testing.T) {
	good, err := Marshal(Frame{Kind: KindMethod, Method: BasicAck{DeliveryTag: 1}}, 1)
	require.NoError(t, err)
	corrupt := append([]byte{}, good...)
	corrupt[len(corrupt)-1] = 0xFF // break the frame-end sentinel

	buf := append(append([]byte{}, corrupt...), good...)
	frames, err := UnmarshalStream(buf)
	assert.Error(t, err)
	require.Len(t, frames, 1)
	assert.Equal(t, KindMethod, frames[0].Frame.Kind)
}

func TestUnmarshalStreamTrailingPartialFrameIsNotAnError(t *testing.T) {
	good, err := Marshal(Frame{Kind: KindHeartbeat}, 0)
	require.NoError(t, err)
	buf := append(append([]byte{}, good...), good[:4]...)
	frames, err := UnmarshalStream(buf)
	require.NoError(t, err)
	require.Len(t, frames, 1)
}

func TestFrameMarshalJSON(t *testing.T) {
	f := Frame{Kind: KindMethod, Method: BasicAck{DeliveryTag: 9, Multiple: true}}
	b, err := f.MarshalJSON()
	require.NoError(t, err)
	assert.Contains(t, string(b), `"kind":"Method"`)
	assert.Contains(t, string(b), `"method_name":"Basic.Ack"`)
}
