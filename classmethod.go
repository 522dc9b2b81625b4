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

// Class ids, per the AMQP 0-9-1 grammar. Confirm (85) is RabbitMQ's
// publisher-confirms extension, promoted to a de-facto standard class by
// every mainstream broker and client.
const (
	ClassConnection uint16 = 10
	ClassChannel    uint16 = 20
	ClassExchange   uint16 = 40
	ClassQueue      uint16 = 50
	ClassBasic      uint16 = 60
	ClassConfirm    uint16 = 85
	ClassTx         uint16 = 90
)

var classNames = map[uint16]string{
	ClassConnection: "Connection",
	ClassChannel:    "Channel",
	ClassExchange:   "Exchange",
	ClassQueue:      "Queue",
	ClassBasic:      "Basic",
	ClassConfirm:    "Confirm",
	ClassTx:         "Tx",
}

// methodRegistry maps every (class_id, method_id) pair this package knows
// to its decoder. Built once at package init from the per-class method
// tables; safe for concurrent readers.
var methodRegistry = map[classMethodKey]methodDecoder{
	{ClassConnection, 10}: decodeConnectionStart,
	{ClassConnection, 11}: decodeConnectionStartOk,
	{ClassConnection, 20}: decodeConnectionSecure,
	{ClassConnection, 21}: decodeConnectionSecureOk,
	{ClassConnection, 30}: decodeConnectionTune,
	{ClassConnection, 31}: decodeConnectionTuneOk,
	{ClassConnection, 40}: decodeConnectionOpen,
	{ClassConnection, 41}: decodeConnectionOpenOk,
	{ClassConnection, 50}: decodeConnectionClose,
	{ClassConnection, 51}: decodeConnectionCloseOk,

	{ClassChannel, 10}: decodeChannelOpen,
	{ClassChannel, 11}: decodeChannelOpenOk,
	{ClassChannel, 20}: decodeChannelFlow,
	{ClassChannel, 21}: decodeChannelFlowOk,
	{ClassChannel, 40}: decodeChannelClose,
	{ClassChannel, 41}: decodeChannelCloseOk,

	{ClassExchange, 10}: decodeExchangeDeclare,
	{ClassExchange, 11}: decodeExchangeDeclareOk,
	{ClassExchange, 20}: decodeExchangeDelete,
	{ClassExchange, 21}: decodeExchangeDeleteOk,
	{ClassExchange, 30}: decodeExchangeBind,
	{ClassExchange, 31}: decodeExchangeBindOk,
	{ClassExchange, 40}: decodeExchangeUnbind,
	{ClassExchange, 51}: decodeExchangeUnbindOk,

	{ClassQueue, 10}: decodeQueueDeclare,
	{ClassQueue, 11}: decodeQueueDeclareOk,
	{ClassQueue, 20}: decodeQueueBind,
	{ClassQueue, 21}: decodeQueueBindOk,
	{ClassQueue, 30}: decodeQueuePurge,
	{ClassQueue, 31}: decodeQueuePurgeOk,
	{ClassQueue, 40}: decodeQueueDelete,
	{ClassQueue, 41}: decodeQueueDeleteOk,
	{ClassQueue, 50}: decodeQueueUnbind,
	{ClassQueue, 51}: decodeQueueUnbindOk,

	{ClassBasic, 10}:  decodeBasicQos,
	{ClassBasic, 11}:  decodeBasicQosOk,
	{ClassBasic, 20}:  decodeBasicConsume,
	{ClassBasic, 21}:  decodeBasicConsumeOk,
	{ClassBasic, 30}:  decodeBasicCancel,
	{ClassBasic, 31}:  decodeBasicCancelOk,
	{ClassBasic, 40}:  decodeBasicPublish,
	{ClassBasic, 50}:  decodeBasicReturn,
	{ClassBasic, 60}:  decodeBasicDeliver,
	{ClassBasic, 70}:  decodeBasicGet,
	{ClassBasic, 71}:  decodeBasicGetOk,
	{ClassBasic, 72}:  decodeBasicGetEmpty,
	{ClassBasic, 80}:  decodeBasicAck,
	{ClassBasic, 90}:  decodeBasicReject,
	{ClassBasic, 100}: decodeBasicRecoverAsync,
	{ClassBasic, 110}: decodeBasicRecover,
	{ClassBasic, 111}: decodeBasicRecoverOk,
	{ClassBasic, 120}: decodeBasicNack,

	{ClassConfirm, 10}: decodeConfirmSelect,
	{ClassConfirm, 11}: decodeConfirmSelectOk,

	{ClassTx, 10}: decodeTxSelect,
	{ClassTx, 11}: decodeTxSelectOk,
	{ClassTx, 20}: decodeTxCommit,
	{ClassTx, 21}: decodeTxCommitOk,
	{ClassTx, 30}: decodeTxRollback,
	{ClassTx, 31}: decodeTxRollbackOk,
}

// MethodDescriptor is the introspectable shape of a registered method,
// useful to callers building tooling on top of the registry without
// constructing a value.
type MethodDescriptor struct {
	ClassID    uint16
	MethodID   uint16
	Name       string
	HasContent bool
}

// basicContentMethods names the four Basic methods a content-header and
// content-body sequence follows.
var basicContentMethods = map[uint16]bool{
	40: true, // Basic.Publish
	50: true, // Basic.Return
	60: true, // Basic.Deliver
	71: true, // Basic.GetOk
}

// Descriptors lists every registered (class_id, method_id) pair. The slice
// is freshly built per call; callers may sort or filter it freely.
func Descriptors() []MethodDescriptor {
	out := make([]MethodDescriptor, 0, len(methodRegistry))
	for key, dec := range methodRegistry {
		m, _, err := dec(zeroMethodPayload(key))
		hasContent := key.ClassID == ClassBasic && basicContentMethods[key.MethodID]
		name := ""
		if err == nil {
			name = m.Name()
		}
		out = append(out, MethodDescriptor{
			ClassID:    key.ClassID,
			MethodID:   key.MethodID,
			Name:       name,
			HasContent: hasContent,
		})
	}
	return out
}

// zeroMethodPayload is long enough of a zeroed buffer to satisfy any
// registered decoder's fixed-width prefix; used only by Descriptors to read
// back a method's Name without requiring a real payload.
func zeroMethodPayload(classMethodKey) []byte {
	return make([]byte, 512)
}
