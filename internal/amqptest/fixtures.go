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

// Package amqptest builds realistic pamqp fixtures for round-trip tests,
// mirroring the shapes the upstream Python test corpus exercises (e.g. a
// Basic.Publish whose correlation_id/message_id are UUIDs).
package amqptest

import (
	"time"

	"github.com/google/uuid"

	"github.com/david1155/pamqp"
)

// BasicProperties returns a populated BasicProperties using freshly
// generated UUIDs for the correlation and message identifiers, and the
// given timestamp truncated to the second (the wire's timestamp resolution).
func BasicProperties(ts time.Time) pamqp.BasicProperties {
	return pamqp.BasicProperties{
		ContentType:     "application/json",
		ContentEncoding: "gzip",
		Headers:         pamqp.Table{"foo": "bar"},
		DeliveryMode:    2,
		Priority:        0,
		CorrelationID:   uuid.New().String(),
		ReplyTo:         "amqptest.fixtures",
		Expiration:      "60000",
		MessageID:       uuid.New().String(),
		Timestamp:       ts.Truncate(time.Second).UTC(),
		MessageType:     "fixture",
		UserID:          "amqptest",
		AppID:           "pamqp-fixtures",
		ClusterID:       "",
	}
}

// BasicPublish returns a Basic.Publish method addressed at exchange/routing
// key, suitable for pairing with BasicProperties in a content-header test.
func BasicPublish(exchange, routingKey string) pamqp.BasicPublish {
	return pamqp.BasicPublish{
		Exchange:   exchange,
		RoutingKey: routingKey,
		Mandatory:  false,
		Immediate:  false,
	}
}

// RunID returns a fresh UUID string, used by cmd/amqpdump to tag a single
// replay run across its log lines.
func RunID() string {
	return uuid.New().String()
}
