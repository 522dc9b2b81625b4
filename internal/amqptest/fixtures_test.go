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

package amqptest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/david1155/pamqp"
)

func TestBasicPropertiesFixtureEncodesAndDecodes(t *testing.T) {
	props := BasicProperties(time.Now())
	b, err := pamqp.EncodeProperties(props)
	assert.NoError(t, err)

	got, n, err := pamqp.DecodeProperties(b, 0)
	assert.NoError(t, err)
	assert.Equal(t, len(b), n)
	assert.Equal(t, props.CorrelationID, got.CorrelationID)
	assert.Equal(t, props.MessageID, got.MessageID)
	assert.NotEqual(t, props.CorrelationID, props.MessageID)
}

func TestBasicPublishFixture(t *testing.T) {
	m := BasicPublish("logs", "info")
	assert.Equal(t, "logs", m.Exchange)
	assert.Equal(t, "info", m.RoutingKey)
	assert.True(t, m.HasContent())
}

func TestRunIDIsUnique(t *testing.T) {
	a, b := RunID(), RunID()
	assert.NotEqual(t, a, b)
}
