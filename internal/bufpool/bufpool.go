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

// Package bufpool pools reusable byte buffers for the stream-replay path in
// cmd/amqpdump, which re-assembles TCP payload chunks into one buffer per
// stream before copying each out and handing it to pamqp.UnmarshalStream.
package bufpool

import "github.com/valyala/bytebufferpool"

// Acquire returns a reset buffer from the shared pool.
func Acquire() *bytebufferpool.ByteBuffer {
	return bytebufferpool.Get()
}

// Release returns buf to the shared pool for reuse.
func Release(buf *bytebufferpool.ByteBuffer) {
	bytebufferpool.Put(buf)
}
