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

// Package pamqp is a pure, synchronous codec for the AMQP 0-9-1 wire
// protocol: byte-exact encoding and decoding of every frame type, every
// class/method defined by the protocol, and the Basic class's content
// properties.
//
// The package does no network I/O and holds no connection state. Callers
// frame-buffer their own byte stream (over a socket, a pcap replay, a test
// fixture) and pass complete frames to Unmarshal, or build a Frame (a Method
// value goes in a KindMethod Frame) and pass it to Marshal.
package pamqp
