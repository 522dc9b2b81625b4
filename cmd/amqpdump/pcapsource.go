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

package main

import (
	"os"

	"github.com/gopacket/gopacket"
	"github.com/gopacket/gopacket/layers"
	"github.com/gopacket/gopacket/pcapgo"
	"github.com/pkg/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/david1155/pamqp/internal/bufpool"
)

// tcpStreamKey identifies one direction of a TCP connection.
type tcpStreamKey struct {
	srcIP, dstIP     string
	srcPort, dstPort uint16
}

// extractAMQPStreams replays the pcap file at path offline (pure-Go reader,
// no libpcap/cgo dependency) and returns, per TCP stream touching port, the
// concatenation of that stream's segment payloads in capture order. Segment
// reordering and retransmission are not handled; this is a demo tool, not a
// TCP stack.
func extractAMQPStreams(path string, port uint16) (map[tcpStreamKey][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening pcap file %s", path)
	}
	defer f.Close()

	r, err := pcapgo.NewReader(f)
	if err != nil {
		return nil, errors.Wrapf(err, "reading pcap header for %s", path)
	}

	// Each stream accumulates into a pooled buffer rather than a growing
	// slice, so a multi-stream capture doesn't repeatedly reallocate the
	// largest stream's backing array.
	buffers := make(map[tcpStreamKey]*bytebufferpool.ByteBuffer)
	defer func() {
		for _, buf := range buffers {
			bufpool.Release(buf)
		}
	}()

	for {
		data, _, err := r.ReadPacketData()
		if err != nil {
			break // EOF or truncated capture; return what was collected
		}

		pkt := gopacket.NewPacket(data, layers.LayerTypeEthernet, gopacket.NoCopy)
		ipLayer := pkt.Layer(layers.LayerTypeIPv4)
		tcpLayer := pkt.Layer(layers.LayerTypeTCP)
		if ipLayer == nil || tcpLayer == nil {
			continue
		}
		ip, _ := ipLayer.(*layers.IPv4)
		tcp, _ := tcpLayer.(*layers.TCP)
		if ip == nil || tcp == nil {
			continue
		}
		if uint16(tcp.SrcPort) != port && uint16(tcp.DstPort) != port {
			continue
		}
		if len(tcp.Payload) == 0 {
			continue
		}

		key := tcpStreamKey{
			srcIP: ip.SrcIP.String(), dstIP: ip.DstIP.String(),
			srcPort: uint16(tcp.SrcPort), dstPort: uint16(tcp.DstPort),
		}
		buf, ok := buffers[key]
		if !ok {
			buf = bufpool.Acquire()
			buffers[key] = buf
		}
		buf.Write(tcp.Payload)
	}

	streams := make(map[tcpStreamKey][]byte, len(buffers))
	for key, buf := range buffers {
		streams[key] = append([]byte{}, buf.Bytes()...)
	}
	return streams, nil
}
