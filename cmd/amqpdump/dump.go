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
	"fmt"
	"os"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/david1155/pamqp"
	"github.com/david1155/pamqp/internal/amqptest"
	"github.com/david1155/pamqp/internal/logger"
)

var (
	pcapPath   string
	rawPath    string
	configPath string
	jsonOutput bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Decode and print AMQP frames from a pcap capture or raw frame dump",
	Example: "  amqpdump dump --pcap capture.pcap\n" +
		"  amqpdump dump --raw frames.bin --json",
	RunE: runDump,
}

func init() {
	dumpCmd.Flags().StringVar(&pcapPath, "pcap", "", "pcap file to replay (TCP payloads on the config file's port, default 5672, are extracted)")
	dumpCmd.Flags().StringVar(&rawPath, "raw", "", "raw AMQP frame stream to decode directly, skipping pcap replay")
	dumpCmd.Flags().StringVar(&configPath, "config", "", "optional YAML config file (port, logger)")
	dumpCmd.Flags().BoolVar(&jsonOutput, "json", false, "print decoded frames as JSON instead of text")
	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	opt, err := loadDumpOptions(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger.SetOptions(opt.Logger)

	runID := amqptest.RunID()
	logger.Infof("amqpdump run %s starting", runID)

	var buffers [][]byte
	switch {
	case rawPath != "":
		b, err := os.ReadFile(rawPath)
		if err != nil {
			return fmt.Errorf("reading raw frame file: %w", err)
		}
		buffers = [][]byte{b}
	case pcapPath != "":
		streams, err := extractAMQPStreams(pcapPath, opt.Port)
		if err != nil {
			return fmt.Errorf("replaying pcap: %w", err)
		}
		keys := make([]tcpStreamKey, 0, len(streams))
		for k := range streams {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j]) })
		for _, k := range keys {
			buffers = append(buffers, streams[k])
		}
	default:
		return fmt.Errorf("one of --pcap or --raw is required")
	}

	seenHeartbeats := make(map[uint64]int)
	var total int
	for _, buf := range buffers {
		frames, err := pamqp.UnmarshalStream(buf)
		if err != nil {
			logger.Warnf("stream decode reported errors: %v", err)
		}
		for _, df := range frames {
			total++
			if df.Frame.Kind == pamqp.KindHeartbeat {
				enc, _ := pamqp.Marshal(df.Frame, df.Channel)
				h := xxhash.Sum64(enc)
				seenHeartbeats[h]++
				if seenHeartbeats[h] > 1 {
					continue // fold repeat heartbeats out of the printed output
				}
			}
			printFrame(df)
		}
	}

	logger.Infof("amqpdump run %s decoded %d frame(s)", runID, total)
	return nil
}

func printFrame(df pamqp.DecodedFrame) {
	if jsonOutput {
		b, err := json.Marshal(df.Frame)
		if err != nil {
			logger.Errorf("marshaling frame to json: %v", err)
			return
		}
		fmt.Printf(`{"channel":%d,"consumed":%d,"frame":%s}`+"\n", df.Channel, df.Consumed, b)
		return
	}

	switch df.Frame.Kind {
	case pamqp.KindMethod:
		fmt.Printf("channel=%d %s\n", df.Channel, df.Frame.Method.Name())
	case pamqp.KindContentHeader:
		fmt.Printf("channel=%d ContentHeader class=%d body_size=%d\n",
			df.Channel, df.Frame.ContentHeader.ClassID, df.Frame.ContentHeader.BodySize)
	case pamqp.KindContentBody:
		fmt.Printf("channel=%d ContentBody bytes=%d\n", df.Channel, len(df.Frame.ContentBody))
	case pamqp.KindHeartbeat:
		fmt.Printf("channel=%d Heartbeat\n", df.Channel)
	case pamqp.KindProtocolHeader:
		fmt.Printf("ProtocolHeader %d.%d.%d\n",
			df.Frame.ProtocolHeader.Major, df.Frame.ProtocolHeader.Minor, df.Frame.ProtocolHeader.Revision)
	}
}
