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
	"github.com/david1155/pamqp/internal/confengine"
	"github.com/david1155/pamqp/internal/logger"
)

// dumpOptions is the shape of amqpdump's optional YAML config file, bound
// via confengine the way packetd's own subcommands bind theirs.
type dumpOptions struct {
	Port   uint16          `config:"port"`
	Logger logger.Options `config:"logger"`
}

func defaultDumpOptions() dumpOptions {
	return dumpOptions{
		Port:   5672,
		Logger: logger.Options{Stdout: true, Level: string(logger.LevelInfo)},
	}
}

func loadDumpOptions(path string) (dumpOptions, error) {
	opt := defaultDumpOptions()
	if path == "" {
		return opt, nil
	}
	cfg, err := confengine.LoadConfigPath(path)
	if err != nil {
		return opt, err
	}
	if err := cfg.Unpack(&opt); err != nil {
		return opt, err
	}
	return opt, nil
}
