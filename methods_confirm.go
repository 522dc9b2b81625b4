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

// ConfirmSelect puts the channel into publisher-confirm mode (RabbitMQ
// extension).
type ConfirmSelect struct {
	NoWait bool
}

func (m ConfirmSelect) Name() string     { return "Confirm.Select" }
func (m ConfirmSelect) ClassID() uint16  { return ClassConfirm }
func (m ConfirmSelect) MethodID() uint16 { return 10 }
func (m ConfirmSelect) HasContent() bool { return false }
func (m ConfirmSelect) marshal() []byte  { return packBits(m.NoWait) }

func decodeConfirmSelect(b []byte) (Method, int, error) {
	bits, offset, err := unpackBits(b, 0, 1)
	if err != nil {
		return nil, 0, err
	}
	return ConfirmSelect{NoWait: bits[0]}, offset, nil
}

// ConfirmSelectOk confirms the channel is now in publisher-confirm mode.
type ConfirmSelectOk struct{}

func (m ConfirmSelectOk) Name() string     { return "Confirm.SelectOk" }
func (m ConfirmSelectOk) ClassID() uint16  { return ClassConfirm }
func (m ConfirmSelectOk) MethodID() uint16 { return 11 }
func (m ConfirmSelectOk) HasContent() bool { return false }
func (m ConfirmSelectOk) marshal() []byte  { return nil }

func decodeConfirmSelectOk(b []byte) (Method, int, error) {
	return ConfirmSelectOk{}, 0, nil
}
