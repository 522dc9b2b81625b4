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

// TxSelect puts the channel into transactional mode.
type TxSelect struct{}

func (m TxSelect) Name() string     { return "Tx.Select" }
func (m TxSelect) ClassID() uint16  { return ClassTx }
func (m TxSelect) MethodID() uint16 { return 10 }
func (m TxSelect) HasContent() bool { return false }
func (m TxSelect) marshal() []byte  { return nil }

func decodeTxSelect(b []byte) (Method, int, error) {
	return TxSelect{}, 0, nil
}

// TxSelectOk confirms the channel is now transactional.
type TxSelectOk struct{}

func (m TxSelectOk) Name() string     { return "Tx.SelectOk" }
func (m TxSelectOk) ClassID() uint16  { return ClassTx }
func (m TxSelectOk) MethodID() uint16 { return 11 }
func (m TxSelectOk) HasContent() bool { return false }
func (m TxSelectOk) marshal() []byte  { return nil }

func decodeTxSelectOk(b []byte) (Method, int, error) {
	return TxSelectOk{}, 0, nil
}

// TxCommit commits the current transaction.
type TxCommit struct{}

func (m TxCommit) Name() string     { return "Tx.Commit" }
func (m TxCommit) ClassID() uint16  { return ClassTx }
func (m TxCommit) MethodID() uint16 { return 20 }
func (m TxCommit) HasContent() bool { return false }
func (m TxCommit) marshal() []byte  { return nil }

func decodeTxCommit(b []byte) (Method, int, error) {
	return TxCommit{}, 0, nil
}

// TxCommitOk confirms a transaction commit.
type TxCommitOk struct{}

func (m TxCommitOk) Name() string     { return "Tx.CommitOk" }
func (m TxCommitOk) ClassID() uint16  { return ClassTx }
func (m TxCommitOk) MethodID() uint16 { return 21 }
func (m TxCommitOk) HasContent() bool { return false }
func (m TxCommitOk) marshal() []byte  { return nil }

func decodeTxCommitOk(b []byte) (Method, int, error) {
	return TxCommitOk{}, 0, nil
}

// TxRollback abandons the current transaction.
type TxRollback struct{}

func (m TxRollback) Name() string     { return "Tx.Rollback" }
func (m TxRollback) ClassID() uint16  { return ClassTx }
func (m TxRollback) MethodID() uint16 { return 30 }
func (m TxRollback) HasContent() bool { return false }
func (m TxRollback) marshal() []byte  { return nil }

func decodeTxRollback(b []byte) (Method, int, error) {
	return TxRollback{}, 0, nil
}

// TxRollbackOk confirms a transaction rollback.
type TxRollbackOk struct{}

func (m TxRollbackOk) Name() string     { return "Tx.RollbackOk" }
func (m TxRollbackOk) ClassID() uint16  { return ClassTx }
func (m TxRollbackOk) MethodID() uint16 { return 31 }
func (m TxRollbackOk) HasContent() bool { return false }
func (m TxRollbackOk) marshal() []byte  { return nil }

func decodeTxRollbackOk(b []byte) (Method, int, error) {
	return TxRollbackOk{}, 0, nil
}
