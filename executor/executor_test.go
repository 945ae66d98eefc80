// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/33cn/betting/common/crypto"
	"github.com/33cn/betting/system/dapp"
	"github.com/33cn/betting/types"
	"github.com/33cn/betting/util"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testExecer = "exectest"

const (
	actionTransfer = iota + 1
	actionPack
	actionBadKey
	actionFail
)

type testAction struct {
	Ty     int32
	To     string
	Amount int64
	Key    string
}

type testApp struct {
	dapp.DriverBase
}

func (t *testApp) GetDriverName() string {
	return testExecer
}

func (t *testApp) CheckTx(tx *types.Transaction, index int) error {
	var action testAction
	if err := types.Decode(tx.Payload, &action); err != nil {
		return err
	}
	if action.Ty == 0 {
		return types.ErrActionNotSupport
	}
	return nil
}

func (t *testApp) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action testAction
	if err := types.Decode(tx.Payload, &action); err != nil {
		return nil, err
	}
	db := t.GetStateDB()
	key := []byte("mavl-" + testExecer + "-" + action.Key)
	receipt := &types.Receipt{Ty: types.ExecOk}
	switch action.Ty {
	case actionTransfer:
		r, err := t.GetCoinsAccount().Transfer(tx.From(), action.To, action.Amount)
		if err != nil {
			return nil, err
		}
		receipt = types.MergeReceipt(receipt, r)
		if err := db.Set(key, []byte(action.To)); err != nil {
			return nil, err
		}
		receipt.KV = append(receipt.KV, &types.KeyValue{Key: key, Value: []byte(action.To)})
		return receipt, nil
	case actionPack:
		r, err := t.GetCoinsAccount().Transfer(tx.From(), action.To, action.Amount)
		if err != nil {
			return nil, err
		}
		receipt = types.MergeReceipt(receipt, r)
		receipt.Ty = types.ExecPack
		return receipt, types.ErrNoBalance
	case actionBadKey:
		bad := []byte("mavl-other-" + action.Key)
		if err := db.Set(bad, []byte("x")); err != nil {
			return nil, err
		}
		receipt.KV = append(receipt.KV, &types.KeyValue{Key: bad, Value: []byte("x")})
		return receipt, nil
	case actionFail:
		if err := db.Set(key, []byte("x")); err != nil {
			return nil, err
		}
		return nil, types.ErrInvalidParam
	}
	return nil, types.ErrActionNotSupport
}

func (t *testApp) ExecLocal(tx *types.Transaction, receipt *types.Receipt, index int) (*types.LocalDBSet, error) {
	var action testAction
	if err := types.Decode(tx.Payload, &action); err != nil {
		return nil, err
	}
	return &types.LocalDBSet{KV: []*types.KeyValue{
		{Key: []byte("LODB-" + testExecer + "-" + action.Key), Value: []byte(types.ExecTypeName[receipt.Ty])},
	}}, nil
}

func (t *testApp) Query(funcName string, params []byte) (types.Message, error) {
	var req types.ReqAddr
	if err := types.Decode(params, &req); err != nil {
		return nil, err
	}
	switch funcName {
	case "State":
		v, err := t.GetStateDB().Get([]byte("mavl-" + testExecer + "-" + req.Addr))
		if err != nil {
			return nil, err
		}
		return string(v), nil
	case "Local":
		v, err := t.GetLocalDB().Get([]byte("LODB-" + testExecer + "-" + req.Addr))
		if err != nil {
			return nil, err
		}
		return string(v), nil
	}
	return nil, types.ErrQueryNotSupport
}

func init() {
	dapp.Register(testExecer, func() dapp.Driver { return &testApp{} }, 0)
}

var (
	manager, managerKey = util.Genaddress()
	alice, aliceKey     = util.Genaddress()
	bob, bobKey         = util.Genaddress()

	keys = map[string]crypto.PrivKey{manager: managerKey, alice: aliceKey, bob: bobKey}
)

func newTestExecutor(t *testing.T) *Executor {
	exec := New(&types.Exec{SuperManager: []string{manager}, ExistentialDeposit: 1}, newMemDB(t))
	_, err := exec.Genesis([]*types.GenesisAlloc{
		{Addr: alice, Amount: 1000},
		{Exec: testExecer, Amount: 1},
	})
	require.NoError(t, err)
	return exec
}

func newTx(from string, action *testAction) *types.Transaction {
	tx := types.NewTx(testExecer, action, 0)
	tx.Sign(types.SECP256K1, keys[from])
	return tx
}

func balance(t *testing.T, exec *Executor, addr string) int64 {
	acc, err := exec.GetAccount(addr)
	require.NoError(t, err)
	return acc.Balance
}

func TestGenesis(t *testing.T) {
	exec := newTestExecutor(t)
	assert.Equal(t, int64(1000), balance(t, exec, alice))
	assert.Equal(t, int64(1), balance(t, exec, dapp.ExecAddress(testExecer)))

	_, err := exec.Genesis(nil)
	assert.Equal(t, types.ErrGenesisDone, err)

	exec2 := New(&types.Exec{}, newMemDB(t))
	_, err = exec2.Genesis([]*types.GenesisAlloc{{Addr: "bad", Amount: 1}})
	assert.Equal(t, types.ErrInvalidAddress, errors.Cause(err))
	_, err = exec2.Genesis([]*types.GenesisAlloc{{Addr: alice, Amount: -1}})
	assert.Equal(t, types.ErrAmount, errors.Cause(err))
	assert.Equal(t, int64(0), balance(t, exec2, alice))
}

func TestHeight(t *testing.T) {
	db := newMemDB(t)
	exec := New(nil, db)
	assert.Equal(t, int64(0), exec.Height())
	h, err := exec.NextBlock()
	require.NoError(t, err)
	assert.Equal(t, int64(1), h)
	require.NoError(t, exec.SetHeight(10))
	err = exec.SetHeight(9)
	assert.Equal(t, types.ErrHeightNotIncrease, errors.Cause(err))

	// 重启后高度恢复
	exec = New(nil, db)
	assert.Equal(t, int64(10), exec.Height())
}

func TestIsSuperManager(t *testing.T) {
	exec := newTestExecutor(t)
	assert.True(t, exec.IsSuperManager(manager))
	assert.False(t, exec.IsSuperManager(alice))
}

func TestExecOk(t *testing.T) {
	exec := newTestExecutor(t)
	receipt, err := exec.Exec(newTx(alice, &testAction{Ty: actionTransfer, To: bob, Amount: 10, Key: "k1"}))
	require.NoError(t, err)
	assert.Equal(t, int32(types.ExecOk), receipt.Ty)
	assert.Equal(t, int64(990), balance(t, exec, alice))
	assert.Equal(t, int64(10), balance(t, exec, bob))

	v, err := exec.Query(testExecer, "State", &types.ReqAddr{Addr: "k1"})
	require.NoError(t, err)
	assert.Equal(t, bob, v)
	v, err = exec.Query(testExecer, "Local", &types.ReqAddr{Addr: "k1"})
	require.NoError(t, err)
	assert.Equal(t, "ExecOk", v)
	_, err = exec.Query(testExecer, "Nothing", &types.ReqAddr{})
	assert.Equal(t, types.ErrQueryNotSupport, err)
	_, err = exec.Query("nosuch", "State", &types.ReqAddr{})
	assert.Equal(t, types.ErrExecNotFound, err)
}

func TestExecFailRollback(t *testing.T) {
	exec := newTestExecutor(t)
	_, err := exec.Exec(newTx(alice, &testAction{Ty: actionFail, Key: "k2"}))
	assert.Equal(t, types.ErrInvalidParam, err)
	_, err = exec.Query(testExecer, "State", &types.ReqAddr{Addr: "k2"})
	assert.Equal(t, types.ErrNotFound, err)

	_, err = exec.Exec(newTx(bob, &testAction{Ty: actionTransfer, To: alice, Amount: 10, Key: "k3"}))
	assert.Equal(t, types.ErrNoBalance, err)
	_, err = exec.Query(testExecer, "Local", &types.ReqAddr{Addr: "k3"})
	assert.Error(t, err)
}

func TestExecPack(t *testing.T) {
	exec := newTestExecutor(t)
	receipt, err := exec.Exec(newTx(alice, &testAction{Ty: actionPack, To: bob, Amount: 10, Key: "k4"}))
	assert.Equal(t, types.ErrNoBalance, err)
	require.NotNil(t, receipt)
	assert.Equal(t, int32(types.ExecPack), receipt.Ty)
	last := receipt.Logs[len(receipt.Logs)-1]
	assert.Equal(t, int32(types.TyLogErr), last.Ty)
	assert.Equal(t, "ErrNoBalance", string(last.Log))

	// 失败之前的转账被保留
	assert.Equal(t, int64(990), balance(t, exec, alice))
	assert.Equal(t, int64(10), balance(t, exec, bob))
	v, err := exec.Query(testExecer, "Local", &types.ReqAddr{Addr: "k4"})
	require.NoError(t, err)
	assert.Equal(t, "ExecPack", v)
}

func TestExecNotAllowKey(t *testing.T) {
	exec := newTestExecutor(t)
	_, err := exec.Exec(newTx(alice, &testAction{Ty: actionBadKey, Key: "k5"}))
	assert.Equal(t, ErrNotAllowKey, errors.Cause(err))
}

func TestExecInvalidTx(t *testing.T) {
	exec := newTestExecutor(t)
	_, err := exec.Exec(nil)
	assert.Equal(t, types.ErrEmptyTx, err)
	_, err = exec.Exec(&types.Transaction{})
	assert.Equal(t, types.ErrEmptyTx, err)
	nosuch := types.NewTx("nosuch", &testAction{Ty: actionTransfer}, 0)
	nosuch.Sign(types.SECP256K1, aliceKey)
	_, err = exec.Exec(nosuch)
	assert.Equal(t, types.ErrExecNotFound, errors.Cause(err))
	_, err = exec.Exec(newTx(alice, &testAction{}))
	assert.Equal(t, types.ErrActionNotSupport, err)
	assert.Equal(t, types.ErrActionNotSupport, exec.CheckTx(newTx(alice, &testAction{})))
	assert.NoError(t, exec.CheckTx(newTx(alice, &testAction{Ty: actionTransfer})))

	_, err = exec.GetAccount("bad")
	assert.Equal(t, types.ErrInvalidAddress, errors.Cause(err))
	exec.Close()
}

func TestExecSign(t *testing.T) {
	exec := newTestExecutor(t)
	transfer := &testAction{Ty: actionTransfer, To: bob, Amount: 10, Key: "k6"}

	// 没有签名
	unsigned := types.NewTx(testExecer, transfer, 0)
	_, err := exec.Exec(unsigned)
	assert.Equal(t, types.ErrSign, err)
	assert.Equal(t, types.ErrSign, exec.CheckTx(unsigned))

	// 用 bob 的私钥签名，却把公钥换成 alice 的，冒充 alice
	forged := types.NewTx(testExecer, transfer, 0)
	forged.Sign(types.SECP256K1, bobKey)
	forged.Signature.Pubkey = aliceKey.PubKey().Bytes()
	_, err = exec.Exec(forged)
	assert.Equal(t, types.ErrSign, err)

	// 签名之后修改了内容
	tampered := newTx(alice, transfer)
	tampered.Payload = types.Encode(&testAction{Ty: actionTransfer, To: bob, Amount: 900, Key: "k6"})
	_, err = exec.Exec(tampered)
	assert.Equal(t, types.ErrSign, err)

	assert.Equal(t, int64(1000), balance(t, exec, alice))
	assert.Equal(t, int64(0), balance(t, exec, bob))

	// 发送者由签名决定
	_, err = exec.Exec(newTx(alice, transfer))
	require.NoError(t, err)
	assert.Equal(t, int64(990), balance(t, exec, alice))
	assert.Equal(t, int64(10), balance(t, exec, bob))
}
