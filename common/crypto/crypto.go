// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package crypto 签名接口定义以及签名算法的注册
package crypto

import (
	"fmt"
	"sync"
)

//PrivKey 私钥
type PrivKey interface {
	Bytes() []byte
	Sign(msg []byte) Signature
	PubKey() PubKey
	Equals(PrivKey) bool
}

//Signature 签名
type Signature interface {
	Bytes() []byte
	IsZero() bool
	String() string
	Equals(Signature) bool
}

//PubKey 公钥
type PubKey interface {
	Bytes() []byte
	KeyString() string
	VerifyBytes(msg []byte, sig Signature) bool
	Equals(PubKey) bool
}

//Crypto 签名算法
type Crypto interface {
	GenKey() (PrivKey, error)
	SignatureFromBytes([]byte) (Signature, error)
	PrivKeyFromBytes([]byte) (PrivKey, error)
	PubKeyFromBytes([]byte) (PubKey, error)
}

var (
	drivers     = make(map[string]Crypto)
	driversType = make(map[string]int32)
	driverMutex sync.RWMutex
)

//Register 注册签名算法，ty 写在交易的签名中
func Register(name string, ty int32, driver Crypto) {
	driverMutex.Lock()
	defer driverMutex.Unlock()
	if driver == nil {
		panic("crypto: Register driver is nil")
	}
	if _, dup := drivers[name]; dup {
		panic("crypto: Register called twice for driver " + name)
	}
	for n, t := range driversType {
		if t == ty {
			panic(fmt.Sprintf("crypto: type %d already used by %s", ty, n))
		}
	}
	drivers[name] = driver
	driversType[name] = ty
}

//GetName 获取name
func GetName(ty int32) string {
	driverMutex.RLock()
	defer driverMutex.RUnlock()
	for name, t := range driversType {
		if t == ty {
			return name
		}
	}
	return "unknown"
}

//GetType 获取type
func GetType(name string) int32 {
	driverMutex.RLock()
	defer driverMutex.RUnlock()
	return driversType[name]
}

//New new
func New(name string) (Crypto, error) {
	driverMutex.RLock()
	defer driverMutex.RUnlock()
	c, ok := drivers[name]
	if !ok {
		return nil, fmt.Errorf("unknown driver %q", name)
	}
	return c, nil
}

// Verify 按签名类型校验 msg 的签名
func Verify(ty int32, msg, pub, sig []byte) bool {
	c, err := New(GetName(ty))
	if err != nil {
		return false
	}
	pubKey, err := c.PubKeyFromBytes(pub)
	if err != nil {
		return false
	}
	signature, err := c.SignatureFromBytes(sig)
	if err != nil || signature.IsZero() {
		return false
	}
	return pubKey.VerifyBytes(msg, signature)
}
