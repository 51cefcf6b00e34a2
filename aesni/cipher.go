//
// cipher.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

// Package aesni implements the fixed-key AES tweakable permutation
// that encrypts garbled circuit wire labels. The permutation uses one
// public 128 bit key, expanded into 15 round keys and applied as 14
// AES rounds. AES-NI is used when the CPU supports it and a
// constant-time bitsliced implementation otherwise.
package aesni

import (
	"encoding/hex"

	"github.com/cockroachdb/errors"
	"github.com/markkurossi/aesgc/gc"
)

const (
	// BlockSize specifies the cipher block size in bytes.
	BlockSize = gc.LabelSize
	// Rounds specifies the number of encryption rounds.
	Rounds = 14
)

// Key defines the 128 bit master key.
type Key [BlockSize]byte

// BenchmarkKey is the fixed public key of the reference benchmark.
var BenchmarkKey = Key{
	'0', '1', '2', '3', '4', '5', '6', '7',
	'8', '9', 'A', 'B', 'C', 'D', 'E', 'F',
}

// ParseKey parses a key from its hex representation.
func ParseKey(s string) (Key, error) {
	var key Key

	data, err := hex.DecodeString(s)
	if err != nil {
		return key, errors.Wrap(err, "invalid key")
	}
	if len(data) != len(key) {
		return key, errors.Newf("invalid key length %d", len(data))
	}
	copy(key[:], data)
	return key, nil
}

func (k Key) String() string {
	return hex.EncodeToString(k[:])
}

// Cipher holds the expanded round keys of a master key. Cipher is
// immutable after NewCipher and safe for concurrent use.
type Cipher struct {
	rk [Rounds + 1][BlockSize]byte
	bs [Rounds + 1][8]uint64
}

// NewCipher creates a new cipher for the master key.
func NewCipher(key Key) *Cipher {
	c := new(Cipher)
	expandKey(&key, &c.rk)
	for i := range c.rk {
		loadRoundKey(&c.bs[i], &c.rk[i])
	}
	return c
}

// RoundKeys returns a copy of the expanded round keys.
func (c *Cipher) RoundKeys() [Rounds + 1][BlockSize]byte {
	return c.rk
}

// Impl returns the name of the AES implementation in use.
func (c *Cipher) Impl() string {
	if useAESNI {
		return "aesni"
	}
	return "ct64"
}

// Encrypt applies the fixed-key permutation to the label k.
func (c *Cipher) Encrypt(k gc.Label) gc.Label {
	var buf gc.LabelData
	var pi gc.Label

	k.GetData(&buf)
	c.encryptBlock((*[BlockSize]byte)(&buf), (*[BlockSize]byte)(&buf))
	pi.SetData(&buf)

	return pi
}

// Garble encrypts the output label out for the gate with input labels
// a and b and tweak t. It returns π(K)^K^out where K=2a^4b^t. Garbling
// and evaluation are the same operation: the evaluator recovers out by
// calling Garble with the garbled value in its place.
func (c *Cipher) Garble(a, b, out gc.Label, t uint32) gc.Label {
	k := gc.MakeK(a, b, t)

	pi := c.Encrypt(k)
	pi.Xor(k)
	pi.Xor(out)

	return pi
}

func (c *Cipher) encryptBlock(dst, src *[BlockSize]byte) {
	if useAESNI {
		encryptBlockAsm(Rounds, &c.rk[0][0], &dst[0], &src[0])
		return
	}
	encryptBlockGeneric(c.bs[:], dst, src)
}
