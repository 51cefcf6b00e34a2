//
// lanes.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package aesni

import (
	"github.com/markkurossi/aesgc/gc"
)

const (
	laneMask1 = 0xfffffffefffffffe
	laneMask2 = 0xfffffffcfffffffc
)

// MakeKLanes combines the input labels and tweak by treating the
// labels as four 32 bit lanes: each lane of a is shifted left by one
// bit, each lane of b by two bits, and the tweak is xored into every
// lane. Bits shifted out of a lane are discarded.
func MakeKLanes(a, b gc.Label, t uint32) gc.Label {
	tw := uint64(t)<<32 | uint64(t)

	return gc.Label{
		D0: ((a.D0 << 1) & laneMask1) ^ ((b.D0 << 2) & laneMask2) ^ tw,
		D1: ((a.D1 << 1) & laneMask1) ^ ((b.D1 << 2) & laneMask2) ^ tw,
	}
}

// GarbleLanes is the 32 bit lane variant of Garble. It returns
// π(K)^K^out where K=MakeKLanes(a, b, t). Its output is not
// interchangeable with Garble.
func (c *Cipher) GarbleLanes(a, b, out gc.Label, t uint32) gc.Label {
	k := MakeKLanes(a, b, t)

	pi := c.Encrypt(k)
	pi.Xor(k)
	pi.Xor(out)

	return pi
}
