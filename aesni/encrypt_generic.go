//
// encrypt_generic.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package aesni

import (
	"gitlab.com/yawning/bsaes.git/ct64"
)

func loadRoundKey(sk *[8]uint64, rk *[BlockSize]byte) {
	ct64.Load4xU32(sk, rk[:])
}

// encryptBlockGeneric encrypts src into dst with the bitsliced round
// keys sk. The last round key is used for the final round.
func encryptBlockGeneric(sk [][8]uint64, dst, src *[BlockSize]byte) {
	var q [8]uint64

	last := len(sk) - 1

	ct64.Load4xU32(&q, src[:])
	ct64.AddRoundKey(&q, sk[0][:])

	for i := 1; i < last; i++ {
		ct64.Sbox(&q)
		ct64.ShiftRows(&q)
		ct64.MixColumns(&q)
		ct64.AddRoundKey(&q, sk[i][:])
	}
	ct64.Sbox(&q)
	ct64.ShiftRows(&q)
	ct64.AddRoundKey(&q, sk[last][:])

	ct64.Store4xU32(dst[:], &q)
}

// subWord applies the AES S-box to each byte of w.
func subWord(w [4]byte) [4]byte {
	var block [BlockSize]byte
	var q [8]uint64

	copy(block[:], w[:])
	ct64.Load4xU32(&q, block[:])
	ct64.Sbox(&q)
	ct64.Store4xU32(block[:], &q)

	return [4]byte(block[:4])
}
