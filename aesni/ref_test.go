//
// ref_test.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package aesni

import (
	"math/bits"
)

// Straightforward table-based AES used as an independent reference in
// tests. It is not constant-time.

var sboxRef = func() (s [256]byte) {
	for i := 0; i < 256; i++ {
		b := gfInvRef(byte(i))
		s[i] = b ^ bits.RotateLeft8(b, 1) ^ bits.RotateLeft8(b, 2) ^
			bits.RotateLeft8(b, 3) ^ bits.RotateLeft8(b, 4) ^ 0x63
	}
	return
}()

func xtime(b byte) byte {
	if b&0x80 != 0 {
		return (b << 1) ^ 0x1b
	}
	return b << 1
}

func gfMulRef(a, b byte) byte {
	var p byte
	for b != 0 {
		if b&1 != 0 {
			p ^= a
		}
		a = xtime(a)
		b >>= 1
	}
	return p
}

func gfInvRef(x byte) byte {
	if x == 0 {
		return 0
	}
	for y := 1; y < 256; y++ {
		if gfMulRef(x, byte(y)) == 1 {
			return byte(y)
		}
	}
	panic("no inverse")
}

func expandKeyRef(key Key) (rk [Rounds + 1][BlockSize]byte) {
	var w [4 * (Rounds + 1)][4]byte
	for i := 0; i < 4; i++ {
		copy(w[i][:], key[i*4:])
	}
	rc := byte(1)
	for i := 4; i < len(w); i++ {
		t := w[i-1]
		if i%4 == 0 {
			t = [4]byte{
				sboxRef[t[1]] ^ rc,
				sboxRef[t[2]],
				sboxRef[t[3]],
				sboxRef[t[0]],
			}
			rc = xtime(rc)
		}
		for j := 0; j < 4; j++ {
			w[i][j] = w[i-4][j] ^ t[j]
		}
	}
	for i := range w {
		copy(rk[i/4][(i%4)*4:], w[i][:])
	}
	return
}

func encryptRef(rk [][BlockSize]byte, block [BlockSize]byte) [BlockSize]byte {
	s := block
	addRoundKeyRef(&s, &rk[0])

	last := len(rk) - 1
	for r := 1; r <= last; r++ {
		for i := range s {
			s[i] = sboxRef[s[i]]
		}
		shiftRowsRef(&s)
		if r != last {
			mixColumnsRef(&s)
		}
		addRoundKeyRef(&s, &rk[r])
	}
	return s
}

func addRoundKeyRef(s, k *[BlockSize]byte) {
	for i := range s {
		s[i] ^= k[i]
	}
}

func shiftRowsRef(s *[BlockSize]byte) {
	o := *s
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			s[r+4*c] = o[r+4*((c+r)%4)]
		}
	}
}

func mixColumnsRef(s *[BlockSize]byte) {
	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[4*c], s[4*c+1], s[4*c+2], s[4*c+3]
		s[4*c] = xtime(a0) ^ xtime(a1) ^ a1 ^ a2 ^ a3
		s[4*c+1] = a0 ^ xtime(a1) ^ xtime(a2) ^ a2 ^ a3
		s[4*c+2] = a0 ^ a1 ^ xtime(a2) ^ xtime(a3) ^ a3
		s[4*c+3] = xtime(a0) ^ a0 ^ a1 ^ a2 ^ xtime(a3)
	}
}
