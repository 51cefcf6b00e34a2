//
// expand.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package aesni

// rcon holds the Rijndael key schedule round constants, one for each
// round key after the master key.
var rcon = [Rounds]byte{
	0x01, 0x02, 0x04, 0x08, 0x10, 0x20, 0x40, 0x80, 0x1b, 0x36,
	0x6c, 0xd8, 0xab, 0x4d,
}

// expandKey expands the master key into Rounds+1 round keys. Round
// keys 0-10 are the AES-128 key schedule; the remaining keys continue
// the same recurrence.
func expandKey(key *Key, rk *[Rounds + 1][BlockSize]byte) {
	rk[0] = *key

	for r := 1; r <= Rounds; r++ {
		prev := &rk[r-1]
		next := &rk[r]

		// SubWord(RotWord(w[i-1])) ^ Rcon
		t := subWord([4]byte{prev[13], prev[14], prev[15], prev[12]})
		t[0] ^= rcon[r-1]

		for i := 0; i < 4; i++ {
			next[i] = prev[i] ^ t[i]
		}
		for i := 4; i < BlockSize; i++ {
			next[i] = prev[i] ^ next[i-4]
		}
	}
}
