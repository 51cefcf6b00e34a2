//
// encrypt_noasm.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

//go:build !amd64 || !gc || purego

package aesni

const useAESNI = false

func encryptBlockAsm(nr int, xk *byte, dst, src *byte) {
	panic("aesni: AES-NI not available")
}
