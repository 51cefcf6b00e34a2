//
// encrypt_amd64.go
//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

//go:build amd64 && gc && !purego

package aesni

import (
	"golang.org/x/sys/cpu"
)

var useAESNI = cpu.X86.HasAES

// encryptBlockAsm encrypts src into dst with nr AES-NI rounds using
// the nr+1 consecutive round keys at xk.
//
//go:noescape
func encryptBlockAsm(nr int, xk *byte, dst, src *byte)
