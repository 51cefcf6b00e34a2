//
// label.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

// Package gc implements garbled circuit wire labels and their
// algebra.
package gc

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
)

// LabelSize specifies the label size in bytes.
const LabelSize = 16

// ErrLabelSize is returned when label data has an invalid length.
var ErrLabelSize = errors.New("invalid label size")

// Wire implements a wire with 0 and 1 labels.
type Wire struct {
	L0 Label
	L1 Label
}

// NewWire creates a new Free-XOR wire: L0 is random and L1 is L0
// xored with the global offset delta.
func NewWire(rand io.Reader, delta Label) (Wire, error) {
	l0, err := NewLabel(rand)
	if err != nil {
		return Wire{}, err
	}
	return Wire{
		L0: l0,
		L1: Xor(l0, delta),
	}, nil
}

func (w Wire) String() string {
	return fmt.Sprintf("%s/%s", w.L0, w.L1)
}

// Label implements a 128 bit wire label. D0 holds the high and D1 the
// low 64 bits of the label value.
type Label struct {
	D0 uint64
	D1 uint64
}

// LabelData contains label data as byte array.
type LabelData [LabelSize]byte

func (l Label) String() string {
	return fmt.Sprintf("%016x%016x", l.D0, l.D1)
}

// Equal test if the labels are equal.
func (l Label) Equal(o Label) bool {
	return l.D0 == o.D0 && l.D1 == o.D1
}

// NewLabel creates a new random label.
func NewLabel(rand io.Reader) (Label, error) {
	var buf LabelData
	var label Label

	if _, err := io.ReadFull(rand, buf[:]); err != nil {
		return label, errors.Wrap(err, "reading label data")
	}
	label.SetData(&buf)
	return label, nil
}

// LabelFromBytes creates a label from its 16 byte big-endian
// representation.
func LabelFromBytes(data []byte) (Label, error) {
	var label Label
	if len(data) != LabelSize {
		return label, errors.Wrapf(ErrLabelSize, "got %d bytes", len(data))
	}
	label.SetBytes(data)
	return label, nil
}

// NewTweak creates a new label from the tweak value. The tweak is
// zero-extended into the low word.
func NewTweak(tweak uint32) Label {
	return Label{
		D1: uint64(tweak),
	}
}

// S tests the label's S bit.
func (l Label) S() bool {
	return (l.D0 & 0x8000000000000000) != 0
}

// SetS sets the label's S bit.
func (l *Label) SetS(set bool) {
	var bit uint64
	if set {
		bit = 1
	}
	l.D0 = (l.D0 & 0x7fffffffffffffff) | (bit << 63)
}

// Mul2 multiplies the label by 2 modulo 2^128.
func (l *Label) Mul2() {
	l.D0 <<= 1
	l.D0 |= (l.D1 >> 63)
	l.D1 <<= 1
}

// Mul4 multiplies the label by 4 modulo 2^128.
func (l *Label) Mul4() {
	l.D0 <<= 2
	l.D0 |= (l.D1 >> 62)
	l.D1 <<= 2
}

// Xor xors the label with the argument label.
func (l *Label) Xor(o Label) {
	l.D0 ^= o.D0
	l.D1 ^= o.D1
}

// Xor returns a^b.
func Xor(a, b Label) Label {
	a.Xor(b)
	return a
}

// Double returns 2a modulo 2^128.
func Double(a Label) Label {
	a.Mul2()
	return a
}

// Quadruple returns 4a modulo 2^128.
func Quadruple(a Label) Label {
	a.Mul4()
	return a
}

// MakeK combines the gate input labels a and b with the gate tweak t
// into the permutation input block 2a^4b^t.
func MakeK(a, b Label, t uint32) Label {
	a.Mul2()
	b.Mul4()
	a.Xor(b)
	a.Xor(NewTweak(t))

	return a
}

// GetData gets the labels as label data.
func (l Label) GetData(buf *LabelData) {
	binary.BigEndian.PutUint64(buf[0:8], l.D0)
	binary.BigEndian.PutUint64(buf[8:16], l.D1)
}

// SetData sets the labels from label data.
func (l *Label) SetData(data *LabelData) {
	l.D0 = binary.BigEndian.Uint64((*data)[0:8])
	l.D1 = binary.BigEndian.Uint64((*data)[8:16])
}

// Bytes returns the label data as bytes.
func (l Label) Bytes(buf *LabelData) []byte {
	l.GetData(buf)
	return buf[:]
}

// SetBytes sets the label data from bytes. The data must be at least
// LabelSize bytes long.
func (l *Label) SetBytes(data []byte) {
	l.D0 = binary.BigEndian.Uint64(data[0:8])
	l.D1 = binary.BigEndian.Uint64(data[8:16])
}
