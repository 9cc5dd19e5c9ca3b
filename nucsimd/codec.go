// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nucsimd

import "fmt"

const (
	// SymbolsPerWord is the number of 2-bit codes packed into one uint64.
	SymbolsPerWord = 32

	// ComplementMask flips A<->T and C<->G when XORed into a packed word.
	ComplementMask = 0xaaaaaaaaaaaaaaaa

	// lowBitMask selects the low bit of every 2-bit field.
	lowBitMask = 0x5555555555555555

	// Popcount and Hamming run the scalar loop directly when the input spans
	// at most this many 64-symbol (or 64-bit) units.
	smallUnits = 8
)

// WordCount returns the number of words needed to pack n symbols.
func WordCount(n int) int {
	return (n + SymbolsPerWord - 1) / SymbolsPerWord
}

// kernels is the per-tier implementation of the dispatched operations.
// Length preconditions are checked by Codec before any kernel is called.
type kernels interface {
	encode(nuc []byte) []uint64
	decode(packed []uint64, n int) []byte
	isValid(nuc []byte) bool
	complement(packed []uint64) []uint64
	popcount(packed []uint64, nBits int) int
	hamming(a, b []uint64, n int) int
}

// Codec runs every operation on one fixed tier.  A Codec is stateless and
// safe for concurrent use.
type Codec struct {
	tier Tier
	k    kernels
}

// NewCodec returns a Codec for the given tier.  Any tier can run on any CPU;
// the vector tiers are merely slower where the hardware lacks the
// corresponding registers.
func NewCodec(t Tier) (*Codec, error) {
	if t < TierScalar || t > TierWide {
		return nil, fmt.Errorf("nucsimd: unknown tier %d", int(t))
	}
	return newCodec(t), nil
}

func newCodec(t Tier) *Codec {
	var k kernels
	switch t {
	case TierWide:
		k = wideKernels{}
	case TierNarrow:
		k = narrowKernels{}
	default:
		k = scalarKernels{}
	}
	return &Codec{tier: t, k: k}
}

// Default returns the Codec used by the package-level functions.
func Default() *Codec {
	return defaultCodec
}

// Tier returns the tier c runs on.
func (c *Codec) Tier() Tier {
	return c.tier
}

// Encode packs nuc into 2-bit codes; see the package documentation for the
// layout.  Recognized bytes are A, C, G, T and U in either case.  Any other
// byte b is packed as ((b>>1)&1) | ((b>>2)&1)<<1 on every tier; call IsValid
// first when that matters.  Encode never fails, and the padding bits of the
// last word are zero.
func (c *Codec) Encode(nuc []byte) []uint64 {
	return c.k.encode(nuc)
}

// Decode unpacks the first n symbols of packed into upper-case ASCII.
// It returns a *LengthError if n < 0 or n > len(packed)*SymbolsPerWord.
// The returned slice has length n; its capacity is rounded up to a whole
// number of words.
func (c *Codec) Decode(packed []uint64, n int) ([]byte, error) {
	if err := checkLength("Decode", n, len(packed)*SymbolsPerWord); err != nil {
		return nil, err
	}
	return c.k.decode(packed, n), nil
}

// IsValid reports whether every byte of nuc is one of ACGTUacgtu.  It
// returns true for empty input.
func (c *Codec) IsValid(nuc []byte) bool {
	return c.k.isValid(nuc)
}

// Complement returns a new buffer holding the complement of every symbol of
// packed (A<->T, C<->G).  Padding bits are flipped too, so they are no longer
// zero.
func (c *Codec) Complement(packed []uint64) []uint64 {
	return c.k.complement(packed)
}

// Popcount returns the number of set bits among the first nBits bits of
// packed.  It panics with a *LengthError if nBits < 0 or
// nBits > 64*len(packed).
func (c *Codec) Popcount(packed []uint64, nBits int) int {
	mustLength("Popcount", nBits, len(packed)*64)
	if nBits>>6 <= smallUnits {
		return popcountScalar(packed, nBits)
	}
	return c.k.popcount(packed, nBits)
}

// Hamming returns the number of positions among the first n symbols where a
// and b hold different codes.  It panics with a *LengthError if n < 0 or n
// exceeds the capacity of either buffer.
func (c *Codec) Hamming(a, b []uint64, n int) int {
	mustLength("Hamming", n, minInt(len(a), len(b))*SymbolsPerWord)
	if n>>6 <= smallUnits {
		return hammingScalar(a, b, n)
	}
	return c.k.hamming(a, b, n)
}

// Equal reports whether the first n symbols of a and b are identical.  It
// panics with a *LengthError if n < 0 or n exceeds the capacity of either
// buffer.
func (c *Codec) Equal(a, b []uint64, n int) bool {
	return Equal(a, b, n)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Encode is Default().Encode.
func Encode(nuc []byte) []uint64 { return defaultCodec.Encode(nuc) }

// Decode is Default().Decode.
func Decode(packed []uint64, n int) ([]byte, error) { return defaultCodec.Decode(packed, n) }

// IsValid is Default().IsValid.
func IsValid(nuc []byte) bool { return defaultCodec.IsValid(nuc) }

// Complement is Default().Complement.
func Complement(packed []uint64) []uint64 { return defaultCodec.Complement(packed) }

// Popcount is Default().Popcount.
func Popcount(packed []uint64, nBits int) int { return defaultCodec.Popcount(packed, nBits) }

// Hamming is Default().Hamming.
func Hamming(a, b []uint64, n int) int { return defaultCodec.Hamming(a, b, n) }

type scalarKernels struct{}

func (scalarKernels) encode(nuc []byte) []uint64 { return encodeScalar(nuc) }
func (scalarKernels) decode(packed []uint64, n int) []byte { return decodeScalar(packed, n) }
func (scalarKernels) isValid(nuc []byte) bool { return isValidScalar(nuc) }
func (scalarKernels) complement(packed []uint64) []uint64 { return complementScalar(packed) }
func (scalarKernels) popcount(packed []uint64, nBits int) int { return popcountScalarFast(packed, nBits) }
func (scalarKernels) hamming(a, b []uint64, n int) int { return hammingScalarFast(a, b, n) }

type narrowKernels struct{}

func (narrowKernels) encode(nuc []byte) []uint64 { return encodeNarrow(nuc) }
func (narrowKernels) decode(packed []uint64, n int) []byte { return decodeNarrow(packed, n) }
func (narrowKernels) isValid(nuc []byte) bool { return isValidNarrow(nuc) }
func (narrowKernels) complement(packed []uint64) []uint64 { return complementNarrow(packed) }
func (narrowKernels) popcount(packed []uint64, nBits int) int { return popcountNarrow(packed, nBits) }
func (narrowKernels) hamming(a, b []uint64, n int) int { return hammingNarrow(a, b, n) }

type wideKernels struct{}

func (wideKernels) encode(nuc []byte) []uint64 { return encodeWide(nuc) }
func (wideKernels) decode(packed []uint64, n int) []byte { return decodeWide(packed, n) }
func (wideKernels) isValid(nuc []byte) bool { return isValidWide(nuc) }
func (wideKernels) complement(packed []uint64) []uint64 { return complementWide(packed) }
func (wideKernels) popcount(packed []uint64, nBits int) int { return popcountWide(packed, nBits) }
func (wideKernels) hamming(a, b []uint64, n int) int { return hammingWide(a, b, n) }
