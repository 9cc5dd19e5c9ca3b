// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nucsimd

import "encoding/binary"

// This file holds the register model the vector tiers are written against.
// vec128 and vec256 are 16- and 32-byte registers stored as little-endian
// 64-bit lanes; each method mirrors one SSE/AVX2 instruction (named in its
// comment).  The byte-lane work is done with SWAR arithmetic on the 64-bit
// lanes.

const (
	lo8    = 0x0101010101010101
	hi8    = 0x8080808080808080
	lo16   = 0x0001000100010001
	even16 = 0x0000ffff0000ffff
	odd16  = 0xffff0000ffff0000
)

// add8 adds the bytes of a and b lane-wise, modulo 256.
func add8(a, b uint64) uint64 {
	return ((a &^ hi8) + (b &^ hi8)) ^ ((a ^ b) & hi8)
}

// srl16 shifts every 16-bit lane of x right by n < 16.
func srl16(x uint64, n uint) uint64 {
	return (x >> n) & (lo16 * (0xffff >> n))
}

// shuffle8 looks up every byte of idx in tbl; bytes with the top bit set
// produce zero.
func shuffle8(tbl *[16]byte, idx uint64) uint64 {
	var r uint64
	for shift := uint(0); shift < 64; shift += 8 {
		b := byte(idx >> shift)
		if b&0x80 == 0 {
			r |= uint64(tbl[b&15]) << shift
		}
	}
	return r
}

// sad8 returns the sum of the eight bytes of x.
func sad8(x uint64) uint64 {
	x = (x & 0x00ff00ff00ff00ff) + ((x >> 8) & 0x00ff00ff00ff00ff)
	return (x * lo16) >> 48
}

// movemask8 gathers the top bit of byte i of x into bit i of the result.
func movemask8(x uint64) uint64 {
	return (((x & hi8) >> 7) * 0x0102040810204080) >> 56
}

// max8zero replaces every byte that is negative as an int8 with zero.
func max8zero(x uint64) uint64 {
	return x &^ (((x & hi8) >> 7) * 0xff)
}

// spread8 moves byte i of the low 32 bits of x to byte 2*i.
func spread8(x uint64) uint64 {
	x = (x | x<<16) & 0x0000ffff0000ffff
	return (x | x<<8) & 0x00ff00ff00ff00ff
}

// interleave8 interleaves the bytes of a and b: lo holds a0 b0 a1 b1 .. a3
// b3, hi holds a4 b4 .. a7 b7.
func interleave8(a, b uint64) (lo, hi uint64) {
	lo = spread8(a&0xffffffff) | spread8(b&0xffffffff)<<8
	hi = spread8(a>>32) | spread8(b>>32)<<8
	return
}

func tableOf(lo, hi uint64) (t [16]byte) {
	binary.LittleEndian.PutUint64(t[:8], lo)
	binary.LittleEndian.PutUint64(t[8:], hi)
	return
}

type vec128 [2]uint64

func load128(src []byte) vec128 {
	_ = src[15]
	return vec128{binary.LittleEndian.Uint64(src), binary.LittleEndian.Uint64(src[8:])}
}

func (v vec128) store(dst []byte) {
	_ = dst[15]
	binary.LittleEndian.PutUint64(dst, v[0])
	binary.LittleEndian.PutUint64(dst[8:], v[1])
}

// set1x8 is _mm_set1_epi8.
func set1x8(b byte) vec128 {
	x := uint64(b) * lo8
	return vec128{x, x}
}

// set1x16 is _mm_set1_epi16.
func set1x16(h uint16) vec128 {
	x := uint64(h) * lo16
	return vec128{x, x}
}

// set1x32 is _mm_set1_epi32.
func set1x32(w uint32) vec128 {
	x := uint64(w) | uint64(w)<<32
	return vec128{x, x}
}

func (v vec128) and(o vec128) vec128 { return vec128{v[0] & o[0], v[1] & o[1]} }
func (v vec128) xor(o vec128) vec128 { return vec128{v[0] ^ o[0], v[1] ^ o[1]} }

// add8 is _mm_add_epi8.
func (v vec128) add8(o vec128) vec128 { return vec128{add8(v[0], o[0]), add8(v[1], o[1])} }

// add64 is _mm_add_epi64.
func (v vec128) add64(o vec128) vec128 { return vec128{v[0] + o[0], v[1] + o[1]} }

// sll64 is _mm_slli_epi64.
func (v vec128) sll64(n uint) vec128 { return vec128{v[0] << n, v[1] << n} }

// srl16 is _mm_srli_epi16.
func (v vec128) srl16(n uint) vec128 { return vec128{srl16(v[0], n), srl16(v[1], n)} }

// max8zero is _mm_max_epi8 against the zero register.
func (v vec128) max8zero() vec128 { return vec128{max8zero(v[0]), max8zero(v[1])} }

// sad is _mm_sad_epu8 against the zero register.
func (v vec128) sad() vec128 { return vec128{sad8(v[0]), sad8(v[1])} }

// lookup is _mm_shuffle_epi8 with a constant table and v as the indices.
func (v vec128) lookup(tbl *[16]byte) vec128 {
	return vec128{shuffle8(tbl, v[0]), shuffle8(tbl, v[1])}
}

// shuffle is _mm_shuffle_epi8 with v as the table.
func (v vec128) shuffle(idx vec128) vec128 {
	t := tableOf(v[0], v[1])
	return idx.lookup(&t)
}

// blendOdd16 is _mm_blend_epi16 with mask 0b10101010: odd 16-bit lanes are
// taken from o.
func (v vec128) blendOdd16(o vec128) vec128 {
	return vec128{v[0]&even16 | o[0]&odd16, v[1]&even16 | o[1]&odd16}
}

// unpacklo8 is _mm_unpacklo_epi8.
func (v vec128) unpacklo8(o vec128) vec128 {
	lo, hi := interleave8(v[0], o[0])
	return vec128{lo, hi}
}

// unpackhi8 is _mm_unpackhi_epi8.
func (v vec128) unpackhi8(o vec128) vec128 {
	lo, hi := interleave8(v[1], o[1])
	return vec128{lo, hi}
}

// movemask is _mm_movemask_epi8.
func (v vec128) movemask() uint32 {
	return uint32(movemask8(v[0]) | movemask8(v[1])<<8)
}

// testz is _mm_testz_si128: it reports whether v&o is all zero.
func (v vec128) testz(o vec128) bool {
	return (v[0]&o[0])|(v[1]&o[1]) == 0
}

// vec256 lanes 0-1 form the low 128-bit half, lanes 2-3 the high one.
// In-lane instructions (shuffle, unpack) act on each half independently.
type vec256 [4]uint64

func load256(src []byte) vec256 {
	_ = src[31]
	return vec256{
		binary.LittleEndian.Uint64(src),
		binary.LittleEndian.Uint64(src[8:]),
		binary.LittleEndian.Uint64(src[16:]),
		binary.LittleEndian.Uint64(src[24:]),
	}
}

func (v vec256) store(dst []byte) {
	_ = dst[31]
	binary.LittleEndian.PutUint64(dst, v[0])
	binary.LittleEndian.PutUint64(dst[8:], v[1])
	binary.LittleEndian.PutUint64(dst[16:], v[2])
	binary.LittleEndian.PutUint64(dst[24:], v[3])
}

// set1x8w is _mm256_set1_epi8.
func set1x8w(b byte) vec256 {
	x := uint64(b) * lo8
	return vec256{x, x, x, x}
}

// set1x16w is _mm256_set1_epi16.
func set1x16w(h uint16) vec256 {
	x := uint64(h) * lo16
	return vec256{x, x, x, x}
}

// set1x64w is _mm256_set1_epi64x.
func set1x64w(x uint64) vec256 { return vec256{x, x, x, x} }

func (v vec256) and(o vec256) vec256 {
	return vec256{v[0] & o[0], v[1] & o[1], v[2] & o[2], v[3] & o[3]}
}

func (v vec256) xor(o vec256) vec256 {
	return vec256{v[0] ^ o[0], v[1] ^ o[1], v[2] ^ o[2], v[3] ^ o[3]}
}

// add8 is _mm256_add_epi8.
func (v vec256) add8(o vec256) vec256 {
	return vec256{add8(v[0], o[0]), add8(v[1], o[1]), add8(v[2], o[2]), add8(v[3], o[3])}
}

// add64 is _mm256_add_epi64.
func (v vec256) add64(o vec256) vec256 {
	return vec256{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

// sll64 is _mm256_slli_epi64.
func (v vec256) sll64(n uint) vec256 {
	return vec256{v[0] << n, v[1] << n, v[2] << n, v[3] << n}
}

// srl16 is _mm256_srli_epi16.
func (v vec256) srl16(n uint) vec256 {
	return vec256{srl16(v[0], n), srl16(v[1], n), srl16(v[2], n), srl16(v[3], n)}
}

// max8zero is _mm256_max_epi8 against the zero register.
func (v vec256) max8zero() vec256 {
	return vec256{max8zero(v[0]), max8zero(v[1]), max8zero(v[2]), max8zero(v[3])}
}

// sad is _mm256_sad_epu8 against the zero register.
func (v vec256) sad() vec256 {
	return vec256{sad8(v[0]), sad8(v[1]), sad8(v[2]), sad8(v[3])}
}

// lookup is _mm256_shuffle_epi8 with the same constant table in both halves.
func (v vec256) lookup(tbl *[16]byte) vec256 {
	return vec256{shuffle8(tbl, v[0]), shuffle8(tbl, v[1]), shuffle8(tbl, v[2]), shuffle8(tbl, v[3])}
}

// shuffle is _mm256_shuffle_epi8 with v as the table.
func (v vec256) shuffle(idx vec256) vec256 {
	lo := tableOf(v[0], v[1])
	hi := tableOf(v[2], v[3])
	return vec256{shuffle8(&lo, idx[0]), shuffle8(&lo, idx[1]), shuffle8(&hi, idx[2]), shuffle8(&hi, idx[3])}
}

// blendOdd16 is _mm256_blend_epi16 with mask 0b10101010.
func (v vec256) blendOdd16(o vec256) vec256 {
	return vec256{
		v[0]&even16 | o[0]&odd16,
		v[1]&even16 | o[1]&odd16,
		v[2]&even16 | o[2]&odd16,
		v[3]&even16 | o[3]&odd16,
	}
}

// permute4x64 is _mm256_permute4x64_epi64.
func (v vec256) permute4x64(imm uint8) vec256 {
	return vec256{v[imm&3], v[(imm>>2)&3], v[(imm>>4)&3], v[(imm>>6)&3]}
}

// unpacklo8 is _mm256_unpacklo_epi8.
func (v vec256) unpacklo8(o vec256) vec256 {
	a, b := interleave8(v[0], o[0])
	c, d := interleave8(v[2], o[2])
	return vec256{a, b, c, d}
}

// unpackhi8 is _mm256_unpackhi_epi8.
func (v vec256) unpackhi8(o vec256) vec256 {
	a, b := interleave8(v[1], o[1])
	c, d := interleave8(v[3], o[3])
	return vec256{a, b, c, d}
}

// movemask is _mm256_movemask_epi8.
func (v vec256) movemask() uint32 {
	return uint32(movemask8(v[0]) | movemask8(v[1])<<8 | movemask8(v[2])<<16 | movemask8(v[3])<<24)
}

// testz is _mm256_testz_si256.
func (v vec256) testz(o vec256) bool {
	return (v[0]&o[0])|(v[1]&o[1])|(v[2]&o[2])|(v[3]&o[3]) == 0
}

// hsum adds up the four 64-bit lanes.
func (v vec256) hsum() uint64 { return v[0] + v[1] + v[2] + v[3] }

// hsum adds up the two 64-bit lanes.
func (v vec128) hsum() uint64 { return v[0] + v[1] }
