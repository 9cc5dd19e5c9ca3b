// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package nucsimd packs nucleotide sequences into 2 bits per base and
// provides bit-level analytics (validity check, complement, popcount,
// per-base Hamming distance, equality) that run directly on the packed form.
//
// A packed buffer is a []uint64.  Each word holds 32 bases, base i of the
// sequence living in bits 2*(i%32)..2*(i%32)+1 of word i/32.  Codes are
// A=0, C=1, T=2 (U is read as T), G=3; complementary bases differ only in
// the high bit of their code, so complementing a buffer is an XOR with
// 0xaaaaaaaaaaaaaaaa.  Bits past the logical length of a buffer ("tail
// padding") are never read by functions that take a length.
//
// Every operation has three tiers: a 256-bit register-model kernel (wide,
// AVX2-class), a 128-bit one (narrow, SSSE3/SSE4.1 or NEON-class) and a
// scalar one.  The tiers return bit-identical results for identical input;
// the package-level functions use the tier picked for this CPU at init time,
// and NewCodec runs any tier explicitly.  The kernels are written against a
// small portable register model (see vec.go), so every tier runs on every
// platform.
package nucsimd
