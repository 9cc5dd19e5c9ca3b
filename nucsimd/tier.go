// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package nucsimd

import (
	"fmt"

	"github.com/grailbio/base/log"
)

// Tier names one implementation width of the kernels.
type Tier int

const (
	// TierScalar runs one word (or byte) at a time.
	TierScalar Tier = iota
	// TierNarrow runs on 128-bit registers (SSSE3/SSE4.1 or NEON class).
	TierNarrow
	// TierWide runs on 256-bit registers (AVX2 class).
	TierWide
)

var tierNames = [...]string{
	TierScalar: "scalar",
	TierNarrow: "narrow",
	TierWide:   "wide",
}

func (t Tier) String() string {
	if t < 0 || int(t) >= len(tierNames) {
		return fmt.Sprintf("Tier(%d)", int(t))
	}
	return tierNames[t]
}

// ParseTier converts the output of Tier.String back to a Tier.
func ParseTier(s string) (Tier, error) {
	for i, name := range tierNames {
		if name == s {
			return Tier(i), nil
		}
	}
	return TierScalar, fmt.Errorf("nucsimd: unknown tier %q (want scalar, narrow or wide)", s)
}

// Tiers lists every tier, narrowest first.
func Tiers() []Tier {
	return []Tier{TierScalar, TierNarrow, TierWide}
}

var (
	detected     Tier
	defaultCodec *Codec
)

func init() {
	detected = detectTier()
	defaultCodec = newCodec(detected)
	log.Debug.Printf("nucsimd: using %v tier", detected)
}

// DetectTier returns the widest tier the running CPU supports.  The probe
// runs once, at package initialization.
func DetectTier() Tier {
	return detected
}
