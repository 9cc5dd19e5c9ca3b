// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build amd64 && !appengine
// +build amd64,!appengine

package nucsimd

import "golang.org/x/sys/cpu"

func detectTier() Tier {
	switch {
	case cpu.X86.HasAVX2:
		return TierWide
	case cpu.X86.HasSSSE3 && cpu.X86.HasSSE41:
		return TierNarrow
	}
	return TierScalar
}
