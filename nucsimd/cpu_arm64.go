// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build arm64 && !appengine
// +build arm64,!appengine

package nucsimd

import "golang.org/x/sys/cpu"

func detectTier() Tier {
	if cpu.ARM64.HasASIMD {
		return TierNarrow
	}
	return TierScalar
}
