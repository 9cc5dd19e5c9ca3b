// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

//go:build (!amd64 && !arm64) || appengine
// +build !amd64,!arm64 appengine

package nucsimd

func detectTier() Tier {
	return TierScalar
}
