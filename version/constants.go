// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

const Client = "mocknet"

var (
	// Current is the version of this node
	Current = &Semantic{
		Major: 1,
		Minor: 0,
		Patch: 0,
	}

	// GitCommit is set at build time with
	// -ldflags "-X github.com/esetonyehi/evolution-of-exchange/version.GitCommit=..."
	GitCommit string
)
