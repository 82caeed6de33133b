// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFactoryWritesRotatedFile(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	factory := NewFactory(Config{
		RotatingWriterConfig: RotatingWriterConfig{
			Directory: dir,
			MaxSize:   1,
		},
		DisableWriterDisplaying: true,
		DisplayLevel:            Off,
		LogLevel:                Info,
		LogFormat:               JSON,
	})

	log, err := factory.Make("mocknet")
	require.NoError(err)

	_, err = factory.Make("mocknet")
	require.ErrorContains(err, "already exists")

	log.Info("node started")
	log.Debug("filtered")
	require.ElementsMatch([]string{"mocknet"}, factory.GetLoggerNames())

	require.NoError(factory.SetLogLevel("mocknet", Debug))
	log.Debug("now visible")
	require.ErrorContains(factory.SetDisplayLevel("unknown", Info), "not found")

	factory.Close()

	contents, err := os.ReadFile(filepath.Join(dir, "mocknet.log"))
	require.NoError(err)
	require.Contains(string(contents), "node started")
	require.Contains(string(contents), "now visible")
	require.NotContains(string(contents), "filtered")
}
