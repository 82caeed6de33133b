// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	ConfigFileKey          = "config-file"
	HTTPHostKey            = "http-host"
	HTTPPortKey            = "http-port"
	HTTPAllowedOriginsKey  = "http-allowed-origins"
	HTTPShutdownTimeoutKey = "http-shutdown-timeout"
	LogLevelKey            = "log-level"
	LogDisplayLevelKey     = "log-display-level"
	LogFormatKey           = "log-format"
	LogDirKey              = "log-dir"
	LogMaxSizeKey          = "log-rotater-max-size"
	LogMaxFilesKey         = "log-rotater-max-files"
	LogMaxAgeKey           = "log-rotater-max-age"
	LogCompressKey         = "log-rotater-compress-enabled"
	ContractAddressKey     = "contract-address"
	ContractNameKey        = "contract-name"
	NetworkKey             = "network"
	TxIDKey                = "tx-id"
	CurrentEraKey          = "current-era-threshold"
	ErasFileKey            = "eras-file"
	MetricsNamespaceKey    = "metrics-namespace"
)
