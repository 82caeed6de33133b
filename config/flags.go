// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/esetonyehi/evolution-of-exchange/exchange"
	"github.com/esetonyehi/evolution-of-exchange/mocknet"
	"github.com/esetonyehi/evolution-of-exchange/utils/logging"
)

const (
	// EnvPrefix is prepended to every key when read from the environment.
	// For example, http-port is read from MOCKNET_HTTP_PORT.
	EnvPrefix = "mocknet"

	DefaultHTTPHost = "127.0.0.1"
	DefaultHTTPPort = 20443
)

var envReplacer = strings.NewReplacer("-", "_")

// BuildFlagSet declares every configuration key with its default.
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(EnvPrefix, pflag.ContinueOnError)

	fs.String(ConfigFileKey, "", "Path to a config file. Keys in the file are overridden by flags and environment variables")

	// HTTP
	fs.String(HTTPHostKey, DefaultHTTPHost, "Address of the HTTP server")
	fs.Uint(HTTPPortKey, DefaultHTTPPort, "Port of the HTTP server. 0 picks a free port")
	fs.StringSlice(HTTPAllowedOriginsKey, []string{"*"}, "Origins to allow on the HTTP port")
	fs.Duration(HTTPShutdownTimeoutKey, 10*time.Second, "Maximum duration to wait for in-flight requests on shutdown")

	// Logging
	fs.String(LogLevelKey, logging.Info.String(), fmt.Sprintf("The log level. Should be one of {%s}", levelNames()))
	fs.String(LogDisplayLevelKey, "", "The log display level. If left blank, the log level is used")
	fs.String(LogFormatKey, logging.Plain.String(), logging.FormatDescription)
	fs.String(LogDirKey, "", "Directory of rotated log files. If left blank, logs are only displayed")
	fs.Int(LogMaxSizeKey, 8, "The maximum file size in megabytes of a log file before it is rotated")
	fs.Int(LogMaxFilesKey, 7, "The maximum number of old log files to retain. 0 retains all of them")
	fs.Int(LogMaxAgeKey, 0, "The maximum number of days to retain old log files. 0 retains them forever")
	fs.Bool(LogCompressKey, false, "Whether rotated log files are compressed with gzip")

	// Contract
	fs.String(ContractAddressKey, mocknet.DefaultContractAddress, "Principal the contract is deployed by")
	fs.String(ContractNameKey, mocknet.ContractName, "Name of the contract served by the node")
	fs.String(NetworkKey, mocknet.Mocknet, fmt.Sprintf("Network the node claims to be. Should be one of {%s, %s, %s}", mocknet.Mocknet, mocknet.Testnet, mocknet.Mainnet))
	fs.String(TxIDKey, mocknet.DefaultTxID, "Transaction ID reported in every result")
	fs.Uint64(CurrentEraKey, exchange.CurrentEraThreshold, fmt.Sprintf("First era whose exchange method is current. The built-in dataset requires %d, other values need --%s", exchange.CurrentEraThreshold, ErasFileKey))
	fs.String(ErasFileKey, "", "YAML file replacing the built-in era dataset")
	fs.String(MetricsNamespaceKey, "mocknet", "Namespace of the node's metrics")

	return fs
}

// BuildViper parses [args] into [fs] and returns the viper environment
// layering flags over environment variables over the config file.
func BuildViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(envReplacer)
	v.SetEnvPrefix(EnvPrefix)
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if configFile := v.GetString(ConfigFileKey); configFile != "" {
		v.SetConfigFile(os.ExpandEnv(configFile))
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("couldn't read config file %q: %w", configFile, err)
		}
	}
	return v, nil
}

func levelNames() string {
	levels := []logging.Level{
		logging.Off,
		logging.Fatal,
		logging.Error,
		logging.Warn,
		logging.Info,
		logging.Trace,
		logging.Debug,
		logging.Verbo,
	}
	names := make([]string, len(levels))
	for i, level := range levels {
		names[i] = strings.ToLower(level.String())
	}
	return strings.Join(names, ", ")
}
