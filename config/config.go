// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/esetonyehi/evolution-of-exchange/clarity"
	"github.com/esetonyehi/evolution-of-exchange/exchange"
	"github.com/esetonyehi/evolution-of-exchange/mocknet"
	"github.com/esetonyehi/evolution-of-exchange/utils/logging"
	"github.com/esetonyehi/evolution-of-exchange/utils/wrappers"
)

var (
	errInvalidPort         = errors.New("invalid http port")
	errMissingContractName = errors.New("missing contract name")
	errMissingTxID         = errors.New("missing transaction id")
)

type HTTPConfig struct {
	Host            string        `json:"host"`
	Port            uint16        `json:"port"`
	AllowedOrigins  []string      `json:"allowedOrigins"`
	ShutdownTimeout time.Duration `json:"shutdownTimeout"`
}

// Config is the validated configuration of a mocknet node
type Config struct {
	HTTP             HTTPConfig     `json:"http"`
	Logging          logging.Config `json:"logging"`
	ContractAddress  string         `json:"contractAddress"`
	ContractName     string         `json:"contractName"`
	Network          string         `json:"network"`
	TxID             string         `json:"txID"`
	MetricsNamespace string         `json:"metricsNamespace"`

	// Registry serves the era dataset, read from the eras file if one was
	// configured.
	Registry *exchange.Registry `json:"-"`
}

// NodeConfig returns the configuration of the node's contract.
func (c Config) NodeConfig() mocknet.Config {
	return mocknet.Config{
		Namespace:       c.MetricsNamespace,
		ContractAddress: c.ContractAddress,
		ContractName:    c.ContractName,
		TxID:            c.TxID,
		Registry:        c.Registry,
	}
}

// GetConfig reads and validates the configuration defined in [v].
func GetConfig(v *viper.Viper) (Config, error) {
	httpConfig, err := getHTTPConfig(v)
	if err != nil {
		return Config{}, err
	}

	loggingConfig, err := getLoggingConfig(v)
	if err != nil {
		return Config{}, err
	}

	config := Config{
		HTTP:             httpConfig,
		Logging:          loggingConfig,
		ContractAddress:  v.GetString(ContractAddressKey),
		ContractName:     v.GetString(ContractNameKey),
		Network:          v.GetString(NetworkKey),
		TxID:             v.GetString(TxIDKey),
		MetricsNamespace: v.GetString(MetricsNamespaceKey),
	}

	errs := wrappers.Errs{}
	errs.Add(
		clarity.VerifyPrincipal(config.ContractAddress),
		mocknet.VerifyNetwork(config.Network),
	)
	if config.ContractName == "" {
		errs.Add(errMissingContractName)
	}
	if config.TxID == "" {
		errs.Add(errMissingTxID)
	}
	if errs.Errored() {
		return Config{}, errs.Err
	}

	config.Registry, err = getRegistry(v)
	return config, err
}

func getHTTPConfig(v *viper.Viper) (HTTPConfig, error) {
	port := v.GetUint(HTTPPortKey)
	if port > math.MaxUint16 {
		return HTTPConfig{}, fmt.Errorf("%w: %d", errInvalidPort, port)
	}
	return HTTPConfig{
		Host:            v.GetString(HTTPHostKey),
		Port:            uint16(port),
		AllowedOrigins:  v.GetStringSlice(HTTPAllowedOriginsKey),
		ShutdownTimeout: v.GetDuration(HTTPShutdownTimeoutKey),
	}, nil
}

func getLoggingConfig(v *viper.Viper) (logging.Config, error) {
	loggingConfig := logging.Config{
		RotatingWriterConfig: logging.RotatingWriterConfig{
			MaxSize:   v.GetInt(LogMaxSizeKey),
			MaxFiles:  v.GetInt(LogMaxFilesKey),
			MaxAge:    v.GetInt(LogMaxAgeKey),
			Directory: os.ExpandEnv(v.GetString(LogDirKey)),
			Compress:  v.GetBool(LogCompressKey),
		},
	}

	var err error
	loggingConfig.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return loggingConfig, err
	}

	displayLevel := v.GetString(LogDisplayLevelKey)
	if displayLevel == "" {
		loggingConfig.DisplayLevel = loggingConfig.LogLevel
	} else {
		loggingConfig.DisplayLevel, err = logging.ToLevel(displayLevel)
		if err != nil {
			return loggingConfig, err
		}
	}

	loggingConfig.LogFormat, err = logging.ToFormat(v.GetString(LogFormatKey))
	return loggingConfig, err
}

func getRegistry(v *viper.Viper) (*exchange.Registry, error) {
	records := exchange.DefaultEras()
	if erasFile := v.GetString(ErasFileKey); erasFile != "" {
		var err error
		records, err = exchange.LoadErasFile(os.ExpandEnv(erasFile))
		if err != nil {
			return nil, fmt.Errorf("couldn't load eras file %q: %w", erasFile, err)
		}
	}

	registry, err := exchange.NewRegistry(records, exchange.BarterEra, v.GetUint64(CurrentEraKey))
	if err != nil {
		return nil, fmt.Errorf("invalid era dataset: %w", err)
	}
	return registry, nil
}
