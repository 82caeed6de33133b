// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package exchange

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var errNoEras = errors.New("no eras defined")

type erasFile struct {
	Eras []EraRecord `yaml:"eras"`
}

// LoadEras parses a YAML document of the form:
//
//	eras:
//	  - era: 1
//	    method: Barter
//	    description: Direct exchange of goods and services
//	    year-introduced: 9000
//	    is-current: false
func LoadEras(r io.Reader) ([]EraRecord, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var file erasFile
	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("couldn't decode eras: %w", err)
	}
	if len(file.Eras) == 0 {
		return nil, errNoEras
	}
	return file.Eras, nil
}

// LoadErasFile reads the era dataset stored at [path].
func LoadErasFile(path string) ([]EraRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadEras(f)
}
