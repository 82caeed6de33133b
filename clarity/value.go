// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package clarity models the typed function arguments accepted by a contract
// call and renders results in Clarity's textual notation.
package clarity

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const (
	UintType      Type = "uint"
	PrincipalType Type = "principal"
)

var (
	ErrWrongType        = errors.New("wrong argument type")
	ErrUnknownType      = errors.New("unknown argument type")
	ErrInvalidPrincipal = errors.New("invalid principal")
	ErrMissingValue     = errors.New("missing argument value")

	errUnknownNotation = errors.New("unknown argument notation")

	// Standard principals are a c32 encoded address, optionally followed by a
	// contract name for contract principals.
	nullValue = []byte("null")

	principalRegex = regexp.MustCompile(`^S[PMTN][0-9A-HJKMNP-TV-Z]{26,39}(\.[a-zA-Z][a-zA-Z0-9\-]{0,127})?$`)
)

// Type is the Clarity type tag of a function argument.
type Type string

// Arg is a typed function argument. Its JSON form is {"type":..., "value":...}.
type Arg struct {
	Type  Type            `json:"type"`
	Value json.RawMessage `json:"value"`
}

func UintArg(v uint64) Arg {
	return Arg{
		Type:  UintType,
		Value: json.RawMessage(strconv.FormatUint(v, 10)),
	}
}

func PrincipalArg(address string) Arg {
	value, _ := json.Marshal(address)
	return Arg{
		Type:  PrincipalType,
		Value: value,
	}
}

// Uint returns the value of a uint argument.
func (a Arg) Uint() (uint64, error) {
	if a.Type != UintType {
		return 0, fmt.Errorf("%w: expected %s but got %s", ErrWrongType, UintType, a.Type)
	}
	if err := a.verifyValue(); err != nil {
		return 0, err
	}
	var v uint64
	if err := json.Unmarshal(a.Value, &v); err != nil {
		return 0, fmt.Errorf("couldn't parse uint %s: %w", a.Value, err)
	}
	return v, nil
}

// Principal returns the address of a principal argument.
func (a Arg) Principal() (string, error) {
	if a.Type != PrincipalType {
		return "", fmt.Errorf("%w: expected %s but got %s", ErrWrongType, PrincipalType, a.Type)
	}
	if err := a.verifyValue(); err != nil {
		return "", err
	}
	var address string
	if err := json.Unmarshal(a.Value, &address); err != nil {
		return "", fmt.Errorf("couldn't parse principal %s: %w", a.Value, err)
	}
	if err := VerifyPrincipal(address); err != nil {
		return "", err
	}
	return address, nil
}

// verifyValue rejects absent values, which json would otherwise decode into
// the zero value.
func (a Arg) verifyValue() error {
	value := bytes.TrimSpace(a.Value)
	if len(value) == 0 || bytes.Equal(value, nullValue) {
		return fmt.Errorf("%w: %s", ErrMissingValue, a.Type)
	}
	return nil
}

// Verify checks that the argument's value is well formed for its type.
func (a Arg) Verify() error {
	switch a.Type {
	case UintType:
		_, err := a.Uint()
		return err
	case PrincipalType:
		_, err := a.Principal()
		return err
	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, a.Type)
	}
}

func (a Arg) String() string {
	switch a.Type {
	case UintType:
		return "u" + string(a.Value)
	case PrincipalType:
		if address, err := a.Principal(); err == nil {
			return "'" + address
		}
	}
	return fmt.Sprintf("<%s %s>", a.Type, a.Value)
}

// ParseArg parses an argument written in Clarity's notation, u5 for a uint or
// 'ST... for a principal.
func ParseArg(s string) (Arg, error) {
	switch {
	case strings.HasPrefix(s, "u"):
		v, err := strconv.ParseUint(s[1:], 10, 64)
		if err != nil {
			return Arg{}, fmt.Errorf("couldn't parse uint %q: %w", s, err)
		}
		return UintArg(v), nil
	case strings.HasPrefix(s, "'"):
		address := s[1:]
		if err := VerifyPrincipal(address); err != nil {
			return Arg{}, err
		}
		return PrincipalArg(address), nil
	default:
		return Arg{}, fmt.Errorf("%w: %q", errUnknownNotation, s)
	}
}

func VerifyPrincipal(address string) error {
	if !principalRegex.MatchString(address) {
		return fmt.Errorf("%w: %q", ErrInvalidPrincipal, address)
	}
	return nil
}

// VerifyArgs verifies every argument in [args].
func VerifyArgs(args []Arg) error {
	for i, arg := range args {
		if err := arg.Verify(); err != nil {
			return fmt.Errorf("argument %d: %w", i, err)
		}
	}
	return nil
}
