// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package exchange

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

var (
	ErrUnknownEra        = errors.New("unknown era")
	ErrZeroEra           = errors.New("era must be positive")
	ErrDuplicateEra      = errors.New("duplicate era")
	ErrMissingDefaultEra = errors.New("default era not in dataset")
	ErrInconsistentEra   = errors.New("is-current flag disagrees with the era threshold")
)

// Registry is an immutable index of era records.
//
// Whether an era is current is decided by a single rule, era >= threshold.
// The per-record IsCurrent flag is required to agree with that rule when the
// registry is built, so the two can never diverge.
type Registry struct {
	records    map[uint64]EraRecord
	defaultEra uint64
	threshold  uint64
}

// NewRegistry indexes [records]. Lookups that miss fall back to [defaultEra]
// when using GetOrDefault.
func NewRegistry(records []EraRecord, defaultEra, threshold uint64) (*Registry, error) {
	r := &Registry{
		records:    make(map[uint64]EraRecord, len(records)),
		defaultEra: defaultEra,
		threshold:  threshold,
	}
	for _, record := range records {
		if record.Era == 0 {
			return nil, fmt.Errorf("%w: %s", ErrZeroEra, record)
		}
		if _, ok := r.records[record.Era]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateEra, record.Era)
		}
		if expected := record.Era >= threshold; record.IsCurrent != expected {
			return nil, fmt.Errorf("%w: %s has is-current=%t but threshold %d implies %t",
				ErrInconsistentEra,
				record,
				record.IsCurrent,
				threshold,
				expected,
			)
		}
		r.records[record.Era] = record
	}
	if _, ok := r.records[defaultEra]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrMissingDefaultEra, defaultEra)
	}
	return r, nil
}

// NewDefaultRegistry returns the registry over DefaultEras that falls back to
// the Barter era.
func NewDefaultRegistry() *Registry {
	r, err := NewRegistry(DefaultEras(), BarterEra, CurrentEraThreshold)
	if err != nil {
		panic(err)
	}
	return r
}

// Get returns the record of [era] or ErrUnknownEra.
func (r *Registry) Get(era uint64) (EraRecord, error) {
	record, ok := r.records[era]
	if !ok {
		return EraRecord{}, fmt.Errorf("%w: %d", ErrUnknownEra, era)
	}
	return record, nil
}

// GetOrDefault returns the record of [era]. If [era] is unknown the default
// era's record is returned instead and the second return value is true.
func (r *Registry) GetOrDefault(era uint64) (EraRecord, bool) {
	if record, ok := r.records[era]; ok {
		return record, false
	}
	return r.records[r.defaultEra], true
}

// IsCurrent reports whether [era] is at or above the threshold. It holds for
// eras that aren't in the dataset as well.
func (r *Registry) IsCurrent(era uint64) bool {
	return era >= r.threshold
}

func (r *Registry) DefaultEra() uint64 {
	return r.defaultEra
}

func (r *Registry) Threshold() uint64 {
	return r.threshold
}

// Eras returns every record sorted by era.
func (r *Registry) Eras() []EraRecord {
	eras := maps.Keys(r.records)
	slices.Sort(eras)

	records := make([]EraRecord, len(eras))
	for i, era := range eras {
		records[i] = r.records[era]
	}
	return records
}
