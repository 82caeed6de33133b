// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package database

import "errors"

// WithDefault returns the value at [key] in [db]. If the key doesn't exist, it
// returns [def].
func WithDefault[V any](
	get func(KeyValueReader, []byte) (V, error),
	db KeyValueReader,
	key []byte,
	def V,
) (V, error) {
	v, err := get(db, key)
	if errors.Is(err, ErrNotFound) {
		return def, nil
	}
	return v, err
}

// Clear removes every key from [db].
func Clear(db Database) error {
	return ClearPrefix(db, nil)
}

// ClearPrefix removes all keys in [db] with the provided prefix.
func ClearPrefix(db Database, prefix []byte) error {
	iterator := db.NewIteratorWithPrefix(prefix)
	defer iterator.Release()

	keys := [][]byte{}
	for iterator.Next() {
		keys = append(keys, iterator.Key())
	}
	if err := iterator.Error(); err != nil {
		return err
	}

	for _, key := range keys {
		if err := db.Delete(key); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of keys in [db].
func Count(db Iteratee) (int, error) {
	iterator := db.NewIterator()
	defer iterator.Release()

	count := 0
	for iterator.Next() {
		count++
	}
	return count, iterator.Error()
}
