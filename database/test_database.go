// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Tests is a list of all database tests
var Tests = map[string]func(t *testing.T, db Database){
	"SimpleKeyValue":       TestSimpleKeyValue,
	"OverwriteKeyValue":    TestOverwriteKeyValue,
	"KeyEmptyValue":        TestKeyEmptyValue,
	"SimpleKeyValueClosed": TestSimpleKeyValueClosed,
	"MemorySafety":         TestMemorySafety,
	"IteratorPrefix":       TestIteratorPrefix,
	"IteratorClosed":       TestIteratorClosed,
	"WithDefault":          TestWithDefault,
	"Clear":                TestClear,
}

// TestSimpleKeyValue tests to make sure that simple Put + Get + Delete + Has
// calls return the expected values.
func TestSimpleKeyValue(t *testing.T, db Database) {
	require := require.New(t)

	key := []byte("hello")
	value := []byte("world")

	has, err := db.Has(key)
	require.NoError(err)
	require.False(has)

	_, err = db.Get(key)
	require.ErrorIs(err, ErrNotFound)

	require.NoError(db.Delete(key))
	require.NoError(db.Put(key, value))

	has, err = db.Has(key)
	require.NoError(err)
	require.True(has)

	v, err := db.Get(key)
	require.NoError(err)
	require.Equal(value, v)

	require.NoError(db.Delete(key))

	has, err = db.Has(key)
	require.NoError(err)
	require.False(has)

	_, err = db.Get(key)
	require.ErrorIs(err, ErrNotFound)
}

func TestOverwriteKeyValue(t *testing.T, db Database) {
	require := require.New(t)

	key := []byte("perform-exchange")

	require.NoError(db.Put(key, []byte("(ok true)")))
	require.NoError(db.Put(key, []byte("(ok false)")))

	v, err := db.Get(key)
	require.NoError(err)
	require.Equal([]byte("(ok false)"), v)
}

func TestKeyEmptyValue(t *testing.T, db Database) {
	require := require.New(t)

	key := []byte("hello")
	val := []byte(nil)

	_, err := db.Get(key)
	require.ErrorIs(err, ErrNotFound)

	require.NoError(db.Put(key, val))

	value, err := db.Get(key)
	require.NoError(err)
	require.Empty(value)
}

// TestSimpleKeyValueClosed tests to make sure that Put + Get + Delete + Has
// calls return the correct error when the database has been closed.
func TestSimpleKeyValueClosed(t *testing.T, db Database) {
	require := require.New(t)

	key := []byte("hello")
	value := []byte("world")

	require.NoError(db.Put(key, value))
	require.NoError(db.Close())

	_, err := db.Has(key)
	require.ErrorIs(err, ErrClosed)

	_, err = db.Get(key)
	require.ErrorIs(err, ErrClosed)

	require.ErrorIs(db.Put(key, value), ErrClosed)
	require.ErrorIs(db.Delete(key), ErrClosed)
	require.ErrorIs(db.Close(), ErrClosed)
}

// TestMemorySafety checks that mutating the slices passed to or returned from
// the database does not change the stored value.
func TestMemorySafety(t *testing.T, db Database) {
	require := require.New(t)

	key := []byte("1key")
	value := []byte("1value")
	require.NoError(db.Put(key, value))

	key[0] = '2'
	value[0] = '2'

	got, err := db.Get([]byte("1key"))
	require.NoError(err)
	require.Equal([]byte("1value"), got)

	got[0] = '3'
	got, err = db.Get([]byte("1key"))
	require.NoError(err)
	require.Equal([]byte("1value"), got)
}

func TestIteratorPrefix(t *testing.T, db Database) {
	require := require.New(t)

	require.NoError(db.Put([]byte("result/b"), []byte("2")))
	require.NoError(db.Put([]byte("result/a"), []byte("1")))
	require.NoError(db.Put([]byte("other"), []byte("3")))

	iterator := db.NewIteratorWithPrefix([]byte("result/"))
	defer iterator.Release()

	require.True(iterator.Next())
	require.Equal([]byte("result/a"), iterator.Key())
	require.Equal([]byte("1"), iterator.Value())

	require.True(iterator.Next())
	require.Equal([]byte("result/b"), iterator.Key())
	require.Equal([]byte("2"), iterator.Value())

	require.False(iterator.Next())
	require.Nil(iterator.Key())
	require.Nil(iterator.Value())
	require.NoError(iterator.Error())
}

func TestIteratorClosed(t *testing.T, db Database) {
	require := require.New(t)

	require.NoError(db.Put([]byte("key"), []byte("value")))

	iterator := db.NewIterator()
	require.NoError(db.Close())

	require.False(iterator.Next())
	require.ErrorIs(iterator.Error(), ErrClosed)
	iterator.Release()

	iterator = db.NewIterator()
	require.False(iterator.Next())
	require.ErrorIs(iterator.Error(), ErrClosed)
	iterator.Release()
}

func TestWithDefault(t *testing.T, db Database) {
	require := require.New(t)

	getString := func(db KeyValueReader, key []byte) (string, error) {
		b, err := db.Get(key)
		return string(b), err
	}

	v, err := WithDefault(getString, db, []byte("missing"), "(ok true)")
	require.NoError(err)
	require.Equal("(ok true)", v)

	require.NoError(db.Put([]byte("present"), []byte("(ok false)")))
	v, err = WithDefault(getString, db, []byte("present"), "(ok true)")
	require.NoError(err)
	require.Equal("(ok false)", v)
}

func TestClear(t *testing.T, db Database) {
	require := require.New(t)

	require.NoError(db.Put([]byte("a"), []byte("1")))
	require.NoError(db.Put([]byte("b"), []byte("2")))

	count, err := Count(db)
	require.NoError(err)
	require.Equal(2, count)

	require.NoError(Clear(db))

	count, err = Count(db)
	require.NoError(err)
	require.Zero(count)
}
