package storage

import (
	"github.com/dgraph-io/badger/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type BadgerBackendConfig struct {
	Path     string
	InMemory bool
	Logger   *zap.Logger
}

func TestBadgerBackendConfig() *BadgerBackendConfig {
	return &BadgerBackendConfig{InMemory: true}
}

type BadgerBackend struct {
	db *badger.DB
}

func NewBadgerBackend(config *BadgerBackendConfig) (*BadgerBackend, error) {
	var options badger.Options
	if config.InMemory {
		options = badger.DefaultOptions("").WithInMemory(true)
	} else {
		options = badger.DefaultOptions(config.Path)
	}
	options = options.WithLogger(NewBadgerLogger(config.Logger))

	db, err := badger.Open(options)
	if err != nil {
		return nil, errors.Wrapf(err, "open badger at %q", config.Path)
	}
	return &BadgerBackend{db: db}, nil
}

func (backend *BadgerBackend) Close() error {
	return backend.db.Close()
}

func (backend *BadgerBackend) txnGet(key []byte) ([]byte, error) {
	var buf []byte
	err := backend.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		buf, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return nil, ErrNotFound
	}
	return buf, err
}

func (backend *BadgerBackend) txnPut(key, buf []byte) error {
	return backend.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, buf)
	})
}

func (backend *BadgerBackend) txnDelete(key []byte) error {
	return backend.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(key)
	})
}

func (backend *BadgerBackend) iteratePrefix(prefix byte, lambda func(string, []byte) error) error {
	iterOpts := badger.DefaultIteratorOptions
	iterOpts.Prefix = []byte{prefix}
	return backend.db.View(func(txn *badger.Txn) error {
		iter := txn.NewIterator(iterOpts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			item := iter.Item()
			buf, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			if err := lambda(GetIDFromKey(item.Key()), buf); err != nil {
				return err
			}
		}
		return nil
	})
}

func (backend *BadgerBackend) PutField(id string, buf []byte) error {
	return errors.Wrapf(backend.txnPut(GetKey(FieldPrefix, id), buf), "put field %s", id)
}

func (backend *BadgerBackend) GetField(id string) ([]byte, error) {
	buf, err := backend.txnGet(GetKey(FieldPrefix, id))
	return buf, errors.Wrapf(err, "field %s", id)
}

func (backend *BadgerBackend) DeleteField(id string) error {
	return errors.Wrapf(backend.txnDelete(GetKey(FieldPrefix, id)), "delete field %s", id)
}

func (backend *BadgerBackend) IterateFields(lambda func(string, []byte) error) error {
	return backend.iteratePrefix(FieldPrefix, lambda)
}

func (backend *BadgerBackend) PutRow(id string, buf []byte) error {
	return errors.Wrapf(backend.txnPut(GetKey(RowPrefix, id), buf), "put row %s", id)
}

func (backend *BadgerBackend) GetRow(id string) ([]byte, error) {
	buf, err := backend.txnGet(GetKey(RowPrefix, id))
	return buf, errors.Wrapf(err, "row %s", id)
}

func (backend *BadgerBackend) DeleteRow(id string) error {
	return errors.Wrapf(backend.txnDelete(GetKey(RowPrefix, id)), "delete row %s", id)
}

func (backend *BadgerBackend) IterateRows(lambda func(string, []byte) error) error {
	return backend.iteratePrefix(RowPrefix, lambda)
}
