package storage

import (
	"sort"
	"sync"

	"github.com/pkg/errors"
)

const (
	FieldPrefix byte = 'f'
	RowPrefix   byte = 'r'
)

var ErrNotFound = errors.New("not found")

// GetKey lays keys out as <1 byte kind prefix><id>.
func GetKey(prefix byte, id string) []byte {
	buf := make([]byte, 1+len(id))
	buf[0] = prefix
	copy(buf[1:], id)
	return buf
}

func GetIDFromKey(buf []byte) string {
	return string(buf[1:])
}

func GetPrefixFromKey(buf []byte) byte {
	return buf[0]
}

// Backend stores the encoded field definitions and rows of one table.
type Backend interface {
	PutField(string, []byte) error
	GetField(string) ([]byte, error)
	DeleteField(string) error
	IterateFields(func(string, []byte) error) error

	PutRow(string, []byte) error
	GetRow(string) ([]byte, error)
	DeleteRow(string) error
	IterateRows(func(string, []byte) error) error

	Close() error
}

type InMemoryBackend struct {
	fieldMap      map[string][]byte
	rowMap        map[string][]byte
	fieldMapMutex sync.RWMutex
	rowMapMutex   sync.RWMutex
}

func NewInMemoryBackend() *InMemoryBackend {
	return &InMemoryBackend{
		fieldMap: make(map[string][]byte),
		rowMap:   make(map[string][]byte),
	}
}

func (backend *InMemoryBackend) PutField(id string, buf []byte) error {
	backend.fieldMapMutex.Lock()
	defer backend.fieldMapMutex.Unlock()
	backend.fieldMap[string(GetKey(FieldPrefix, id))] = buf
	return nil
}

func (backend *InMemoryBackend) GetField(id string) ([]byte, error) {
	backend.fieldMapMutex.RLock()
	defer backend.fieldMapMutex.RUnlock()
	buf, ok := backend.fieldMap[string(GetKey(FieldPrefix, id))]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "field %s", id)
	}
	return buf, nil
}

func (backend *InMemoryBackend) DeleteField(id string) error {
	backend.fieldMapMutex.Lock()
	defer backend.fieldMapMutex.Unlock()
	delete(backend.fieldMap, string(GetKey(FieldPrefix, id)))
	return nil
}

func (backend *InMemoryBackend) IterateFields(lambda func(string, []byte) error) error {
	backend.fieldMapMutex.RLock()
	defer backend.fieldMapMutex.RUnlock()
	return iterateSorted(backend.fieldMap, lambda)
}

func (backend *InMemoryBackend) PutRow(id string, buf []byte) error {
	backend.rowMapMutex.Lock()
	defer backend.rowMapMutex.Unlock()
	backend.rowMap[string(GetKey(RowPrefix, id))] = buf
	return nil
}

func (backend *InMemoryBackend) GetRow(id string) ([]byte, error) {
	backend.rowMapMutex.RLock()
	defer backend.rowMapMutex.RUnlock()
	buf, ok := backend.rowMap[string(GetKey(RowPrefix, id))]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "row %s", id)
	}
	return buf, nil
}

func (backend *InMemoryBackend) DeleteRow(id string) error {
	backend.rowMapMutex.Lock()
	defer backend.rowMapMutex.Unlock()
	delete(backend.rowMap, string(GetKey(RowPrefix, id)))
	return nil
}

func (backend *InMemoryBackend) IterateRows(lambda func(string, []byte) error) error {
	backend.rowMapMutex.RLock()
	defer backend.rowMapMutex.RUnlock()
	return iterateSorted(backend.rowMap, lambda)
}

func (backend *InMemoryBackend) Close() error {
	backend.fieldMapMutex.Lock()
	backend.rowMapMutex.Lock()
	defer backend.fieldMapMutex.Unlock()
	defer backend.rowMapMutex.Unlock()
	backend.fieldMap = nil
	backend.rowMap = nil
	return nil
}

// iterateSorted visits keys in byte order, the same order badger
// iterates in.
func iterateSorted(m map[string][]byte, lambda func(string, []byte) error) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := lambda(k[1:], m[k]); err != nil {
			return err
		}
	}
	return nil
}
