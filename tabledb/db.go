package tabledb

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"columncalc/config"
	"columncalc/core"
	"columncalc/storage"
	"columncalc/typeoption"
)

var ErrFieldNotFound = errors.New("field not found")

// DB is a single table: field definitions, rows, and footer calculations
// over its columns. Calculation results are never stored.
type DB struct {
	backend storage.Backend
	cache   *typeoption.CellDataCache
	service *core.CalculationsService
	logger  *zap.Logger
	mu      sync.Mutex
}

// Open builds the backend and cell cache described by cfg.
func Open(cfg *config.Config, logger *zap.Logger) (*DB, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	backend, err := storage.NewBadgerBackend(&storage.BadgerBackendConfig{
		Path:     cfg.DataDir,
		InMemory: cfg.InMemory,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}

	var cache *typeoption.CellDataCache
	if cfg.CacheEnabled {
		cache, err = typeoption.NewCellDataCache(cfg.CacheConfig())
		if err != nil {
			return nil, multierr.Append(err, backend.Close())
		}
	}
	return New(backend, cache, logger), nil
}

// New wraps an existing backend. cache may be nil.
func New(backend storage.Backend, cache *typeoption.CellDataCache, logger *zap.Logger) *DB {
	if logger == nil {
		logger = zap.NewNop()
	}
	var opts []typeoption.Option
	if cache != nil {
		opts = append(opts, typeoption.WithCellDataCache(cache))
	}
	return &DB{
		backend: backend,
		cache:   cache,
		service: core.NewCalculationsService(typeoption.NewResolver(opts...)),
		logger:  logger,
	}
}

func (db *DB) Close() error {
	if db.cache != nil {
		db.cache.Close()
	}
	return db.backend.Close()
}

func (db *DB) CreateField(name string, fieldType core.FieldType) (*core.Field, error) {
	field := core.NewField(uuid.NewString(), name, fieldType)
	buf, err := FieldToBytes(field)
	if err != nil {
		return nil, err
	}
	if err := db.backend.PutField(field.ID, buf); err != nil {
		return nil, err
	}
	db.logger.Debug("field created",
		zap.String("field_id", field.ID),
		zap.String("name", name),
		zap.Stringer("type", fieldType))
	return field, nil
}

func (db *DB) GetField(id string) (*core.Field, error) {
	buf, err := db.backend.GetField(id)
	if errors.Cause(err) == storage.ErrNotFound {
		return nil, errors.Wrapf(ErrFieldNotFound, "id %s", id)
	}
	if err != nil {
		return nil, err
	}
	return BytesToField(buf)
}

// DeleteField removes the field definition. Cells already stored for it
// are left in their rows.
func (db *DB) DeleteField(id string) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.backend.DeleteField(id)
}

// FindField looks a field up by id, then by name.
func (db *DB) FindField(idOrName string) (*core.Field, error) {
	field, err := db.GetField(idOrName)
	if err == nil {
		return field, nil
	}
	if errors.Cause(err) != ErrFieldNotFound {
		return nil, err
	}
	fields, err := db.Fields()
	if err != nil {
		return nil, err
	}
	for _, field := range fields {
		if field.Name == idOrName {
			return field, nil
		}
	}
	return nil, errors.Wrapf(ErrFieldNotFound, "name %s", idOrName)
}

// Fields returns every field sorted by name.
func (db *DB) Fields() ([]*core.Field, error) {
	fields := make([]*core.Field, 0)
	err := db.backend.IterateFields(func(id string, buf []byte) error {
		field, err := BytesToField(buf)
		if err != nil {
			return errors.Wrapf(err, "field %s", id)
		}
		fields = append(fields, field)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Name < fields[j].Name
	})
	return fields, nil
}

// InsertRow stores a row from raw cell strings keyed by field id. Each cell
// is tagged with its field's type.
func (db *DB) InsertRow(values map[string]string) (string, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	row := &Row{
		ID:    uuid.NewString(),
		Cells: make(map[string]core.Cell, len(values)),
	}
	for fieldID, data := range values {
		field, err := db.GetField(fieldID)
		if err != nil {
			return "", err
		}
		row.Cells[fieldID] = core.NewCell(field.Type, data)
	}
	buf, err := RowToBytes(row)
	if err != nil {
		return "", err
	}
	if err := db.backend.PutRow(row.ID, buf); err != nil {
		return "", err
	}
	return row.ID, nil
}

func (db *DB) GetRow(id string) (*Row, error) {
	buf, err := db.backend.GetRow(id)
	if err != nil {
		return nil, err
	}
	return BytesToRow(buf)
}

func (db *DB) DeleteRow(id string) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.backend.DeleteRow(id)
}

// RowCells returns the column for fieldID, one RowCell per row. Rows with
// no value for the field carry a nil Cell.
func (db *DB) RowCells(fieldID string) ([]*core.RowCell, error) {
	cells := make([]*core.RowCell, 0)
	err := db.backend.IterateRows(func(id string, buf []byte) error {
		row, err := BytesToRow(buf)
		if err != nil {
			return errors.Wrapf(err, "row %s", id)
		}
		cells = append(cells, core.NewRowCell(row.ID, row.Cells[fieldID]))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cells, nil
}

// Calculate computes the footer value for a field. Errors come only from
// loading the field and its cells.
func (db *DB) Calculate(fieldID string, code int64) (string, error) {
	field, err := db.GetField(fieldID)
	if err != nil {
		return "", err
	}
	cells, err := db.RowCells(fieldID)
	if err != nil {
		return "", err
	}
	result := db.service.Calculate(field, code, cells)
	db.logger.Debug("calculated",
		zap.String("field_id", fieldID),
		zap.Stringer("calculation", core.CalculationTypeFromCode(code)),
		zap.Int("rows", len(cells)),
		zap.String("result", result))
	return result, nil
}
