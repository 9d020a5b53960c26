package tabledb

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"columncalc/config"
	"columncalc/core"
	"columncalc/storage"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	cfg := config.Default()
	cfg.InMemory = true
	db, err := Open(cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDB_Fields(t *testing.T) {
	db := openTestDB(t)

	price, err := db.CreateField("price", core.Number)
	require.NoError(t, err)
	_, err = db.CreateField("name", core.RichText)
	require.NoError(t, err)

	got, err := db.GetField(price.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(price, got); diff != "" {
		t.Fatalf("field mismatch (-want +got):\n%s", diff)
	}

	byName, err := db.FindField("price")
	require.NoError(t, err)
	assert.Equal(t, price.ID, byName.ID)

	fields, err := db.Fields()
	require.NoError(t, err)
	require.Len(t, fields, 2)
	assert.Equal(t, "name", fields[0].Name)
	assert.Equal(t, "price", fields[1].Name)

	_, err = db.FindField("nope")
	assert.Equal(t, ErrFieldNotFound, errors.Cause(err))
}

func TestDB_Calculate(t *testing.T) {
	db := openTestDB(t)

	price, err := db.CreateField("price", core.Number)
	require.NoError(t, err)
	note, err := db.CreateField("note", core.RichText)
	require.NoError(t, err)

	for _, values := range []map[string]string{
		{price.ID: "3", note.ID: "a"},
		{price.ID: "$1"},
		{note.ID: "no price"},
		{price.ID: "2"},
		{price.ID: "unknown"},
	} {
		_, err := db.InsertRow(values)
		require.NoError(t, err)
	}

	cells, err := db.RowCells(price.ID)
	require.NoError(t, err)
	assert.Len(t, cells, 5)

	want := map[core.CalculationType]string{
		core.Average: "2.00000",
		core.Sum:     "6.00000",
		core.Min:     "1.00000",
		core.Max:     "3.00000",
		core.Median:  "2.00000",
	}
	for calcType, result := range want {
		got, err := db.Calculate(price.ID, int64(calcType))
		require.NoError(t, err)
		assert.Equal(t, result, got, calcType.String())
	}

	avg, err := db.Calculate(note.ID, int64(core.Average))
	require.NoError(t, err)
	assert.Equal(t, "0", avg)
	sum, err := db.Calculate(note.ID, int64(core.Sum))
	require.NoError(t, err)
	assert.Equal(t, "", sum)
}

func TestDB_DeleteRow(t *testing.T) {
	db := New(storage.NewInMemoryBackend(), nil, nil)

	score, err := db.CreateField("score", core.Number)
	require.NoError(t, err)
	keep, err := db.InsertRow(map[string]string{score.ID: "10"})
	require.NoError(t, err)
	drop, err := db.InsertRow(map[string]string{score.ID: "20"})
	require.NoError(t, err)

	require.NoError(t, db.DeleteRow(drop))

	result, err := db.Calculate(score.ID, int64(core.Sum))
	require.NoError(t, err)
	assert.Equal(t, "10.00000", result)

	row, err := db.GetRow(keep)
	require.NoError(t, err)
	data, ok := row.Cells[score.ID].Data()
	assert.True(t, ok)
	assert.Equal(t, "10", data)
}

func TestDB_InsertRowUnknownField(t *testing.T) {
	db := New(storage.NewInMemoryBackend(), nil, nil)

	_, err := db.InsertRow(map[string]string{"missing": "1"})
	assert.Equal(t, ErrFieldNotFound, errors.Cause(err))
}

func TestDB_CalculateUnknownField(t *testing.T) {
	db := New(storage.NewInMemoryBackend(), nil, nil)

	_, err := db.Calculate("missing", int64(core.Sum))
	assert.Equal(t, ErrFieldNotFound, errors.Cause(err))
}

func TestRowEncoding(t *testing.T) {
	row := &Row{
		ID: "r1",
		Cells: map[string]core.Cell{
			"f1": core.NewCell(core.Number, "12"),
		},
	}
	buf, err := RowToBytes(row)
	require.NoError(t, err)

	decoded, err := BytesToRow(buf)
	require.NoError(t, err)
	data, ok := decoded.Cells["f1"].Data()
	assert.True(t, ok)
	assert.Equal(t, "12", data)
	assert.Nil(t, decoded.Cells["f2"])
}
