package roster

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeRosterWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for r, row := range rows {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", cell, val))
		}
	}

	path := filepath.Join(t.TempDir(), "roster.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestImportWorkbook(t *testing.T) {
	path := writeRosterWorkbook(t, [][]any{
		{"Employee ID", "Name", "Room"},
		{"001", "Jane Doe", "101"},
		{"002", "John Smith", ""},
		{"", "No Identifier", "103"},
	})

	store := openTestStore(t)
	ctx := context.Background()

	count, err := store.ImportWorkbook(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	jane, err := store.Get(ctx, "001")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", jane.Name)
	assert.Equal(t, map[string]string{"Room": "101"}, jane.Attrs)

	john, err := store.Get(ctx, "002")
	require.NoError(t, err)
	assert.Equal(t, "John Smith", john.Name)
	assert.Nil(t, john.Attrs)

	// The identifier-less row was skipped.
	_, err = store.Get(ctx, "103")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestImportWorkbookHeaderOnly(t *testing.T) {
	path := writeRosterWorkbook(t, [][]any{
		{"Employee ID", "Name"},
	})

	store := openTestStore(t)
	count, err := store.ImportWorkbook(context.Background(), path)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestImportWorkbookNoIdentifierColumn(t *testing.T) {
	path := writeRosterWorkbook(t, [][]any{
		{"Name", "Room"},
		{"Jane Doe", "101"},
	})

	store := openTestStore(t)
	_, err := store.ImportWorkbook(context.Background(), path)
	require.Error(t, err)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "import", storeErr.Op)
}

func TestImportWorkbookMissingFile(t *testing.T) {
	store := openTestStore(t)
	_, err := store.ImportWorkbook(context.Background(), filepath.Join(t.TempDir(), "absent.xlsx"))
	require.Error(t, err)
}
