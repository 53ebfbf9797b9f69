package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/octoscout/octoscout/internal/domain"
)

func TestWriteExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "contributors_2024-07-01.xlsx")
	require.NoError(t, WriteExcel([]*domain.ContributorRecord{sampleRecord(t)}, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, Header(), rows[0])
	assert.Equal(t, "alice", rows[1][0])
	assert.Equal(t, "12", rows[1][10])
	assert.Equal(t, "Fix bug | Report bug", rows[1][14])
}

func TestWriteExcel_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contributors.xlsx")
	require.NoError(t, WriteExcel(nil, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, Header(), rows[0])
}
