package cli_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/dirt/internal/cli"
	"github.com/idelchi/dirt/internal/folder"
)

// scanFixture scans a small two-entry tree and returns the result.
func scanFixture(t *testing.T) *folder.Result {
	t.Helper()

	root := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(root, "file.bin"), make([]byte, 2048), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dir", "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "dir", "sub", "nested.bin"), make([]byte, 1024), 0o644))

	result, err := folder.Scan(context.Background(), folder.Options{Path: root, Sort: "largest"}, nil)
	require.NoError(t, err)

	return result
}

func TestPrintCSV(t *testing.T) {
	t.Parallel()

	result := scanFixture(t)

	var buf bytes.Buffer

	options := folder.Options{NoHuman: true}
	require.NoError(t, cli.PrintCSV(result, options, &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 3)
	assert.Equal(t, []string{"name", "size", "depth", "num_of_files", "atime", "mtime", "ctime"}, records[0])
	assert.Equal(t, "file.bin", records[1][0])
	assert.Equal(t, "2048", records[1][1])
	assert.Equal(t, "dir", records[2][0])
	assert.Equal(t, "1", records[2][2])
}

func TestPrintJSON(t *testing.T) {
	t.Parallel()

	result := scanFixture(t)

	var buf bytes.Buffer

	options := folder.Options{NoHuman: true}
	require.NoError(t, cli.PrintJSON(result, options, &buf))

	var report struct {
		Root       string         `json:"root"`
		SortBy     string         `json:"sort_by"`
		TotalSize  int64          `json:"total_size"`
		TotalItems int            `json:"total_items"`
		Entries    []folder.Entry `json:"entries"`
	}

	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))

	assert.Equal(t, result.Root(), report.Root)
	assert.Equal(t, "largest", report.SortBy)
	assert.Equal(t, int64(3072), report.TotalSize)
	assert.Equal(t, 2, report.TotalItems)
	require.Len(t, report.Entries, 2)
	assert.Equal(t, "file.bin", report.Entries[0].Name)
}

func TestPrintTable(t *testing.T) {
	t.Parallel()

	result := scanFixture(t)

	var buf bytes.Buffer

	options := folder.Options{Precision: 2}
	require.NoError(t, cli.PrintTable(result, options, &buf))

	output := buf.String()
	assert.Contains(t, output, "NAME")
	assert.Contains(t, output, "file.bin")
	assert.Contains(t, output, "2 Kb")
	assert.Contains(t, output, "Total size:")
	assert.Contains(t, output, "(3072 bytes)")
}

func TestPrintTrim(t *testing.T) {
	t.Parallel()

	result := scanFixture(t)

	deleted, errs := result.Trim(1024)
	require.Empty(t, errs)
	require.Len(t, deleted, 1)

	var buf bytes.Buffer

	options := folder.Options{Precision: 2}
	require.NoError(t, cli.PrintTrim(result, deleted, options, &buf))

	output := buf.String()
	assert.Contains(t, output, "file.bin")
	assert.Contains(t, output, "Deleted entries:")
	assert.Contains(t, output, "Freed:")
}
