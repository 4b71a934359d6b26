package folder_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrimStopsAtTarget(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	write(t, filepath.Join(root, "a.bin"), 100)
	write(t, filepath.Join(root, "b.bin"), 200)
	write(t, filepath.Join(root, "c.bin"), 300)

	result := scan(t, root, "largest", 0)
	require.Equal(t, int64(600), result.TotalSize())

	deleted, errs := result.Trim(350)

	// Deleting the head entry (300 bytes) already brings the total to 300,
	// so nothing more goes.
	require.Empty(t, errs)
	require.Len(t, deleted, 1)
	assert.Equal(t, "c.bin", deleted[0].Name)

	assert.Equal(t, 2, result.Len())
	assert.Equal(t, int64(300), result.TotalSize())
	assert.NoFileExists(t, filepath.Join(root, "c.bin"))
	assert.FileExists(t, filepath.Join(root, "b.bin"))

	// Trimming again with the same target is a no-op
	deleted, errs = result.Trim(350)
	assert.Empty(t, deleted)
	assert.Empty(t, errs)
	assert.Equal(t, 2, result.Len())
}

func TestTrimTargetAboveTotal(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	write(t, filepath.Join(root, "a.bin"), 100)

	result := scan(t, root, "largest", 0)

	deleted, errs := result.Trim(10000)

	assert.Empty(t, deleted)
	assert.Empty(t, errs)
	assert.FileExists(t, filepath.Join(root, "a.bin"))
}

func TestTrimFollowsSortOrder(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	write(t, filepath.Join(root, "tiny.bin"), 10)
	write(t, filepath.Join(root, "mid.bin"), 20)
	write(t, filepath.Join(root, "huge.bin"), 30)

	result := scan(t, root, "smallest", 0)

	deleted, errs := result.Trim(0)

	require.Empty(t, errs)
	require.Len(t, deleted, 3)
	assert.Equal(t, "tiny.bin", deleted[0].Name)
	assert.Equal(t, "mid.bin", deleted[1].Name)
	assert.Equal(t, "huge.bin", deleted[2].Name)

	assert.Zero(t, result.Len())
	assert.Zero(t, result.TotalSize())
}

func TestTrimRemovesDirectoriesRecursively(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	write(t, filepath.Join(root, "big", "one.bin"), 100)
	write(t, filepath.Join(root, "big", "nested", "two.bin"), 200)
	write(t, filepath.Join(root, "small.bin"), 50)

	result := scan(t, root, "largest", 0)

	deleted, errs := result.Trim(100)

	require.Empty(t, errs)
	require.Len(t, deleted, 1)
	assert.Equal(t, "big", deleted[0].Name)

	assert.NoDirExists(t, filepath.Join(root, "big"))
	assert.FileExists(t, filepath.Join(root, "small.bin"))
	assert.Equal(t, int64(50), result.TotalSize())
}

func TestTrimSkipsUndeletableEntries(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced the same way on windows")
	}

	if os.Geteuid() == 0 {
		t.Skip("running as root")
	}

	root := t.TempDir()
	write(t, filepath.Join(root, "a.bin"), 100)
	write(t, filepath.Join(root, "b.bin"), 200)

	result := scan(t, root, "largest", 0)

	// A read-only root makes every unlink fail
	require.NoError(t, os.Chmod(root, 0o555))
	t.Cleanup(func() { _ = os.Chmod(root, 0o755) })

	deleted, errs := result.Trim(0)

	// Failed deletions are skipped and reported; membership and totals
	// stay as they were.
	assert.Empty(t, deleted)
	assert.Len(t, errs, 2)
	assert.Equal(t, 2, result.Len())
	assert.Equal(t, int64(300), result.TotalSize())
	assert.FileExists(t, filepath.Join(root, "a.bin"))
}
