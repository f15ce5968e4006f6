package logging

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallRotatingFile rolls over every 16 bytes.
func smallRotatingFile(t *testing.T, cfg FileConfig) *rotatingFile {
	t.Helper()
	cfg.Dir = t.TempDir()
	r, err := openRotatingFile(cfg)
	require.NoError(t, err)
	r.maxSize = 16
	t.Cleanup(func() { _ = r.Close() })
	return r
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRotatingFile_NumbersBackupsNewestFirst(t *testing.T) {
	r := smallRotatingFile(t, FileConfig{MaxBackups: 2})

	for _, line := range []string{"first line 0001\n", "second line 002\n", "third line 0003\n", "fourth line 004\n"} {
		_, err := r.Write([]byte(line))
		require.NoError(t, err)
	}

	assert.Equal(t, "fourth line 004\n", readFile(t, r.path))
	assert.Equal(t, "third line 0003\n", readFile(t, r.backup(1)))
	assert.Equal(t, "second line 002\n", readFile(t, r.backup(2)))
	assert.NoFileExists(t, r.backup(3))
}

func TestRotatingFile_CompressesBackups(t *testing.T) {
	r := smallRotatingFile(t, FileConfig{MaxBackups: 1, Compress: true})

	_, err := r.Write([]byte("layout restored\n"))
	require.NoError(t, err)
	_, err = r.Write([]byte("pane split\n"))
	require.NoError(t, err)

	assert.NoFileExists(t, r.backup(1))
	f, err := os.Open(r.backup(1) + gzipExt)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	zr, err := gzip.NewReader(f)
	require.NoError(t, err)
	data, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, "layout restored\n", string(data))
}

func TestRotatingFile_NoBackupsTruncates(t *testing.T) {
	r := smallRotatingFile(t, FileConfig{})

	_, err := r.Write([]byte("0123456789abcdef"))
	require.NoError(t, err)
	_, err = r.Write([]byte("next\n"))
	require.NoError(t, err)

	assert.Equal(t, "next\n", readFile(t, r.path))
	entries, err := os.ReadDir(r.cfg.Dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRotatingFile_PrunesExpiredBackups(t *testing.T) {
	r := smallRotatingFile(t, FileConfig{MaxBackups: 3, MaxAgeDays: 7})
	now := time.Now()

	stale := r.backup(2)
	require.NoError(t, os.WriteFile(stale, []byte("old"), logFilePerm))
	old := now.AddDate(0, 0, -8)
	require.NoError(t, os.Chtimes(stale, old, old))
	fresh := r.backup(1)
	require.NoError(t, os.WriteFile(fresh, []byte("new"), logFilePerm))

	r.pruneExpired(now)

	assert.NoFileExists(t, stale)
	assert.FileExists(t, fresh)
}

func TestRotatingFile_AppendsToExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, LogFileName)
	require.NoError(t, os.WriteFile(path, []byte("previous run\n"), logFilePerm))

	r, err := openRotatingFile(FileConfig{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, int64(len("previous run\n")), r.size)
	assert.Equal(t, int64(defaultMaxSizeMB)<<20, r.maxSize)

	_, err = r.Write([]byte("this run\n"))
	require.NoError(t, err)
	require.NoError(t, r.Close())
	assert.Equal(t, "previous run\nthis run\n", readFile(t, path))
}
