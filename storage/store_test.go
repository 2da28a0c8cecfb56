// SPDX-License-Identifier: MIT

package storage_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/schoolnet/storage"
)

func readAll(t *testing.T, st storage.Store, key string) string {
	t.Helper()
	rc, err := st.Get(context.Background(), key)
	require.NoError(t, err)
	defer rc.Close()
	b, err := io.ReadAll(rc)
	require.NoError(t, err)
	return string(b)
}

// exerciseStore runs the behaviour every backend shares.
func exerciseStore(t *testing.T, st storage.Store) {
	t.Helper()
	ctx := context.Background()

	_, err := st.Get(ctx, "missing.txt")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, st.Put(ctx, "nets/a.txt", strings.NewReader("ville(A)\n")))
	assert.Equal(t, "ville(A)\n", readAll(t, st, "nets/a.txt"))

	require.NoError(t, st.Put(ctx, "nets/a.txt", strings.NewReader("ville(B)\n")), "put overwrites")
	assert.Equal(t, "ville(B)\n", readAll(t, st, "nets/a.txt"))
}

func TestFS(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	st := storage.NewFS(root)
	assert.Equal(t, storage.DriverFilesystem, st.Driver())
	assert.Equal(t, root, st.Root())

	exerciseStore(t, st)

	b, err := os.ReadFile(filepath.Join(root, "nets", "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "ville(B)\n", string(b))

	entries, err := os.ReadDir(filepath.Join(root, "nets"))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temporary files left behind")
}

func TestFS_InvalidKeys(t *testing.T) {
	t.Parallel()

	st := storage.NewFS(t.TempDir())
	ctx := context.Background()
	for _, key := range []string{"", "  ", "/etc/passwd", "../up.txt", "a/../../up.txt"} {
		err := st.Put(ctx, key, strings.NewReader("x"))
		assert.ErrorIs(t, err, storage.ErrInvalidKey, "%q", key)
		_, err = st.Get(ctx, key)
		assert.ErrorIs(t, err, storage.ErrInvalidKey, "%q", key)
	}
}

func TestMemory(t *testing.T) {
	t.Parallel()

	st := storage.NewMemory()
	assert.Equal(t, storage.DriverMemory, st.Driver())
	exerciseStore(t, st)
	assert.Equal(t, []string{"nets/a.txt"}, st.Keys())

	assert.ErrorIs(t, st.Put(context.Background(), "", strings.NewReader("")), storage.ErrInvalidKey)
}

func TestOpen_File(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "net.txt")
	require.NoError(t, os.WriteFile(path, []byte("ville(Z)\n"), 0o600))

	st, key, err := storage.Open(context.Background(), path, storage.S3Config{})
	require.NoError(t, err)
	assert.Equal(t, storage.DriverFilesystem, st.Driver())
	assert.Equal(t, "net.txt", key)
	assert.Equal(t, "ville(Z)\n", readAll(t, st, key))

	_, _, err = storage.Open(context.Background(), "", storage.S3Config{})
	assert.ErrorIs(t, err, storage.ErrInvalidKey)
}

func TestOpen_S3(t *testing.T) {
	t.Parallel()

	cfg := storage.S3Config{AccessKeyID: "AKIA", SecretAccessKey: "SECRET", Region: "eu-west-1"}
	st, key, err := storage.Open(context.Background(), "s3://towns/nets/north.txt", cfg)
	require.NoError(t, err)
	assert.Equal(t, storage.DriverS3, st.Driver())
	assert.Equal(t, "nets/north.txt", key)

	s3st, ok := st.(*storage.S3)
	require.True(t, ok)
	assert.Equal(t, "towns", s3st.Bucket())

	for _, bad := range []string{"s3://", "s3://bucket", "s3://bucket/"} {
		_, _, err = storage.Open(context.Background(), bad, cfg)
		assert.ErrorIs(t, err, storage.ErrInvalidKey, bad)
	}
}
