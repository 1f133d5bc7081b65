package fs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProtectedDir(t *testing.T, n int) (string, []string) {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "VerifierOutput")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0755))

	var files []string
	for i := 0; i < n; i++ {
		sub := dir
		if i%2 == 1 {
			sub = filepath.Join(dir, "nested")
		}
		p := filepath.Join(sub, fmt.Sprintf("page%d.html", i))
		require.NoError(t, os.WriteFile(p, []byte("x"), 0444))
		files = append(files, p)
	}
	return dir, files
}

func modeOf(t *testing.T, path string) fs.FileMode {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	return info.Mode().Perm()
}

func assertAllReadOnly(t *testing.T, files []string) {
	t.Helper()
	for _, f := range files {
		assert.Equal(t, ReadOnlyMode, modeOf(t, f), f)
	}
}

func TestWithWritable_WritableDuringBodyAndRestoredAfter(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits")
	}
	dir, files := setupProtectedDir(t, 5)
	guard := NewPermissionGuard()

	err := guard.WithWritable(context.Background(), dir, func() error {
		for _, f := range files {
			assert.Equal(t, WritableMode, modeOf(t, f)&WritableMode, f)
			require.NoError(t, os.WriteFile(f, []byte("merged"), 0))
		}
		return nil
	})

	require.NoError(t, err)
	assertAllReadOnly(t, files)
}

func TestWithWritable_RestoresOnBodyError(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits")
	}
	dir, files := setupProtectedDir(t, 4)
	bodyErr := errors.New("merge failed")

	err := NewPermissionGuard().WithWritable(context.Background(), dir, func() error {
		return bodyErr
	})

	assert.ErrorIs(t, err, bodyErr)
	assertAllReadOnly(t, files)
}

func TestWithWritable_RestoresOnPanic(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits")
	}
	dir, files := setupProtectedDir(t, 3)

	assert.Panics(t, func() {
		_ = NewPermissionGuard().WithWritable(context.Background(), dir, func() error {
			panic("boom")
		})
	})
	assertAllReadOnly(t, files)
}

func TestWithWritable_FilesCreatedByBodyBecomeReadOnly(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits")
	}
	dir, files := setupProtectedDir(t, 1)
	created := filepath.Join(dir, "page-new.html")

	err := NewPermissionGuard().WithWritable(context.Background(), dir, func() error {
		return os.WriteFile(created, []byte("from remote"), 0644)
	})

	require.NoError(t, err)
	assertAllReadOnly(t, append(files, created))
}

func TestWithWritable_MissingDirRunsBody(t *testing.T) {
	ran := false
	err := NewPermissionGuard().WithWritable(context.Background(), filepath.Join(t.TempDir(), "absent"), func() error {
		ran = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, ran)
}

func TestWithWritable_EmptyDirRunsBody(t *testing.T) {
	ran := false
	err := NewPermissionGuard().WithWritable(context.Background(), "", func() error {
		ran = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, ran)
}
