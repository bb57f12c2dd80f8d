package filesystem

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMockFileSystem_ReadWriteAndCounts(t *testing.T) {
	mfs := NewMockFileSystem()
	mfs.AddFile("/repo/src/A.csproj", []byte("<Project />"))

	require.True(t, mfs.IsDir("/repo/src"))
	require.True(t, mfs.IsDir("/repo"))

	data, err := mfs.ReadFile("/repo/src/A.csproj")
	require.NoError(t, err)
	require.Equal(t, "<Project />", string(data))
	require.Equal(t, 1, mfs.ReadCount("/repo/src/../src/A.csproj"))
	require.Equal(t, 1, mfs.TotalReads())

	_, err = mfs.ReadFile("/repo/missing")
	require.True(t, errors.Is(err, fs.ErrNotExist))

	err = mfs.WriteFile("/nowhere/x.txt", []byte("x"), 0644)
	require.True(t, errors.Is(err, fs.ErrNotExist))

	require.NoError(t, mfs.WriteFile("/repo/src/B.csproj", []byte("b"), 0644))
	require.Equal(t, []byte("b"), mfs.FileContent("/repo/src/B.csproj"))
	require.Nil(t, mfs.FileContent("/repo/src"))
}

func TestMockFileSystem_RemoveRefusesNonEmptyDir(t *testing.T) {
	mfs := NewMockFileSystem()
	mfs.AddFile("/repo/src/A.csproj", nil)

	require.Error(t, mfs.Remove("/repo/src"))
	require.NoError(t, mfs.Remove("/repo/src/A.csproj"))
	require.NoError(t, mfs.Remove("/repo/src"))
	require.False(t, mfs.Exists("/repo/src"))
}

func TestMockFileSystem_WalkDirSkipsSubtrees(t *testing.T) {
	mfs := NewMockFileSystem()
	mfs.AddFile("/repo/a/A.csproj", nil)
	mfs.AddFile("/repo/bin/Debug/Gen.csproj", nil)
	mfs.AddFile("/repo/z.sln", nil)

	var visited []string
	err := mfs.WalkDir("/repo", func(path string, d fs.DirEntry, err error) error {
		require.NoError(t, err)
		if d.IsDir() && d.Name() == "bin" {
			return filepath.SkipDir
		}
		visited = append(visited, path)
		return nil
	})

	require.NoError(t, err)
	require.Equal(t, []string{"/repo", "/repo/a", "/repo/a/A.csproj", "/repo/z.sln"}, visited)
}

func TestMockFileSystem_ReadDirSorted(t *testing.T) {
	mfs := NewMockFileSystem()
	mfs.AddFile("/repo/b.txt", nil)
	mfs.AddDir("/repo/a")

	entries, err := mfs.ReadDir("/repo")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "a", entries[0].Name())
	require.True(t, entries[0].IsDir())
	require.Equal(t, "b.txt", entries[1].Name())
}
