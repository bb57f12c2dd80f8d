package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOSFileSystem_WriteFileReplacesInPlace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Lib.csproj")
	require.NoError(t, os.WriteFile(path, []byte("<Project ToolsVersion=\"15.0\" />"), 0644))

	osfs := NewOSFileSystem()
	require.NoError(t, osfs.WriteFile(path, []byte("<Project Sdk=\"Microsoft.NET.Sdk\" />"), 0644))

	data, err := osfs.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "<Project Sdk=\"Microsoft.NET.Sdk\" />", string(data))

	entries, err := osfs.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary file left behind")
}

func TestOSFileSystem_WriteFileNeedsParent(t *testing.T) {
	osfs := NewOSFileSystem()
	require.Error(t, osfs.WriteFile(filepath.Join(t.TempDir(), "missing", "x.csproj"), nil, 0644))
}
