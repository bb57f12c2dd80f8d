package prompt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLabel(t *testing.T) {
	require.Equal(t, "src/A/A.csproj", Label("/repo", "/repo/src/A/A.csproj"))
	require.Equal(t, "/elsewhere/B.csproj", Label("/repo", "/elsewhere/B.csproj"))
}

func TestOptions_PreselectsEveryFile(t *testing.T) {
	opts := Options("/repo", []string{"/repo/A.csproj", "/repo/lib/B.vbproj"})

	require.Len(t, opts, 2)
	require.Equal(t, "A.csproj", opts[0].Key)
	require.Equal(t, "/repo/A.csproj", opts[0].Value)
	require.Equal(t, "lib/B.vbproj", opts[1].Key)
}

func TestRenderSelection(t *testing.T) {
	out := RenderSelection("/repo", []string{"/repo/A.csproj", "/repo/lib/B.vbproj"})

	require.Contains(t, out, "Converting 2 project(s):")
	require.Contains(t, out, "  1. A.csproj\n")
	require.Contains(t, out, "  2. lib/B.vbproj\n")
}
