package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCards_CreatesDirAndOverwrites(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "stats")
	w := New(dir)

	require.NoError(t, w.WriteCards([]byte("<svg>old-lang</svg>"), []byte("<svg>old-act</svg>")))
	require.NoError(t, w.WriteCards([]byte("<svg>lang</svg>"), []byte("<svg>act</svg>")))

	got, err := os.ReadFile(filepath.Join(dir, LanguagesFile))
	require.NoError(t, err)
	assert.Equal(t, "<svg>lang</svg>", string(got))

	got, err = os.ReadFile(filepath.Join(dir, ActivityFile))
	require.NoError(t, err)
	assert.Equal(t, "<svg>act</svg>", string(got))
}

func TestWriteCards_DirIsAFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	err := New(path).WriteCards([]byte("a"), []byte("b"))
	assert.Error(t, err)
}
