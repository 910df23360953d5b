package clipboard

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a posix shell")
	}

	text, err := read([][]string{
		{"wingman-missing-tool"},
		{"sh", "-c", "exit 1"},
		{"sh", "-c", "printf 'hello\\n'"},
	})

	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}

func TestReadUnavailable(t *testing.T) {
	_, err := read([][]string{{"wingman-missing-tool"}})

	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestWrite(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a posix shell")
	}

	path := filepath.Join(t.TempDir(), "clipboard.txt")

	err := write([][]string{
		{"wingman-missing-tool"},
		{"sh", "-c", "cat > \"$0\"", path},
	}, "copied reply")

	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "copied reply", string(data))
}

func TestWriteUnavailable(t *testing.T) {
	assert.ErrorIs(t, write(nil, "text"), ErrUnavailable)
}
