package profiling

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaybeStartCPUProfile_EmptyPathIsNoOp(t *testing.T) {
	t.Parallel()

	stop, err := MaybeStartCPUProfile("")
	require.NoError(t, err)
	require.NotNil(t, stop)

	stop()
}

func TestMaybeStartCPUProfile_WritesProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cpu.prof")

	stop, err := MaybeStartCPUProfile(path)
	require.NoError(t, err)

	stop()

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestMaybeWriteHeapProfile_WritesProfile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "heap.prof")

	MaybeWriteHeapProfile(path, nil)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestMaybeWriteHeapProfile_EmptyPathIsNoOp(t *testing.T) {
	t.Parallel()

	MaybeWriteHeapProfile("", nil)
}
