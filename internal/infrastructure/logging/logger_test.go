package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Printf(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf)
	l.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }

	l.Printf("enrichment for %s failed\n", "alice")

	assert.Equal(t, "[2024-05-01T12:00:00Z] enrichment for alice failed\n", buf.String())
}

func TestLogger_NilIsSafe(t *testing.T) {
	var l *Logger

	assert.NotPanics(t, func() {
		l.Printf("ignored %d", 1)
	})
	assert.NoError(t, l.Close())
}

func TestNew_EmptyPathDiscards(t *testing.T) {
	l, err := New("")
	require.NoError(t, err)
	assert.Nil(t, l)
}

func TestNew_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "nearby.log")

	l, err := New(path)
	require.NoError(t, err)
	l.Printf("first")
	l.Printf("second")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "] first\n")
	assert.Contains(t, string(data), "] second\n")
}

func TestLogger_ConcurrentWritesKeepLinesWhole(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			l.Printf("line %d", n)
		}(i)
	}
	wg.Wait()

	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	assert.Len(t, lines, 20)
}
