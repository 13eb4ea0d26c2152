package source

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pickwise/internal/domain"
	"pickwise/internal/eventbus"
	"pickwise/internal/logic"
)

func texts(entries []*domain.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Text)
	}
	return out
}

func TestLoadReaderSkipsBlankLines(t *testing.T) {
	store := logic.NewEntryStore(domain.ValueKeyText)
	bus := eventbus.NewSync()
	var loaded []eventbus.EntriesLoadedEvent
	bus.Subscribe(eventbus.EventEntriesLoaded, func(e eventbus.DomainEvent) {
		loaded = append(loaded, e.(eventbus.EntriesLoadedEvent))
	})

	n, err := NewLoader(bus, store).LoadReader(context.Background(),
		strings.NewReader("alpha\r\n\n  \nbeta\ngamma"), "test")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, texts(store.All()))
	require.Len(t, loaded, 1)
	assert.Equal(t, eventbus.EntriesLoadedEvent{Source: "test", Count: 3}, loaded[0])
}

func TestLoadReaderHonoursContext(t *testing.T) {
	store := logic.NewEntryStore(domain.ValueKeyText)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader(nil, store).LoadReader(ctx, strings.NewReader("a\nb\n"), "test")
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, store.Len())
}

func TestLoadFileMissing(t *testing.T) {
	store := logic.NewEntryStore(domain.ValueKeyText)
	_, err := NewLoader(nil, store).LoadFile(context.Background(), filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestLoadDir(t *testing.T) {
	root := t.TempDir()
	for _, p := range []string{
		"README.md",
		"cmd/main.go",
		"internal/a/b/deep.go",
		".hidden/secret",
		"node_modules/x/index.js",
		".env",
	} {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, []byte("x"), 0644))
	}

	store := logic.NewEntryStore(domain.ValueKeyText)
	loader := NewLoader(nil, store)
	loader.MaxDepth = 2

	n, err := loader.LoadDir(context.Background(), root)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	if diff := cmp.Diff([]string{"README.md", "cmd/main.go"}, texts(store.All())); diff != "" {
		t.Errorf("entries mismatch (-want +got):\n%s", diff)
	}
}
