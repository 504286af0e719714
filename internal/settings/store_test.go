package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/genricoloni/resswitch/internal/domain"
	"github.com/genricoloni/resswitch/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// stubConfig is a minimal domain.Config pointing at a test file
type stubConfig struct {
	path string
}

func (c stubConfig) GetSettingsPath() string          { return c.path }
func (c stubConfig) GetPollInterval() time.Duration   { return 2 * time.Second }
func (c stubConfig) GetPrecedence() domain.Precedence { return domain.PrecedenceIndependent }
func (c stubConfig) NotificationsEnabled() bool       { return false }

func newTestStore(t *testing.T, display domain.DisplayController) (*FileStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "program_settings.json")
	return NewFileStore(zap.NewNop(), stubConfig{path: path}, display), path
}

func TestFileStore_LoadTolerant(t *testing.T) {
	tests := []struct {
		name    string
		content *string
	}{
		{name: "Missing file", content: nil},
		{name: "Corrupt JSON", content: ptr("{not json")},
		{name: "Top-level array", content: ptr(`[1, 2]`)},
		{name: "Null document", content: ptr(`null`)},
		{name: "Wrong record shape", content: ptr(`{"game.exe": {"resolution": "big"}}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, path := newTestStore(t, nil)
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0644))
			}

			table, err := store.Load(context.Background())
			require.NoError(t, err)
			assert.Empty(t, table.Programs)
			assert.False(t, table.HasDefault())
		})
	}
}

func TestFileStore_LoadValid(t *testing.T) {
	store, path := newTestStore(t, nil)
	content := `{
    "default": {"resolution": [2560, 1440], "fps": 165},
    "game.exe": {"resolution": [1920, 1080]},
    "broken.exe": {"resolution": [0, 1080]}
}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	table, err := store.Load(context.Background())
	require.NoError(t, err)

	require.True(t, table.HasDefault())
	assert.Equal(t, domain.DefaultEntry{Resolution: domain.Resolution{Width: 2560, Height: 1440}, FPS: 165}, *table.Default)
	assert.Len(t, table.Programs, 1, "records with non-positive dimensions are skipped")
	assert.Equal(t, domain.Resolution{Width: 1920, Height: 1080}, table.Programs["game.exe"].Resolution)
	assert.Equal(t, "game.exe", table.Programs["game.exe"].Name)
}

func TestFileStore_SaveFormat(t *testing.T) {
	store, path := newTestStore(t, nil)
	table := domain.NewSettingsTable()
	table.Default = &domain.DefaultEntry{Resolution: domain.Resolution{Width: 1920, Height: 1080}, FPS: 60}
	table.Set(domain.ProgramEntry{Name: "game.exe", Resolution: domain.Resolution{Width: 1280, Height: 1024}})

	require.NoError(t, store.Save(context.Background(), table))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	expected := `{
    "default": {
        "resolution": [
            1920,
            1080
        ],
        "fps": 60
    },
    "game.exe": {
        "resolution": [
            1280,
            1024
        ]
    }
}`
	assert.Equal(t, expected, string(data))
}

func TestFileStore_SaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "settings.json")
	store := NewFileStore(zap.NewNop(), stubConfig{path: path}, nil)

	table := domain.NewSettingsTable()
	table.Default = &domain.DefaultEntry{Resolution: domain.Resolution{Width: 800, Height: 600}}
	require.NoError(t, store.Save(context.Background(), table))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

// TestFileStore_RoundTrip verifies that load-then-save is idempotent
func TestFileStore_RoundTrip(t *testing.T) {
	store, path := newTestStore(t, nil)
	original := `{"default": {"resolution": [2560, 1440], "fps": 144}, "Game.exe": {"resolution": [1920, 1080]}, "editor.exe": {"resolution": [1600, 1200]}}`
	require.NoError(t, os.WriteFile(path, []byte(original), 0644))

	ctx := context.Background()
	first, err := store.Load(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, first))
	saved1, err := os.ReadFile(path)
	require.NoError(t, err)

	second, err := store.Load(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Save(ctx, second))
	saved2, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, string(saved1), string(saved2))

	var before, after map[string]any
	require.NoError(t, json.Unmarshal([]byte(original), &before))
	require.NoError(t, json.Unmarshal(saved1, &after))
	assert.Equal(t, before, after, "key/value content must survive a round trip")
}

func TestFileStore_EnsureDefault(t *testing.T) {
	t.Run("Synthesises and persists when missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		display := mocks.NewMockDisplayController(ctrl)
		display.EXPECT().CurrentMode(gomock.Any()).Return(domain.Resolution{Width: 2560, Height: 1440}, nil)
		display.EXPECT().MaxRefreshRate(gomock.Any()).Return(144, nil)

		store, _ := newTestStore(t, display)
		ctx := context.Background()

		empty, err := store.Load(ctx)
		require.NoError(t, err)

		table, err := store.EnsureDefault(ctx, empty)
		require.NoError(t, err)
		require.True(t, table.HasDefault())
		assert.Equal(t, domain.Resolution{Width: 2560, Height: 1440}, table.Default.Resolution)
		assert.Equal(t, 144, table.Default.FPS)

		// Persisted: a fresh load sees exactly one entry, the default
		reloaded, err := store.Load(ctx)
		require.NoError(t, err)
		require.True(t, reloaded.HasDefault())
		assert.Empty(t, reloaded.Programs)
		assert.Equal(t, *table.Default, *reloaded.Default)
	})

	t.Run("Keeps existing default without display calls", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		display := mocks.NewMockDisplayController(ctrl)

		store, path := newTestStore(t, display)
		table := domain.NewSettingsTable()
		table.Default = &domain.DefaultEntry{Resolution: domain.Resolution{Width: 1920, Height: 1080}, FPS: 60}

		got, err := store.EnsureDefault(context.Background(), table)
		require.NoError(t, err)
		assert.Same(t, table, got)

		_, err = os.Stat(path)
		assert.True(t, os.IsNotExist(err), "nothing should be written")
	})

	t.Run("Refresh rate failure records zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		display := mocks.NewMockDisplayController(ctrl)
		display.EXPECT().CurrentMode(gomock.Any()).Return(domain.Resolution{Width: 1920, Height: 1080}, nil)
		display.EXPECT().MaxRefreshRate(gomock.Any()).Return(0, fmt.Errorf("unsupported"))

		store, _ := newTestStore(t, display)
		table, err := store.EnsureDefault(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, 0, table.Default.FPS)
	})

	t.Run("Current mode failure is an error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		display := mocks.NewMockDisplayController(ctrl)
		display.EXPECT().CurrentMode(gomock.Any()).Return(domain.Resolution{}, fmt.Errorf("no display"))

		store, _ := newTestStore(t, display)
		_, err := store.EnsureDefault(context.Background(), domain.NewSettingsTable())
		assert.ErrorContains(t, err, "no display")
	})
}

func ptr(s string) *string { return &s }
