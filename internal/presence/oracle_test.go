package presence

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/genricoloni/resswitch/internal/presence/mocks"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// TestOracle_IsRunning covers matching rules and lister failures
func TestOracle_IsRunning(t *testing.T) {
	table := []string{"systemd", "Xorg", "Game.exe", "steam"}

	tests := []struct {
		name        string
		query       string
		setupMock   func(*mocks.MockProcessLister)
		expected    bool
		expectError bool
	}{
		{
			name:  "Exact match",
			query: "steam",
			setupMock: func(m *mocks.MockProcessLister) {
				m.EXPECT().Names(gomock.Any()).Return(table, nil)
			},
			expected: true,
		},
		{
			name:  "Case-insensitive match",
			query: "game.EXE",
			setupMock: func(m *mocks.MockProcessLister) {
				m.EXPECT().Names(gomock.Any()).Return(table, nil)
			},
			expected: true,
		},
		{
			name:  "Substring is not a match",
			query: "game",
			setupMock: func(m *mocks.MockProcessLister) {
				m.EXPECT().Names(gomock.Any()).Return(table, nil)
			},
			expected: false,
		},
		{
			name:  "Absent process",
			query: "blender",
			setupMock: func(m *mocks.MockProcessLister) {
				m.EXPECT().Names(gomock.Any()).Return(table, nil)
			},
			expected: false,
		},
		{
			name:      "Empty name short-circuits",
			query:     "",
			setupMock: func(m *mocks.MockProcessLister) {},
			expected:  false,
		},
		{
			name:  "Lister error",
			query: "steam",
			setupMock: func(m *mocks.MockProcessLister) {
				m.EXPECT().Names(gomock.Any()).Return(nil, fmt.Errorf("permission denied"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			lister := mocks.NewMockProcessLister(ctrl)
			tt.setupMock(lister)

			oracle := NewOracleWithLister(zap.NewNop(), lister)
			got, err := oracle.IsRunning(context.Background(), tt.query)

			if tt.expectError {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("IsRunning(%q): expected %v, got %v", tt.query, tt.expected, got)
			}
		})
	}
}

// TestGopsutilLister_SeesTestBinary reads the real process table
func TestGopsutilLister_SeesTestBinary(t *testing.T) {
	exe, err := os.Executable()
	if err != nil {
		t.Skipf("cannot resolve test executable: %v", err)
	}

	names, err := NewGopsutilLister().Names(context.Background())
	if err != nil {
		t.Fatalf("Names failed: %v", err)
	}
	if len(names) == 0 {
		t.Fatal("expected at least one process")
	}

	oracle := NewOracle(zap.NewNop())
	running, err := oracle.IsRunning(context.Background(), filepath.Base(exe))
	if err != nil {
		t.Fatalf("IsRunning failed: %v", err)
	}
	if !running {
		t.Skipf("process name %q not reported (truncated comm names on some kernels)", filepath.Base(exe))
	}
}
