package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/domain_mock.go -package=mocks github.com/genricoloni/resswitch/internal/domain DisplayController,ProcessOracle,SettingsStore,Notifier

// DisplayController defines the interface for querying and changing the
// primary display mode. Implementations are platform specific.
type DisplayController interface {
	// CurrentMode returns the resolution currently in effect
	CurrentMode(ctx context.Context) (Resolution, error)

	// MaxRefreshRate returns the highest refresh rate (Hz) available at the
	// current resolution
	MaxRefreshRate(ctx context.Context) (int, error)

	// SetMode switches the primary display. A mode whose resolution is
	// NoResolution restores the OS default instead of an explicit mode.
	SetMode(ctx context.Context, mode Mode) error

	// CandidateSubResolutions lists the resolutions offered in the editor,
	// derived from the current mode
	CandidateSubResolutions(ctx context.Context) ([]Resolution, error)

	// Close releases any connection held to the display server
	Close() error
}

// ProcessOracle answers whether a named process is currently running
type ProcessOracle interface {
	// IsRunning performs a case-insensitive exact match of name against
	// the executable names in the current process table
	IsRunning(ctx context.Context, name string) (bool, error)
}

// SettingsStore persists the SettingsTable
type SettingsStore interface {
	// Load reads the table. A missing or corrupt backing file yields an
	// empty table and no error.
	Load(ctx context.Context) (*SettingsTable, error)

	// Save overwrites the backing file with the full table
	Save(ctx context.Context, table *SettingsTable) error

	// EnsureDefault guarantees the default entry, synthesising it from the
	// live display state and persisting the table if it was missing
	EnsureDefault(ctx context.Context, table *SettingsTable) (*SettingsTable, error)
}

// Notifier reports resolution switches to the desktop user
type Notifier interface {
	Notify(ctx context.Context, summary, body string) error
	Close() error
}

// Config defines the interface for application configuration
type Config interface {
	// GetSettingsPath returns the path of the JSON settings file
	GetSettingsPath() string

	// GetPollInterval returns the wait between two poll cycles
	GetPollInterval() time.Duration

	// GetPrecedence returns the stop-transition restore policy
	GetPrecedence() Precedence

	// NotificationsEnabled reports whether desktop notifications are sent
	NotificationsEnabled() bool
}
