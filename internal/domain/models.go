package domain

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// DefaultKey is the reserved settings key holding the restore target
const DefaultKey = "default"

// DefaultDepth is the bits-per-pixel requested when switching modes
const DefaultDepth = 32

// Resolution holds the display dimensions
type Resolution struct {
	Width  int
	Height int
}

// NoResolution asks the display controller to restore the OS-negotiated default mode
var NoResolution = Resolution{}

// IsZero reports whether r is the NoResolution sentinel
func (r Resolution) IsZero() bool {
	return r.Width == 0 && r.Height == 0
}

// Valid reports whether both dimensions are positive
func (r Resolution) Valid() bool {
	return r.Width > 0 && r.Height > 0
}

// String renders the resolution the way the editor lists it ("1920 x 1080")
func (r Resolution) String() string {
	return fmt.Sprintf("%d x %d", r.Width, r.Height)
}

// ParseResolution parses "W x H" (spaces optional, "x" or "X")
func ParseResolution(s string) (Resolution, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 2 {
		return Resolution{}, fmt.Errorf("invalid resolution %q: expected WIDTH x HEIGHT", s)
	}

	w, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Resolution{}, fmt.Errorf("invalid resolution width %q: %w", s, err)
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Resolution{}, fmt.Errorf("invalid resolution height %q: %w", s, err)
	}

	res := Resolution{Width: w, Height: h}
	if !res.Valid() {
		return Resolution{}, fmt.Errorf("invalid resolution %q: dimensions must be positive", s)
	}
	return res, nil
}

// Mode is a full display mode request
type Mode struct {
	Resolution
	// RefreshRate in Hz, 0 lets the controller choose
	RefreshRate int
	// Depth in bits per pixel
	Depth int
}

// ProgramEntry maps a monitored executable to its target resolution
type ProgramEntry struct {
	// Name is the process executable name, matched case-insensitively
	Name       string
	Resolution Resolution
}

// DefaultEntry is the resolution and refresh rate restored when monitored programs exit
type DefaultEntry struct {
	Resolution Resolution
	FPS        int
}

// SettingsTable is the typed form of the persisted settings file
type SettingsTable struct {
	Default  *DefaultEntry
	Programs map[string]ProgramEntry
}

// NewSettingsTable returns an empty table without a default entry
func NewSettingsTable() *SettingsTable {
	return &SettingsTable{Programs: make(map[string]ProgramEntry)}
}

// HasDefault reports whether the default entry is present
func (t *SettingsTable) HasDefault() bool {
	return t.Default != nil
}

// Set adds or replaces a program entry. Keys differing only in case are
// treated as the same program, so the old spelling is dropped.
func (t *SettingsTable) Set(entry ProgramEntry) {
	if t.Programs == nil {
		t.Programs = make(map[string]ProgramEntry)
	}
	for name := range t.Programs {
		if strings.EqualFold(name, entry.Name) {
			delete(t.Programs, name)
		}
	}
	t.Programs[entry.Name] = entry
}

// Lookup finds a program entry by case-insensitive name
func (t *SettingsTable) Lookup(name string) (ProgramEntry, bool) {
	if e, ok := t.Programs[name]; ok {
		return e, true
	}
	for key, e := range t.Programs {
		if strings.EqualFold(key, name) {
			return e, true
		}
	}
	return ProgramEntry{}, false
}

// SortedPrograms returns the program entries in a stable order
// (case-insensitive name, then exact name)
func (t *SettingsTable) SortedPrograms() []ProgramEntry {
	entries := make([]ProgramEntry, 0, len(t.Programs))
	for _, e := range t.Programs {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		li, lj := strings.ToLower(entries[i].Name), strings.ToLower(entries[j].Name)
		if li != lj {
			return li < lj
		}
		return entries[i].Name < entries[j].Name
	})
	return entries
}

// Names lists the monitored program names in SortedPrograms order
func (t *SettingsTable) Names() []string {
	entries := t.SortedPrograms()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// Precedence selects the restore target on a stop transition
type Precedence string

const (
	// PrecedenceIndependent restores the default entry on every stop transition
	PrecedenceIndependent Precedence = "independent"
	// PrecedenceStack restores the most recently started program that is still running
	PrecedenceStack Precedence = "stack"
)
