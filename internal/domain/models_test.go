package domain

import (
	"testing"
)

func TestParseResolution(t *testing.T) {
	tests := []struct {
		input       string
		expected    Resolution
		expectError bool
	}{
		{"1920 x 1080", Resolution{1920, 1080}, false},
		{"2560x1440", Resolution{2560, 1440}, false},
		{" 800 X 600 ", Resolution{800, 600}, false},
		{"1920", Resolution{}, true},
		{"a x 1080", Resolution{}, true},
		{"0 x 1080", Resolution{}, true},
		{"1920 x -1", Resolution{}, true},
		{"", Resolution{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseResolution(tt.input)
			if tt.expectError {
				if err == nil {
					t.Fatalf("expected error for %q, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestResolutionStringRoundTrip(t *testing.T) {
	for _, r := range []Resolution{{1920, 1080}, {1024, 768}, {3840, 2160}} {
		got, err := ParseResolution(r.String())
		if err != nil {
			t.Fatalf("ParseResolution(%q): %v", r.String(), err)
		}
		if got != r {
			t.Errorf("round trip: expected %v, got %v", r, got)
		}
	}
}

func TestNoResolution(t *testing.T) {
	if !NoResolution.IsZero() {
		t.Error("NoResolution should be zero")
	}
	if NoResolution.Valid() {
		t.Error("NoResolution should not be valid")
	}
}

func TestSettingsTable_SetReplacesCaseInsensitive(t *testing.T) {
	table := NewSettingsTable()
	table.Set(ProgramEntry{Name: "Game.exe", Resolution: Resolution{1920, 1080}})
	table.Set(ProgramEntry{Name: "game.exe", Resolution: Resolution{1280, 1024}})

	if len(table.Programs) != 1 {
		t.Fatalf("expected 1 program, got %d", len(table.Programs))
	}
	entry, ok := table.Lookup("GAME.EXE")
	if !ok {
		t.Fatal("expected case-insensitive lookup to succeed")
	}
	if entry.Name != "game.exe" || entry.Resolution != (Resolution{1280, 1024}) {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

func TestSettingsTable_SortedPrograms(t *testing.T) {
	table := NewSettingsTable()
	for _, name := range []string{"zeta.exe", "Alpha.exe", "beta.exe"} {
		table.Set(ProgramEntry{Name: name, Resolution: Resolution{1024, 768}})
	}

	got := table.Names()
	want := []string{"Alpha.exe", "beta.exe", "zeta.exe"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}

	// Order must not depend on map iteration
	for i := 0; i < 20; i++ {
		again := table.Names()
		for j := range got {
			if again[j] != got[j] {
				t.Fatalf("unstable order: %v vs %v", again, got)
			}
		}
	}
}

func TestSettingsTable_NilProgramsMap(t *testing.T) {
	table := &SettingsTable{}
	table.Set(ProgramEntry{Name: "x.exe", Resolution: Resolution{800, 600}})
	if _, ok := table.Lookup("x.exe"); !ok {
		t.Error("expected entry after Set on zero table")
	}
	if table.HasDefault() {
		t.Error("zero table should not have a default entry")
	}
}
