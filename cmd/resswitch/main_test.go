package main

import (
	"testing"

	"go.uber.org/fx"
)

// TestAppGraphValidity verifies that the dependency graph is resolvable.
// This test will fail if you forget an fx.Provide for a required interface.
func TestAppGraphValidity(t *testing.T) {
	// fx.ValidateApp checks for missing or cyclic dependencies without
	// running any constructor, so no display server is needed
	if err := fx.ValidateApp(AppOptions); err != nil {
		t.Errorf("Dependency graph is not valid: %v", err)
	}
}

// TestNewLogger verifies both logger configurations
func TestNewLogger(t *testing.T) {
	tests := []struct {
		name  string
		debug string
	}{
		{name: "Production", debug: ""},
		{name: "Development", debug: "true"},
		{name: "Unparsable falls back", debug: "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("RESSWITCH_DEBUG", tt.debug)

			logger, err := newLogger()
			if err != nil {
				t.Fatalf("Failed to create logger: %v", err)
			}
			if logger == nil {
				t.Fatal("Logger should not be nil")
			}
			logger.Info("Test logger initialization")
		})
	}
}
