package presence

import (
	"context"
	"fmt"

	"github.com/shirou/gopsutil/v3/process"
)

// ProcessLister defines the interface for snapshotting the OS process table.
// This abstraction allows us to mock process enumeration in tests.
//
//go:generate mockgen -destination=mocks/process_lister_mock.go -package=mocks github.com/genricoloni/resswitch/internal/presence ProcessLister
type ProcessLister interface {
	// Names returns the executable name of every process that could be read
	Names(ctx context.Context) ([]string, error)
}

// GopsutilLister is the real implementation using gopsutil
type GopsutilLister struct{}

// NewGopsutilLister creates a process lister backed by gopsutil
func NewGopsutilLister() *GopsutilLister {
	return &GopsutilLister{}
}

// Names returns the executable names of all running processes
func (l *GopsutilLister) Names(ctx context.Context) ([]string, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get process list: %w", err)
	}

	names := make([]string, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue // Skip processes that exited or we cannot inspect
		}
		names = append(names, name)
	}
	return names, nil
}
