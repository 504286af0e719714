package presence

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Oracle answers "is a process with this name running?" from a fresh
// snapshot of the process table on every call
type Oracle struct {
	logger *zap.Logger
	lister ProcessLister
}

// NewOracle creates an oracle backed by gopsutil
func NewOracle(logger *zap.Logger) *Oracle {
	return NewOracleWithLister(logger, NewGopsutilLister())
}

// NewOracleWithLister creates an oracle over an arbitrary process lister
func NewOracleWithLister(logger *zap.Logger, lister ProcessLister) *Oracle {
	return &Oracle{logger: logger, lister: lister}
}

// IsRunning reports whether any process name equals name, ignoring case
func (o *Oracle) IsRunning(ctx context.Context, name string) (bool, error) {
	if name == "" {
		return false, nil
	}

	names, err := o.lister.Names(ctx)
	if err != nil {
		return false, fmt.Errorf("presence query for %s: %w", name, err)
	}

	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true, nil
		}
	}

	o.logger.Debug("Process not running",
		zap.String("name", name),
		zap.Int("scanned", len(names)))
	return false, nil
}
