//go:build !linux && !windows
// +build !linux,!windows

package display

import (
	"context"
	"fmt"

	"github.com/genricoloni/resswitch/internal/domain"
	"github.com/kbinani/screenshot"
	"go.uber.org/zap"
)

// StubController reads the primary display size but cannot change modes (macOS, BSD, etc.)
type StubController struct {
	logger *zap.Logger
}

// NewController creates a read-only controller for unsupported platforms
func NewController(logger *zap.Logger) (*StubController, error) {
	logger.Warn("Display mode switching is not yet implemented for this platform")
	return &StubController{logger: logger}, nil
}

// CurrentMode returns the bounds of the primary display
func (c *StubController) CurrentMode(ctx context.Context) (domain.Resolution, error) {
	if screenshot.NumActiveDisplays() <= 0 {
		return domain.Resolution{}, ErrNoOutput
	}

	// Use primary monitor (index 0)
	bounds := screenshot.GetDisplayBounds(0)
	return domain.Resolution{Width: bounds.Dx(), Height: bounds.Dy()}, nil
}

// MaxRefreshRate is not available on this platform
func (c *StubController) MaxRefreshRate(ctx context.Context) (int, error) {
	return 0, fmt.Errorf("refresh rate query: %w", ErrUnsupported)
}

// SetMode returns ErrUnsupported
func (c *StubController) SetMode(ctx context.Context, mode domain.Mode) error {
	return fmt.Errorf("set %s: %w", mode.Resolution, ErrUnsupported)
}

// CandidateSubResolutions lists the editor choices derived from the current mode
func (c *StubController) CandidateSubResolutions(ctx context.Context) ([]domain.Resolution, error) {
	return candidatesFrom(ctx, c.CurrentMode)
}

// Close is a no-op
func (c *StubController) Close() error {
	return nil
}
