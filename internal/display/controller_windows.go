//go:build windows
// +build windows

package display

import (
	"context"
	"fmt"
	"sync"
	"unsafe"

	"github.com/genricoloni/resswitch/internal/domain"
	"github.com/lxn/win"
	"go.uber.org/zap"
	"golang.org/x/sys/windows"
)

const (
	enumCurrentSettings = 0xFFFFFFFF

	dmBitsPerPel       = 0x00040000
	dmPelsWidth        = 0x00080000
	dmPelsHeight       = 0x00100000
	dmDisplayFrequency = 0x00400000

	dispChangeSuccessful = 0
)

var (
	user32                    = windows.NewLazySystemDLL("user32.dll")
	procEnumDisplaySettings   = user32.NewProc("EnumDisplaySettingsW")
	procChangeDisplaySettings = user32.NewProc("ChangeDisplaySettingsW")
)

// devMode mirrors the display variant of DEVMODEW
type devMode struct {
	DeviceName         [32]uint16
	SpecVersion        uint16
	DriverVersion      uint16
	Size               uint16
	DriverExtra        uint16
	Fields             uint32
	PositionX          int32
	PositionY          int32
	DisplayOrientation uint32
	DisplayFixedOutput uint32
	Color              int16
	Duplex             int16
	YResolution        int16
	TTOption           int16
	Collate            int16
	FormName           [32]uint16
	LogPixels          uint16
	BitsPerPel         uint32
	PelsWidth          uint32
	PelsHeight         uint32
	DisplayFlags       uint32
	DisplayFrequency   uint32
	ICMMethod          uint32
	ICMIntent          uint32
	MediaType          uint32
	DitherType         uint32
	Reserved1          uint32
	Reserved2          uint32
	PanningWidth       uint32
	PanningHeight      uint32
}

// WindowsController changes the primary display mode through user32
type WindowsController struct {
	logger *zap.Logger
	mu     sync.Mutex
}

// NewController creates the user32-backed display controller (Windows implementation)
func NewController(logger *zap.Logger) (*WindowsController, error) {
	if err := procChangeDisplaySettings.Find(); err != nil {
		return nil, fmt.Errorf("ChangeDisplaySettingsW unavailable: %w", err)
	}
	logger.Info("Windows display controller initialized")
	return &WindowsController{logger: logger}, nil
}

// enumMode wraps EnumDisplaySettingsW for the primary display device
func enumMode(index uint32) (*devMode, bool) {
	dm := &devMode{}
	dm.Size = uint16(unsafe.Sizeof(*dm))
	ret, _, _ := procEnumDisplaySettings.Call(0, uintptr(index), uintptr(unsafe.Pointer(dm)))
	return dm, ret != 0
}

// CurrentMode returns the primary screen size in pixels
func (c *WindowsController) CurrentMode(ctx context.Context) (domain.Resolution, error) {
	w := win.GetSystemMetrics(win.SM_CXSCREEN)
	h := win.GetSystemMetrics(win.SM_CYSCREEN)
	if w <= 0 || h <= 0 {
		return domain.Resolution{}, ErrNoOutput
	}
	return domain.Resolution{Width: int(w), Height: int(h)}, nil
}

// MaxRefreshRate returns the highest frequency enumerated at the current size
func (c *WindowsController) MaxRefreshRate(ctx context.Context) (int, error) {
	current, ok := enumMode(enumCurrentSettings)
	if !ok {
		return 0, fmt.Errorf("EnumDisplaySettingsW failed for current settings")
	}

	var modes []modeCandidate
	for i := uint32(0); ; i++ {
		dm, ok := enumMode(i)
		if !ok {
			break
		}
		modes = append(modes, modeCandidate{
			id:      i,
			res:     domain.Resolution{Width: int(dm.PelsWidth), Height: int(dm.PelsHeight)},
			refresh: int(dm.DisplayFrequency),
		})
	}

	res := domain.Resolution{Width: int(current.PelsWidth), Height: int(current.PelsHeight)}
	if best := maxRefreshAt(modes, res); best > 0 {
		return best, nil
	}
	return int(current.DisplayFrequency), nil
}

// SetMode applies the mode with ChangeDisplaySettingsW. NoResolution resets to the registry default.
func (c *WindowsController) SetMode(ctx context.Context, mode domain.Mode) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if mode.Resolution.IsZero() {
		c.logger.Info("Restoring default display mode")
		ret, _, _ := procChangeDisplaySettings.Call(0, 0)
		if int32(ret) != dispChangeSuccessful {
			return &ModeChangeError{Mode: mode, Code: int(int32(ret))}
		}
		return nil
	}

	dm, ok := enumMode(enumCurrentSettings)
	if !ok {
		return fmt.Errorf("EnumDisplaySettingsW failed for current settings")
	}

	depth := mode.Depth
	if depth == 0 {
		depth = domain.DefaultDepth
	}

	dm.PelsWidth = uint32(mode.Width)
	dm.PelsHeight = uint32(mode.Height)
	dm.BitsPerPel = uint32(depth)
	dm.Fields = dmPelsWidth | dmPelsHeight | dmBitsPerPel
	if mode.RefreshRate > 0 {
		dm.DisplayFrequency = uint32(mode.RefreshRate)
		dm.Fields |= dmDisplayFrequency
	}

	c.logger.Info("Setting display mode",
		zap.String("resolution", mode.Resolution.String()),
		zap.Int("depth", depth),
		zap.Int("refresh", mode.RefreshRate))

	ret, _, _ := procChangeDisplaySettings.Call(uintptr(unsafe.Pointer(dm)), 0)
	if int32(ret) != dispChangeSuccessful {
		return &ModeChangeError{Mode: mode, Code: int(int32(ret))}
	}
	return nil
}

// CandidateSubResolutions lists the editor choices derived from the current mode
func (c *WindowsController) CandidateSubResolutions(ctx context.Context) ([]domain.Resolution, error) {
	return candidatesFrom(ctx, c.CurrentMode)
}

// Close is a no-op on Windows
func (c *WindowsController) Close() error {
	return nil
}
